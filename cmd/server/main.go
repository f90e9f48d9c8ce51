package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gliderlabs/ssh"
	"github.com/qnkhuat/sgfterm/pkg"
	"github.com/qnkhuat/sgfterm/pkg/config"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
)

const shutdownTimeout = 5 * time.Second

func main() {
	cfg, err := config.LoadServer(afero.NewOsFs(), os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	} else if err != nil {
		fmt.Fprintf(os.Stderr, "sgfterm-server: %s\n", err)
		os.Exit(1)
	}

	log, err := pkg.InitLog(cfg.LogPath, "server")
	if err != nil {
		fmt.Fprintf(os.Stderr, "sgfterm-server: %s\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	s, err := pkg.NewServer(cfg, log)
	if err != nil {
		log.Fatalw("failed to create server", "error", err)
	}

	errc := make(chan error, 1)
	go func() {
		errc <- s.ListenAndServe()
	}()
	log.Infow("server started", "listen", cfg.Listen, "binary", cfg.Binary, "path", cfg.Path)

	// Wait for terminate signal
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc,
		syscall.SIGINT,
		syscall.SIGTERM)

	select {
	case err := <-errc:
		if !errors.Is(err, ssh.ErrServerClosed) {
			log.Fatalw("server stopped", "error", err)
		}
	case sig := <-sigc:
		log.Infow("shutting down", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.Shutdown(ctx); err != nil {
			log.Errorw("failed to shut down", "error", err)
		}
	}
}
