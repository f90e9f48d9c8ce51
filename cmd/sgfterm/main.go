package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/qnkhuat/sgfterm/pkg"
	"github.com/qnkhuat/sgfterm/pkg/config"
	"github.com/qnkhuat/sgfterm/pkg/gui"
	"github.com/qnkhuat/sgfterm/pkg/playlist"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "sgfterm: %s\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := afero.NewOsFs()

	cfg, err := config.Load(fs, args)
	if errors.Is(err, pflag.ErrHelp) {
		return nil
	} else if err != nil {
		return err
	}

	log, err := pkg.InitLog(cfg.LogPath, "viewer")
	if err != nil {
		return err
	}
	defer log.Sync()

	sess, err := pkg.NewSession(fs, cfg, log)
	if err != nil {
		if cfg.Path == "" && (errors.Is(err, playlist.ErrNotFound) || errors.Is(err, playlist.ErrEmpty)) {
			return fmt.Errorf("no sgf files found in %s, place .sgf files there or pass a file path", playlist.DefaultDir)
		}
		return err
	}

	if cfg.Print {
		st := sess.State()
		if cfg.Move < 0 {
			st.JumpToEnd()
		} else {
			st.Seek(cfg.Move)
		}
		f := gui.NewFrame(st, cfg.Rotation)
		return gui.Fprint(os.Stdout, &f)
	}

	var custom []gui.ThemeHex
	if cfg.ThemeFile != "" {
		if custom, err = gui.LoadThemes(fs, cfg.ThemeFile); err != nil {
			return err
		}
	}
	theme, err := gui.SelectTheme(cfg.Theme, custom)
	if err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("stdout is not a terminal, use --print")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Stop the viewer on a kill signal
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc,
		syscall.SIGINT,
		syscall.SIGTERM)
	go func() {
		<-sigc
		cancel()
	}()

	log.Infow("viewer started",
		"path", sess.Path(),
		"games", sess.Playlist().Len(),
		"theme", theme.Name,
	)
	if err := pkg.NewViewer(sess, cfg, theme, log).Run(ctx); err != nil {
		log.Errorw("viewer failed", "error", err)
		return err
	}
	return nil
}
