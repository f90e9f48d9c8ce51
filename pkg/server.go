//go:build !windows
// +build !windows

package pkg

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/creack/pty"
	petname "github.com/dustinkirkland/golang-petname"
	"github.com/gliderlabs/ssh"
	"github.com/qnkhuat/sgfterm/pkg/config"
	"go.uber.org/zap"
	gossh "golang.org/x/crypto/ssh"
)

// Server runs one viewer process per ssh session.
type Server struct {
	*ssh.Server
	cfg *config.ServerConfig
	log *zap.SugaredLogger
}

func NewServer(cfg *config.ServerConfig, log *zap.SugaredLogger) (*Server, error) {
	s := &Server{
		cfg: cfg,
		log: log,
	}

	srv := &ssh.Server{
		Addr:        cfg.Listen,
		IdleTimeout: cfg.IdleTimeout,
		Handler:     s.handle,
		PtyCallback: func(ctx ssh.Context, p ssh.Pty) bool {
			return true
		},
		KeyboardInteractiveHandler: func(ctx ssh.Context, challenger gossh.KeyboardInteractiveChallenge) bool {
			return true
		},
	}

	if err := srv.SetOption(ssh.HostKeyFile(cfg.HostKey)); err != nil {
		return nil, fmt.Errorf("failed to load host key %s: %w", cfg.HostKey, err)
	}

	s.Server = srv
	return s, nil
}

// ViewerArgs are the arguments the viewer is started with for session id.
// The viewer logs to os.DevNull unless a session log folder is configured.
func (s *Server) ViewerArgs(id string) []string {
	logPath := os.DevNull
	if s.cfg.SessionLogs != "" {
		logPath = filepath.Join(s.cfg.SessionLogs, fmt.Sprintf("sgfterm-%s.log", id))
	}

	args := []string{"--log", logPath}
	if s.cfg.Path != "" {
		args = append(args, s.cfg.Path)
	}
	return args
}

func (s *Server) handle(sess ssh.Session) {
	id := petname.Generate(2, "-")
	log := s.log.With("session", id, "user", sess.User(), "remote", sess.RemoteAddr().String())

	ptyReq, winCh, isPty := sess.Pty()
	if !isPty {
		io.WriteString(sess, "failed to start sgfterm: non-interactive terminals are not supported\n")
		sess.Exit(1)
		return
	}
	log.Infow("session started", "term", ptyReq.Term)

	cmdCtx, cancelCmd := context.WithCancel(sess.Context())
	defer cancelCmd()

	cmd := exec.CommandContext(cmdCtx, s.cfg.Binary, s.ViewerArgs(id)...)
	cmd.Env = viewerEnv(ptyReq.Term)

	f, err := pty.StartWithSize(cmd, winsize(ptyReq.Window))
	if err != nil {
		log.Errorw("failed to start viewer", "error", err)
		io.WriteString(sess, fmt.Sprintf("failed to initialize pseudo-terminal: %s\n", err))
		sess.Exit(1)
		return
	}
	defer f.Close()

	go func() {
		for win := range winCh {
			if err := pty.Setsize(f, winsize(win)); err != nil {
				log.Warnw("failed to resize", "error", err)
			}
		}
	}()

	go func() {
		io.Copy(f, sess)
	}()
	io.Copy(sess, f)

	cancelCmd()
	if err := cmd.Wait(); err != nil {
		log.Infow("viewer exited", "error", err)
	}
	log.Infow("session closed")
}

// viewerEnv is the whole environment of a viewer process. Variables sent by
// the client are never passed on.
func viewerEnv(term string) []string {
	env := []string{fmt.Sprintf("TERM=%s", term)}
	for _, key := range []string{"PATH", "HOME"} {
		if v, ok := os.LookupEnv(key); ok {
			env = append(env, key+"="+v)
		}
	}
	return env
}

func winsize(w ssh.Window) *pty.Winsize {
	return &pty.Winsize{
		Rows: uint16(w.Height),
		Cols: uint16(w.Width),
	}
}
