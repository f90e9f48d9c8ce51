//go:build windows
// +build windows

package pkg

import (
	"context"
	"errors"

	"github.com/qnkhuat/sgfterm/pkg/config"
	"go.uber.org/zap"
)

// SSH server is unsupported on Windows

var ErrUnsupported = errors.New("ssh server is not supported on windows")

type Server struct {
	cfg *config.ServerConfig
	log *zap.SugaredLogger
}

func NewServer(cfg *config.ServerConfig, log *zap.SugaredLogger) (*Server, error) {
	return &Server{cfg: cfg, log: log}, nil
}

func (s *Server) ViewerArgs(id string) []string {
	return nil
}

func (s *Server) ListenAndServe() error {
	return ErrUnsupported
}

func (s *Server) Shutdown(ctx context.Context) error {
	return nil
}
