package pkg

import (
	"fmt"

	"go.uber.org/zap"
)

// InitLog returns a logger writing to dest. The terminal belongs to the
// viewer, so nothing is written to stderr.
func InitLog(dest, name string) (*zap.SugaredLogger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{dest}
	cfg.ErrorOutputPaths = []string{dest}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to open log %s: %w", dest, err)
	}
	return logger.Named(name).Sugar(), nil
}
