package logger

import (
	"go.uber.org/zap"
)

// Config selects the zap preset.
type Config struct {
	Development bool
}

// New builds a sugared zap logger.
func New(cfg Config) (*zap.SugaredLogger, error) {
	var (
		l   *zap.Logger
		err error
	)
	if cfg.Development {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}
	return l.Sugar(), nil
}

// Nop is used where no logger was supplied, mostly in tests.
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
