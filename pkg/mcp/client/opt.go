package client

import (
	// Packages
	weather "github.com/mutablelogic/go-mcp-weather"
	zap "go.uber.org/zap"
)

/////////////////////////////////////////////////////////////////////////////////
// TYPES

type Opt func(*opts) error

type opts struct {
	name   string
	logger *zap.Logger
}

/////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func applyOpts(opt ...Opt) (*opts, error) {
	o := &opts{
		name:   DefaultName,
		logger: zap.NewNop(),
	}
	for _, fn := range opt {
		if err := fn(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

/////////////////////////////////////////////////////////////////////////////////
// OPTIONS

// WithName sets the implementation name announced to the server
func WithName(name string) Opt {
	return func(o *opts) error {
		if name == "" {
			return weather.ErrBadParameter.With("client name is empty")
		}
		o.name = name
		return nil
	}
}

// WithLogger sets the logger for connection events
func WithLogger(logger *zap.Logger) Opt {
	return func(o *opts) error {
		if logger == nil {
			return weather.ErrBadParameter.With("logger is nil")
		}
		o.logger = logger
		return nil
	}
}
