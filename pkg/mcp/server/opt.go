package server

import (
	"time"

	// Packages
	weather "github.com/mutablelogic/go-mcp-weather"
	zap "go.uber.org/zap"
)

/////////////////////////////////////////////////////////////////////////////////
// TYPES

type Opt func(*opts) error

type opts struct {
	name         string
	instructions string
	logger       *zap.Logger
	clock        func() time.Time
}

/////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func applyOpts(opt ...Opt) (*opts, error) {
	o := &opts{
		name:         DefaultName,
		instructions: defaultInstructions,
		logger:       zap.NewNop(),
		clock:        time.Now,
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

// WithName sets the implementation name announced to clients
func WithName(name string) Opt {
	return func(o *opts) error {
		if name == "" {
			return weather.ErrBadParameter.With("server name is empty")
		}
		o.name = name
		return nil
	}
}

// WithInstructions sets the usage hint returned during initialization
func WithInstructions(text string) Opt {
	return func(o *opts) error {
		o.instructions = text
		return nil
	}
}

// WithLogger sets the logger for requests and handlers
func WithLogger(logger *zap.Logger) Opt {
	return func(o *opts) error {
		if logger == nil {
			return weather.ErrBadParameter.With("logger is nil")
		}
		o.logger = logger
		return nil
	}
}

// WithClock sets the time source used to stamp resource snapshots
func WithClock(clock func() time.Time) Opt {
	return func(o *opts) error {
		if clock == nil {
			return weather.ErrBadParameter.With("clock is nil")
		}
		o.clock = clock
		return nil
	}
}
