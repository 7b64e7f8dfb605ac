package agent

import (
	// Packages
	opt "github.com/mutablelogic/go-mcp-weather/pkg/opt"
	zap "go.uber.org/zap"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type Opt func(*opts) error

type opts struct {
	log      *zap.Logger
	generate []opt.Opt
}

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func applyOpts(opt ...Opt) (*opts, error) {
	o := new(opts)
	for _, fn := range opt {
		if err := fn(o); err != nil {
			return nil, err
		}
	}
	if o.log == nil {
		o.log = zap.NewNop()
	}
	return o, nil
}

////////////////////////////////////////////////////////////////////////////////
// OPTIONS

// WithLogger sets the logger for tool calls and failed queries
func WithLogger(logger *zap.Logger) Opt {
	return func(o *opts) error {
		o.log = logger
		return nil
	}
}

// WithGenerateOpts appends options passed to the backend on every request
func WithGenerateOpts(generate ...opt.Opt) Opt {
	return func(o *opts) error {
		o.generate = append(o.generate, generate...)
		return nil
	}
}
