package opt

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// A generic option type, which can set generation options on a backend
type Opt func(*opts) error

// set of options
type opts struct {
	url.Values
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	SystemPromptKey = "system"
	MaxTokensKey    = "max_tokens"
	TemperatureKey  = "temperature"
	ToolChoiceKey   = "tool_choice"
)

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Apply returns a structure of applied options
func Apply(o ...Opt) (*opts, error) {
	opts := &opts{Values: make(url.Values)}
	for _, opt := range o {
		if opt == nil {
			continue
		}
		if err := opt(opts); err != nil {
			return nil, err
		}
	}
	return opts, nil
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// GetString returns the trimmed value for key, or empty string if not set
func (o *opts) GetString(key string) string {
	if values, ok := o.Values[key]; ok && len(values) > 0 {
		return strings.TrimSpace(values[0])
	}
	return ""
}

// GetFloat64 returns the float64 value for key, or 0 if not set or invalid
func (o *opts) GetFloat64(key string) float64 {
	if values, ok := o.Values[key]; ok && len(values) > 0 {
		if v, err := strconv.ParseFloat(strings.TrimSpace(values[0]), 64); err == nil {
			return v
		}
	}
	return 0
}

// GetUint returns the uint value for key, or 0 if not set or invalid
func (o *opts) GetUint(key string) uint {
	if values, ok := o.Values[key]; ok && len(values) > 0 {
		if v, err := strconv.ParseUint(strings.TrimSpace(values[0]), 10, 64); err == nil {
			return uint(v)
		}
	}
	return 0
}

// Has returns true if the key exists
func (o *opts) Has(key string) bool {
	_, ok := o.Values[key]
	return ok
}

////////////////////////////////////////////////////////////////////////////////
// OPTIONS

// Error returns an option that always returns an error
func Error(err error) Opt {
	return func(o *opts) error {
		return err
	}
}

// WithOpts combines multiple options into a single option
func WithOpts(options ...Opt) Opt {
	return func(o *opts) error {
		for _, opt := range options {
			if opt == nil {
				continue
			}
			if err := opt(o); err != nil {
				return err
			}
		}
		return nil
	}
}

// WithSystemPrompt sets the system prompt used when the conversation
// does not carry its own
func WithSystemPrompt(value string) Opt {
	return func(o *opts) error {
		o.Values.Set(SystemPromptKey, value)
		return nil
	}
}

// WithMaxTokens sets the upper bound on generated tokens
func WithMaxTokens(value uint) Opt {
	return func(o *opts) error {
		if value == 0 {
			return fmt.Errorf("max_tokens must be greater than zero")
		}
		o.Values.Set(MaxTokensKey, strconv.FormatUint(uint64(value), 10))
		return nil
	}
}

// WithTemperature sets the sampling temperature, between 0 and 1
func WithTemperature(value float64) Opt {
	return func(o *opts) error {
		if value < 0 || value > 1 {
			return fmt.Errorf("temperature must be between 0 and 1")
		}
		o.Values.Set(TemperatureKey, strconv.FormatFloat(value, 'f', -1, 64))
		return nil
	}
}

// WithToolChoice sets how the model may use tools: "auto", "any" or "none"
func WithToolChoice(value string) Opt {
	return func(o *opts) error {
		switch value {
		case "auto", "any", "none":
			o.Values.Set(ToolChoiceKey, value)
			return nil
		default:
			return fmt.Errorf("invalid tool choice %q", value)
		}
	}
}
