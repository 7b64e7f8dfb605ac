/*
anthropic implements a backend for the Anthropic Messages API.
https://docs.anthropic.com/en/api/messages
*/
package anthropic

import (
	// Packages
	client "github.com/mutablelogic/go-client"
	weather "github.com/mutablelogic/go-mcp-weather"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Client struct {
	*client.Client
	model string
}

var _ weather.Backend = (*Client)(nil)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	Name         = "anthropic"
	DefaultModel = "claude-3-5-sonnet-20241022"
	endPoint     = "https://api.anthropic.com/v1"
	apiVersion   = "2023-06-01"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a new Anthropic backend with the given API key and model.
// The default model is used when model is empty.
func New(apiKey, model string, opts ...client.ClientOpt) (*Client, error) {
	if apiKey == "" {
		return nil, weather.ErrBadParameter.With("ANTHROPIC_API_KEY is required")
	}
	if model == "" {
		model = DefaultModel
	}
	defaults := []client.ClientOpt{
		client.OptEndpoint(endPoint),
		client.OptHeader("x-api-key", apiKey),
		client.OptHeader("anthropic-version", apiVersion),
	}
	if c, err := client.New(append(defaults, opts...)...); err != nil {
		return nil, err
	} else {
		return &Client{c, model}, nil
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Name returns the provider name
func (*Client) Name() string {
	return Name
}

// Model returns the model used for generation
func (c *Client) Model() string {
	return c.model
}
