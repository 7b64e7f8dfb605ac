/*
openai implements a backend for the OpenAI Chat Completions API.
https://platform.openai.com/docs/api-reference/chat
*/
package openai

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
	Name         = "openai"
	DefaultModel = "gpt-4o-mini"
	endPoint     = "https://api.openai.com/v1"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a new OpenAI backend with the given API key and model.
// The default model is used when model is empty.
func New(apiKey, model string, opts ...client.ClientOpt) (*Client, error) {
	if apiKey == "" {
		return nil, weather.ErrBadParameter.With("OPENAI_API_KEY is required")
	}
	if model == "" {
		model = DefaultModel
	}
	defaults := []client.ClientOpt{
		client.OptEndpoint(endPoint),
		client.OptReqToken(client.Token{Scheme: client.Bearer, Value: apiKey}),
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
