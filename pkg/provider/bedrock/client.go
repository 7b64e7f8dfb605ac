/*
bedrock implements a backend for Claude models hosted on AWS Bedrock,
using the Anthropic messages body with the InvokeModel API.
*/
package bedrock

import (
	"context"

	// Packages
	aws "github.com/aws/aws-sdk-go-v2/aws"
	bedrockruntime "github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	weather "github.com/mutablelogic/go-mcp-weather"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// InvokeModelAPI is the part of the Bedrock runtime client used here
type InvokeModelAPI interface {
	InvokeModel(ctx context.Context, params *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error)
}

type Client struct {
	api   InvokeModelAPI
	model string
}

var _ weather.Backend = (*Client)(nil)
var _ InvokeModelAPI = (*bedrockruntime.Client)(nil)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	Name             = "bedrock"
	DefaultModel     = "anthropic.claude-3-5-sonnet-20241022-v2:0"
	anthropicVersion = "bedrock-2023-05-31"
	contentTypeJSON  = "application/json"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a backend which invokes the model through api. The
// default model is used when model is empty.
func New(api InvokeModelAPI, model string) (*Client, error) {
	if api == nil {
		return nil, weather.ErrBadParameter.With("bedrock runtime client is required")
	}
	if model == "" {
		model = DefaultModel
	}
	return &Client{api: api, model: model}, nil
}

// NewFromConfig creates a backend with a Bedrock runtime client for the
// AWS configuration
func NewFromConfig(cfg aws.Config, model string) (*Client, error) {
	return New(bedrockruntime.NewFromConfig(cfg), model)
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Name returns the provider name
func (*Client) Name() string {
	return Name
}

// Model returns the model identifier used for generation
func (c *Client) Model() string {
	return c.model
}
