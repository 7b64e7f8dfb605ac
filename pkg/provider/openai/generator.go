package openai

import (
	"context"

	// Packages
	client "github.com/mutablelogic/go-client"
	opt "github.com/mutablelogic/go-mcp-weather/pkg/opt"
	schema "github.com/mutablelogic/go-mcp-weather/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Generate sends the conversation and tools, and returns the assistant message
func (c *Client) Generate(ctx context.Context, conversation schema.Conversation, tools []schema.ToolDefinition, opts ...opt.Opt) (*schema.Message, error) {
	// Build request
	request, err := newRequest(c.model, conversation, tools, opts...)
	if err != nil {
		return nil, err
	}

	// Create JSON payload
	payload, err := client.NewJSONRequest(request)
	if err != nil {
		return nil, err
	}

	// Send the request
	var response chatCompletionResponse
	if err := c.DoWithContext(ctx, payload, &response, client.OptPath("chat", "completions")); err != nil {
		return nil, err
	}

	return messageFromResponse(&response)
}
