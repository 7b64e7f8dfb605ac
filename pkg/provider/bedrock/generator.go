package bedrock

import (
	"context"
	"encoding/json"

	// Packages
	aws "github.com/aws/aws-sdk-go-v2/aws"
	bedrockruntime "github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	weather "github.com/mutablelogic/go-mcp-weather"
	opt "github.com/mutablelogic/go-mcp-weather/pkg/opt"
	anthropic "github.com/mutablelogic/go-mcp-weather/pkg/provider/anthropic"
	schema "github.com/mutablelogic/go-mcp-weather/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Generate sends the conversation and tools to the model, and returns the
// assistant message
func (c *Client) Generate(ctx context.Context, conversation schema.Conversation, tools []schema.ToolDefinition, opts ...opt.Opt) (*schema.Message, error) {
	// The model is named by the invocation, and the version in the body
	request, err := anthropic.NewRequest("", conversation, tools, opts...)
	if err != nil {
		return nil, err
	}
	request.AnthropicVersion = anthropicVersion

	body, err := json.Marshal(request)
	if err != nil {
		return nil, err
	}

	output, err := c.api.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(c.model),
		Body:        body,
		ContentType: aws.String(contentTypeJSON),
		Accept:      aws.String(contentTypeJSON),
	})
	if err != nil {
		return nil, err
	}

	var response anthropic.Response
	if err := json.Unmarshal(output.Body, &response); err != nil {
		return nil, weather.ErrInternalServerError.Withf("invalid response body: %v", err)
	}
	return response.Message(), nil
}
