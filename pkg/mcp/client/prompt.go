package client

import (
	"context"

	// Packages
	mcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// GetPrompt renders a prompt with the given arguments
func (c *Client) GetPrompt(ctx context.Context, name string, args map[string]string) (*PromptResult, error) {
	session, err := c.get()
	if err != nil {
		return nil, err
	}

	result, err := session.GetPrompt(ctx, &mcp.GetPromptParams{
		Name:      name,
		Arguments: args,
	})
	if err != nil {
		return nil, err
	}

	prompt := &PromptResult{
		Description: result.Description,
		Messages:    make([]PromptMessage, 0, len(result.Messages)),
	}
	for _, message := range result.Messages {
		if message == nil {
			continue
		}
		prompt.Messages = append(prompt.Messages, PromptMessage{
			Role: string(message.Role),
			Text: contentText([]mcp.Content{message.Content}),
		})
	}
	return prompt, nil
}
