package client

import (
	"context"
	"encoding/json"
	"strings"

	// Packages
	mcp "github.com/modelcontextprotocol/go-sdk/mcp"
	weather "github.com/mutablelogic/go-mcp-weather"
	zap "go.uber.org/zap"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// CallTool invokes a tool and returns the text of the result. When the
// tool was returned by a previous ListTools, the arguments are validated
// against its input schema first. Unknown tools are passed to the server.
func (c *Client) CallTool(ctx context.Context, name string, args map[string]any) (string, error) {
	session, err := c.get()
	if err != nil {
		return "", err
	}
	if args == nil {
		args = map[string]any{}
	}
	if err := c.validate(name, args); err != nil {
		return "", err
	}

	c.log.Debug("call_tool", zap.String("tool", name), zap.Any("args", args))
	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	if err != nil {
		return "", err
	}
	if result.IsError {
		c.log.Warn("tool error", zap.String("tool", name))
	}
	return contentText(result.Content), nil
}

// ReadResource returns the text content of a resource
func (c *Client) ReadResource(ctx context.Context, uri string) (string, error) {
	session, err := c.get()
	if err != nil {
		return "", err
	}

	result, err := session.ReadResource(ctx, &mcp.ReadResourceParams{URI: uri})
	if err != nil {
		return "", err
	}

	var text []string
	for _, content := range result.Contents {
		if content != nil && content.Text != "" {
			text = append(text, content.Text)
		}
	}
	return strings.Join(text, "\n"), nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (c *Client) validate(name string, args map[string]any) error {
	c.mu.Lock()
	resolved := c.schemas[name]
	c.mu.Unlock()
	if resolved == nil {
		return nil
	}

	// Validate the JSON form of the arguments
	data, err := json.Marshal(args)
	if err != nil {
		return weather.ErrBadParameter.Withf("%s: %v", name, err)
	}
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return weather.ErrBadParameter.Withf("%s: %v", name, err)
	}
	if err := resolved.Validate(value); err != nil {
		return weather.ErrBadParameter.Withf("%s: %v", name, err)
	}
	return nil
}

// contentText joins the text parts of tool or prompt content
func contentText(content []mcp.Content) string {
	var text []string
	for _, c := range content {
		switch c := c.(type) {
		case *mcp.TextContent:
			text = append(text, c.Text)
		case *mcp.EmbeddedResource:
			if c.Resource != nil && c.Resource.Text != "" {
				text = append(text, c.Resource.Text)
			}
		}
	}
	return strings.Join(text, "\n")
}
