package client

import (
	"context"
	"encoding/json"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	mcp "github.com/modelcontextprotocol/go-sdk/mcp"
	schema "github.com/mutablelogic/go-mcp-weather/pkg/schema"
	zap "go.uber.org/zap"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ListResources returns the resources available on the server
func (c *Client) ListResources(ctx context.Context) ([]Resource, error) {
	session, err := c.get()
	if err != nil {
		return nil, err
	}

	var result []Resource
	params := new(mcp.ListResourcesParams)
	for {
		resp, err := session.ListResources(ctx, params)
		if err != nil {
			return nil, err
		}
		for _, r := range resp.Resources {
			result = append(result, Resource{
				URI:         r.URI,
				Name:        r.Name,
				Description: r.Description,
				MIMEType:    r.MIMEType,
			})
		}

		// Check for next page
		if resp.NextCursor == "" {
			break
		}
		params.Cursor = resp.NextCursor
	}
	return result, nil
}

// ListTools returns the tools available on the server. The input schemas
// are cached for validating arguments in CallTool.
func (c *Client) ListTools(ctx context.Context) ([]schema.ToolDefinition, error) {
	session, err := c.get()
	if err != nil {
		return nil, err
	}

	var result []schema.ToolDefinition
	schemas := make(map[string]*jsonschema.Resolved)
	params := new(mcp.ListToolsParams)
	for {
		resp, err := session.ListTools(ctx, params)
		if err != nil {
			return nil, err
		}
		for _, tool := range resp.Tools {
			def, resolved, err := toolDefinition(tool)
			if err != nil {
				c.log.Warn("invalid input schema", zap.String("tool", tool.Name), zap.Error(err))
			}
			if resolved != nil {
				schemas[tool.Name] = resolved
			}
			result = append(result, def)
		}

		// Check for next page
		if resp.NextCursor == "" {
			break
		}
		params.Cursor = resp.NextCursor
	}

	// Cache the schemas
	c.mu.Lock()
	c.schemas = schemas
	c.mu.Unlock()

	return result, nil
}

// ListPrompts returns the prompts available on the server
func (c *Client) ListPrompts(ctx context.Context) ([]Prompt, error) {
	session, err := c.get()
	if err != nil {
		return nil, err
	}

	var result []Prompt
	params := new(mcp.ListPromptsParams)
	for {
		resp, err := session.ListPrompts(ctx, params)
		if err != nil {
			return nil, err
		}
		for _, p := range resp.Prompts {
			prompt := Prompt{Name: p.Name, Description: p.Description}
			for _, arg := range p.Arguments {
				prompt.Arguments = append(prompt.Arguments, PromptArgument{
					Name:        arg.Name,
					Description: arg.Description,
					Required:    arg.Required,
				})
			}
			result = append(result, prompt)
		}

		// Check for next page
		if resp.NextCursor == "" {
			break
		}
		params.Cursor = resp.NextCursor
	}
	return result, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// toolDefinition converts a tool, whose input schema may be any JSON value,
// into a definition and a resolved schema
func toolDefinition(tool *mcp.Tool) (schema.ToolDefinition, *jsonschema.Resolved, error) {
	def := schema.ToolDefinition{Name: tool.Name, Description: tool.Description}
	if tool.InputSchema == nil {
		return def, nil, nil
	}

	data, err := json.Marshal(tool.InputSchema)
	if err != nil {
		return def, nil, err
	}
	if err := json.Unmarshal(data, &def.InputSchema); err != nil {
		return def, nil, err
	}

	var s jsonschema.Schema
	if err := json.Unmarshal(data, &s); err != nil {
		return def, nil, err
	}
	resolved, err := s.Resolve(nil)
	if err != nil {
		return def, nil, err
	}
	return def, resolved, nil
}
