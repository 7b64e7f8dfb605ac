package weather

import (
	"context"

	// Packages
	opt "github.com/mutablelogic/go-mcp-weather/pkg/opt"
	schema "github.com/mutablelogic/go-mcp-weather/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Backend is the interface implemented by each LLM provider
type Backend interface {
	// Return the provider name
	Name() string

	// Return the model used for generation
	Model() string

	// Generate sends the conversation and the available tools, and returns
	// the assistant message, which may contain tool calls
	Generate(ctx context.Context, conversation schema.Conversation, tools []schema.ToolDefinition, opts ...opt.Opt) (*schema.Message, error)
}

// ToolCaller is the interface which lists and invokes tools on a server
type ToolCaller interface {
	// ListTools returns the tools available on the server
	ListTools(ctx context.Context) ([]schema.ToolDefinition, error)

	// CallTool invokes a tool and returns the text of the result
	CallTool(ctx context.Context, name string, args map[string]any) (string, error)
}
