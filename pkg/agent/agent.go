// Package agent answers natural language questions with an LLM backend,
// which may call one tool on the weather server per question.
package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	// Packages
	uuid "github.com/google/uuid"
	weather "github.com/mutablelogic/go-mcp-weather"
	opt "github.com/mutablelogic/go-mcp-weather/pkg/opt"
	schema "github.com/mutablelogic/go-mcp-weather/pkg/schema"
	zap "go.uber.org/zap"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Agent struct {
	backend  weather.Backend
	caller   weather.ToolCaller
	log      *zap.Logger
	generate []opt.Opt

	mu    sync.Mutex
	tools []schema.ToolDefinition
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// SystemPrompt starts every chat session
	SystemPrompt = "You are a helpful weather assistant. You have access to weather tools that can provide current weather information for New York, London, Tokyo, and Paris. Use the tools to answer user questions about weather. Be concise and friendly."
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New returns an agent which generates with backend and calls tools with caller
func New(backend weather.Backend, caller weather.ToolCaller, opt ...Opt) (*Agent, error) {
	if backend == nil {
		return nil, weather.ErrBadParameter.With("backend is required")
	}
	if caller == nil {
		return nil, weather.ErrBadParameter.With("tool caller is required")
	}
	o, err := applyOpts(opt...)
	if err != nil {
		return nil, err
	}
	return &Agent{
		backend:  backend,
		caller:   caller,
		log:      o.log,
		generate: o.generate,
	}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Backend returns the LLM backend
func (a *Agent) Backend() weather.Backend {
	return a.backend
}

// LoadTools fetches the tool definitions which are offered to the backend
func (a *Agent) LoadTools(ctx context.Context) ([]schema.ToolDefinition, error) {
	tools, err := a.caller.ListTools(ctx)
	if err != nil {
		return nil, err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.tools = tools
	return tools, nil
}

// Tools returns the tool definitions from the last call to LoadTools
func (a *Agent) Tools() []schema.ToolDefinition {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.tools
}

// Query appends text to the conversation and returns the answer. Any
// failure is returned as the answer text, and the conversation keeps the
// question but nothing after it.
func (a *Agent) Query(ctx context.Context, conversation *schema.Conversation, text string) string {
	conversation.Append(schema.NewMessage(schema.RoleUser, text))
	n := len(*conversation)

	answer, err := a.query(ctx, conversation)
	if err != nil {
		conversation.Truncate(n)
		a.log.Warn("query failed", zap.String("provider", a.backend.Name()), zap.Error(err))
		return fmt.Sprintf("Error processing query: %v", err)
	}
	return answer
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// query runs at most two backend steps: the first response either answers
// directly or requests a tool, in which case one follow-up answers
func (a *Agent) query(ctx context.Context, conversation *schema.Conversation) (string, error) {
	tools := a.Tools()

	response, err := a.backend.Generate(ctx, *conversation, tools, a.generate...)
	if err != nil {
		return "", err
	} else if response == nil {
		return "", weather.ErrInternalServerError.With("empty response")
	}

	calls := response.ToolCalls()
	if len(calls) == 0 {
		return a.answer(conversation, response), nil
	} else if len(calls) > 1 {
		a.log.Warn("only the first tool call is executed", zap.Int("requested", len(calls)))
	}

	// Run the first tool call
	call := calls[0]
	if call.ID == "" {
		call.ID = uuid.NewString()
	}
	args, err := toolArguments(call.Input)
	if err != nil {
		return "", err
	}
	a.log.Debug("calling tool", zap.String("tool", call.Name), zap.Any("args", args))
	result, err := a.caller.CallTool(ctx, call.Name, args)
	if err != nil {
		return "", err
	}
	a.log.Debug("tool result", zap.String("tool", call.Name), zap.String("result", result))

	// Send the result back
	conversation.Append(schema.NewToolCallMessage(call))
	conversation.Append(schema.NewToolResultMessage(schema.NewToolResult(call.ID, call.Name, result)))
	response, err = a.backend.Generate(ctx, *conversation, tools, a.generate...)
	if err != nil {
		return "", err
	} else if response == nil {
		return "", weather.ErrInternalServerError.With("empty response")
	}
	return a.answer(conversation, response), nil
}

// answer appends the text of the response to the conversation
func (a *Agent) answer(conversation *schema.Conversation, response *schema.Message) string {
	text := response.Text()
	if text != "" {
		conversation.Append(schema.NewMessage(schema.RoleAssistant, text))
	}
	return text
}

// toolArguments decodes the arguments of a tool call, where empty input
// is an empty object
func toolArguments(input json.RawMessage) (map[string]any, error) {
	args := make(map[string]any)
	if len(input) == 0 || string(input) == "null" {
		return args, nil
	}
	if err := json.Unmarshal(input, &args); err != nil {
		return nil, weather.ErrBadParameter.Withf("tool arguments: %v", err)
	}
	return args, nil
}
