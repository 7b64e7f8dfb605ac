package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	// Packages
	mcp "github.com/modelcontextprotocol/go-sdk/mcp"
	weather "github.com/mutablelogic/go-mcp-weather"
	agent "github.com/mutablelogic/go-mcp-weather/pkg/agent"
	mcpclient "github.com/mutablelogic/go-mcp-weather/pkg/mcp/client"
	server "github.com/mutablelogic/go-mcp-weather/pkg/mcp/server"
	opt "github.com/mutablelogic/go-mcp-weather/pkg/opt"
	schema "github.com/mutablelogic/go-mcp-weather/pkg/schema"
	store "github.com/mutablelogic/go-mcp-weather/pkg/store"
	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
	zaptest "go.uber.org/zap/zaptest"
)

// connect returns a client connected to a weather server over in-memory transports
func connect(t *testing.T) *mcpclient.Client {
	t.Helper()
	ctx := context.Background()
	logger := zaptest.NewLogger(t)

	srv, err := server.New(store.Default(), server.WithLogger(logger))
	require.NoError(t, err)
	clientTransport, serverTransport := mcp.NewInMemoryTransports()
	serverSession, err := srv.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { serverSession.Close() })

	c, err := mcpclient.New(mcpclient.WithLogger(logger))
	require.NoError(t, err)
	require.NoError(t, c.Connect(ctx, clientTransport))
	t.Cleanup(func() { c.Close() })
	return c
}

// echoBackend answers every question with its last user message
type echoBackend struct{}

func (echoBackend) Name() string  { return "echo" }
func (echoBackend) Model() string { return "echo-1" }
func (echoBackend) Generate(_ context.Context, conversation schema.Conversation, _ []schema.ToolDefinition, _ ...opt.Opt) (*schema.Message, error) {
	return schema.NewMessage(schema.RoleAssistant, "echo: "+conversation.Last().Text()), nil
}

func Test_args_001(t *testing.T) {
	// Arguments are key=value pairs
	assert := assert.New(t)

	args, err := parseArgs([]string{"city1=new_york", "city2 =tokyo", "empty="})
	assert.NoError(err)
	assert.Equal(map[string]string{"city1": "new_york", "city2": "tokyo", "empty": ""}, args)
	assert.Equal(map[string]any{"city1": "new_york", "city2": "tokyo", "empty": ""}, toolArgs(args))

	_, err = parseArgs([]string{"london"})
	assert.ErrorIs(err, weather.ErrBadParameter)
	_, err = parseArgs([]string{"=london"})
	assert.ErrorIs(err, weather.ErrBadParameter)

	args, err = parseArgs(nil)
	assert.NoError(err)
	assert.Empty(args)
}

func Test_args_002(t *testing.T) {
	// Tool arguments are listed with optional ones marked
	assert := assert.New(t)

	assert.Equal([]string{"city1", "city2", "units?"}, toolArguments(map[string]any{
		"type": "object",
		"properties": map[string]any{
			"units": map[string]any{"type": "string"},
			"city2": map[string]any{"type": "string"},
			"city1": map[string]any{"type": "string"},
		},
		"required": []any{"city1", "city2"},
	}))
	assert.Empty(toolArguments(nil))
}

func Test_demo_001(t *testing.T) {
	// The demo walks through every operation against the server
	assert := assert.New(t)
	c := connect(t)

	var buf bytes.Buffer
	require.NoError(t, demo(context.Background(), c, &buf))
	out := buf.String()
	assert.Contains(out, "WEATHER MCP CLIENT DEMONSTRATION")
	assert.Contains(out, "URI: weather://tokyo")
	assert.Contains(out, `"city": "New York"`)
	assert.Contains(out, "Tool: compare_weather")
	assert.Contains(out, "Current weather in London")
	assert.Contains(out, "New York is warmer")
	assert.Contains(out, "Prompt: travel_weather_advice")
	assert.Contains(out, "Paris")
	assert.Contains(out, "DEMONSTRATION COMPLETE")
}

func Test_chat_001(t *testing.T) {
	// Questions are answered until quit, and blank lines are skipped
	assert := assert.New(t)

	a, err := agent.New(echoBackend{}, connect(t))
	require.NoError(t, err)

	var out bytes.Buffer
	in := strings.NewReader("Hello\n\n  \nIs it raining?\nQUIT\nNever asked\n")
	assert.NoError(chat(context.Background(), a, in, &out, strings.ToUpper))
	assert.Contains(out.String(), "Assistant: ECHO: HELLO")
	assert.Contains(out.String(), "Assistant: ECHO: IS IT RAINING?")
	assert.NotContains(out.String(), "NEVER ASKED")
	assert.Contains(out.String(), "Goodbye!")
	assert.Equal(2, strings.Count(out.String(), "Assistant:"))
}

func Test_chat_002(t *testing.T) {
	// End of input and cancellation end the loop
	assert := assert.New(t)

	a, err := agent.New(echoBackend{}, connect(t))
	require.NoError(t, err)

	var out bytes.Buffer
	assert.NoError(chat(context.Background(), a, strings.NewReader("q?\n"), &out, func(s string) string { return s }))
	assert.Contains(out.String(), "Assistant: echo: q?")
	assert.Contains(out.String(), "Goodbye!")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	out.Reset()
	assert.NoError(chat(ctx, a, strings.NewReader(""), &out, func(s string) string { return s }))
	assert.Contains(out.String(), "Goodbye!")
}
