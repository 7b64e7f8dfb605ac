package client_test

import (
	"context"
	"encoding/json"
	"testing"

	// Packages
	mcp "github.com/modelcontextprotocol/go-sdk/mcp"
	weather "github.com/mutablelogic/go-mcp-weather"
	client "github.com/mutablelogic/go-mcp-weather/pkg/mcp/client"
	server "github.com/mutablelogic/go-mcp-weather/pkg/mcp/server"
	store "github.com/mutablelogic/go-mcp-weather/pkg/store"
	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
	zaptest "go.uber.org/zap/zaptest"
)

// connect returns a client connected to a weather server over in-memory transports
func connect(t *testing.T) *client.Client {
	t.Helper()
	ctx := context.Background()
	logger := zaptest.NewLogger(t)

	srv, err := server.New(store.Default(), server.WithLogger(logger))
	require.NoError(t, err)
	clientTransport, serverTransport := mcp.NewInMemoryTransports()
	serverSession, err := srv.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { serverSession.Close() })

	c, err := client.New(client.WithLogger(logger))
	require.NoError(t, err)
	require.NoError(t, c.Connect(ctx, clientTransport))
	t.Cleanup(func() { c.Close() })
	return c
}

func Test_client_001(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	// Every method fails before connecting
	c, err := client.New()
	require.NoError(t, err)
	assert.False(c.Connected())

	_, err = c.ListResources(ctx)
	assert.ErrorIs(err, weather.ErrNotConnected)
	_, err = c.ReadResource(ctx, "weather://london")
	assert.ErrorIs(err, weather.ErrNotConnected)
	_, err = c.ListTools(ctx)
	assert.ErrorIs(err, weather.ErrNotConnected)
	_, err = c.CallTool(ctx, "get_current_weather", map[string]any{"city": "london"})
	assert.ErrorIs(err, weather.ErrNotConnected)
	_, err = c.ListPrompts(ctx)
	assert.ErrorIs(err, weather.ErrNotConnected)
	_, err = c.GetPrompt(ctx, "weather_report", map[string]string{"city": "london"})
	assert.ErrorIs(err, weather.ErrNotConnected)
	assert.ErrorIs(c.Ping(ctx), weather.ErrNotConnected)

	// Closing an unconnected client is a no-op
	assert.NoError(c.Close())
}

func Test_client_002(t *testing.T) {
	assert := assert.New(t)

	// Options are validated
	_, err := client.New(client.WithName(""))
	assert.ErrorIs(err, weather.ErrBadParameter)
	_, err = client.New(client.WithLogger(nil))
	assert.ErrorIs(err, weather.ErrBadParameter)

	c, err := client.New()
	require.NoError(t, err)
	assert.ErrorIs(c.ConnectCommand(context.Background(), ""), weather.ErrBadParameter)
}

func Test_client_003(t *testing.T) {
	assert := assert.New(t)
	c := connect(t)
	ctx := context.Background()

	// Connecting twice is a conflict
	assert.True(c.Connected())
	_, transport := mcp.NewInMemoryTransports()
	assert.ErrorIs(c.Connect(ctx, transport), weather.ErrConflict)
	assert.NoError(c.Ping(ctx))

	// After closing, methods fail again
	assert.NoError(c.Close())
	assert.False(c.Connected())
	_, err := c.ListTools(ctx)
	assert.ErrorIs(err, weather.ErrNotConnected)
}

func Test_client_004(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	c := connect(t)
	ctx := context.Background()

	// Resources are listed and read as text
	resources, err := c.ListResources(ctx)
	require.NoError(err)
	require.Len(resources, 4)
	for _, r := range resources {
		text, err := c.ReadResource(ctx, r.URI)
		require.NoError(err, r.URI)
		var snapshot map[string]any
		require.NoError(json.Unmarshal([]byte(text), &snapshot))
		assert.Contains(r.Name, snapshot["city"])
		assert.NotEmpty(snapshot["timestamp"])
	}

	// Unknown resources fail
	_, err = c.ReadResource(ctx, "weather://atlantis")
	assert.Error(err)
}

func Test_client_005(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	c := connect(t)
	ctx := context.Background()

	// Every listed tool can be called with minimal arguments
	tools, err := c.ListTools(ctx)
	require.NoError(err)
	require.Len(tools, 3)
	minimal := map[string]map[string]any{
		"get_current_weather":     {"city": "london"},
		"compare_weather":         {"city1": "new_york", "city2": "tokyo"},
		"get_temperature_summary": nil,
	}
	for _, tool := range tools {
		assert.Equal("object", tool.InputSchema["type"], tool.Name)
		args, exists := minimal[tool.Name]
		require.True(exists, tool.Name)
		text, err := c.CallTool(ctx, tool.Name, args)
		assert.NoError(err, tool.Name)
		assert.NotEmpty(text, tool.Name)
	}
}

func Test_client_006(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	c := connect(t)
	ctx := context.Background()
	_, err := c.ListTools(ctx)
	require.NoError(err)

	// Cached schemas reject missing arguments before calling the server
	_, err = c.CallTool(ctx, "compare_weather", map[string]any{"city1": "london"})
	assert.ErrorIs(err, weather.ErrBadParameter)

	// Unknown cities and tools are soft errors
	text, err := c.CallTool(ctx, "get_current_weather", map[string]any{"city": "atlantis"})
	assert.NoError(err)
	assert.Contains(text, "Unknown city")
	text, err = c.CallTool(ctx, "get_forecast", nil)
	assert.NoError(err)
	assert.Equal("Error: Unknown tool 'get_forecast'", text)
}

func Test_client_007(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	c := connect(t)
	ctx := context.Background()

	// Prompts are listed and rendered
	prompts, err := c.ListPrompts(ctx)
	require.NoError(err)
	require.Len(prompts, 2)
	for _, p := range prompts {
		assert.NotEmpty(p.Description)
		assert.NotEmpty(p.Arguments)
	}

	result, err := c.GetPrompt(ctx, "travel_weather_advice", map[string]string{"origin": "London", "destination": "Paris"})
	require.NoError(err)
	assert.Equal("Travel advice from london to paris", result.Description)
	require.Len(result.Messages, 1)
	assert.Equal("user", result.Messages[0].Role)
	assert.Contains(result.Messages[0].Text, "I'm traveling from london to paris.")

	// Unknown prompts fail
	_, err = c.GetPrompt(ctx, "daily_digest", nil)
	assert.Error(err)
}
