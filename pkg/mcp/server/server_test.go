package server_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	// Packages
	mcp "github.com/modelcontextprotocol/go-sdk/mcp"
	weather "github.com/mutablelogic/go-mcp-weather"
	server "github.com/mutablelogic/go-mcp-weather/pkg/mcp/server"
	store "github.com/mutablelogic/go-mcp-weather/pkg/store"
	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
	zaptest "go.uber.org/zap/zaptest"
)

var epoch = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

// connect returns a client session connected to a server over in-memory transports
func connect(t *testing.T) *mcp.ClientSession {
	t.Helper()
	ctx := context.Background()

	srv, err := server.New(store.Default(),
		server.WithLogger(zaptest.NewLogger(t)),
		server.WithClock(func() time.Time { return epoch }),
	)
	require.NoError(t, err)

	clientTransport, serverTransport := mcp.NewInMemoryTransports()
	serverSession, err := srv.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { serverSession.Close() })

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "v0.0.0"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { session.Close() })

	return session
}

func text(t *testing.T, content []mcp.Content) string {
	t.Helper()
	var result []string
	for _, c := range content {
		if tc, ok := c.(*mcp.TextContent); ok {
			result = append(result, tc.Text)
		}
	}
	return strings.Join(result, "\n")
}

func Test_server_001(t *testing.T) {
	assert := assert.New(t)

	// A store is required, and options are validated
	_, err := server.New(nil)
	assert.ErrorIs(err, weather.ErrBadParameter)
	_, err = server.New(store.Default(), server.WithName(""))
	assert.ErrorIs(err, weather.ErrBadParameter)
	_, err = server.New(store.Default(), server.WithLogger(nil))
	assert.ErrorIs(err, weather.ErrBadParameter)

	srv, err := server.New(store.Default(), server.WithName("weather-test"), server.WithInstructions(""))
	if assert.NoError(err) {
		assert.Equal([]string{"get_current_weather", "compare_weather", "get_temperature_summary"}, srv.ToolNames())
	}
}

func Test_server_002(t *testing.T) {
	assert := assert.New(t)
	session := connect(t)

	// The server announces its identity
	result := session.InitializeResult()
	if assert.NotNil(result) && assert.NotNil(result.ServerInfo) {
		assert.Equal(server.DefaultName, result.ServerInfo.Name)
	}
}

func Test_server_003(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	session := connect(t)
	ctx := context.Background()

	// One resource per city
	resources, err := session.ListResources(ctx, nil)
	require.NoError(err)
	require.Len(resources.Resources, 4)
	uris := make([]string, 0, len(resources.Resources))
	for _, r := range resources.Resources {
		uris = append(uris, r.URI)
		assert.Equal("application/json", r.MIMEType)
		assert.True(strings.HasPrefix(r.Name, "Weather for "))
		assert.True(strings.HasPrefix(r.Description, "Current weather conditions in "))
	}
	assert.ElementsMatch([]string{"weather://new_york", "weather://london", "weather://tokyo", "weather://paris"}, uris)
}

func Test_server_004(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	session := connect(t)
	ctx := context.Background()

	// Reading each city returns a JSON snapshot with a timestamp
	for key, city := range map[string]string{"new_york": "New York", "london": "London", "tokyo": "Tokyo", "paris": "Paris"} {
		result, err := session.ReadResource(ctx, &mcp.ReadResourceParams{URI: server.ResourceURI(key)})
		require.NoError(err, key)
		require.Len(result.Contents, 1)
		assert.Equal("application/json", result.Contents[0].MIMEType)

		var snapshot map[string]any
		require.NoError(json.Unmarshal([]byte(result.Contents[0].Text), &snapshot))
		assert.Equal(city, snapshot["city"])
		for _, field := range []string{"temperature", "conditions", "humidity", "wind_speed"} {
			assert.Contains(snapshot, field)
		}
		ts, err := time.Parse(time.RFC3339, snapshot["timestamp"].(string))
		assert.NoError(err)
		assert.True(epoch.Equal(ts))
	}

	// Unknown cities are not found
	_, err := session.ReadResource(ctx, &mcp.ReadResourceParams{URI: "weather://atlantis"})
	assert.Error(err)
}

func Test_server_005(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	session := connect(t)
	ctx := context.Background()

	// Three tools, with object input schemas
	tools, err := session.ListTools(ctx, nil)
	require.NoError(err)
	names := make([]string, 0, len(tools.Tools))
	for _, tool := range tools.Tools {
		names = append(names, tool.Name)
		assert.NotEmpty(tool.Description)
		data, err := json.Marshal(tool.InputSchema)
		require.NoError(err)
		var schema map[string]any
		require.NoError(json.Unmarshal(data, &schema))
		assert.Equal("object", schema["type"], tool.Name)
	}
	assert.ElementsMatch([]string{"get_current_weather", "compare_weather", "get_temperature_summary"}, names)
}

func Test_server_006(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	session := connect(t)
	ctx := context.Background()

	// Current weather for a known city
	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      server.ToolCurrentWeather,
		Arguments: map[string]any{"city": "London"},
	})
	require.NoError(err)
	assert.False(result.IsError)
	assert.Contains(text(t, result.Content), "Current weather in London:")
	assert.Contains(text(t, result.Content), "Temperature: 58°F")

	// Unknown cities are reported in the text
	result, err = session.CallTool(ctx, &mcp.CallToolParams{
		Name:      server.ToolCurrentWeather,
		Arguments: map[string]any{"city": "atlantis"},
	})
	require.NoError(err)
	assert.Contains(text(t, result.Content), "Unknown city")
}

func Test_server_007(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	session := connect(t)
	ctx := context.Background()

	// Compare and summarize
	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      server.ToolCompareWeather,
		Arguments: map[string]any{"city1": "new_york", "city2": "tokyo"},
	})
	require.NoError(err)
	assert.Contains(text(t, result.Content), "Temperature difference: 4°F (New York is warmer)")

	result, err = session.CallTool(ctx, &mcp.CallToolParams{
		Name:      server.ToolTemperatureSummary,
		Arguments: map[string]any{},
	})
	require.NoError(err)
	summary := text(t, result.Content)
	assert.Contains(summary, "Average Temperature: 65.0°F")
	assert.Contains(summary, "Hottest: New York at 72°F")
	assert.Contains(summary, "Coldest: London at 58°F")
}

func Test_server_008(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	session := connect(t)
	ctx := context.Background()

	// Unknown tools are answered with text rather than a protocol error
	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "get_forecast",
		Arguments: map[string]any{"city": "paris"},
	})
	require.NoError(err)
	assert.Equal("Error: Unknown tool 'get_forecast'", text(t, result.Content))
}

func Test_server_009(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	session := connect(t)
	ctx := context.Background()

	// Two prompts with required arguments
	prompts, err := session.ListPrompts(ctx, nil)
	require.NoError(err)
	require.Len(prompts.Prompts, 2)
	for _, prompt := range prompts.Prompts {
		assert.NotEmpty(prompt.Arguments)
		for _, arg := range prompt.Arguments {
			assert.True(arg.Required, arg.Name)
		}
	}

	// Render the weather report
	result, err := session.GetPrompt(ctx, &mcp.GetPromptParams{
		Name:      server.PromptWeatherReport,
		Arguments: map[string]string{"city": "London"},
	})
	require.NoError(err)
	assert.Equal("Weather report for london", result.Description)
	require.Len(result.Messages, 1)
	assert.Equal(mcp.Role("user"), result.Messages[0].Role)
	assert.Contains(text(t, []mcp.Content{result.Messages[0].Content}), "detailed weather report for london")

	// An unknown city is inlined
	result, err = session.GetPrompt(ctx, &mcp.GetPromptParams{
		Name:      server.PromptWeatherReport,
		Arguments: map[string]string{"city": "atlantis"},
	})
	require.NoError(err)
	assert.Contains(text(t, []mcp.Content{result.Messages[0].Content}), "Unknown city 'atlantis'")

	// Travel advice
	result, err = session.GetPrompt(ctx, &mcp.GetPromptParams{
		Name:      server.PromptTravelAdvice,
		Arguments: map[string]string{"origin": "london", "destination": "tokyo"},
	})
	require.NoError(err)
	assert.Equal("Travel advice from london to tokyo", result.Description)
}

func Test_server_010(t *testing.T) {
	assert := assert.New(t)
	session := connect(t)
	ctx := context.Background()

	// Unknown prompts and missing arguments are errors
	_, err := session.GetPrompt(ctx, &mcp.GetPromptParams{Name: "daily_digest"})
	assert.Error(err)
	_, err = session.GetPrompt(ctx, &mcp.GetPromptParams{
		Name:      server.PromptTravelAdvice,
		Arguments: map[string]string{"origin": "london"},
	})
	assert.Error(err)
}
