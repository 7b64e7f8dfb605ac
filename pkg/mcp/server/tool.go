package server

import (
	"context"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	mcp "github.com/modelcontextprotocol/go-sdk/mcp"
	report "github.com/mutablelogic/go-mcp-weather/pkg/report"
	zap "go.uber.org/zap"
)

///////////////////////////////////////////////////////////////////////
// TYPES

type currentWeatherArgs struct {
	City string `json:"city"`
}

type compareWeatherArgs struct {
	City1 string `json:"city1"`
	City2 string `json:"city2"`
}

type temperatureSummaryArgs struct{}

///////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	ToolCurrentWeather     = "get_current_weather"
	ToolCompareWeather     = "compare_weather"
	ToolTemperatureSummary = "get_temperature_summary"
)

///////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (s *Server) registerTools() {
	mcp.AddTool(s.Server, &mcp.Tool{
		Name:        ToolCurrentWeather,
		Description: "Get the current weather for a specific city",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"city": {Type: "string", Description: "The city name (e.g., new_york, london, tokyo, paris)"},
			},
			Required: []string{"city"},
		},
	}, s.currentWeather)
	s.tools[ToolCurrentWeather] = true

	mcp.AddTool(s.Server, &mcp.Tool{
		Name:        ToolCompareWeather,
		Description: "Compare weather conditions between two cities",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"city1": {Type: "string", Description: "First city name"},
				"city2": {Type: "string", Description: "Second city name"},
			},
			Required: []string{"city1", "city2"},
		},
	}, s.compareWeather)
	s.tools[ToolCompareWeather] = true

	mcp.AddTool(s.Server, &mcp.Tool{
		Name:        ToolTemperatureSummary,
		Description: "Get a summary of temperatures across all cities",
		InputSchema: &jsonschema.Schema{
			Type:       "object",
			Properties: map[string]*jsonschema.Schema{},
		},
	}, s.temperatureSummary)
	s.tools[ToolTemperatureSummary] = true
}

func (s *Server) currentWeather(_ context.Context, _ *mcp.CallToolRequest, args currentWeatherArgs) (*mcp.CallToolResult, any, error) {
	s.log.Debug(ToolCurrentWeather, zap.String("city", args.City))
	return textResult(report.CurrentWeather(s.store, args.City)), nil, nil
}

func (s *Server) compareWeather(_ context.Context, _ *mcp.CallToolRequest, args compareWeatherArgs) (*mcp.CallToolResult, any, error) {
	s.log.Debug(ToolCompareWeather, zap.String("city1", args.City1), zap.String("city2", args.City2))
	return textResult(report.CompareWeather(s.store, args.City1, args.City2)), nil, nil
}

func (s *Server) temperatureSummary(_ context.Context, _ *mcp.CallToolRequest, _ temperatureSummaryArgs) (*mcp.CallToolResult, any, error) {
	s.log.Debug(ToolTemperatureSummary)
	return textResult(report.TemperatureSummary(s.store)), nil, nil
}

// Unknown cities are reported in the text, so results are never flagged
// as errors
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}
