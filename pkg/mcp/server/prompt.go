package server

import (
	"context"
	"strings"

	// Packages
	mcp "github.com/modelcontextprotocol/go-sdk/mcp"
	weather "github.com/mutablelogic/go-mcp-weather"
	report "github.com/mutablelogic/go-mcp-weather/pkg/report"
	zap "go.uber.org/zap"
)

///////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	PromptWeatherReport = "weather_report"
	PromptTravelAdvice  = "travel_weather_advice"
)

///////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (s *Server) registerPrompts() {
	s.AddPrompt(&mcp.Prompt{
		Name:        PromptWeatherReport,
		Description: "Generate a weather report for a specific city",
		Arguments: []*mcp.PromptArgument{
			{Name: "city", Description: "The city to get weather for", Required: true},
		},
	}, s.weatherReport)

	s.AddPrompt(&mcp.Prompt{
		Name:        PromptTravelAdvice,
		Description: "Get travel advice based on weather in two cities",
		Arguments: []*mcp.PromptArgument{
			{Name: "origin", Description: "City you're traveling from", Required: true},
			{Name: "destination", Description: "City you're traveling to", Required: true},
		},
	}, s.travelAdvice)
}

func (s *Server) weatherReport(_ context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	args, err := promptArgs(req, "city")
	if err != nil {
		return nil, err
	}
	s.log.Debug(PromptWeatherReport, zap.String("city", args[0]))
	return promptResult(report.WeatherReport(s.store, args[0])), nil
}

func (s *Server) travelAdvice(_ context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	args, err := promptArgs(req, "origin", "destination")
	if err != nil {
		return nil, err
	}
	s.log.Debug(PromptTravelAdvice, zap.String("origin", args[0]), zap.String("destination", args[1]))
	return promptResult(report.TravelAdvice(args[0], args[1])), nil
}

// promptArgs returns the named arguments in order, lowercased. Every
// argument is required.
func promptArgs(req *mcp.GetPromptRequest, names ...string) ([]string, error) {
	var arguments map[string]string
	if req.Params != nil {
		arguments = req.Params.Arguments
	}
	result := make([]string, len(names))
	for i, name := range names {
		value := strings.TrimSpace(arguments[name])
		if value == "" {
			return nil, weather.ErrBadParameter.Withf("missing required argument %q", name)
		}
		result[i] = strings.ToLower(value)
	}
	return result, nil
}

func promptResult(prompt report.Prompt) *mcp.GetPromptResult {
	return &mcp.GetPromptResult{
		Description: prompt.Description,
		Messages: []*mcp.PromptMessage{
			{Role: "user", Content: &mcp.TextContent{Text: prompt.Text}},
		},
	}
}
