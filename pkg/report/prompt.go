package report

import (
	"fmt"

	// Packages
	store "github.com/mutablelogic/go-mcp-weather/pkg/store"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Prompt is a rendered prompt template
type Prompt struct {
	Description string
	Text        string // Text of the single user message
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// WeatherReport returns a prompt asking for a detailed report on a city.
// An unknown city is reported inline rather than as an error.
func WeatherReport(s *store.Store, city string) Prompt {
	var status string
	if record, ok := s.Get(city); ok {
		status = fmt.Sprintf("Current conditions in %s: %d°F, %s, humidity %d%%, wind %d mph.",
			record.City, record.Temperature, record.Conditions, record.Humidity, record.WindSpeed)
	} else {
		status = fmt.Sprintf("Error: Unknown city '%s'.", store.Normalize(city))
	}
	return Prompt{
		Description: "Weather report for " + city,
		Text: fmt.Sprintf("%s Please provide a detailed weather report for %s. "+
			"Include temperature, conditions, humidity, and any relevant advice.", status, city),
	}
}

// TravelAdvice returns a prompt asking for packing advice between two cities
func TravelAdvice(origin, destination string) Prompt {
	return Prompt{
		Description: fmt.Sprintf("Travel advice from %s to %s", origin, destination),
		Text: fmt.Sprintf("I'm traveling from %s to %s. Compare the weather in both cities "+
			"and give me advice on what to pack and what to expect.", origin, destination),
	}
}
