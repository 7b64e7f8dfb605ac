package report

import (
	"fmt"
	"strings"

	// Packages
	store "github.com/mutablelogic/go-mcp-weather/pkg/store"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Comparison is the temperature difference between two cities
type Comparison struct {
	First, Second store.Record
	Difference    int // First minus Second, in Fahrenheit
}

// Summary is the temperature spread across all cities
type Summary struct {
	Average          float64
	Hottest, Coldest store.Record
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Compare returns the comparison between two cities, or false if
// either city is unknown
func Compare(s *store.Store, city1, city2 string) (Comparison, bool) {
	first, ok1 := s.Get(city1)
	second, ok2 := s.Get(city2)
	if !ok1 || !ok2 {
		return Comparison{}, false
	}
	return Comparison{
		First:      first,
		Second:     second,
		Difference: first.Temperature - second.Temperature,
	}, true
}

// Summarize returns the average, hottest and coldest cities. On a tie
// the earliest city wins.
func Summarize(s *store.Store) Summary {
	var summary Summary
	var total int
	for i, record := range s.Records() {
		total += record.Temperature
		if i == 0 || record.Temperature > summary.Hottest.Temperature {
			summary.Hottest = record
		}
		if i == 0 || record.Temperature < summary.Coldest.Temperature {
			summary.Coldest = record
		}
	}
	if n := s.Len(); n > 0 {
		summary.Average = float64(total) / float64(n)
	}
	return summary
}

// CurrentWeather returns the conditions in a city as text
func CurrentWeather(s *store.Store, city string) string {
	record, ok := s.Get(city)
	if !ok {
		return fmt.Sprintf("Error: Unknown city '%s'. Available cities: %s", store.Normalize(city), available(s))
	}
	return fmt.Sprintf("Current weather in %s:\nTemperature: %d°F\nConditions: %s\nHumidity: %d%%\nWind Speed: %d mph",
		record.City, record.Temperature, record.Conditions, record.Humidity, record.WindSpeed)
}

// CompareWeather returns the comparison between two cities as text
func CompareWeather(s *store.Store, city1, city2 string) string {
	c, ok := Compare(s, city1, city2)
	if !ok {
		return "Error: One or both cities not found. Available cities: " + available(s)
	}

	var relation string
	switch {
	case c.Difference > 0:
		relation = "is warmer"
	case c.Difference < 0:
		relation = "is cooler"
	default:
		relation = "is the same temperature"
	}

	var b strings.Builder
	b.WriteString("Weather Comparison:\n\n")
	fmt.Fprintf(&b, "%s: %d°F, %s\n", c.First.City, c.First.Temperature, c.First.Conditions)
	fmt.Fprintf(&b, "%s: %d°F, %s\n\n", c.Second.City, c.Second.Temperature, c.Second.Conditions)
	fmt.Fprintf(&b, "Temperature difference: %d°F (%s %s)", abs(c.Difference), c.First.City, relation)
	return b.String()
}

// TemperatureSummary returns the temperature spread across all cities as text
func TemperatureSummary(s *store.Store) string {
	summary := Summarize(s)

	var b strings.Builder
	b.WriteString("Temperature Summary Across All Cities:\n\n")
	fmt.Fprintf(&b, "Average Temperature: %.1f°F\n", summary.Average)
	fmt.Fprintf(&b, "Hottest: %s at %d°F\n", summary.Hottest.City, summary.Hottest.Temperature)
	fmt.Fprintf(&b, "Coldest: %s at %d°F\n", summary.Coldest.City, summary.Coldest.Temperature)
	fmt.Fprintf(&b, "Range: %d°F", summary.Hottest.Temperature-summary.Coldest.Temperature)
	return b.String()
}

// UnknownTool returns the text for a tool which does not exist
func UnknownTool(name string) string {
	return fmt.Sprintf("Error: Unknown tool '%s'", name)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func available(s *store.Store) string {
	return strings.Join(s.Keys(), ", ")
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
