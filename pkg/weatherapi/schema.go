package weatherapi

import (
	"math"

	// Packages
	store "github.com/mutablelogic/go-mcp-weather/pkg/store"
	types "github.com/mutablelogic/go-server/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Weather is the response from current.json
type Weather struct {
	Query    string   `json:"-"`
	Location Location `json:"location"`
	Current  Current  `json:"current"`
}

type Location struct {
	Name      string  `json:"name"`
	Region    string  `json:"region,omitempty"`
	Country   string  `json:"country,omitempty"`
	Latitude  float64 `json:"lat,omitempty"`
	Longitude float64 `json:"lon,omitempty"`
	Timezone  string  `json:"tz_id,omitempty"`
	Localtime string  `json:"localtime,omitempty"`
}

type Current struct {
	LastUpdated string    `json:"last_updated,omitempty"`
	TempC       float64   `json:"temp_c"`
	TempF       float64   `json:"temp_f"`
	Condition   Condition `json:"condition"`
	WindMph     float64   `json:"wind_mph"`
	WindKph     float64   `json:"wind_kph,omitempty"`
	Humidity    int       `json:"humidity"`
	Cloud       int       `json:"cloud,omitempty"`
	FeelsLikeF  float64   `json:"feelslike_f,omitempty"`
}

type Condition struct {
	Text string `json:"text"`
	Code int    `json:"code,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Record returns the conditions as a city record, with whole degrees
// Fahrenheit and miles per hour. The key is derived from the query.
func (w Weather) Record() store.Record {
	city := w.Location.Name
	if city == "" {
		city = w.Query
	}
	return store.Record{
		Key:         store.Normalize(w.Query),
		City:        city,
		Temperature: int(math.Round(w.Current.TempF)),
		Conditions:  w.Current.Condition.Text,
		Humidity:    w.Current.Humidity,
		WindSpeed:   int(math.Round(w.Current.WindMph)),
	}
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (w Weather) String() string {
	return types.Stringify(w)
}
