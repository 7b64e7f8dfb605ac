package store

import (
	"time"

	// Packages
	types "github.com/mutablelogic/go-server/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Record is the weather for one city
type Record struct {
	Key         string `json:"-" yaml:"key"`
	City        string `json:"city" yaml:"city"`
	Temperature int    `json:"temperature" yaml:"temperature"` // Fahrenheit
	Conditions  string `json:"conditions" yaml:"conditions"`
	Humidity    int    `json:"humidity" yaml:"humidity"`     // Percent
	WindSpeed   int    `json:"wind_speed" yaml:"wind_speed"` // Miles per hour
}

// Snapshot is a record stamped with the time it was read
type Snapshot struct {
	Record
	Timestamp time.Time `json:"timestamp"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// The cities served when no data file is provided
var defaultRecords = []Record{
	{Key: "new_york", City: "New York", Temperature: 72, Conditions: "Partly Cloudy", Humidity: 65, WindSpeed: 12},
	{Key: "london", City: "London", Temperature: 58, Conditions: "Rainy", Humidity: 80, WindSpeed: 15},
	{Key: "tokyo", City: "Tokyo", Temperature: 68, Conditions: "Clear", Humidity: 55, WindSpeed: 8},
	{Key: "paris", City: "Paris", Temperature: 62, Conditions: "Cloudy", Humidity: 70, WindSpeed: 10},
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (r Record) String() string {
	return types.Stringify(r)
}

func (s Snapshot) String() string {
	return types.Stringify(s)
}
