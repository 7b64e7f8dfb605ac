/*
weatherapi implements an API client for WeatherAPI, used to seed the
city table with live conditions.
https://www.weatherapi.com/docs/
*/
package weatherapi

import (
	"context"
	"net/url"

	// Packages
	client "github.com/mutablelogic/go-client"
	weather "github.com/mutablelogic/go-mcp-weather"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Client struct {
	*client.Client
	key string
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	endPoint = "https://api.weatherapi.com/v1"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a client with the given API key
func New(apiKey string, opts ...client.ClientOpt) (*Client, error) {
	if apiKey == "" {
		return nil, weather.ErrBadParameter.With("missing WeatherAPI key")
	}
	defaults := []client.ClientOpt{
		client.OptEndpoint(endPoint),
	}
	if c, err := client.New(append(defaults, opts...)...); err != nil {
		return nil, err
	} else {
		return &Client{Client: c, key: apiKey}, nil
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Current returns the current conditions for a location query, which may
// be a city name, coordinates or a postcode
func (c *Client) Current(ctx context.Context, q string) (Weather, error) {
	var response Weather
	if q == "" {
		return response, weather.ErrBadParameter.With("missing location")
	}

	query := url.Values{}
	query.Set("key", c.key)
	query.Set("q", q)
	if err := c.DoWithContext(ctx, nil, &response, client.OptPath("current.json"), client.OptQuery(query)); err != nil {
		return Weather{}, err
	}
	response.Query = q
	return response, nil
}
