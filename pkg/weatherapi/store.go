package weatherapi

import (
	"context"
	"fmt"

	// Packages
	store "github.com/mutablelogic/go-mcp-weather/pkg/store"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Store fetches the current conditions for each city and returns them as
// a store. The first failure is returned.
func (c *Client) Store(ctx context.Context, cities ...string) (*store.Store, error) {
	records := make([]store.Record, 0, len(cities))
	for _, city := range cities {
		w, err := c.Current(ctx, city)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", city, err)
		}
		records = append(records, w.Record())
	}
	return store.New(records...)
}
