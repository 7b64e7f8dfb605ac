package main

import (
	"strings"

	// Packages
	weather "github.com/mutablelogic/go-mcp-weather"
)

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// parseArgs returns the key=value pairs as a map. Values may be empty,
// and a later pair replaces an earlier one with the same key.
func parseArgs(args []string) (map[string]string, error) {
	result := make(map[string]string, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, weather.ErrBadParameter.Withf("argument %q: expected key=value", arg)
		}
		result[key] = value
	}
	return result, nil
}

// toolArgs converts string arguments for a tool call
func toolArgs(args map[string]string) map[string]any {
	result := make(map[string]any, len(args))
	for k, v := range args {
		result[k] = v
	}
	return result
}
