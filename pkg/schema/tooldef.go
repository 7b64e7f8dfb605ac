package schema

import (
	"encoding/json"
)

// ToolDefinition represents a provider-agnostic tool definition.
// Providers reshape this into their required payloads.
type ToolDefinition struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	InputSchema map[string]any `json:"input_schema,omitempty"`
}

// Schema returns the input schema as JSON, defaulting to an object
// schema without properties
func (t ToolDefinition) Schema() json.RawMessage {
	if len(t.InputSchema) == 0 {
		return json.RawMessage(`{"type":"object","properties":{}}`)
	}
	data, err := json.Marshal(t.InputSchema)
	if err != nil {
		return json.RawMessage(`{"type":"object","properties":{}}`)
	}
	return data
}
