package schema

import (
	"encoding/json"
	"strings"

	// Packages
	types "github.com/mutablelogic/go-server/pkg/types"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Message represents a message in a conversation with an LLM, as a
// sequence of content blocks which each provider marshals to its own format
type Message struct {
	Role       string         `json:"role"`                  // "system", "user", "assistant", "tool"
	Content    []ContentBlock `json:"content"`               // Array of content blocks
	StopReason string         `json:"stop_reason,omitempty"` // Provider stop reason, if any
}

// ContentBlock represents a single piece of content within a message.
// Exactly one of the fields should be non-nil.
type ContentBlock struct {
	Text       *string     `json:"text,omitempty"`        // Text content
	ToolCall   *ToolCall   `json:"tool_call,omitempty"`   // Tool invocation (assistant → client)
	ToolResult *ToolResult `json:"tool_result,omitempty"` // Tool response (client → assistant)
}

// ToolCall represents a tool invocation requested by the model
type ToolCall struct {
	ID    string          `json:"id,omitempty"`    // Provider-assigned call ID
	Name  string          `json:"name"`            // Tool function name
	Input json.RawMessage `json:"input,omitempty"` // JSON-encoded arguments
}

// ToolResult represents the result of running a tool
type ToolResult struct {
	ID      string          `json:"id,omitempty"`      // Matches the ToolCall ID
	Name    string          `json:"name,omitempty"`    // Tool function name
	Content json.RawMessage `json:"content,omitempty"` // JSON-encoded result
	IsError bool            `json:"is_error,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////
// CONSTANTS

// Message role constants
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Create a new message with the given role and text content
func NewMessage(role string, text string) *Message {
	return types.Ptr(Message{
		Role:    role,
		Content: []ContentBlock{{Text: types.Ptr(text)}},
	})
}

// NewToolCallMessage returns an assistant message which requests a single tool call
func NewToolCallMessage(call ToolCall) *Message {
	return types.Ptr(Message{
		Role:    RoleAssistant,
		Content: []ContentBlock{{ToolCall: types.Ptr(call)}},
	})
}

// NewToolResultMessage returns a tool message carrying one result
func NewToolResultMessage(result ContentBlock) *Message {
	return types.Ptr(Message{
		Role:    RoleTool,
		Content: []ContentBlock{result},
	})
}

// NewToolResult creates a content block containing a successful tool result
func NewToolResult(id, name, text string) ContentBlock {
	data, _ := json.Marshal(text)
	return ContentBlock{
		ToolResult: &ToolResult{
			ID:      id,
			Name:    name,
			Content: json.RawMessage(data),
		},
	}
}

// NewToolError creates a content block containing a tool error result
func NewToolError(id, name string, err error) ContentBlock {
	block := NewToolResult(id, name, err.Error())
	block.ToolResult.IsError = true
	return block
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Text returns the concatenated text content from all text blocks in the message
func (m Message) Text() string {
	var result []string
	for _, block := range m.Content {
		if block.Text != nil {
			result = append(result, *block.Text)
		}
	}
	return strings.Join(result, "\n")
}

// ToolCalls returns all tool call blocks in the message
func (m Message) ToolCalls() []ToolCall {
	var result []ToolCall
	for _, block := range m.Content {
		if block.ToolCall != nil {
			result = append(result, *block.ToolCall)
		}
	}
	return result
}

// ToolResults returns all tool result blocks in the message
func (m Message) ToolResults() []ToolResult {
	var result []ToolResult
	for _, block := range m.Content {
		if block.ToolResult != nil {
			result = append(result, *block.ToolResult)
		}
	}
	return result
}

// Text returns the result content as plain text. A JSON string is
// unquoted, any other JSON value is returned verbatim.
func (r ToolResult) Text() string {
	var text string
	if err := json.Unmarshal(r.Content, &text); err == nil {
		return text
	}
	return string(r.Content)
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (m Message) String() string {
	return types.Stringify(m)
}
