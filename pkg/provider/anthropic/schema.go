package anthropic

import (
	"encoding/json"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES - Anthropic REST API wire format, shared with Bedrock
//
// Reference: https://docs.anthropic.com/en/api/messages

// Request is the request body for POST /v1/messages. Bedrock takes the
// same body with the version in the body and without the model.
type Request struct {
	AnthropicVersion string             `json:"anthropic_version,omitempty"`
	Model            string             `json:"model,omitempty"`
	MaxTokens        uint               `json:"max_tokens"`
	System           string             `json:"system,omitempty"`
	Messages         []anthropicMessage `json:"messages"`
	Temperature      *float64           `json:"temperature,omitempty"`
	Tools            []anthropicTool    `json:"tools,omitempty"`
	ToolChoice       *toolChoice        `json:"tool_choice,omitempty"`
}

// Response is the response body from POST /v1/messages
type Response struct {
	Id         string                  `json:"id"`
	Model      string                  `json:"model"`
	Type       string                  `json:"type"`
	Role       string                  `json:"role"`
	Content    []anthropicContentBlock `json:"content"`
	StopReason string                  `json:"stop_reason"`
	Usage      messagesUsage           `json:"usage"`
}

// messagesUsage reports token counts for a messages request
type messagesUsage struct {
	InputTokens  uint `json:"input_tokens"`
	OutputTokens uint `json:"output_tokens"`
}

// anthropicMessage represents a single turn in a conversation
type anthropicMessage struct {
	Role    string                  `json:"role"`
	Content []anthropicContentBlock `json:"content"`
}

// anthropicContentBlock represents a content block. Different block types
// use different subsets of fields.
type anthropicContentBlock struct {
	Type string `json:"type"`

	// text block
	Text string `json:"text,omitempty"`

	// tool_use block
	ID    string          `json:"id,omitempty"`
	Name  string          `json:"name,omitempty"`
	Input json.RawMessage `json:"input,omitempty"`

	// tool_result block
	ToolUseID string          `json:"tool_use_id,omitempty"`
	Content   json.RawMessage `json:"content,omitempty"`
	IsError   bool            `json:"is_error,omitempty"`
}

// anthropicTool is a client tool definition
type anthropicTool struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	InputSchema json.RawMessage `json:"input_schema"`
}

// toolChoice specifies how the model may use tools
type toolChoice struct {
	Type string `json:"type"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	defaultMaxTokens    = 1024
	defaultSystemPrompt = "You are a helpful weather assistant."
)

// Message roles
const (
	roleUser      = "user"
	roleAssistant = "assistant"
)

// Content block types
const (
	blockTypeText       = "text"
	blockTypeToolUse    = "tool_use"
	blockTypeToolResult = "tool_result"
)

// Stop reasons
const (
	StopReasonEndTurn   = "end_turn"
	StopReasonMaxTokens = "max_tokens"
	StopReasonToolUse   = "tool_use"
)
