package anthropic

import (
	"encoding/json"
	"testing"

	// Packages
	opt "github.com/mutablelogic/go-mcp-weather/pkg/opt"
	schema "github.com/mutablelogic/go-mcp-weather/pkg/schema"
	assert "github.com/stretchr/testify/assert"
)

var weatherTool = schema.ToolDefinition{
	Name:        "get_current_weather",
	Description: "Get the current weather for a specific city",
	InputSchema: map[string]any{
		"type":       "object",
		"properties": map[string]any{"city": map[string]any{"type": "string"}},
		"required":   []any{"city"},
	},
}

func Test_request_001(t *testing.T) {
	// A minimal request uses the defaults
	assert := assert.New(t)

	conv := schema.Conversation{schema.NewMessage(schema.RoleUser, "Hello")}
	req, err := NewRequest(DefaultModel, conv, nil)
	assert.NoError(err)
	assert.Equal(DefaultModel, req.Model)
	assert.Equal(uint(defaultMaxTokens), req.MaxTokens)
	assert.Equal(defaultSystemPrompt, req.System)
	assert.Len(req.Messages, 1)
	assert.Equal("user", req.Messages[0].Role)
	assert.Equal("Hello", req.Messages[0].Content[0].Text)
	assert.Nil(req.Tools)
	assert.Nil(req.ToolChoice)
	assert.Nil(req.Temperature)
}

func Test_request_002(t *testing.T) {
	// The system prompt comes from the conversation before the options
	assert := assert.New(t)

	conv := schema.NewConversation("From the conversation")
	conv.Append(schema.NewMessage(schema.RoleUser, "Hi"))
	req, err := NewRequest(DefaultModel, conv, nil, opt.WithSystemPrompt("From the options"))
	assert.NoError(err)
	assert.Equal("From the conversation", req.System)
	assert.Len(req.Messages, 1)

	req, err = NewRequest(DefaultModel, conv[1:], nil, opt.WithSystemPrompt("From the options"), opt.WithMaxTokens(10), opt.WithTemperature(0.2))
	assert.NoError(err)
	assert.Equal("From the options", req.System)
	assert.Equal(uint(10), req.MaxTokens)
	if assert.NotNil(req.Temperature) {
		assert.InDelta(0.2, *req.Temperature, 1e-9)
	}
}

func Test_request_003(t *testing.T) {
	// Tools are sent with their input schemas
	assert := assert.New(t)

	conv := schema.Conversation{schema.NewMessage(schema.RoleUser, "Weather in London?")}
	req, err := NewRequest(DefaultModel, conv, []schema.ToolDefinition{weatherTool}, opt.WithToolChoice("auto"))
	assert.NoError(err)
	if assert.Len(req.Tools, 1) {
		assert.Equal("get_current_weather", req.Tools[0].Name)
		assert.JSONEq(`{"type":"object","properties":{"city":{"type":"string"}},"required":["city"]}`, string(req.Tools[0].InputSchema))
	}
	if assert.NotNil(req.ToolChoice) {
		assert.Equal("auto", req.ToolChoice.Type)
	}
}

func Test_request_004(t *testing.T) {
	// A tool round trip becomes tool_use and tool_result blocks
	assert := assert.New(t)

	conv := schema.Conversation{
		schema.NewMessage(schema.RoleUser, "Weather in London?"),
		schema.NewToolCallMessage(schema.ToolCall{ID: "toolu_1", Name: "get_current_weather", Input: json.RawMessage(`{"city":"london"}`)}),
		schema.NewToolResultMessage(schema.NewToolResult("toolu_1", "get_current_weather", "Current weather in London")),
	}
	req, err := NewRequest(DefaultModel, conv, nil)
	assert.NoError(err)
	if assert.Len(req.Messages, 3) {
		assert.Equal("assistant", req.Messages[1].Role)
		assert.Equal(blockTypeToolUse, req.Messages[1].Content[0].Type)
		assert.Equal("toolu_1", req.Messages[1].Content[0].ID)
		assert.JSONEq(`{"city":"london"}`, string(req.Messages[1].Content[0].Input))

		assert.Equal("user", req.Messages[2].Role)
		assert.Equal(blockTypeToolResult, req.Messages[2].Content[0].Type)
		assert.Equal("toolu_1", req.Messages[2].Content[0].ToolUseID)
		assert.JSONEq(`"Current weather in London"`, string(req.Messages[2].Content[0].Content))
	}
}

func Test_request_005(t *testing.T) {
	// Consecutive user messages are merged
	assert := assert.New(t)

	conv := schema.Conversation{
		schema.NewMessage(schema.RoleUser, "first"),
		schema.NewMessage(schema.RoleUser, "second"),
		schema.NewMessage(schema.RoleAssistant, "answer"),
	}
	req, err := NewRequest(DefaultModel, conv, nil)
	assert.NoError(err)
	if assert.Len(req.Messages, 2) {
		assert.Len(req.Messages[0].Content, 2)
		assert.Equal("second", req.Messages[0].Content[1].Text)
	}
}

func Test_response_001(t *testing.T) {
	// Responses convert text and tool_use blocks
	assert := assert.New(t)

	var resp Response
	assert.NoError(json.Unmarshal([]byte(`{
		"id": "msg_1", "type": "message", "role": "assistant",
		"content": [
			{"type": "text", "text": "Let me check."},
			{"type": "tool_use", "id": "toolu_1", "name": "get_current_weather", "input": {"city": "paris"}},
			{"type": "tool_use", "id": "toolu_2", "name": "get_temperature_summary"}
		],
		"stop_reason": "tool_use"
	}`), &resp))

	message := resp.Message()
	assert.Equal(schema.RoleAssistant, message.Role)
	assert.Equal(StopReasonToolUse, message.StopReason)
	assert.Equal("Let me check.", message.Text())
	calls := message.ToolCalls()
	if assert.Len(calls, 2) {
		assert.Equal("toolu_1", calls[0].ID)
		assert.JSONEq(`{"city":"paris"}`, string(calls[0].Input))
		assert.JSONEq(`{}`, string(calls[1].Input))
	}
}
