package openai

import (
	"encoding/json"

	// Packages
	weather "github.com/mutablelogic/go-mcp-weather"
	opt "github.com/mutablelogic/go-mcp-weather/pkg/opt"
	schema "github.com/mutablelogic/go-mcp-weather/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// REQUEST BUILDING

// newRequest builds a chat completion request. A system prompt from the
// options is prepended when the conversation has none.
func newRequest(model string, conversation schema.Conversation, tools []schema.ToolDefinition, options ...opt.Opt) (*chatCompletionRequest, error) {
	o, err := opt.Apply(options...)
	if err != nil {
		return nil, err
	}

	messages := make([]openaiMessage, 0, len(conversation)+1)
	if conversation.System() == "" {
		if system := o.GetString(opt.SystemPromptKey); system != "" {
			messages = append(messages, openaiMessage{Role: roleSystem, Content: &system})
		}
	}
	messages = append(messages, openaiMessagesFromConversation(conversation)...)

	request := &chatCompletionRequest{
		Model:    model,
		Messages: messages,
		Tools:    openaiTools(tools),
	}
	if o.Has(opt.MaxTokensKey) {
		v := o.GetUint(opt.MaxTokensKey)
		request.MaxTokens = &v
	}
	if o.Has(opt.TemperatureKey) {
		v := o.GetFloat64(opt.TemperatureKey)
		request.Temperature = &v
	}
	if len(request.Tools) > 0 {
		request.ToolChoice = defaultToolChoice
		switch tc := o.GetString(opt.ToolChoiceKey); tc {
		case "any":
			request.ToolChoice = "required"
		case "none":
			request.ToolChoice = tc
		}
	}
	return request, nil
}

///////////////////////////////////////////////////////////////////////////////
// CONVERSATION → OPENAI MESSAGES

// openaiMessagesFromConversation converts the conversation to OpenAI
// messages. Each tool result becomes its own "tool" message.
func openaiMessagesFromConversation(conversation schema.Conversation) []openaiMessage {
	messages := make([]openaiMessage, 0, len(conversation))
	for _, msg := range conversation {
		if msg == nil {
			continue
		}

		// Tool results, one message per call id
		if results := msg.ToolResults(); len(results) > 0 {
			for _, result := range results {
				text := result.Text()
				messages = append(messages, openaiMessage{
					Role:       roleTool,
					Content:    &text,
					ToolCallID: result.ID,
				})
			}
			continue
		}

		// Tool calls take priority over text in assistant messages
		if calls := msg.ToolCalls(); len(calls) > 0 {
			toolCalls := make([]openaiToolCall, 0, len(calls))
			for _, call := range calls {
				args := string(call.Input)
				if args == "" {
					args = "{}"
				}
				toolCalls = append(toolCalls, openaiToolCall{
					Id:       call.ID,
					Type:     toolTypeFunction,
					Function: openaiFunctionCall{Name: call.Name, Arguments: args},
				})
			}
			messages = append(messages, openaiMessage{Role: roleAssistant, ToolCalls: toolCalls})
			continue
		}

		text := msg.Text()
		messages = append(messages, openaiMessage{Role: msg.Role, Content: &text})
	}
	return messages
}

func openaiTools(tools []schema.ToolDefinition) []toolDefinition {
	if len(tools) == 0 {
		return nil
	}
	result := make([]toolDefinition, 0, len(tools))
	for _, tool := range tools {
		result = append(result, toolDefinition{
			Type: toolTypeFunction,
			Function: functionDefinition{
				Name:        tool.Name,
				Description: tool.Description,
				Parameters:  tool.Schema(),
			},
		})
	}
	return result
}

///////////////////////////////////////////////////////////////////////////////
// OPENAI RESPONSE → SCHEMA MESSAGE

// messageFromResponse converts the first choice to an assistant message
func messageFromResponse(response *chatCompletionResponse) (*schema.Message, error) {
	if len(response.Choices) == 0 {
		return nil, weather.ErrInternalServerError.With("response has no choices")
	}
	choice := response.Choices[0]
	if choice.Message.Refusal != nil && *choice.Message.Refusal != "" {
		return nil, weather.ErrInternalServerError.Withf("model refused: %s", *choice.Message.Refusal)
	}

	message := &schema.Message{
		Role:       schema.RoleAssistant,
		StopReason: choice.FinishReason,
	}
	if choice.Message.Content != nil && *choice.Message.Content != "" {
		text := *choice.Message.Content
		message.Content = append(message.Content, schema.ContentBlock{Text: &text})
	}
	for _, call := range choice.Message.ToolCalls {
		input := json.RawMessage(call.Function.Arguments)
		if len(input) == 0 || !json.Valid(input) {
			input = json.RawMessage("{}")
		}
		message.Content = append(message.Content, schema.ContentBlock{ToolCall: &schema.ToolCall{
			ID:    call.Id,
			Name:  call.Function.Name,
			Input: input,
		}})
	}
	return message, nil
}
