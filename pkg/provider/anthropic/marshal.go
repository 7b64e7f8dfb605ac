package anthropic

import (
	"encoding/json"

	// Packages
	opt "github.com/mutablelogic/go-mcp-weather/pkg/opt"
	schema "github.com/mutablelogic/go-mcp-weather/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// REQUEST BUILDING

// NewRequest builds a messages request from the conversation, the tools
// and the generation options. The system prompt is taken from the
// conversation, then the options, then the default.
func NewRequest(model string, conversation schema.Conversation, tools []schema.ToolDefinition, opts ...opt.Opt) (*Request, error) {
	options, err := opt.Apply(opts...)
	if err != nil {
		return nil, err
	}

	// System prompt
	system := conversation.System()
	if system == "" {
		system = options.GetString(opt.SystemPromptKey)
	}
	if system == "" {
		system = defaultSystemPrompt
	}

	// Max tokens
	maxTokens := uint(defaultMaxTokens)
	if options.Has(opt.MaxTokensKey) {
		maxTokens = options.GetUint(opt.MaxTokensKey)
	}

	// Temperature
	var temperature *float64
	if options.Has(opt.TemperatureKey) {
		v := options.GetFloat64(opt.TemperatureKey)
		temperature = &v
	}

	// Tools and tool choice
	var toolCh *toolChoice
	if len(tools) > 0 {
		if tc := options.GetString(opt.ToolChoiceKey); tc != "" {
			toolCh = &toolChoice{Type: tc}
		}
	}

	return &Request{
		Model:       model,
		MaxTokens:   maxTokens,
		System:      system,
		Messages:    anthropicMessagesFromConversation(conversation),
		Temperature: temperature,
		Tools:       anthropicTools(tools),
		ToolChoice:  toolCh,
	}, nil
}

///////////////////////////////////////////////////////////////////////////////
// CONVERSATION → ANTHROPIC MESSAGES

// anthropicMessagesFromConversation converts the conversation to Anthropic
// message format. System messages are skipped, tool results are sent as
// user messages, and consecutive messages with the same role are merged.
func anthropicMessagesFromConversation(conversation schema.Conversation) []anthropicMessage {
	messages := make([]anthropicMessage, 0, len(conversation))
	for _, msg := range conversation {
		if msg == nil || msg.Role == schema.RoleSystem {
			continue
		}
		role := roleUser
		if msg.Role == schema.RoleAssistant {
			role = roleAssistant
		}
		blocks := anthropicBlocksFromMessage(msg)
		if len(blocks) == 0 {
			continue
		}
		if n := len(messages); n > 0 && messages[n-1].Role == role {
			messages[n-1].Content = append(messages[n-1].Content, blocks...)
		} else {
			messages = append(messages, anthropicMessage{Role: role, Content: blocks})
		}
	}
	return messages
}

func anthropicBlocksFromMessage(msg *schema.Message) []anthropicContentBlock {
	blocks := make([]anthropicContentBlock, 0, len(msg.Content))
	for _, block := range msg.Content {
		switch {
		case block.Text != nil:
			if *block.Text != "" {
				blocks = append(blocks, anthropicContentBlock{Type: blockTypeText, Text: *block.Text})
			}
		case block.ToolCall != nil:
			input := block.ToolCall.Input
			if len(input) == 0 {
				input = json.RawMessage("{}")
			}
			blocks = append(blocks, anthropicContentBlock{
				Type:  blockTypeToolUse,
				ID:    block.ToolCall.ID,
				Name:  block.ToolCall.Name,
				Input: input,
			})
		case block.ToolResult != nil:
			// Anthropic expects the tool result content as a string
			content, _ := json.Marshal(block.ToolResult.Text())
			blocks = append(blocks, anthropicContentBlock{
				Type:      blockTypeToolResult,
				ToolUseID: block.ToolResult.ID,
				Content:   content,
				IsError:   block.ToolResult.IsError,
			})
		}
	}
	return blocks
}

func anthropicTools(tools []schema.ToolDefinition) []anthropicTool {
	if len(tools) == 0 {
		return nil
	}
	result := make([]anthropicTool, 0, len(tools))
	for _, tool := range tools {
		result = append(result, anthropicTool{
			Name:        tool.Name,
			Description: tool.Description,
			InputSchema: tool.Schema(),
		})
	}
	return result
}

///////////////////////////////////////////////////////////////////////////////
// ANTHROPIC RESPONSE → SCHEMA MESSAGE

// Message converts the response to an assistant message
func (r *Response) Message() *schema.Message {
	message := &schema.Message{
		Role:       schema.RoleAssistant,
		Content:    make([]schema.ContentBlock, 0, len(r.Content)),
		StopReason: r.StopReason,
	}
	for _, ab := range r.Content {
		switch ab.Type {
		case blockTypeText:
			text := ab.Text
			message.Content = append(message.Content, schema.ContentBlock{Text: &text})
		case blockTypeToolUse:
			input := ab.Input
			if len(input) == 0 {
				input = json.RawMessage("{}")
			}
			message.Content = append(message.Content, schema.ContentBlock{ToolCall: &schema.ToolCall{
				ID:    ab.ID,
				Name:  ab.Name,
				Input: input,
			}})
		}
	}
	return message
}
