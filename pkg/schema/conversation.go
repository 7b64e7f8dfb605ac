package schema

import (
	// Packages
	types "github.com/mutablelogic/go-server/pkg/types"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Conversation is the ordered, append-only sequence of messages
// exchanged with an LLM during one interactive session
type Conversation []*Message

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewConversation returns a conversation which starts with a system
// message, or an empty conversation if system is empty
func NewConversation(system string) Conversation {
	if system == "" {
		return Conversation{}
	}
	return Conversation{NewMessage(RoleSystem, system)}
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Append adds a message to the conversation
func (c *Conversation) Append(message *Message) {
	*c = append(*c, message)
}

// Truncate drops every message after the first n
func (c *Conversation) Truncate(n int) {
	if n >= 0 && n < len(*c) {
		clear((*c)[n:])
		*c = (*c)[:n]
	}
}

// System returns the text of the system messages in the conversation
func (c Conversation) System() string {
	for _, message := range c {
		if message.Role == RoleSystem {
			return message.Text()
		}
	}
	return ""
}

// Last returns the last message, or nil if the conversation is empty
func (c Conversation) Last() *Message {
	if len(c) == 0 {
		return nil
	}
	return c[len(c)-1]
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (c Conversation) String() string {
	return types.Stringify(c)
}
