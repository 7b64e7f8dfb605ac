package client

import (
	// Packages
	types "github.com/mutablelogic/go-server/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Resource describes a readable resource on the server
type Resource struct {
	URI         string `json:"uri"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	MIMEType    string `json:"mime_type,omitempty"`
}

// Prompt describes a prompt template on the server
type Prompt struct {
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Arguments   []PromptArgument `json:"arguments,omitempty"`
}

// PromptArgument is a named prompt argument
type PromptArgument struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Required    bool   `json:"required,omitempty"`
}

// PromptResult is a rendered prompt
type PromptResult struct {
	Description string          `json:"description,omitempty"`
	Messages    []PromptMessage `json:"messages"`
}

// PromptMessage is one role-tagged message of a rendered prompt
type PromptMessage struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (r Resource) String() string {
	return types.Stringify(r)
}

func (p Prompt) String() string {
	return types.Stringify(p)
}

func (p PromptResult) String() string {
	return types.Stringify(p)
}
