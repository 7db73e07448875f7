// Package llm defines the provider-neutral chat types and error taxonomy.
package llm

import "context"

// Role identifies the author of a chat message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single chat message.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Client is the narrow contract the agent loop calls the backend through.
type Client interface {
	Chat(ctx context.Context, messages []Message) (string, error)
}
