package llm

import "context"

// Role values accepted by chat-based providers.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one turn of a conversation, in caller order.
type Message struct {
	Role    string
	Content string
}

// ChatModel is a minimal abstraction for chat-based LLMs used by the domain.
// It intentionally hides concrete providers to preserve dependency direction.
type ChatModel interface {
	Complete(ctx context.Context, systemPrompt string, history []Message) (string, error)
}
