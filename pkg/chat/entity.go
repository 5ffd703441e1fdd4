package chat

import "fmt"

// Роли сообщений, которые принимает сервис от клиента.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message — одна реплика диалога. История приходит целиком от клиента и
// никогда не изменяется сервисом, ответ модели лишь добавляется к ней.
type Message struct {
	Role    string
	Content string
}

// ValidateHistory отклоняет пустую историю и неизвестные роли.
func ValidateHistory(history []Message) error {
	if len(history) == 0 {
		return fmt.Errorf("message history is empty")
	}
	for i, m := range history {
		if m.Role != RoleUser && m.Role != RoleAssistant {
			return fmt.Errorf("message %d: unknown role %q", i, m.Role)
		}
	}
	return nil
}
