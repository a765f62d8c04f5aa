package relay

import (
	"fmt"

	"codeberg.org/neroprotocol/server/internal/llm"
)

// oldest history turns are dropped beyond this cap to bound prompt size
const maxHistoryTurns = 50

// returns the system prompt for a platform-scoped conversation
func buildSystemPrompt(p Platform) string {
	return fmt.Sprintf(`You are Nero, an AI assistant specialized in helping users learn about %s.

Platform Info:
%s

Answer the user's questions about the platform clearly and concisely. Stay on topic.`, p.Name, p.Description)
}

// assembles the conversation: prior history (capped) followed by the
// current question
func buildMessages(history []llm.Message, question string) []llm.Message {
	if len(history) > maxHistoryTurns {
		history = history[len(history)-maxHistoryTurns:]
	}

	messages := make([]llm.Message, 0, len(history)+1)

	for _, msg := range history {
		if msg.Content == "" {
			continue
		}
		messages = append(messages, msg)
	}

	return append(messages, llm.Message{Role: "user", Content: question})
}
