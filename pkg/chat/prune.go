package chat

import "github.com/labtrail/labtrail/pkg/models"

// charsPerToken is the rough estimate used for budget checks; exact
// tokenization is not worth a tokenizer dependency here.
const charsPerToken = 4

// Prune trims a conversation to roughly fit the token budget: the system
// prompt plus the last keep messages. The retention window expands backwards
// while its first message is a tool response, so every retained tool
// response keeps the assistant tool-calls message it answers.
func Prune(messages []models.ConversationMessage, tokenBudget, keep int) []models.ConversationMessage {
	if estimateTokens(messages) <= tokenBudget || len(messages) == 0 {
		return messages
	}

	var system []models.ConversationMessage
	rest := messages
	if messages[0].Role == models.RoleSystem {
		system = messages[:1]
		rest = messages[1:]
	}
	if len(rest) <= keep {
		return messages
	}

	start := len(rest) - keep
	for start > 0 && rest[start].Role == models.RoleTool {
		start--
	}
	retained := rest[start:]

	// A trailing assistant tool-calls message whose responses fell outside
	// the window would leave a dangling call; drop it. With the loop
	// pruning before each LLM call the log never ends that way, but the
	// invariant is cheap to restore.
	for len(retained) > 0 {
		last := retained[len(retained)-1]
		if last.Role == models.RoleAssistant && len(last.ToolCalls) > 0 {
			retained = retained[:len(retained)-1]
			continue
		}
		break
	}

	out := make([]models.ConversationMessage, 0, len(system)+len(retained))
	out = append(out, system...)
	return append(out, retained...)
}

func estimateTokens(messages []models.ConversationMessage) int {
	chars := 0
	for _, m := range messages {
		chars += len(m.Content)
		for _, tc := range m.ToolCalls {
			chars += len(tc.Name) + len(tc.Arguments)
		}
	}
	return chars / charsPerToken
}
