package chat

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labtrail/labtrail/pkg/models"
)

func bigMsg(role, marker string) models.ConversationMessage {
	return models.ConversationMessage{Role: role, Content: marker + " " + strings.Repeat("x", 400)}
}

func toolCallMsg(id string) models.ConversationMessage {
	return models.ConversationMessage{
		Role:      models.RoleAssistant,
		ToolCalls: []models.ToolCall{{ID: id, Name: "execute_sql", Arguments: json.RawMessage(`{"sql":"SELECT 1"}`)}},
	}
}

func toolResponseMsg(id string) models.ConversationMessage {
	return models.ConversationMessage{Role: models.RoleTool, ToolCallID: id, Name: "execute_sql", Content: strings.Repeat("r", 400)}
}

func TestPruneUnderBudgetUntouched(t *testing.T) {
	messages := []models.ConversationMessage{
		{Role: models.RoleSystem, Content: "sys"},
		{Role: models.RoleUser, Content: "hi"},
	}
	assert.Equal(t, messages, Prune(messages, 1000, 2))
}

func TestPruneKeepsSystemAndTail(t *testing.T) {
	messages := []models.ConversationMessage{bigMsg(models.RoleSystem, "sys")}
	for i := 0; i < 10; i++ {
		messages = append(messages, bigMsg(models.RoleUser, "u"), bigMsg(models.RoleAssistant, "a"))
	}

	out := Prune(messages, 100, 4)
	require.Len(t, out, 5)
	assert.Equal(t, models.RoleSystem, out[0].Role)
	assert.Equal(t, messages[len(messages)-4:], out[1:])
}

func TestPruneExpandsOverToolResponses(t *testing.T) {
	// Window of 2 would start at a tool response; it must widen to include
	// the assistant message that issued the call.
	messages := []models.ConversationMessage{
		bigMsg(models.RoleSystem, "sys"),
		bigMsg(models.RoleUser, "old"),
		bigMsg(models.RoleUser, "question"),
		toolCallMsg("call-1"),
		toolResponseMsg("call-1"),
		bigMsg(models.RoleAssistant, "answer"),
	}

	out := Prune(messages, 100, 2)
	require.Len(t, out, 4)
	assert.Equal(t, models.RoleSystem, out[0].Role)
	assert.Equal(t, "call-1", out[1].ToolCalls[0].ID)
	assert.Equal(t, "call-1", out[2].ToolCallID)
	assert.Equal(t, models.RoleAssistant, out[3].Role)
}

func TestPruneDropsDanglingToolCall(t *testing.T) {
	messages := []models.ConversationMessage{
		bigMsg(models.RoleUser, "old"),
		bigMsg(models.RoleUser, "question"),
		toolCallMsg("call-9"),
	}

	out := Prune(messages, 50, 2)
	require.NotEmpty(t, out)
	last := out[len(out)-1]
	assert.Empty(t, last.ToolCalls)
}

func TestPruneShortLogReturnedWhole(t *testing.T) {
	// Over budget but fewer than keep non-system messages: nothing to trim.
	messages := []models.ConversationMessage{
		bigMsg(models.RoleSystem, "sys"),
		bigMsg(models.RoleUser, "u"),
	}
	assert.Equal(t, messages, Prune(messages, 10, 4))
}
