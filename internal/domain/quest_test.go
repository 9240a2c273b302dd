package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuestStatus(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected QuestStatus
		wantErr  bool
	}{
		{name: "not started", input: "not_started", expected: QuestNotStarted},
		{name: "in progress", input: "in_progress", expected: QuestInProgress},
		{name: "completed", input: "completed", expected: QuestCompleted},
		{name: "legacy completed token", input: "완료", expected: QuestCompleted},
		{name: "unknown value", input: "done", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "case sensitive", input: "Completed", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, err := ParseQuestStatus(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidQuestStatus)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, status)
		})
	}
}

func TestCanTransitionTo(t *testing.T) {
	assert.True(t, QuestNotStarted.CanTransitionTo(QuestInProgress))
	assert.True(t, QuestNotStarted.CanTransitionTo(QuestCompleted))
	assert.True(t, QuestInProgress.CanTransitionTo(QuestCompleted))

	// Backward and no-op moves are blocked under the forward-only policy
	assert.False(t, QuestCompleted.CanTransitionTo(QuestInProgress))
	assert.False(t, QuestCompleted.CanTransitionTo(QuestNotStarted))
	assert.False(t, QuestInProgress.CanTransitionTo(QuestNotStarted))
	assert.False(t, QuestInProgress.CanTransitionTo(QuestInProgress))
}
