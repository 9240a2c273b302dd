package repository

import (
	"context"

	"github.com/gameworld/gameworld/internal/domain"
)

// Quest defines the interface for the quest tracker
type Quest interface {
	// GetQuests returns the quest catalog joined with the player's status;
	// empty slice when nothing is assigned.
	GetQuests(ctx context.Context, playerID int) ([]domain.PlayerQuestView, error)

	// GetAssignment fetches one (player, quest) row; nil when unassigned.
	GetAssignment(ctx context.Context, playerID, questID int) (*domain.PlayerQuest, error)

	// UpdateStatus transitions an existing assignment. Setting or clearing
	// the completion timestamp is derived from the new status. Returns
	// domain.ErrQuestNotAssigned when no row exists.
	UpdateStatus(ctx context.Context, playerID, questID int, status domain.QuestStatus) error
}
