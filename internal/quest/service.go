package quest

import (
	"context"
	"fmt"

	"github.com/gameworld/gameworld/internal/domain"
	"github.com/gameworld/gameworld/internal/logger"
	"github.com/gameworld/gameworld/internal/metrics"
	"github.com/gameworld/gameworld/internal/repository"
)

// Service is the quest tracker: per-player quest status rows keyed by
// (player, quest), mutated only through UpdateStatus.
type Service interface {
	GetQuests(ctx context.Context, playerID int) ([]domain.PlayerQuestView, error)

	// UpdateStatus transitions an existing assignment to rawStatus. The raw
	// value is validated against the closed status set before any storage
	// access; it never creates an assignment.
	UpdateStatus(ctx context.Context, playerID, questID int, rawStatus string) error
}

type service struct {
	repo repository.Quest

	// forwardOnly restricts transitions to
	// not_started -> in_progress -> completed.
	forwardOnly bool
}

// NewService creates a new quest service
func NewService(repo repository.Quest, forwardOnly bool) Service {
	return &service{repo: repo, forwardOnly: forwardOnly}
}

func (s *service) GetQuests(ctx context.Context, playerID int) ([]domain.PlayerQuestView, error) {
	quests, err := s.repo.GetQuests(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get quests: %w", err)
	}
	return quests, nil
}

func (s *service) UpdateStatus(ctx context.Context, playerID, questID int, rawStatus string) error {
	log := logger.FromContext(ctx)

	status, err := domain.ParseQuestStatus(rawStatus)
	if err != nil {
		return fmt.Errorf("%w: %q", domain.ErrInvalidQuestStatus, rawStatus)
	}

	if s.forwardOnly {
		current, err := s.repo.GetAssignment(ctx, playerID, questID)
		if err != nil {
			return fmt.Errorf("failed to check quest assignment: %w", err)
		}
		if current == nil {
			return fmt.Errorf("%w: quest %d", domain.ErrQuestNotAssigned, questID)
		}
		if !current.Status.CanTransitionTo(status) {
			return fmt.Errorf("%w: %s -> %s", domain.ErrTransitionNotAllowed, current.Status, status)
		}
	}

	if err := s.repo.UpdateStatus(ctx, playerID, questID, status); err != nil {
		return err
	}

	metrics.QuestStatusUpdates.WithLabelValues(string(status)).Inc()
	log.Info("Quest status updated", "player_id", playerID, "quest_id", questID, "status", status)
	return nil
}
