package session

import (
	"context"
	"fmt"

	"github.com/gameworld/gameworld/internal/domain"
	"github.com/gameworld/gameworld/internal/inventory"
	"github.com/gameworld/gameworld/internal/logger"
	"github.com/gameworld/gameworld/internal/quest"
)

// State is the post-login snapshot: everything a client needs after a
// successful authentication.
type State struct {
	Inventory []domain.InventoryItem   `json:"inventory"`
	Quests    []domain.PlayerQuestView `json:"quests"`
}

// Service is the player session facade, the single entry point the API calls
// after a login succeeds.
type Service interface {
	// PostLogin fetches inventory then quests for the player. When one
	// sub-fetch fails the other's result is still returned, alongside an
	// error wrapping domain.ErrPartialFetch naming the failed part.
	PostLogin(ctx context.Context, playerID int) (*State, error)
}

type service struct {
	inventory inventory.Service
	quests    quest.Service
}

// NewService creates a new session facade
func NewService(invSvc inventory.Service, questSvc quest.Service) Service {
	return &service{inventory: invSvc, quests: questSvc}
}

func (s *service) PostLogin(ctx context.Context, playerID int) (*State, error) {
	log := logger.FromContext(ctx)
	state := &State{}

	invErr := func() error {
		items, err := s.inventory.GetInventory(ctx, playerID)
		if err != nil {
			return err
		}
		state.Inventory = items
		return nil
	}()

	questErr := func() error {
		quests, err := s.quests.GetQuests(ctx, playerID)
		if err != nil {
			return err
		}
		state.Quests = quests
		return nil
	}()

	switch {
	case invErr == nil && questErr == nil:
		return state, nil
	case invErr != nil && questErr != nil:
		log.Error("Post-login fetch failed", "player_id", playerID,
			"inventory_error", invErr, "quest_error", questErr)
		return nil, fmt.Errorf("post-login fetch: inventory: %w; quests: %v", invErr, questErr)
	case invErr != nil:
		log.Error("Post-login inventory fetch failed", "player_id", playerID, "error", invErr)
		return state, fmt.Errorf("%w: inventory: %w", domain.ErrPartialFetch, invErr)
	default:
		log.Error("Post-login quest fetch failed", "player_id", playerID, "error", questErr)
		return state, fmt.Errorf("%w: quests: %w", domain.ErrPartialFetch, questErr)
	}
}
