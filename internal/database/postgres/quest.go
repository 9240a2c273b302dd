package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gameworld/gameworld/internal/database"
	"github.com/gameworld/gameworld/internal/domain"
)

// QuestRepository implements the quest tracker for PostgreSQL
type QuestRepository struct {
	db database.Querier
}

// NewQuestRepository creates a new QuestRepository
func NewQuestRepository(db database.Querier) *QuestRepository {
	return &QuestRepository{db: db}
}

// GetQuests returns the join of the quest catalog and the player's per-quest
// status, ordered by quest id. Empty slice when nothing is assigned.
func (r *QuestRepository) GetQuests(ctx context.Context, playerID int) ([]domain.PlayerQuestView, error) {
	query := `
		SELECT q.quest_id, q.title, q.quest_description, q.reward_exp, q.reward_item_id,
		       pq.status, pq.completed_at
		FROM player_quests pq
		JOIN quests q ON pq.quest_id = q.quest_id
		WHERE pq.player_id = $1
		ORDER BY q.quest_id
	`

	rows, err := r.db.Query(ctx, query, playerID)
	if err != nil {
		return nil, wrapStorageErr("get quests", err)
	}
	defer rows.Close()

	quests := []domain.PlayerQuestView{}
	for rows.Next() {
		var q domain.PlayerQuestView
		if err := rows.Scan(&q.ID, &q.Title, &q.Description, &q.RewardExp, &q.RewardItemID,
			&q.Status, &q.CompletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan quest row: %w", err)
		}
		quests = append(quests, q)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapStorageErr("get quests", err)
	}

	return quests, nil
}

// GetAssignment fetches a single (player, quest) row. Returns nil when no
// assignment exists.
func (r *QuestRepository) GetAssignment(ctx context.Context, playerID, questID int) (*domain.PlayerQuest, error) {
	query := `
		SELECT player_id, quest_id, status, completed_at
		FROM player_quests
		WHERE player_id = $1 AND quest_id = $2
	`

	var pq domain.PlayerQuest
	err := r.db.QueryRow(ctx, query, playerID, questID).
		Scan(&pq.PlayerID, &pq.QuestID, &pq.Status, &pq.CompletedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapStorageErr("get quest assignment", err)
	}

	return &pq, nil
}

// UpdateStatus sets the status of an existing assignment. The completion
// timestamp is a total function of the new status: read and written in the
// same statement so status and timestamp can never drift apart. Zero rows
// affected means the quest was never assigned; the update does not create one.
func (r *QuestRepository) UpdateStatus(ctx context.Context, playerID, questID int, status domain.QuestStatus) error {
	query := `
		UPDATE player_quests
		SET status = $3,
		    completed_at = CASE WHEN $3 = 'completed' THEN NOW() ELSE NULL END
		WHERE player_id = $1 AND quest_id = $2
	`

	tag, err := r.db.Exec(ctx, query, playerID, questID, string(status))
	if err != nil {
		return wrapStorageErr("update quest status", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update quest status: %w", domain.ErrQuestNotAssigned)
	}
	return nil
}
