package domain

import "time"

// QuestStatus is the closed set of per-player quest states.
type QuestStatus string

const (
	QuestNotStarted QuestStatus = "not_started"
	QuestInProgress QuestStatus = "in_progress"
	QuestCompleted  QuestStatus = "completed"
)

// legacyCompletedToken is the completion value older game clients send.
// It is normalized to QuestCompleted at the boundary; only canonical values
// are ever persisted.
const legacyCompletedToken = "완료"

// ParseQuestStatus validates a raw status value and returns its canonical
// representation. Unrecognized values return ErrInvalidQuestStatus.
func ParseQuestStatus(raw string) (QuestStatus, error) {
	switch raw {
	case string(QuestNotStarted):
		return QuestNotStarted, nil
	case string(QuestInProgress):
		return QuestInProgress, nil
	case string(QuestCompleted), legacyCompletedToken:
		return QuestCompleted, nil
	default:
		return "", ErrInvalidQuestStatus
	}
}

// rank orders statuses for the forward-only transition policy.
func (s QuestStatus) rank() int {
	switch s {
	case QuestNotStarted:
		return 0
	case QuestInProgress:
		return 1
	case QuestCompleted:
		return 2
	}
	return -1
}

// CanTransitionTo reports whether moving to next is allowed under the
// forward-only policy. Unrestricted mode never consults this.
func (s QuestStatus) CanTransitionTo(next QuestStatus) bool {
	return next.rank() > s.rank()
}

// Quest is a catalog entry: static quest definition shared across players.
type Quest struct {
	ID           int    `json:"quest_id" db:"quest_id"`
	Title        string `json:"title" db:"title"`
	Description  string `json:"quest_description" db:"quest_description"`
	RewardExp    int    `json:"reward_exp" db:"reward_exp"`
	RewardItemID *int   `json:"reward_item_id,omitempty" db:"reward_item_id"`
}

// PlayerQuest is one (player, quest) assignment row. CompletedAt is present
// iff Status is QuestCompleted.
type PlayerQuest struct {
	PlayerID    int         `json:"player_id" db:"player_id"`
	QuestID     int         `json:"quest_id" db:"quest_id"`
	Status      QuestStatus `json:"status" db:"status"`
	CompletedAt *time.Time  `json:"completed_at,omitempty" db:"completed_at"`
}

// PlayerQuestView joins the quest catalog with the player's status for reads.
type PlayerQuestView struct {
	Quest
	Status      QuestStatus `json:"status" db:"status"`
	CompletedAt *time.Time  `json:"completed_at,omitempty" db:"completed_at"`
}
