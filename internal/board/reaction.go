package board

import (
	"sync"

	"github.com/google/uuid"
)

// ReactionStatus is the lifecycle of an optimistic reaction.
type ReactionStatus string

const (
	ReactionPending    ReactionStatus = "pending"
	ReactionConfirmed  ReactionStatus = "confirmed"
	ReactionRolledBack ReactionStatus = "rolled_back"
)

// ReactionAttempt records one optimistic reaction: pending until the server
// answers, then confirmed or rolled back. A settled attempt never changes.
type ReactionAttempt struct {
	ID        string
	MessageID string
	Label     string
	Before    int

	mu         sync.Mutex
	status     ReactionStatus
	displayed  int
	generation uint64
}

func newReactionAttempt(messageID, label string) *ReactionAttempt {
	return &ReactionAttempt{
		ID:        uuid.NewString(),
		MessageID: messageID,
		Label:     label,
		status:    ReactionPending,
	}
}

// Status returns the current lifecycle state.
func (a *ReactionAttempt) Status() ReactionStatus {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.status
}

// settle moves a pending attempt to its final status. It reports false when
// the attempt was already settled.
func (a *ReactionAttempt) settle(to ReactionStatus, displayed int) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.status != ReactionPending {
		return false
	}
	a.status = to
	a.displayed = displayed
	return true
}

// ReactionView is the JSON form of an attempt.
type ReactionView struct {
	ID        string         `json:"id"`
	MessageID string         `json:"message_id"`
	Reaction  string         `json:"reaction"`
	Before    int            `json:"before"`
	Displayed int            `json:"displayed"`
	Status    ReactionStatus `json:"status"`
}

// View snapshots the attempt.
func (a *ReactionAttempt) View() ReactionView {
	a.mu.Lock()
	defer a.mu.Unlock()
	return ReactionView{
		ID:        a.ID,
		MessageID: a.MessageID,
		Reaction:  a.Label,
		Before:    a.Before,
		Displayed: a.displayed,
		Status:    a.status,
	}
}
