// Package board owns the application state of the message board and the
// controller that mutates it.
package board

import (
	"sync"

	"messageboard/internal/models"
)

// reactionKey identifies one reaction button.
type reactionKey struct {
	messageID string
	label     string
}

// State is the single source of truth for rendering. It is created at
// startup, mutated only through the Controller and discarded with the
// session. Fields are guarded by mu; network calls never hold it.
type State struct {
	mu       sync.Mutex
	messages []models.Message
	avatar   string
	input    string
	active   map[reactionKey]int // in-flight or confirmed attempts per button
	loaded   bool
	gen      uint64 // incremented by every replace
}

// NewState returns an empty state with avatar preselected.
func NewState(avatar string) *State {
	return &State{
		avatar: avatar,
		active: make(map[reactionKey]int),
	}
}

// Snapshot is an immutable copy of State handed to renderers.
type Snapshot struct {
	Messages []models.Message
	Avatar   string
	Input    string
	Loaded   bool
	active   map[reactionKey]bool
}

// Active reports whether the reaction button is highlighted.
func (s Snapshot) Active(messageID, label string) bool {
	return s.active[reactionKey{messageID, label}]
}

// Snapshot copies the state.
func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	messages := make([]models.Message, len(s.messages))
	for i, m := range s.messages {
		messages[i] = m.Clone()
	}
	active := make(map[reactionKey]bool, len(s.active))
	for k, n := range s.active {
		if n > 0 {
			active[k] = true
		}
	}
	return Snapshot{
		Messages: messages,
		Avatar:   s.avatar,
		Input:    s.input,
		Loaded:   s.loaded,
		active:   active,
	}
}

// Len returns the number of messages.
func (s *State) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.messages)
}

// Avatar returns the current selection.
func (s *State) Avatar() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.avatar
}

// Input returns the pending input text.
func (s *State) Input() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.input
}

func (s *State) setAvatar(avatar string) {
	s.mu.Lock()
	s.avatar = avatar
	s.mu.Unlock()
}

func (s *State) setInput(text string) {
	s.mu.Lock()
	s.input = text
	s.mu.Unlock()
}

// replace installs the result of the initial load.
func (s *State) replace(messages []models.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = messages
	s.active = make(map[reactionKey]int)
	s.loaded = true
	s.gen++
}

// markLoaded records a load attempt that left the list empty.
func (s *State) markLoaded() {
	s.mu.Lock()
	s.loaded = true
	s.mu.Unlock()
}

// prepend inserts a freshly created message at the head. The input is
// cleared only if it still equals submitted.
func (s *State) prepend(m models.Message, submitted string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append([]models.Message{m}, s.messages...)
	if s.input == submitted {
		s.input = ""
	}
}

// find returns a copy of the message with key id.
func (s *State) find(id string) (models.Message, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.messages {
		if m.Key() == id {
			return m.Clone(), true
		}
	}
	return models.Message{}, false
}

// count returns the current tally of one reaction.
func (s *State) count(id, label string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.countLocked(id, label)
}

func (s *State) countLocked(id, label string) int {
	for _, m := range s.messages {
		if m.Key() == id {
			return m.Reactions.Count(label)
		}
	}
	return 0
}

// bumpAt applies delta and also returns the list generation it was applied to.
func (s *State) bumpAt(id, label string, delta int) (int, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bumpLocked(id, label, delta), s.gen
}

// undo reverts one increment applied at generation gen. After a reload the
// increment is no longer part of the list and the current count is returned.
func (s *State) undo(gen uint64, id, label string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return s.countLocked(id, label)
	}
	return s.bumpLocked(id, label, -1)
}

// bumpLocked adds delta to a reaction count and to the button's active
// marker. It returns the count after the change.
func (s *State) bumpLocked(id, label string, delta int) int {

	key := reactionKey{id, label}
	s.active[key] += delta
	if s.active[key] <= 0 {
		delete(s.active, key)
	}

	for i := range s.messages {
		if s.messages[i].Key() != id {
			continue
		}
		if s.messages[i].Reactions == nil {
			s.messages[i].Reactions = models.Reactions{}
		}
		n := s.messages[i].Reactions[label] + delta
		if n < 0 {
			n = 0
		}
		s.messages[i].Reactions[label] = n
		return n
	}
	return 0
}
