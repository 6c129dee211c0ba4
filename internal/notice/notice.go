// Package notice keeps transient, auto-dismissing user notices.
package notice

import (
	"sort"
	"sync"
	"time"

	"messageboard/internal/hub"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Kind string

const (
	KindError   Kind = "error"
	KindSuccess Kind = "success"
)

// Event types published on hub.TopicNotices.
const (
	EventShown     = "notice.shown"
	EventDismissed = "notice.dismissed"
)

// Notice is a single message shown to the user until it expires.
type Notice struct {
	ID        string    `json:"id"`
	Kind      Kind      `json:"kind"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Reporter is what the store and the controller need to surface feedback.
type Reporter interface {
	Error(text string) Notice
	Success(text string) Notice
}

// Publisher receives notice lifecycle events. *hub.Hub satisfies it.
type Publisher interface {
	Broadcast(topic string, event hub.Event) error
}

// Notifier is the default Reporter.
type Notifier struct {
	errorFor   time.Duration
	successFor time.Duration
	publisher  Publisher
	log        *zap.SugaredLogger
	now        func() time.Time

	mu     sync.Mutex
	active map[string]Notice
}

// NewNotifier creates a Notifier. publisher may be nil.
func NewNotifier(errorFor, successFor time.Duration, publisher Publisher, log *zap.SugaredLogger) *Notifier {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Notifier{
		errorFor:   errorFor,
		successFor: successFor,
		publisher:  publisher,
		log:        log,
		now:        time.Now,
		active:     make(map[string]Notice),
	}
}

func (n *Notifier) Error(text string) Notice {
	return n.show(KindError, text, n.errorFor)
}

func (n *Notifier) Success(text string) Notice {
	return n.show(KindSuccess, text, n.successFor)
}

// Active lists the notices that have not been dismissed yet, oldest first.
func (n *Notifier) Active() []Notice {
	n.mu.Lock()
	defer n.mu.Unlock()

	out := make([]Notice, 0, len(n.active))
	for _, item := range n.active {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

// Dismiss removes a notice ahead of its expiry. It reports whether it was active.
func (n *Notifier) Dismiss(id string) bool {
	n.mu.Lock()
	item, ok := n.active[id]
	delete(n.active, id)
	n.mu.Unlock()

	if ok {
		n.publish(EventDismissed, item)
	}
	return ok
}

func (n *Notifier) show(kind Kind, text string, ttl time.Duration) Notice {
	now := n.now()
	item := Notice{
		ID:        uuid.NewString(),
		Kind:      kind,
		Text:      text,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}

	n.mu.Lock()
	n.active[item.ID] = item
	n.mu.Unlock()

	n.publish(EventShown, item)
	time.AfterFunc(ttl, func() { n.Dismiss(item.ID) })
	return item
}

func (n *Notifier) publish(eventType string, item Notice) {
	if n.publisher == nil {
		return
	}
	if err := n.publisher.Broadcast(hub.TopicNotices, hub.Event{Type: eventType, Payload: item}); err != nil {
		n.log.Warnw("failed to publish notice", "notice_id", item.ID, "error", err)
	}
}
