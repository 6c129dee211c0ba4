package board

import (
	"context"
	"strings"
	"unicode/utf8"

	"messageboard/internal/i18n"
	"messageboard/internal/metrics"
	"messageboard/internal/models"
	"messageboard/internal/notice"

	"go.uber.org/zap"
)

//go:generate mockgen -source=controller.go -destination=../mocks/mock_store.go -package=mocks

// Store is the remote collection the controller reads from and writes to.
// Implementations report their own failures to the user.
type Store interface {
	LoadAll(ctx context.Context) ([]models.Message, error)
	Create(ctx context.Context, draft models.Draft) (models.Message, error)
	React(ctx context.Context, r models.ReactionRequest) error
}

// Phase of a submission.
type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseValidating Phase = "validating"
	PhaseSubmitting Phase = "submitting"
	PhaseSucceeded  Phase = "succeeded"
	PhaseFailed     Phase = "failed"
	PhaseRejected   Phase = "rejected"
)

// warningRatio is the share of the limit above which the counter warns.
const warningRatio = 0.9

// Options are the board rules taken from configuration.
type Options struct {
	MaxLength int
	Avatars   []string
	Reactions []string
}

// Counter is the live character counter next to the input.
type Counter struct {
	Length  int  `json:"length"`
	Max     int  `json:"max"`
	Warning bool `json:"warning"`
}

// Outcome describes a finished submission.
type Outcome struct {
	Phase   Phase           `json:"phase"`
	Message *models.Message `json:"message,omitempty"`
}

// Controller validates input, submits drafts and applies reactions.
type Controller struct {
	store   Store
	state   *State
	notices notice.Reporter
	texts   i18n.Catalog
	opts    Options
	log     *zap.SugaredLogger

	// OnPhase, when set, observes every submission phase transition.
	OnPhase func(Phase)
}

// NewController wires a controller to its collaborators.
func NewController(store Store, state *State, notices notice.Reporter, texts i18n.Catalog, opts Options, log *zap.SugaredLogger) *Controller {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Controller{
		store:   store,
		state:   state,
		notices: notices,
		texts:   texts,
		opts:    opts,
		log:     log,
	}
}

// State exposes the owned state for rendering.
func (c *Controller) State() *State {
	return c.state
}

// Options returns the rules the controller enforces.
func (c *Controller) Options() Options {
	return c.opts
}

// Load fetches all messages into the state. On failure the list stays empty;
// the store has already told the user.
func (c *Controller) Load(ctx context.Context) error {
	messages, err := c.store.LoadAll(ctx)
	if err != nil {
		c.state.markLoaded()
		return err
	}
	c.state.replace(messages)
	c.log.Infow("messages loaded", "count", len(messages))
	return nil
}

// SetInput stores the pending text and returns the character counter.
func (c *Controller) SetInput(text string) Counter {
	c.state.setInput(text)
	return c.counter(text)
}

func (c *Controller) counter(text string) Counter {
	n := utf8.RuneCountInString(text)
	return Counter{
		Length:  n,
		Max:     c.opts.MaxLength,
		Warning: float64(n) > float64(c.opts.MaxLength)*warningRatio,
	}
}

// Counter returns the counter for the current input.
func (c *Controller) Counter() Counter {
	return c.counter(c.state.Input())
}

// SelectAvatar changes the avatar used by the next submission.
func (c *Controller) SelectAvatar(avatar string) error {
	for _, a := range c.opts.Avatars {
		if a == avatar {
			c.state.setAvatar(avatar)
			return nil
		}
	}
	return ErrUnknownAvatar
}

// Submit validates the current input and posts it. A failed save leaves the
// state and input untouched; the store has already reported it.
func (c *Controller) Submit(ctx context.Context) (Outcome, error) {
	return c.SubmitDraft(ctx, c.state.Input())
}

// SubmitDraft validates content and posts it with the selected avatar. The
// shared input is cleared on success only if it still equals content.
func (c *Controller) SubmitDraft(ctx context.Context, content string) (Outcome, error) {
	c.enter(PhaseValidating)
	submitted := content
	content = strings.TrimSpace(content)

	if err := c.validate(content); err != nil {
		c.notices.Error(err.Message)
		return c.finish(PhaseRejected, nil), err
	}

	draft := models.Draft{Content: content, Avatar: c.state.Avatar()}

	c.enter(PhaseSubmitting)
	saved, err := c.store.Create(ctx, draft)
	if err != nil {
		return c.finish(PhaseFailed, nil), err
	}

	c.state.prepend(saved, submitted)
	c.notices.Success(c.texts.Sent)
	c.log.Infow("message submitted", "message_id", saved.Key(), "avatar", draft.Avatar)
	return c.finish(PhaseSucceeded, &saved), nil
}

// SubmitText sets the input and submits text in one step. The posted content
// is text even when another caller changes the input meanwhile.
func (c *Controller) SubmitText(ctx context.Context, text string) (Outcome, error) {
	c.SetInput(text)
	return c.SubmitDraft(ctx, text)
}

func (c *Controller) validate(content string) *ValidationError {
	if content == "" {
		return &ValidationError{Reason: ErrEmptyContent, Message: c.texts.EmptyContent}
	}
	if utf8.RuneCountInString(content) > c.opts.MaxLength {
		return &ValidationError{Reason: ErrContentTooLong, Message: c.texts.TooLong(c.opts.MaxLength)}
	}
	return nil
}

func (c *Controller) enter(p Phase) {
	if c.OnPhase != nil {
		c.OnPhase(p)
	}
}

func (c *Controller) finish(p Phase, saved *models.Message) Outcome {
	metrics.Submissions.WithLabelValues(string(p)).Inc()
	c.enter(p)
	c.enter(PhaseIdle)
	return Outcome{Phase: p, Message: saved}
}

// React increments a reaction optimistically, then confirms it with the store.
// On failure the increment and the active marker are undone, unless a reload
// replaced the list while the request was in flight.
func (c *Controller) React(ctx context.Context, messageID, label string) (*ReactionAttempt, error) {
	if !c.knownReaction(label) {
		return nil, ErrUnknownReaction
	}
	msg, ok := c.state.find(messageID)
	if !ok {
		return nil, ErrUnknownMessage
	}

	attempt := newReactionAttempt(messageID, label)
	attempt.Before = msg.Reactions.Count(label)
	attempt.displayed, attempt.generation = c.state.bumpAt(messageID, label, 1)

	err := c.store.React(ctx, models.ReactionRequest{
		MessageID: messageID,
		Timestamp: msg.Timestamp,
		Reaction:  label,
	})
	if err != nil {
		attempt.settle(ReactionRolledBack, c.state.undo(attempt.generation, messageID, label))
		metrics.ReactionAttempts.WithLabelValues(string(ReactionRolledBack)).Inc()
		return attempt, err
	}

	attempt.settle(ReactionConfirmed, c.state.count(messageID, label))
	metrics.ReactionAttempts.WithLabelValues(string(ReactionConfirmed)).Inc()
	return attempt, nil
}

func (c *Controller) knownReaction(label string) bool {
	for _, r := range c.opts.Reactions {
		if r == label {
			return true
		}
	}
	return false
}
