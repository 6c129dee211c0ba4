// Package app assembles the board from configuration. Both the HTTP host and
// the terminal host start from here.
package app

import (
	"context"
	"errors"
	"time"

	"messageboard/internal/board"
	"messageboard/internal/config"
	"messageboard/internal/dashboard"
	"messageboard/internal/hub"
	"messageboard/internal/i18n"
	"messageboard/internal/logger"
	"messageboard/internal/notice"
	"messageboard/internal/render"
	"messageboard/internal/store"
	"messageboard/pkg/jwt"

	"go.uber.org/zap"
)

// tokenSubject identifies the board to the message API.
const tokenSubject = "messageboard"

// App is the assembled board.
type App struct {
	Config     *config.Config
	Texts      i18n.Catalog
	Location   *time.Location
	Hub        *hub.Hub
	Notices    *notice.Notifier
	Store      *store.Client
	Controller *board.Controller
	Chart      *dashboard.Slot
	Dashboard  *dashboard.Dashboard
	Log        *zap.SugaredLogger

	// Now is the clock used for rendering.
	Now func() time.Time
}

// Option adjusts the store client before it is built, e.g. its transport.
type Option func(*store.Options)

// New wires every component. It performs no network call.
func New(cfg *config.Config, log *zap.SugaredLogger, opts ...Option) (*App, error) {
	if cfg == nil {
		return nil, errors.New("app: nil config")
	}
	if log == nil {
		log = logger.Nop()
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	a := &App{
		Config:   cfg,
		Texts:    i18n.Lookup(cfg.Locale),
		Location: loc,
		Hub:      hub.NewHub(),
		Log:      log,
		Now:      time.Now,
	}
	a.Notices = notice.NewNotifier(cfg.ErrorNoticeDuration, cfg.SuccessNoticeDuration, a.Hub, log)

	storeOpts := store.Options{
		URL:     cfg.APIURL,
		Timeout: cfg.HTTPTimeout,
		Signer:  jwt.NewSigner(cfg.APITokenSecret, tokenSubject, jwt.DefaultTTL),
		Texts:   a.Texts,
		Notices: a.Notices,
		Logger:  log.Named("store"),
	}
	for _, opt := range opts {
		opt(&storeOpts)
	}
	a.Store = store.NewClient(storeOpts)

	a.Controller = board.NewController(
		a.Store,
		board.NewState(cfg.DefaultAvatar),
		a.Notices,
		a.Texts,
		board.Options{
			MaxLength: cfg.MaxMessageLength,
			Avatars:   cfg.Avatars,
			Reactions: cfg.Reactions,
		},
		log.Named("board"),
	)
	a.Chart = dashboard.NewSlot(a.Texts)
	a.Dashboard = dashboard.New(a.Chart, loc)
	return a, nil
}

// Start performs the initial load. A failed load is not fatal: the board
// starts empty and the user has been notified.
func (a *App) Start(ctx context.Context) {
	if err := a.Controller.Load(ctx); err != nil {
		a.Log.Warnw("starting with an empty board", "error", err)
	}
	a.publishBoardChanged("loaded")
}

// Reload replaces the board with a fresh copy of the remote list.
func (a *App) Reload(ctx context.Context) error {
	if err := a.Controller.Load(ctx); err != nil {
		return err
	}
	a.publishBoardChanged("reloaded")
	return nil
}

// RenderOptions returns the renderer configuration.
func (a *App) RenderOptions() render.Options {
	return render.Options{
		Reactions:      a.Config.Reactions,
		AnimationDelay: a.Config.AnimationDelay,
		Location:       a.Location,
		Texts:          a.Texts,
	}
}

// View renders the current state.
func (a *App) View() render.BoardView {
	return render.Render(a.Controller.State().Snapshot(), a.Now(), a.RenderOptions())
}

// OpenDashboard recomputes the dashboard from the full list.
func (a *App) OpenDashboard() dashboard.View {
	return a.Dashboard.Open(a.Controller.State().Snapshot().Messages)
}

// Submit posts text as a new message.
func (a *App) Submit(ctx context.Context, text string) (board.Outcome, error) {
	outcome, err := a.Controller.SubmitText(ctx, text)
	if err == nil {
		a.publishBoardChanged("message_created")
	}
	return outcome, err
}

// React applies an optimistic reaction.
func (a *App) React(ctx context.Context, messageID, label string) (*board.ReactionAttempt, error) {
	attempt, err := a.Controller.React(ctx, messageID, label)
	if attempt != nil {
		a.publishBoardChanged("reaction_" + string(attempt.Status()))
	}
	return attempt, err
}

func (a *App) publishBoardChanged(reason string) {
	if err := a.Hub.Broadcast(hub.TopicBoard, hub.Event{Type: "board.changed", Payload: reason}); err != nil {
		a.Log.Warnw("failed to publish board change", "error", err)
	}
}
