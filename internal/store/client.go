// Package store talks to the remote message collection endpoint.
//
// The store layer owns all error feedback for network failures: every failed
// call is logged and reported once through the notice.Reporter, and callers
// only decide what to do with local state.
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"messageboard/internal/i18n"
	"messageboard/internal/metrics"
	"messageboard/internal/models"
	"messageboard/internal/notice"
	"messageboard/pkg/jwt"

	"go.uber.org/zap"
)

// Operation names, used in errors, logs and metrics.
const (
	OpLoad   = "load"
	OpCreate = "create"
	OpReact  = "react"
)

// maxErrorBody caps how much of a failed response is kept for diagnostics.
const maxErrorBody = 512

var (
	ErrLoad     = errors.New("failed to load messages")
	ErrSave     = errors.New("failed to save message")
	ErrReaction = errors.New("reaction failed")
)

// StatusError is returned when the API answers with a non-2xx status.
type StatusError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d", e.Op, e.StatusCode)
}

// Options configures a Client.
type Options struct {
	URL        string
	Timeout    time.Duration // zero leaves the transport default in place
	HTTPClient *http.Client
	Signer     *jwt.Signer
	Texts      i18n.Catalog
	Notices    notice.Reporter
	Logger     *zap.SugaredLogger
}

// Client is a Remote Store client bound to one collection URL.
type Client struct {
	url     string
	http    *http.Client
	signer  *jwt.Signer
	texts   i18n.Catalog
	notices notice.Reporter
	log     *zap.SugaredLogger
}

// NewClient creates a Client. No retries are performed.
func NewClient(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Client{
		url:     opts.URL,
		http:    httpClient,
		signer:  opts.Signer,
		texts:   opts.Texts,
		notices: opts.Notices,
		log:     log,
	}
}

// LoadAll fetches every message of the collection.
func (c *Client) LoadAll(ctx context.Context) ([]models.Message, error) {
	var messages []models.Message
	err := c.do(ctx, OpLoad, http.MethodGet, nil, &messages)
	if err != nil {
		return nil, c.fail(OpLoad, ErrLoad, c.texts.LoadFailed, err)
	}
	if messages == nil {
		messages = []models.Message{}
	}
	return messages, nil
}

// Create persists a draft. The server assigns identity and timestamp.
func (c *Client) Create(ctx context.Context, draft models.Draft) (models.Message, error) {
	var saved models.Message
	if err := c.do(ctx, OpCreate, http.MethodPost, draft, &saved); err != nil {
		return models.Message{}, c.fail(OpCreate, ErrSave, c.texts.SaveFailed, err)
	}
	return saved, nil
}

// React asks the server to increment one reaction. The server keeps the count.
func (c *Client) React(ctx context.Context, r models.ReactionRequest) error {
	if err := c.do(ctx, OpReact, http.MethodPost, r, nil); err != nil {
		return c.fail(OpReact, ErrReaction, c.texts.ReactFailed, err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, op, method string, body, out any) (err error) {
	started := time.Now()
	defer func() { metrics.ObserveStore(op, started, err) }()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: encode body: %w", op, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url, reader)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.signer != nil {
		token, err := c.signer.GenerateToken()
		if err != nil {
			return fmt.Errorf("%s: sign request: %w", op, err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{Op: op, StatusCode: resp.StatusCode, Body: string(snippet)}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}

// fail logs the cause, reports the user-facing text and wraps both errors.
func (c *Client) fail(op string, sentinel error, text string, cause error) error {
	c.log.Errorw("remote store call failed", "op", op, "url", c.url, "error", cause)
	if c.notices != nil {
		c.notices.Error(text)
	}
	return fmt.Errorf("%w: %w", sentinel, cause)
}
