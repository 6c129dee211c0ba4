package store

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"messageboard/internal/i18n"
	"messageboard/internal/models"
	"messageboard/internal/notice"
	"messageboard/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// recordingReporter keeps every reported text.
type recordingReporter struct {
	mu     sync.Mutex
	errors []string
}

func (r *recordingReporter) Error(text string) notice.Notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errors = append(r.errors, text)
	return notice.Notice{Kind: notice.KindError, Text: text}
}

func (r *recordingReporter) Success(text string) notice.Notice {
	return notice.Notice{Kind: notice.KindSuccess, Text: text}
}

// fakeAPI mimics the single collection endpoint of the message API.
type fakeAPI struct {
	status    int
	messages  []models.Message
	lastBody  map[string]any
	lastAuth  string
	reactions int
}

func (f *fakeAPI) server(t *testing.T) *httptest.Server {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/messages", func(c *gin.Context) {
		f.lastAuth = c.GetHeader("Authorization")
		if f.status != 0 {
			c.JSON(f.status, gin.H{"error": "boom"})
			return
		}
		c.JSON(http.StatusOK, f.messages)
	})
	router.POST("/messages", func(c *gin.Context) {
		f.lastAuth = c.GetHeader("Authorization")
		var body map[string]any
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		f.lastBody = body
		if f.status != 0 {
			c.JSON(f.status, gin.H{"error": "boom"})
			return
		}
		if _, ok := body["reaction"]; ok {
			f.reactions++
			c.JSON(http.StatusOK, gin.H{"success": true})
			return
		}
		c.JSON(http.StatusCreated, models.Message{
			MessageID: "5b0e7c1a-8f0e-4bb1-9f43-0d9a7a1d2c11",
			Timestamp: 1760700000000,
			Content:   body["content"].(string),
			Avatar:    body["avatar"].(string),
			Reactions: models.Reactions{},
		})
	})
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func newTestClient(url string, reporter notice.Reporter, signer *jwt.Signer) *Client {
	return NewClient(Options{
		URL:     url + "/messages",
		Texts:   i18n.German,
		Notices: reporter,
		Signer:  signer,
		Timeout: 2 * time.Second,
	})
}

func TestClient_LoadAll(t *testing.T) {
	req := require.New(t)
	api := &fakeAPI{messages: []models.Message{
		{MessageID: "b", Content: "newer", Timestamp: 2},
		{MessageID: "a", Content: "older", Timestamp: 1, Reactions: models.Reactions{"👍": 2}},
	}}
	reporter := &recordingReporter{}
	client := newTestClient(api.server(t).URL, reporter, nil)

	messages, err := client.LoadAll(context.Background())

	req.NoError(err)
	req.Len(messages, 2)
	req.Equal("newer", messages[0].Content)
	req.Equal(2, messages[1].Reactions.Count("👍"))
	req.Empty(reporter.errors)
	req.Empty(api.lastAuth)
}

func TestClient_LoadAll_FailureIsReportedOnce(t *testing.T) {
	req := require.New(t)
	api := &fakeAPI{status: http.StatusInternalServerError}
	reporter := &recordingReporter{}
	client := newTestClient(api.server(t).URL, reporter, nil)

	messages, err := client.LoadAll(context.Background())

	req.ErrorIs(err, ErrLoad)
	var statusErr *StatusError
	req.True(errors.As(err, &statusErr))
	req.Equal(http.StatusInternalServerError, statusErr.StatusCode)
	req.Nil(messages)
	req.Equal([]string{i18n.German.LoadFailed}, reporter.errors)
}

func TestClient_LoadAll_TransportFailure(t *testing.T) {
	req := require.New(t)
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()
	reporter := &recordingReporter{}

	_, err := newTestClient(url, reporter, nil).LoadAll(context.Background())

	req.ErrorIs(err, ErrLoad)
	req.Len(reporter.errors, 1)
}

func TestClient_Create(t *testing.T) {
	req := require.New(t)
	api := &fakeAPI{}
	reporter := &recordingReporter{}
	client := newTestClient(api.server(t).URL, reporter, nil)

	saved, err := client.Create(context.Background(), models.Draft{Content: "Hallo Welt", Avatar: "ninja"})

	req.NoError(err)
	req.Equal(map[string]any{"content": "Hallo Welt", "avatar": "ninja"}, api.lastBody)
	req.Equal("5b0e7c1a-8f0e-4bb1-9f43-0d9a7a1d2c11", saved.Key())
	req.Equal(int64(1760700000000), saved.Timestamp)
	req.Empty(reporter.errors)
}

func TestClient_Create_FailureDoesNotFabricateMessage(t *testing.T) {
	req := require.New(t)
	api := &fakeAPI{status: http.StatusBadRequest}
	reporter := &recordingReporter{}
	client := newTestClient(api.server(t).URL, reporter, nil)

	saved, err := client.Create(context.Background(), models.Draft{Content: "x", Avatar: "cat"})

	req.ErrorIs(err, ErrSave)
	req.Equal(models.Message{}, saved)
	req.Equal([]string{i18n.German.SaveFailed}, reporter.errors)
}

func TestClient_React(t *testing.T) {
	req := require.New(t)
	api := &fakeAPI{}
	reporter := &recordingReporter{}
	client := newTestClient(api.server(t).URL, reporter, nil)

	err := client.React(context.Background(), models.ReactionRequest{MessageID: "m1", Timestamp: 42, Reaction: "🔥"})

	req.NoError(err)
	req.Equal(1, api.reactions)
	req.Equal("m1", api.lastBody["messageId"])
	req.EqualValues(42, api.lastBody["timestamp"])
	req.Equal("🔥", api.lastBody["reaction"])
}

func TestClient_React_Failure(t *testing.T) {
	req := require.New(t)
	api := &fakeAPI{status: http.StatusBadGateway}
	reporter := &recordingReporter{}
	client := newTestClient(api.server(t).URL, reporter, nil)

	err := client.React(context.Background(), models.ReactionRequest{MessageID: "m1", Reaction: "🔥"})

	req.ErrorIs(err, ErrReaction)
	req.Equal([]string{i18n.German.ReactFailed}, reporter.errors)
}

func TestClient_SignsRequestsWhenSecretIsSet(t *testing.T) {
	req := require.New(t)
	api := &fakeAPI{}
	client := newTestClient(api.server(t).URL, &recordingReporter{}, jwt.NewSigner("s3cret", "messageboard", time.Minute))

	_, err := client.LoadAll(context.Background())
	req.NoError(err)

	req.True(strings.HasPrefix(api.lastAuth, "Bearer "))
	sub, err := jwt.ParseToken(strings.TrimPrefix(api.lastAuth, "Bearer "), "s3cret")
	req.NoError(err)
	req.Equal("messageboard", sub)
}
