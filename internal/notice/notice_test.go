package notice

import (
	"encoding/json"
	"testing"
	"time"

	"messageboard/internal/hub"

	"github.com/stretchr/testify/require"
)

func TestNotifier_ErrorIsActiveThenAutoDismissed(t *testing.T) {
	req := require.New(t)
	n := NewNotifier(20*time.Millisecond, time.Hour, nil, nil)

	shown := n.Error("Fehler beim Laden der Nachrichten.")

	req.Equal(KindError, shown.Kind)
	req.NotEmpty(shown.ID)
	req.Len(n.Active(), 1)

	req.Eventually(func() bool { return len(n.Active()) == 0 }, time.Second, 5*time.Millisecond)
}

func TestNotifier_SuccessUsesItsOwnDuration(t *testing.T) {
	req := require.New(t)
	n := NewNotifier(time.Hour, 2*time.Second, nil, nil)

	shown := n.Success("✅ Gesendet!")

	req.Equal(KindSuccess, shown.Kind)
	req.Equal(2*time.Second, shown.ExpiresAt.Sub(shown.CreatedAt))
	req.True(n.Dismiss(shown.ID))
	req.False(n.Dismiss(shown.ID))
	req.Empty(n.Active())
}

func TestNotifier_PublishesLifecycleOnHub(t *testing.T) {
	req := require.New(t)
	h := hub.NewHub()
	client := hub.NewClient()
	h.Subscribe(hub.TopicNotices, client)

	n := NewNotifier(10*time.Millisecond, time.Hour, h, nil)
	shown := n.Error("Konnte nicht reagieren.")

	var types []string
	for len(types) < 2 {
		select {
		case raw := <-client:
			var evt struct {
				Type    string `json:"type"`
				Payload Notice `json:"payload"`
			}
			req.NoError(json.Unmarshal(raw, &evt))
			req.Equal(shown.ID, evt.Payload.ID)
			types = append(types, evt.Type)
		case <-time.After(time.Second):
			t.Fatalf("timed out, got %v", types)
		}
	}
	req.Equal([]string{EventShown, EventDismissed}, types)
}
