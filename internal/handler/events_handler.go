package handler

import (
	"io"
	"net/http"

	"messageboard/internal/hub"

	"github.com/gin-gonic/gin"
)

// Events godoc
// @Summary      Subscribe to board events
// @Description  Server-sent event stream of notice and board changes.
// @Tags         dashboard
// @Produce      text/event-stream
// @Param        topic  query  string  false  "Topic to follow (notices or board); both when empty"
// @Success      200
// @Router       /events [get]
func (h *BoardHandler) Events(c *gin.Context) {
	topics := []string{hub.TopicNotices, hub.TopicBoard}
	if topic := c.Query("topic"); topic != "" {
		if topic != hub.TopicNotices && topic != hub.TopicBoard {
			c.JSON(http.StatusBadRequest, gin.H{"error": h.app.Texts.UnknownTopic})
			return
		}
		topics = []string{topic}
	}

	client := hub.NewClient()
	for _, topic := range topics {
		h.app.Hub.Subscribe(topic, client)
	}
	defer func() {
		for _, topic := range topics {
			h.app.Hub.Unsubscribe(topic, client)
		}
	}()

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Stream(func(w io.Writer) bool {
		select {
		case <-c.Request.Context().Done():
			return false
		case payload, ok := <-client:
			if !ok {
				return false
			}
			c.SSEvent("message", string(payload))
			return true
		}
	})
}
