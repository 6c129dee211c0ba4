package handler

import (
	"errors"
	"net/http"

	"messageboard/internal/app"
	"messageboard/internal/board"
	"messageboard/internal/models"
	"messageboard/internal/notice"
	"messageboard/internal/render"
	"messageboard/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

// ErrorResponse is the body of every failed API call.
type ErrorResponse struct {
	Error string `json:"error" example:"An error message"`
}

// MessageInput is the body of a new message.
type MessageInput struct {
	Content string `json:"content"`
}

// ReactionInput is the body of a reaction.
type ReactionInput struct {
	Reaction string `json:"reaction" binding:"required"`
}

// AvatarInput is the body of an avatar selection.
type AvatarInput struct {
	Avatar string `json:"avatar" binding:"required"`
}

// AvatarResponse is one selectable avatar.
type AvatarResponse struct {
	Name     string `json:"name"`
	Glyph    string `json:"glyph"`
	Selected bool   `json:"selected"`
}

// BoardPage is one page of rendered cards.
type BoardPage struct {
	PaginatedResponse[render.Card]
	Empty     bool   `json:"empty"`
	EmptyText string `json:"empty_text,omitempty"`
	Avatar    string `json:"avatar"`
}

// SubmitResponse is returned for a stored message.
type SubmitResponse struct {
	Phase board.Phase `json:"phase"`
	Card  render.Card `json:"card"`
}

// BoardHandler serves the board API.
type BoardHandler struct {
	app *app.App
}

// NewBoardHandler creates a BoardHandler for a.
func NewBoardHandler(a *app.App) *BoardHandler {
	return &BoardHandler{app: a}
}

// region --- Board ---

// GetBoard godoc
// @Summary      Get the board
// @Description  Returns the rendered message cards, newest first.
// @Tags         board
// @Produce      json
// @Param        page    query     int     false  "Page number" default(1)
// @Param        limit   query     int     false  "Items per page" default(10)
// @Success      200  {object}  BoardPage
// @Router       /board [get]
func (h *BoardHandler) GetBoard(c *gin.Context) {
	page, limit := pageParams(c)
	view := h.app.View()
	c.JSON(http.StatusOK, BoardPage{
		PaginatedResponse: Paginate(view.Cards, page, limit),
		Empty:             view.Empty,
		EmptyText:         view.EmptyText,
		Avatar:            view.Avatar,
	})
}

// Reload godoc
// @Summary      Reload the board
// @Description  Fetches the full message list from the remote API again.
// @Tags         board
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  BoardPage
// @Failure      401  {object}  ErrorResponse "Valid bearer token required"
// @Failure      502  {object}  ErrorResponse "Remote API unavailable"
// @Router       /reload [post]
func (h *BoardHandler) Reload(c *gin.Context) {
	if err := h.app.Reload(c.Request.Context()); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": h.app.Texts.LoadFailed})
		return
	}
	h.GetBoard(c)
}

// endregion

// region --- Messages ---

// CreateMessage godoc
// @Summary      Post a message
// @Description  Validates and stores a new message with the selected avatar.
// @Tags         messages
// @Accept       json
// @Produce      json
// @Param        input body MessageInput true "Message"
// @Success      201  {object}  SubmitResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      422  {object}  ErrorResponse "Validation failed"
// @Failure      502  {object}  ErrorResponse "Remote API unavailable"
// @Router       /messages [post]
func (h *BoardHandler) CreateMessage(c *gin.Context) {
	var input MessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	outcome, err := h.app.Submit(c.Request.Context(), input.Content)
	if err != nil {
		status, message := h.submitError(err)
		c.JSON(status, gin.H{"error": message})
		return
	}

	view := h.app.View()
	card, _ := lo.Find(view.Cards, func(card render.Card) bool {
		return card.FullID == outcome.Message.Key()
	})
	c.JSON(http.StatusCreated, SubmitResponse{Phase: outcome.Phase, Card: card})
}

// React godoc
// @Summary      React to a message
// @Description  Applies a reaction optimistically and confirms or rolls it back.
// @Tags         messages
// @Accept       json
// @Produce      json
// @Param        id    path      string         true  "Message ID"
// @Param        input body      ReactionInput  true  "Reaction"
// @Success      200  {object}  board.ReactionView
// @Failure      400  {object}  ErrorResponse "Unknown reaction"
// @Failure      404  {object}  ErrorResponse "Message not found"
// @Failure      502  {object}  board.ReactionView "Rolled back"
// @Router       /messages/{id}/reactions [post]
func (h *BoardHandler) React(c *gin.Context) {
	var input ReactionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	attempt, err := h.app.React(c.Request.Context(), c.Param("id"), input.Reaction)
	switch {
	case errors.Is(err, board.ErrUnknownMessage):
		c.JSON(http.StatusNotFound, gin.H{"error": h.app.Texts.MessageNotFound})
	case errors.Is(err, board.ErrUnknownReaction):
		c.JSON(http.StatusBadRequest, gin.H{"error": h.app.Texts.UnknownReaction})
	case attempt != nil && err != nil:
		c.JSON(http.StatusBadGateway, attempt.View())
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusOK, attempt.View())
	}
}

// endregion

// region --- Input ---

// SelectAvatar godoc
// @Summary      Select an avatar
// @Description  Sets the avatar used for the next messages.
// @Tags         input
// @Accept       json
// @Produce      json
// @Param        input body AvatarInput true "Avatar"
// @Success      200  {array}   AvatarResponse
// @Failure      400  {object}  ErrorResponse "Unknown avatar"
// @Router       /avatar [put]
func (h *BoardHandler) SelectAvatar(c *gin.Context) {
	var input AvatarInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.app.Controller.SelectAvatar(input.Avatar); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": h.app.Texts.UnknownAvatar})
		return
	}
	c.JSON(http.StatusOK, h.avatars())
}

// GetAvatars godoc
// @Summary      List avatars
// @Description  Lists the selectable avatars and marks the current one.
// @Tags         input
// @Produce      json
// @Success      200  {array}   AvatarResponse
// @Router       /avatars [get]
func (h *BoardHandler) GetAvatars(c *gin.Context) {
	c.JSON(http.StatusOK, h.avatars())
}

// UpdateInput godoc
// @Summary      Update the input
// @Description  Stores the current draft and returns the live character counter.
// @Tags         input
// @Accept       json
// @Produce      json
// @Param        input body MessageInput true "Draft"
// @Success      200  {object}  board.Counter
// @Failure      400  {object}  ErrorResponse
// @Router       /input [put]
func (h *BoardHandler) UpdateInput(c *gin.Context) {
	var input MessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.app.Controller.SetInput(input.Content))
}

// endregion

// region --- Dashboard & notices ---

// GetDashboard godoc
// @Summary      Get the dashboard
// @Description  Recomputes the statistics and the hourly chart from the loaded messages.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dashboard.View
// @Router       /dashboard [get]
func (h *BoardHandler) GetDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, h.app.OpenDashboard())
}

// GetNotices godoc
// @Summary      List notices
// @Description  Lists the notices that have not expired yet.
// @Tags         dashboard
// @Produce      json
// @Success      200  {array}   notice.Notice
// @Router       /notices [get]
func (h *BoardHandler) GetNotices(c *gin.Context) {
	active := h.app.Notices.Active()
	if active == nil {
		active = []notice.Notice{}
	}
	c.JSON(http.StatusOK, active)
}

// DismissNotice godoc
// @Summary      Dismiss a notice
// @Description  Removes a notice before it expires.
// @Tags         dashboard
// @Param        id   path      string  true  "Notice ID"
// @Success      204
// @Failure      404  {object}  ErrorResponse "Notice not found"
// @Router       /notices/{id} [delete]
func (h *BoardHandler) DismissNotice(c *gin.Context) {
	if !h.app.Notices.Dismiss(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": h.app.Texts.NoticeNotFound})
		return
	}
	c.Status(http.StatusNoContent)
}

// endregion

func (h *BoardHandler) avatars() []AvatarResponse {
	selected := h.app.Controller.State().Avatar()
	return lo.Map(h.app.Config.Avatars, func(name string, _ int) AvatarResponse {
		return AvatarResponse{
			Name:     name,
			Glyph:    models.Glyph(name),
			Selected: name == selected,
		}
	})
}

// submitError maps a failed submission to a status and the text shown to the user.
func (h *BoardHandler) submitError(err error) (int, string) {
	var validation *board.ValidationError
	switch {
	case errors.As(err, &validation):
		return http.StatusUnprocessableEntity, validation.Message
	case errors.Is(err, store.ErrSave):
		return http.StatusBadGateway, h.app.Texts.SaveFailed
	default:
		return http.StatusInternalServerError, err.Error()
	}
}
