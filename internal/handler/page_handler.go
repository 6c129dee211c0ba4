package handler

import (
	"embed"
	"encoding/json"
	"html/template"
	"net/http"

	"messageboard/internal/board"
	"messageboard/internal/dashboard"
	"messageboard/internal/i18n"
	"messageboard/internal/notice"
	"messageboard/internal/render"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFS embed.FS

// boardTemplate is the name of the board page template.
const boardTemplate = "board.html"

// Templates parses the page templates for router.SetHTMLTemplate.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"json": func(v any) (template.JS, error) {
			raw, err := json.Marshal(v)
			return template.JS(raw), err
		},
	}).ParseFS(templateFS, "templates/*.html")
}

// pageData feeds the board template.
type pageData struct {
	Texts     i18n.Catalog
	View      render.BoardView
	Input     string
	Counter   board.Counter
	Avatars   []AvatarResponse
	Notices   []notice.Notice
	Dashboard *dashboard.View
}

// Page renders the board. With ?dashboard=1 the statistics overlay is open.
func (h *BoardHandler) Page(c *gin.Context) {
	data := pageData{
		Texts:   h.app.Texts,
		View:    h.app.View(),
		Input:   h.app.Controller.State().Input(),
		Counter: h.app.Controller.Counter(),
		Avatars: h.avatars(),
		Notices: h.app.Notices.Active(),
	}
	if c.Query("dashboard") == "1" {
		view := h.app.OpenDashboard()
		data.Dashboard = &view
	}
	c.HTML(http.StatusOK, boardTemplate, data)
}

// PostMessageForm handles the input form. Errors are already queued as
// notices, so every outcome redirects back to the board.
func (h *BoardHandler) PostMessageForm(c *gin.Context) {
	if _, err := h.app.Submit(c.Request.Context(), c.PostForm("content")); err != nil {
		h.app.Log.Debugw("form submission failed", "error", err)
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// PostReactionForm handles a reaction button.
func (h *BoardHandler) PostReactionForm(c *gin.Context) {
	if _, err := h.app.React(c.Request.Context(), c.Param("id"), c.PostForm("reaction")); err != nil {
		h.app.Log.Debugw("form reaction failed", "message_id", c.Param("id"), "error", err)
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// PostAvatarForm handles the avatar picker.
func (h *BoardHandler) PostAvatarForm(c *gin.Context) {
	if err := h.app.Controller.SelectAvatar(c.PostForm("avatar")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": h.app.Texts.UnknownAvatar})
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}
