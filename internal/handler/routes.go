package handler

import (
	"messageboard/internal/app"
	"messageboard/internal/auth"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the board page, its form endpoints and the JSON API.
func RegisterRoutes(router *gin.Engine, a *app.App) error {
	tmpl, err := Templates()
	if err != nil {
		return err
	}
	router.SetHTMLTemplate(tmpl)

	router.Use(CORS())
	h := NewBoardHandler(a)

	router.GET("/", h.Page)
	forms := router.Group("/board")
	{
		forms.POST("/messages", h.PostMessageForm)
		forms.POST("/messages/:id/reactions", h.PostReactionForm)
		forms.POST("/avatar", h.PostAvatarForm)
	}

	apiV1 := router.Group("/api/v1")
	reload := []gin.HandlerFunc{h.Reload}
	if secret := a.Config.APITokenSecret; secret != "" {
		apiV1.Use(auth.OptionalAuthMiddleware(secret))
		reload = append([]gin.HandlerFunc{auth.RequireToken()}, reload...)
	}
	{
		apiV1.GET("/board", h.GetBoard)
		apiV1.POST("/reload", reload...)

		messages := apiV1.Group("/messages")
		{
			messages.POST("", h.CreateMessage)
			messages.POST("/:id/reactions", h.React)
		}

		apiV1.GET("/avatars", h.GetAvatars)
		apiV1.PUT("/avatar", h.SelectAvatar)
		apiV1.PUT("/input", h.UpdateInput)

		apiV1.GET("/dashboard", h.GetDashboard)
		apiV1.GET("/notices", h.GetNotices)
		apiV1.DELETE("/notices/:id", h.DismissNotice)
		apiV1.GET("/events", h.Events)
	}
	return nil
}
