package http

import (
	"todo-list/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterPageRoutes maps the HTML page and its form posts.
func RegisterPageRoutes(r gin.IRouter, h Handler, mw middleware.Middleware) {
	page := r.Group("", mw.RateLimit(), mw.Session())
	{
		page.GET("/", h.Index)
		page.POST("/tasks", h.AddForm)
		page.POST("/tasks/:index/toggle", h.ToggleForm)
		page.POST("/tasks/:index/delete", h.DeleteForm)
		page.POST("/deletion/confirm", h.ConfirmDeleteForm)
		page.POST("/deletion/cancel", h.CancelDeleteForm)
	}
}

// RegisterAPIRoutes maps the JSON API. rg is expected to be /api/v1.
func RegisterAPIRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	api := rg.Group("", mw.RateLimit(), mw.Session())
	{
		api.GET("/tasks", h.List)
		api.POST("/tasks", h.Add)
		api.POST("/tasks/:index/toggle", h.Toggle)
		api.DELETE("/tasks/:index", h.Delete)
		api.POST("/tasks/:index/deletion", h.RequestDelete)

		api.GET("/deletion", h.PendingDelete)
		api.POST("/deletion/confirm", h.ConfirmDelete)
		api.POST("/deletion/cancel", h.CancelDelete)

		api.GET("/notifications", h.Notifications)
		api.DELETE("/session", h.Reset)
	}
}
