package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateTemplate(c *ginext.Context)
	GetTemplate(c *ginext.Context)
	ListTemplates(c *ginext.Context)
	DeleteTemplate(c *ginext.Context)
	CreateEvent(c *ginext.Context)
	GetEvent(c *ginext.Context)
	ListEvents(c *ginext.Context)
	DeleteEvent(c *ginext.Context)
	RegisterForEvent(c *ginext.Context)
	ListEventRegistrations(c *ginext.Context)
	ApproveRegistration(c *ginext.Context)
	RejectRegistration(c *ginext.Context)
	CancelRegistration(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Templates (admin surface; never shown as events)
		api.POST("/templates", h.CreateTemplate)
		api.GET("/templates", h.ListTemplates)
		api.GET("/templates/:id", h.GetTemplate)
		api.DELETE("/templates/:id", h.DeleteTemplate)

		// Event instances
		api.POST("/events", h.CreateEvent)
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.DELETE("/events/:id", h.DeleteEvent)

		// Registrations
		api.POST("/events/:id/register", h.RegisterForEvent)
		api.GET("/events/:id/registrations", h.ListEventRegistrations)
		api.POST("/registrations/:id/approve", h.ApproveRegistration)
		api.POST("/registrations/:id/reject", h.RejectRegistration)
		api.POST("/registrations/:id/cancel", h.CancelRegistration)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
