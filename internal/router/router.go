package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"pricetracker/internal/tracker"
)

// New builds the gin engine with the API routes. CORS is wide open so
// the browser extension can call from any origin.
func New(h *tracker.Handler) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	api := r.Group("/api")
	{
		api.POST("/items", h.AddItems)
		api.GET("/items", h.ListItems)
		api.GET("/items/:id/history", h.GetItemHistory)
		api.DELETE("/items/:id", h.DeleteItem)
	}

	return r
}
