package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harryhartz/bimoodtracker/internal/auth"
)

// NewRouter wires the full route table. Auth endpoints are deliberately
// outside the guarded group.
func NewRouter(app App, provider auth.IdentityProvider) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/api/auth/signup", Signup(app))
	r.POST("/api/auth/login", Login(app))

	protected := r.Group("/api")
	protected.Use(auth.Middleware(provider, app.Logger()))

	protected.GET("/mood-entries", ListMoodEntries(app))
	protected.POST("/mood-entries", PostMoodEntry(app))
	protected.PUT("/mood-entries/:id", PutMoodEntry(app))
	protected.DELETE("/mood-entries/:id", DeleteMoodEntry(app))

	protected.GET("/trigger-events", ListTriggerEvents(app))
	protected.POST("/trigger-events", PostTriggerEvent(app))
	protected.PUT("/trigger-events/:id", PutTriggerEvent(app))
	protected.DELETE("/trigger-events/:id", DeleteTriggerEvent(app))

	protected.GET("/thoughts", ListThoughts(app))
	protected.POST("/thoughts", PostThought(app))
	protected.PUT("/thoughts/:id", PutThought(app))
	protected.DELETE("/thoughts/:id", DeleteThought(app))

	protected.GET("/medications", ListMedications(app))
	protected.POST("/medications", PostMedication(app))
	protected.PUT("/medications/:id", PutMedication(app))
	protected.DELETE("/medications/:id", DeleteMedication(app))

	return r
}
