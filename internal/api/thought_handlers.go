package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harryhartz/bimoodtracker/internal/auth"
	"github.com/harryhartz/bimoodtracker/internal/response"
	"github.com/harryhartz/bimoodtracker/internal/service"
)

func ListThoughts(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := auth.CurrentUser(c)
		thoughts, err := service.ListThoughts(c.Request.Context(), app.Store(), user)
		if err != nil {
			HandleError(c, app, err)
			return
		}
		c.JSON(http.StatusOK, thoughts)
	}
}

func PostThought(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := auth.CurrentUser(c)
		var req service.ThoughtRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app, invalidJSON(err))
			return
		}
		thought, err := service.CreateThought(c.Request.Context(), app.Store(), user, &req)
		if err != nil {
			HandleError(c, app, err)
			return
		}
		c.JSON(http.StatusOK, thought)
	}
}

func PutThought(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := auth.CurrentUser(c)
		id, err := idParam(c)
		if err != nil {
			HandleError(c, app, err)
			return
		}
		var req service.ThoughtUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app, invalidJSON(err))
			return
		}
		thought, err := service.UpdateThought(c.Request.Context(), app.Store(), user, id, &req)
		if err != nil {
			HandleError(c, app, err)
			return
		}
		c.JSON(http.StatusOK, thought)
	}
}

func DeleteThought(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := auth.CurrentUser(c)
		id, err := idParam(c)
		if err != nil {
			HandleError(c, app, err)
			return
		}
		if err := service.DeleteThought(c.Request.Context(), app.Store(), user, id); err != nil {
			HandleError(c, app, err)
			return
		}
		c.JSON(http.StatusOK, response.Message("thought deleted"))
	}
}
