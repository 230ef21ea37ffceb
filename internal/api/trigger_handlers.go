package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harryhartz/bimoodtracker/internal/auth"
	"github.com/harryhartz/bimoodtracker/internal/response"
	"github.com/harryhartz/bimoodtracker/internal/service"
)

func ListTriggerEvents(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := auth.CurrentUser(c)
		events, err := service.ListTriggerEvents(c.Request.Context(), app.Store(), user)
		if err != nil {
			HandleError(c, app, err)
			return
		}
		c.JSON(http.StatusOK, events)
	}
}

func PostTriggerEvent(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := auth.CurrentUser(c)
		var req service.TriggerEventRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app, invalidJSON(err))
			return
		}
		event, err := service.CreateTriggerEvent(c.Request.Context(), app.Store(), user, &req)
		if err != nil {
			HandleError(c, app, err)
			return
		}
		c.JSON(http.StatusOK, event)
	}
}

func PutTriggerEvent(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := auth.CurrentUser(c)
		id, err := idParam(c)
		if err != nil {
			HandleError(c, app, err)
			return
		}
		var req service.TriggerEventUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app, invalidJSON(err))
			return
		}
		event, err := service.UpdateTriggerEvent(c.Request.Context(), app.Store(), user, id, &req)
		if err != nil {
			HandleError(c, app, err)
			return
		}
		c.JSON(http.StatusOK, event)
	}
}

func DeleteTriggerEvent(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := auth.CurrentUser(c)
		id, err := idParam(c)
		if err != nil {
			HandleError(c, app, err)
			return
		}
		if err := service.DeleteTriggerEvent(c.Request.Context(), app.Store(), user, id); err != nil {
			HandleError(c, app, err)
			return
		}
		c.JSON(http.StatusOK, response.Message("trigger event deleted"))
	}
}
