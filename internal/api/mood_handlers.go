package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harryhartz/bimoodtracker/internal/auth"
	"github.com/harryhartz/bimoodtracker/internal/response"
	"github.com/harryhartz/bimoodtracker/internal/service"
	"github.com/harryhartz/bimoodtracker/internal/storage"
)

func ListMoodEntries(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := auth.CurrentUser(c)
		filter := storage.MoodEntryFilter{
			Date:      c.Query("date"),
			StartDate: c.Query("startDate"),
			EndDate:   c.Query("endDate"),
		}
		entries, err := service.ListMoodEntries(c.Request.Context(), app.Store(), user, filter)
		if err != nil {
			HandleError(c, app, err)
			return
		}
		c.JSON(http.StatusOK, entries)
	}
}

func PostMoodEntry(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := auth.CurrentUser(c)
		var req service.MoodEntryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app, invalidJSON(err))
			return
		}
		entry, err := service.CreateMoodEntry(c.Request.Context(), app.Store(), user, &req)
		if err != nil {
			HandleError(c, app, err)
			return
		}
		c.JSON(http.StatusOK, entry)
	}
}

func PutMoodEntry(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := auth.CurrentUser(c)
		id, err := idParam(c)
		if err != nil {
			HandleError(c, app, err)
			return
		}
		var req service.MoodEntryUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app, invalidJSON(err))
			return
		}
		entry, err := service.UpdateMoodEntry(c.Request.Context(), app.Store(), user, id, &req)
		if err != nil {
			HandleError(c, app, err)
			return
		}
		c.JSON(http.StatusOK, entry)
	}
}

func DeleteMoodEntry(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := auth.CurrentUser(c)
		id, err := idParam(c)
		if err != nil {
			HandleError(c, app, err)
			return
		}
		if err := service.DeleteMoodEntry(c.Request.Context(), app.Store(), user, id); err != nil {
			HandleError(c, app, err)
			return
		}
		c.JSON(http.StatusOK, response.Message("mood entry deleted"))
	}
}
