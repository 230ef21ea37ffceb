package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harryhartz/bimoodtracker/internal/auth"
	"github.com/harryhartz/bimoodtracker/internal/response"
	"github.com/harryhartz/bimoodtracker/internal/service"
)

func ListMedications(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := auth.CurrentUser(c)
		meds, err := service.ListMedications(c.Request.Context(), app.Store(), user)
		if err != nil {
			HandleError(c, app, err)
			return
		}
		c.JSON(http.StatusOK, meds)
	}
}

func PostMedication(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := auth.CurrentUser(c)
		var req service.MedicationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app, invalidJSON(err))
			return
		}
		med, err := service.CreateMedication(c.Request.Context(), app.Store(), user, &req)
		if err != nil {
			HandleError(c, app, err)
			return
		}
		c.JSON(http.StatusOK, med)
	}
}

func PutMedication(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := auth.CurrentUser(c)
		id, err := idParam(c)
		if err != nil {
			HandleError(c, app, err)
			return
		}
		var req service.MedicationUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app, invalidJSON(err))
			return
		}
		med, err := service.UpdateMedication(c.Request.Context(), app.Store(), user, id, &req)
		if err != nil {
			HandleError(c, app, err)
			return
		}
		c.JSON(http.StatusOK, med)
	}
}

func DeleteMedication(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := auth.CurrentUser(c)
		id, err := idParam(c)
		if err != nil {
			HandleError(c, app, err)
			return
		}
		if err := service.DeleteMedication(c.Request.Context(), app.Store(), user, id); err != nil {
			HandleError(c, app, err)
			return
		}
		c.JSON(http.StatusOK, response.Message("medication deleted"))
	}
}
