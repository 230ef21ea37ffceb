package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harryhartz/bimoodtracker/internal/service"
)

func Signup(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.SignupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app, invalidJSON(err))
			return
		}
		resp, err := service.Signup(c.Request.Context(), app.Store(), app.Tokens(), app.Config().BcryptCost, &req)
		if err != nil {
			HandleError(c, app, err)
			return
		}
		app.Logger().Infof("[request_id=%s] user %d signed up", c.GetString("request_id"), resp.ID)
		c.JSON(http.StatusOK, resp)
	}
}

func Login(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app, invalidJSON(err))
			return
		}
		resp, err := service.Login(c.Request.Context(), app.Store(), app.Tokens(), &req)
		if err != nil {
			HandleError(c, app, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}
