package api

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/harryhartz/bimoodtracker/internal"
	"github.com/harryhartz/bimoodtracker/internal/response"
)

// HandleError translates any error into the wire taxonomy. Untagged errors
// are infrastructure failures: logged with the request id and surfaced as 500,
// with the detail included only outside production.
func HandleError(c *gin.Context, app App, err error) {
	requestID := c.GetString("request_id")
	var appErr *internal.AppError
	if !errors.As(err, &appErr) {
		app.Logger().Errorf("[request_id=%s] internal error: %v", requestID, err)
		msg := "internal server error"
		if !app.Config().IsProduction() {
			msg = err.Error()
		}
		appErr = internal.NewInternal(msg)
	} else if appErr.Kind == internal.KindInternal {
		app.Logger().Errorf("[request_id=%s] %s", requestID, appErr.Message)
	} else {
		app.Logger().Warnf("[request_id=%s] %s: %s", requestID, appErr.Kind, appErr.Message)
	}
	c.JSON(appErr.HTTPStatus(), response.FromError(appErr))
}

func invalidJSON(err error) error {
	return internal.NewValidationError(map[string]string{"body": "must be valid JSON: " + err.Error()})
}

// idParam parses the :id path segment. A non-numeric id cannot name a record,
// so it reads as not-found rather than a validation failure.
func idParam(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, internal.NewNotFound("record not found")
	}
	return id, nil
}
