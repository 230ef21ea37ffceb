package service

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/harryhartz/bimoodtracker/internal"
)

var validate = validator.New()

func init() {
	// Report field errors under their wire names so clients can bind them
	// straight back onto forms.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// validationError converts a validator failure into a tagged AppError with a
// field-path-to-message map.
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = messageFor(fe)
		}
		return internal.NewValidationError(fields)
	}
	return internal.NewValidationError(map[string]string{"body": err.Error()})
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	case "datetime":
		return "must be a date in YYYY-MM-DD format"
	default:
		return "is invalid"
	}
}

func isDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// requireOwner is the single ownership check every mutating operation goes
// through. A mismatch reads as not-found so callers cannot probe for records
// they do not own.
func requireOwner(recordUserID, callerID int64) error {
	if recordUserID != callerID {
		return internal.NewNotFound("record not found")
	}
	return nil
}
