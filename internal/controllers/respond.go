package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"femaqua-be/internal/apperrors"
	"femaqua-be/internal/logger"
	"femaqua-be/internal/models"
)

var registerOnce sync.Once

// RegisterValidation makes validation errors report JSON field names.
// Call once before serving.
func RegisterValidation() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return fld.Name
			}
			return name
		})
	})
}

// bindJSON binds the body into obj. On failure it writes the 422 response
// and returns false.
func bindJSON(c *gin.Context, obj any) bool {
	err := c.ShouldBindJSON(obj)
	if errors.Is(err, io.EOF) {
		// empty body: report the missing fields instead of a decode error
		err = binding.Validator.ValidateStruct(obj)
	}
	if err == nil {
		return true
	}

	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, models.ValidationErrorResponse{
		Success: false,
		Message: apperrors.ValidationMessage,
		Data:    validationDetails(err),
	})
	return false
}

func validationDetails(err error) map[string]string {
	details := make(map[string]string)

	var verrs validator.ValidationErrors
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &verrs):
		for _, fe := range verrs {
			details[fe.Field()] = fieldMessage(fe)
		}
	case errors.As(err, &typeErr) && typeErr.Field != "":
		details[typeErr.Field] = "The " + typeErr.Field + " field has an invalid type."
	default:
		details["body"] = "The request body must be a JSON object."
	}
	return details
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return "The " + field + " field is required."
	case "email":
		return "The " + field + " field must be a valid email address."
	case "url":
		return "The " + field + " field must be a valid URL."
	case "eqfield":
		return "The " + field + " field must match " + strings.ToLower(fe.Param()) + "."
	case "min":
		return "The " + field + " field must not be empty."
	default:
		return "The " + field + " field is invalid."
	}
}

// respondError writes an AppError as {"message": ...}. Anything else is
// logged and answered with a 500.
func respondError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		logger.Error("request failed", "error", err, "method", c.Request.Method, "path", c.Request.URL.Path)
		_ = c.Error(err)
		appErr = apperrors.Internal(err)
	}
	c.AbortWithStatusJSON(appErr.Code, models.MessageResponse{Message: appErr.Message})
}
