package handler

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/Rrahullkumar/shushiman/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

func init() {
	// Report binding failures with JSON field names.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return field.Name
			}
			return name
		})
	}
}

// ErrorResponder writes service errors as JSON with one status per error kind
type ErrorResponder struct {
	log           logrus.FieldLogger
	exposeDetails bool
}

// NewErrorResponder creates an ErrorResponder. exposeDetails adds the internal
// error text to 500 responses and must only be set in development.
func NewErrorResponder(log logrus.FieldLogger, exposeDetails bool) *ErrorResponder {
	return &ErrorResponder{log: log, exposeDetails: exposeDetails}
}

// Respond maps err to a status code and writes it
func (r *ErrorResponder) Respond(c *gin.Context, err error) {
	var validationErr *service.ValidationError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
	case errors.Is(err, service.ErrUserAlreadyExists), errors.Is(err, service.ErrOwnerAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": service.ErrInvalidCredentials.Error()})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrMenuItemNotFound), errors.Is(err, service.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		_ = c.Error(err)
		r.log.WithError(err).WithField("path", c.FullPath()).Error("request failed")
		body := gin.H{"error": "Server error"}
		if r.exposeDetails {
			body["details"] = err.Error()
		}
		c.JSON(http.StatusInternalServerError, body)
	}
}

// RespondBinding writes a 400 for a request body that failed to bind
func (r *ErrorResponder) RespondBinding(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": bindingMessage(err)})
}

func bindingMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return "invalid request body"
	}

	var missing []string
	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			missing = append(missing, fe.Field())
		}
	}
	if len(missing) > 0 {
		return (&service.ValidationError{Fields: missing}).Error()
	}

	fe := fieldErrs[0]
	if fe.Tag() == "email" {
		return "invalid email format"
	}
	return fmt.Sprintf("invalid value for %s", fe.Field())
}
