package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SocioProphet/zenflows/internal/pkg/errs"
)

type APIError struct {
	Message string            `json:"message"`
	Code    string            `json:"code,omitempty"`
	Fields  []errs.FieldError `json:"fields,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

func RespondCreated(c *gin.Context, payload any) {
	c.JSON(http.StatusCreated, payload)
}

// RespondDomainError maps the layer's error taxonomy onto HTTP statuses:
// NotFound -> 404, ValidationError -> 422 with the field list, anything else
// -> 500 surfaced as a storage fault.
func RespondDomainError(c *gin.Context, err error) {
	if errors.Is(err, errs.ErrNotFound) {
		RespondError(c, http.StatusNotFound, "not_found", err)
		return
	}
	var ve *errs.ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusUnprocessableEntity, ErrorEnvelope{
			Error: APIError{
				Message: ve.Error(),
				Code:    "validation_failed",
				Fields:  ve.Fields,
			},
		})
		return
	}
	RespondError(c, http.StatusInternalServerError, "storage_error", err)
}
