package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// FieldError is one entry of the field-level detail returned on a 422.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// BindingError writes a 422 response for a request body that failed to
// bind. Validation failures carry per-field detail; anything else
// (malformed JSON, wrong scalar types) gets the generic message.
func BindingError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, FieldError{
				Field:   strings.ToLower(fe.Field()),
				Message: fieldMessage(fe),
			})
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "invalid request body",
			"fields": fields,
		})
		return
	}

	c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid request body"})
}

func fieldMessage(fe validator.FieldError) string {
	if fe.Tag() == "required" {
		return "field is required"
	}
	return "failed validation: " + fe.Tag()
}
