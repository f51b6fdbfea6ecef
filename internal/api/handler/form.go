package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// fieldErrors flattens a binding failure into a field -> message map, the
// shape both the web forms and the REST surface use for 400 responses.
func fieldErrors(err error) map[string]string {
	out := map[string]string{}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			field := strings.ToLower(fe.Field())
			switch fe.Tag() {
			case "required":
				out[field] = "this field is required"
			case "max":
				out[field] = "value too long"
			default:
				out[field] = "invalid value"
			}
		}
		return out
	}
	out["non_field_errors"] = err.Error()
	return out
}

func validationFailed(c *gin.Context, fields map[string]string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"code":   http.StatusBadRequest,
		"msg":    "validation failed",
		"fields": fields,
	})
}
