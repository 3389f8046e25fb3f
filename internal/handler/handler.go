package handler

import (
	"github.com/gin-gonic/gin"

	"backend/pkg/apperror"
	"backend/pkg/response"
)

// respondError maps a service error to its HTTP status and the standard
// envelope. Untyped errors surface as 500.
func respondError(c *gin.Context, err error) {
	c.JSON(apperror.Status(err), response.Error(err.Error()))
}

// formValue reads an optional multipart/form field, returning nil when the
// field was not sent so callers can distinguish "absent" from "empty".
func formValue(c *gin.Context, key string) *string {
	if v, ok := c.GetPostForm(key); ok {
		return &v
	}
	return nil
}
