package httputil

import (
	"github.com/gin-gonic/gin"
)

// HTTPError is used for error responses that are not produced by a resource handler.
type HTTPError struct {
	Error string `json:"error" example:"This HTTP method is not allowed for the endpoint you called"`
}

// NewError aborts the request with the status and the error message.
func NewError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, HTTPError{
		Error: message,
	})
}
