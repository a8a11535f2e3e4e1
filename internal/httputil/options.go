package httputil

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Options returns a handler that answers OPTIONS requests with the
// "allow" header set to the methods.
func Options(methods ...string) gin.HandlerFunc {
	allow := strings.Join(methods, ", ")
	return func(c *gin.Context) {
		c.Header("allow", allow)
		c.Status(http.StatusNoContent)
	}
}

func OptionsGet(c *gin.Context) {
	c.Header("allow", "GET")
	c.Status(http.StatusNoContent)
}

func OptionsGetPost(c *gin.Context) {
	c.Header("allow", "GET, POST")
	c.Status(http.StatusNoContent)
}
