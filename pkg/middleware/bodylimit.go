package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cgtourism/pkg/utils"
)

// BodySizeLimit caps the request body so inline base64 images cannot grow
// past the size the submission form enforces client-side.
func BodySizeLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			utils.RespondError(c, http.StatusRequestEntityTooLarge, "Request body too large")
			c.Abort()
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
