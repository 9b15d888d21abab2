package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger prints one access line per request including request_id.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)

		tag := "[HTTP]"
		if c.Writer.Status() >= 500 {
			tag = "[HTTP][ERROR]"
		}

		log.Printf("%s request_id=%s method=%s path=%s status=%d bytes=%d latency_ms=%.3f ip=%s",
			tag,
			GetRequestID(c),
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			c.Writer.Size(),
			float64(latency.Microseconds())/1000.0,
			c.ClientIP(),
		)
	}
}
