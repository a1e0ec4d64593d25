package middleware

import (
	"log"
	"net/http"
	"time"

	"github.com/fatih/color"
	"github.com/gin-gonic/gin"
)

// RequestLogger logs each request with a status-colored summary line.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		paint := color.New(color.FgGreen)
		switch {
		case status >= http.StatusInternalServerError:
			paint = color.New(color.FgRed)
		case status >= http.StatusBadRequest:
			paint = color.New(color.FgYellow)
		}

		log.Printf("%s %s %s - %v",
			paint.Sprintf("%d", status),
			c.Request.Method,
			c.Request.URL.Path,
			time.Since(start),
		)
	}
}
