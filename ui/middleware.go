package ui

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// setupMiddleware configures Gin middleware
func (s *Server) setupMiddleware() {
	// Cross-origin requests are permitted from any origin on every route.
	s.router.Use(cors.Default())
	s.router.Use(requestID())
}

// requestID tags every request with a uuid, echoed in X-Request-ID so log
// lines and client reports can be correlated.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		c.Set("request_id", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}
