package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Fixed allow-list for the hosted dashboard plus local development.
var allowedOrigins = map[string]bool{
	"http://localhost:5173":             true,
	"http://localhost:3000":             true,
	"https://crm-dashboard.netlify.app": true,
}

func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if allowedOrigins[origin] {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
