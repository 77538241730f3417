package response

import "github.com/gin-gonic/gin"

// Error writes the uniform failure body. Every user-visible failure is a JSON
// object with a single human-readable error field; internals never leak here.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// JSON writes a success payload as-is.
func JSON(c *gin.Context, status int, payload any) {
	c.JSON(status, payload)
}
