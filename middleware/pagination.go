package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// PageKey is the gin context key of the requested page.
const PageKey = "page"

// ParsePage reads the page query parameter. Missing or non-numeric values
// become page 1; the store clamps the rest.
func ParsePage() gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := strconv.Atoi(c.Query("page"))
		if err != nil || page < 1 {
			page = 1
		}
		c.Set(PageKey, page)
		c.Next()
	}
}
