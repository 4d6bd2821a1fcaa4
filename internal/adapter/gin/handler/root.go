package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Hello handles GET / with a plain-text greeting.
func Hello(c *gin.Context) {
	c.String(http.StatusOK, "Hello World!")
}

// RouteNotFound answers every request no route matched.
func RouteNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, ErrorResponse{
		Success: false,
		Message: "Route not found",
		Path:    c.Request.URL.Path,
	})
}
