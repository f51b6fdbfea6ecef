package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/yatube/internal/service"
	"github.com/d60-Lab/yatube/pkg/response"
)

// NotFoundPage is the custom not-found body, also mounted as the NoRoute
// handler.
func NotFoundPage(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"code": http.StatusNotFound,
		"msg":  "page not found",
		"path": c.Request.URL.Path,
	})
}

// ServerErrorPage renders the custom 500 body; internals never leak.
func ServerErrorPage(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"code": http.StatusInternalServerError,
		"msg":  "server error",
	})
}

// renderError maps service errors on the web surface: not-found gets the
// custom page, everything else the generic 500.
func (h *Handler) renderError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrNotFound) {
		NotFoundPage(c)
		return
	}
	response.InternalError(c, err)
}
