package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// APIGroupList godoc
// @Summary List groups
// @Tags groups
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Router /api/groups/ [get]
func (h *Handler) APIGroupList(c *gin.Context) {
	groups, err := h.groupRepo.List(c.Request.Context())
	if err != nil {
		ServerErrorPage(c)
		return
	}
	out := make([]gin.H, 0, len(groups))
	for _, g := range groups {
		out = append(out, groupJSON(g))
	}
	c.JSON(http.StatusOK, out)
}

// APIGroupRetrieve godoc
// @Summary Retrieve a group
// @Tags groups
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/groups/{id}/ [get]
func (h *Handler) APIGroupRetrieve(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apiNotFound(c)
		return
	}
	g, err := h.groupRepo.GetByID(c.Request.Context(), uint(id))
	if err != nil {
		apiNotFound(c)
		return
	}
	c.JSON(http.StatusOK, groupJSON(g))
}
