package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/yatube/internal/middleware"
)

// ProfileFollow 关注作者。自关注与重复关注都静默忽略，无论哪种情况
// 都跳回作者主页。
func (h *Handler) ProfileFollow(c *gin.Context) {
	h.followAction(c, func(userID, authorID uint) error {
		return h.relSvc.Follow(c.Request.Context(), userID, authorID)
	})
}

// ProfileUnfollow 取消关注；边不存在时同样是 no-op
func (h *Handler) ProfileUnfollow(c *gin.Context) {
	h.followAction(c, func(userID, authorID uint) error {
		return h.relSvc.Unfollow(c.Request.Context(), userID, authorID)
	})
}

func (h *Handler) followAction(c *gin.Context, op func(userID, authorID uint) error) {
	author, err := h.userSvc.GetByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	userID := middleware.CurrentUserID(c)
	if err := op(*userID, author.ID); err != nil {
		h.renderError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/profile/"+author.Username+"/")
}
