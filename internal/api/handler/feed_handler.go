package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/yatube/internal/middleware"
)

// Index 全站信息流（该路由挂了页面缓存）
func (h *Handler) Index(c *gin.Context) {
	feed, err := h.feedSvc.Global(c.Request.Context(), c.Query("page"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	view := feedJSON(feed)
	view["title"] = "Latest updates"
	c.JSON(http.StatusOK, view)
}

// GroupPosts 社区信息流；slug 不存在返回 404
func (h *Handler) GroupPosts(c *gin.Context) {
	feed, err := h.feedSvc.Group(c.Request.Context(), c.Param("slug"), c.Query("page"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	view := feedJSON(&feed.Feed)
	view["group"] = groupJSON(feed.Group)
	c.JSON(http.StatusOK, view)
}

// Profile 作者主页：帖子、总数以及当前访问者是否已关注
func (h *Handler) Profile(c *gin.Context) {
	viewerID := middleware.CurrentUserID(c)
	feed, err := h.feedSvc.Profile(c.Request.Context(), c.Param("username"), c.Query("page"), viewerID)
	if err != nil {
		h.renderError(c, err)
		return
	}
	view := feedJSON(&feed.Feed)
	view["username"] = feed.Author.Username
	view["posts_count"] = feed.PostsCount
	view["following"] = feed.Following
	c.JSON(http.StatusOK, view)
}

// FollowIndex 已关注作者的信息流；没有关注时返回空页而不是错误
func (h *Handler) FollowIndex(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	feed, err := h.feedSvc.Following(c.Request.Context(), *userID, c.Query("page"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	view := feedJSON(feed)
	view["title"] = "Posts by authors you follow"
	c.JSON(http.StatusOK, view)
}
