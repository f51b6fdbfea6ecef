package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/yatube/internal/middleware"
	"github.com/d60-Lab/yatube/internal/service"
	"github.com/d60-Lab/yatube/internal/storage"
)

type postForm struct {
	Text  string `form:"text" binding:"required"`
	Group *uint  `form:"group"`
}

type commentForm struct {
	Text string `form:"text" binding:"required"`
}

func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func postPath(id uint) string { return fmt.Sprintf("/posts/%d/", id) }

// PostDetail 帖子详情 + 评论列表
func (h *Handler) PostDetail(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		NotFoundPage(c)
		return
	}
	detail, err := h.postSvc.Detail(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, err)
		return
	}
	comments := make([]gin.H, 0, len(detail.Comments))
	for _, cm := range detail.Comments {
		comments = append(comments, commentJSON(cm))
	}
	c.JSON(http.StatusOK, gin.H{
		"post":        postJSON(detail.Post),
		"posts_count": detail.PostsCount,
		"comments":    comments,
	})
}

// PostCreateForm 新帖表单上下文（登录后可见）
func (h *Handler) PostCreateForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"title": "New post", "is_edit": false})
}

// PostCreate 发帖；成功后跳转到作者主页
func (h *Handler) PostCreate(c *gin.Context) {
	actorID := middleware.CurrentUserID(c)

	var form postForm
	if err := c.ShouldBind(&form); err != nil {
		validationFailed(c, fieldErrors(err))
		return
	}
	image, ok := h.saveUpload(c)
	if !ok {
		return
	}
	_, err := h.postSvc.Create(c.Request.Context(), *actorID, service.PostInput{
		Text:    form.Text,
		GroupID: form.Group,
		Image:   image,
	})
	if err != nil {
		h.renderError(c, err)
		return
	}
	author, err := h.userSvc.GetByID(c.Request.Context(), *actorID)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/profile/"+author.Username+"/")
}

// PostEditForm 编辑表单；非作者一律跳回只读视图
func (h *Handler) PostEditForm(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		NotFoundPage(c)
		return
	}
	post, err := h.postSvc.Get(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, err)
		return
	}
	if service.CanEditPost(middleware.CurrentUserID(c), post) != service.Allow {
		c.Redirect(http.StatusFound, postPath(id))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"title":   "Edit post",
		"is_edit": true,
		"post":    postJSON(post),
	})
}

// PostEdit 保存编辑；非作者的提交同样跳回只读视图，不报错
func (h *Handler) PostEdit(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		NotFoundPage(c)
		return
	}
	post, err := h.postSvc.Get(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, err)
		return
	}
	actorID := middleware.CurrentUserID(c)
	if service.CanEditPost(actorID, post) != service.Allow {
		c.Redirect(http.StatusFound, postPath(id))
		return
	}
	var form postForm
	if err := c.ShouldBind(&form); err != nil {
		validationFailed(c, fieldErrors(err))
		return
	}
	image, ok := h.saveUpload(c)
	if !ok {
		return
	}
	if _, err := h.postSvc.Edit(c.Request.Context(), *actorID, id, service.PostInput{
		Text:    form.Text,
		GroupID: form.Group,
		Image:   image,
	}); err != nil {
		h.renderError(c, err)
		return
	}
	c.Redirect(http.StatusFound, postPath(id))
}

// AddComment 评论；成功后回到帖子详情
func (h *Handler) AddComment(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		NotFoundPage(c)
		return
	}
	var form commentForm
	if err := c.ShouldBind(&form); err != nil {
		validationFailed(c, fieldErrors(err))
		return
	}
	actorID := middleware.CurrentUserID(c)
	if _, err := h.postSvc.AddComment(c.Request.Context(), *actorID, id, form.Text); err != nil {
		h.renderError(c, err)
		return
	}
	c.Redirect(http.StatusFound, postPath(id))
}

// saveUpload stores an optional image form file. On validation failure it
// writes the 400 body and reports false.
func (h *Handler) saveUpload(c *gin.Context) (string, bool) {
	fh, err := c.FormFile("image")
	if err != nil {
		// no image attached
		return "", true
	}
	rel, err := h.media.SaveImage(fh)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotImage):
			validationFailed(c, map[string]string{"image": "upload a valid image"})
		case errors.Is(err, storage.ErrTooLarge):
			validationFailed(c, map[string]string{"image": "image too large"})
		default:
			h.renderError(c, err)
		}
		return "", false
	}
	return rel, true
}
