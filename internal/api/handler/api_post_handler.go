package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/yatube/internal/middleware"
	"github.com/d60-Lab/yatube/internal/service"
)

type apiPostRequest struct {
	Text  string  `form:"text" json:"text" binding:"required"`
	Group *string `form:"group" json:"group"` // group slug, optional
}

type apiPostPatch struct {
	Text  *string `form:"text" json:"text"`
	Group *string `form:"group" json:"group"`
}

func apiNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"detail": "not found"})
}

func (h *Handler) apiError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrNotFound) {
		apiNotFound(c)
		return
	}
	if errors.Is(err, service.ErrNotOwner) {
		c.JSON(http.StatusForbidden, gin.H{"detail": "you are not the author of this post"})
		return
	}
	ServerErrorPage(c)
}

// resolveGroupID maps a slug to a group id; a bad slug is a field error.
func (h *Handler) resolveGroupID(c *gin.Context, slug *string) (*uint, bool) {
	if slug == nil || *slug == "" {
		return nil, true
	}
	g, err := h.groupRepo.GetBySlug(c.Request.Context(), *slug)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"group": []string{"unknown group slug"}})
		return nil, false
	}
	return &g.ID, true
}

// APIPostList godoc
// @Summary List posts
// @Tags posts
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Router /api/posts/ [get]
func (h *Handler) APIPostList(c *gin.Context) {
	feed, err := h.feedSvc.Global(c.Request.Context(), c.Query("page"))
	if err != nil {
		h.apiError(c, err)
		return
	}
	c.JSON(http.StatusOK, postListJSON(feed.Posts))
}

// APIPostCreate godoc
// @Summary Create a post
// @Tags posts
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /api/posts/ [post]
func (h *Handler) APIPostCreate(c *gin.Context) {
	var req apiPostRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, fieldErrorLists(fieldErrors(err)))
		return
	}
	groupID, ok := h.resolveGroupID(c, req.Group)
	if !ok {
		return
	}
	image, ok := h.saveUpload(c)
	if !ok {
		return
	}
	actorID := middleware.CurrentUserID(c)
	post, err := h.postSvc.Create(c.Request.Context(), *actorID, service.PostInput{
		Text:    req.Text,
		GroupID: groupID,
		Image:   image,
	})
	if err != nil {
		h.apiError(c, err)
		return
	}
	c.JSON(http.StatusCreated, postJSON(post))
}

// APIPostRetrieve godoc
// @Summary Retrieve a post
// @Tags posts
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/posts/{id}/ [get]
func (h *Handler) APIPostRetrieve(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		apiNotFound(c)
		return
	}
	post, err := h.postSvc.Get(c.Request.Context(), id)
	if err != nil {
		h.apiError(c, err)
		return
	}
	c.JSON(http.StatusOK, postJSON(post))
}

// APIPostUpdate handles PUT (full replace).
// @Summary Replace a post
// @Tags posts
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/posts/{id}/ [put]
func (h *Handler) APIPostUpdate(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		apiNotFound(c)
		return
	}
	var req apiPostRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, fieldErrorLists(fieldErrors(err)))
		return
	}
	groupID, ok := h.resolveGroupID(c, req.Group)
	if !ok {
		return
	}
	actorID := middleware.CurrentUserID(c)
	post, err := h.postSvc.Edit(c.Request.Context(), *actorID, id, service.PostInput{
		Text:    req.Text,
		GroupID: groupID,
	})
	if err != nil {
		h.apiError(c, err)
		return
	}
	c.JSON(http.StatusOK, postJSON(post))
}

// APIPostPartialUpdate handles PATCH: absent fields keep their values.
// @Summary Partially update a post
// @Tags posts
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/posts/{id}/ [patch]
func (h *Handler) APIPostPartialUpdate(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		apiNotFound(c)
		return
	}
	post, err := h.postSvc.Get(c.Request.Context(), id)
	if err != nil {
		h.apiError(c, err)
		return
	}
	var req apiPostPatch
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, fieldErrorLists(fieldErrors(err)))
		return
	}
	in := service.PostInput{Text: post.Text, GroupID: post.GroupID}
	if req.Text != nil {
		in.Text = *req.Text
	}
	if req.Group != nil {
		groupID, ok := h.resolveGroupID(c, req.Group)
		if !ok {
			return
		}
		in.GroupID = groupID
	}
	actorID := middleware.CurrentUserID(c)
	updated, err := h.postSvc.Edit(c.Request.Context(), *actorID, id, in)
	if err != nil {
		h.apiError(c, err)
		return
	}
	c.JSON(http.StatusOK, postJSON(updated))
}

// APIPostDelete godoc
// @Summary Delete a post
// @Tags posts
// @Success 204
// @Failure 404 {object} map[string]interface{}
// @Router /api/posts/{id}/ [delete]
func (h *Handler) APIPostDelete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		apiNotFound(c)
		return
	}
	actorID := middleware.CurrentUserID(c)
	if err := h.postSvc.Delete(c.Request.Context(), *actorID, id); err != nil {
		h.apiError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// fieldErrorLists matches the per-field error body shape: each field maps to
// a list of messages.
func fieldErrorLists(fields map[string]string) map[string][]string {
	out := make(map[string][]string, len(fields))
	for k, v := range fields {
		out[k] = []string{v}
	}
	return out
}
