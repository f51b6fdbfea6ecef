package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/yatube/internal/middleware"
	"github.com/d60-Lab/yatube/internal/service"
	"github.com/d60-Lab/yatube/pkg/response"
)

type signupForm struct {
	Username string `form:"username" json:"username" binding:"required,max=150"`
	Email    string `form:"email" json:"email" binding:"required,email"`
	Password string `form:"password" json:"password" binding:"required,min=8"`
}

type loginForm struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

// Signup 注册（身份子系统的最小实现）
func (h *Handler) Signup(c *gin.Context) {
	var form signupForm
	if err := c.ShouldBind(&form); err != nil {
		validationFailed(c, fieldErrors(err))
		return
	}
	u, err := h.userSvc.Signup(c.Request.Context(), form.Username, form.Email, form.Password)
	if err != nil {
		// unique index violations surface as one generic field error
		validationFailed(c, map[string]string{"username": "username or email already taken"})
		return
	}
	response.Success(c, gin.H{"id": u.ID, "username": u.Username})
}

// LoginForm 登录表单上下文；next 参数透传，登录成功后恢复跳转
func (h *Handler) LoginForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"title": "Log in", "next": c.Query("next")})
}

// Login 校验口令并签发 JWT（cookie + body）
func (h *Handler) Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		validationFailed(c, fieldErrors(err))
		return
	}
	u, err := h.userSvc.Authenticate(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		if errors.Is(err, service.ErrBadCredentials) {
			validationFailed(c, map[string]string{"non_field_errors": "invalid username or password"})
			return
		}
		h.renderError(c, err)
		return
	}
	token, err := middleware.IssueToken(h.cfg.Auth.JWTSecret, h.cfg.Auth.TokenTTL, u.ID)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.SetCookie(middleware.AuthCookie, token, int(h.cfg.Auth.TokenTTL.Seconds()), "/", "", false, true)
	if next := c.Query("next"); next != "" && next[0] == '/' {
		c.Redirect(http.StatusFound, next)
		return
	}
	response.Success(c, gin.H{"token": token})
}

// Logout 清除认证 cookie
func (h *Handler) Logout(c *gin.Context) {
	c.SetCookie(middleware.AuthCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}
