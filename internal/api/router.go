package api

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	_ "github.com/d60-Lab/yatube/docs"
	"github.com/d60-Lab/yatube/internal/api/handler"
	"github.com/d60-Lab/yatube/internal/cache"
	"github.com/d60-Lab/yatube/internal/config"
	"github.com/d60-Lab/yatube/internal/middleware"
)

// NewRouter assembles the full route table: the web surface, the REST API
// and the operational endpoints.
func NewRouter(cfg *config.Config, h *handler.Handler, pageCache cache.PageCache) *gin.Engine {
	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(
		middleware.Recovery(),
		middleware.RequestLog(),
		otelgin.Middleware("yatube"),
		gzip.Gzip(gzip.DefaultCompression),
		middleware.RateLimit(cfg.Limit.RPS, cfg.Limit.Burst),
		middleware.Auth(cfg.Auth.JWTSecret),
	)
	r.NoRoute(handler.NotFoundPage)

	r.Static("/media", cfg.Media.Dir)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	loginRequired := middleware.LoginRequired(handler.LoginPath)

	// web surface; unsafe methods go through CSRF double-submit checks
	web := r.Group("/", middleware.CSRF())
	{
		web.GET("/", middleware.CachePage(pageCache, cfg.Feed.CacheTTL), h.Index)
		web.GET("/group/:slug/", h.GroupPosts)
		web.GET("/profile/:username/", h.Profile)
		web.GET("/posts/:id/", h.PostDetail)
		web.GET("/posts/:id/edit/", h.PostEditForm)
		web.POST("/posts/:id/edit/", h.PostEdit)
		web.POST("/posts/:id/comment/", loginRequired, h.AddComment)
		web.GET("/create/", loginRequired, h.PostCreateForm)
		web.POST("/create/", loginRequired, h.PostCreate)
		web.GET("/follow/", loginRequired, h.FollowIndex)
		web.GET("/profile/:username/follow/", loginRequired, h.ProfileFollow)
		web.GET("/profile/:username/unfollow/", loginRequired, h.ProfileUnfollow)

		web.GET("/auth/login/", h.LoginForm)
		web.POST("/auth/login/", h.Login)
		web.POST("/auth/signup/", h.Signup)
		web.GET("/auth/logout/", h.Logout)
	}

	// REST API. Mutations require a token and author match.
	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/posts/", h.APIPostList)
		apiGroup.POST("/posts/", middleware.TokenRequired(), h.APIPostCreate)
		apiGroup.GET("/posts/:id/", h.APIPostRetrieve)
		apiGroup.PUT("/posts/:id/", middleware.TokenRequired(), h.APIPostUpdate)
		apiGroup.PATCH("/posts/:id/", middleware.TokenRequired(), h.APIPostPartialUpdate)
		apiGroup.DELETE("/posts/:id/", middleware.TokenRequired(), h.APIPostDelete)

		apiGroup.GET("/groups/", h.APIGroupList)
		apiGroup.GET("/groups/:id/", h.APIGroupRetrieve)
	}

	// administrative; deployments keep /internal off the public edge
	internal := r.Group("/internal", middleware.TokenRequired())
	{
		internal.POST("/cache/clear", h.CacheClear)
	}

	return r
}
