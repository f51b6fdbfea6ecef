package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/yatube/internal/cache"
	"github.com/d60-Lab/yatube/internal/config"
	"github.com/d60-Lab/yatube/internal/repository"
	"github.com/d60-Lab/yatube/internal/service"
	"github.com/d60-Lab/yatube/internal/storage"
	"github.com/d60-Lab/yatube/pkg/response"
)

// LoginPath is the authentication entry point anonymous actors are sent to.
const LoginPath = "/auth/login/"

// Handler bundles the services behind the web and REST surfaces.
type Handler struct {
	cfg       *config.Config
	feedSvc   service.FeedService
	postSvc   service.PostService
	relSvc    service.RelationshipService
	userSvc   service.UserService
	groupRepo repository.GroupRepository
	media     *storage.MediaStore
	pageCache cache.PageCache
}

func New(
	cfg *config.Config,
	feedSvc service.FeedService,
	postSvc service.PostService,
	relSvc service.RelationshipService,
	userSvc service.UserService,
	groupRepo repository.GroupRepository,
	media *storage.MediaStore,
	pageCache cache.PageCache,
) *Handler {
	return &Handler{
		cfg:       cfg,
		feedSvc:   feedSvc,
		postSvc:   postSvc,
		relSvc:    relSvc,
		userSvc:   userSvc,
		groupRepo: groupRepo,
		media:     media,
		pageCache: pageCache,
	}
}

// CacheClear 管理操作：清空页面缓存（不暴露给终端用户）
func (h *Handler) CacheClear(c *gin.Context) {
	if err := h.pageCache.Clear(c.Request.Context()); err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, nil)
}
