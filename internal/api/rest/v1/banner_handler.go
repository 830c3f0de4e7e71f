package v1

import (
	"net/http"

	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/content"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// BannerHandler defines the interface for the top banner routes
type BannerHandler interface {
	Get(ctx *gin.Context)
	Save(ctx *gin.Context)
}

type bannerHandler struct {
	bannerService content.BannerService
	logger        logger.Logger
}

// NewBannerHandler creates a new BannerHandler
func NewBannerHandler(bannerService content.BannerService, logger logger.Logger) BannerHandler {
	return &bannerHandler{bannerService: bannerService, logger: logger}
}

// Get returns the banner, or the default inactive one
func (handler *bannerHandler) Get(ctx *gin.Context) {
	banner, err := handler.bannerService.Get(ctx)
	if err != nil {
		respondError(ctx, handler.logger, err)
		return
	}
	ctx.JSON(http.StatusOK, banner)
}

// Save creates or replaces the banner
func (handler *bannerHandler) Save(ctx *gin.Context) {
	var banner content.Banner
	if !bindJSON(ctx, handler.logger, &banner) {
		return
	}

	saved, err := handler.bannerService.Save(ctx, &banner)
	if err != nil {
		respondError(ctx, handler.logger, err)
		return
	}
	ctx.JSON(http.StatusOK, saved)
}
