package v1

import (
	"net/http"

	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/content"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// PartnerHandler serves the grouped partners list.
type PartnerHandler interface {
	ListGroups(ctx *gin.Context)
}

type partnerHandler struct {
	partnerService content.PartnerService
	logger         logger.Logger
}

// NewPartnerHandler creates a new PartnerHandler
func NewPartnerHandler(partnerService content.PartnerService, logger logger.Logger) PartnerHandler {
	return &partnerHandler{partnerService: partnerService, logger: logger}
}

// ListGroups returns the partner categories in display order, each with its logos
func (handler *partnerHandler) ListGroups(ctx *gin.Context) {
	groups, err := handler.partnerService.ListGroups(ctx)
	if err != nil {
		respondError(ctx, handler.logger, err)
		return
	}
	if groups == nil {
		groups = []*content.PartnerGroup{}
	}
	ctx.JSON(http.StatusOK, groups)
}
