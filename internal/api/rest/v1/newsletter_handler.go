package v1

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/content"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// NewsletterHandler defines the interface for newsletter subscriber routes
type NewsletterHandler interface {
	Subscribe(ctx *gin.Context)
	Unsubscribe(ctx *gin.Context)
	List(ctx *gin.Context)
	Export(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type newsletterHandler struct {
	newsletterService content.NewsletterService
	logger            logger.Logger
}

// NewNewsletterHandler creates a new NewsletterHandler
func NewNewsletterHandler(newsletterService content.NewsletterService, logger logger.Logger) NewsletterHandler {
	return &newsletterHandler{newsletterService: newsletterService, logger: logger}
}

// Subscribe adds a subscriber
func (handler *newsletterHandler) Subscribe(ctx *gin.Context) {
	var request SubscribeRequest
	if !bindJSON(ctx, handler.logger, &request) {
		return
	}
	if err := request.Validate(); err != nil {
		badRequest(ctx, err.Error())
		return
	}

	subscriber, err := handler.newsletterService.Subscribe(ctx, request.Email, request.Source)
	if err != nil {
		respondError(ctx, handler.logger, err)
		return
	}
	ctx.JSON(http.StatusCreated, subscriber)
}

// Unsubscribe removes the subscriber given by the email query parameter
func (handler *newsletterHandler) Unsubscribe(ctx *gin.Context) {
	email := ctx.Query("email")
	if email == "" {
		badRequest(ctx, "email query parameter is required")
		return
	}

	if err := handler.newsletterService.Unsubscribe(ctx, email); err != nil {
		respondError(ctx, handler.logger, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// List lists subscribers
func (handler *newsletterHandler) List(ctx *gin.Context) {
	query, err := parseListQuery(ctx, []string{"source"})
	if err != nil {
		respondError(ctx, handler.logger, err)
		return
	}

	subscribers, err := handler.newsletterService.List(ctx, query)
	if err != nil {
		respondError(ctx, handler.logger, err)
		return
	}
	if subscribers == nil {
		subscribers = []*content.Subscriber{}
	}
	ctx.JSON(http.StatusOK, subscribers)
}

// Export downloads all subscribers as CSV
func (handler *newsletterHandler) Export(ctx *gin.Context) {
	var buf bytes.Buffer
	if err := handler.newsletterService.ExportCSV(ctx, &buf); err != nil {
		respondError(ctx, handler.logger, err)
		return
	}

	filename := fmt.Sprintf("subscribers-%s.csv", time.Now().UTC().Format("20060102"))
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// DeleteByID removes a subscriber by ID
func (handler *newsletterHandler) DeleteByID(ctx *gin.Context) {
	if err := handler.newsletterService.DeleteByID(ctx, ctx.Param("id")); err != nil {
		respondError(ctx, handler.logger, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
