package v1

import (
	"net/http"
	"strconv"

	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/content"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ContentHandler defines the CRUD routes shared by all content resources
type ContentHandler interface {
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

// contentHandler serves one resource. E is the entity struct, PE its pointer.
type contentHandler[E any, PE interface {
	*E
	content.Entity
}] struct {
	service content.CRUDService[PE]
	filters []string
	logger  logger.Logger
}

// NewContentHandler creates a handler over service. Query parameters named in
// filters become equality filters of list requests.
func NewContentHandler[E any, PE interface {
	*E
	content.Entity
}](service content.CRUDService[PE], logger logger.Logger, filters ...string) ContentHandler {
	return &contentHandler[E, PE]{service: service, filters: filters, logger: logger}
}

// parseListQuery reads search, paging, sorting and the allowed filters.
func parseListQuery(ctx *gin.Context, filters []string) (*content.ListQuery, error) {
	query := content.NewListQuery()
	query.Search = ctx.Query("q")
	query.SortBy = ctx.Query("sortBy")
	query.SortOrder = ctx.Query("sortOrder")

	if limit := ctx.Query("limit"); limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil {
			return nil, content.NewValidationError("limit must be a number")
		}
		query.Limit = n
	}
	if offset := ctx.Query("offset"); offset != "" {
		n, err := strconv.Atoi(offset)
		if err != nil {
			return nil, content.NewValidationError("offset must be a number")
		}
		query.Offset = n
	}
	for _, f := range filters {
		if v, ok := ctx.GetQuery(f); ok {
			query.WithFilter(f, v)
		}
	}

	if err := query.Validate(); err != nil {
		return nil, err
	}
	return query, nil
}

// List lists entities optionally filtered with query parameters
func (handler *contentHandler[E, PE]) List(ctx *gin.Context) {
	query, err := parseListQuery(ctx, handler.filters)
	if err != nil {
		respondError(ctx, handler.logger, err)
		return
	}

	items, err := handler.service.List(ctx, query)
	if err != nil {
		respondError(ctx, handler.logger, err)
		return
	}
	if items == nil {
		items = []PE{}
	}
	ctx.JSON(http.StatusOK, items)
}

// GetByID fetches an entity by ID
func (handler *contentHandler[E, PE]) GetByID(ctx *gin.Context) {
	item, err := handler.service.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, handler.logger, err)
		return
	}
	ctx.JSON(http.StatusOK, item)
}

// Create stores a new entity from the JSON body
func (handler *contentHandler[E, PE]) Create(ctx *gin.Context) {
	entity := PE(new(E))
	if !bindJSON(ctx, handler.logger, entity) {
		return
	}

	created, err := handler.service.Create(ctx, entity)
	if err != nil {
		respondError(ctx, handler.logger, err)
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// Update replaces the mutable fields of an entity
func (handler *contentHandler[E, PE]) Update(ctx *gin.Context) {
	entity := PE(new(E))
	if !bindJSON(ctx, handler.logger, entity) {
		return
	}

	updated, err := handler.service.Update(ctx, ctx.Param("id"), entity)
	if err != nil {
		respondError(ctx, handler.logger, err)
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

// DeleteByID deletes an entity and its uploaded files
func (handler *contentHandler[E, PE]) DeleteByID(ctx *gin.Context) {
	if err := handler.service.DeleteByID(ctx, ctx.Param("id")); err != nil {
		respondError(ctx, handler.logger, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
