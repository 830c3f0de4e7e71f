package v1

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/assets"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/content"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// uploadField is the multipart field carrying an uploaded file.
const uploadField = "file"

// UploadHandler defines the interface for upload and asset routes
type UploadHandler interface {
	UploadImage(ctx *gin.Context)
	UploadMasthead(ctx *gin.Context)
	Delete(ctx *gin.Context)
	Serve(ctx *gin.Context)
}

type uploadHandler struct {
	assetService assets.AssetService
	urlPrefix    string
	logger       logger.Logger
}

// NewUploadHandler creates a new UploadHandler. urlPrefix is the public path
// under which Serve is mounted.
func NewUploadHandler(assetService assets.AssetService, urlPrefix string, logger logger.Logger) UploadHandler {
	return &uploadHandler{
		assetService: assetService,
		urlPrefix:    strings.TrimSuffix(urlPrefix, "/"),
		logger:       logger,
	}
}

// formFile reads the uploaded file, answering the request itself on failure.
func (handler *uploadHandler) formFile(ctx *gin.Context) (*multipart.FileHeader, bool) {
	file, err := ctx.FormFile(uploadField)
	if err != nil {
		var maxBytes *http.MaxBytesError
		if errors.As(err, &maxBytes) {
			respondError(ctx, handler.logger, err)
			return nil, false
		}
		badRequest(ctx, "file is required")
		return nil, false
	}
	return file, true
}

// UploadImage stores an image in one of the image folders
func (handler *uploadHandler) UploadImage(ctx *gin.Context) {
	file, ok := handler.formFile(ctx)
	if !ok {
		return
	}

	image, err := handler.assetService.UploadImage(ctx, file, ctx.PostForm("folder"))
	if err != nil {
		respondError(ctx, handler.logger, err)
		return
	}
	ctx.JSON(http.StatusCreated, image)
}

// UploadMasthead extracts a ZIP archive with an index.html at its root
func (handler *uploadHandler) UploadMasthead(ctx *gin.Context) {
	file, ok := handler.formFile(ctx)
	if !ok {
		return
	}

	upload, err := handler.assetService.UploadMasthead(ctx, file)
	if err != nil {
		respondError(ctx, handler.logger, err)
		return
	}
	ctx.JSON(http.StatusCreated, upload)
}

// Delete removes the uploaded file named by the path query parameter
func (handler *uploadHandler) Delete(ctx *gin.Context) {
	path := ctx.Query("path")
	if path == "" {
		badRequest(ctx, "path query parameter is required")
		return
	}

	if err := handler.assetService.Delete(ctx, path); err != nil {
		respondError(ctx, handler.logger, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// Serve streams a public asset with its recorded content type
func (handler *uploadHandler) Serve(ctx *gin.Context) {
	object, err := handler.assetService.Open(ctx, handler.urlPrefix+ctx.Param("path"))
	if err != nil {
		if errors.Is(err, assets.ErrInvalidPath) {
			err = content.ErrNotFound
		}
		respondError(ctx, handler.logger, err)
		return
	}
	defer object.Close()

	ctx.Header("Content-Type", object.ContentType)
	ctx.Header("X-Content-Type-Options", "nosniff")
	if strings.HasPrefix(object.ContentType, "text/html") || strings.HasPrefix(object.ContentType, "image/svg+xml") {
		// uploaded documents never run with the site's origin
		ctx.Header("Content-Security-Policy", "sandbox allow-scripts")
	}
	http.ServeContent(ctx.Writer, ctx.Request, object.Name, object.ModTime, object)
}
