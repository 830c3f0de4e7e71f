package v1

import (
	"mime"
	"net/http"
	"strings"

	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/content"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// resumeField is the multipart field carrying the resume file.
const resumeField = "resume"

// ApplicationHandler defines the interface for job application routes
type ApplicationHandler interface {
	Submit(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	DownloadResume(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type applicationHandler struct {
	applicationService content.ApplicationService
	logger             logger.Logger
}

// NewApplicationHandler creates a new ApplicationHandler
func NewApplicationHandler(applicationService content.ApplicationService, logger logger.Logger) ApplicationHandler {
	return &applicationHandler{applicationService: applicationService, logger: logger}
}

func optionalForm(ctx *gin.Context, key string) *string {
	v, ok := ctx.GetPostForm(key)
	if !ok || strings.TrimSpace(v) == "" {
		return nil
	}
	return &v
}

// Submit records an application with its resume from a multipart form
func (handler *applicationHandler) Submit(ctx *gin.Context) {
	if _, err := ctx.MultipartForm(); err != nil {
		if statusFor(err) == http.StatusRequestEntityTooLarge {
			respondError(ctx, handler.logger, err)
			return
		}
		badRequest(ctx, "invalid form data")
		return
	}

	resume, err := ctx.FormFile(resumeField)
	if err != nil {
		badRequest(ctx, "resume file is required")
		return
	}

	application := &content.JobApplication{
		JobID:       ctx.PostForm("jobId"),
		FullName:    ctx.PostForm("fullName"),
		Email:       ctx.PostForm("email"),
		Phone:       optionalForm(ctx, "phone"),
		CoverLetter: optionalForm(ctx, "coverLetter"),
	}

	created, err := handler.applicationService.Submit(ctx, application, resume)
	if err != nil {
		respondError(ctx, handler.logger, err)
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// List lists applications, optionally for one job
func (handler *applicationHandler) List(ctx *gin.Context) {
	query, err := parseListQuery(ctx, []string{"jobId"})
	if err != nil {
		respondError(ctx, handler.logger, err)
		return
	}

	applications, err := handler.applicationService.List(ctx, query)
	if err != nil {
		respondError(ctx, handler.logger, err)
		return
	}
	if applications == nil {
		applications = []*content.JobApplication{}
	}
	ctx.JSON(http.StatusOK, applications)
}

// GetByID fetches an application by ID
func (handler *applicationHandler) GetByID(ctx *gin.Context) {
	application, err := handler.applicationService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, handler.logger, err)
		return
	}
	ctx.JSON(http.StatusOK, application)
}

// DownloadResume streams the stored resume as an attachment
func (handler *applicationHandler) DownloadResume(ctx *gin.Context) {
	application, object, err := handler.applicationService.OpenResume(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, handler.logger, err)
		return
	}
	defer object.Close()

	disposition := mime.FormatMediaType("attachment", map[string]string{"filename": application.ResumeName})
	if disposition == "" {
		disposition = "attachment"
	}
	ctx.Header("Content-Disposition", disposition)
	ctx.Header("Content-Type", object.ContentType)
	ctx.Header("X-Content-Type-Options", "nosniff")
	http.ServeContent(ctx.Writer, ctx.Request, object.Name, object.ModTime, object)
}

// DeleteByID removes an application and its resume
func (handler *applicationHandler) DeleteByID(ctx *gin.Context) {
	if err := handler.applicationService.DeleteByID(ctx, ctx.Param("id")); err != nil {
		respondError(ctx, handler.logger, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
