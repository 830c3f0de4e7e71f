package app

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path"
	"strings"
	"time"
	"unicode"

	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/assets"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/content"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/notify"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/pkg/logger"

	"github.com/google/uuid"
)

type applicationService struct {
	repo      content.Repository[*content.JobApplication]
	jobs      content.Repository[*content.JobOpening]
	assets    assets.AssetService
	publisher notify.Publisher
	logger    logger.Logger
	now       func() time.Time
}

// NewApplicationService creates the service receiving job applications
func NewApplicationService(
	repo content.Repository[*content.JobApplication],
	jobs content.Repository[*content.JobOpening],
	assetService assets.AssetService,
	publisher notify.Publisher,
	logger logger.Logger,
) (content.ApplicationService, error) {
	if repo == nil || jobs == nil || assetService == nil {
		return nil, errors.New("application service requires application and job repositories and an asset service")
	}
	return &applicationService{
		repo:      repo,
		jobs:      jobs,
		assets:    assetService,
		publisher: publisher,
		logger:    logger,
		now:       timestamp,
	}, nil
}

func (s *applicationService) Submit(ctx context.Context, application *content.JobApplication, resume *multipart.FileHeader) (*content.JobApplication, error) {
	if resume == nil {
		return nil, content.NewValidationError("resume file is required")
	}

	application.Normalize()
	application.SetID(uuid.NewString())
	application.ResumeName = resumeName(resume.Filename)
	// Validate the form before the job lookup and before any file is written.
	application.ResumePath = "pending"
	now := s.now()
	application.Stamp(now, now)
	if err := application.Validate(); err != nil {
		return nil, err
	}

	job, err := s.jobs.GetByID(ctx, application.JobID)
	if err != nil {
		return nil, err
	}
	if !job.IsActive {
		return nil, fmt.Errorf("job opening %s is closed: %w", job.ID, content.ErrNotFound)
	}

	key, err := s.assets.StoreResume(ctx, resume)
	if err != nil {
		return nil, err
	}
	application.ResumePath = key

	if err := s.repo.Create(ctx, application); err != nil {
		if rmErr := s.assets.DeleteResume(ctx, key); rmErr != nil {
			s.logger.Warn("Failed to remove orphaned resume", "key", key, "error", rmErr)
		}
		return nil, err
	}

	s.logger.Info("Received job application", "id", application.ID, "jobId", job.ID)
	publish(ctx, s.publisher, s.logger, notify.NewEvent(notify.EventApplicationReceived, map[string]any{
		"applicationId": application.ID,
		"jobId":         job.ID,
		"jobTitle":      job.Title,
		"fullName":      application.FullName,
		"email":         application.Email,
	}))
	return application, nil
}

func (s *applicationService) List(ctx context.Context, query *content.ListQuery) ([]*content.JobApplication, error) {
	return s.repo.List(ctx, query)
}

func (s *applicationService) GetByID(ctx context.Context, id string) (*content.JobApplication, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *applicationService) OpenResume(ctx context.Context, id string) (*content.JobApplication, *assets.Object, error) {
	application, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	obj, err := s.assets.OpenResume(ctx, application.ResumePath)
	if err != nil {
		return nil, nil, fmt.Errorf("resume of application %s: %w", id, err)
	}
	obj.Name = application.ResumeName
	return application, obj, nil
}

func (s *applicationService) DeleteByID(ctx context.Context, id string) error {
	application, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}
	if err := s.assets.DeleteResume(ctx, application.ResumePath); err != nil && !errors.Is(err, content.ErrNotFound) {
		s.logger.Warn("Failed to remove resume", "key", application.ResumePath, "error", err)
	}
	return nil
}

// resumeName reduces an uploaded file name to a base name that is safe in a
// Content-Disposition header.
func resumeName(filename string) string {
	name := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	name = strings.Map(func(r rune) rune {
		if r == '"' || unicode.IsControl(r) {
			return -1
		}
		return r
	}, name)
	name = strings.TrimSpace(name)
	if name == "" || name == "." || name == "/" {
		return "resume"
	}
	if len(name) > 255 {
		ext := path.Ext(name)
		if len(ext) > 16 {
			ext = ""
		}
		name = strings.ToValidUTF8(name[:255-len(ext)], "") + ext
	}
	return name
}
