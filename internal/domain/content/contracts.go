package content

import (
	"context"
	"io"
	"mime/multipart"

	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/assets"
)

// Repository defines the persistence operations shared by all content entities.
type Repository[T Entity] interface {
	// Create adds a new entity to the database
	Create(ctx context.Context, entity T) error
	// List lists entities in the database with optional filter
	List(ctx context.Context, query *ListQuery) ([]T, error)
	// Count counts entities matching the query filters, ignoring pagination
	Count(ctx context.Context, query *ListQuery) (int64, error)
	// GetByID retrieves an entity from the database by ID
	GetByID(ctx context.Context, id string) (T, error)
	// UpdateByID updates an entity in the database by ID
	UpdateByID(ctx context.Context, entity T) error
	// DeleteByID deletes an entity in the database by ID
	DeleteByID(ctx context.Context, id string) error
}

// CRUDService defines the management operations behind every content resource.
type CRUDService[T Entity] interface {
	// Create normalizes, validates and stores a new entity.
	// It returns the stored entity with its generated ID and timestamps.
	Create(ctx context.Context, entity T) (T, error)

	// List retrieves entities considering the query filter.
	List(ctx context.Context, query *ListQuery) ([]T, error)

	// GetByID retrieves an entity by ID.
	// It returns ErrNotFound when no entity exists.
	GetByID(ctx context.Context, id string) (T, error)

	// Update replaces the mutable fields of the entity identified by id.
	Update(ctx context.Context, id string, entity T) (T, error)

	// DeleteByID deletes an entity and any uploaded files it owns.
	DeleteByID(ctx context.Context, id string) error
}

// BannerService manages the top banner singleton.
type BannerService interface {
	// Get returns the stored banner or the default inactive banner.
	Get(ctx context.Context) (*Banner, error)
	// Save creates or replaces the banner.
	Save(ctx context.Context, banner *Banner) (*Banner, error)
}

// PartnerService reads the partner categories together with their logos.
type PartnerService interface {
	ListGroups(ctx context.Context) ([]*PartnerGroup, error)
}

// ApplicationService handles job applications and their resumes.
type ApplicationService interface {
	// Submit stores the resume privately and records the application.
	// It returns ErrNotFound when the job does not exist or is no longer active.
	Submit(ctx context.Context, application *JobApplication, resume *multipart.FileHeader) (*JobApplication, error)

	List(ctx context.Context, query *ListQuery) ([]*JobApplication, error)
	GetByID(ctx context.Context, id string) (*JobApplication, error)

	// OpenResume opens the stored resume of an application for streaming.
	// The caller closes the returned object.
	OpenResume(ctx context.Context, id string) (*JobApplication, *assets.Object, error)

	// DeleteByID removes the application and its resume.
	DeleteByID(ctx context.Context, id string) error
}

// NewsletterService manages newsletter subscribers.
type NewsletterService interface {
	// Subscribe records a new subscriber. It returns ErrConflict for a known email.
	Subscribe(ctx context.Context, email string, source *string) (*Subscriber, error)
	// Unsubscribe removes a subscriber by email.
	Unsubscribe(ctx context.Context, email string) error
	List(ctx context.Context, query *ListQuery) ([]*Subscriber, error)
	DeleteByID(ctx context.Context, id string) error
	// ExportCSV writes all subscribers as CSV to w.
	ExportCSV(ctx context.Context, w io.Writer) error
}
