package assets

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/pkg/validators"
)

// Kind classifies an uploaded file.
type Kind string

// Supported asset kinds.
const (
	KindImage    Kind = "image"
	KindResume   Kind = "resume"
	KindMasthead Kind = "masthead"
)

// Errors returned by the asset pipeline.
var (
	ErrInvalidArchive   = errors.New("invalid archive")
	ErrMissingEntry     = fmt.Errorf("%w: entry file missing at archive root", ErrInvalidArchive)
	ErrUnsupportedMedia = errors.New("unsupported media type")
	ErrTooLarge         = errors.New("upload too large")
	ErrInvalidPath      = errors.New("invalid asset path")
)

// Image folders an upload may target. An empty folder maps to FolderGeneral.
const (
	FolderGeneral          = "general"
	FolderPartners         = "partners"
	FolderTeam             = "team"
	FolderServices         = "services"
	FolderGames            = "games"
	FolderWebPortals       = "web-portals"
	FolderDigitalMarketing = "digital-marketing"
	FolderThumbnails       = "thumbnails"
)

// ImageFolders is the set of folders accepted by image uploads.
var ImageFolders = map[string]struct{}{
	FolderGeneral:          {},
	FolderPartners:         {},
	FolderTeam:             {},
	FolderServices:         {},
	FolderGames:            {},
	FolderWebPortals:       {},
	FolderDigitalMarketing: {},
	FolderThumbnails:       {},
}

// MastheadFolder is the storage folder holding extracted masthead archives.
const MastheadFolder = "mastheads"

// Asset is the metadata row recorded for every stored file.
// Path is the public path for image and masthead files and the private
// storage key for resumes.
type Asset struct {
	ID          string    `validate:"required,uuid4"`
	Path        string    `validate:"required,max=512"`
	ContentType string    `validate:"required,max=127"`
	Size        int64     `validate:"min=0"`
	Kind        Kind      `validate:"required,oneof=image resume masthead"`
	GroupID     string    `validate:"omitempty,uuid4"`
	CreatedAt   time.Time `validate:"required"`
}

// Validate for validating Asset struct
func (a *Asset) Validate() error {
	if err := validators.Struct(a); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// StoredImage describes an accepted image upload.
type StoredImage struct {
	Path        string `json:"path"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
	Width       int    `json:"width,omitempty"`
	Height      int    `json:"height,omitempty"`
}

// MastheadUpload describes an extracted masthead archive. Path points at the
// entry file and is what editors store as Masthead.EntryPath.
type MastheadUpload struct {
	ID    string `json:"id"`
	Path  string `json:"path"`
	Files int    `json:"files"`
}

// Object is an opened stored file.
type Object struct {
	io.ReadSeekCloser
	Name        string
	Size        int64
	ModTime     time.Time
	ContentType string
}
