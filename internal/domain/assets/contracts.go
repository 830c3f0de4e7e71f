package assets

import (
	"context"
	"io"
	"mime/multipart"
)

// AssetService accepts uploads and resolves stored files.
type AssetService interface {
	// UploadImage checks type, size and dimensions of an image and stores it
	// under folder in public storage.
	UploadImage(ctx context.Context, file *multipart.FileHeader, folder string) (*StoredImage, error)

	// UploadMasthead extracts a ZIP archive into its own directory.
	// It returns ErrMissingEntry when the archive has no root index.html.
	UploadMasthead(ctx context.Context, file *multipart.FileHeader) (*MastheadUpload, error)

	// Open resolves a public path for serving.
	Open(ctx context.Context, publicPath string) (*Object, error)

	// Delete removes a public file. A masthead entry path removes the whole
	// extracted directory.
	Delete(ctx context.Context, publicPath string) error

	// StoreResume writes a resume to private storage and returns its key.
	StoreResume(ctx context.Context, file *multipart.FileHeader) (string, error)

	// OpenResume opens a resume from private storage.
	OpenResume(ctx context.Context, key string) (*Object, error)

	// DeleteResume removes a resume from private storage.
	DeleteResume(ctx context.Context, key string) error
}

// AssetRepository defines the interface for Asset-related operations
type AssetRepository interface {
	Create(ctx context.Context, asset *Asset) error
	CreateBatch(ctx context.Context, assets []*Asset) error
	GetByPath(ctx context.Context, path string) (*Asset, error)
	ListByGroup(ctx context.Context, groupID string) ([]*Asset, error)
	DeleteByPath(ctx context.Context, path string) error
	DeleteByGroup(ctx context.Context, groupID string) error
}

// Connector is an interface for interacting with file storage.
// Keys are slash separated and relative to the storage root.
type Connector interface {
	// Save writes r under key, replacing any existing file, and returns the bytes written.
	Save(ctx context.Context, key string, r io.Reader) (int64, error)
	// Open opens the file stored under key.
	Open(ctx context.Context, key string) (*Object, error)
	// Delete removes a single file.
	Delete(ctx context.Context, key string) error
	// DeleteTree removes a directory and everything below it.
	DeleteTree(ctx context.Context, prefix string) error
	// Exists reports whether a file is stored under key.
	Exists(ctx context.Context, key string) (bool, error)
}
