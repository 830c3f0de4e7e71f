package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// StorageSettings controls where uploaded assets live and how large they may be.
type StorageSettings struct {
	// PublicDir is served under PublicURLPrefix.
	PublicDir       string `env:"PUBLIC_DIR" envDefault:"./data/public" validate:"required"`
	PrivateDir      string `env:"PRIVATE_DIR" envDefault:"./data/private" validate:"required,nefield=PublicDir"`
	PublicURLPrefix string `env:"PUBLIC_URL_PREFIX" envDefault:"/uploads" validate:"required,startswith=/"`

	MaxImageBytes  int64 `env:"MAX_IMAGE_BYTES" envDefault:"5242880" validate:"min=1"`
	MaxImageWidth  int   `env:"MAX_IMAGE_WIDTH" envDefault:"4096" validate:"min=1"`
	MaxImageHeight int   `env:"MAX_IMAGE_HEIGHT" envDefault:"4096" validate:"min=1"`
	MaxResumeBytes int64 `env:"MAX_RESUME_BYTES" envDefault:"10485760" validate:"min=1"`

	MaxArchiveBytes   int64  `env:"MAX_ARCHIVE_BYTES" envDefault:"52428800" validate:"min=1"`
	MaxArchiveEntries int    `env:"MAX_ARCHIVE_ENTRIES" envDefault:"500" validate:"min=1"`
	MaxExtractedBytes int64  `env:"MAX_EXTRACTED_BYTES" envDefault:"104857600" validate:"min=1"`
	MastheadEntryFile string `env:"MASTHEAD_ENTRY_FILE" envDefault:"index.html" validate:"required"`
}

// Validate checks that all fields in StorageSettings are valid
func (s *StorageSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for StorageSettings: %w", err)
	}

	if s.MaxExtractedBytes < s.MaxArchiveBytes {
		return fmt.Errorf("max extracted bytes must not be smaller than max archive bytes")
	}

	return nil
}
