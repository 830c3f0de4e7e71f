package content

import "time"

// Entity is implemented by every content record managed through the generic
// repository and service.
type Entity interface {
	GetID() string
	SetID(id string)
	GetCreatedAt() time.Time
	Stamp(createdAt, updatedAt time.Time)
	// Normalize trims and sanitizes user supplied fields before validation.
	Normalize()
	Validate() error
}

// AssetOwner is implemented by entities that reference uploaded files.
// Paths are public storage paths such as /uploads/images/x.png.
type AssetOwner interface {
	AssetPaths() []string
}

// Record carries the identity and timestamps shared by all entities.
type Record struct {
	ID        string    `json:"id" validate:"required,max=64"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// GetID returns the record identifier.
func (r *Record) GetID() string { return r.ID }

// SetID assigns the record identifier.
func (r *Record) SetID(id string) { r.ID = id }

// GetCreatedAt returns the creation timestamp.
func (r *Record) GetCreatedAt() time.Time { return r.CreatedAt }

// Stamp sets both timestamps.
func (r *Record) Stamp(createdAt, updatedAt time.Time) {
	r.CreatedAt = createdAt
	r.UpdatedAt = updatedAt
}

func nonEmpty(paths ...*string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if p != nil && *p != "" {
			out = append(out, *p)
		}
	}
	return out
}
