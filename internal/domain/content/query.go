package content

import (
	"fmt"

	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/pkg/validators"
)

// Sort orders accepted by ListQuery.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// MaxListLimit caps a single page of results.
const MaxListLimit = 500

// ListQuery filters, sorts and paginates a list operation.
// Column names in SortBy and Filters are checked against a per-resource
// allow list by the repository.
type ListQuery struct {
	Search    string            `validate:"max=100"`
	Filters   map[string]string `validate:"max=5"`
	Limit     int               `validate:"min=0,max=500"`
	Offset    int               `validate:"min=0"`
	SortBy    string            `validate:"omitempty,max=64"`
	SortOrder string            `validate:"omitempty,oneof=asc desc"`
}

// NewListQuery creates a query with no filters.
func NewListQuery() *ListQuery {
	return &ListQuery{Filters: map[string]string{}}
}

// WithFilter adds an equality filter and returns the query.
func (q *ListQuery) WithFilter(column, value string) *ListQuery {
	if q.Filters == nil {
		q.Filters = map[string]string{}
	}
	q.Filters[column] = value
	return q
}

// Validate checks query bounds.
func (q *ListQuery) Validate() error {
	if err := validators.Struct(q); err != nil {
		return validationError(fmt.Errorf("invalid query: %w", err))
	}
	return nil
}
