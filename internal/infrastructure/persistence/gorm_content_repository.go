package persistence

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/content"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/pkg/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// recordModel is satisfied by the pointer type of every content GORM model.
type recordModel[T content.Entity, M any] interface {
	*M
	ToDomain() T
	FromDomain(T)
}

// Column maps a query parameter to a table column.
type Column struct {
	Name string
	// Bool parses the filter value with strconv.ParseBool.
	Bool bool
}

// ListOptions describes how a resource may be searched, filtered and sorted.
// Keys of SortColumns and Filters are the names used in API query strings.
type ListOptions struct {
	Resource      string
	SearchColumns []string
	SortColumns   map[string]string
	Filters       map[string]Column
	DefaultSort   string
	DefaultDesc   bool
}

type gormContentRepository[T content.Entity, M any, PM recordModel[T, M]] struct {
	db     *gorm.DB
	logger logger.Logger
	opts   ListOptions
}

// NewGormContentRepository creates a new GORM-based content.Repository for the
// entity T stored through model M.
func NewGormContentRepository[T content.Entity, M any, PM recordModel[T, M]](db *gorm.DB, logger logger.Logger, opts ListOptions) (content.Repository[T], error) {
	if db == nil {
		return nil, fmt.Errorf("%s repository: nil database handle", opts.Resource)
	}
	if _, ok := opts.SortColumns[opts.DefaultSort]; !ok {
		return nil, fmt.Errorf("%s repository: default sort %q is not sortable", opts.Resource, opts.DefaultSort)
	}
	return &gormContentRepository[T, M, PM]{
		db:     db,
		logger: logger,
		opts:   opts,
	}, nil
}

func (r *gormContentRepository[T, M, PM]) Create(ctx context.Context, entity T) error {
	if err := entity.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := PM(new(M))
	model.FromDomain(entity)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return r.translate(err, "create")
	}

	r.logger.Info("Created "+r.opts.Resource, "id", entity.GetID())
	return nil
}

func (r *gormContentRepository[T, M, PM]) List(ctx context.Context, query *content.ListQuery) ([]T, error) {
	if query == nil {
		query = content.NewListQuery()
	}
	if err := query.Validate(); err != nil {
		return nil, err
	}

	dbQuery, err := r.filtered(r.db.WithContext(ctx).Model(PM(new(M))), query)
	if err != nil {
		return nil, err
	}

	sortBy := query.SortBy
	if sortBy == "" {
		sortBy = r.opts.DefaultSort
	}
	column, ok := r.opts.SortColumns[sortBy]
	if !ok {
		return nil, content.NewValidationError("cannot sort %s by %q", r.opts.Resource, sortBy)
	}
	desc := query.SortOrder == content.SortDesc
	if query.SortOrder == "" && query.SortBy == "" {
		desc = r.opts.DefaultDesc
	}
	dbQuery = dbQuery.
		Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: desc}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "created_at"}})

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	var modelList []M
	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, r.translate(err, "list")
	}

	domainList := make([]T, len(modelList))
	for i := range modelList {
		domainList[i] = PM(&modelList[i]).ToDomain()
	}
	return domainList, nil
}

func (r *gormContentRepository[T, M, PM]) Count(ctx context.Context, query *content.ListQuery) (int64, error) {
	if query == nil {
		query = content.NewListQuery()
	}
	if err := query.Validate(); err != nil {
		return 0, err
	}

	dbQuery, err := r.filtered(r.db.WithContext(ctx).Model(PM(new(M))), query)
	if err != nil {
		return 0, err
	}

	var count int64
	if err := dbQuery.Count(&count).Error; err != nil {
		return 0, r.translate(err, "count")
	}
	return count, nil
}

func (r *gormContentRepository[T, M, PM]) GetByID(ctx context.Context, id string) (T, error) {
	var zero T
	model := PM(new(M))
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return zero, fmt.Errorf("%s with ID %s: %w", r.opts.Resource, id, content.ErrNotFound)
		}
		return zero, r.translate(err, "fetch")
	}
	return model.ToDomain(), nil
}

func (r *gormContentRepository[T, M, PM]) UpdateByID(ctx context.Context, entity T) error {
	if err := entity.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := PM(new(M))
	model.FromDomain(entity)

	res := r.db.WithContext(ctx).
		Model(PM(new(M))).
		Where("id = ?", entity.GetID()).
		Select("*").
		Omit("id", "created_at").
		Updates(model)
	if res.Error != nil {
		return r.translate(res.Error, "update")
	}
	if res.RowsAffected == 0 {
		// MySQL reports zero affected rows when nothing changed
		exists, err := r.exists(ctx, entity.GetID())
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("%s with ID %s: %w", r.opts.Resource, entity.GetID(), content.ErrNotFound)
		}
	}

	r.logger.Info("Updated "+r.opts.Resource, "id", entity.GetID())
	return nil
}

func (r *gormContentRepository[T, M, PM]) DeleteByID(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(PM(new(M)))
	if res.Error != nil {
		return r.translate(res.Error, "delete")
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%s with ID %s: %w", r.opts.Resource, id, content.ErrNotFound)
	}

	r.logger.Info("Deleted "+r.opts.Resource, "id", id)
	return nil
}

func (r *gormContentRepository[T, M, PM]) exists(ctx context.Context, id string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(PM(new(M))).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, r.translate(err, "fetch")
	}
	return count > 0, nil
}

// likeEscape is used instead of a backslash, whose meaning inside string
// literals differs between sqlite, postgres and mysql.
const likeEscape = '!'

// likeEscaper makes LIKE wildcards in user input match literally.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

func (r *gormContentRepository[T, M, PM]) filtered(dbQuery *gorm.DB, query *content.ListQuery) (*gorm.DB, error) {
	for key, value := range query.Filters {
		column, ok := r.opts.Filters[key]
		if !ok {
			return nil, content.NewValidationError("cannot filter %s by %q", r.opts.Resource, key)
		}
		if column.Bool {
			b, err := strconv.ParseBool(value)
			if err != nil {
				return nil, content.NewValidationError("filter %q expects a boolean", key)
			}
			dbQuery = dbQuery.Where(clause.Eq{Column: clause.Column{Name: column.Name}, Value: b})
			continue
		}
		dbQuery = dbQuery.Where(clause.Eq{Column: clause.Column{Name: column.Name}, Value: value})
	}

	search := strings.TrimSpace(query.Search)
	if search != "" && len(r.opts.SearchColumns) > 0 {
		pattern := "%" + likeEscaper.Replace(strings.ToLower(search)) + "%"
		conditions := make([]string, len(r.opts.SearchColumns))
		args := make([]interface{}, len(r.opts.SearchColumns))
		for i, column := range r.opts.SearchColumns {
			conditions[i] = fmt.Sprintf("LOWER(%s) LIKE ? ESCAPE '%c'", column, likeEscape)
			args[i] = pattern
		}
		dbQuery = dbQuery.Where("("+strings.Join(conditions, " OR ")+")", args...)
	}

	return dbQuery, nil
}

func (r *gormContentRepository[T, M, PM]) translate(err error, op string) error {
	return translateError(err, op, r.opts.Resource)
}

func translateError(err error, op, resource string) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", resource, content.ErrNotFound)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%s already exists: %w", resource, content.ErrConflict)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%s references a missing record: %w", resource, content.ErrConflict)
	default:
		return fmt.Errorf("failed to %s %s: %w", op, resource, err)
	}
}
