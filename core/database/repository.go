package database

import (
	"context"
	"errors"

	"game-catalog/core/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository stores cache records of type T keyed by a source identifier column.
type Repository[T any] struct {
	db  *gorm.DB
	key string
}

// NewRepository creates a repository over the table of T. key is the identifier column.
func NewRepository[T any](db *gorm.DB, key string) *Repository[T] {
	return &Repository[T]{db: db, key: key}
}

func (r *Repository[T]) where(id int64) clause.Expression {
	return clause.Eq{Column: clause.Column{Name: r.key}, Value: id}
}

// ReadByID returns the cached record, or nil when none exists.
func (r *Repository[T]) ReadByID(ctx context.Context, id int64) (*T, error) {
	var rec T
	err := r.db.WithContext(ctx).Where(r.where(id)).Take(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errs.Wrap(errs.RepositoryFault, err, "read %s %d", r.key, id)
	}
	return &rec, nil
}

// WriteByID inserts rec or replaces every column of the existing row.
func (r *Repository[T]) WriteByID(ctx context.Context, rec *T) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(rec).Error
	if err != nil {
		return errs.Wrap(errs.RepositoryFault, err, "write %s record", r.key)
	}
	return nil
}

// Create inserts rec and fails when the identifier already exists.
func (r *Repository[T]) Create(ctx context.Context, rec *T) error {
	err := r.db.WithContext(ctx).Create(rec).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errs.Wrap(errs.InvalidParameters, err, "%s record already exists", r.key)
	}
	if err != nil {
		return errs.Wrap(errs.RepositoryFault, err, "create %s record", r.key)
	}
	return nil
}

// DeleteByID removes the record. Deleting a missing record is NotFound.
func (r *Repository[T]) DeleteByID(ctx context.Context, id int64) error {
	var rec T
	res := r.db.WithContext(ctx).Where(r.where(id)).Delete(&rec)
	if res.Error != nil {
		return errs.Wrap(errs.RepositoryFault, res.Error, "delete %s %d", r.key, id)
	}
	if res.RowsAffected == 0 {
		return errs.New(errs.NotFound, "%s %d is not in the cache", r.key, id)
	}
	return nil
}

// Count returns the number of cached records.
func (r *Repository[T]) Count(ctx context.Context) (int64, error) {
	var n int64
	var rec T
	if err := r.db.WithContext(ctx).Model(&rec).Count(&n).Error; err != nil {
		return 0, errs.Wrap(errs.RepositoryFault, err, "count %s records", r.key)
	}
	return n, nil
}

// Migrate creates or updates the tables of the given models.
func Migrate(db *gorm.DB, models ...any) error {
	return db.AutoMigrate(models...)
}
