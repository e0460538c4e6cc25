package repository

import (
	"context"
	"errors"

	"medical-scheduling-api/internal/domain/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// protectedColumns are never written by a partial update.
var protectedColumns = []string{"id", "created_at", "status"}

type crudRepository[T any] struct {
	preloads []string
}

func newCrudRepository[T any](preloads ...string) *crudRepository[T] {
	return &crudRepository[T]{preloads: preloads}
}

func (r *crudRepository[T]) withPreloads(db *gorm.DB) *gorm.DB {
	for _, p := range r.preloads {
		db = db.Preload(p)
	}
	return db
}

func (r *crudRepository[T]) Create(ctx context.Context, db *gorm.DB, e *T) error {
	if m, ok := any(e).(entity.Model); ok {
		m.SetActive(true)
	}
	return db.WithContext(ctx).Omit(clause.Associations).Create(e).Error
}

func (r *crudRepository[T]) FindByID(ctx context.Context, db *gorm.DB, id int64) (*T, error) {
	var e T
	err := r.withPreloads(db.WithContext(ctx)).First(&e, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *crudRepository[T]) FindAll(ctx context.Context, db *gorm.DB, filter entity.ListFilter) ([]T, int64, error) {
	filter = filter.Normalize()

	scoped := func() *gorm.DB {
		q := db.WithContext(ctx).Model(new(T))
		if filter.Status != nil {
			q = q.Where("status = ?", *filter.Status)
		}
		return q
	}

	var total int64
	if err := scoped().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []T
	err := r.withPreloads(scoped()).
		Order("id ASC").
		Limit(filter.Limit).
		Offset(filter.Offset()).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

// Update saves every column of e except created_at and status. Associations
// are not touched; status only changes through SetStatus.
func (r *crudRepository[T]) Update(ctx context.Context, db *gorm.DB, e *T) error {
	return db.WithContext(ctx).Omit(clause.Associations, "status").Save(e).Error
}

func (r *crudRepository[T]) Delete(ctx context.Context, db *gorm.DB, id int64) (int64, error) {
	result := db.WithContext(ctx).Delete(new(T), id)
	return result.RowsAffected, result.Error
}

func (r *crudRepository[T]) SetStatus(ctx context.Context, db *gorm.DB, id int64, status bool) (bool, error) {
	existing, err := r.findPlain(ctx, db, id)
	if err != nil || existing == nil {
		return false, err
	}

	if err := db.WithContext(ctx).Model(existing).Update("status", status).Error; err != nil {
		return false, err
	}
	return true, nil
}

func (r *crudRepository[T]) UpdatePartial(ctx context.Context, db *gorm.DB, id int64, fields map[string]interface{}) (bool, error) {
	existing, err := r.findPlain(ctx, db, id)
	if err != nil || existing == nil {
		return false, err
	}

	columns := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		columns[k] = v
	}
	for _, c := range protectedColumns {
		delete(columns, c)
	}

	// An empty payload still counts as a modification and refreshes updated_at.
	if len(columns) == 0 {
		columns["updated_at"] = db.NowFunc()
	}

	if err := db.WithContext(ctx).Model(existing).Updates(columns).Error; err != nil {
		return false, err
	}
	return true, nil
}

func (r *crudRepository[T]) findPlain(ctx context.Context, db *gorm.DB, id int64) (*T, error) {
	var e T
	err := db.WithContext(ctx).First(&e, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}
