package repository

import (
	"context"

	"medical-scheduling-api/internal/domain/entity"

	"gorm.io/gorm"
)

// CrudRepository is the data access contract shared by patients, doctors
// and appointments. The db argument is either the pool or an open transaction.
type CrudRepository[T any] interface {
	Create(ctx context.Context, db *gorm.DB, e *T) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*T, error)
	FindAll(ctx context.Context, db *gorm.DB, filter entity.ListFilter) ([]T, int64, error)
	Update(ctx context.Context, db *gorm.DB, e *T) error
	Delete(ctx context.Context, db *gorm.DB, id int64) (int64, error)

	// SetStatus flips the active flag. It reports false when id does not exist.
	SetStatus(ctx context.Context, db *gorm.DB, id int64, status bool) (bool, error)

	// UpdatePartial writes only the given columns. It reports false when id does not exist.
	UpdatePartial(ctx context.Context, db *gorm.DB, id int64, fields map[string]interface{}) (bool, error)
}

type PatientRepository interface {
	CrudRepository[entity.Patient]
}

type DoctorRepository interface {
	CrudRepository[entity.Doctor]
}

type AppointmentRepository interface {
	CrudRepository[entity.Appointment]
}
