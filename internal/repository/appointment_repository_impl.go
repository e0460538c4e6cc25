package repository

import (
	"medical-scheduling-api/internal/domain/entity"
	domainRepo "medical-scheduling-api/internal/domain/repository"
)

type appointmentRepository struct {
	*crudRepository[entity.Appointment]
}

// NewAppointmentRepository preloads the referenced patient and doctor on reads.
func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{crudRepository: newCrudRepository[entity.Appointment]("Patient", "Doctor")}
}
