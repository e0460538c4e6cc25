package repository

import (
	"medical-scheduling-api/internal/domain/entity"
	domainRepo "medical-scheduling-api/internal/domain/repository"
)

type patientRepository struct {
	*crudRepository[entity.Patient]
}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{crudRepository: newCrudRepository[entity.Patient]()}
}
