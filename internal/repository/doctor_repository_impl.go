package repository

import (
	"medical-scheduling-api/internal/domain/entity"
	domainRepo "medical-scheduling-api/internal/domain/repository"
)

type doctorRepository struct {
	*crudRepository[entity.Doctor]
}

func NewDoctorRepository() domainRepo.DoctorRepository {
	return &doctorRepository{crudRepository: newCrudRepository[entity.Doctor]()}
}
