package usecase

import (
	"medical-scheduling-api/internal/converter"
	"medical-scheduling-api/internal/delivery/dto"
	"medical-scheduling-api/internal/domain/entity"
	"medical-scheduling-api/internal/domain/repository"
	"medical-scheduling-api/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type PatientUsecase = CrudUsecase[dto.PatientRequest, dto.UpdatePatientPartialRequest, dto.PatientResponse]

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	auditService service.AuditService,
	cache service.CacheService,
) PatientUsecase {
	var repo repository.CrudRepository[entity.Patient] = patientRepo
	desc := EntityDescriptor[entity.Patient, dto.PatientRequest, dto.UpdatePatientPartialRequest, dto.PatientResponse]{
		Name:          "Patient",
		AuditEntity:   "patient",
		New:           converter.PatientFromRequest,
		Apply:         converter.ApplyPatientRequest,
		PartialFields: converter.PatientPartialFields,
		ToResponse:    converter.PatientToResponse,
	}

	return newCrudUsecase(db, log, repo, auditService, cache, desc)
}
