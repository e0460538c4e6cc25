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

type DoctorUsecase = CrudUsecase[dto.DoctorRequest, dto.UpdateDoctorPartialRequest, dto.DoctorResponse]

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	auditService service.AuditService,
	cache service.CacheService,
) DoctorUsecase {
	var repo repository.CrudRepository[entity.Doctor] = doctorRepo
	desc := EntityDescriptor[entity.Doctor, dto.DoctorRequest, dto.UpdateDoctorPartialRequest, dto.DoctorResponse]{
		Name:          "Doctor",
		AuditEntity:   "doctor",
		New:           converter.DoctorFromRequest,
		Apply:         converter.ApplyDoctorRequest,
		PartialFields: converter.DoctorPartialFields,
		ToResponse:    converter.DoctorToResponse,
	}

	return newCrudUsecase(db, log, repo, auditService, cache, desc)
}
