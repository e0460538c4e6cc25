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

type AppointmentUsecase = CrudUsecase[dto.AppointmentRequest, dto.UpdateAppointmentPartialRequest, dto.AppointmentResponse]

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	auditService service.AuditService,
	cache service.CacheService,
) AppointmentUsecase {
	var repo repository.CrudRepository[entity.Appointment] = appointmentRepo
	desc := EntityDescriptor[entity.Appointment, dto.AppointmentRequest, dto.UpdateAppointmentPartialRequest, dto.AppointmentResponse]{
		Name:          "Appointment",
		AuditEntity:   "appointment",
		Uncached:      true,
		New:           converter.AppointmentFromRequest,
		Apply:         converter.ApplyAppointmentRequest,
		PartialFields: converter.AppointmentPartialFields,
		ToResponse:    converter.AppointmentToResponse,
	}

	return newCrudUsecase(db, log, repo, auditService, cache, desc)
}
