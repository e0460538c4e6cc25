package service

import (
	"context"

	"medical-scheduling-api/internal/domain/entity"
	"medical-scheduling-api/internal/domain/repository"
	"medical-scheduling-api/pkg/requestid"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AuditService writes audit_logs rows inside the caller's transaction.
type AuditService interface {
	LogCreate(ctx context.Context, tx *gorm.DB, entityName string, entityID int64, newValue interface{}) error
	LogUpdate(ctx context.Context, tx *gorm.DB, action string, entityName string, entityID int64, oldValue, newValue interface{}) error
	LogStatus(ctx context.Context, tx *gorm.DB, entityName string, entityID int64, oldStatus, newStatus bool) error
	LogDelete(ctx context.Context, tx *gorm.DB, entityName string, entityID int64, oldValue interface{}) error
}

type auditService struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		log:       log,
		auditRepo: auditRepo,
	}
}

// LogCreate logs a create action
func (s *auditService) LogCreate(ctx context.Context, tx *gorm.DB, entityName string, entityID int64, newValue interface{}) error {
	return s.write(ctx, tx, entity.AuditAction(entityName, entity.AuditVerbCreate), entityName, entityID, nil, newValue)
}

// LogUpdate logs an update action with old and new values
func (s *auditService) LogUpdate(ctx context.Context, tx *gorm.DB, action string, entityName string, entityID int64, oldValue, newValue interface{}) error {
	return s.write(ctx, tx, action, entityName, entityID, oldValue, newValue)
}

func (s *auditService) LogStatus(ctx context.Context, tx *gorm.DB, entityName string, entityID int64, oldStatus, newStatus bool) error {
	return s.write(ctx, tx, entity.AuditAction(entityName, entity.AuditVerbStatus), entityName, entityID,
		map[string]interface{}{"status": oldStatus},
		map[string]interface{}{"status": newStatus},
	)
}

// LogDelete logs a delete action with old value
func (s *auditService) LogDelete(ctx context.Context, tx *gorm.DB, entityName string, entityID int64, oldValue interface{}) error {
	return s.write(ctx, tx, entity.AuditAction(entityName, entity.AuditVerbDelete), entityName, entityID, oldValue, nil)
}

func (s *auditService) write(ctx context.Context, tx *gorm.DB, action, entityName string, entityID int64, oldValue, newValue interface{}) error {
	auditLog := &entity.AuditLog{
		Action:   action,
		Entity:   entityName,
		EntityID: entityID,
		Metadata: entity.JSON{
			"entity":    entityName,
			"entity_id": entityID,
			"old_value": oldValue,
			"new_value": newValue,
		},
	}
	if id, ok := requestid.FromContext(ctx); ok {
		auditLog.RequestID = id
	}

	if err := s.auditRepo.Create(ctx, tx, auditLog); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
		return err
	}

	return nil
}
