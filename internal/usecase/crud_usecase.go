package usecase

import (
	"context"

	"medical-scheduling-api/internal/delivery/dto"
	"medical-scheduling-api/internal/domain/entity"
	"medical-scheduling-api/internal/domain/repository"
	"medical-scheduling-api/internal/service"
	"medical-scheduling-api/pkg/pgerror"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// CrudUsecase is the business contract shared by every entity. C is the
// create/full-update request, P the partial-update request and R the response.
type CrudUsecase[C any, P dto.Identifiable, R any] interface {
	EntityName() string
	Create(ctx context.Context, req *C) (*R, error)
	Get(ctx context.Context, id int64) (*R, error)
	List(ctx context.Context, query dto.ListQuery) ([]R, int64, error)
	Update(ctx context.Context, id int64, req *C) (*R, error)
	Delete(ctx context.Context, id int64) error

	// UpdatePartial reports false when the id does not exist.
	UpdatePartial(ctx context.Context, req *P) (bool, error)

	// DeleteLogic sets the active flag. A missing id is a NotFoundError.
	DeleteLogic(ctx context.Context, req *dto.DeleteLogicalRequest) (bool, error)
}

// EntityDescriptor binds one entity to its DTOs.
type EntityDescriptor[E any, C any, P any, R any] struct {
	// Name is used in client messages, e.g. "Patient".
	Name string
	// AuditEntity prefixes audit actions and cache keys, e.g. "patient".
	AuditEntity string
	// Uncached bypasses the read-through cache. Set it for responses that embed
	// other entities, since their updates never invalidate this entity's keys.
	Uncached bool

	New           func(req *C) *E
	Apply         func(e *E, req *C)
	PartialFields func(req *P) map[string]interface{}
	ToResponse    func(e *E) *R
}

const auditSavePoint = "audit"

type crudUsecase[E any, C any, P dto.Identifiable, R any] struct {
	db           *gorm.DB
	log          *logrus.Logger
	repo         repository.CrudRepository[E]
	auditService service.AuditService
	cache        service.CacheService
	desc         EntityDescriptor[E, C, P, R]
}

func newCrudUsecase[E any, C any, P dto.Identifiable, R any](
	db *gorm.DB,
	log *logrus.Logger,
	repo repository.CrudRepository[E],
	auditService service.AuditService,
	cache service.CacheService,
	desc EntityDescriptor[E, C, P, R],
) *crudUsecase[E, C, P, R] {
	if cache == nil || desc.Uncached {
		cache = service.NewNoopCacheService()
	}
	return &crudUsecase[E, C, P, R]{
		db:           db,
		log:          log,
		repo:         repo,
		auditService: auditService,
		cache:        cache,
		desc:         desc,
	}
}

func (u *crudUsecase[E, C, P, R]) EntityName() string {
	return u.desc.Name
}

func (u *crudUsecase[E, C, P, R]) Create(ctx context.Context, req *C) (*R, error) {
	if req == nil {
		return nil, NewInputError("body", "request body is required")
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	e := u.desc.New(req)
	if err := u.repo.Create(ctx, tx, e); err != nil {
		u.logWriteFailure("create", err)
		return nil, err
	}

	id := modelID(e)
	created, err := u.repo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to reload %s %d: %+v", u.desc.AuditEntity, id, err)
		return nil, err
	}
	if created == nil {
		created = e
	}

	resp := u.desc.ToResponse(created)
	u.writeAudit(tx, func() error {
		return u.auditService.LogCreate(ctx, tx, u.desc.AuditEntity, id, resp)
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return resp, nil
}

func (u *crudUsecase[E, C, P, R]) Get(ctx context.Context, id int64) (*R, error) {
	if id <= 0 {
		return nil, invalidID(id)
	}

	key := service.EntityCacheKey(u.desc.AuditEntity, id)
	var cached R
	if hit, err := u.cache.Get(ctx, key, &cached); err != nil {
		u.log.Warnf("Failed to read cache %s: %+v", key, err)
	} else if hit {
		return &cached, nil
	}

	e, err := u.repo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find %s: %+v", u.desc.AuditEntity, err)
		return nil, err
	}
	if e == nil {
		return nil, u.notFound(id)
	}

	resp := u.desc.ToResponse(e)
	if err := u.cache.Set(ctx, key, resp); err != nil {
		u.log.Warnf("Failed to write cache %s: %+v", key, err)
	}

	return resp, nil
}

func (u *crudUsecase[E, C, P, R]) List(ctx context.Context, query dto.ListQuery) ([]R, int64, error) {
	filter := entity.ListFilter{
		Page:   query.Page,
		Limit:  query.Limit,
		Status: query.Status,
	}

	items, total, err := u.repo.FindAll(ctx, u.db, filter)
	if err != nil {
		u.log.Warnf("Failed to find all %s: %+v", u.desc.AuditEntity, err)
		return nil, 0, err
	}

	responses := make([]R, 0, len(items))
	for i := range items {
		responses = append(responses, *u.desc.ToResponse(&items[i]))
	}

	return responses, total, nil
}

func (u *crudUsecase[E, C, P, R]) Update(ctx context.Context, id int64, req *C) (*R, error) {
	if id <= 0 {
		return nil, invalidID(id)
	}
	if req == nil {
		return nil, NewInputError("body", "request body is required")
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	existing, err := u.repo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find %s: %+v", u.desc.AuditEntity, err)
		return nil, err
	}
	if existing == nil {
		return nil, u.notFound(id)
	}

	// Capture old value for audit
	oldValue := u.desc.ToResponse(existing)

	u.desc.Apply(existing, req)
	if err := u.repo.Update(ctx, tx, existing); err != nil {
		u.logWriteFailure("update", err)
		return nil, err
	}

	updated, err := u.repo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to reload %s %d: %+v", u.desc.AuditEntity, id, err)
		return nil, err
	}
	if updated == nil {
		updated = existing
	}

	newValue := u.desc.ToResponse(updated)
	action := entity.AuditAction(u.desc.AuditEntity, entity.AuditVerbUpdate)
	u.writeAudit(tx, func() error {
		return u.auditService.LogUpdate(ctx, tx, action, u.desc.AuditEntity, id, oldValue, newValue)
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}
	u.invalidate(ctx, id)

	return newValue, nil
}

func (u *crudUsecase[E, C, P, R]) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return invalidID(id)
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	// Get entity for audit log before delete
	existing, err := u.repo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find %s: %+v", u.desc.AuditEntity, err)
		return err
	}
	if existing == nil {
		return u.notFound(id)
	}

	affected, err := u.repo.Delete(ctx, tx, id)
	if err != nil {
		u.logWriteFailure("delete", err)
		return err
	}
	if affected == 0 {
		return u.notFound(id)
	}

	u.writeAudit(tx, func() error {
		return u.auditService.LogDelete(ctx, tx, u.desc.AuditEntity, id, u.desc.ToResponse(existing))
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}
	u.invalidate(ctx, id)

	return nil
}

func (u *crudUsecase[E, C, P, R]) UpdatePartial(ctx context.Context, req *P) (bool, error) {
	if req == nil {
		return false, NewInputError("body", "request body is required")
	}
	id := (*req).GetID()
	if id <= 0 {
		return false, invalidID(id)
	}

	fields := u.desc.PartialFields(req)

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	ok, err := u.repo.UpdatePartial(ctx, tx, id, fields)
	if err != nil {
		u.logWriteFailure("partially update", err)
		return false, err
	}
	if !ok {
		return false, nil
	}

	action := entity.AuditAction(u.desc.AuditEntity, entity.AuditVerbUpdatePartial)
	u.writeAudit(tx, func() error {
		return u.auditService.LogUpdate(ctx, tx, action, u.desc.AuditEntity, id, nil, fields)
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return false, err
	}
	u.invalidate(ctx, id)

	return true, nil
}

func (u *crudUsecase[E, C, P, R]) DeleteLogic(ctx context.Context, req *dto.DeleteLogicalRequest) (bool, error) {
	if req == nil {
		return false, NewInputError("body", "request body is required")
	}
	if req.ID <= 0 {
		return false, invalidID(req.ID)
	}
	if req.Status == nil {
		return false, NewInputError("status", "status is required")
	}

	existing, err := u.repo.FindByID(ctx, u.db, req.ID)
	if err != nil {
		u.log.Warnf("Failed to find %s: %+v", u.desc.AuditEntity, err)
		return false, err
	}
	if existing == nil {
		return false, u.notFound(req.ID)
	}
	oldStatus := isActive(existing)

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	ok, err := u.repo.SetStatus(ctx, tx, req.ID, *req.Status)
	if err != nil {
		u.logWriteFailure("set status of", err)
		return false, err
	}
	if !ok {
		return false, nil
	}

	u.writeAudit(tx, func() error {
		return u.auditService.LogStatus(ctx, tx, u.desc.AuditEntity, req.ID, oldStatus, *req.Status)
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return false, err
	}
	u.invalidate(ctx, req.ID)

	return true, nil
}

func (u *crudUsecase[E, C, P, R]) notFound(id int64) error {
	return &NotFoundError{Entity: u.desc.Name, ID: id}
}

// writeAudit runs write under a savepoint. On PostgreSQL a failed statement
// aborts the whole transaction, so a failed audit insert is rolled back to the
// savepoint and the business write still commits.
func (u *crudUsecase[E, C, P, R]) writeAudit(tx *gorm.DB, write func() error) {
	if err := tx.SavePoint(auditSavePoint).Error; err != nil {
		u.log.Warnf("Failed to create audit savepoint: %+v", err)
		return
	}
	if err := write(); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
		if err := tx.RollbackTo(auditSavePoint).Error; err != nil {
			u.log.Warnf("Failed to roll back audit savepoint: %+v", err)
		}
	}
}

func (u *crudUsecase[E, C, P, R]) invalidate(ctx context.Context, id int64) {
	key := service.EntityCacheKey(u.desc.AuditEntity, id)
	if err := u.cache.Delete(ctx, key); err != nil {
		u.log.Warnf("Failed to invalidate cache %s: %+v", key, err)
	}
}

// logWriteFailure names the violated constraint and its kind when there is
// one. The error itself is still returned unclassified.
func (u *crudUsecase[E, C, P, R]) logWriteFailure(op string, err error) {
	fields := logrus.Fields{}
	if constraint, ok := pgerror.ConstraintName(err); ok {
		fields["constraint"] = constraint
	}
	switch {
	case pgerror.IsUniqueViolation(err):
		fields["violation"] = "unique"
	case pgerror.IsForeignKeyViolation(err):
		fields["violation"] = "foreign_key"
	}
	u.log.WithFields(fields).Warnf("Failed to %s %s: %+v", op, u.desc.AuditEntity, err)
}

func modelID[E any](e *E) int64 {
	if m, ok := any(e).(entity.Model); ok {
		return m.GetID()
	}
	return 0
}

func isActive[E any](e *E) bool {
	if m, ok := any(e).(entity.Model); ok {
		return m.IsActive()
	}
	return false
}
