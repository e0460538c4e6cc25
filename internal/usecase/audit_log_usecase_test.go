package usecase

import (
	"context"
	"testing"

	"medical-scheduling-api/internal/delivery/dto"
	"medical-scheduling-api/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type mockAuditLogRepository struct {
	mock.Mock
}

func (m *mockAuditLogRepository) Create(ctx context.Context, db *gorm.DB, log *entity.AuditLog) error {
	return m.Called(ctx, db, log).Error(0)
}

func (m *mockAuditLogRepository) FindAll(ctx context.Context, db *gorm.DB, filter entity.ListFilter) ([]entity.AuditLog, int64, error) {
	args := m.Called(ctx, db, filter)
	return args.Get(0).([]entity.AuditLog), args.Get(1).(int64), args.Error(2)
}

func (m *mockAuditLogRepository) FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.AuditLog, error) {
	args := m.Called(ctx, db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.AuditLog), args.Error(1)
}

func TestAuditLogUsecase_GetNotFound(t *testing.T) {
	db, _ := newMockDB(t)
	repo := new(mockAuditLogRepository)
	uc := NewAuditLogUsecase(db, quietLogger(), repo)

	repo.On("FindByID", mock.Anything, mock.Anything, int64(8)).Return(nil, nil)

	_, err := uc.Get(context.Background(), 8)
	require.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "AuditLog with ID 8 not found", err.Error())
}

func TestAuditLogUsecase_List(t *testing.T) {
	db, _ := newMockDB(t)
	repo := new(mockAuditLogRepository)
	uc := NewAuditLogUsecase(db, quietLogger(), repo)

	repo.On("FindAll", mock.Anything, mock.Anything, entity.ListFilter{Page: 1, Limit: 20}).
		Return([]entity.AuditLog{{ID: 1, Action: "doctor.create", Entity: "doctor", EntityID: 4}}, int64(1), nil)

	logs, total, err := uc.List(context.Background(), dto.ListQuery{Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, logs, 1)
	assert.Equal(t, "doctor.create", logs[0].Action)
}
