package service

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"medical-scheduling-api/internal/domain/entity"
	"medical-scheduling-api/pkg/requestid"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
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

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestAuditService_LogStatus(t *testing.T) {
	repo := new(mockAuditLogRepository)
	svc := NewAuditService(quietLogger(), repo)
	ctx := requestid.WithRequestID(context.Background(), "req-1")

	repo.On("Create", ctx, (*gorm.DB)(nil), mock.MatchedBy(func(l *entity.AuditLog) bool {
		return l.Action == "patient.status" &&
			l.Entity == "patient" &&
			l.EntityID == 7 &&
			l.RequestID == "req-1" &&
			l.Metadata["new_value"].(map[string]interface{})["status"] == false
	})).Return(nil)

	require.NoError(t, svc.LogStatus(ctx, nil, "patient", 7, true, false))
	repo.AssertExpectations(t)
}

func TestAuditService_PropagatesRepositoryError(t *testing.T) {
	repo := new(mockAuditLogRepository)
	svc := NewAuditService(quietLogger(), repo)
	boom := errors.New("insert failed")

	repo.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(boom)

	err := svc.LogDelete(context.Background(), nil, "doctor", 3, map[string]interface{}{"name": "Dr. House"})
	assert.ErrorIs(t, err, boom)
}

func TestEntityCacheKey(t *testing.T) {
	assert.Equal(t, "appointment:42", EntityCacheKey("appointment", 42))
}

func TestNoopCacheService(t *testing.T) {
	cache := NewNoopCacheService()
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "patient:1", map[string]string{"name": "Ana"}))

	var dest map[string]string
	hit, err := cache.Get(ctx, "patient:1", &dest)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.NoError(t, cache.Delete(ctx, "patient:1"))
}

func TestRedisCacheService_UnreachableServerReturnsError(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { client.Close() })

	cache := NewRedisCacheService(client, time.Minute, quietLogger())

	var dest map[string]string
	hit, err := cache.Get(context.Background(), "patient:1", &dest)
	assert.Error(t, err)
	assert.False(t, hit)
	assert.NoError(t, cache.Delete(context.Background()))
}
