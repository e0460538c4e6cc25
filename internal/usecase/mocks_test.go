package usecase

import (
	"context"
	"io"
	"testing"

	"medical-scheduling-api/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type mockCrudRepository[T any] struct {
	mock.Mock
}

func (m *mockCrudRepository[T]) Create(ctx context.Context, db *gorm.DB, e *T) error {
	return m.Called(ctx, db, e).Error(0)
}

func (m *mockCrudRepository[T]) FindByID(ctx context.Context, db *gorm.DB, id int64) (*T, error) {
	args := m.Called(ctx, db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *mockCrudRepository[T]) FindAll(ctx context.Context, db *gorm.DB, filter entity.ListFilter) ([]T, int64, error) {
	args := m.Called(ctx, db, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]T), args.Get(1).(int64), args.Error(2)
}

func (m *mockCrudRepository[T]) Update(ctx context.Context, db *gorm.DB, e *T) error {
	return m.Called(ctx, db, e).Error(0)
}

func (m *mockCrudRepository[T]) Delete(ctx context.Context, db *gorm.DB, id int64) (int64, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockCrudRepository[T]) SetStatus(ctx context.Context, db *gorm.DB, id int64, status bool) (bool, error) {
	args := m.Called(ctx, db, id, status)
	return args.Bool(0), args.Error(1)
}

func (m *mockCrudRepository[T]) UpdatePartial(ctx context.Context, db *gorm.DB, id int64, fields map[string]interface{}) (bool, error) {
	args := m.Called(ctx, db, id, fields)
	return args.Bool(0), args.Error(1)
}

type mockAuditService struct {
	mock.Mock
}

func (m *mockAuditService) LogCreate(ctx context.Context, tx *gorm.DB, entityName string, entityID int64, newValue interface{}) error {
	return m.Called(ctx, tx, entityName, entityID, newValue).Error(0)
}

func (m *mockAuditService) LogUpdate(ctx context.Context, tx *gorm.DB, action string, entityName string, entityID int64, oldValue, newValue interface{}) error {
	return m.Called(ctx, tx, action, entityName, entityID, oldValue, newValue).Error(0)
}

func (m *mockAuditService) LogStatus(ctx context.Context, tx *gorm.DB, entityName string, entityID int64, oldStatus, newStatus bool) error {
	return m.Called(ctx, tx, entityName, entityID, oldStatus, newStatus).Error(0)
}

func (m *mockAuditService) LogDelete(ctx context.Context, tx *gorm.DB, entityName string, entityID int64, oldValue interface{}) error {
	return m.Called(ctx, tx, entityName, entityID, oldValue).Error(0)
}

type mockCacheService struct {
	mock.Mock
}

func (m *mockCacheService) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	args := m.Called(ctx, key, dest)
	return args.Bool(0), args.Error(1)
}

func (m *mockCacheService) Set(ctx context.Context, key string, value interface{}) error {
	return m.Called(ctx, key, value).Error(0)
}

func (m *mockCacheService) Delete(ctx context.Context, keys ...string) error {
	return m.Called(ctx, keys).Error(0)
}

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, sqlMock
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
