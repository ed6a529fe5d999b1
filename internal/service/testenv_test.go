package service

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"mini-mall-api/internal/core/auth"
	"mini-mall-api/internal/domain"
	"mini-mall-api/internal/repo"
	"mini-mall-api/pkg/utils"
)

// newTestDB 内存 sqlite，单连接串行执行，避免并发测试里的锁冲突
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&domain.User{},
		&domain.Category{},
		&domain.Product{},
		&domain.Order{},
		&domain.OrderItem{},
		&domain.Post{},
	))
	return db
}

func newTestServices(t *testing.T) (*Services, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	jwter := &auth.JWTer{Secret: []byte("test-secret"), Issuer: "mall-test", TTL: time.Hour}
	svcs := New(repo.New(db), Options{JWTer: jwter}, zap.NewNop())
	return svcs, db
}

func mustUser(t *testing.T, db *gorm.DB, username string, admin bool) *domain.User {
	t.Helper()

	u := &domain.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: utils.HashPassword("secret123"),
		IsActive:     true,
		IsAdmin:      admin,
	}
	require.NoError(t, db.WithContext(context.Background()).Create(u).Error)
	return u
}

func mustProduct(t *testing.T, db *gorm.DB, name, price string) *domain.Product {
	t.Helper()

	p := &domain.Product{
		Name:          name,
		Price:         decimal.RequireFromString(price),
		StockQuantity: 100,
		IsActive:      true,
	}
	require.NoError(t, db.WithContext(context.Background()).Create(p).Error)
	return p
}
