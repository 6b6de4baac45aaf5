package repository_test

import (
	"context"
	"testing"

	"github.com/kdam/portfolio/internal/constant"
	"github.com/kdam/portfolio/internal/database"
	"github.com/kdam/portfolio/internal/models"
	"github.com/kdam/portfolio/internal/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// plainHasher 测试用哈希，避免 bcrypt 的耗时
type plainHasher struct{}

func (plainHasher) Hash(plain string) (string, error) {
	return "hashed:" + plain, nil
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.OpenInMemory()
	require.NoError(t, err)
	require.NoError(t, db.Create(&[]models.Role{
		{ID: constant.RoleAdminID, Name: constant.RoleAdmin},
		{ID: constant.RoleUserID, Name: constant.RoleUser},
	}).Error)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func createUser(t *testing.T, repo *repository.UserRepository, login string) *models.User {
	t.Helper()
	user := &models.User{
		Login:  login,
		RoleID: constant.RoleUserID,
		Info:   models.UserInfo{Name: "Name " + login, Mail: login + "@example.com"},
	}
	require.NoError(t, repo.Save(context.Background(), user, "password123"))
	require.NotZero(t, user.ID)
	return user
}
