package database

import (
	"github.com/kdam/portfolio/internal/models"

	"gorm.io/gorm"
)

// Migrate 创建或更新全部表结构
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.UserInfo{},
		&models.Page{},
		&models.Photo{},
		&models.Comment{},
	)
}
