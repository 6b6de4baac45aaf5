package models

import (
	"github.com/kdam/portfolio/internal/constant"
)

// User 账号
type User struct {
	ID       uint     `json:"id" gorm:"primaryKey"`
	Login    string   `json:"login" gorm:"size:100;uniqueIndex;not null"`
	Password string   `json:"-" gorm:"size:255;not null"`
	RoleID   uint     `json:"role_id" gorm:"not null;index"`
	Role     Role     `json:"role" gorm:"foreignKey:RoleID"`
	Info     UserInfo `json:"info" gorm:"foreignKey:UserID"`
}

func (User) TableName() string {
	return constant.TablePrefix + "users"
}

// IsAdmin 判断是否管理员
func (u User) IsAdmin() bool {
	return u.RoleID == constant.RoleAdminID
}

// UserInfo 用户资料，与 User 一对一
type UserInfo struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	UserID uint   `json:"user_id" gorm:"uniqueIndex;not null"`
	Name   string `json:"name" gorm:"size:100;not null"`
	Mail   string `json:"mail" gorm:"size:100;not null"`
}

func (UserInfo) TableName() string {
	return constant.TablePrefix + "user_info"
}

// Role 角色
type Role struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:50;uniqueIndex;not null"`
}

func (Role) TableName() string {
	return constant.TablePrefix + "roles"
}
