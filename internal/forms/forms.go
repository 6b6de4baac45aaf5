// Package forms declares one request struct per form and validation group,
// bound by gin and validated by go-playground/validator.
package forms

import (
	"mime/multipart"
)

// LoginForm 登录
type LoginForm struct {
	Login    string `form:"login" binding:"required,max=100"`
	Password string `form:"password" binding:"required,max=72"`
}

// UserAddForm 注册新账号，角色固定为普通用户
type UserAddForm struct {
	Login          string `form:"login" binding:"required,min=6,max=100"`
	Password       string `form:"password" binding:"required,min=8,max=72"`
	SecondPassword string `form:"second_password" binding:"required,eqfield=Password"`
	Name           string `form:"name" binding:"required,min=2,max=100"`
	Mail           string `form:"mail" binding:"required,email,max=100"`
}

// UserEditForm 管理员编辑用户，密码留空表示不修改
type UserEditForm struct {
	Login          string `form:"login" binding:"required,min=6,max=100"`
	Password       string `form:"password" binding:"omitempty,min=8,max=72"`
	SecondPassword string `form:"second_password" binding:"eqfield=Password"`
	Name           string `form:"name" binding:"required,min=2,max=100"`
	Mail           string `form:"mail" binding:"required,email,max=100"`
	RoleID         uint   `form:"role_id" binding:"required,oneof=1 2"`
}

// UserViewForm 用户编辑自己的资料，不含登录名和角色
type UserViewForm struct {
	Password       string `form:"password" binding:"omitempty,min=8,max=72"`
	SecondPassword string `form:"second_password" binding:"eqfield=Password"`
	Name           string `form:"name" binding:"required,min=2,max=100"`
	Mail           string `form:"mail" binding:"required,email,max=100"`
}

// PageAddForm 新增页面
type PageAddForm struct {
	Slug     string `form:"slug" binding:"required,min=2,max=100,slug"`
	Title    string `form:"title" binding:"required,min=2,max=100"`
	Content  string `form:"content" binding:"required,min=2,max=5000"`
	InMenu   bool   `form:"in_menu"`
	Position int    `form:"position" binding:"gte=0"`
}

// PageEditForm 编辑页面，slug 不可修改
type PageEditForm struct {
	Title    string `form:"title" binding:"required,min=2,max=100"`
	Content  string `form:"content" binding:"required,min=2,max=5000"`
	InMenu   bool   `form:"in_menu"`
	Position int    `form:"position" binding:"gte=0"`
}

// PhotoAddForm 上传图片
type PhotoAddForm struct {
	Title string                `form:"title" binding:"required,min=6,max=100"`
	Photo *multipart.FileHeader `form:"photo" binding:"required"`
}

// CommentForm 新增或编辑留言
type CommentForm struct {
	Content string `form:"content" binding:"required,max=400"`
}

// DeleteForm 按 ID 确认删除
type DeleteForm struct {
	ID uint `form:"id" binding:"required"`
}

// SlugForm 按 slug 确认删除
type SlugForm struct {
	Slug string `form:"slug" binding:"required"`
}
