package repository

import "errors"

var (
	// ErrUserNotFound 用户不存在或未分配角色
	ErrUserNotFound = errors.New("repository: user not found")
	// ErrInvalidComment 新增留言缺少内容或作者
	ErrInvalidComment = errors.New("repository: comment requires content and user id")
)
