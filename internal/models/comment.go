package models

import (
	"time"

	"github.com/kdam/portfolio/internal/constant"
)

// Comment 留言
type Comment struct {
	ID      uint      `json:"id" gorm:"primaryKey"`
	Content string    `json:"content" gorm:"type:text;not null"`
	UserID  uint      `json:"user_id" gorm:"index;not null"`
	Date    time.Time `json:"date" gorm:"autoCreateTime"`
}

func (Comment) TableName() string {
	return constant.TablePrefix + "comments"
}

// CommentWithAuthor 带作者名的留言（连接 user_info）
type CommentWithAuthor struct {
	Comment
	Name string `json:"name"`
}
