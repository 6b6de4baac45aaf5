package models

import (
	"time"

	"github.com/kdam/portfolio/internal/constant"
)

// Photo 作品集图片，URL 为服务端生成的文件名
type Photo struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	URL       string    `json:"url" gorm:"column:url;size:255;uniqueIndex;not null"`
	Title     string    `json:"title" gorm:"size:100;not null"`
	CreatedAt time.Time `json:"created_at"`
}

func (Photo) TableName() string {
	return constant.TablePrefix + "photos"
}
