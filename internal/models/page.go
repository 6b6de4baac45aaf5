package models

import (
	"github.com/kdam/portfolio/internal/constant"
)

// Page 静态内容页，按 slug 访问
type Page struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Slug     string `json:"slug" gorm:"size:100;uniqueIndex;not null"`
	Title    string `json:"title" gorm:"size:100;not null"`
	Content  string `json:"content" gorm:"type:text"`
	InMenu   bool   `json:"in_menu" gorm:"default:false"`
	Position int    `json:"position" gorm:"default:0"`
}

func (Page) TableName() string {
	return constant.TablePrefix + "pages"
}
