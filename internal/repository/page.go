package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/kdam/portfolio/internal/logger"
	"github.com/kdam/portfolio/internal/models"

	"gorm.io/gorm"
)

// PageRepository 静态页持久化
type PageRepository struct {
	db *gorm.DB
}

func NewPageRepository(db *gorm.DB) *PageRepository {
	return &PageRepository{db: db}
}

// Find 按 slug 查找页面，不存在或出错时返回 nil
func (r *PageRepository) Find(ctx context.Context, slug string) *models.Page {
	var page models.Page
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&page).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warnf("[Page] 查询页面 %s 失败: %v", slug, err)
		}
		return nil
	}
	return &page
}

// FindAll 全部页面，按菜单顺序
func (r *PageRepository) FindAll(ctx context.Context) []models.Page {
	var pages []models.Page
	if err := r.db.WithContext(ctx).Order("position ASC").Order("id ASC").Find(&pages).Error; err != nil {
		logger.Warnf("[Page] 查询页面列表失败: %v", err)
		return []models.Page{}
	}
	return pages
}

// FindMenu 菜单中显示的页面
func (r *PageRepository) FindMenu(ctx context.Context) []models.Page {
	var pages []models.Page
	err := r.db.WithContext(ctx).Where("in_menu = ?", true).
		Order("position ASC").Order("id ASC").Find(&pages).Error
	if err != nil {
		logger.Warnf("[Page] 查询菜单失败: %v", err)
		return []models.Page{}
	}
	return pages
}

// SlugUnique slug 是否未被占用
func (r *PageRepository) SlugUnique(ctx context.Context, slug string) bool {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Page{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
		logger.Warnf("[Page] 检查 slug 失败: %v", err)
		return false
	}
	return count == 0
}

// Count 页面总数
func (r *PageRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Page{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count pages: %w", err)
	}
	return count, nil
}

// Save 新增或更新页面（ID 非零为更新），slug 不随更新改变
func (r *PageRepository) Save(ctx context.Context, page *models.Page) error {
	db := r.db.WithContext(ctx)
	if page.ID != 0 {
		err := db.Model(&models.Page{}).Where("id = ?", page.ID).Updates(map[string]interface{}{
			"title":    page.Title,
			"content":  page.Content,
			"in_menu":  page.InMenu,
			"position": page.Position,
		}).Error
		if err != nil {
			return fmt.Errorf("update page %s: %w", page.Slug, err)
		}
		return nil
	}
	if err := db.Create(page).Error; err != nil {
		return fmt.Errorf("insert page %s: %w", page.Slug, err)
	}
	return nil
}

// Delete 删除页面
func (r *PageRepository) Delete(ctx context.Context, page *models.Page) error {
	if err := r.db.WithContext(ctx).Where("slug = ?", page.Slug).Delete(&models.Page{}).Error; err != nil {
		return fmt.Errorf("delete page %s: %w", page.Slug, err)
	}
	return nil
}
