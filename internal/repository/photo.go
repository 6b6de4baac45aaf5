package repository

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/kdam/portfolio/internal/constant"
	"github.com/kdam/portfolio/internal/logger"
	"github.com/kdam/portfolio/internal/models"
	"github.com/kdam/portfolio/internal/utils"

	"gorm.io/gorm"
)

// PhotoRepository 作品集图片的持久化，负责数据库行和媒体目录中的文件
type PhotoRepository struct {
	db         *gorm.DB
	randomName func(n int) string
}

func NewPhotoRepository(db *gorm.DB) *PhotoRepository {
	return &PhotoRepository{db: db, randomName: utils.RandomString}
}

// WithNameGenerator 替换随机文件名生成器
func (r *PhotoRepository) WithNameGenerator(gen func(n int) string) *PhotoRepository {
	return &PhotoRepository{db: r.db, randomName: gen}
}

// Find 按 ID 查找图片，不存在或出错时返回 nil
func (r *PhotoRepository) Find(ctx context.Context, id uint) *models.Photo {
	var photo models.Photo
	if err := r.db.WithContext(ctx).First(&photo, id).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warnf("[Photo] 查询图片 %d 失败: %v", id, err)
		}
		return nil
	}
	return &photo
}

// FindAll 全部图片
func (r *PhotoRepository) FindAll(ctx context.Context) []models.Photo {
	var photos []models.Photo
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&photos).Error; err != nil {
		logger.Warnf("[Photo] 查询图片列表失败: %v", err)
		return []models.Photo{}
	}
	return photos
}

// URLs 全部已登记的文件名
func (r *PhotoRepository) URLs(ctx context.Context) ([]string, error) {
	var urls []string
	if err := r.db.WithContext(ctx).Model(&models.Photo{}).Pluck("url", &urls).Error; err != nil {
		return nil, fmt.Errorf("list photo urls: %w", err)
	}
	return urls, nil
}

// Count 图片总数
func (r *PhotoRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Photo{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count photos: %w", err)
	}
	return count, nil
}

// CreateName 生成未被占用的文件名：20 位 [a-z0-9] 加原扩展名
func (r *PhotoRepository) CreateName(ctx context.Context, original string) (string, error) {
	return createName(r.db.WithContext(ctx), r.randomName, original)
}

func createName(db *gorm.DB, gen func(n int) string, original string) (string, error) {
	ext := strings.TrimPrefix(filepath.Ext(original), ".")
	for {
		name := gen(constant.PhotoNameLength)
		if ext != "" {
			name += "." + ext
		}
		var count int64
		if err := db.Model(&models.Photo{}).Where("url = ?", name).Count(&count).Error; err != nil {
			return "", fmt.Errorf("check photo name: %w", err)
		}
		if count == 0 {
			return name, nil
		}
	}
}

// SaveImage 保存上传的图片：在事务内生成文件名、登记行并写入文件，
// 文件写入失败则回滚，提交失败则删除已写入的文件。
func (r *PhotoRepository) SaveImage(ctx context.Context, src io.Reader, originalName, mediaDir, title string) (*models.Photo, error) {
	if err := os.MkdirAll(mediaDir, 0755); err != nil {
		return nil, fmt.Errorf("create media dir: %w", err)
	}

	var photo *models.Photo
	var written string

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		name, err := createName(tx, r.randomName, originalName)
		if err != nil {
			return err
		}

		photo = &models.Photo{URL: name, Title: title}
		if err := tx.Create(photo).Error; err != nil {
			return fmt.Errorf("insert photo: %w", err)
		}

		path := filepath.Join(mediaDir, name)
		if err := writeFile(path, src); err != nil {
			return fmt.Errorf("write photo file: %w", err)
		}
		written = path
		return nil
	})
	if err != nil {
		if written != "" {
			if rmErr := os.Remove(written); rmErr != nil {
				logger.Warnf("[Photo] 回滚后删除文件 %s 失败: %v", written, rmErr)
			}
		}
		return nil, err
	}

	logger.Infof("[Photo] 已保存图片 %s (%s)", photo.URL, title)
	return photo, nil
}

// writeFile 写入文件，失败时删除不完整的文件
func writeFile(path string, src io.Reader) error {
	dst, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(path)
		return err
	}
	if err := dst.Close(); err != nil {
		os.Remove(path)
		return err
	}
	return nil
}

// Delete 先删除数据库行，再删除媒体目录中的文件
func (r *PhotoRepository) Delete(ctx context.Context, photo *models.Photo, mediaDir string) error {
	if err := r.db.WithContext(ctx).Delete(&models.Photo{}, photo.ID).Error; err != nil {
		return fmt.Errorf("delete photo %d: %w", photo.ID, err)
	}

	path := filepath.Join(mediaDir, filepath.Base(photo.URL))
	if err := os.Remove(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Warnf("[Photo] 文件 %s 已不存在", path)
			return nil
		}
		return fmt.Errorf("remove photo file: %w", err)
	}
	return nil
}
