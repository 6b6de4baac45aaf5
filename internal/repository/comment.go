package repository

import (
	"context"
	"fmt"

	"github.com/kdam/portfolio/internal/logger"
	"github.com/kdam/portfolio/internal/models"

	"gorm.io/gorm"
)

// CommentRepository 留言持久化
type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// withAuthor 连接作者资料的查询
func (r *CommentRepository) withAuthor(ctx context.Context) *gorm.DB {
	comments := models.Comment{}.TableName()
	info := models.UserInfo{}.TableName()
	return r.db.WithContext(ctx).
		Table(comments).
		Select(comments + ".id, " + comments + ".content, " + comments + ".user_id, " + comments + ".date, " + info + ".name").
		Joins("JOIN " + info + " ON " + info + ".user_id = " + comments + ".user_id")
}

// FindByID 查找留言及作者名，不存在或出错时返回 nil
func (r *CommentRepository) FindByID(ctx context.Context, id uint) *models.CommentWithAuthor {
	var rows []models.CommentWithAuthor
	err := r.withAuthor(ctx).Where(models.Comment{}.TableName()+".id = ?", id).Limit(1).Scan(&rows).Error
	if err != nil {
		logger.Warnf("[Comment] 查询留言 %d 失败: %v", id, err)
		return nil
	}
	if len(rows) == 0 {
		return nil
	}
	return &rows[0]
}

// FindToEdit 查找待编辑的留言
func (r *CommentRepository) FindToEdit(ctx context.Context, id uint) *models.CommentWithAuthor {
	return r.FindByID(ctx, id)
}

// FindAll 全部留言，最新在前
func (r *CommentRepository) FindAll(ctx context.Context) ([]models.CommentWithAuthor, error) {
	comments := models.Comment{}.TableName()
	var rows []models.CommentWithAuthor
	err := r.withAuthor(ctx).Order(comments + ".date DESC").Order(comments + ".id DESC").Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return rows, nil
}

// FindAllFromUser 某用户的全部留言
func (r *CommentRepository) FindAllFromUser(ctx context.Context, userID uint) ([]models.Comment, error) {
	var comments []models.Comment
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&comments).Error; err != nil {
		return nil, fmt.Errorf("list comments of user %d: %w", userID, err)
	}
	return comments, nil
}

// Count 留言总数
func (r *CommentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Comment{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count comments: %w", err)
	}
	return count, nil
}

// Save 新增或更新留言；更新只修改内容
func (r *CommentRepository) Save(ctx context.Context, comment *models.Comment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if comment.ID != 0 {
			err := tx.Model(&models.Comment{}).Where("id = ?", comment.ID).Update("content", comment.Content).Error
			if err != nil {
				return fmt.Errorf("update comment %d: %w", comment.ID, err)
			}
			return nil
		}

		if comment.Content == "" || comment.UserID == 0 {
			return ErrInvalidComment
		}
		if err := tx.Create(comment).Error; err != nil {
			return fmt.Errorf("insert comment: %w", err)
		}
		return nil
	})
}

// Delete 删除留言
func (r *CommentRepository) Delete(ctx context.Context, comment *models.Comment) error {
	if err := r.db.WithContext(ctx).Delete(&models.Comment{}, comment.ID).Error; err != nil {
		return fmt.Errorf("delete comment %d: %w", comment.ID, err)
	}
	return nil
}
