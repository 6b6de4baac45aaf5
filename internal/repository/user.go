package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/kdam/portfolio/internal/constant"
	"github.com/kdam/portfolio/internal/logger"
	"github.com/kdam/portfolio/internal/models"
	"github.com/kdam/portfolio/internal/security"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PasswordHasher 密码哈希
type PasswordHasher interface {
	Hash(plain string) (string, error)
}

// UserRepository 用户及其资料的持久化
type UserRepository struct {
	db     *gorm.DB
	hasher PasswordHasher
}

func NewUserRepository(db *gorm.DB, hasher PasswordHasher) *UserRepository {
	if db == nil {
		panic("database connection cannot be nil for UserRepository")
	}
	return &UserRepository{db: db, hasher: hasher}
}

// LoadUserByLogin 按登录名加载凭据和角色，不存在或无角色时返回 ErrUserNotFound
func (r *UserRepository) LoadUserByLogin(ctx context.Context, login string) (*security.Credentials, error) {
	return r.loadCredentials(ctx, "login = ?", login)
}

// LoadUserByID 按 ID 加载凭据和角色，会话解析使用
func (r *UserRepository) LoadUserByID(ctx context.Context, id uint) (*security.Credentials, error) {
	return r.loadCredentials(ctx, "id = ?", id)
}

func (r *UserRepository) loadCredentials(ctx context.Context, query string, arg interface{}) (*security.Credentials, error) {
	var user models.User
	err := r.db.WithContext(ctx).Preload("Role").Where(query, arg).Limit(1).Find(&user).Error
	if err != nil {
		logger.Warnf("[User] 加载用户 %v 失败: %v", arg, err)
		return nil, fmt.Errorf("%w: %v", ErrUserNotFound, arg)
	}
	if user.ID == 0 || user.Role.Name == "" {
		return nil, fmt.Errorf("%w: %v", ErrUserNotFound, arg)
	}
	return &security.Credentials{
		ID:       user.ID,
		Login:    user.Login,
		Password: user.Password,
		Roles:    []string{user.Role.Name},
	}, nil
}

// FindByID 按 ID 查找用户，不存在或出错时返回 nil
func (r *UserRepository) FindByID(ctx context.Context, id uint) *models.User {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warnf("[User] 查询用户 %d 失败: %v", id, err)
		}
		return nil
	}
	return &user
}

// FindByLogin 按登录名查找用户
func (r *UserRepository) FindByLogin(ctx context.Context, login string) *models.User {
	var user models.User
	if err := r.db.WithContext(ctx).Where("login = ?", login).First(&user).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warnf("[User] 查询用户 %s 失败: %v", login, err)
		}
		return nil
	}
	return &user
}

// FindToEdit 查找用户并带出资料和角色，缺少资料行视为不存在
func (r *UserRepository) FindToEdit(ctx context.Context, id uint) *models.User {
	var user models.User
	err := r.db.WithContext(ctx).Preload("Info").Preload("Role").Where("id = ?", id).Limit(1).Find(&user).Error
	if err != nil {
		logger.Warnf("[User] 查询用户 %d 失败: %v", id, err)
		return nil
	}
	if user.ID == 0 || user.Info.ID == 0 {
		return nil
	}
	return &user
}

// FindAll 分页列出用户，按插入顺序
func (r *UserRepository) FindAll(ctx context.Context, page, limit int) (*Paginated[models.User], error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = constant.DefaultPageSize
	}

	total, err := r.Count(ctx)
	if err != nil {
		return nil, err
	}

	var users []models.User
	err = r.db.WithContext(ctx).Preload("Role").Preload("Info").
		Order("id ASC").Offset((page - 1) * limit).Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return &Paginated[models.User]{
		Items: users,
		Page:  page,
		Pages: pageCount(total, limit),
		Total: total,
	}, nil
}

// Count 用户总数
func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return count, nil
}

// LoginUnique 登录名是否未被占用
func (r *UserRepository) LoginUnique(ctx context.Context, login string) bool {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).Where("login = ?", login).Count(&count).Error; err != nil {
		logger.Warnf("[User] 检查登录名失败: %v", err)
		return false
	}
	return count == 0
}

// LoginUniqueInEdit 登录名是否未被其他用户占用
func (r *UserRepository) LoginUniqueInEdit(ctx context.Context, id uint, login string) bool {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.User{}).
		Where("login = ? AND id <> ?", login, id).Count(&count).Error
	if err != nil {
		logger.Warnf("[User] 检查登录名失败: %v", err)
		return false
	}
	return count == 0
}

// Save 新增或更新用户（ID 非零为更新），资料行在同一事务内保存。
// password 为明文；更新时为空表示保留原密码。
func (r *UserRepository) Save(ctx context.Context, user *models.User, password string) error {
	if user.RoleID == 0 {
		user.RoleID = constant.RoleUserID
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if user.ID != 0 {
			updates := map[string]interface{}{
				"login":   user.Login,
				"role_id": user.RoleID,
			}
			if password != "" {
				hash, err := r.hasher.Hash(password)
				if err != nil {
					return fmt.Errorf("hash password: %w", err)
				}
				updates["password"] = hash
				user.Password = hash
			}
			if err := tx.Model(&models.User{}).Where("id = ?", user.ID).Updates(updates).Error; err != nil {
				return fmt.Errorf("update user %d: %w", user.ID, err)
			}
		} else {
			if password == "" {
				return errors.New("new user requires a password")
			}
			hash, err := r.hasher.Hash(password)
			if err != nil {
				return fmt.Errorf("hash password: %w", err)
			}
			user.Password = hash
			if err := tx.Omit(clause.Associations).Create(user).Error; err != nil {
				return fmt.Errorf("insert user %s: %w", user.Login, err)
			}
		}

		return saveUserInfo(tx, user)
	})
}

// saveUserInfo 新增或更新资料行，未给出资料 ID 时按 user_id 查找已有行
func saveUserInfo(tx *gorm.DB, user *models.User) error {
	info := &user.Info
	info.UserID = user.ID

	if info.ID == 0 {
		var existing models.UserInfo
		if err := tx.Where("user_id = ?", user.ID).Limit(1).Find(&existing).Error; err != nil {
			return fmt.Errorf("find user info: %w", err)
		}
		info.ID = existing.ID
	}

	if info.ID != 0 {
		err := tx.Model(&models.UserInfo{}).Where("id = ?", info.ID).Updates(map[string]interface{}{
			"name":    info.Name,
			"mail":    info.Mail,
			"user_id": info.UserID,
		}).Error
		if err != nil {
			return fmt.Errorf("update user info: %w", err)
		}
		return nil
	}

	if err := tx.Create(info).Error; err != nil {
		return fmt.Errorf("insert user info: %w", err)
	}
	return nil
}

// Delete 删除用户：先删除其全部留言，再删除用户和资料，整体在一个事务内
func (r *UserRepository) Delete(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		comments := NewCommentRepository(tx)
		list, err := comments.FindAllFromUser(ctx, user.ID)
		if err != nil {
			return err
		}
		for i := range list {
			if err := comments.Delete(ctx, &list[i]); err != nil {
				return err
			}
		}

		if err := tx.Delete(&models.User{}, user.ID).Error; err != nil {
			return fmt.Errorf("delete user %d: %w", user.ID, err)
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.UserInfo{}).Error; err != nil {
			return fmt.Errorf("delete user info %d: %w", user.ID, err)
		}
		return nil
	})
}
