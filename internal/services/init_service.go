package services

import (
	"context"
	"fmt"

	"github.com/kdam/portfolio/internal/constant"
	"github.com/kdam/portfolio/internal/logger"
	"github.com/kdam/portfolio/internal/models"
	"github.com/kdam/portfolio/internal/repository"
	"github.com/kdam/portfolio/internal/utils"

	"gorm.io/gorm"
)

// AdminLogin 首次启动时创建的管理员登录名
const AdminLogin = "administrator"

type InitService struct {
	db    *gorm.DB
	users *repository.UserRepository
	pages *repository.PageRepository
}

func NewInitService(db *gorm.DB, users *repository.UserRepository, pages *repository.PageRepository) *InitService {
	return &InitService{db: db, users: users, pages: pages}
}

// Initialize 执行系统初始化：角色、管理员账号、默认页面
func (s *InitService) Initialize(ctx context.Context) error {
	logger.Info("开始初始化系统...")

	if err := s.initializeRoles(ctx); err != nil {
		return err
	}
	if err := s.initializeAdmin(ctx); err != nil {
		return err
	}
	s.initializePages(ctx)
	return nil
}

// initializeRoles 写入固定的角色行
func (s *InitService) initializeRoles(ctx context.Context) error {
	roles := []models.Role{
		{ID: constant.RoleAdminID, Name: constant.RoleAdmin},
		{ID: constant.RoleUserID, Name: constant.RoleUser},
	}
	for _, role := range roles {
		r := role
		if err := s.db.WithContext(ctx).Where(models.Role{ID: r.ID}).Attrs(models.Role{Name: r.Name}).FirstOrCreate(&r).Error; err != nil {
			return fmt.Errorf("seed role %s: %w", role.Name, err)
		}
	}
	return nil
}

// initializeAdmin 没有任何用户时创建管理员账号
func (s *InitService) initializeAdmin(ctx context.Context) error {
	count, err := s.users.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		logger.Info("已存在用户，跳过创建管理员账号")
		return nil
	}

	password := utils.RandomString(12)
	admin := &models.User{
		Login:  AdminLogin,
		RoleID: constant.RoleAdminID,
		Info:   models.UserInfo{Name: "Administrator", Mail: "admin@localhost"},
	}
	if err := s.users.Save(ctx, admin, password); err != nil {
		return fmt.Errorf("create admin: %w", err)
	}

	logger.Infof("--------------------------------------------------")
	logger.Infof("管理员账号创建成功:")
	logger.Infof("用户名: %s", AdminLogin)
	logger.Infof("密  码: %s", password)
	logger.Infof("请妥善保管您的密码，并登录后及时修改。")
	logger.Infof("--------------------------------------------------")
	return nil
}

// initializePages 没有页面时写入默认页面
func (s *InitService) initializePages(ctx context.Context) {
	count, err := s.pages.Count(ctx)
	if err != nil || count > 0 {
		return
	}
	defaults := []models.Page{
		{Slug: "about", Title: "O mnie", Content: "Kilka słów o mnie.", InMenu: true, Position: 1},
	}
	for i := range defaults {
		if err := s.pages.Save(ctx, &defaults[i]); err != nil {
			logger.Warnf("创建默认页面 %s 失败: %v", defaults[i].Slug, err)
		}
	}
}
