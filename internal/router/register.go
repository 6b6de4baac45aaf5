package router

import (
	"github.com/kdam/portfolio/internal/controllers"
	"github.com/kdam/portfolio/internal/repository"
	"github.com/kdam/portfolio/internal/services"
	"github.com/kdam/portfolio/internal/static"

	"gorm.io/gorm"
)

var janitor *services.MediaJanitor

// RegisterControllers 创建仓储、服务和控制器
func RegisterControllers(db *gorm.DB, cfg *services.Config) (*Controllers, error) {
	hasher := services.NewBcryptHasher()

	users := repository.NewUserRepository(db, hasher)
	pages := repository.NewPageRepository(db)
	photos := repository.NewPhotoRepository(db)
	comments := repository.NewCommentRepository(db)

	authService, err := services.NewAuthService(users, hasher, cfg.Security.Secret, cfg.Security.CookieDays)
	if err != nil {
		return nil, err
	}

	tmpl, err := static.Templates(controllers.TemplateFuncs())
	if err != nil {
		return nil, err
	}
	view := controllers.NewView(tmpl, pages)
	stats := services.NewSystemStats(users, pages, photos, comments, cfg.Media.Dir)

	if cfg.Janitor.Enabled {
		janitor = services.NewMediaJanitor(photos, cfg)
		if err := janitor.Start(); err != nil {
			return nil, err
		}
	}

	return &Controllers{
		Templates: tmpl,
		View:      view,
		Resolver:  authService,
		Auth:      controllers.NewAuthController(authService, view),
		Page:      controllers.NewPageController(pages, view),
		Photo:     controllers.NewPhotoController(photos, view, cfg.Media.Dir),
		Comment:   controllers.NewCommentController(comments, view),
		User:      controllers.NewUserController(users, view, cfg.App.PageSize),
		Static:    controllers.NewStaticController(stats, view),
	}, nil
}

// StopJanitor 停止媒体清理任务
func StopJanitor() {
	if janitor != nil {
		janitor.Stop()
		janitor = nil
	}
}
