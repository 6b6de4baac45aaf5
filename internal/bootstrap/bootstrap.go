// Package bootstrap wires configuration, logging, the database and the HTTP
// server together and runs the application until it receives a stop signal.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kdam/portfolio/internal/constant"
	"github.com/kdam/portfolio/internal/database"
	"github.com/kdam/portfolio/internal/logger"
	"github.com/kdam/portfolio/internal/repository"
	"github.com/kdam/portfolio/internal/router"
	"github.com/kdam/portfolio/internal/services"
	"github.com/kdam/portfolio/internal/utils"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	configPath string
	Config     *services.Config
}

func New() *App {
	return &App{configPath: constant.DefaultConfigPath}
}

// WithConfig 指定配置文件路径
func (a *App) WithConfig(path string) *App {
	if path != "" {
		a.configPath = path
	}
	return a
}

// Prepare 加载配置、初始化日志和数据库并完成迁移与初始数据
func (a *App) Prepare() error {
	cfg, err := services.LoadConfig(a.configPath)
	if err != nil {
		return fmt.Errorf("加载配置失败: %w", err)
	}
	a.Config = cfg

	logger.SetLevel(cfg.Log.Level)
	if cfg.Log.Dir != "" {
		if err := logger.SetupFileOutput(cfg.Log.Dir, cfg.Log.MaxSize, cfg.Log.MaxBackups); err != nil {
			return fmt.Errorf("初始化日志文件失败: %w", err)
		}
	}

	if cfg.Security.Secret == "" {
		cfg.Security.Secret = utils.RandomString(32)
		constant.Secret = cfg.Security.Secret
		logger.Warn("[Bootstrap] 未配置 secret，已生成临时密钥，重启后需重新登录")
	}

	if err := os.MkdirAll(cfg.Media.Dir, 0755); err != nil {
		return fmt.Errorf("创建媒体目录失败: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return err
	}
	if err := database.Migrate(database.DB); err != nil {
		return fmt.Errorf("数据库迁移失败: %w", err)
	}

	users := repository.NewUserRepository(database.DB, services.NewBcryptHasher())
	pages := repository.NewPageRepository(database.DB)
	return services.NewInitService(database.DB, users, pages).Initialize(context.Background())
}

// Run 启动 HTTP 服务，收到 SIGINT/SIGTERM 后优雅退出
func (a *App) Run() {
	if err := a.Prepare(); err != nil {
		logger.Fatalf("[Bootstrap] 初始化失败: %v", err)
	}
	defer database.Close()

	ctrls, err := router.RegisterControllers(database.DB, a.Config)
	if err != nil {
		logger.Fatalf("[Bootstrap] 创建控制器失败: %v", err)
	}
	defer router.StopJanitor()

	addr := fmt.Sprintf("%s:%d", a.Config.Server.Host, a.Config.Server.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           router.Setup(ctrls, a.Config),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Infof("[Bootstrap] 服务启动: http://%s", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("[Bootstrap] 服务异常退出: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("[Bootstrap] 正在关闭服务...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("[Bootstrap] 关闭服务失败: %v", err)
	}
	logger.Info("[Bootstrap] 服务已关闭")
}
