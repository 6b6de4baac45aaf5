package services

import (
	"os"
	"strconv"

	"github.com/kdam/portfolio/internal/constant"
	"github.com/kdam/portfolio/internal/logger"

	"gopkg.in/ini.v1"
)

type ServerConfig struct {
	Port int    `ini:"port"`
	Host string `ini:"host"`
}

type DatabaseConfig struct {
	Type        string `ini:"type"`
	Host        string `ini:"host"`
	Port        int    `ini:"port"`
	User        string `ini:"user"`
	Password    string `ini:"password"`
	DBName      string `ini:"dbname"`
	Path        string `ini:"path"`
	TablePrefix string `ini:"table_prefix"`
}

type SecurityConfig struct {
	Secret     string `ini:"secret"`
	CookieDays int    `ini:"cookie_days"`
}

type MediaConfig struct {
	Dir string `ini:"dir"`
}

type AppConfig struct {
	Locale   string `ini:"locale"`
	PageSize int    `ini:"page_size"`
}

type LogConfig struct {
	Level      string `ini:"level"`
	Dir        string `ini:"dir"`
	MaxSize    int    `ini:"max_size"`
	MaxBackups int    `ini:"max_backups"`
}

type JanitorConfig struct {
	Enabled  bool   `ini:"enabled"`
	Schedule string `ini:"schedule"`
	Grace    int    `ini:"grace_minutes"`
}

type Config struct {
	Server   ServerConfig   `ini:"server"`
	Database DatabaseConfig `ini:"database"`
	Security SecurityConfig `ini:"security"`
	Media    MediaConfig    `ini:"media"`
	App      AppConfig      `ini:"app"`
	Log      LogConfig      `ini:"log"`
	Janitor  JanitorConfig  `ini:"janitor"`
}

var config *Config

// getEnvStr 获取环境变量字符串
func getEnvStr(key string, target *string) {
	if v := os.Getenv(key); v != "" {
		*target = v
	}
}

// getEnvInt 获取环境变量整数
func getEnvInt(key string, target *int) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*target = n
		}
	}
}

// getEnvBool 获取环境变量布尔值
func getEnvBool(key string, target *bool) {
	if v := os.Getenv(key); v != "" {
		*target = v == "true" || v == "1"
	}
}

// DefaultConfig 返回默认配置
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port: 8080,
			Host: "0.0.0.0",
		},
		Database: DatabaseConfig{
			Type:        "sqlite",
			Host:        "localhost",
			Port:        3306,
			User:        "root",
			DBName:      "portfolio",
			Path:        constant.DefaultDBPath,
			TablePrefix: "si_",
		},
		Security: SecurityConfig{
			CookieDays: 7,
		},
		Media: MediaConfig{
			Dir: constant.DefaultMediaDir,
		},
		App: AppConfig{
			Locale:   "pl",
			PageSize: constant.DefaultPageSize,
		},
		Log: LogConfig{
			Level:      "info",
			MaxSize:    10,
			MaxBackups: 3,
		},
		Janitor: JanitorConfig{
			Enabled:  true,
			Schedule: "@every 1h",
			Grace:    30,
		},
	}
}

func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		logger.Infof("[Config] 从文件加载配置: %s", path)
		file, err := ini.Load(path)
		if err != nil {
			return nil, err
		}
		if err := file.MapTo(cfg); err != nil {
			return nil, err
		}
	} else {
		logger.Info("[Config] 配置文件不存在，从环境变量加载")
		applyEnvOverrides(cfg)
	}

	if cfg.Database.Path == "" {
		cfg.Database.Path = constant.DefaultDBPath
	}
	if cfg.Media.Dir == "" {
		cfg.Media.Dir = constant.DefaultMediaDir
	}
	if cfg.App.PageSize <= 0 {
		cfg.App.PageSize = constant.DefaultPageSize
	}
	if cfg.Security.CookieDays <= 0 {
		cfg.Security.CookieDays = 7
	}

	constant.TablePrefix = cfg.Database.TablePrefix
	constant.Secret = cfg.Security.Secret

	logger.Infof("[Config] 服务地址: %s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Infof("[Config] 数据库: type=%s, host=%s, port=%d, dbname=%s",
		cfg.Database.Type, cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
	logger.Infof("[Config] 媒体目录: %s", cfg.Media.Dir)

	config = cfg
	return cfg, nil
}

// applyEnvOverrides 从环境变量加载配置
func applyEnvOverrides(cfg *Config) {
	// Server
	getEnvInt("PF_SERVER_PORT", &cfg.Server.Port)
	getEnvStr("PF_SERVER_HOST", &cfg.Server.Host)

	// Database
	getEnvStr("PF_DB_TYPE", &cfg.Database.Type)
	getEnvStr("PF_DB_HOST", &cfg.Database.Host)
	getEnvInt("PF_DB_PORT", &cfg.Database.Port)
	getEnvStr("PF_DB_USER", &cfg.Database.User)
	getEnvStr("PF_DB_PASSWORD", &cfg.Database.Password)
	getEnvStr("PF_DB_NAME", &cfg.Database.DBName)
	getEnvStr("PF_DB_PATH", &cfg.Database.Path)
	getEnvStr("PF_DB_TABLE_PREFIX", &cfg.Database.TablePrefix)

	// Security
	getEnvStr("PF_SECRET", &cfg.Security.Secret)
	getEnvInt("PF_COOKIE_DAYS", &cfg.Security.CookieDays)

	// Media / App / Log
	getEnvStr("PF_MEDIA_DIR", &cfg.Media.Dir)
	getEnvStr("PF_LOCALE", &cfg.App.Locale)
	getEnvInt("PF_PAGE_SIZE", &cfg.App.PageSize)
	getEnvStr("PF_LOG_LEVEL", &cfg.Log.Level)
	getEnvStr("PF_LOG_DIR", &cfg.Log.Dir)

	// Janitor
	getEnvBool("PF_JANITOR_ENABLED", &cfg.Janitor.Enabled)
	getEnvStr("PF_JANITOR_SCHEDULE", &cfg.Janitor.Schedule)
	getEnvInt("PF_JANITOR_GRACE", &cfg.Janitor.Grace)
}

func GetConfig() *Config {
	return config
}
