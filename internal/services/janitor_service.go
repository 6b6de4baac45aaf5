package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/kdam/portfolio/internal/logger"

	"github.com/robfig/cron/v3"
)

// PhotoURLLister 列出已登记的图片文件名
type PhotoURLLister interface {
	URLs(ctx context.Context) ([]string, error)
}

// MediaJanitor 定时清理媒体目录中没有数据库行引用的文件
type MediaJanitor struct {
	photos   PhotoURLLister
	dir      string
	grace    time.Duration
	schedule string
	now      func() time.Time

	mu   sync.Mutex
	cron *cron.Cron
}

func NewMediaJanitor(photos PhotoURLLister, cfg *Config) *MediaJanitor {
	grace := time.Duration(cfg.Janitor.Grace) * time.Minute
	if grace <= 0 {
		grace = 30 * time.Minute
	}
	schedule := cfg.Janitor.Schedule
	if schedule == "" {
		schedule = "@every 1h"
	}
	return &MediaJanitor{
		photos:   photos,
		dir:      cfg.Media.Dir,
		grace:    grace,
		schedule: schedule,
		now:      time.Now,
	}
}

// Start 启动定时任务
func (j *MediaJanitor) Start() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.cron != nil {
		return nil
	}

	c := cron.New(cron.WithLogger(logger.CronLogger{}), cron.WithChain(cron.SkipIfStillRunning(logger.CronLogger{})))
	if _, err := c.AddFunc(j.schedule, func() {
		removed, err := j.Sweep(context.Background())
		if err != nil {
			logger.Warnf("[Janitor] 清理失败: %v", err)
			return
		}
		if removed > 0 {
			logger.Infof("[Janitor] 已清理 %d 个孤立文件", removed)
		}
	}); err != nil {
		return err
	}
	c.Start()
	j.cron = c
	logger.Infof("[Janitor] 已启动，计划: %s", j.schedule)
	return nil
}

// Stop 停止定时任务并等待正在执行的清理结束
func (j *MediaJanitor) Stop() {
	j.mu.Lock()
	c := j.cron
	j.cron = nil
	j.mu.Unlock()
	if c == nil {
		return
	}
	<-c.Stop().Done()
	logger.Info("[Janitor] 已停止")
}

// Sweep 删除未被引用且早于宽限期的文件，返回删除数量
func (j *MediaJanitor) Sweep(ctx context.Context) (int, error) {
	entries, err := os.ReadDir(j.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, nil
		}
		return 0, err
	}

	urls, err := j.photos.URLs(ctx)
	if err != nil {
		return 0, err
	}
	known := make(map[string]struct{}, len(urls))
	for _, u := range urls {
		known[u] = struct{}{}
	}

	cutoff := j.now().Add(-j.grace)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if _, ok := known[entry.Name()]; ok {
			continue
		}
		info, err := entry.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}
		path := filepath.Join(j.dir, entry.Name())
		if err := os.Remove(path); err != nil {
			logger.Warnf("[Janitor] 删除 %s 失败: %v", path, err)
			continue
		}
		logger.Debugf("[Janitor] 已删除孤立文件 %s", path)
		removed++
	}
	return removed, nil
}
