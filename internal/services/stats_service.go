package services

import (
	"context"

	"github.com/kdam/portfolio/internal/logger"

	"github.com/shirou/gopsutil/v3/disk"
)

// Counter 统计记录数
type Counter interface {
	Count(ctx context.Context) (int64, error)
}

// DiskUsage 媒体目录所在磁盘的使用情况（MB）
type DiskUsage struct {
	UsedMB      uint64
	TotalMB     uint64
	UsedPercent float64
}

// DashboardStats 管理面板数据
type DashboardStats struct {
	Users    int64
	Pages    int64
	Photos   int64
	Comments int64
	Disk     *DiskUsage
}

type SystemStats struct {
	users, pages, photos, comments Counter
	mediaDir                       string
}

func NewSystemStats(users, pages, photos, comments Counter, mediaDir string) *SystemStats {
	return &SystemStats{users: users, pages: pages, photos: photos, comments: comments, mediaDir: mediaDir}
}

// Dashboard 汇总各实体数量和磁盘占用，单项失败时记为 0
func (s *SystemStats) Dashboard(ctx context.Context) *DashboardStats {
	return &DashboardStats{
		Users:    count(ctx, s.users),
		Pages:    count(ctx, s.pages),
		Photos:   count(ctx, s.photos),
		Comments: count(ctx, s.comments),
		Disk:     s.DiskUsage(ctx),
	}
}

// DiskUsage 读取媒体目录磁盘占用，无法读取时返回 nil
func (s *SystemStats) DiskUsage(ctx context.Context) *DiskUsage {
	usage, err := disk.UsageWithContext(ctx, s.mediaDir)
	if err != nil {
		logger.Debugf("[Stats] 读取磁盘信息失败: %v", err)
		return nil
	}
	return &DiskUsage{
		UsedMB:      usage.Used / 1024 / 1024,
		TotalMB:     usage.Total / 1024 / 1024,
		UsedPercent: usage.UsedPercent,
	}
}

func count(ctx context.Context, c Counter) int64 {
	if c == nil {
		return 0
	}
	n, err := c.Count(ctx)
	if err != nil {
		logger.Warnf("[Stats] 统计失败: %v", err)
		return 0
	}
	return n
}
