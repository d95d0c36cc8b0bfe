package app

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/baobabplus/application-agent-services/internal/config"
	"github.com/baobabplus/application-agent-services/internal/erp"
	"github.com/baobabplus/application-agent-services/internal/messaging/kafka"
)

// BuildApp connects the infrastructure and mounts every module on the
// router.
func BuildApp(router *gin.Engine) error {
	cfg := config.Load()

	client := erp.NewClient(erp.Options{
		URL:      cfg.ERPURL,
		Database: cfg.ERPDatabase,
		Username: cfg.ERPUsername,
		Password: cfg.ERPPassword,
		UserID:   cfg.ERPUserID,
		Timeout:  cfg.ERPTimeout,
	})
	if cfg.ERPUserID == 0 {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.ERPTimeout)
		defer cancel()
		if err := client.Authenticate(ctx); err != nil {
			return err
		}
	}
	zap.L().Info("record store connection established", zap.String("url", cfg.ERPURL))

	var cache *redis.Client
	if cfg.RedisAddr != "" {
		cache = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := cache.Ping(ctx).Err(); err != nil {
			zap.L().Warn("redis unavailable, homepage cache disabled", zap.Error(err))
			cache = nil
		}
	}

	var publisher *kafka.Publisher
	if len(cfg.KafkaBrokers) > 0 {
		publisher = kafka.NewPublisher(cfg.KafkaBrokers)
	}

	return registerModules(router, cfg, client, cache, publisher)
}
