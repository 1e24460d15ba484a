package health

import (
	"context"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type DatabaseChecker struct{ db *gorm.DB }

func NewDatabaseChecker(db *gorm.DB) *DatabaseChecker { return &DatabaseChecker{db: db} }

func (c *DatabaseChecker) Check(ctx context.Context) CheckResult {
	sqlDB, err := c.db.DB()
	if err != nil {
		return CheckResult{Name: "database", Healthy: false, Error: err.Error()}
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return CheckResult{Name: "database", Healthy: false, Error: err.Error()}
	}
	return CheckResult{Name: "database", Healthy: true}
}

type RedisChecker struct{ client redis.UniversalClient }

func NewRedisChecker(client redis.UniversalClient) *RedisChecker {
	return &RedisChecker{client: client}
}

func (c *RedisChecker) Check(ctx context.Context) CheckResult {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return CheckResult{Name: "redis", Healthy: false, Error: err.Error()}
	}
	return CheckResult{Name: "redis", Healthy: true}
}
