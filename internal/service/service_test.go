package service

import (
	"Beacon/internal/api/config"
	"Beacon/internal/model"
	"Beacon/internal/pkg/redis"
	"testing"

	"github.com/alicebob/miniredis/v2"
	redisv9 "github.com/redis/go-redis/v9"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	// 内存库共享单连接，并发取数时串行化，避免连接间看不到同一份数据
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	err = db.AutoMigrate(
		&model.User{},
		&model.Channel{},
		&model.Content{},
		&model.FollowEdge{},
		&model.AlertVote{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func setupTestRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	redis.Rdb = redisv9.NewClient(&redisv9.Options{Addr: mr.Addr()})
	return mr
}

func setupTestConfig(t *testing.T) {
	t.Helper()
	config.Cfg = &config.Config{
		Feed: config.FeedConfig{
			FanoutLimit:  4,
			FetchTimeout: 3,
		},
	}
}
