package leaderboard

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	Handler *Handler
	Service Service
}

// NewContainer accepts a nil Redis client.
func NewContainer(db *gorm.DB, rdb *redis.Client) *Container {
	service := NewService(NewRepository(db), NewRedisCache(rdb))

	return &Container{
		Handler: NewHandler(service),
		Service: service,
	}
}
