package contracts

import (
	"context"
	"time"
)

type RedisRepository interface {
	Delete(ctx context.Context, key string) error
	Set(ctx context.Context, key string, value interface{}, exp time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error)
	DeleteIfValue(ctx context.Context, key string, value interface{}) (bool, error)
	ReplaceHash(ctx context.Context, key string, fields map[string]interface{}, exp time.Duration) error
	GetHash(ctx context.Context, key string) (map[string]string, error)
}
