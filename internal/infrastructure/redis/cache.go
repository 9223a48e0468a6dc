package redis

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"phiCalc/internal/ports"
)

var _ ports.ICache = (*Cache)(nil)

// keyPrefix отделяет ключи расчётов от прочих данных в той же БД Redis.
const keyPrefix = "phicalc:"

// Cache реализует ports.ICache через Redis. Ключ — вид и параметры, значение — JSON результата.
type Cache struct {
	cli *Client
	ttl time.Duration
	log *slog.Logger
}

// NewCache возвращает кэш. ttl == 0 — без истечения.
func NewCache(cli *Client, ttl time.Duration, log *slog.Logger) *Cache {
	return &Cache{cli: cli, ttl: ttl, log: log}
}

// Get возвращает результат по ключу. Если ключа нет — found == false.
func (c *Cache) Get(ctx context.Context, key string) (string, bool, error) {
	s, err := c.cli.Get(ctx, keyPrefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) { // ключа нет
			return "", false, nil
		}
		c.log.Debug("cache get failed", "key", key, "error", err)
		return "", false, err
	}
	return s, true, nil
}

// Set сохраняет результат по ключу; повторная запись перезаписывает значение и TTL.
func (c *Cache) Set(ctx context.Context, key, value string) error {
	if err := c.cli.Set(ctx, keyPrefix+key, value, c.ttl).Err(); err != nil {
		c.log.Debug("cache set failed", "key", key, "error", err)
		return err
	}
	return nil
}
