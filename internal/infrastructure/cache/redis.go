package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/atomic"

	"github.com/jhoicas/inventory-command/internal/domain/entity"
	"github.com/jhoicas/inventory-command/internal/domain/repository"
)

var (
	_ repository.TableCache    = (*Redis)(nil)
	_ repository.StatsReporter = (*Redis)(nil)
)

// Redis caché compartida entre instancias: las tablas como JSON bajo una sola clave con expiración.
type Redis struct {
	rdb *redis.Client
	key string
	ttl time.Duration

	hits   *atomic.Int64
	misses *atomic.Int64
}

// NewRedisClient crea el cliente y verifica la conexión.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}

// NewRedis construye la caché sobre un cliente existente.
func NewRedis(rdb *redis.Client, key string, ttl time.Duration) *Redis {
	return &Redis{
		rdb:    rdb,
		key:    key,
		ttl:    ttl,
		hits:   atomic.NewInt64(0),
		misses: atomic.NewInt64(0),
	}
}

// Get lee y decodifica la entrada. Clave ausente o expirada: ok=false sin error.
func (c *Redis) Get(ctx context.Context) (*entity.RawTables, bool, error) {
	b, err := c.rdb.Get(ctx, c.key).Bytes()
	if errors.Is(err, redis.Nil) {
		c.misses.Inc()
		return nil, false, nil
	}
	if err != nil {
		c.misses.Inc()
		return nil, false, fmt.Errorf("redis get: %w", err)
	}
	var t entity.RawTables
	if err := json.Unmarshal(b, &t); err != nil {
		c.misses.Inc()
		return nil, false, fmt.Errorf("redis decode: %w", err)
	}
	c.hits.Inc()
	return &t, true, nil
}

// Set guarda la entrada con SET ... EX ttl.
func (c *Redis) Set(ctx context.Context, tables *entity.RawTables) error {
	b, err := json.Marshal(tables)
	if err != nil {
		return fmt.Errorf("redis encode: %w", err)
	}
	if err := c.rdb.Set(ctx, c.key, b, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Clear borra la clave.
func (c *Redis) Clear(ctx context.Context) error {
	if err := c.rdb.Del(ctx, c.key).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

// Stats contadores de aciertos y fallos de esta instancia.
func (c *Redis) Stats() repository.CacheStats {
	return repository.CacheStats{Hits: c.hits.Load(), Misses: c.misses.Load()}
}
