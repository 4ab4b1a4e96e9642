package cache_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-command/internal/domain/entity"
	"github.com/jhoicas/inventory-command/internal/domain/repository"
	"github.com/jhoicas/inventory-command/internal/infrastructure/cache"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time          { return c.t }
func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

func tables() *entity.RawTables {
	return &entity.RawTables{SKUs: []entity.RawRow{{"sku_id": "A"}}}
}

func TestMemory_ExpiraTrasTTL(t *testing.T) {
	ctx := context.Background()
	clk := &clock{t: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	m := cache.NewMemory(60 * time.Second).WithClock(clk.now)

	_, ok, err := m.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, m.Set(ctx, tables()))
	clk.advance(59 * time.Second)
	got, ok, _ := m.Get(ctx)
	assert.True(t, ok)
	assert.Equal(t, "A", got.SKUs[0]["sku_id"])

	clk.advance(time.Second)
	_, ok, _ = m.Get(ctx)
	assert.False(t, ok, "a los 60 s la entrada ya expiró")

	assert.Equal(t, repository.CacheStats{Hits: 1, Misses: 2}, m.Stats())
}

func TestMemory_Clear(t *testing.T) {
	ctx := context.Background()
	m := cache.NewMemory(time.Hour)
	require.NoError(t, m.Set(ctx, tables()))
	require.NoError(t, m.Clear(ctx))
	_, ok, _ := m.Get(ctx)
	assert.False(t, ok)
}

func TestMemory_Concurrente(t *testing.T) {
	ctx := context.Background()
	m := cache.NewMemory(time.Hour)
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				_ = m.Set(ctx, tables())
			} else {
				_, _, _ = m.Get(ctx)
			}
		}(i)
	}
	wg.Wait()
	s := m.Stats()
	assert.Equal(t, int64(10), s.Hits+s.Misses)
}
