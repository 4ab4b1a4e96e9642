// Package cache guarda las tablas crudas entre corridas: una sola entrada con TTL fijo
// que se invalida manualmente con Clear.
package cache

import (
	"context"
	"sync"
	"time"

	"go.uber.org/atomic"

	"github.com/jhoicas/inventory-command/internal/domain/entity"
	"github.com/jhoicas/inventory-command/internal/domain/repository"
)

var (
	_ repository.TableCache    = (*Memory)(nil)
	_ repository.StatsReporter = (*Memory)(nil)
)

// Memory caché en proceso.
type Memory struct {
	ttl time.Duration
	now func() time.Time

	mu        sync.RWMutex
	entry     *entity.RawTables
	expiresAt time.Time

	hits   *atomic.Int64
	misses *atomic.Int64
}

// NewMemory construye la caché con el TTL indicado.
func NewMemory(ttl time.Duration) *Memory {
	return &Memory{
		ttl:    ttl,
		now:    time.Now,
		hits:   atomic.NewInt64(0),
		misses: atomic.NewInt64(0),
	}
}

// WithClock reemplaza el reloj (tests).
func (m *Memory) WithClock(now func() time.Time) *Memory {
	m.now = now
	return m
}

// Get devuelve la entrada si existe y no expiró.
func (m *Memory) Get(_ context.Context) (*entity.RawTables, bool, error) {
	m.mu.RLock()
	entry, exp := m.entry, m.expiresAt
	m.mu.RUnlock()

	if entry == nil || !m.now().Before(exp) {
		m.misses.Inc()
		return nil, false, nil
	}
	m.hits.Inc()
	return entry, true, nil
}

// Set reemplaza la entrada y reinicia el TTL.
func (m *Memory) Set(_ context.Context, tables *entity.RawTables) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entry = tables
	m.expiresAt = m.now().Add(m.ttl)
	return nil
}

// Clear descarta la entrada.
func (m *Memory) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entry = nil
	m.expiresAt = time.Time{}
	return nil
}

// Stats contadores de aciertos y fallos.
func (m *Memory) Stats() repository.CacheStats {
	return repository.CacheStats{Hits: m.hits.Load(), Misses: m.misses.Load()}
}
