package calendar

import (
	"sync"
	"time"
)

const defaultCacheSize = 240

// GridCache мемоизирует сетки по месяцу
type GridCache struct {
	mu    sync.RWMutex
	grids map[Month]MonthGrid
	limit int
}

// NewGridCache создает кэш; при достижении limit кэш очищается целиком
func NewGridCache(limit int) *GridCache {
	if limit <= 0 {
		limit = defaultCacheSize
	}
	return &GridCache{grids: make(map[Month]MonthGrid), limit: limit}
}

func (c *GridCache) Get(year int, month time.Month) MonthGrid {
	m := NewMonth(year, month)

	c.mu.RLock()
	g, ok := c.grids[m]
	c.mu.RUnlock()
	if ok {
		return g
	}

	g = BuildMonthGrid(m.Year, m.Month)

	c.mu.Lock()
	if len(c.grids) >= c.limit {
		c.grids = make(map[Month]MonthGrid, c.limit)
	}
	c.grids[m] = g
	c.mu.Unlock()

	return g
}

func (c *GridCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.grids)
}
