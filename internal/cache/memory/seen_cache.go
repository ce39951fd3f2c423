package memory

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/Gunvolt24/reservation-worker/internal/ports"
	"github.com/Gunvolt24/reservation-worker/pkg/metrics"
)

var _ ports.SeenCache = (*SeenCache)(nil)

type entry struct {
	id        string
	expiresAt time.Time
}

// SeenCache — LRU с TTL для id обработанных сообщений.
type SeenCache struct {
	capacity int
	ttl      time.Duration

	ll    *list.List
	index map[string]*list.Element

	mu sync.Mutex
}

// NewSeenCache — capacity <= 0 трактуется как 1, ttl <= 0 — записи не истекают.
func NewSeenCache(capacity int, ttl time.Duration) *SeenCache {
	if capacity <= 0 {
		capacity = 1
	}
	return &SeenCache{
		capacity: capacity,
		ttl:      ttl,
		ll:       list.New(),
		index:    make(map[string]*list.Element),
	}
}

func (c *SeenCache) Seen(_ context.Context, id string) bool {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.index[id]
	if !ok {
		metrics.CacheOps.WithLabelValues("miss").Inc()
		return false
	}
	ent := elem.Value.(*entry)
	if c.isExpired(ent, now) {
		metrics.CacheOps.WithLabelValues("expired").Inc()
		c.removeElement(elem)
		metrics.CacheSize.Set(float64(c.ll.Len()))
		return false
	}
	c.ll.MoveToFront(elem)

	metrics.CacheOps.WithLabelValues("hit").Inc()
	return true
}

func (c *SeenCache) Mark(_ context.Context, id string) {
	if id == "" {
		return
	}
	c.mark(id, time.Now())
}

// WarmUp — загрузка id в порядке от новых к старым: первые элементы
// считаются самыми свежими и вытесняются последними.
func (c *SeenCache) WarmUp(ctx context.Context, ids []string) error {
	now := time.Now()
	for i := len(ids) - 1; i >= 0; i-- {
		if err := ctx.Err(); err != nil {
			return err
		}
		if ids[i] == "" {
			continue
		}
		c.mark(ids[i], now)
	}
	return nil
}

// Len — текущее число записей (включая ещё не вычищенные истёкшие).
func (c *SeenCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}

func (c *SeenCache) mark(id string, now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.index[id]; ok {
		elem.Value.(*entry).expiresAt = c.expiryFrom(now)
		c.ll.MoveToFront(elem)
		return
	}

	c.pruneExpiredFromBack(now)

	elem := c.ll.PushFront(&entry{id: id, expiresAt: c.expiryFrom(now)})
	c.index[id] = elem

	if c.ll.Len() > c.capacity {
		c.evictLRU()
	}
	metrics.CacheSize.Set(float64(c.ll.Len()))
}
