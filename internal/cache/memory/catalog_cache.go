package memory

import (
	"context"
	"sync"
	"time"

	"github.com/Gunvolt24/distrinaranjos/internal/domain"
	"github.com/Gunvolt24/distrinaranjos/internal/ports"
	"github.com/Gunvolt24/distrinaranjos/pkg/metrics"
)

// Проверка, что кэш удовлетворяет порту приложения.
var _ ports.CatalogCache = (*CatalogCacheTTL)(nil)

// CatalogCacheTTL — снимок каталога с TTL. Хранится единственная запись —
// полный список товаров на время просмотра страницы; по истечении TTL
// следующий запрос уходит в источник.
type CatalogCacheTTL struct {
	ttl time.Duration

	mu        sync.Mutex
	products  []domain.Product
	expiresAt time.Time
}

func NewCatalogCacheTTL(ttl time.Duration) *CatalogCacheTTL {
	return &CatalogCacheTTL{ttl: ttl}
}

// Products — снимок каталога; (products, true) при попадании,
// (nil, false) при промахе или истечении TTL. Возвращается копия.
func (c *CatalogCacheTTL) Products(_ context.Context) ([]domain.Product, bool) {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.products == nil {
		metrics.CacheOps.WithLabelValues("miss").Inc()
		return nil, false
	}
	if c.isExpired(now) {
		metrics.CacheOps.WithLabelValues("expired").Inc()
		c.products = nil
		metrics.CacheSize.Set(0)
		return nil, false
	}

	metrics.CacheOps.WithLabelValues("hit").Inc()
	return cloneProducts(c.products), true
}

// SetProducts — сохранить снимок каталога (копируется внутрь).
func (c *CatalogCacheTTL) SetProducts(_ context.Context, products []domain.Product) error {
	if products == nil {
		return nil
	}
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.products = cloneProducts(products)
	c.expiresAt = c.expiryFrom(now)
	metrics.CacheSize.Set(float64(len(c.products)))
	return nil
}

// isExpired — проверяет истечение TTL.
func (c *CatalogCacheTTL) isExpired(now time.Time) bool {
	if c.ttl <= 0 {
		return false
	}
	return now.After(c.expiresAt)
}

// expiryFrom — момент истечения для текущего времени.
func (c *CatalogCacheTTL) expiryFrom(now time.Time) time.Time {
	if c.ttl <= 0 {
		return time.Time{}
	}
	return now.Add(c.ttl)
}

// cloneProducts — копия списка, чтобы внешние изменения
// не отражались на данных внутри кэша.
func cloneProducts(products []domain.Product) []domain.Product {
	cloned := make([]domain.Product, len(products))
	copy(cloned, products)
	for i := range cloned {
		if products[i].Colors != nil {
			cloned[i].Colors = append([]string(nil), products[i].Colors...)
		}
		if products[i].ImageURLs != nil {
			cloned[i].ImageURLs = append([]string(nil), products[i].ImageURLs...)
		}
	}
	return cloned
}
