package ports

import (
	"context"

	"github.com/Gunvolt24/distrinaranjos/internal/domain"
)

// CatalogSource — внешний источник каталога товаров.
// FetchAll обязан выкачать все страницы бэкенда до возврата:
// частичное состояние пагинации наружу не отдаётся.
type CatalogSource interface {
	FetchAll(ctx context.Context) ([]domain.Product, error)
}

// CatalogCache — кэш снимка каталога на время просмотра страницы.
// Требования к реализации: потокобезопасность; возврат копий, а не внутренних слайсов.
type CatalogCache interface {
	// Products — вернуть снимок каталога; (products, true) при попадании,
	// (nil, false) при промахе или истечении TTL.
	Products(ctx context.Context) ([]domain.Product, bool)

	// SetProducts — сохранить/обновить снимок каталога.
	SetProducts(ctx context.Context, products []domain.Product) error
}
