package ports

import "github.com/Gunvolt24/distrinaranjos/internal/domain"

// OrderRenderer — генератор PDF-документа заказа.
// Чистая синхронная операция: либо полный буфер, либо ошибка без частичной записи.
type OrderRenderer interface {
	Render(req *domain.OrderRequest) (*domain.RenderedOrder, error)
}
