package ports

import (
	"context"

	"github.com/Gunvolt24/distrinaranjos/internal/domain"
)

// DocumentStore — хранилище сгенерированных документов.
// Возвращает публичную ссылку и идентификатор; ошибка не фатальна для заказа.
type DocumentStore interface {
	Upload(ctx context.Context, data []byte, fileName string) (domain.StoredDocument, error)
}

// OrderLedger — журнал заказов. Append вызывается только после успешной
// загрузки документа; Recent — админская выборка последних записей.
type OrderLedger interface {
	Append(ctx context.Context, entry *domain.LedgerEntry) (string, error)
	Recent(ctx context.Context, limit, offset int) ([]domain.LedgerEntry, error)
}

// Notifier — почтовое уведомление о заказе (fire-and-forget).
type Notifier interface {
	Send(ctx context.Context, n *domain.Notification) error
}
