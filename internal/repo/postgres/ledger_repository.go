package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/Gunvolt24/distrinaranjos/internal/domain"
	"github.com/Gunvolt24/distrinaranjos/internal/ports"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Проверка, что репозиторий удовлетворяет порту приложения.
var _ ports.OrderLedger = (*LedgerRepository)(nil)

// LedgerRepository — журнал отправленных заказов.
// Запись в журнал не влияет на результат отправки: ошибки здесь мягкие.
type LedgerRepository struct {
	pool *pgxpool.Pool
	log  ports.Logger
}

func NewLedgerRepository(pool *pgxpool.Pool, log ports.Logger) *LedgerRepository {
	return &LedgerRepository{pool: pool, log: log}
}

// Append — добавить запись журнала, возвращает её идентификатор.
func (r *LedgerRepository) Append(ctx context.Context, entry *domain.LedgerEntry) (string, error) {
	if entry == nil {
		return "", fmt.Errorf("ledger entry is nil")
	}

	id := uuid.NewString()
	deliveredTo := entry.DeliveredTo
	if deliveredTo == nil {
		deliveredTo = []string{}
	}
	readBy := entry.ReadBy
	if readBy == nil {
		readBy = []string{}
	}

	const q = `
		INSERT INTO orders_ledger
			(id, user_id, user_name, details, file_url, file_name, delivered_to, read_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.pool.Exec(ctx, q,
		id, entry.UserID, entry.UserName, entry.Details,
		entry.FileURL, entry.FileName, deliveredTo, readBy, time.Now().UTC(),
	)
	if err != nil {
		return "", fmt.Errorf("insert ledger entry: %w", err)
	}

	r.log.Infof(ctx, "ledger entry appended id=%s user=%s file=%s", id, entry.UserID, entry.FileName)
	return id, nil
}

// Recent — последние записи журнала (для админской выборки).
func (r *LedgerRepository) Recent(ctx context.Context, limit, offset int) ([]domain.LedgerEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	const q = `
		SELECT user_id, user_name, details, file_url, file_name, delivered_to, read_by
		FROM orders_ledger
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, q, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("select ledger entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.LedgerEntry
	for rows.Next() {
		var e domain.LedgerEntry
		if err := rows.Scan(&e.UserID, &e.UserName, &e.Details, &e.FileURL, &e.FileName, &e.DeliveredTo, &e.ReadBy); err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ledger entries: %w", err)
	}
	return entries, nil
}
