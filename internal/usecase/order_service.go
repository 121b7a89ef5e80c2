package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/Gunvolt24/distrinaranjos/internal/domain"
	"github.com/Gunvolt24/distrinaranjos/internal/ports"
	"github.com/Gunvolt24/distrinaranjos/pkg/metrics"
	"github.com/Gunvolt24/distrinaranjos/pkg/validate"
)

// SubmitResult — итог проведения заказа: документ плюс необязательные
// артефакты мягких шагов (ссылка на загрузку, идентификатор записи журнала).
type SubmitResult struct {
	Rendered    *domain.RenderedOrder
	DocumentURL string
	DocumentID  string
	LedgerID    string
}

// OrderService — прикладная логика заказов (без знаний о транспорте).
// Рендер обязателен; загрузка, журнал и письмо — мягкие шаги: их отказ
// логируется, но заказ считается проведённым. Отката нет (at-most-once).
type OrderService struct {
	catalog   ports.CatalogSource
	cache     ports.CatalogCache
	renderer  ports.OrderRenderer
	store     ports.DocumentStore
	ledger    ports.OrderLedger
	notifier  ports.Notifier
	validator ports.OrderValidator
	log       ports.Logger

	notificationsEnabled bool
	notifyRecipients     []string
}

// NewOrderService — DI-конструктор.
func NewOrderService(
	catalog ports.CatalogSource,
	cache ports.CatalogCache,
	renderer ports.OrderRenderer,
	store ports.DocumentStore,
	ledger ports.OrderLedger,
	notifier ports.Notifier,
	validator ports.OrderValidator,
	log ports.Logger,
	notificationsEnabled bool,
	notifyRecipients []string,
) *OrderService {
	return &OrderService{
		catalog:              catalog,
		cache:                cache,
		renderer:             renderer,
		store:                store,
		ledger:               ledger,
		notifier:             notifier,
		validator:            validator,
		log:                  log,
		notificationsEnabled: notificationsEnabled,
		notifyRecipients:     notifyRecipients,
	}
}

// Products — снимок каталога: сначала кэш, при промахе — полная выкачка
// из источника с записью в кэш. Ошибка записи в кэш не фатальна.
func (s *OrderService) Products(ctx context.Context) ([]domain.Product, error) {
	if products, found := s.cache.Products(ctx); found {
		s.log.Infof(ctx, "catalog cache hit products=%d", len(products))
		return products, nil
	}
	s.log.Infof(ctx, "catalog cache miss")

	start := time.Now()
	products, err := s.catalog.FetchAll(ctx)
	if err != nil {
		s.log.Errorf(ctx, "catalog.FetchAll failed err=%v", err)
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}

	if setErr := s.cache.SetProducts(ctx, products); setErr != nil {
		s.log.Warnf(ctx, "cache.SetProducts failed err=%v", setErr)
	}

	s.log.Infof(ctx, "catalog fetched products=%d took=%s", len(products), time.Since(start))
	return products, nil
}

// Submit — провести заказ:
//  1. доменная валидация → жёсткая ошибка;
//  2. рендер PDF → жёсткая ошибка, частичного вывода не бывает;
//  3. загрузка документа → мягкий шаг; при успехе:
//  4. запись в журнал → мягкий шаг;
//  5. письмо (если включено) → мягкий шаг.
func (s *OrderService) Submit(ctx context.Context, req *domain.OrderRequest) (*SubmitResult, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		s.log.Warnf(ctx, "validation failed err=%v", err)
		return nil, err
	}

	start := time.Now()
	rendered, err := s.renderer.Render(req)
	if err != nil {
		s.log.Errorf(ctx, "render failed company=%q err=%v", req.Client.CompanyName, err)
		return nil, fmt.Errorf("render order: %w", err)
	}
	metrics.RenderDuration.Observe(time.Since(start).Seconds())

	res := &SubmitResult{Rendered: rendered}

	doc, uploadErr := s.store.Upload(ctx, rendered.Bytes, rendered.FileName)
	if uploadErr != nil {
		s.log.Warnf(ctx, "document upload failed file=%s err=%v", rendered.FileName, uploadErr)
		metrics.SinkFailures.WithLabelValues("document_store").Inc()
	} else {
		res.DocumentURL = doc.URL
		res.DocumentID = doc.PublicID

		// Журнал пишется только для загруженных документов:
		// запись без рабочей ссылки бесполезна для получателей.
		entry := s.ledgerEntry(req, rendered, &doc)
		if ledgerID, ledgerErr := s.ledger.Append(ctx, entry); ledgerErr != nil {
			s.log.Warnf(ctx, "ledger append failed file=%s err=%v", rendered.FileName, ledgerErr)
			metrics.SinkFailures.WithLabelValues("ledger").Inc()
		} else {
			res.LedgerID = ledgerID
		}
	}

	if s.notificationsEnabled {
		if notifyErr := s.notifier.Send(ctx, s.notification(req, rendered, res.DocumentURL)); notifyErr != nil {
			s.log.Warnf(ctx, "notification failed file=%s err=%v", rendered.FileName, notifyErr)
			metrics.SinkFailures.WithLabelValues("notifier").Inc()
		}
	}

	s.log.Infof(ctx, "order submitted file=%s total=%d items=%d pages=%d",
		rendered.FileName, rendered.Total, rendered.TotalItems, rendered.Pages)
	return res, nil
}

// RecentOrders — последние записи журнала (пагинация валидирована на верхнем уровне).
func (s *OrderService) RecentOrders(ctx context.Context, limit, offset int) ([]domain.LedgerEntry, error) {
	return s.ledger.Recent(ctx, limit, offset)
}

// SubmitFromMessage — провести заказ, пришедший из Kafka (raw JSON).
// Строгое декодирование: неизвестные поля и хвостовые данные — ошибка валидации.
func (s *OrderService) SubmitFromMessage(ctx context.Context, raw []byte) error {
	// Битый JSON помечаем как невалидный заказ, чтобы консьюмер
	// закоммитил оффсет и не ретраил мусор бесконечно.
	var req domain.OrderRequest
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.log.Warnf(ctx, "invalid json err=%v", err)
		return fmt.Errorf("%w: invalid json: %v", validate.ErrInvalidOrder, err)
	}

	// Убеждаемся, что после объекта нет лишних данных.
	if err := dec.Decode(new(struct{})); err != io.EOF {
		s.log.Warnf(ctx, "invalid json: trailing data")
		return fmt.Errorf("%w: invalid json: trailing data", validate.ErrInvalidOrder)
	}

	if _, err := s.Submit(ctx, &req); err != nil {
		metrics.OrdersFailed.WithLabelValues("kafka").Inc()
		return err
	}
	metrics.OrdersSubmitted.WithLabelValues("kafka").Inc()
	return nil
}

// ledgerEntry — плоская запись журнала в формате мобильного приложения.
func (s *OrderService) ledgerEntry(req *domain.OrderRequest, rendered *domain.RenderedOrder, doc *domain.StoredDocument) *domain.LedgerEntry {
	userName := req.Client.CompanyName
	if userName == "" {
		userName = req.Client.FullName()
	}

	return &domain.LedgerEntry{
		UserID:      "web-client",
		UserName:    userName,
		Details:     orderDetails(req, rendered),
		FileURL:     doc.URL,
		FileName:    rendered.FileName,
		DeliveredTo: append([]string(nil), s.notifyRecipients...),
		ReadBy:      []string{},
	}
}

// notification — письмо менеджерам с приложенным PDF.
func (s *OrderService) notification(req *domain.OrderRequest, rendered *domain.RenderedOrder, docURL string) *domain.Notification {
	body := fmt.Sprintf(
		"<h2>Nuevo pedido</h2><p>%s</p><p>Art&iacute;culos: %d</p>",
		orderDetails(req, rendered), rendered.TotalItems,
	)
	if docURL != "" {
		body += fmt.Sprintf(`<p><a href=%q>Ver documento</a></p>`, docURL)
	}

	return &domain.Notification{
		Recipients:     append([]string(nil), s.notifyRecipients...),
		Subject:        "Nuevo pedido: " + rendered.FileName,
		HTMLBody:       body,
		AttachmentName: rendered.FileName,
		Attachment:     rendered.Bytes,
	}
}

// orderDetails — строка деталей для журнала и письма.
func orderDetails(req *domain.OrderRequest, rendered *domain.RenderedOrder) string {
	tierLabel := "Precio 1"
	if req.Tier == domain.TierPrice2 {
		tierLabel = "Precio 2"
	}

	details := fmt.Sprintf("Cliente: %s | Total: %d | Tipo: %s",
		req.Client.CompanyName, rendered.Total, tierLabel)
	if req.Comment != "" {
		details += " | Comentario: " + req.Comment
	}
	return details
}
