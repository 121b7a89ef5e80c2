package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/Gunvolt24/distrinaranjos/internal/domain"
	"github.com/Gunvolt24/distrinaranjos/internal/ports/mocks"
	"github.com/Gunvolt24/distrinaranjos/internal/usecase"
	"github.com/Gunvolt24/distrinaranjos/pkg/validate"
)

type nopLogger struct{}

func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

type deps struct {
	catalog   *mocks.MockCatalogSource
	cache     *mocks.MockCatalogCache
	renderer  *mocks.MockOrderRenderer
	store     *mocks.MockDocumentStore
	ledger    *mocks.MockOrderLedger
	notifier  *mocks.MockNotifier
	validator *mocks.MockOrderValidator
}

func newService(t *testing.T, notificationsEnabled bool) (*usecase.OrderService, deps) {
	t.Helper()
	ctrl := gomock.NewController(t)

	d := deps{
		catalog:   mocks.NewMockCatalogSource(ctrl),
		cache:     mocks.NewMockCatalogCache(ctrl),
		renderer:  mocks.NewMockOrderRenderer(ctrl),
		store:     mocks.NewMockDocumentStore(ctrl),
		ledger:    mocks.NewMockOrderLedger(ctrl),
		notifier:  mocks.NewMockNotifier(ctrl),
		validator: mocks.NewMockOrderValidator(ctrl),
	}

	svc := usecase.NewOrderService(
		d.catalog, d.cache, d.renderer, d.store, d.ledger, d.notifier, d.validator,
		nopLogger{}, notificationsEnabled, []string{"pedidos@example.com"},
	)
	return svc, d
}

func sampleRequest() *domain.OrderRequest {
	return &domain.OrderRequest{
		Client: domain.Client{CompanyName: "Comercial XYZ", Phone: "300"},
		Tier:   domain.TierPrice1,
		Items: []domain.CartItem{
			{Product: domain.Product{ID: "rec1", Name: "Morral", Brand: "Naranjos", Price1: 52500.5}, Quantity: 2},
		},
		Comment: "entrega en portería",
	}
}

func sampleRendered() *domain.RenderedOrder {
	return &domain.RenderedOrder{
		Bytes:      []byte("%PDF-1.3 fake"),
		FileName:   "Comercial XYZ - 01.09.2026_14.30.pdf",
		Total:      105001,
		TotalItems: 2,
		Pages:      1,
	}
}

func TestSubmit_HappyPath(t *testing.T) {
	ctx := context.Background()
	svc, d := newService(t, false)

	req := sampleRequest()
	rendered := sampleRendered()

	d.validator.EXPECT().Validate(ctx, req).Return(nil)
	d.renderer.EXPECT().Render(req).Return(rendered, nil)
	d.store.EXPECT().Upload(ctx, rendered.Bytes, rendered.FileName).
		Return(domain.StoredDocument{URL: "https://cdn/x.pdf", PublicID: "pdfs/x"}, nil)
	d.ledger.EXPECT().Append(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *domain.LedgerEntry) (string, error) {
			if entry.UserName != "Comercial XYZ" {
				t.Errorf("unexpected user name: %s", entry.UserName)
			}
			if !strings.Contains(entry.Details, "Cliente: Comercial XYZ") ||
				!strings.Contains(entry.Details, "Total: 105001") ||
				!strings.Contains(entry.Details, "Tipo: Precio 1") ||
				!strings.Contains(entry.Details, "Comentario: entrega en portería") {
				t.Errorf("unexpected details: %s", entry.Details)
			}
			if entry.FileURL != "https://cdn/x.pdf" {
				t.Errorf("unexpected file url: %s", entry.FileURL)
			}
			return "ledger-1", nil
		})
	// notificationsEnabled=false — Send не должен вызываться

	res, err := svc.Submit(ctx, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.DocumentURL != "https://cdn/x.pdf" || res.DocumentID != "pdfs/x" {
		t.Fatalf("unexpected document fields: %+v", res)
	}
	if res.LedgerID != "ledger-1" {
		t.Fatalf("unexpected ledger id: %s", res.LedgerID)
	}
	if res.Rendered != rendered {
		t.Fatalf("rendered order not propagated")
	}
}

func TestSubmit_ValidationError_Hard(t *testing.T) {
	ctx := context.Background()
	svc, d := newService(t, true)

	req := sampleRequest()
	d.validator.EXPECT().Validate(ctx, req).Return(validate.ErrInvalidOrder)
	// Рендер и стоки не вызываются вовсе.

	if _, err := svc.Submit(ctx, req); !errors.Is(err, validate.ErrInvalidOrder) {
		t.Fatalf("want ErrInvalidOrder, got %v", err)
	}
}

func TestSubmit_RenderError_Hard(t *testing.T) {
	ctx := context.Background()
	svc, d := newService(t, true)

	req := sampleRequest()
	d.validator.EXPECT().Validate(ctx, req).Return(nil)
	d.renderer.EXPECT().Render(req).Return(nil, errors.New("page overflow"))

	_, err := svc.Submit(ctx, req)
	if err == nil || !strings.Contains(err.Error(), "render order") {
		t.Fatalf("want render error, got %v", err)
	}
}

// Загрузка упала => журнал не пишется, но заказ проведён (без URL).
func TestSubmit_UploadFails_NoLedger_StillSuccess(t *testing.T) {
	ctx := context.Background()
	svc, d := newService(t, false)

	req := sampleRequest()
	rendered := sampleRendered()

	d.validator.EXPECT().Validate(ctx, req).Return(nil)
	d.renderer.EXPECT().Render(req).Return(rendered, nil)
	d.store.EXPECT().Upload(ctx, rendered.Bytes, rendered.FileName).
		Return(domain.StoredDocument{}, errors.New("storage quota"))
	// ledger.Append НЕ ожидается: вызов упадёт как unexpected call

	res, err := svc.Submit(ctx, req)
	if err != nil {
		t.Fatalf("upload failure must be soft: %v", err)
	}
	if res.DocumentURL != "" || res.LedgerID != "" {
		t.Fatalf("no artifacts expected, got %+v", res)
	}
}

// Журнал упал => заказ всё равно проведён, ссылка на документ есть.
func TestSubmit_LedgerFails_StillSuccess(t *testing.T) {
	ctx := context.Background()
	svc, d := newService(t, false)

	req := sampleRequest()
	rendered := sampleRendered()

	d.validator.EXPECT().Validate(ctx, req).Return(nil)
	d.renderer.EXPECT().Render(req).Return(rendered, nil)
	d.store.EXPECT().Upload(ctx, rendered.Bytes, rendered.FileName).
		Return(domain.StoredDocument{URL: "https://cdn/x.pdf", PublicID: "pdfs/x"}, nil)
	d.ledger.EXPECT().Append(ctx, gomock.Any()).Return("", errors.New("db down"))

	res, err := svc.Submit(ctx, req)
	if err != nil {
		t.Fatalf("ledger failure must be soft: %v", err)
	}
	if res.DocumentURL != "https://cdn/x.pdf" {
		t.Fatalf("document url must survive ledger failure")
	}
	if res.LedgerID != "" {
		t.Fatalf("ledger id must be empty, got %s", res.LedgerID)
	}
}

// Письмо упало => заказ проведён; включённые уведомления шлются даже без загрузки.
func TestSubmit_NotifyFails_StillSuccess(t *testing.T) {
	ctx := context.Background()
	svc, d := newService(t, true)

	req := sampleRequest()
	rendered := sampleRendered()

	d.validator.EXPECT().Validate(ctx, req).Return(nil)
	d.renderer.EXPECT().Render(req).Return(rendered, nil)
	d.store.EXPECT().Upload(ctx, rendered.Bytes, rendered.FileName).
		Return(domain.StoredDocument{}, errors.New("network"))
	d.notifier.EXPECT().Send(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, n *domain.Notification) error {
			if n.AttachmentName != rendered.FileName {
				t.Errorf("unexpected attachment name: %s", n.AttachmentName)
			}
			if len(n.Recipients) != 1 {
				t.Errorf("unexpected recipients: %v", n.Recipients)
			}
			return errors.New("smtp down")
		})

	if _, err := svc.Submit(ctx, req); err != nil {
		t.Fatalf("notify failure must be soft: %v", err)
	}
}

func TestProducts_CacheHit(t *testing.T) {
	ctx := context.Background()
	svc, d := newService(t, false)

	want := []domain.Product{{ID: "rec1", Name: "Morral"}}
	d.cache.EXPECT().Products(ctx).Return(want, true)
	// catalog.FetchAll не вызывается

	got, err := svc.Products(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "rec1" {
		t.Fatalf("unexpected products: %+v", got)
	}
}

func TestProducts_CacheMiss_FetchesAndStores(t *testing.T) {
	ctx := context.Background()
	svc, d := newService(t, false)

	want := []domain.Product{{ID: "rec1"}, {ID: "rec2"}}
	d.cache.EXPECT().Products(ctx).Return(nil, false)
	d.catalog.EXPECT().FetchAll(ctx).Return(want, nil)
	d.cache.EXPECT().SetProducts(ctx, want).Return(nil)

	got, err := svc.Products(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("unexpected products: %+v", got)
	}
}

// Ошибка записи в кэш не мешает отдать каталог.
func TestProducts_CacheSetFailure_Soft(t *testing.T) {
	ctx := context.Background()
	svc, d := newService(t, false)

	want := []domain.Product{{ID: "rec1"}}
	d.cache.EXPECT().Products(ctx).Return(nil, false)
	d.catalog.EXPECT().FetchAll(ctx).Return(want, nil)
	d.cache.EXPECT().SetProducts(ctx, want).Return(errors.New("cache broken"))

	if _, err := svc.Products(ctx); err != nil {
		t.Fatalf("cache set failure must be soft: %v", err)
	}
}

func TestProducts_FetchError(t *testing.T) {
	ctx := context.Background()
	svc, d := newService(t, false)

	d.cache.EXPECT().Products(ctx).Return(nil, false)
	d.catalog.EXPECT().FetchAll(ctx).Return(nil, errors.New("airtable 502"))

	if _, err := svc.Products(ctx); err == nil {
		t.Fatalf("expected fetch error")
	}
}

func TestSubmitFromMessage_OK(t *testing.T) {
	ctx := context.Background()
	svc, d := newService(t, false)

	raw := []byte(`{
	  "client": {"companyName": "Comercial XYZ"},
	  "cartItems": [{"product": {"id": "rec1", "name": "Morral"}, "quantity": 1}],
	  "selectedPriceType": "price1"
	}`)

	d.validator.EXPECT().Validate(ctx, gomock.Any()).Return(nil)
	d.renderer.EXPECT().Render(gomock.Any()).Return(sampleRendered(), nil)
	d.store.EXPECT().Upload(ctx, gomock.Any(), gomock.Any()).
		Return(domain.StoredDocument{URL: "u", PublicID: "p"}, nil)
	d.ledger.EXPECT().Append(ctx, gomock.Any()).Return("ledger-1", nil)

	if err := svc.SubmitFromMessage(ctx, raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// Неизвестное поле и хвостовые данные — невалидный заказ (коммит в консьюмере).
func TestSubmitFromMessage_StrictDecode(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t, false)

	cases := []struct {
		name string
		raw  string
	}{
		{"unknown field", `{"unknown": 1}`},
		{"trailing data", `{"selectedPriceType": "price1"}{}`},
		{"not json", `this is not json`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := svc.SubmitFromMessage(ctx, []byte(tc.raw))
			if !errors.Is(err, validate.ErrInvalidOrder) {
				t.Fatalf("want ErrInvalidOrder, got %v", err)
			}
		})
	}
}
