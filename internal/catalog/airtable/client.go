// Пакет airtable — источник каталога товаров поверх Airtable REST API.
// Выкачивает таблицу целиком, проходя пагинацию по offset до конца:
// наружу отдаётся только полный список.
package airtable

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Gunvolt24/distrinaranjos/internal/domain"
	"github.com/Gunvolt24/distrinaranjos/internal/ports"
	"github.com/Gunvolt24/distrinaranjos/pkg/metrics"
)

// Проверка, что Client удовлетворяет порту приложения.
var _ ports.CatalogSource = (*Client)(nil)

// Config — параметры доступа к Airtable. Передаётся явно при сборке
// приложения, никаких глобальных переменных окружения внутри пакета.
type Config struct {
	BaseURL  string
	BaseID   string
	APIKey   string
	Table    string
	PageSize int
	Timeout  time.Duration
}

type Client struct {
	cfg   Config
	httpc *http.Client
	log   ports.Logger
}

// New — конструктор. Ретраев нет намеренно: ошибка загрузки каталога
// отдаётся наверх, повтор — по явному действию пользователя.
func New(cfg Config, log ports.Logger) *Client {
	if cfg.PageSize <= 0 || cfg.PageSize > 100 {
		cfg.PageSize = 100
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		cfg:   cfg,
		httpc: &http.Client{Timeout: timeout},
		log:   log,
	}
}

// attachment — вложение Airtable; нам нужна только ссылка.
type attachment struct {
	URL string `json:"url"`
}

type recordFields struct {
	Name               string       `json:"name"`
	Brand              string       `json:"brand"`
	ImageURL           []attachment `json:"imageURL"`
	ImageURLs          []attachment `json:"imageURLs"`
	ProductDescription string       `json:"productDescription"`
	Colors             []string     `json:"colors"`
	Price1             float64      `json:"price1"`
	Price2             float64      `json:"price2"`
	IsProductStarred   bool         `json:"isProductStarred"`
}

type record struct {
	ID     string       `json:"id"`
	Fields recordFields `json:"fields"`
}

type listResponse struct {
	Records []record `json:"records"`
	Offset  string   `json:"offset"`
}

// FetchAll — полная выгрузка каталога. Возвращает все товары или ошибку;
// частичный результат наружу не отдаётся.
func (c *Client) FetchAll(ctx context.Context) ([]domain.Product, error) {
	var (
		products []domain.Product
		offset   string
	)

	for {
		page, err := c.fetchPage(ctx, offset)
		if err != nil {
			metrics.CatalogFetches.WithLabelValues("error").Inc()
			return nil, err
		}

		for i := range page.Records {
			products = append(products, mapRecord(&page.Records[i]))
		}

		if page.Offset == "" {
			break
		}
		offset = page.Offset
	}

	metrics.CatalogFetches.WithLabelValues("ok").Inc()
	c.log.Infof(ctx, "catalog fetched products=%d table=%s", len(products), c.cfg.Table)
	return products, nil
}

func (c *Client) fetchPage(ctx context.Context, offset string) (*listResponse, error) {
	u, err := url.Parse(fmt.Sprintf("%s/%s/%s", c.cfg.BaseURL, c.cfg.BaseID, url.PathEscape(c.cfg.Table)))
	if err != nil {
		return nil, fmt.Errorf("airtable url: %w", err)
	}
	q := u.Query()
	q.Set("pageSize", strconv.Itoa(c.cfg.PageSize))
	if offset != "" {
		q.Set("offset", offset)
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("airtable request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("airtable fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("airtable fetch: unexpected status %d", resp.StatusCode)
	}

	var page listResponse
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("airtable decode: %w", err)
	}
	return &page, nil
}

// mapRecord — приведение записи Airtable к доменной модели.
// Отсутствующие поля получают нейтральные значения (пустая строка/слайс).
func mapRecord(r *record) domain.Product {
	colors := r.Fields.Colors
	if colors == nil {
		colors = []string{}
	}

	var images []string
	for _, a := range r.Fields.ImageURLs {
		images = append(images, a.URL)
	}
	if len(images) == 0 {
		for _, a := range r.Fields.ImageURL {
			images = append(images, a.URL)
		}
	}

	return domain.Product{
		ID:          r.ID,
		Name:        r.Fields.Name,
		Brand:       r.Fields.Brand,
		Description: r.Fields.ProductDescription,
		Colors:      colors,
		Price1:      r.Fields.Price1,
		Price2:      r.Fields.Price2,
		ImageURLs:   images,
		Starred:     r.Fields.IsProductStarred,
	}
}
