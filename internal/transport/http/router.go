// Пакет rest — HTTP-слой: форма заказов, каталог, приём заказа с отдачей PDF.
package rest

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/Gunvolt24/distrinaranjos/internal/clientimport"
	"github.com/Gunvolt24/distrinaranjos/internal/domain"
	"github.com/Gunvolt24/distrinaranjos/internal/ports"
	"github.com/Gunvolt24/distrinaranjos/internal/usecase"
	"github.com/Gunvolt24/distrinaranjos/pkg/httpx"
	"github.com/Gunvolt24/distrinaranjos/pkg/metrics"
	"github.com/Gunvolt24/distrinaranjos/pkg/validate"
)

// OrderService — контракт бизнес-логики, нужный HTTP-слою.
type OrderService interface {
	Products(ctx context.Context) ([]domain.Product, error)
	Submit(ctx context.Context, req *domain.OrderRequest) (*usecase.SubmitResult, error)
	RecentOrders(ctx context.Context, limit, offset int) ([]domain.LedgerEntry, error)
}

type Handler struct {
	service    OrderService
	log        ports.Logger
	reqTimeout time.Duration
}

func NewHandler(service OrderService, log ports.Logger, reqTimeout time.Duration) *Handler {
	if reqTimeout <= 0 {
		reqTimeout = 30 * time.Second
	}
	return &Handler{service: service, log: log, reqTimeout: reqTimeout}
}

// NewRouter — prod-пайплайн: recovery, request-id, логирование запросов,
// опционально otelgin (когда передано имя сервиса для трейсинга).
func NewRouter(h *Handler, staticDir, otelService string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.RequestLogger(h.log))
	if otelService != "" {
		r.Use(otelgin.Middleware(otelService))
	}

	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	api.GET("/products", h.listProducts)
	api.POST("/orders", h.submitOrder)
	api.POST("/clients/import", h.importClients)
	api.GET("/ledger", h.listLedger)

	if staticDir != "" {
		r.Static("/static", staticDir)
		r.StaticFile("/", filepath.Join(staticDir, "index.html"))
	}

	return r
}

// listProducts — каталог целиком (кэш → источник).
func (h *Handler) listProducts(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.reqTimeout)
	defer cancel()

	products, err := h.service.Products(ctx)
	if err != nil {
		h.log.Errorf(ctx, "Products failed err=%v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "could not load catalog"})
		return
	}
	c.JSON(http.StatusOK, products)
}

// submitOrder — приём заказа: JSON → PDF-байты в ответе.
// Ссылка на загруженный документ и идентификатор записи журнала — в заголовках.
func (h *Handler) submitOrder(c *gin.Context) {
	var req domain.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.OrdersFailed.WithLabelValues("http").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order payload"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.reqTimeout)
	defer cancel()

	res, err := h.service.Submit(ctx, &req)
	if err != nil {
		metrics.OrdersFailed.WithLabelValues("http").Inc()
		if errors.Is(err, validate.ErrInvalidOrder) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.log.Errorf(ctx, "Submit failed err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate order document"})
		return
	}
	metrics.OrdersSubmitted.WithLabelValues("http").Inc()

	rendered := res.Rendered
	c.Header("Content-Disposition", `attachment; filename="`+rendered.FileName+`"`)
	c.Header("Content-Length", strconv.Itoa(len(rendered.Bytes)))
	if res.DocumentURL != "" {
		c.Header("X-Document-URL", res.DocumentURL)
		c.Header("X-Document-ID", res.DocumentID)
	}
	c.Data(http.StatusOK, "application/pdf", rendered.Bytes)
}

// importClients — CSV-выгрузка в теле запроса → нормализованный список клиентов.
func (h *Handler) importClients(c *gin.Context) {
	clients, err := clientimport.ReadCSV(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid csv"})
		return
	}

	deduped := clientimport.Dedupe(clients)
	c.JSON(http.StatusOK, gin.H{
		"clients":  deduped,
		"total":    len(clients),
		"imported": len(deduped),
	})
}

// listLedger — последние записи журнала заказов.
func (h *Handler) listLedger(c *gin.Context) {
	limit, offset := httpx.ParseLimitOffset(c, 50, 200)

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.reqTimeout)
	defer cancel()

	entries, err := h.service.RecentOrders(ctx, limit, offset)
	if err != nil {
		h.log.Errorf(ctx, "RecentOrders failed err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, entries)
}
