//go:build integration

package testutil

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/Gunvolt24/distrinaranjos/internal/domain"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func UniqSuffix() string { return randHex(6) }

// Мини-генератор валидного запроса заказа
func MakeOrderRequest(opts ...func(*domain.OrderRequest)) domain.OrderRequest {
	req := domain.OrderRequest{
		Client: domain.Client{
			CompanyName:    "Comercial " + UniqSuffix(),
			Identification: "900" + UniqSuffix(),
			Name:           "Carlos",
			Surname:        "Mejía",
			Phone:          "+57 300 000 0000",
			Address:        "Cra 1 # 2-3",
			City:           "Medellín",
			Department:     "Antioquia",
		},
		Tier: domain.TierPrice1,
		Items: []domain.CartItem{
			{
				Product: domain.Product{
					ID:     "rec-" + UniqSuffix(),
					Name:   "Morral",
					Brand:  "Naranjos",
					Price1: 52500,
					Price2: 48000,
				},
				Quantity: 2,
				Color:    "Negro",
			},
		},
	}

	for _, fn := range opts {
		fn(&req)
	}
	return req
}

// Доп. опция — переопределить тип цены в тесте
func WithPriceTier(tier domain.PriceTier) func(*domain.OrderRequest) {
	return func(r *domain.OrderRequest) { r.Tier = tier }
}

func WithCompany(name string) func(*domain.OrderRequest) {
	return func(r *domain.OrderRequest) { r.Client.CompanyName = name }
}

func WithItems(n int) func(*domain.OrderRequest) {
	return func(r *domain.OrderRequest) {
		r.Items = make([]domain.CartItem, 0, n)
		for i := 0; i < n; i++ {
			r.Items = append(r.Items, domain.CartItem{
				Product: domain.Product{
					ID:     "rec-" + UniqSuffix(),
					Name:   "Item",
					Brand:  "Brand",
					Price1: float64(1000 * (i + 1)),
					Price2: float64(900 * (i + 1)),
				},
				Quantity: i + 1,
			})
		}
	}
}
