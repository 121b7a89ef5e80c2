package validate

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/Gunvolt24/distrinaranjos/internal/domain"
	"github.com/Gunvolt24/distrinaranjos/internal/ports"
)

// Проверка, что OrderValidator удовлетворяет интерфейсу OrderValidator.
var _ ports.OrderValidator = (*OrderValidator)(nil)

// ErrInvalidOrder — базовая (sentinel error) ошибка валидации.
var ErrInvalidOrder = errors.New("order validation failed")

// OrderValidator — структура для валидации запроса заказа.
// Поля клиента не проверяются: все они необязательные строки,
// пустая корзина тоже допустима (рендер даёт документ без позиций).
type OrderValidator struct{}

// NewOrderValidator — конструктор OrderValidator.
// Validate возвращает ErrInvalidOrder (с обёрнутой причиной) при любой проблеме.
func NewOrderValidator() *OrderValidator { return &OrderValidator{} }

// Validate — проверяет корректность запроса заказа.
func (v *OrderValidator) Validate(_ context.Context, req *domain.OrderRequest) error {
	if req == nil {
		return fmt.Errorf("%w: запрос не может быть nil", ErrInvalidOrder)
	}
	if !req.Tier.Valid() {
		return fmt.Errorf("%w: selectedPriceType %q неизвестен", ErrInvalidOrder, req.Tier)
	}
	return v.validateItems(req.Items)
}

// validateItems — валидация позиций корзины.
func (v *OrderValidator) validateItems(items []domain.CartItem) error {
	for i := range items {
		item := &items[i]
		idx := strconv.Itoa(i)

		if item.Product.ID == "" && item.Product.Name == "" {
			return fmt.Errorf("%w: cartItems[%s].product без идентификатора и имени", ErrInvalidOrder, idx)
		}
		if item.Quantity <= 0 {
			return fmt.Errorf("%w: cartItems[%s].quantity должен быть положительным", ErrInvalidOrder, idx)
		}
		if item.Tier != "" && !item.Tier.Valid() {
			return fmt.Errorf("%w: cartItems[%s].selectedPrice %q неизвестен", ErrInvalidOrder, idx, item.Tier)
		}
		if item.Product.Price1 < 0 || item.Product.Price2 < 0 {
			return fmt.Errorf("%w: cartItems[%s].product с отрицательной ценой", ErrInvalidOrder, idx)
		}
	}
	return nil
}
