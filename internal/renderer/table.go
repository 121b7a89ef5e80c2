package renderer

import (
	"sort"
	"strconv"
	"strings"

	"github.com/Gunvolt24/distrinaranjos/internal/domain"
)

// rgb — цвет текста/заливки.
type rgb struct{ r, g, b int }

// Акцентные цвета уровней цены: price1 — зелёный, price2 — синий.
var (
	accentPrice1 = rgb{0, 128, 0}
	accentPrice2 = rgb{0, 122, 255}

	colorRed       = rgb{255, 0, 0}
	colorBlue      = rgb{0, 122, 255}
	colorBrown     = rgb{128, 80, 0}
	colorBlack     = rgb{0, 0, 0}
	colorGreyText  = rgb{100, 100, 100}
	colorDarkGrey  = rgb{51, 51, 51}
	colorMidGrey   = rgb{77, 77, 77}
	colorSeparator = rgb{200, 200, 200}
)

// accentFor — акцентный цвет для уровня цены.
func accentFor(tier domain.PriceTier) rgb {
	if tier == domain.TierPrice1 {
		return accentPrice1
	}
	return accentPrice2
}

// tableRow — готовая строка таблицы: отформатированные ячейки и акцент количества.
type tableRow struct {
	ref      string // «Бренд (Название)»
	color    string
	quantity string
	price    string // "$" + FormatAmount(цена уровня)
	subtotal string // "$" + FormatAmount(цена уровня * количество)
	accent   rgb

	subtotalValue int64
	quantityValue int
}

// buildTable — сортирует позиции и считает строки и итоги.
// Правила (фиксируются тестами):
//   - сортировка по (бренд, название) без учёта регистра, устойчивая;
//   - подытог строки = round(цена * количество) — округляется произведение,
//     а отображаемая цена единицы округляется отдельно (значения независимы);
//   - общий итог = сумма уже округлённых подытогов, не округление суммы;
//   - количество — точная целая сумма, без группировки разрядов.
//
// Вход не мутируется: позиции копируются перед сортировкой.
func buildTable(items []domain.CartItem, orderTier domain.PriceTier) (rows []tableRow, total int64, totalItems int) {
	sorted := make([]domain.CartItem, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		bi := strings.ToLower(sorted[i].Product.Brand)
		bj := strings.ToLower(sorted[j].Product.Brand)
		if bi != bj {
			return bi < bj
		}
		return strings.ToLower(sorted[i].Product.Name) < strings.ToLower(sorted[j].Product.Name)
	})

	rows = make([]tableRow, 0, len(sorted))
	for _, item := range sorted {
		tier := item.Tier
		if !tier.Valid() {
			tier = orderTier
		}
		price := item.Product.Price(tier)
		subtotal := roundAmount(price * float64(item.Quantity))

		rows = append(rows, tableRow{
			ref:           item.Product.Brand + " (" + item.Product.Name + ")",
			color:         item.Color,
			quantity:      strconv.Itoa(item.Quantity),
			price:         "$" + FormatAmount(price),
			subtotal:      "$" + groupDigits(subtotal),
			accent:        accentFor(tier),
			subtotalValue: subtotal,
			quantityValue: item.Quantity,
		})

		total += subtotal
		totalItems += item.Quantity
	}
	return rows, total, totalItems
}
