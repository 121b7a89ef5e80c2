package renderer

import (
	"testing"

	"github.com/Gunvolt24/distrinaranjos/internal/domain"
)

func item(brand, name string, price1, price2 float64, qty int) domain.CartItem {
	return domain.CartItem{
		Product: domain.Product{
			ID:     brand + "-" + name,
			Name:   name,
			Brand:  brand,
			Price1: price1,
			Price2: price2,
		},
		Quantity: qty,
		Tier:     domain.TierPrice1,
	}
}

// Порядок строк: (бренд, название) без учёта регистра, независимо от порядка на входе.
func TestBuildTable_SortsByBrandThenName(t *testing.T) {
	items := []domain.CartItem{
		item("zeta", "Alpha", 10, 8, 1),
		item("Acme", "zapato", 10, 8, 1),
		item("acme", "Bolso", 10, 8, 1),
		item("Beta", "Mochila", 10, 8, 1),
	}

	rows, _, _ := buildTable(items, domain.TierPrice1)

	want := []string{"Acme (zapato)", "acme (Bolso)", "Beta (Mochila)", "zeta (Alpha)"}
	// "Acme"/"acme" равны без регистра: устойчивая сортировка сохраняет порядок вставки.
	if len(rows) != len(want) {
		t.Fatalf("rows: want %d, got %d", len(want), len(rows))
	}
	for i := range want {
		if rows[i].ref != want[i] {
			t.Fatalf("row %d: want %q, got %q", i, want[i], rows[i].ref)
		}
	}
}

// Вход не мутируется: исходный слайс остаётся в порядке вставки.
func TestBuildTable_DoesNotMutateInput(t *testing.T) {
	items := []domain.CartItem{
		item("zeta", "Z", 10, 8, 1),
		item("alfa", "A", 10, 8, 1),
	}

	buildTable(items, domain.TierPrice1)

	if items[0].Product.Brand != "zeta" || items[1].Product.Brand != "alfa" {
		t.Fatalf("input order changed: %q, %q", items[0].Product.Brand, items[1].Product.Brand)
	}
}

// Итог — сумма округлённых подытогов, а не округление точной суммы.
func TestBuildTable_TotalSumsRoundedSubtotals(t *testing.T) {
	items := []domain.CartItem{
		item("a", "x", 100.5, 0, 1),
		item("b", "y", 100.5, 0, 1),
	}

	rows, total, totalItems := buildTable(items, domain.TierPrice1)

	if rows[0].subtotalValue != 101 || rows[1].subtotalValue != 101 {
		t.Fatalf("subtotals: want 101/101, got %d/%d", rows[0].subtotalValue, rows[1].subtotalValue)
	}
	if total != 202 {
		t.Fatalf("total: want 202 (sum of rounded), got %d", total)
	}
	if exact := roundAmount(100.5 + 100.5); total == exact {
		t.Fatalf("total must differ from round(sum)=%d on this input", exact)
	}
	if totalItems != 2 {
		t.Fatalf("totalItems: want 2, got %d", totalItems)
	}
}

// Отображаемая цена единицы округляется отдельно от подытога:
// round(цена)*кол-во не обязан совпадать с round(цена*кол-во).
func TestBuildTable_IndependentRoundings(t *testing.T) {
	rows, _, _ := buildTable([]domain.CartItem{item("a", "x", 10.4, 0, 3)}, domain.TierPrice1)

	if rows[0].price != "$10" {
		t.Fatalf("price cell: want $10, got %s", rows[0].price)
	}
	// 10.4*3 = 31.2 -> 31, а не round(10.4)*3 = 30.
	if rows[0].subtotal != "$31" {
		t.Fatalf("subtotal cell: want $31, got %s", rows[0].subtotal)
	}
}

// Количество — точная сумма, без округления и без группировки разрядов.
func TestBuildTable_ItemCountExact(t *testing.T) {
	items := []domain.CartItem{
		item("a", "x", 1, 1, 700),
		item("b", "y", 1, 1, 534),
	}

	rows, _, totalItems := buildTable(items, domain.TierPrice1)

	if totalItems != 1234 {
		t.Fatalf("totalItems: want 1234, got %d", totalItems)
	}
	if rows[0].quantity != "700" {
		t.Fatalf("quantity cell: want 700, got %s", rows[0].quantity)
	}
}

// Смена уровня цены меняет цену/подытог/итог и акцентный цвет, но не порядок строк.
func TestBuildTable_TierSelection(t *testing.T) {
	items := []domain.CartItem{
		{Product: domain.Product{Name: "B", Brand: "m"}, Quantity: 2},
		{Product: domain.Product{Name: "A", Brand: "m"}, Quantity: 1},
	}
	items[0].Product.Price1, items[0].Product.Price2 = 100, 80
	items[1].Product.Price1, items[1].Product.Price2 = 50, 40

	rows1, total1, _ := buildTable(items, domain.TierPrice1)
	rows2, total2, _ := buildTable(items, domain.TierPrice2)

	if total1 != 250 || total2 != 200 {
		t.Fatalf("totals: want 250/200, got %d/%d", total1, total2)
	}
	for i := range rows1 {
		if rows1[i].ref != rows2[i].ref {
			t.Fatalf("row order changed between tiers: %q vs %q", rows1[i].ref, rows2[i].ref)
		}
		if rows1[i].accent != accentPrice1 || rows2[i].accent != accentPrice2 {
			t.Fatalf("row %d accents: got %v / %v", i, rows1[i].accent, rows2[i].accent)
		}
	}
}
