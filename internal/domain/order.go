package domain

// PriceTier — выбранный уровень цены заказа.
// Значения на проводе совпадают с полями каталога: price1 / price2.
type PriceTier string

const (
	TierPrice1 PriceTier = "price1"
	TierPrice2 PriceTier = "price2"
)

// Valid — проверка, что уровень цены известен.
func (t PriceTier) Valid() bool {
	return t == TierPrice1 || t == TierPrice2
}

// Product — товар каталога. Заполняется источником каталога (Airtable),
// дальше по коду используется только на чтение.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Brand       string   `json:"brand"`
	Description string   `json:"productDescription"`
	Colors      []string `json:"colors"`
	Price1      float64  `json:"price1"`
	Price2      float64  `json:"price2"`
	ImageURLs   []string `json:"imageURLs,omitempty"`
	Starred     bool     `json:"isProductStarred,omitempty"`
}

// Price — цена товара для заданного уровня.
func (p *Product) Price(tier PriceTier) float64 {
	if tier == TierPrice1 {
		return p.Price1
	}
	return p.Price2
}

// CartItem — позиция корзины: товар, количество, выбранный цвет и уровень цены.
type CartItem struct {
	Product  Product   `json:"product"`
	Quantity int       `json:"quantity"`
	Color    string    `json:"selectedColor"`
	Tier     PriceTier `json:"selectedPrice"`
}

// Client — данные клиента из формы. Все поля — необязательные строки,
// формат не валидируется (пустое значение допустимо везде).
type Client struct {
	CompanyName    string `json:"companyName"`
	Identification string `json:"identification"`
	Name           string `json:"name"`
	Surname        string `json:"surname"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	City           string `json:"city"`
	Department     string `json:"department"`
	Comment        string `json:"comentario"`
}

// FullName — имя и фамилия одной строкой (без лишних пробелов).
func (c *Client) FullName() string {
	switch {
	case c.Name != "" && c.Surname != "":
		return c.Name + " " + c.Surname
	case c.Name != "":
		return c.Name
	default:
		return c.Surname
	}
}

// OrderRequest — входной контракт рендера и HTTP/Kafka-приёма заказа.
type OrderRequest struct {
	Client  Client     `json:"client"`
	Items   []CartItem `json:"cartItems"`
	Tier    PriceTier  `json:"selectedPriceType"`
	Comment string     `json:"comentario"`
}
