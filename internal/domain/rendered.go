package domain

// RenderedOrder — результат рендера: байты PDF, имя файла и итоги.
// Total — сумма округлённых построчных подытогов (см. renderer),
// TotalItems — точная сумма количеств без округления.
type RenderedOrder struct {
	Bytes      []byte
	FileName   string
	Total      int64
	TotalItems int
	Pages      int
}

// StoredDocument — ссылка на загруженный в хранилище документ.
type StoredDocument struct {
	URL      string
	PublicID string
}

// LedgerEntry — плоская запись журнала заказов.
// Структура повторяет формат, который читает мобильное приложение.
type LedgerEntry struct {
	UserID      string   `json:"userId"`
	UserName    string   `json:"userName"`
	Details     string   `json:"details"`
	FileURL     string   `json:"fileUrl"`
	FileName    string   `json:"fileName"`
	DeliveredTo []string `json:"deliveredTo"`
	ReadBy      []string `json:"readBy"`
}

// Notification — письмо для отправки через SMTP-шлюз.
type Notification struct {
	Recipients     []string
	Subject        string
	HTMLBody       string
	AttachmentName string
	Attachment     []byte
}
