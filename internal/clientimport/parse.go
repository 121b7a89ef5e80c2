package clientimport

import (
	"strings"

	"github.com/Gunvolt24/distrinaranjos/internal/domain"
)

// ParseRow — строка выгрузки → Client. Тотальная функция:
// неизвестные колонки игнорируются, отсутствующие дают "".
func ParseRow(row map[string]string) domain.Client {
	var c domain.Client
	for header, raw := range row {
		value := strings.TrimSpace(raw)
		switch fieldFor(header) {
		case "companyName":
			c.CompanyName = value
		case "identification":
			c.Identification = value
		case "name":
			c.Name = value
		case "surname":
			c.Surname = value
		case "phone":
			c.Phone = value
		case "address":
			c.Address = value
		case "city":
			c.City = value
		case "department":
			c.Department = value
		case "comment":
			c.Comment = value
		}
	}
	return c
}

// dedupeKey — ключ дедупликации: идентификация, иначе компания+телефон.
// Пустой ключ означает, что запись сравнивать не с чем.
func dedupeKey(c domain.Client) string {
	if id := normalizeKey(c.Identification); id != "" {
		return "id:" + id
	}
	company := normalizeKey(c.CompanyName)
	phone := normalizeKey(c.Phone)
	if company == "" && phone == "" {
		return ""
	}
	return "cp:" + company + "|" + phone
}

// Dedupe — убирает повторы, сохраняя порядок; выигрывает первое вхождение.
// Записи с пустым ключом остаются все.
func Dedupe(clients []domain.Client) []domain.Client {
	seen := make(map[string]struct{}, len(clients))
	out := make([]domain.Client, 0, len(clients))
	for _, c := range clients {
		key := dedupeKey(c)
		if key == "" {
			out = append(out, c)
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, c)
	}
	return out
}
