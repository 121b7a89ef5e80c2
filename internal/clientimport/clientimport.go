// Пакет clientimport — приведение табличных строк (CSV-выгрузок) к domain.Client
// и дедупликация списка. Все функции тотальны: плохая строка даёт пустые поля,
// а не ошибку — выгрузки приходят из разных источников с разными заголовками.
package clientimport

import "strings"

// canonicalFields — распознаваемые варианты заголовков для каждого поля клиента.
// Сопоставление нечувствительно к регистру, пробелам, подчёркиваниям и акцентам.
var canonicalFields = map[string][]string{
	"companyName":    {"companyname", "company", "empresa", "razonsocial"},
	"identification": {"identification", "nit", "cedula", "documento", "id"},
	"name":           {"name", "nombre", "firstname"},
	"surname":        {"surname", "apellido", "lastname"},
	"phone":          {"phone", "telefono", "celular", "movil"},
	"address":        {"address", "direccion"},
	"city":           {"city", "ciudad"},
	"department":     {"department", "departamento"},
	"comment":        {"comment", "comentario", "comentarios", "notas"},
}

// accentReplacer — снимает испанские акценты при нормализации заголовков и ключей.
var accentReplacer = strings.NewReplacer(
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ü", "u", "ñ", "n",
	"Á", "a", "É", "e", "Í", "i", "Ó", "o", "Ú", "u", "Ü", "u", "Ñ", "n",
)

// normalizeKey — каноничный вид заголовка/ключа: нижний регистр,
// без акцентов, пробелов, точек, дефисов и подчёркиваний.
func normalizeKey(s string) string {
	s = accentReplacer.Replace(strings.TrimSpace(s))
	s = strings.ToLower(s)
	for _, cut := range []string{" ", "_", "-", "."} {
		s = strings.ReplaceAll(s, cut, "")
	}
	return s
}

// fieldFor — каноничное имя поля для заголовка, "" если заголовок неизвестен.
func fieldFor(header string) string {
	n := normalizeKey(header)
	for field, aliases := range canonicalFields {
		for _, a := range aliases {
			if n == a {
				return field
			}
		}
	}
	return ""
}
