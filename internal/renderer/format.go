package renderer

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// roundAmount — округление до целой денежной единицы (половина — от нуля).
func roundAmount(v float64) int64 {
	return int64(math.Round(v))
}

// FormatAmount — денежный формат: округление до целого и группировка
// разрядов точкой ("1.234.567"). Чистая функция, без скрытого состояния.
func FormatAmount(v float64) string {
	return groupDigits(roundAmount(v))
}

// groupDigits — разделяет каждые три разряда справа точкой.
func groupDigits(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	if len(s) <= 3 {
		if neg {
			return "-" + s
		}
		return s
	}
	var out []byte
	lead := len(s) % 3
	if lead > 0 {
		out = append(out, s[:lead]...)
	}
	for i := lead; i < len(s); i += 3 {
		if len(out) > 0 {
			out = append(out, '.')
		}
		out = append(out, s[i:i+3]...)
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}

// defaultCompany — подстановка имени файла при пустом названии компании.
const defaultCompany = "Cliente"

// fileName — имя файла документа: "{компания} - ДД.ММ.ГГГГ_ЧЧ.ММ.pdf".
// Уникальность в пределах одной минуты не гарантируется.
func fileName(company string, now time.Time) string {
	if company == "" {
		company = defaultCompany
	}
	return fmt.Sprintf("%s - %02d.%02d.%d_%02d.%02d.pdf",
		company, now.Day(), int(now.Month()), now.Year(), now.Hour(), now.Minute())
}

var spanishWeekdays = [...]string{
	"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado",
}

var spanishMonths = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// spanishDate — длинная дата в колумбийском формате: "lunes, 2 de septiembre de 2026".
func spanishDate(t time.Time) string {
	return fmt.Sprintf("%s, %d de %s de %d",
		spanishWeekdays[t.Weekday()], t.Day(), spanishMonths[t.Month()-1], t.Year())
}

// clockTime — 12-часовое время: "3:04 p. m.".
func clockTime(t time.Time) string {
	suffix := "a. m."
	h := t.Hour()
	if h >= 12 {
		suffix = "p. m."
	}
	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%d:%02d %s", h12, t.Minute(), suffix)
}

// invoiceNumber — номер документа в шапке: INV-ГГГГММДД-001.
func invoiceNumber(t time.Time) string {
	return fmt.Sprintf("INV-%04d%02d%02d-001", t.Year(), int(t.Month()), t.Day())
}
