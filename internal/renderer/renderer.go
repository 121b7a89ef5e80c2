// Пакет renderer — генератор PDF-документа заказа: шапка, блок клиента,
// таблица позиций и блок итогов. Постраничная разбивка жадная, в один проход:
// закоммиченный на страницу блок больше не двигается.
package renderer

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Gunvolt24/distrinaranjos/internal/domain"
	"github.com/Gunvolt24/distrinaranjos/internal/ports"
	"github.com/go-pdf/fpdf"
)

// Проверка, что Renderer удовлетворяет порту приложения.
var _ ports.OrderRenderer = (*Renderer)(nil)

// ErrRenderFailed — единственная ошибка рендера, причина оборачивается внутрь.
var ErrRenderFailed = errors.New("order render failed")

// Геометрия страницы Letter в пунктах.
const (
	pageWidth  = 612.0
	pageHeight = 792.0
	margin     = 50.0

	// contentTopY — позиция курсора сразу под перерисованной шапкой.
	contentTopY = 95.0
	// pageBottomY — нижняя граница контента; блок, не влезающий до неё,
	// уходит на новую страницу.
	pageBottomY = pageHeight - 100

	clientPanelHeight  = 140.0
	clientPanelEnsure  = 150.0
	clientPanelAdvance = 170.0

	tableHeaderHeight  = 30.0
	tableHeaderEnsure  = 50.0
	tableHeaderAdvance = 40.0

	rowHeight = 25.0

	totalsBoxEnsure = 80.0
	totalsBoxWidth  = 200.0
	totalsBoxHeight = 55.0
)

// Колонки таблицы: Referencia, Color, Cantidad, Precio, Subtotal.
var columnX = [5]float64{margin + 10, margin + 220, margin + 300, margin + 380, margin + 460}

// Renderer — генератор документа. Состояния между вызовами нет,
// один экземпляр безопасно использовать для независимых заказов параллельно.
type Renderer struct {
	companyTitle string
	now          func() time.Time
}

func NewRenderer() *Renderer {
	return &Renderer{
		companyTitle: "DISTRINARANJOS S.A.S.",
		now:          time.Now,
	}
}

// Render — построить документ по заказу. Вход не мутируется.
// Пустой список позиций — допустимый случай (черновик): документ
// с пустой таблицей и нулевыми итогами.
func (r *Renderer) Render(req *domain.OrderRequest) (*domain.RenderedOrder, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: nil request", ErrRenderFailed)
	}

	rows, total, totalItems := buildTable(req.Items, req.Tier)
	now := r.now()

	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetCreationDate(now)
	pdf.SetAutoPageBreak(false, 0)

	p := &painter{pdf: pdf, title: r.companyTitle, now: now}
	p.newPage()
	p.clientPanel(&req.Client, req.Comment)
	p.tableHeader()
	for i := range rows {
		p.row(&rows[i], i%2 == 0)
	}
	p.totalsBox(total, totalItems, accentFor(req.Tier))

	if pdf.Err() {
		return nil, fmt.Errorf("%w: %v", ErrRenderFailed, pdf.Error())
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}

	return &domain.RenderedOrder{
		Bytes:      buf.Bytes(),
		FileName:   fileName(req.Client.CompanyName, now),
		Total:      total,
		TotalItems: totalItems,
		Pages:      pdf.PageCount(),
	}, nil
}

// painter — однопроходный построитель страниц поверх fpdf.
// Держит вертикальный курсор; ensure начинает новую страницу,
// когда очередной блок не помещается до pageBottomY.
type painter struct {
	pdf   *fpdf.Fpdf
	title string
	now   time.Time
	y     float64
}

// ensure — жадная проверка места под блок высотой h.
func (p *painter) ensure(h float64) {
	if p.y+h > pageBottomY {
		p.newPage()
	}
}

// newPage — новая страница с перерисованной шапкой, курсор на contentTopY.
func (p *painter) newPage() {
	p.pdf.AddPage()
	p.header()
	p.y = contentTopY
}

// header — шапка: название компании слева; «Pedido», номер документа,
// дата и время справа; разделительная линия.
func (p *painter) header() {
	pdf := p.pdf

	pdf.SetFont("Helvetica", "B", 14)
	p.setTextColor(colorDarkGrey)
	pdf.Text(margin+10, 35, p.title)

	pdf.SetFont("Helvetica", "B", 11)
	p.setTextColor(colorMidGrey)
	p.textRight("Pedido", 35)

	pdf.SetFont("Helvetica", "", 9)
	p.textRight(invoiceNumber(p.now), 50)

	pdf.SetFont("Helvetica", "", 8)
	p.setTextColor(colorBrown)
	p.textRight(spanishDate(p.now), 65)
	p.textRight(clockTime(p.now), 80)

	p.setDrawColor(colorSeparator)
	pdf.Line(margin, 85, pageWidth-margin, 85)
}

// clientPanel — блок клиента (60% ширины) и комментария (40%).
// Пустые поля пропускаются, позиции строк фиксированные.
func (p *painter) clientPanel(client *domain.Client, comment string) {
	p.ensure(clientPanelEnsure)
	pdf := p.pdf

	panelWidth := pageWidth - margin*2 - 20
	clientWidth := panelWidth * 0.6
	commentWidth := panelWidth * 0.4
	commentX := margin + clientWidth + 20

	p.setFillColor(rgb{245, 245, 245})
	p.setDrawColor(colorSeparator)
	pdf.RoundedRect(margin, p.y, clientWidth, clientPanelHeight, 5, "1234", "FD")
	pdf.RoundedRect(commentX, p.y, commentWidth, clientPanelHeight, 5, "1234", "FD")

	pdf.SetFont("Helvetica", "B", 12)
	p.setTextColor(colorBlack)
	pdf.Text(margin+10, p.y+15, "CLIENTE:")
	pdf.Text(commentX+10, p.y+15, "COMENTARIO:")

	pdf.SetFont("Helvetica", "", 10)
	if client.CompanyName != "" {
		pdf.SetFont("Helvetica", "B", 10)
		p.setTextColor(colorRed)
		pdf.Text(margin+10, p.y+35, client.CompanyName)
		pdf.SetFont("Helvetica", "", 10)
	}
	p.setTextColor(colorGreyText)
	if client.Identification != "" {
		pdf.Text(margin+10, p.y+50, client.Identification)
	}
	if name := client.FullName(); name != "" {
		pdf.Text(margin+10, p.y+65, name)
	}
	if client.Phone != "" {
		p.setTextColor(colorBlue)
		pdf.Text(margin+10, p.y+80, client.Phone)
	}
	p.setTextColor(colorBrown)
	if client.Address != "" {
		pdf.Text(margin+10, p.y+95, client.Address)
	}
	if client.City != "" {
		pdf.Text(margin+10, p.y+110, client.City)
	}
	if client.Department != "" {
		pdf.Text(margin+10, p.y+125, client.Department)
	}

	p.setTextColor(colorGreyText)
	if strings.TrimSpace(comment) == "" {
		pdf.Text(commentX+10, p.y+35, "N/A")
	} else {
		// Переполнение по высоте просто обрезается, переноса строк нет.
		for i, line := range strings.Split(comment, "\n") {
			if i >= 7 {
				break
			}
			pdf.Text(commentX+10, p.y+35+float64(i)*15, line)
		}
	}

	p.y += clientPanelAdvance
}

// tableHeader — серая плашка с заголовками колонок.
func (p *painter) tableHeader() {
	p.ensure(tableHeaderEnsure)
	pdf := p.pdf

	p.setFillColor(rgb{245, 245, 245})
	pdf.RoundedRect(margin, p.y, pageWidth-2*margin, tableHeaderHeight, 5, "1234", "F")

	pdf.SetFont("Helvetica", "B", 12)
	p.setTextColor(colorGreyText)
	pdf.Text(columnX[0], p.y+15, "Referencia")
	pdf.Text(columnX[1]+20, p.y+15, "Color")
	pdf.Text(columnX[2], p.y+15, "Cantidad")
	pdf.Text(columnX[3], p.y+15, "Precio")
	pdf.Text(columnX[4], p.y+15, "Subtotal")

	p.y += tableHeaderAdvance
}

// row — строка позиции; zebra-заливка каждой чётной строки,
// количество — акцентным цветом уровня цены.
func (p *painter) row(row *tableRow, shaded bool) {
	p.ensure(rowHeight)
	pdf := p.pdf

	if shaded {
		p.setFillColor(rgb{245, 245, 245})
		pdf.Rect(margin, p.y-5, pageWidth-2*margin, rowHeight, "F")
	}

	pdf.SetFont("Helvetica", "", 9)
	p.setTextColor(colorBlack)
	pdf.Text(columnX[0], p.y+8, row.ref)
	pdf.Text(columnX[1]+20, p.y+8, row.color)

	p.setTextColor(row.accent)
	pdf.Text(columnX[2]+20, p.y+8, row.quantity)

	p.setTextColor(colorBlack)
	pdf.Text(columnX[3], p.y+8, row.price)
	pdf.Text(columnX[4], p.y+8, row.subtotal)

	p.y += rowHeight
}

// totalsBox — блок итогов справа внизу: Total Cantidad акцентным цветом уровня,
// Total Precio — красным.
func (p *painter) totalsBox(total int64, totalItems int, accent rgb) {
	p.ensure(totalsBoxEnsure)
	pdf := p.pdf

	boxX := pageWidth - margin - totalsBoxWidth
	boxY := p.y + 20

	p.setFillColor(rgb{240, 240, 240})
	p.setDrawColor(colorSeparator)
	pdf.RoundedRect(boxX, boxY, totalsBoxWidth, totalsBoxHeight, 5, "1234", "FD")

	pdf.SetFont("Helvetica", "B", 12)
	p.setTextColor(accent)
	pdf.Text(boxX+15, boxY+15, "Total Cantidad:")
	pdf.Text(boxX+totalsBoxWidth-80, boxY+15, fmt.Sprintf("%d", totalItems))

	pdf.Line(boxX+15, boxY+28, boxX+totalsBoxWidth-15, boxY+28)

	p.setTextColor(colorRed)
	pdf.Text(boxX+15, boxY+40, "Total Precio:")
	pdf.Text(boxX+totalsBoxWidth-80, boxY+40, "$"+groupDigits(total))

	p.y = boxY + totalsBoxHeight
}

func (p *painter) textRight(s string, y float64) {
	p.pdf.Text(pageWidth-margin-p.pdf.GetStringWidth(s), y, s)
}

func (p *painter) setTextColor(c rgb) { p.pdf.SetTextColor(c.r, c.g, c.b) }
func (p *painter) setFillColor(c rgb) { p.pdf.SetFillColor(c.r, c.g, c.b) }
func (p *painter) setDrawColor(c rgb) { p.pdf.SetDrawColor(c.r, c.g, c.b) }
