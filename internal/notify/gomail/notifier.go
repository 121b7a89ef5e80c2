// Пакет gomail — отправка письма о новом заказе с вложенным PDF.
package gomail

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"

	"github.com/Gunvolt24/distrinaranjos/internal/domain"
	"github.com/Gunvolt24/distrinaranjos/internal/ports"
	"gopkg.in/gomail.v2"
)

// Проверка, что Notifier удовлетворяет порту приложения.
var _ ports.Notifier = (*Notifier)(nil)

// Config — параметры SMTP; передаются явно при сборке приложения.
type Config struct {
	Host     string
	Port     int
	Login    string
	Password string
	From     string
	FromName string
}

type Notifier struct {
	cfg    Config
	dialer *gomail.Dialer
	log    ports.Logger
}

func New(cfg Config, log ports.Logger) *Notifier {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Login, cfg.Password)

	dialer.TLSConfig = &tls.Config{
		ServerName: cfg.Host,
		MinVersion: tls.VersionTLS12,
	}

	return &Notifier{cfg: cfg, dialer: dialer, log: log}
}

// Send — письмо с HTML-телом и PDF-вложением. Контекст проверяется до
// отправки: gomail не умеет отменять уже начатый диалог с сервером.
func (n *Notifier) Send(ctx context.Context, note *domain.Notification) error {
	if note == nil {
		return fmt.Errorf("notification is nil")
	}
	if len(note.Recipients) == 0 {
		return fmt.Errorf("notification has no recipients")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := gomail.NewMessage(
		gomail.SetCharset("UTF-8"),
		gomail.SetEncoding(gomail.Base64),
	)

	msg.SetAddressHeader("From", n.cfg.From, n.cfg.FromName)
	msg.SetHeader("To", note.Recipients...)
	msg.SetHeader("Subject", note.Subject)
	msg.SetBody("text/html", note.HTMLBody)

	if len(note.Attachment) > 0 {
		attachment := note.Attachment
		msg.Attach(note.AttachmentName,
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(attachment)
				return err
			}),
			gomail.SetHeader(map[string][]string{"Content-Type": {"application/pdf"}}),
		)
	}

	if err := n.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send email: %w", err)
	}

	n.log.Infof(ctx, "order notification sent recipients=%d attachment=%s", len(note.Recipients), note.AttachmentName)
	return nil
}
