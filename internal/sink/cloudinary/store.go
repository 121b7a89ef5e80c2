// Пакет cloudinary — хранилище сгенерированных PDF (raw upload).
// Ошибка загрузки не фатальна для заказа: решение принимает вызывающий слой.
package cloudinary

import (
	"bytes"
	"context"
	"fmt"

	"github.com/Gunvolt24/distrinaranjos/internal/domain"
	"github.com/Gunvolt24/distrinaranjos/internal/ports"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Проверка, что Store удовлетворяет порту приложения.
var _ ports.DocumentStore = (*Store)(nil)

// Config — учётные данные Cloudinary; передаются явно при сборке приложения.
type Config struct {
	CloudName string
	APIKey    string
	APISecret string
	Folder    string
}

type Store struct {
	cld    *cloudinary.Cloudinary
	folder string
	log    ports.Logger
}

func New(cfg Config, log ports.Logger) (*Store, error) {
	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init: %w", err)
	}
	folder := cfg.Folder
	if folder == "" {
		folder = "pdfs"
	}
	return &Store{cld: cld, folder: folder, log: log}, nil
}

// Upload — загрузка документа под сгенерированным именем.
// Возвращает публичную ссылку и идентификатор ресурса.
func (s *Store) Upload(ctx context.Context, data []byte, fileName string) (domain.StoredDocument, error) {
	res, err := s.cld.Upload.Upload(ctx, bytes.NewReader(data), uploader.UploadParams{
		PublicID:     fileName,
		Folder:       s.folder,
		ResourceType: "raw",
	})
	if err != nil {
		return domain.StoredDocument{}, fmt.Errorf("cloudinary upload: %w", err)
	}
	if res.Error.Message != "" {
		return domain.StoredDocument{}, fmt.Errorf("cloudinary upload: %s", res.Error.Message)
	}

	s.log.Infof(ctx, "document uploaded file=%s public_id=%s bytes=%d", fileName, res.PublicID, len(data))
	return domain.StoredDocument{URL: res.SecureURL, PublicID: res.PublicID}, nil
}
