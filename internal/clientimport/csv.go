package clientimport

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/Gunvolt24/distrinaranjos/internal/domain"
)

// ReadCSV — читает выгрузку с заголовочной строкой и возвращает клиентов
// в порядке следования. Строки короче заголовка дополняются пустыми полями.
func ReadCSV(r io.Reader) ([]domain.Client, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // ряды бывают рваные
	reader.TrimLeadingSpace = true

	headers, err := reader.Read()
	if err == io.EOF {
		return []domain.Client{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	clients := make([]domain.Client, 0, 16)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}

		row := make(map[string]string, len(headers))
		for i, h := range headers {
			if i < len(record) {
				row[h] = record[i]
			} else {
				row[h] = ""
			}
		}
		clients = append(clients, ParseRow(row))
	}
	return clients, nil
}
