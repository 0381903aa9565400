package usecase

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	domainErrors "github.com/polkiloo/canteen/internal/domain/errors"
	"github.com/polkiloo/canteen/internal/domain/model"
	"github.com/polkiloo/canteen/internal/pkg/qr"
)

// MaxTables bounds how many codes one batch request may render.
const MaxTables = 200

var errTooManyTables = domainErrors.Validation("At most " + strconv.Itoa(MaxTables) + " tables per request")

// QRSettings holds defaults for table QR codes.
type QRSettings struct {
	BaseURL string
}

// QRUseCase renders table ordering QR codes.
type QRUseCase struct {
	baseURL string
}

// NewQRUseCase constructs QRUseCase.
func NewQRUseCase(settings QRSettings) *QRUseCase {
	return &QRUseCase{baseURL: settings.BaseURL}
}

// TableURL returns the ordering page address for a table.
func TableURL(baseURL, table string) string {
	return strings.TrimRight(baseURL, "/") + "/order?table=" + url.QueryEscape(table)
}

// Table renders the QR code of one table.
func (u *QRUseCase) Table(ctx context.Context, baseURL, table string) (*model.TableCode, error) {
	if strings.TrimSpace(table) == "" {
		return nil, domainErrors.Validation("Table number is required")
	}
	codes, err := u.Tables(ctx, baseURL, []string{table})
	if err != nil {
		return nil, err
	}
	return &codes[0], nil
}

// Tables renders QR codes for several tables in the given order.
func (u *QRUseCase) Tables(_ context.Context, baseURL string, tables []string) ([]model.TableCode, error) {
	if len(tables) == 0 {
		return nil, domainErrors.Validation("Provide either table_numbers or table_count")
	}
	if len(tables) > MaxTables {
		return nil, errTooManyTables
	}
	if strings.TrimSpace(baseURL) == "" {
		baseURL = u.baseURL
	}

	urls := make([]string, 0, len(tables))
	for _, table := range tables {
		table = strings.TrimSpace(table)
		if table == "" {
			return nil, domainErrors.Validation("Table number is required")
		}
		urls = append(urls, TableURL(baseURL, table))
	}

	images, err := qr.EncodeBatch(urls)
	if err != nil {
		return nil, err
	}

	codes := make([]model.TableCode, 0, len(images))
	for i, img := range images {
		codes = append(codes, model.TableCode{
			TableNumber: strings.TrimSpace(tables[i]),
			URL:         img.URL,
			PNG:         img.PNG,
		})
	}
	return codes, nil
}

// TableRange lists table numbers 1..count. Counts above MaxTables are rejected.
func TableRange(count int) ([]string, error) {
	if count > MaxTables {
		return nil, errTooManyTables
	}
	if count <= 0 {
		return nil, nil
	}
	out := make([]string, 0, count)
	for i := 1; i <= count; i++ {
		out = append(out, strconv.Itoa(i))
	}
	return out, nil
}
