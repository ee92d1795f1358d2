package qrcode

import (
	"net/url"
	"path"
	"strings"

	"storerating/config"
	"storerating/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize    = 256
	storePathLabel = "stores"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a QR code service from the qrcode config section.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size, level, baseURL := defaultSize, "", ""
	if cfg != nil && cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		level = cfg.QRCode.ErrorCorrectionLevel
		baseURL = cfg.QRCode.BaseURL
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: parseRecoveryLevel(level),
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// parseRecoveryLevel accepts both the single-letter and the spelled-out names.
func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "l", "low":
		return qrcode.Low
	case "q", "high":
		return qrcode.High
	case "h", "highest":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// StoreURL returns the public page a store's QR code points at.
func (s *qrcodeService) StoreURL(storeID uuid.UUID) string {
	return s.baseURL + "/" + storePathLabel + "/" + storeID.String()
}

// GenerateStoreQR renders a PNG QR code linking to the store's rating page.
func (s *qrcodeService) GenerateStoreQR(storeID uuid.UUID) ([]byte, error) {
	qrCode, err := qrcode.New(s.StoreURL(storeID), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseStoreQR extracts the store ID from scanned QR content. Both absolute
// URLs and bare "/stores/{id}" paths are accepted.
func (s *qrcodeService) ParseStoreQR(content string) (uuid.UUID, error) {
	parsed, err := url.Parse(strings.TrimSpace(content))
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse QR code content")
	}

	dir, last := path.Split(strings.TrimRight(parsed.Path, "/"))
	if path.Base(dir) != storePathLabel {
		return uuid.Nil, errors.Errorf("QR code does not point at a store: %q", content)
	}

	storeID, err := uuid.Parse(last)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse store ID")
	}

	return storeID, nil
}
