package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateStoreQR generates a PNG QR code pointing at the store's public page
	GenerateStoreQR(storeID uuid.UUID) ([]byte, error)

	// ParseStoreQR parses QR code content and returns the store ID
	ParseStoreQR(content string) (uuid.UUID, error)
}
