package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation services
type QRCodeService interface {
	// GenerateWorkshopQR generates a PNG QR code linking to a workshop page.
	GenerateWorkshopQR(workshopID uuid.UUID) ([]byte, error)
}
