package connector

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// QRCodeSize is the edge length in pixels of generated QR codes
const QRCodeSize = 256

// QRCodeGenerator renders PNG QR codes with medium error correction
type QRCodeGenerator struct{}

// NewQRCodeGenerator returns a QRCodeGenerator
func NewQRCodeGenerator() *QRCodeGenerator {
	return &QRCodeGenerator{}
}

// Generate implements posts.QRCodeGenerator
func (g *QRCodeGenerator) Generate(content string) ([]byte, error) {
	png, err := qrcode.Encode(content, qrcode.Medium, QRCodeSize)
	if err != nil {
		return nil, fmt.Errorf("failed to encode QR code: %w", err)
	}
	return png, nil
}
