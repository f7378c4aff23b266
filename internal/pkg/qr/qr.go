package qr

import (
	"encoding/json"
	"fmt"

	"github.com/skip2/go-qrcode"
	"recycling/internal/entities"
)

const defaultSize = 256

type Renderer struct {
	size  int
	level qrcode.RecoveryLevel
}

func New(size int) *Renderer {
	if size <= 0 {
		size = defaultSize
	}
	return &Renderer{
		size:  size,
		level: qrcode.Medium,
	}
}

// Payload сериализует описание ваучера, которое кладётся в QR-код.
func Payload(descriptor entities.VoucherDescriptor) (string, error) {
	raw, err := json.Marshal(descriptor)
	if err != nil {
		return "", fmt.Errorf("marshal voucher descriptor: %w", err)
	}
	return string(raw), nil
}

// PNG рендерит payload в PNG.
func (r *Renderer) PNG(payload string) ([]byte, error) {
	png, err := qrcode.Encode(payload, r.level, r.size)
	if err != nil {
		return nil, fmt.Errorf("encode qr code: %w", err)
	}
	return png, nil
}
