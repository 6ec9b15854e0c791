// Package qrcode renders links as PNG QR codes.
package qrcode

import (
	"strings"

	"portfolio/config"
	"portfolio/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size  int
	level qrcode.RecoveryLevel
}

// NewQRCodeService creates a QR code service from mail.qrCode.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	return newQRCodeService(cfg.Mail.QRCode.Size, cfg.Mail.QRCode.Level)
}

func newQRCodeService(size int, level string) *qrcodeService {
	return &qrcodeService{
		size:  size,
		level: recoveryLevel(level),
	}
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(level) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// LinkPNG encodes link as a square PNG of the configured size.
func (s *qrcodeService) LinkPNG(link string) ([]byte, error) {
	if s.size <= 0 {
		return nil, errors.New("QR codes are disabled")
	}
	if link == "" {
		return nil, errors.New("link is empty")
	}

	png, err := qrcode.Encode(link, s.level, s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode QR code")
	}

	return png, nil
}
