package qrcode

import (
	"strings"

	"affiliate/config"
	"affiliate/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

type qrcodeService struct {
	baseURL              string
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(baseURL string, size int, errorCorrectionLevel string) service.QRCodeService {
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		baseURL:              strings.TrimRight(baseURL, "/"),
		size:                 size,
		errorCorrectionLevel: parseRecoveryLevel(errorCorrectionLevel),
	}
}

// ProvideQRCodeService builds the service from the referral and qrcode config sections.
func ProvideQRCodeService(cfg *config.Config) service.QRCodeService {
	var (
		size  int
		level string
	)
	if cfg.QRCode != nil {
		size = cfg.QRCode.Size
		level = cfg.QRCode.ErrorCorrectionLevel
	}

	return NewQRCodeService(cfg.Referral.BaseURL, size, level)
}

func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
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

// ReferralURL returns {baseURL}/ref/{code}; without a base URL the path alone is returned.
func (s *qrcodeService) ReferralURL(referralCode string) string {
	return s.baseURL + "/ref/" + referralCode
}

// GenerateReferralQR generates a PNG QR code pointing at the referral link
func (s *qrcodeService) GenerateReferralQR(referralCode string) ([]byte, error) {
	if referralCode == "" {
		return nil, errors.New("referral code is empty")
	}

	qrCode, err := qrcode.New(s.ReferralURL(referralCode), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}
