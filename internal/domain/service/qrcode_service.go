package service

// QRCodeService defines the interface for QR code generation
type QRCodeService interface {
	// GenerateReferralQR renders the public referral link of a code as a PNG image
	GenerateReferralQR(referralCode string) ([]byte, error)

	// ReferralURL returns the public link a referral code redirects from
	ReferralURL(referralCode string) string
}
