package service

// ReferralCodeGenerator produces short URL-safe codes for referral links.
type ReferralCodeGenerator interface {
	Generate() (string, error)
}
