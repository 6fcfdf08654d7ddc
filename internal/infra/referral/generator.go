// Package referral generates the short codes used in referral links.
package referral

import (
	"affiliate/config"
	"affiliate/internal/domain/service"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/pkg/errors"
)

// DefaultLength is the code length used when none is configured.
const DefaultLength = 8

type nanoidGenerator struct {
	length int
}

// NewGenerator returns a generator of URL-safe codes ([A-Za-z0-9_-]) of the given length.
func NewGenerator(length int) service.ReferralCodeGenerator {
	if length <= 0 {
		length = DefaultLength
	}

	return &nanoidGenerator{length: length}
}

// ProvideGenerator builds the generator from the referral config section.
func ProvideGenerator(cfg *config.Config) service.ReferralCodeGenerator {
	if cfg.Referral == nil {
		return NewGenerator(DefaultLength)
	}

	return NewGenerator(cfg.Referral.CodeLength)
}

func (g *nanoidGenerator) Generate() (string, error) {
	code, err := gonanoid.New(g.length)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate referral code")
	}

	return code, nil
}
