package main

import (
	_ "embed"
	"strings"

	"affiliate/internal/domain/entity"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/pkg/errors"
)

//go:embed catalog.yaml
var catalogYAML []byte

type catalogFile struct {
	Profile struct {
		Name   string `mapstructure:"name"`
		Email  string `mapstructure:"email"`
		Avatar string `mapstructure:"avatar"`
	} `mapstructure:"profile"`
	Products []struct {
		Title             string  `mapstructure:"title"`
		Description       string  `mapstructure:"description"`
		Category          string  `mapstructure:"category"`
		Price             float64 `mapstructure:"price"`
		CommissionPercent float64 `mapstructure:"commissionPercent"`
		OriginalURL       string  `mapstructure:"originalUrl"`
	} `mapstructure:"products"`
}

// loadCatalog parses the embedded demo data and normalizes category labels.
func loadCatalog(raw []byte) (*entity.Profile, []*entity.Product, error) {
	parsed, err := yaml.Parser().Unmarshal(raw)
	if err != nil {
		return nil, nil, errors.Wrap(err, "parse catalog")
	}

	var file catalogFile
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &file,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}
	if err := decoder.Decode(parsed); err != nil {
		return nil, nil, errors.Wrap(err, "decode catalog")
	}

	profile := &entity.Profile{
		Name:   file.Profile.Name,
		Email:  strings.ToLower(file.Profile.Email),
		Avatar: file.Profile.Avatar,
	}

	products := make([]*entity.Product, 0, len(file.Products))
	for i, p := range file.Products {
		category, ok := entity.ParseCategory(p.Category)
		if !ok {
			return nil, nil, errors.Errorf("product %d (%s): unknown category %q", i, p.Title, p.Category)
		}

		products = append(products, &entity.Product{
			Title:             p.Title,
			Description:       p.Description,
			Category:          category,
			Price:             p.Price,
			CommissionPercent: p.CommissionPercent,
			OriginalURL:       p.OriginalURL,
		})
	}

	return profile, products, nil
}
