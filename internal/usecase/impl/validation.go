package impl

import (
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"affiliate/internal/domain/entity"
	domainerrors "affiliate/internal/domain/errors"
	"affiliate/internal/domain/repository"
	"affiliate/internal/usecase"
	"affiliate/internal/util"

	"github.com/go-playground/validator/v10"
)

const (
	maxSearchLength      = 100
	maxCommissionPercent = 100
)

// formatValidator checks string formats (URLs, emails) shared by every service.
var formatValidator = validator.New(validator.WithRequiredStructEnabled())

func categoryChoices() string {
	names := make([]string, 0, len(entity.Categories())+1)
	for _, category := range entity.Categories() {
		names = append(names, string(category))
	}

	return strings.Join(append(names, string(entity.CategoryAll)), ", ")
}

func sortFieldChoices() string {
	names := make([]string, 0, len(repository.SortFields()))
	for _, field := range repository.SortFields() {
		names = append(names, string(field))
	}

	return strings.Join(names, ", ")
}

// buildProductFilter turns raw query parameters into a filter. Every rule is checked and all
// violations are reported together; empty parameters count as absent.
func buildProductFilter(input *usecase.ListProductsInput) (repository.ProductFilter, error) {
	filter := repository.ProductFilter{
		SortBy: repository.SortByCreatedAt,
		Order:  repository.SortDesc,
	}
	if input == nil {
		return filter, nil
	}

	problems := domainerrors.NewValidationError(domainerrors.ErrValidationFailed)

	if raw := util.TrimmedOrEmpty(input.Category); raw != "" && !strings.EqualFold(raw, string(entity.CategoryAll)) {
		if category, ok := entity.ParseCategory(raw); ok {
			filter.Category = &category
		} else {
			problems.Addf("category must be one of: %s", categoryChoices())
		}
	}

	if raw := util.TrimmedOrEmpty(input.Search); raw != "" {
		if utf8.RuneCountInString(raw) > maxSearchLength {
			problems.Addf("search must not exceed %d characters", maxSearchLength)
		} else {
			filter.Search = raw
		}
	}

	if raw := util.TrimmedOrEmpty(input.SortBy); raw != "" {
		if field, ok := parseSortField(raw); ok {
			filter.SortBy = field
		} else {
			problems.Addf("sortBy must be one of: %s", sortFieldChoices())
		}
	}

	if raw := util.TrimmedOrEmpty(input.Order); raw != "" {
		switch order := repository.SortOrder(strings.ToLower(raw)); order {
		case repository.SortAsc, repository.SortDesc:
			filter.Order = order
		default:
			problems.Add("order must be one of: asc, desc")
		}
	}

	if input.Limit != nil {
		limit, err := strconv.Atoi(strings.TrimSpace(*input.Limit))
		switch {
		case err != nil || limit <= 0:
			problems.Add("limit must be a positive integer")
		case limit > repository.MaxListLimit:
			problems.Addf("limit must not exceed %d", repository.MaxListLimit)
		default:
			filter.Limit = limit
		}
	}

	if err := problems.OrNil(); err != nil {
		return repository.ProductFilter{}, err
	}

	return filter, nil
}

func parseSortField(raw string) (repository.SortField, bool) {
	for _, field := range repository.SortFields() {
		if strings.EqualFold(raw, string(field)) {
			return field, true
		}
	}

	return "", false
}

// validateCreateProduct checks a create request. Missing fields switch the error to the
// MISSING_FIELDS template; format problems of the supplied fields are listed alongside.
// A zero price or commission counts as missing, and the commission range is left to updates.
func validateCreateProduct(input *usecase.CreateProductInput) error {
	if input == nil {
		input = &usecase.CreateProductInput{}
	}

	var missing []string
	if util.IsBlank(input.Title) {
		missing = append(missing, "title")
	}
	if util.IsBlank(input.Description) {
		missing = append(missing, "description")
	}
	if util.IsBlank(input.Category) {
		missing = append(missing, "category")
	}
	if isZero(input.Price) {
		missing = append(missing, "price")
	}
	if isZero(input.CommissionPercent) {
		missing = append(missing, "commissionPercent")
	}
	if util.IsBlank(input.OriginalURL) {
		missing = append(missing, "originalUrl")
	}

	template := domainerrors.ErrValidationFailed
	if len(missing) > 0 {
		template = domainerrors.ErrMissingFields
	}

	problems := domainerrors.NewValidationError(template)
	for _, field := range missing {
		problems.Addf("%s is required", field)
	}

	checkProductFields(problems, input.Category, input.Price, input.OriginalURL)

	return problems.OrNil()
}

// validateUpdateProduct checks the supplied fields of a partial update.
func validateUpdateProduct(input *usecase.UpdateProductInput) error {
	if input == nil {
		return nil
	}

	problems := domainerrors.NewValidationError(domainerrors.ErrValidationFailed)
	checkProductFields(problems, input.Category, input.Price, input.OriginalURL)
	if c := input.CommissionPercent; c != nil && (*c < 0 || *c > maxCommissionPercent) {
		problems.Addf("commissionPercent must be between 0 and %d", maxCommissionPercent)
	}

	return problems.OrNil()
}

func isZero(v *float64) bool {
	return v == nil || *v == 0
}

func checkProductFields(problems *domainerrors.ValidationError, category *string, price *float64, originalURL *string) {
	if raw := util.TrimmedOrEmpty(category); raw != "" {
		if _, ok := entity.ParseCategory(raw); !ok {
			problems.Addf("category must be one of: %s", strings.TrimSuffix(categoryChoices(), ", "+string(entity.CategoryAll)))
		}
	}
	if price != nil && *price < 0 {
		problems.Add("price must be greater than or equal to 0")
	}
	if raw := util.TrimmedOrEmpty(originalURL); raw != "" && !isHTTPURL(raw) {
		problems.Add("originalUrl must be an absolute http(s) URL")
	}
}

func isHTTPURL(raw string) bool {
	if err := formatValidator.Var(raw, "url"); err != nil {
		return false
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}

	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}

func isEmail(raw string) bool {
	return formatValidator.Var(raw, "email") == nil
}
