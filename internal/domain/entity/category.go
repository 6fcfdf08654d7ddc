package entity

import "strings"

// Category is one of the fixed product classifications used for filtering and grouping.
type Category string

const (
	CategorySportNutrition Category = "sportnutrition"
	CategoryEquipment      Category = "equipment"
	CategoryApparel        Category = "apparel"
	CategoryGadgets        Category = "gadgets"

	// CategoryAll is a listing filter sentinel and is never stored on a product.
	CategoryAll Category = "all"
)

// categoryAliases maps the Russian dashboard labels onto the canonical values.
var categoryAliases = map[string]Category{
	"спортпит":     CategorySportNutrition,
	"оборудование": CategoryEquipment,
	"одежда":       CategoryApparel,
	"гаджеты":      CategoryGadgets,
}

// Categories returns every storable category in display order.
func Categories() []Category {
	return []Category{
		CategorySportNutrition,
		CategoryEquipment,
		CategoryApparel,
		CategoryGadgets,
	}
}

// ParseCategory resolves a canonical value or a legacy label. It does not accept CategoryAll.
func ParseCategory(raw string) (Category, bool) {
	value := strings.ToLower(strings.TrimSpace(raw))
	for _, c := range Categories() {
		if string(c) == value {
			return c, true
		}
	}

	if c, ok := categoryAliases[value]; ok {
		return c, true
	}

	return "", false
}

// IsValid reports whether c can be stored on a product.
func (c Category) IsValid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}

	return false
}
