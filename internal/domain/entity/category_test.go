package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw    string
		want   Category
		wantOK bool
	}{
		{raw: "sportnutrition", want: CategorySportNutrition, wantOK: true},
		{raw: " Gadgets ", want: CategoryGadgets, wantOK: true},
		{raw: "спортпит", want: CategorySportNutrition, wantOK: true},
		{raw: "оборудование", want: CategoryEquipment, wantOK: true},
		{raw: "одежда", want: CategoryApparel, wantOK: true},
		{raw: "гаджеты", want: CategoryGadgets, wantOK: true},
		{raw: "all", wantOK: false},
		{raw: "", wantOK: false},
		{raw: "food", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()

			got, ok := ParseCategory(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCategory_IsValid(t *testing.T) {
	t.Parallel()

	for _, c := range Categories() {
		assert.True(t, c.IsValid(), c)
	}
	assert.False(t, CategoryAll.IsValid())
	assert.False(t, Category("спортпит").IsValid())
}

func TestProduct_PotentialIncome(t *testing.T) {
	t.Parallel()

	p := &Product{Price: 1000, CommissionPercent: 10, Clicks: 5}
	assert.InDelta(t, 500.0, p.PotentialIncome(), 1e-9)

	p.Clicks = 0
	assert.Zero(t, p.PotentialIncome())
}
