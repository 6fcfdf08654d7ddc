package postgres

import (
	"context"
	"testing"
	"time"

	"affiliate/internal/domain/entity"
	"affiliate/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedProducts(t *testing.T, repo repository.ProductRepository, products ...*entity.Product) {
	t.Helper()

	for _, product := range products {
		require.NoError(t, repo.Create(context.Background(), product))
	}
}

func titles(products []*entity.Product) []string {
	out := make([]string, 0, len(products))
	for _, product := range products {
		out = append(out, product.Title)
	}

	return out
}

func TestProductRepository_CreateAndFind(t *testing.T) {
	repo := NewProductRepository(newTestDB(t))
	ctx := context.Background()

	product := newTestProduct("Wireless Headphones", entity.CategoryGadgets)
	require.NoError(t, repo.Create(ctx, product))

	got, err := repo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, product.Title, got.Title)
	assert.Equal(t, product.ReferralCode, got.ReferralCode)
	assert.Equal(t, entity.CategoryGadgets, got.Category)
	assert.Zero(t, got.Clicks)
}

func TestProductRepository_FindByID_NotFound(t *testing.T) {
	repo := NewProductRepository(newTestDB(t))

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestProductRepository_Create_DuplicateReferralCode(t *testing.T) {
	repo := NewProductRepository(newTestDB(t))
	ctx := context.Background()

	first := newTestProduct("First", entity.CategoryEquipment)
	second := newTestProduct("Second", entity.CategoryEquipment)
	second.ReferralCode = first.ReferralCode

	require.NoError(t, repo.Create(ctx, first))
	assert.ErrorIs(t, repo.Create(ctx, second), repository.ErrDuplicateReferralCode)
}

func TestProductRepository_List(t *testing.T) {
	repo := NewProductRepository(newTestDB(t))
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	phone := newTestProduct("Smart Phone", entity.CategoryGadgets)
	phone.Price, phone.CreatedAt = 500, base.Add(-2*time.Hour)
	book := newTestProduct("Go in Action", entity.CategoryEquipment)
	book.Price, book.CreatedAt = 40, base.Add(-time.Hour)
	speaker := newTestProduct("Smart Speaker 100%", entity.CategoryGadgets)
	speaker.Price, speaker.CreatedAt = 120, base
	seedProducts(t, repo, phone, book, speaker)

	gadgets := entity.CategoryGadgets

	tests := []struct {
		name   string
		filter repository.ProductFilter
		want   []string
	}{
		{
			name:   "defaults to newest first",
			filter: repository.ProductFilter{SortBy: repository.SortByCreatedAt, Order: repository.SortDesc},
			want:   []string{"Smart Speaker 100%", "Go in Action", "Smart Phone"},
		},
		{
			name:   "filters by category and sorts by price ascending",
			filter: repository.ProductFilter{Category: &gadgets, SortBy: repository.SortByPrice, Order: repository.SortAsc},
			want:   []string{"Smart Speaker 100%", "Smart Phone"},
		},
		{
			name:   "search is case-insensitive",
			filter: repository.ProductFilter{Search: "SMART", SortBy: repository.SortByTitle, Order: repository.SortAsc},
			want:   []string{"Smart Phone", "Smart Speaker 100%"},
		},
		{
			name:   "search treats wildcards literally",
			filter: repository.ProductFilter{Search: "100%", SortBy: repository.SortByTitle, Order: repository.SortAsc},
			want:   []string{"Smart Speaker 100%"},
		},
		{
			name:   "limit truncates the result",
			filter: repository.ProductFilter{SortBy: repository.SortByPrice, Order: repository.SortDesc, Limit: 1},
			want:   []string{"Smart Phone"},
		},
		{
			name:   "no match yields an empty list",
			filter: repository.ProductFilter{Search: "tablet", SortBy: repository.SortByCreatedAt, Order: repository.SortDesc},
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.List(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, titles(got))
		})
	}
}

func TestProductRepository_Update(t *testing.T) {
	repo := NewProductRepository(newTestDB(t))
	ctx := context.Background()

	product := newTestProduct("Old title", entity.CategoryApparel)
	seedProducts(t, repo, product)

	product.Title = "New title"
	product.Price = 99.5
	product.UpdatedAt = product.UpdatedAt.Add(time.Minute)
	require.NoError(t, repo.Update(ctx, product))

	got, err := repo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "New title", got.Title)
	assert.InDelta(t, 99.5, got.Price, 0.0001)
	assert.Equal(t, product.ReferralCode, got.ReferralCode)

	missing := newTestProduct("Missing", entity.CategoryApparel)
	assert.ErrorIs(t, repo.Update(ctx, missing), repository.ErrProductNotFound)
}

func TestProductRepository_Delete(t *testing.T) {
	repo := NewProductRepository(newTestDB(t))
	ctx := context.Background()

	product := newTestProduct("Doomed", entity.CategorySportNutrition)
	seedProducts(t, repo, product)

	require.NoError(t, repo.Delete(ctx, product.ID))
	assert.ErrorIs(t, repo.Delete(ctx, product.ID), repository.ErrProductNotFound)

	_, err := repo.FindByID(ctx, product.ID)
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestProductRepository_IncrementClicks(t *testing.T) {
	repo := NewProductRepository(newTestDB(t))
	ctx := context.Background()

	product := newTestProduct("Clicked", entity.CategoryApparel)
	seedProducts(t, repo, product)

	for i := 1; i <= 3; i++ {
		got, err := repo.IncrementClicks(ctx, product.ReferralCode)
		require.NoError(t, err)
		assert.Equal(t, int64(i), got.Clicks)
		assert.Equal(t, product.ID, got.ID)
	}

	_, err := repo.IncrementClicks(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestProductRepository_Aggregates(t *testing.T) {
	repo := NewProductRepository(newTestDB(t))
	ctx := context.Background()

	empty, err := repo.SumPotentialIncome(ctx)
	require.NoError(t, err)
	assert.Zero(t, empty)

	a := newTestProduct("Alpha", entity.CategoryEquipment)
	a.Price, a.CommissionPercent = 200, 10
	b := newTestProduct("Beta", entity.CategoryEquipment)
	b.Price, b.CommissionPercent = 1000, 5
	c := newTestProduct("Gamma", entity.CategorySportNutrition)
	seedProducts(t, repo, a, b, c)

	for range 3 {
		_, err := repo.IncrementClicks(ctx, a.ReferralCode)
		require.NoError(t, err)
	}
	_, err = repo.IncrementClicks(ctx, b.ReferralCode)
	require.NoError(t, err)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	// 200*10%*3 + 1000*5%*1
	income, err := repo.SumPotentialIncome(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 110.0, income, 0.0001)

	var perProduct float64
	for _, seeded := range []*entity.Product{a, b, c} {
		stored, err := repo.FindByID(ctx, seeded.ID)
		require.NoError(t, err)
		perProduct += stored.PotentialIncome()
	}
	assert.InDelta(t, perProduct, income, 0.0001)

	byCategory, err := repo.CountByCategory(ctx)
	require.NoError(t, err)
	assert.Equal(t, []entity.CategoryCount{
		{Category: entity.CategoryEquipment, Count: 2},
		{Category: entity.CategorySportNutrition, Count: 1},
	}, byCategory)

	top, err := repo.TopByClicks(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, []entity.ProductClicks{
		{Title: "Alpha", Clicks: 3},
		{Title: "Beta", Clicks: 1},
	}, top)

	require.NoError(t, repo.DeleteAll(ctx))
	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}
