package services

import (
	"testing"

	"github.com/Salimjon123/Alijahon/entity"
	"github.com/stretchr/testify/assert"
)

func pricingFixture() (*entity.Product, *entity.Thread, *entity.SiteSettings) {
	product := &entity.Product{Price: 100000, SellerPrice: 10000}
	thread := &entity.Thread{Discount: 5000, Product: *product}
	settings := &entity.SiteSettings{DeliveryPrice: 30000, DiscountPrice: 1000}
	return product, thread, settings
}

func TestInitialTotalWithThread(t *testing.T) {
	product, thread, settings := pricingFixture()

	// 100000 - (5000 + 1000)
	assert.Equal(t, int64(94000), InitialTotal(product, thread, settings))
}

func TestInitialTotalWithoutThread(t *testing.T) {
	product, _, settings := pricingFixture()

	assert.Equal(t, int64(100000), InitialTotal(product, nil, settings))
}

func TestRecomputeTotalDerivesFresh(t *testing.T) {
	product, thread, settings := pricingFixture()

	// discount_price 95000 × 3 − 1000. Derived from scratch, never
	// accumulated onto a previous total.
	got := RecomputeTotal(product, thread, settings, 3)
	assert.Equal(t, int64(284000), got)

	// Repeating the computation must not compound.
	assert.Equal(t, got, RecomputeTotal(product, thread, settings, 3))
}

func TestRecomputeTotalMatchesInitialAtQuantityOne(t *testing.T) {
	product, thread, settings := pricingFixture()

	assert.Equal(t, InitialTotal(product, thread, settings), RecomputeTotal(product, thread, settings, 1))
	assert.Equal(t, InitialTotal(product, nil, settings), RecomputeTotal(product, nil, settings, 1))
}

func TestRecomputeTotalWithoutThread(t *testing.T) {
	product, _, settings := pricingFixture()

	assert.Equal(t, int64(300000), RecomputeTotal(product, nil, settings, 3))
}
