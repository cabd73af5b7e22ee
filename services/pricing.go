package services

import (
	"github.com/Salimjon123/Alijahon/entity"
)

// Pricing rules for orders. Amounts are zero-decimal currency units.
//
// An order placed through a thread gets the thread discount plus the
// site-wide discount taken off once, flat. Recomputation on quantity
// change derives the total fresh from product/thread/site/quantity;
// it never accumulates onto the stored total, so repeated calls are
// idempotent.

// InitialTotal prices a newly submitted order of quantity 1.
func InitialTotal(product *entity.Product, thread *entity.Thread, settings *entity.SiteSettings) int64 {
	total := product.Price
	if thread != nil {
		total -= thread.Discount + settings.DiscountPrice
	}
	return total
}

// RecomputeTotal derives the order total for the given quantity. Unit
// price is the thread's discounted price when a thread exists,
// otherwise the product price; the site discount comes off once.
// At quantity 1 with a thread this equals InitialTotal.
func RecomputeTotal(product *entity.Product, thread *entity.Thread, settings *entity.SiteSettings, quantity int) int64 {
	unit := product.Price
	if thread != nil {
		unit = thread.DiscountPrice()
	}
	total := unit * int64(quantity)
	if thread != nil {
		total -= settings.DiscountPrice
	}
	return total
}
