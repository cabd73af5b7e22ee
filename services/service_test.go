package services

import (
	"fmt"
	"testing"

	"github.com/Salimjon123/Alijahon/entity"
	"github.com/Salimjon123/Alijahon/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	// A private in-memory sqlite exists per connection; cap the pool
	// at one so every query sees the same database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Region{}, &entity.District{},
		&entity.Category{}, &entity.Product{},
		&entity.Thread{},
		&entity.Order{},
		&entity.WishList{},
		&entity.SiteSettings{},
		&entity.Withdraw{},
	))
	return db
}

func newOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(
		db,
		repository.NewOrderRepository(db),
		repository.NewProductRepository(db),
		repository.NewThreadRepository(db),
		repository.NewSettingsRepository(db),
		nil,
	)
}

func newThreadService(db *gorm.DB) *ThreadService {
	return NewThreadService(
		repository.NewThreadRepository(db),
		repository.NewProductRepository(db),
		repository.NewSettingsRepository(db),
		nil,
	)
}

func seedSettings(t *testing.T, db *gorm.DB, delivery, discount int64) *entity.SiteSettings {
	t.Helper()
	s := &entity.SiteSettings{DeliveryPrice: delivery, DiscountPrice: discount}
	require.NoError(t, db.Create(s).Error)
	return s
}

func seedUser(t *testing.T, db *gorm.DB, phone, role string, balance int64) *entity.User {
	t.Helper()
	u := &entity.User{PhoneNumber: phone, Password: "x", Role: role, Balance: balance}
	require.NoError(t, db.Create(u).Error)
	return u
}

var productSeq int

func seedProduct(t *testing.T, db *gorm.DB, price, sellerPrice int64, stock int, categoryID uint) *entity.Product {
	t.Helper()
	productSeq++
	p := &entity.Product{
		Name:        fmt.Sprintf("product-%d", productSeq),
		Slug:        fmt.Sprintf("product-%d", productSeq),
		Price:       price,
		SellerPrice: sellerPrice,
		Quantity:    stock,
		CategoryID:  categoryID,
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

func seedCategory(t *testing.T, db *gorm.DB, slug string) *entity.Category {
	t.Helper()
	c := &entity.Category{Name: slug, Slug: slug}
	require.NoError(t, db.Create(c).Error)
	return c
}

func seedThread(t *testing.T, db *gorm.DB, owner *entity.User, product *entity.Product, discount int64) *entity.Thread {
	t.Helper()
	th := &entity.Thread{
		Name:      "thread",
		OwnerID:   owner.ID,
		ProductID: product.ID,
		Discount:  discount,
	}
	require.NoError(t, db.Create(th).Error)
	return th
}

func seedOrder(t *testing.T, db *gorm.DB, o *entity.Order) *entity.Order {
	t.Helper()
	if o.FullName == "" {
		o.FullName = "Customer"
	}
	if o.PhoneNumber == "" {
		o.PhoneNumber = "998900000000"
	}
	if o.Quantity == 0 {
		o.Quantity = 1
	}
	if o.Status == "" {
		o.Status = entity.StatusNew
	}
	require.NoError(t, db.Create(o).Error)
	return o
}
