package services

import (
	"testing"
	"time"

	"github.com/Salimjon123/Alijahon/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderWithThreadDiscount(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	seedSettings(t, db, 30000, 1000)
	owner := seedUser(t, db, "998901111111", entity.RoleUser, 0)
	product := seedProduct(t, db, 100000, 10000, 5, 0)
	thread := seedThread(t, db, owner, product, 5000)

	receipt, err := svc.Create(nil, &CreateOrderReq{
		FullName:    "Ali Valiyev",
		PhoneNumber: "+998 (90) 123-45-67",
		ProductID:   product.ID,
		ThreadID:    &thread.ID,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(94000), receipt.Order.Total)
	assert.Equal(t, entity.StatusNew, receipt.Order.Status)
	assert.Equal(t, "998901234567", receipt.Order.PhoneNumber)
	assert.Equal(t, int64(30000), receipt.DeliveryPrice)
}

func TestCreateOrderWithoutSettingsIsConfigurationError(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	product := seedProduct(t, db, 100000, 10000, 5, 0)

	_, err := svc.Create(nil, &CreateOrderReq{
		FullName:    "Ali",
		PhoneNumber: "998901234567",
		ProductID:   product.ID,
	})
	assert.ErrorIs(t, err, ErrSiteSettingsMissing)
}

func TestUpdateQuantityRepricesFresh(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	seedSettings(t, db, 30000, 1000)
	owner := seedUser(t, db, "998901111111", entity.RoleUser, 0)
	operator := seedUser(t, db, "998902222222", entity.RoleOperator, 0)
	product := seedProduct(t, db, 100000, 10000, 5, 0)
	thread := seedThread(t, db, owner, product, 5000)
	order := seedOrder(t, db, &entity.Order{
		ProductID: &product.ID, ThreadID: &thread.ID, Total: 94000,
	})

	qty := 3
	updated, err := svc.Update(operator, order.ID, &UpdateOrderReq{Quantity: &qty})
	require.NoError(t, err)

	// discount_price 95000 × 3 − 1000, derived from scratch.
	assert.Equal(t, int64(284000), updated.Total)
	assert.Equal(t, 3, updated.Quantity)

	// A second identical update must not compound the total.
	updated, err = svc.Update(operator, order.ID, &UpdateOrderReq{Quantity: &qty})
	require.NoError(t, err)
	assert.Equal(t, int64(284000), updated.Total)
}

func TestUpdateQuantityExceedingStockRejected(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	seedSettings(t, db, 30000, 1000)
	operator := seedUser(t, db, "998902222222", entity.RoleOperator, 0)
	product := seedProduct(t, db, 100000, 10000, 3, 0)
	order := seedOrder(t, db, &entity.Order{ProductID: &product.ID, Total: 100000})

	qty := 4
	_, err := svc.Update(operator, order.ID, &UpdateOrderReq{Quantity: &qty})
	ve, ok := AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, "quantity", ve.Field)

	// Rejection leaves the order untouched.
	var got entity.Order
	require.NoError(t, db.First(&got, order.ID).Error)
	assert.Equal(t, int64(100000), got.Total)
	assert.Equal(t, 1, got.Quantity)
}

func TestUpdateDeliveredDateValidation(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	seedSettings(t, db, 30000, 1000)
	operator := seedUser(t, db, "998902222222", entity.RoleOperator, 0)
	product := seedProduct(t, db, 100000, 10000, 5, 0)
	order := seedOrder(t, db, &entity.Order{ProductID: &product.ID, Total: 100000})

	yesterday := time.Now().UTC().AddDate(0, 0, -1).Format("2006-01-02")
	_, err := svc.Update(operator, order.ID, &UpdateOrderReq{DeliveredDate: &yesterday})
	ve, ok := AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, "deliveredDate", ve.Field)

	today := time.Now().UTC().Format("2006-01-02")
	updated, err := svc.Update(operator, order.ID, &UpdateOrderReq{DeliveredDate: &today})
	require.NoError(t, err)
	require.NotNil(t, updated.DeliveredDate)
	assert.Equal(t, today, updated.DeliveredDate.Format("2006-01-02"))
}

func TestStatusTransitionGuard(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	seedSettings(t, db, 30000, 1000)
	operator := seedUser(t, db, "998902222222", entity.RoleOperator, 0)
	product := seedProduct(t, db, 100000, 10000, 5, 0)

	// Forward move is fine.
	order := seedOrder(t, db, &entity.Order{ProductID: &product.ID, Total: 100000})
	ready := entity.StatusReadyToDelivery
	updated, err := svc.Update(operator, order.ID, &UpdateOrderReq{Status: &ready})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusReadyToDelivery, updated.Status)

	// delivered is terminal: no jumping back to new.
	done := seedOrder(t, db, &entity.Order{ProductID: &product.ID, Total: 100000, Status: entity.StatusDelivered})
	fresh := entity.StatusNew
	_, err = svc.Update(operator, done.ID, &UpdateOrderReq{Status: &fresh})
	ve, ok := AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, "status", ve.Field)
}

func TestTransitionTable(t *testing.T) {
	assert.True(t, CanTransition(entity.StatusNew, entity.StatusReadyToDelivery))
	assert.True(t, CanTransition(entity.StatusDelivering, entity.StatusDelivered))
	assert.True(t, CanTransition(entity.StatusNew, entity.StatusCanceled))
	assert.True(t, CanTransition(entity.StatusNotCall, entity.StatusReadyToDelivery))
	assert.True(t, CanTransition(entity.StatusNew, entity.StatusNew))

	assert.False(t, CanTransition(entity.StatusDelivered, entity.StatusNew))
	assert.False(t, CanTransition(entity.StatusCanceled, entity.StatusNew))
	assert.False(t, CanTransition(entity.StatusNew, entity.StatusDelivered))
	assert.False(t, CanTransition(entity.StatusArchived, entity.StatusDelivering))
}

func TestRoleGatedAssignment(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	seedSettings(t, db, 30000, 1000)
	product := seedProduct(t, db, 100000, 10000, 5, 0)
	operator := seedUser(t, db, "998902222222", entity.RoleOperator, 0)
	deliver := seedUser(t, db, "998903333333", entity.RoleDeliver, 0)

	order := seedOrder(t, db, &entity.Order{ProductID: &product.ID, Total: 100000})

	comment := "called"
	updated, err := svc.Update(operator, order.ID, &UpdateOrderReq{Comment: &comment})
	require.NoError(t, err)
	require.NotNil(t, updated.OperatorID)
	assert.Equal(t, operator.ID, *updated.OperatorID)
	assert.Nil(t, updated.DeliverID)

	// A deliver's edit claims the deliver slot and clears the operator.
	updated, err = svc.Update(deliver, order.ID, &UpdateOrderReq{Comment: &comment})
	require.NoError(t, err)
	require.NotNil(t, updated.DeliverID)
	assert.Equal(t, deliver.ID, *updated.DeliverID)
	assert.Nil(t, updated.OperatorID)
}

func TestClaimConflictAndRelease(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	seedSettings(t, db, 30000, 1000)
	product := seedProduct(t, db, 100000, 10000, 5, 0)
	op1 := seedUser(t, db, "998902222222", entity.RoleOperator, 0)
	op2 := seedUser(t, db, "998903333333", entity.RoleOperator, 0)
	order := seedOrder(t, db, &entity.Order{ProductID: &product.ID, Total: 100000})

	// Both operators read the queue at version 0; only one claim wins.
	claimed, err := svc.Claim(order.ID, op1.ID, 0)
	require.NoError(t, err)
	assert.True(t, claimed.Hold)
	assert.Equal(t, 1, claimed.LockVersion)

	_, err = svc.Claim(order.ID, op2.ID, 0)
	assert.ErrorIs(t, err, ErrOrderClaimed)

	// The holder may re-claim at the current version.
	_, err = svc.Claim(order.ID, op1.ID, 1)
	require.NoError(t, err)

	// Even with a fresh version, a held order belongs to its holder.
	_, err = svc.Claim(order.ID, op2.ID, 2)
	assert.ErrorIs(t, err, ErrOrderClaimed)

	// Release frees it; release is idempotent.
	released, err := svc.ReleaseClaims(op1.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), released)

	released, err = svc.ReleaseClaims(op1.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), released)

	// Now the other operator can claim at the current version.
	claimed, err = svc.Claim(order.ID, op2.ID, 2)
	require.NoError(t, err)
	assert.True(t, claimed.Hold)
}

func TestQueueFilterComposition(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	seedSettings(t, db, 30000, 1000)
	operator := seedUser(t, db, "998902222222", entity.RoleOperator, 0)
	other := seedUser(t, db, "998903333333", entity.RoleOperator, 0)

	catA := seedCategory(t, db, "cat-a")
	catB := seedCategory(t, db, "cat-b")
	prodA := seedProduct(t, db, 100000, 10000, 5, catA.ID)
	prodB := seedProduct(t, db, 100000, 10000, 5, catB.ID)

	newA := seedOrder(t, db, &entity.Order{ProductID: &prodA.ID, Total: 1})
	deliveredA := seedOrder(t, db, &entity.Order{ProductID: &prodA.ID, Total: 1, Status: entity.StatusDelivered})
	newB := seedOrder(t, db, &entity.Order{ProductID: &prodB.ID, Total: 1})

	// status=new + category → category filter replaces everything,
	// the status filter is dropped: delivered orders show up too.
	got, err := svc.ListQueue(operator.ID, entity.StatusNew, catA.ID, 0)
	require.NoError(t, err)
	ids := orderIDs(got)
	assert.ElementsMatch(t, []uint{newA.ID, deliveredA.ID}, ids)

	// Default status without filters → only new orders.
	got, err = svc.ListQueue(operator.ID, "", 0, 0)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{newA.ID, newB.ID}, orderIDs(got))

	// A non-new status scopes to the acting operator's own orders.
	mine := seedOrder(t, db, &entity.Order{
		ProductID: &prodA.ID, Total: 1,
		Status: entity.StatusDelivering, OperatorID: &operator.ID,
	})
	seedOrder(t, db, &entity.Order{
		ProductID: &prodA.ID, Total: 1,
		Status: entity.StatusDelivering, OperatorID: &other.ID,
	})

	got, err = svc.ListQueue(operator.ID, entity.StatusDelivering, 0, 0)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{mine.ID}, orderIDs(got))

	// Unknown status values are rejected.
	_, err = svc.ListQueue(operator.ID, "bogus", 0, 0)
	_, ok := AsValidation(err)
	assert.True(t, ok)
}

func TestQueueDistrictFilterReplacesCategory(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	operator := seedUser(t, db, "998902222222", entity.RoleOperator, 0)

	region := &entity.Region{Name: "Tashkent"}
	require.NoError(t, db.Create(region).Error)
	district := &entity.District{Name: "Chilanzar", RegionID: region.ID}
	require.NoError(t, db.Create(district).Error)

	cat := seedCategory(t, db, "cat")
	prod := seedProduct(t, db, 100000, 10000, 5, cat.ID)

	inDistrict := seedOrder(t, db, &entity.Order{
		ProductID: &prod.ID, Total: 1,
		DistrictID: &district.ID, Status: entity.StatusArchived,
	})
	seedOrder(t, db, &entity.Order{ProductID: &prod.ID, Total: 1})

	got, err := svc.ListQueue(operator.ID, entity.StatusNew, cat.ID, district.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{inDistrict.ID}, orderIDs(got))
}

func orderIDs(orders []entity.Order) []uint {
	ids := make([]uint, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}
	return ids
}
