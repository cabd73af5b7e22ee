package repository

import (
	"github.com/Salimjon123/Alijahon/entity"
	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) Create(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

// GetOrder reads one order on the caller's connection. Pass the open
// tx when reading inside a transaction so the read sees its own
// uncommitted writes.
func (r *OrderRepository) GetOrder(tx *gorm.DB, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := tx.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// GetOrderWithRefs loads the order plus the product and thread the
// pricing engine needs.
func (r *OrderRepository) GetOrderWithRefs(tx *gorm.DB, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := tx.Preload("Product").Preload("Thread.Product").First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) ListForCustomer(customerID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Where("customer_id = ?", customerID).
		Order("id DESC").
		Find(&orders).Error
	return orders, err
}

// ListQueue is the operator dispatcher view. The filter composition is
// deliberately asymmetric: a category or district filter REPLACES the
// base query and, while status is "new", drops the status filter
// entirely; district likewise replaces category. Any status other
// than "new" scopes to the acting operator's own orders on top of
// whatever base remains.
func (r *OrderRepository) ListQueue(operatorID uint, status string, categoryID, districtID uint) ([]entity.Order, error) {
	q := r.DB.Model(&entity.Order{})
	replaced := false

	if categoryID != 0 {
		q = r.DB.Model(&entity.Order{}).
			Joins("JOIN products p ON p.id = orders.product_id").
			Where("p.category_id = ?", categoryID)
		replaced = true
	}
	if districtID != 0 {
		q = r.DB.Model(&entity.Order{}).Where("orders.district_id = ?", districtID)
		replaced = true
	}

	if status != entity.StatusNew {
		q = q.Where("orders.operator_id = ? AND orders.status = ?", operatorID, status)
	} else if !replaced {
		q = q.Where("orders.status = ?", status)
	}

	var orders []entity.Order
	err := q.Order("orders.id DESC").Find(&orders).Error
	return orders, err
}

// Claim marks the order held by the operator. The UPDATE only fires
// when the caller's lock version is current and nobody else holds the
// row, so two operators cannot both believe they own it. Re-claiming
// an order you already hold is allowed.
func (r *OrderRepository) Claim(orderID, operatorID uint, expectedVersion int) (bool, error) {
	res := r.DB.Model(&entity.Order{}).
		Where("id = ? AND lock_version = ? AND (hold = ? OR operator_id = ?)",
			orderID, expectedVersion, false, operatorID).
		Updates(map[string]any{
			"hold":         true,
			"operator_id":  operatorID,
			"lock_version": gorm.Expr("lock_version + 1"),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// ReleaseClaims drops every hold the operator owns. Idempotent.
func (r *OrderRepository) ReleaseClaims(operatorID uint) (int64, error) {
	res := r.DB.Model(&entity.Order{}).
		Where("operator_id = ? AND hold = ?", operatorID, true).
		Update("hold", false)
	return res.RowsAffected, res.Error
}

// UpdateFields applies a validated fulfillment update in the caller's
// transaction.
func (r *OrderRepository) UpdateFields(tx *gorm.DB, orderID uint, updates map[string]any) error {
	return tx.Model(&entity.Order{}).Where("id = ?", orderID).Updates(updates).Error
}

// RegionOrderCountRow feeds the diagram endpoint.
type RegionOrderCountRow struct {
	Name       string `json:"name"`
	OrderCount int    `json:"orderCount"`
}

// RegionOrderCounts counts orders per region through its districts.
func (r *OrderRepository) RegionOrderCounts() ([]RegionOrderCountRow, error) {
	var rows []RegionOrderCountRow
	err := r.DB.Table("regions AS rg").
		Select("rg.name, COUNT(o.id) AS order_count").
		Joins("LEFT JOIN districts d ON d.region_id = rg.id AND d.deleted_at IS NULL").
		Joins("LEFT JOIN orders o ON o.district_id = d.id AND o.deleted_at IS NULL").
		Where("rg.deleted_at IS NULL").
		Group("rg.id, rg.name").
		Order("rg.id").
		Scan(&rows).Error
	return rows, err
}
