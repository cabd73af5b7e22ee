package services

import (
	"context"
	"errors"
	"time"

	"github.com/Salimjon123/Alijahon/entity"
	"github.com/Salimjon123/Alijahon/repository"
	"github.com/Salimjon123/Alijahon/utils"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const regionCountsCacheKey = "stats:region-orders"
const regionCountsCacheTTL = time.Minute

type OrderService struct {
	DB           *gorm.DB
	Repo         *repository.OrderRepository
	ProductRepo  *repository.ProductRepository
	ThreadRepo   *repository.ThreadRepository
	SettingsRepo *repository.SettingsRepository
	Redis        *redis.Client
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	productRepo *repository.ProductRepository,
	threadRepo *repository.ThreadRepository,
	settingsRepo *repository.SettingsRepository,
	rdb *redis.Client,
) *OrderService {
	return &OrderService{
		DB:           db,
		Repo:         repo,
		ProductRepo:  productRepo,
		ThreadRepo:   threadRepo,
		SettingsRepo: settingsRepo,
		Redis:        rdb,
	}
}

// ----- Create -----

type CreateOrderReq struct {
	FullName    string `json:"fullName" binding:"required"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	ProductID   uint   `json:"productId" binding:"required"`
	ThreadID    *uint  `json:"threadId"`
}

// OrderReceipt is what the customer sees after submitting the form.
type OrderReceipt struct {
	Order         *entity.Order `json:"order"`
	DeliveryPrice int64         `json:"deliveryPrice"`
}

// Create prices and stores a fresh order in status "new". A thread
// reference applies the affiliate discount once, flat.
func (s *OrderService) Create(customerID *uint, req *CreateOrderReq) (*OrderReceipt, error) {
	phone := utils.NormalizePhone(req.PhoneNumber)
	if phone == "" {
		return nil, fieldErr("phoneNumber", "phone number is required")
	}

	product, err := s.ProductRepo.GetByID(req.ProductID)
	if err != nil {
		return nil, fieldErr("productId", "product not found")
	}

	var thread *entity.Thread
	if req.ThreadID != nil {
		thread, err = s.ThreadRepo.GetByID(*req.ThreadID)
		if err != nil {
			return nil, fieldErr("threadId", "thread not found")
		}
	}

	settings, err := s.settings(s.DB)
	if err != nil {
		return nil, err
	}

	order := &entity.Order{
		FullName:    req.FullName,
		PhoneNumber: phone,
		Quantity:    1,
		Total:       InitialTotal(product, thread, settings),
		Status:      entity.StatusNew,
		CustomerID:  customerID,
		ProductID:   &product.ID,
	}
	if thread != nil {
		order.ThreadID = &thread.ID
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.Create(tx, order)
	})
	if err != nil {
		return nil, err
	}
	return &OrderReceipt{Order: order, DeliveryPrice: settings.DeliveryPrice}, nil
}

func (s *OrderService) ListForCustomer(customerID uint) ([]entity.Order, error) {
	return s.Repo.ListForCustomer(customerID)
}

// ----- Fulfillment update -----

type UpdateOrderReq struct {
	Quantity      *int    `json:"quantity"`
	DistrictID    *uint   `json:"districtId"`
	Status        *string `json:"status"`
	Comment       *string `json:"comment"`
	DeliveredDate *string `json:"deliveredDate"` // YYYY-MM-DD
}

// Update applies an operator's fulfillment edit. The whole
// clean/validate phase runs inside one transaction: any rejection
// leaves the order exactly as it was. Quantity changes reprice the
// order from scratch; operator/deliver assignment follows the acting
// employee's role.
func (s *OrderService) Update(employee *entity.User, orderID uint, req *UpdateOrderReq) (*entity.Order, error) {
	var updated *entity.Order

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		order, err := s.Repo.GetOrderWithRefs(tx, orderID)
		if err != nil {
			return err
		}

		updates := map[string]any{}

		quantity := order.Quantity
		if req.Quantity != nil && *req.Quantity > 0 {
			quantity = *req.Quantity
		}
		if quantity != order.Quantity {
			if order.Product == nil {
				return fieldErr("quantity", "order has no product")
			}
			if order.Product.Quantity < quantity {
				return fieldErr("quantity", "the quantity is incorrect")
			}
			settings, err := s.settings(tx)
			if err != nil {
				return err
			}
			updates["quantity"] = quantity
			updates["total"] = RecomputeTotal(order.Product, order.Thread, settings, quantity)
		}

		if req.DeliveredDate != nil && *req.DeliveredDate != "" {
			d, err := time.Parse("2006-01-02", *req.DeliveredDate)
			if err != nil {
				return fieldErr("deliveredDate", "delivery date is incorrect")
			}
			if d.Before(today()) {
				return fieldErr("deliveredDate", "delivery date is incorrect")
			}
			updates["delivered_date"] = d
		}

		if req.Status != nil && *req.Status != order.Status {
			if !CanTransition(order.Status, *req.Status) {
				return fieldErr("status", "status change is not allowed")
			}
			updates["status"] = *req.Status
		}

		if req.DistrictID != nil {
			updates["district_id"] = *req.DistrictID
		}
		if req.Comment != nil {
			updates["comment"] = *req.Comment
		}

		// Role-gated assignment: the field is set when the employee's
		// role matches, cleared otherwise.
		updates["operator_id"] = assignByRole(employee, entity.RoleOperator)
		updates["deliver_id"] = assignByRole(employee, entity.RoleDeliver)

		if err := s.Repo.UpdateFields(tx, order.ID, updates); err != nil {
			return err
		}

		updated, err = s.Repo.GetOrder(tx, order.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"order_id":    orderID,
		"employee_id": employee.ID,
		"role":        employee.Role,
	}).Info("order updated")
	return updated, nil
}

// ----- Operator queue -----

func (s *OrderService) ListQueue(operatorID uint, status string, categoryID, districtID uint) ([]entity.Order, error) {
	if status == "" {
		status = entity.StatusNew
	}
	if !validStatus(status) {
		return nil, fieldErr("status", "unknown status")
	}
	return s.Repo.ListQueue(operatorID, status, categoryID, districtID)
}

// ----- Region chart -----

type RegionOrderCounts struct {
	Regions []string `json:"regions"`
	Numbers []int    `json:"numbers"`
}

// RegionCounts shapes per-region order counts for charting. Cached
// briefly; the chart tolerates staleness.
func (s *OrderService) RegionCounts(ctx context.Context) (*RegionOrderCounts, error) {
	var cached RegionOrderCounts
	if hit, err := utils.GetCache(ctx, s.Redis, regionCountsCacheKey, &cached); err == nil && hit {
		return &cached, nil
	}

	rows, err := s.Repo.RegionOrderCounts()
	if err != nil {
		return nil, err
	}
	out := &RegionOrderCounts{
		Regions: make([]string, 0, len(rows)),
		Numbers: make([]int, 0, len(rows)),
	}
	for _, row := range rows {
		out.Regions = append(out.Regions, row.Name)
		out.Numbers = append(out.Numbers, row.OrderCount)
	}
	if err := utils.SetCache(ctx, s.Redis, regionCountsCacheKey, out, regionCountsCacheTTL); err != nil {
		logrus.WithError(err).Warn("region counts cache write failed")
	}
	return out, nil
}

// ----- helpers -----

func (s *OrderService) settings(tx *gorm.DB) (*entity.SiteSettings, error) {
	settings, err := s.SettingsRepo.Get(tx)
	if err != nil {
		if errors.Is(err, repository.ErrNoSettings) {
			return nil, ErrSiteSettingsMissing
		}
		return nil, err
	}
	return settings, nil
}

func assignByRole(employee *entity.User, role string) *uint {
	if employee != nil && employee.Role == role {
		id := employee.ID
		return &id
	}
	return nil
}

func today() time.Time {
	y, m, d := time.Now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func validStatus(status string) bool {
	for _, s := range entity.OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}
