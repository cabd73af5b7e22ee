package entity

import (
	"time"

	"gorm.io/gorm"
)

// Order status values. new → ready_to_delivery → delivering →
// delivered is the happy path; not_call, canceled and archived are
// side branches. Transitions are guarded in services.
const (
	StatusNew             = "new"
	StatusReadyToDelivery = "ready_to_delivery"
	StatusDelivering      = "delivering"
	StatusDelivered       = "delivered"
	StatusNotCall         = "not_call"
	StatusCanceled        = "canceled"
	StatusArchived        = "archived"
)

// OrderStatuses lists every status in enum order, for statistics
// grouping and the operator filter dropdown.
var OrderStatuses = []string{
	StatusNew, StatusReadyToDelivery, StatusDelivering, StatusDelivered,
	StatusNotCall, StatusCanceled, StatusArchived,
}

type Order struct {
	gorm.Model
	FullName    string `gorm:"not null" json:"fullName"`
	PhoneNumber string `gorm:"not null" json:"phoneNumber"`

	Quantity int   `gorm:"not null;default:1" json:"quantity"`
	Total    int64 `gorm:"not null" json:"total"`

	Status  string `gorm:"not null;default:new;index" json:"status"`
	Comment string `json:"comment"`

	DeliveredDate *time.Time `json:"deliveredDate,omitempty"`

	CustomerID *uint `json:"customerId,omitempty"`
	Customer   *User `json:"-"`

	ProductID *uint    `json:"productId,omitempty"`
	Product   *Product `json:"-"`

	ThreadID *uint   `json:"threadId,omitempty"`
	Thread   *Thread `json:"-"`

	DistrictID *uint     `json:"districtId,omitempty"`
	District   *District `json:"-"`

	OperatorID *uint `json:"operatorId,omitempty"`
	Operator   *User `json:"-"`

	DeliverID *uint `json:"deliverId,omitempty"`
	Deliver   *User `json:"-"`

	// Claim flag plus optimistic version. A claim only succeeds when
	// the caller's LockVersion matches the row's current value.
	Hold        bool `gorm:"not null;default:false" json:"hold"`
	LockVersion int  `gorm:"not null;default:0" json:"lockVersion"`
}
