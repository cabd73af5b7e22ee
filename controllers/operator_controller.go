package controllers

import (
	"strconv"

	"github.com/Salimjon123/Alijahon/entity"
	"github.com/Salimjon123/Alijahon/pkg/resp"
	"github.com/Salimjon123/Alijahon/services"
	"github.com/Salimjon123/Alijahon/utils"
	"github.com/gin-gonic/gin"
)

type OperatorController struct {
	Orders *services.OrderService
	Auth   *services.AuthService
}

func NewOperatorController(orders *services.OrderService, auth *services.AuthService) *OperatorController {
	return &OperatorController{Orders: orders, Auth: auth}
}

// GET /operator/orders?status=&category_id=&district_id=
func (o *OperatorController) Queue(c *gin.Context) {
	categoryID := uintQuery(c, "category_id")
	districtID := uintQuery(c, "district_id")

	orders, err := o.Orders.ListQueue(utils.CurrentUserID(c), c.Query("status"), categoryID, districtID)
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, gin.H{
		"orders":   orders,
		"statuses": entity.OrderStatuses,
	})
}

type ClaimRequest struct {
	ExpectedVersion int `json:"expectedVersion"`
}

// POST /operator/orders/:id/claim
func (o *OperatorController) Claim(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}
	var req ClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := o.Orders.Claim(uint(orderID), utils.CurrentUserID(c), req.ExpectedVersion)
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, order)
}

// POST /operator/orders/release - drop all of the caller's holds.
func (o *OperatorController) Release(c *gin.Context) {
	released, err := o.Orders.ReleaseClaims(utils.CurrentUserID(c))
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, gin.H{"released": released})
}

// PATCH /operator/orders/:id - fulfillment update.
func (o *OperatorController) Update(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}
	var req services.UpdateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	employee, err := o.Auth.GetProfile(utils.CurrentUserID(c))
	if err != nil {
		serviceError(c, err)
		return
	}

	order, err := o.Orders.Update(employee, uint(orderID), &req)
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, order)
}

func uintQuery(c *gin.Context, key string) uint {
	v, err := strconv.ParseUint(c.Query(key), 10, 32)
	if err != nil {
		return 0
	}
	return uint(v)
}
