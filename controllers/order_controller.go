package controllers

import (
	"github.com/Salimjon123/Alijahon/pkg/resp"
	"github.com/Salimjon123/Alijahon/services"
	"github.com/Salimjon123/Alijahon/utils"
	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{Orders: orders}
}

// POST /orders - submit the order form, returns the receipt.
func (o *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	var customerID *uint
	if id := utils.CurrentUserID(c); id != 0 {
		customerID = &id
	}

	receipt, err := o.Orders.Create(customerID, &req)
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.Created(c, receipt)
}

// GET /orders - own orders.
func (o *OrderController) ListForMe(c *gin.Context) {
	orders, err := o.Orders.ListForCustomer(utils.CurrentUserID(c))
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, orders)
}
