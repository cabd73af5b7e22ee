package controllers

import (
	"strconv"

	"github.com/Salimjon123/Alijahon/pkg/resp"
	"github.com/Salimjon123/Alijahon/services"
	"github.com/Salimjon123/Alijahon/utils"
	"github.com/gin-gonic/gin"
)

type WithdrawController struct {
	Withdraws *services.WithdrawService
}

func NewWithdrawController(withdraws *services.WithdrawService) *WithdrawController {
	return &WithdrawController{Withdraws: withdraws}
}

// POST /withdraws
func (w *WithdrawController) Create(c *gin.Context) {
	var req services.WithdrawReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	withdraw, err := w.Withdraws.Request(utils.CurrentUserID(c), &req)
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.Created(c, withdraw)
}

// GET /withdraws - own history.
func (w *WithdrawController) List(c *gin.Context) {
	withdraws, err := w.Withdraws.ListForUser(utils.CurrentUserID(c))
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, withdraws)
}

type ResolveWithdrawRequest struct {
	Status  string `json:"status" binding:"required,oneof=completed cancel"`
	Comment string `json:"comment"`
}

// PATCH /admin/withdraws/:id - complete or cancel a review.
func (w *WithdrawController) Resolve(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid withdraw id")
		return
	}
	var req ResolveWithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	withdraw, err := w.Withdraws.Resolve(uint(id), req.Status, req.Comment)
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, withdraw)
}
