package controllers

import (
	"strconv"

	"github.com/Salimjon123/Alijahon/pkg/resp"
	"github.com/Salimjon123/Alijahon/services"
	"github.com/Salimjon123/Alijahon/utils"
	"github.com/gin-gonic/gin"
)

type ThreadController struct {
	Threads *services.ThreadService
}

func NewThreadController(threads *services.ThreadService) *ThreadController {
	return &ThreadController{Threads: threads}
}

// POST /threads
func (t *ThreadController) Create(c *gin.Context) {
	var req services.CreateThreadReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	thread, err := t.Threads.Create(utils.CurrentUserID(c), &req)
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.Created(c, thread)
}

// GET /threads - own threads.
func (t *ThreadController) List(c *gin.Context) {
	threads, err := t.Threads.ListForOwner(utils.CurrentUserID(c))
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, threads)
}

// GET /threads/:id/landing - referral landing payload; counts the visit.
func (t *ThreadController) Landing(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid thread id")
		return
	}
	thread, err := t.Threads.Landing(uint(id))
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, gin.H{"thread": thread, "product": thread.Product})
}

// GET /threads/stats - per-thread breakdown plus totals.
func (t *ThreadController) Stats(c *gin.Context) {
	stats, err := t.Threads.Stats(utils.CurrentUserID(c))
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, stats)
}

// GET /competition - public leaderboard.
func (t *ThreadController) Competition(c *gin.Context) {
	out, err := t.Threads.Competition(c.Request.Context())
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, out)
}
