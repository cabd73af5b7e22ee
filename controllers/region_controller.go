package controllers

import (
	"strconv"

	"github.com/Salimjon123/Alijahon/pkg/resp"
	"github.com/Salimjon123/Alijahon/repository"
	"github.com/Salimjon123/Alijahon/services"
	"github.com/gin-gonic/gin"
)

type RegionController struct {
	Regions *repository.RegionRepository
	Orders  *services.OrderService
}

func NewRegionController(regions *repository.RegionRepository, orders *services.OrderService) *RegionController {
	return &RegionController{Regions: regions, Orders: orders}
}

// GET /regions
func (r *RegionController) List(c *gin.Context) {
	regions, err := r.Regions.List()
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, regions)
}

// GET /districts?region_id=
func (r *RegionController) Districts(c *gin.Context) {
	regionID, err := strconv.ParseUint(c.Query("region_id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid region id")
		return
	}
	districts, err := r.Regions.DistrictsByRegion(uint(regionID))
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, districts)
}

// GET /stats/region-orders - chart payload.
func (r *RegionController) RegionOrderCounts(c *gin.Context) {
	out, err := r.Orders.RegionCounts(c.Request.Context())
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, out)
}
