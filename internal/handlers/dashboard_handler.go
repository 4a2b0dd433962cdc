package handlers

import (
	"favliz/internal/services"
	"favliz/pkg/response"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	service *services.DashboardService
}

func NewDashboardHandler(service *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		service: service,
	}
}

// GetStats returns the aggregate counters for the landing page.
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.service.Get(c.Request.Context())
	if err != nil {
		response.ServerError(c, "Không tải được thống kê")
		return
	}

	response.Success(c, stats)
}
