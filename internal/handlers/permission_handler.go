package handlers

import (
	"favliz/internal/models"
	"favliz/internal/services"
	"favliz/pkg/response"

	"github.com/gin-gonic/gin"
)

type PermissionHandler struct {
	service *services.PermissionService
}

func NewPermissionHandler(service *services.PermissionService) *PermissionHandler {
	return &PermissionHandler{
		service: service,
	}
}

// GetAll returns the fixed permission catalog, optionally filtered by
// resource.
func (h *PermissionHandler) GetAll(c *gin.Context) {
	resource := models.Resource(c.Query("resource"))
	if resource != "" && !models.ValidResource(resource) {
		response.BadRequest(c, "Resource không hợp lệ")
		return
	}

	permissions, err := h.service.GetAll(resource)
	if err != nil {
		response.ServerError(c, "Không tải được danh sách quyền")
		return
	}

	response.Success(c, permissions)
}
