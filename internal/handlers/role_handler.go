package handlers

import (
	"errors"
	"strconv"

	"favliz/internal/services"
	"favliz/pkg/pagination"
	"favliz/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

type CreateRoleRequest struct {
	Name          string `json:"name" binding:"required"`
	Slug          string `json:"slug" binding:"required"`
	Description   string `json:"description"`
	PermissionIDs []uint `json:"permission_ids"`
}

type UpdateRolePermissionsRequest struct {
	PermissionIDs []uint `json:"permission_ids"`
}

type RoleHandler struct {
	service *services.RoleService
}

func NewRoleHandler(service *services.RoleService) *RoleHandler {
	return &RoleHandler{
		service: service,
	}
}

// GetAll lists roles with permissions and assigned-admin counts.
func (h *RoleHandler) GetAll(c *gin.Context) {
	pageParams := pagination.ParsePageParams(c)

	roles, total, err := h.service.GetWithPage(pageParams.Page, pageParams.PageSize)
	if err != nil {
		response.ServerError(c, "Không tải được danh sách vai trò")
		return
	}

	pageInfo := pagination.NewPageInfo(pageParams.Page, pageParams.PageSize, total)
	response.SuccessWithPage(c, roles, pageInfo)
}

// GetByID loads one role.
func (h *RoleHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	role, err := h.service.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "Vai trò không tồn tại")
			return
		}
		response.ServerError(c, "Không tải được vai trò")
		return
	}

	response.Success(c, role)
}

// Create adds a role with an initial permission set.
func (h *RoleHandler) Create(c *gin.Context) {
	var req CreateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if validationErr, ok := err.(validator.ValidationErrors); ok {
			for _, fieldErr := range validationErr {
				switch fieldErr.Field() {
				case "Name":
					response.BadRequest(c, "Thiếu tên vai trò")
					return
				case "Slug":
					response.BadRequest(c, "Thiếu slug")
					return
				}
			}
		}
		response.BadRequest(c, "Tham số không hợp lệ")
		return
	}

	role, err := h.service.Create(req.Name, req.Slug, req.Description, req.PermissionIDs)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSlugTaken):
			response.Conflict(c, err.Error())
		case errors.Is(err, services.ErrPermissionNotFound):
			response.BadRequest(c, err.Error())
		default:
			if verr := h.service.ValidateCreateParams(req.Name, req.Slug); verr != nil {
				response.BadRequest(c, verr.Error())
				return
			}
			response.ServerError(c, "Không tạo được vai trò")
		}
		return
	}

	response.Success(c, role)
}

// UpdatePermissions replaces a role's permission set.
func (h *RoleHandler) UpdatePermissions(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var req UpdateRolePermissionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Tham số không hợp lệ")
		return
	}

	role, err := h.service.UpdatePermissions(uint(id), req.PermissionIDs)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.NotFound(c, "Vai trò không tồn tại")
		case errors.Is(err, services.ErrPermissionNotFound):
			response.BadRequest(c, err.Error())
		default:
			response.ServerError(c, "Cập nhật quyền thất bại")
		}
		return
	}

	response.Success(c, role)
}

// Delete removes a role. System roles are protected.
func (h *RoleHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	if err := h.service.Delete(uint(id)); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.NotFound(c, "Vai trò không tồn tại")
		case errors.Is(err, services.ErrSystemRoleProtected):
			response.BadRequest(c, err.Error())
		default:
			response.ServerError(c, "Xóa thất bại")
		}
		return
	}

	response.Success(c, nil)
}
