package handlers

import (
	"errors"
	"strconv"

	"favliz/internal/middleware"
	"favliz/internal/services"
	"favliz/pkg/pagination"
	"favliz/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateAdminRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name"`
	RoleIDs  []uint `json:"role_ids"`
}

type AdminHandler struct {
	service *services.AdminService
}

func NewAdminHandler(service *services.AdminService) *AdminHandler {
	return &AdminHandler{
		service: service,
	}
}

// GetAll lists admin accounts with role names, newest first.
func (h *AdminHandler) GetAll(c *gin.Context) {
	pageParams := pagination.ParsePageParams(c)
	keyword := c.Query("keyword")

	admins, total, err := h.service.GetWithPage(keyword, pageParams.Page, pageParams.PageSize)
	if err != nil {
		response.ServerError(c, "Không tải được danh sách quản trị viên")
		return
	}

	pageInfo := pagination.NewPageInfo(pageParams.Page, pageParams.PageSize, total)
	response.SuccessWithPage(c, admins, pageInfo)
}

// Create adds an admin account, recording the caller as creator.
func (h *AdminHandler) Create(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Unauthorized(c, "Vui lòng đăng nhập")
		return
	}

	var req CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Tham số không hợp lệ")
		return
	}

	admin, err := h.service.Create(req.Username, req.Password, req.Name, req.RoleIDs, claims.AdminID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUsernameTaken):
			response.Conflict(c, err.Error())
		case errors.Is(err, services.ErrRoleNotFound):
			response.BadRequest(c, err.Error())
		default:
			if verr := h.service.ValidateCreateParams(req.Username, req.Password); verr != nil {
				response.BadRequest(c, verr.Error())
				return
			}
			response.ServerError(c, "Không tạo được quản trị viên")
		}
		return
	}

	response.Success(c, admin)
}

// ToggleActive flips an admin's active flag. Self and root are protected.
func (h *AdminHandler) ToggleActive(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Unauthorized(c, "Vui lòng đăng nhập")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	admin, err := h.service.ToggleActive(uint(id), claims.AdminID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSelfModification), errors.Is(err, services.ErrRootProtected):
			response.BadRequest(c, err.Error())
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.NotFound(c, "Quản trị viên không tồn tại")
		default:
			response.ServerError(c, "Cập nhật thất bại")
		}
		return
	}

	response.Success(c, admin)
}

// Delete hard-deletes an admin account. Self and root are protected.
func (h *AdminHandler) Delete(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Unauthorized(c, "Vui lòng đăng nhập")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	if err := h.service.Delete(uint(id), claims.AdminID); err != nil {
		switch {
		case errors.Is(err, services.ErrSelfModification), errors.Is(err, services.ErrRootProtected):
			response.BadRequest(c, err.Error())
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.NotFound(c, "Quản trị viên không tồn tại")
		default:
			response.ServerError(c, "Xóa thất bại")
		}
		return
	}

	response.Success(c, nil)
}
