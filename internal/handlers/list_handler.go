package handlers

import (
	"errors"
	"strconv"

	"favliz/internal/services"
	"favliz/pkg/pagination"
	"favliz/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ListHandler struct {
	service *services.ListService
}

func NewListHandler(service *services.ListService) *ListHandler {
	return &ListHandler{
		service: service,
	}
}

// GetAll lists collections, newest first.
func (h *ListHandler) GetAll(c *gin.Context) {
	pageParams := pagination.ParsePageParams(c)
	keyword := c.Query("keyword")
	visibility := c.Query("visibility")

	lists, total, err := h.service.GetWithPage(keyword, visibility, pageParams.Page, pageParams.PageSize)
	if err != nil {
		response.ServerError(c, "Không tải được danh sách bộ sưu tập")
		return
	}

	pageInfo := pagination.NewPageInfo(pageParams.Page, pageParams.PageSize, total)
	response.SuccessWithPage(c, lists, pageInfo)
}

// Delete removes a collection; its items become unlisted.
func (h *ListHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	if err := h.service.Delete(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "Bộ sưu tập không tồn tại")
			return
		}
		response.ServerError(c, "Xóa thất bại")
		return
	}

	response.Success(c, nil)
}
