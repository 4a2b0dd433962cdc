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

type ItemHandler struct {
	service *services.ItemService
}

func NewItemHandler(service *services.ItemService) *ItemHandler {
	return &ItemHandler{
		service: service,
	}
}

// GetAll lists saved items, newest first.
func (h *ItemHandler) GetAll(c *gin.Context) {
	pageParams := pagination.ParsePageParams(c)
	keyword := c.Query("keyword")
	itemType := c.Query("type")

	items, total, err := h.service.GetWithPage(keyword, itemType, pageParams.Page, pageParams.PageSize)
	if err != nil {
		response.ServerError(c, "Không tải được danh sách mục")
		return
	}

	pageInfo := pagination.NewPageInfo(pageParams.Page, pageParams.PageSize, total)
	response.SuccessWithPage(c, items, pageInfo)
}

// Delete removes an item.
func (h *ItemHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	if err := h.service.Delete(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "Mục không tồn tại")
			return
		}
		response.ServerError(c, "Xóa thất bại")
		return
	}

	response.Success(c, nil)
}
