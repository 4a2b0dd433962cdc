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

type TagHandler struct {
	service *services.TagService
}

func NewTagHandler(service *services.TagService) *TagHandler {
	return &TagHandler{
		service: service,
	}
}

// GetAll lists tags, newest first.
func (h *TagHandler) GetAll(c *gin.Context) {
	pageParams := pagination.ParsePageParams(c)
	keyword := c.Query("keyword")

	tags, total, err := h.service.GetWithPage(keyword, pageParams.Page, pageParams.PageSize)
	if err != nil {
		response.ServerError(c, "Không tải được danh sách thẻ")
		return
	}

	pageInfo := pagination.NewPageInfo(pageParams.Page, pageParams.PageSize, total)
	response.SuccessWithPage(c, tags, pageInfo)
}

// Delete removes a tag.
func (h *TagHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	if err := h.service.Delete(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "Thẻ không tồn tại")
			return
		}
		response.ServerError(c, "Xóa thất bại")
		return
	}

	response.Success(c, nil)
}
