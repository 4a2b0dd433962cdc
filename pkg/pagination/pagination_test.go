package pagination

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func contextWithQuery(query string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/?"+query, nil)
	return c
}

func TestParsePageParamsDefaults(t *testing.T) {
	params := ParsePageParams(contextWithQuery(""))
	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 10, params.PageSize)
}

func TestParsePageParamsExplicit(t *testing.T) {
	params := ParsePageParams(contextWithQuery("page=3&page_size=25"))
	assert.Equal(t, 3, params.Page)
	assert.Equal(t, 25, params.PageSize)
}

func TestParsePageParamsInvalid(t *testing.T) {
	params := ParsePageParams(contextWithQuery("page=abc&page_size=-5"))
	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 10, params.PageSize)
}

func TestParsePageParamsCapsPageSize(t *testing.T) {
	params := ParsePageParams(contextWithQuery("page_size=500"))
	assert.Equal(t, 100, params.PageSize)
}

func TestGetOffsetAndLimit(t *testing.T) {
	params := &PageParams{Page: 3, PageSize: 20}
	assert.Equal(t, 40, params.GetOffset())
	assert.Equal(t, 20, params.GetLimit())
}

func TestNewPageInfo(t *testing.T) {
	info := NewPageInfo(2, 10, 45)
	assert.Equal(t, int64(45), info.Total)
	assert.Equal(t, 5, info.TotalPages)
	assert.True(t, info.HasNext)
	assert.True(t, info.HasPrev)

	first := NewPageInfo(1, 10, 45)
	assert.False(t, first.HasPrev)
	assert.True(t, first.HasNext)

	last := NewPageInfo(5, 10, 45)
	assert.False(t, last.HasNext)

	empty := NewPageInfo(1, 10, 0)
	assert.Equal(t, 0, empty.TotalPages)
	assert.False(t, empty.HasNext)
	assert.False(t, empty.HasPrev)
}
