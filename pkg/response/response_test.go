package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func record(fn func(c *gin.Context)) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	fn(c)
	return w
}

func TestSuccessEnvelope(t *testing.T) {
	w := record(func(c *gin.Context) {
		Success(c, gin.H{"id": 1})
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"code":200`)
	assert.Contains(t, w.Body.String(), `"message":"success"`)
}

func TestAuthFailuresKeepHTTPStatus(t *testing.T) {
	w := record(func(c *gin.Context) {
		Unauthorized(c, "Vui lòng đăng nhập")
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"code":401`)

	w = record(func(c *gin.Context) {
		Forbidden(c, "Thiếu quyền items.read")
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), `"code":403`)
}

func TestBusinessErrorsUseHTTP200(t *testing.T) {
	w := record(func(c *gin.Context) {
		Conflict(c, "Slug đã tồn tại")
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"code":409`)

	w = record(func(c *gin.Context) {
		NotFound(c, "Vai trò không tồn tại")
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"code":404`)
}
