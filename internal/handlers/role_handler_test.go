package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"favliz/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newRoleRouter(t *testing.T, db *gorm.DB) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	handler := NewRoleHandler(services.NewRoleServiceWith(db))

	r := gin.New()
	r.POST("/api/v1/roles", handler.Create)
	r.DELETE("/api/v1/roles/:id", handler.Delete)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateRoleDuplicateSlug(t *testing.T) {
	db, mock := newMockDB(t)
	r := newRoleRouter(t, db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "roles" WHERE slug =`).
		WillReturnRows(sqlmockCountRows(1))

	w := postJSON(r, "/api/v1/roles", `{"name":"Biên tập viên","slug":"bien-tap-vien"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"code":409`)
	assert.Contains(t, w.Body.String(), "Slug đã tồn tại")
}

func TestCreateRoleMissingSlug(t *testing.T) {
	db, _ := newMockDB(t)
	r := newRoleRouter(t, db)

	w := postJSON(r, "/api/v1/roles", `{"name":"Biên tập viên"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Thiếu slug")
}

func TestDeleteSystemRoleRejected(t *testing.T) {
	db, mock := newMockDB(t)
	r := newRoleRouter(t, db)

	now := time.Now()
	mock.ExpectQuery(`SELECT .+ FROM "roles" WHERE`).
		WillReturnRows(sqlmockRoleRows().
			AddRow(1, now, now, "Quản trị", "quan-tri", "", true))

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/roles/1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Không thể xóa vai trò hệ thống")
}

func TestDeleteRoleNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	r := newRoleRouter(t, db)

	mock.ExpectQuery(`SELECT .+ FROM "roles" WHERE`).
		WillReturnRows(sqlmockRoleRows())

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/roles/99", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"code":404`)
}
