package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"favliz/internal/middleware"
	"favliz/internal/models"
	"favliz/internal/services"
	"favliz/pkg/session"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthRouter(t *testing.T, db *gorm.DB) (*gin.Engine, *session.Manager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sessions := session.NewManager("test-secret", time.Hour, "", false)
	handler := NewAuthHandlerWith(services.NewAdminServiceWith(db), sessions)
	guard := middleware.NewSessionMiddlewareWith(sessions)

	r := gin.New()
	r.POST("/api/v1/auth/login", handler.Login)
	r.POST("/api/v1/auth/logout", handler.Logout)
	r.GET("/api/v1/auth/me", guard.RequireSession(), handler.Me)
	return r, sessions
}

func expectRootAdminRow(t *testing.T, mock sqlmock.Sqlmock, password string) {
	t.Helper()

	stored := &models.Admin{}
	require.NoError(t, stored.SetPassword(password))

	now := time.Now()
	mock.ExpectQuery(`SELECT .+ FROM "admins" WHERE username =`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "created_at", "updated_at",
			"username", "password_hash", "name", "is_root", "is_active", "created_by",
		}).AddRow(1, now, now, "root", stored.PasswordHash, "Root", true, true, nil))
	mock.ExpectQuery(`SELECT .+ FROM "admin_roles"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "admin_id", "role_id", "created_at", "created_by"}))
}

func sessionCookie(res *http.Response) *http.Cookie {
	for _, cookie := range res.Cookies() {
		if cookie.Name == session.CookieName {
			return cookie
		}
	}
	return nil
}

func TestLoginWrongPassword(t *testing.T) {
	db, mock := newMockDB(t)
	r, _ := newAuthRouter(t, db)

	expectRootAdminRow(t, mock, "Correct@123")

	body := bytes.NewBufferString(`{"username":"root","password":"Wrong@123"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Tên đăng nhập hoặc mật khẩu không đúng")
	assert.Nil(t, sessionCookie(w.Result()), "failed login must not set a session cookie")
}

func TestLoginMissingFields(t *testing.T) {
	db, _ := newMockDB(t)
	r, _ := newAuthRouter(t, db)

	body := bytes.NewBufferString(`{"username":"root"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"code":400`)
}

func TestLoginThenMe(t *testing.T) {
	db, mock := newMockDB(t)
	r, _ := newAuthRouter(t, db)

	expectRootAdminRow(t, mock, "Correct@123")

	body := bytes.NewBufferString(`{"username":"root","password":"Correct@123"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"is_root":true`)

	cookie := sessionCookie(w.Result())
	require.NotNil(t, cookie, "successful login must set the session cookie")
	assert.True(t, cookie.HttpOnly)

	meReq := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	meReq.AddCookie(cookie)
	meW := httptest.NewRecorder()
	r.ServeHTTP(meW, meReq)

	assert.Equal(t, http.StatusOK, meW.Code)
	assert.Contains(t, meW.Body.String(), `"username":"root"`)
	assert.Contains(t, meW.Body.String(), `"is_root":true`)
}

func TestMeWithoutSession(t *testing.T) {
	db, _ := newMockDB(t)
	r, _ := newAuthRouter(t, db)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogoutClearsCookie(t *testing.T) {
	db, _ := newMockDB(t)
	r, sessions := newAuthRouter(t, db)

	token, err := sessions.GenerateToken(1, "root", "Root", true, nil, nil)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Đã đăng xuất")

	cookie := sessionCookie(w.Result())
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Less(t, cookie.MaxAge, 0)
}
