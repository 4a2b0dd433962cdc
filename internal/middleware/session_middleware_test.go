package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"favliz/internal/models"
	"favliz/pkg/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRouter(manager *session.Manager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	guard := NewSessionMiddlewareWith(manager)

	r := gin.New()
	r.GET("/me",
		guard.RequireSession(),
		func(c *gin.Context) {
			claims := GetClaims(c)
			c.JSON(http.StatusOK, gin.H{"username": claims.Username})
		})
	r.GET("/items",
		guard.RequireSession(),
		guard.RequirePermission(models.ResourceItems, models.ActionRead),
		func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true})
		})
	return r
}

func request(t *testing.T, r *gin.Engine, path, cookie string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: cookie})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireSessionNoCookie(t *testing.T) {
	manager := session.NewManager("test-secret", time.Hour, "", false)
	r := testRouter(manager)

	w := request(t, r, "/me", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Vui lòng đăng nhập")
}

func TestRequireSessionInvalidCookie(t *testing.T) {
	manager := session.NewManager("test-secret", time.Hour, "", false)
	r := testRouter(manager)

	w := request(t, r, "/me", "garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireSessionExpiredCookie(t *testing.T) {
	manager := session.NewManager("test-secret", time.Hour, "", false)
	expired := session.NewManager("test-secret", -time.Minute, "", false)
	r := testRouter(manager)

	token, err := expired.GenerateToken(1, "alice", "", false, nil, nil)
	require.NoError(t, err)

	w := request(t, r, "/me", token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireSessionValidCookie(t *testing.T) {
	manager := session.NewManager("test-secret", time.Hour, "", false)
	r := testRouter(manager)

	token, err := manager.GenerateToken(1, "alice", "", false, nil, nil)
	require.NoError(t, err)

	w := request(t, r, "/me", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "alice")
}

func TestRequirePermissionMissingKey(t *testing.T) {
	manager := session.NewManager("test-secret", time.Hour, "", false)
	r := testRouter(manager)

	token, err := manager.GenerateToken(2, "bob", "", false, []string{"tags.read"}, nil)
	require.NoError(t, err)

	w := request(t, r, "/items", token)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "items.read")
}

func TestRequirePermissionWithKey(t *testing.T) {
	manager := session.NewManager("test-secret", time.Hour, "", false)
	r := testRouter(manager)

	token, err := manager.GenerateToken(2, "bob", "", false, []string{"items.read"}, nil)
	require.NoError(t, err)

	w := request(t, r, "/items", token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequirePermissionRootBypass(t *testing.T) {
	manager := session.NewManager("test-secret", time.Hour, "", false)
	r := testRouter(manager)

	token, err := manager.GenerateToken(1, "root", "", true, nil, nil)
	require.NoError(t, err)

	w := request(t, r, "/items", token)
	assert.Equal(t, http.StatusOK, w.Code)
}
