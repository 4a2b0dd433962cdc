package middleware

import (
	"favliz/internal/models"
	"favliz/pkg/response"
	"favliz/pkg/session"

	"github.com/gin-gonic/gin"
)

const claimsKey = "claims"

// SessionMiddleware guards back-office routes. Each request is authorized
// independently from the claims snapshot in the session cookie; the store
// is never consulted here.
type SessionMiddleware struct {
	sessions *session.Manager
}

func NewSessionMiddleware() *SessionMiddleware {
	return &SessionMiddleware{
		sessions: session.GetManager(),
	}
}

// NewSessionMiddlewareWith wires an explicit manager; used by tests.
func NewSessionMiddlewareWith(sessions *session.Manager) *SessionMiddleware {
	return &SessionMiddleware{sessions: sessions}
}

// RequireSession decodes the session cookie. A missing, tampered or
// expired cookie is uniformly "no session".
func (m *SessionMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := m.sessions.Decode(c)
		if claims == nil {
			response.Unauthorized(c, "Vui lòng đăng nhập")
			c.Abort()
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// RequirePermission demands one capability. Root bypasses the check;
// everyone else needs the key in their permission snapshot.
func (m *SessionMiddleware) RequirePermission(resource models.Resource, action models.Action) gin.HandlerFunc {
	key := models.PermissionKey(resource, action)
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			response.Unauthorized(c, "Vui lòng đăng nhập")
			c.Abort()
			return
		}

		if !claims.HasPermission(key) {
			response.Forbidden(c, "Thiếu quyền "+key)
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetClaims returns the verified session payload for the request, or nil.
func GetClaims(c *gin.Context) *session.Claims {
	value, exists := c.Get(claimsKey)
	if !exists {
		return nil
	}
	claims, ok := value.(*session.Claims)
	if !ok {
		return nil
	}
	return claims
}
