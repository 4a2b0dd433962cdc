package session

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"favliz/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the cookie carrying the admin session token.
const CookieName = "admin_session"

// Claims is the payload minted at login. The permission set is a snapshot:
// role or permission edits made afterwards only take effect once the admin
// logs in again or the token expires.
type Claims struct {
	AdminID     uint     `json:"id"`
	Username    string   `json:"username"`
	Name        string   `json:"name"`
	IsRoot      bool     `json:"is_root"`
	Permissions []string `json:"permissions"`
	Roles       []string `json:"roles"`
	jwt.RegisteredClaims
}

// HasPermission reports whether the snapshot contains the permission key.
// Root bypasses the set entirely.
func (c *Claims) HasPermission(key string) bool {
	if c.IsRoot {
		return true
	}
	for _, p := range c.Permissions {
		if p == key {
			return true
		}
	}
	return false
}

// Manager signs and verifies admin session tokens.
type Manager struct {
	secretKey     string
	tokenDuration time.Duration
	cookieDomain  string
	secureCookie  bool
}

// NewManager creates a session manager.
func NewManager(secretKey string, tokenDuration time.Duration, cookieDomain string, secureCookie bool) *Manager {
	return &Manager{
		secretKey:     secretKey,
		tokenDuration: tokenDuration,
		cookieDomain:  cookieDomain,
		secureCookie:  secureCookie,
	}
}

// GenerateToken mints a signed session token for an admin.
func (m *Manager) GenerateToken(adminID uint, username, name string, isRoot bool, permissions, roles []string) (string, error) {
	if permissions == nil {
		permissions = []string{}
	}
	if roles == nil {
		roles = []string{}
	}

	claims := Claims{
		AdminID:     adminID,
		Username:    username,
		Name:        name,
		IsRoot:      isRoot,
		Permissions: permissions,
		Roles:       roles,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    "favliz-admin",
			Subject:   username,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(m.secretKey))
}

// VerifyToken validates a session token and returns its claims.
func (m *Manager) VerifyToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&Claims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(m.secretKey), nil
		},
	)

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, errors.New("cannot parse token claims")
	}

	return claims, nil
}

// Decode reads the session cookie from the request. Absent cookie, bad
// signature and expired token all yield nil: callers treat nil uniformly
// as "no session".
func (m *Manager) Decode(c *gin.Context) *Claims {
	tokenString, err := c.Cookie(CookieName)
	if err != nil || tokenString == "" {
		return nil
	}

	claims, err := m.VerifyToken(tokenString)
	if err != nil {
		return nil
	}
	return claims
}

// SetCookie stores the token in the HTTP-only session cookie.
func (m *Manager) SetCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, token, int(m.tokenDuration.Seconds()), "/", m.cookieDomain, m.secureCookie, true)
}

// ClearCookie deletes the session cookie.
func (m *Manager) ClearCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, "", -1, "/", m.cookieDomain, m.secureCookie, true)
}

// GetTokenDuration returns the token lifetime.
func (m *Manager) GetTokenDuration() time.Duration {
	return m.tokenDuration
}

// Singleton wiring, same shape as the config package.
var (
	defaultManager *Manager
	once           sync.Once
)

// GetManager returns the global session manager.
func GetManager() *Manager {
	once.Do(func() {
		cfg := config.GetConfig()
		tokenDuration, err := time.ParseDuration(cfg.Session.TokenDuration)
		if err != nil {
			tokenDuration = 7 * 24 * time.Hour
		}
		defaultManager = NewManager(
			cfg.Session.SecretKey,
			tokenDuration,
			cfg.Session.CookieDomain,
			cfg.Server.Mode == "release",
		)
	})
	return defaultManager
}
