package handlers

import (
	"errors"
	"time"

	"favliz/internal/middleware"
	"favliz/internal/services"
	"favliz/pkg/logger"
	"favliz/pkg/response"
	"favliz/pkg/session"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	adminService *services.AdminService
	sessions     *session.Manager
}

func NewAuthHandler(adminService *services.AdminService) *AuthHandler {
	return &AuthHandler{
		adminService: adminService,
		sessions:     session.GetManager(),
	}
}

// NewAuthHandlerWith wires an explicit session manager; used by tests.
func NewAuthHandlerWith(adminService *services.AdminService, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{adminService: adminService, sessions: sessions}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	ExpiresAt int64     `json:"expires_at"`
	Admin     AdminInfo `json:"admin"`
}

type AdminInfo struct {
	ID          uint     `json:"id"`
	Username    string   `json:"username"`
	Name        string   `json:"name"`
	IsRoot      bool     `json:"is_root"`
	Permissions []string `json:"permissions"`
	Roles       []string `json:"roles"`
}

// Login authenticates an admin and sets the session cookie. The token
// embeds the permission snapshot taken right now; later role edits do
// not reach sessions already issued.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Thiếu tên đăng nhập hoặc mật khẩu")
		return
	}

	admin, err := h.adminService.Authenticate(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrAccountNotFoundOrDisabled) || errors.Is(err, services.ErrInvalidCredentials) {
			// One message for both failures: do not leak which field was wrong.
			response.Unauthorized(c, "Tên đăng nhập hoặc mật khẩu không đúng")
			return
		}
		response.ServerError(c, "Đăng nhập thất bại")
		return
	}

	permissions := admin.PermissionKeys()
	roles := admin.RoleNames()

	token, err := h.sessions.GenerateToken(admin.ID, admin.Username, admin.Name, admin.IsRoot, permissions, roles)
	if err != nil {
		response.ServerError(c, "Không tạo được phiên đăng nhập")
		return
	}

	h.sessions.SetCookie(c, token)

	logger.GetLogger().Infof("admin %s logged in", admin.Username)

	expiresAt := time.Now().Add(h.sessions.GetTokenDuration()).Unix()
	response.Success(c, LoginResponse{
		ExpiresAt: expiresAt,
		Admin: AdminInfo{
			ID:          admin.ID,
			Username:    admin.Username,
			Name:        admin.Name,
			IsRoot:      admin.IsRoot,
			Permissions: permissions,
			Roles:       roles,
		},
	})
}

// Logout clears the session cookie. Always succeeds: a missing or broken
// cookie is already logged out.
func (h *AuthHandler) Logout(c *gin.Context) {
	if claims := h.sessions.Decode(c); claims != nil {
		logger.GetLogger().Infof("admin %s logged out", claims.Username)
	}

	h.sessions.ClearCookie(c)
	response.SuccessWithMessage(c, "Đã đăng xuất", nil)
}

// Me returns the decoded session payload. No store round-trip: the reply
// shows exactly the snapshot the token carries.
func (h *AuthHandler) Me(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Unauthorized(c, "Vui lòng đăng nhập")
		return
	}

	response.Success(c, AdminInfo{
		ID:          claims.AdminID,
		Username:    claims.Username,
		Name:        claims.Name,
		IsRoot:      claims.IsRoot,
		Permissions: claims.Permissions,
		Roles:       claims.Roles,
	})
}
