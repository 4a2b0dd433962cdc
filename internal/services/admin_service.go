package services

import (
	"errors"
	"unicode/utf8"

	"favliz/internal/database"
	"favliz/internal/models"

	"gorm.io/gorm"
)

// Expected, user-correctable failures. Handlers map these to structured
// replies; the messages are shown to back-office staff as-is.
var (
	ErrAccountNotFoundOrDisabled = errors.New("Tên đăng nhập hoặc mật khẩu không đúng")
	ErrInvalidCredentials        = errors.New("Tên đăng nhập hoặc mật khẩu không đúng")
	ErrUsernameTaken             = errors.New("Tên đăng nhập đã tồn tại")
	ErrSelfModification          = errors.New("Không thể thao tác trên tài khoản của chính mình")
	ErrRootProtected             = errors.New("Không thể thao tác trên tài khoản root")
	ErrRoleNotFound              = errors.New("Vai trò không tồn tại")
)

type AdminService struct {
	db *gorm.DB
}

func NewAdminService() *AdminService {
	return &AdminService{
		db: database.GetDB(),
	}
}

// NewAdminServiceWith wires an explicit handle; used by tests.
func NewAdminServiceWith(db *gorm.DB) *AdminService {
	return &AdminService{db: db}
}

// ========== Authentication ==========

// Authenticate checks a username/password pair and returns the account
// with roles and permissions preloaded, ready for the token snapshot.
// Disabled and unknown accounts fail identically so that account
// existence does not leak. Note: the bcrypt compare only runs for
// existing active accounts, so timing is not constant across the two
// failure kinds.
func (s *AdminService) Authenticate(username, password string) (*models.Admin, error) {
	var admin models.Admin
	err := s.db.Where("username = ? AND is_active = ?", username, true).
		Preload("Roles.Permissions").
		First(&admin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFoundOrDisabled
		}
		return nil, err
	}

	if !admin.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}

	return &admin, nil
}

// ========== CRUD ==========

// GetByID loads one admin with roles.
func (s *AdminService) GetByID(id uint) (*models.Admin, error) {
	var admin models.Admin
	err := s.db.Preload("Roles").First(&admin, id).Error
	return &admin, err
}

// GetWithPage lists admins with their roles, newest first.
func (s *AdminService) GetWithPage(keyword string, page, pageSize int) ([]*models.Admin, int64, error) {
	var admins []*models.Admin
	var total int64

	query := s.db.Model(&models.Admin{})
	if keyword != "" {
		pattern := "%" + keyword + "%"
		query = query.Where("username LIKE ? OR name LIKE ?", pattern, pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.Preload("Roles").
		Order("created_at DESC").
		Offset(offset).Limit(pageSize).
		Find(&admins).Error
	if err != nil {
		return nil, 0, err
	}

	return admins, total, nil
}

// Create adds an admin account with an initial role set. The creating
// admin is recorded for audit.
func (s *AdminService) Create(username, password, name string, roleIDs []uint, createdBy uint) (*models.Admin, error) {
	if err := s.ValidateCreateParams(username, password); err != nil {
		return nil, err
	}

	var count int64
	s.db.Model(&models.Admin{}).Where("username = ?", username).Count(&count)
	if count > 0 {
		return nil, ErrUsernameTaken
	}

	var roles []models.Role
	if len(roleIDs) > 0 {
		if err := s.db.Where("id IN ?", roleIDs).Find(&roles).Error; err != nil {
			return nil, err
		}
		if len(roles) != len(roleIDs) {
			return nil, ErrRoleNotFound
		}
	}

	admin := &models.Admin{
		Username:  username,
		Name:      name,
		IsRoot:    false,
		IsActive:  true,
		CreatedBy: &createdBy,
	}
	if err := admin.SetPassword(password); err != nil {
		return nil, err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(admin).Error; err != nil {
			return err
		}

		for _, role := range roles {
			link := models.AdminRole{
				AdminID:   admin.ID,
				RoleID:    role.ID,
				CreatedBy: createdBy,
			}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	admin.Roles = roles
	return admin, nil
}

// ToggleActive flips is_active. Admins cannot disable themselves, and the
// root account can never be disabled.
func (s *AdminService) ToggleActive(id, callerID uint) (*models.Admin, error) {
	if id == callerID {
		return nil, ErrSelfModification
	}

	var admin models.Admin
	if err := s.db.First(&admin, id).Error; err != nil {
		return nil, err
	}

	if admin.IsRoot {
		return nil, ErrRootProtected
	}

	admin.IsActive = !admin.IsActive
	if err := s.db.Model(&admin).Update("is_active", admin.IsActive).Error; err != nil {
		return nil, err
	}

	return &admin, nil
}

// Delete hard-deletes an admin and its role assignments. Same self- and
// root-protection rules as ToggleActive.
func (s *AdminService) Delete(id, callerID uint) error {
	if id == callerID {
		return ErrSelfModification
	}

	var admin models.Admin
	if err := s.db.First(&admin, id).Error; err != nil {
		return err
	}

	if admin.IsRoot {
		return ErrRootProtected
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("admin_id = ?", id).Delete(&models.AdminRole{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Admin{}, id).Error
	})
}

// ========== Validation ==========

// ValidateUsername 3-50 chars, letters, digits and underscores only.
func (s *AdminService) ValidateUsername(username string) bool {
	if len(username) < 3 || len(username) > 50 {
		return false
	}
	for _, r := range username {
		if !((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_') {
			return false
		}
	}
	return true
}

// ValidatePassword minimum length 8.
func (s *AdminService) ValidatePassword(password string) bool {
	return utf8.RuneCountInString(password) >= 8
}

// ValidateCreateParams validates account creation input.
func (s *AdminService) ValidateCreateParams(username, password string) error {
	if !s.ValidateUsername(username) {
		return errors.New("Tên đăng nhập phải dài 3-50 ký tự, chỉ gồm chữ, số và gạch dưới")
	}
	if !s.ValidatePassword(password) {
		return errors.New("Mật khẩu phải có ít nhất 8 ký tự")
	}
	return nil
}
