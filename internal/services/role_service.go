package services

import (
	"errors"
	"unicode/utf8"

	"favliz/internal/database"
	"favliz/internal/models"

	"gorm.io/gorm"
)

var (
	ErrSlugTaken           = errors.New("Slug đã tồn tại")
	ErrSystemRoleProtected = errors.New("Không thể xóa vai trò hệ thống")
	ErrPermissionNotFound  = errors.New("Quyền không tồn tại")
)

type RoleService struct {
	db *gorm.DB
}

func NewRoleService() *RoleService {
	return &RoleService{
		db: database.GetDB(),
	}
}

// NewRoleServiceWith wires an explicit handle; used by tests.
func NewRoleServiceWith(db *gorm.DB) *RoleService {
	return &RoleService{db: db}
}

// RoleSummary is a role with its assigned-admin count, for list views.
type RoleSummary struct {
	*models.Role
	AdminCount int64 `json:"admin_count"`
}

// ========== CRUD ==========

// GetWithPage lists roles with permissions and assigned-admin counts,
// newest first.
func (s *RoleService) GetWithPage(page, pageSize int) ([]*RoleSummary, int64, error) {
	var roles []*models.Role
	var total int64

	if err := s.db.Model(&models.Role{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := s.db.Preload("Permissions").
		Order("created_at DESC").
		Offset(offset).Limit(pageSize).
		Find(&roles).Error
	if err != nil {
		return nil, 0, err
	}

	summaries := make([]*RoleSummary, 0, len(roles))
	for _, role := range roles {
		var adminCount int64
		if err := s.db.Model(&models.AdminRole{}).Where("role_id = ?", role.ID).Count(&adminCount).Error; err != nil {
			return nil, 0, err
		}
		summaries = append(summaries, &RoleSummary{Role: role, AdminCount: adminCount})
	}

	return summaries, total, nil
}

// GetByID loads one role with permissions.
func (s *RoleService) GetByID(id uint) (*models.Role, error) {
	var role models.Role
	err := s.db.Preload("Permissions").First(&role, id).Error
	return &role, err
}

// Create adds a role and attaches its permission set atomically. The
// slug must be unique.
func (s *RoleService) Create(name, slug, description string, permissionIDs []uint) (*models.Role, error) {
	if err := s.ValidateCreateParams(name, slug); err != nil {
		return nil, err
	}

	var count int64
	s.db.Model(&models.Role{}).Where("slug = ?", slug).Count(&count)
	if count > 0 {
		return nil, ErrSlugTaken
	}

	permissions, err := s.resolvePermissions(permissionIDs)
	if err != nil {
		return nil, err
	}

	role := &models.Role{
		Name:        name,
		Slug:        slug,
		Description: description,
		IsSystem:    false,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(role).Error; err != nil {
			return err
		}
		return createRolePermissions(tx, role.ID, permissions)
	})
	if err != nil {
		return nil, err
	}

	role.Permissions = permissions
	return role, nil
}

// UpdatePermissions fully replaces a role's permission set. Delete and
// insert run in one transaction so no caller can observe the role with
// an empty set mid-update.
func (s *RoleService) UpdatePermissions(roleID uint, permissionIDs []uint) (*models.Role, error) {
	var role models.Role
	if err := s.db.First(&role, roleID).Error; err != nil {
		return nil, err
	}

	permissions, err := s.resolvePermissions(permissionIDs)
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("role_id = ?", roleID).Delete(&models.RolePermission{}).Error; err != nil {
			return err
		}
		return createRolePermissions(tx, roleID, permissions)
	})
	if err != nil {
		return nil, err
	}

	role.Permissions = permissions
	return &role, nil
}

// Delete removes a role together with its permission links and admin
// assignments. System roles are protected.
func (s *RoleService) Delete(id uint) error {
	var role models.Role
	if err := s.db.First(&role, id).Error; err != nil {
		return err
	}

	if role.IsSystem {
		return ErrSystemRoleProtected
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("role_id = ?", id).Delete(&models.RolePermission{}).Error; err != nil {
			return err
		}
		if err := tx.Where("role_id = ?", id).Delete(&models.AdminRole{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Role{}, id).Error
	})
}

// resolvePermissions loads the permission rows for an id set and rejects
// unknown ids.
func (s *RoleService) resolvePermissions(permissionIDs []uint) ([]models.Permission, error) {
	if len(permissionIDs) == 0 {
		return nil, nil
	}

	var permissions []models.Permission
	if err := s.db.Where("id IN ?", permissionIDs).Find(&permissions).Error; err != nil {
		return nil, err
	}
	if len(permissions) != len(permissionIDs) {
		return nil, ErrPermissionNotFound
	}
	return permissions, nil
}

func createRolePermissions(tx *gorm.DB, roleID uint, permissions []models.Permission) error {
	for _, permission := range permissions {
		link := models.RolePermission{
			RoleID:       roleID,
			PermissionID: permission.ID,
		}
		if err := tx.Create(&link).Error; err != nil {
			return err
		}
	}
	return nil
}

// ========== Validation ==========

// ValidateSlug 2-100 chars, lowercase letters, digits and hyphens.
func (s *RoleService) ValidateSlug(slug string) bool {
	if len(slug) < 2 || len(slug) > 100 {
		return false
	}
	for _, r := range slug {
		if !((r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-') {
			return false
		}
	}
	return true
}

// ValidateName 2-100 chars.
func (s *RoleService) ValidateName(name string) bool {
	runeCount := utf8.RuneCountInString(name)
	return runeCount >= 2 && runeCount <= 100
}

// ValidateCreateParams validates role creation input.
func (s *RoleService) ValidateCreateParams(name, slug string) error {
	if !s.ValidateName(name) {
		return errors.New("Tên vai trò phải dài 2-100 ký tự")
	}
	if !s.ValidateSlug(slug) {
		return errors.New("Slug phải dài 2-100 ký tự, chỉ gồm chữ thường, số và gạch ngang")
	}
	return nil
}
