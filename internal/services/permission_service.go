package services

import (
	"favliz/internal/database"
	"favliz/internal/models"

	"gorm.io/gorm"
)

type PermissionService struct {
	db *gorm.DB
}

func NewPermissionService() *PermissionService {
	return &PermissionService{
		db: database.GetDB(),
	}
}

// NewPermissionServiceWith wires an explicit handle; used by tests.
func NewPermissionServiceWith(db *gorm.DB) *PermissionService {
	return &PermissionService{db: db}
}

// GetAll returns the fixed permission catalog, grouped by resource.
// The space is 18 rows, so no pagination.
func (s *PermissionService) GetAll(resource models.Resource) ([]*models.Permission, error) {
	var permissions []*models.Permission

	query := s.db.Model(&models.Permission{})
	if resource != "" {
		query = query.Where("resource = ?", resource)
	}

	err := query.Order("resource, action").Find(&permissions).Error
	return permissions, err
}
