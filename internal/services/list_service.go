package services

import (
	"favliz/internal/database"
	"favliz/internal/models"

	"gorm.io/gorm"
)

type ListService struct {
	db *gorm.DB
}

func NewListService() *ListService {
	return &ListService{
		db: database.GetDB(),
	}
}

// NewListServiceWith wires an explicit handle; used by tests.
func NewListServiceWith(db *gorm.DB) *ListService {
	return &ListService{db: db}
}

// GetWithPage lists collections, newest first, with optional name keyword
// and visibility filters.
func (s *ListService) GetWithPage(keyword, visibility string, page, pageSize int) ([]*models.List, int64, error) {
	var lists []*models.List
	var total int64

	query := s.db.Model(&models.List{})
	if keyword != "" {
		query = query.Where("name LIKE ?", "%"+keyword+"%")
	}
	switch visibility {
	case "public":
		query = query.Where("is_public = ?", true)
	case "private":
		query = query.Where("is_public = ?", false)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.Preload("User").
		Order("created_at DESC").
		Offset(offset).Limit(pageSize).
		Find(&lists).Error
	if err != nil {
		return nil, 0, err
	}

	return lists, total, nil
}

// Delete removes a list. Items in it survive and become unlisted.
func (s *ListService) Delete(id uint) error {
	var list models.List
	if err := s.db.First(&list, id).Error; err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Item{}).Where("list_id = ?", id).Update("list_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.List{}, id).Error
	})
}
