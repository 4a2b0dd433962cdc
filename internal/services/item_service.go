package services

import (
	"favliz/internal/database"
	"favliz/internal/models"

	"gorm.io/gorm"
)

type ItemService struct {
	db *gorm.DB
}

func NewItemService() *ItemService {
	return &ItemService{
		db: database.GetDB(),
	}
}

// NewItemServiceWith wires an explicit handle; used by tests.
func NewItemServiceWith(db *gorm.DB) *ItemService {
	return &ItemService{db: db}
}

// GetWithPage lists items, newest first, with optional title keyword and
// type filters.
func (s *ItemService) GetWithPage(keyword, itemType string, page, pageSize int) ([]*models.Item, int64, error) {
	var items []*models.Item
	var total int64

	query := s.db.Model(&models.Item{})
	if keyword != "" {
		query = query.Where("title LIKE ?", "%"+keyword+"%")
	}
	if itemType != "" {
		query = query.Where("type = ?", itemType)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.Preload("User").Preload("Tags").
		Order("created_at DESC").
		Offset(offset).Limit(pageSize).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

// Delete removes an item and its tag links.
func (s *ItemService) Delete(id uint) error {
	var item models.Item
	if err := s.db.First(&item, id).Error; err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM item_tags WHERE item_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Item{}, id).Error
	})
}
