package services

import (
	"favliz/internal/database"
	"favliz/internal/models"

	"gorm.io/gorm"
)

type TagService struct {
	db *gorm.DB
}

func NewTagService() *TagService {
	return &TagService{
		db: database.GetDB(),
	}
}

// NewTagServiceWith wires an explicit handle; used by tests.
func NewTagServiceWith(db *gorm.DB) *TagService {
	return &TagService{db: db}
}

// GetWithPage lists tags, newest first, with an optional name keyword.
func (s *TagService) GetWithPage(keyword string, page, pageSize int) ([]*models.Tag, int64, error) {
	var tags []*models.Tag
	var total int64

	query := s.db.Model(&models.Tag{})
	if keyword != "" {
		query = query.Where("name LIKE ?", "%"+keyword+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.Preload("User").
		Order("created_at DESC").
		Offset(offset).Limit(pageSize).
		Find(&tags).Error
	if err != nil {
		return nil, 0, err
	}

	return tags, total, nil
}

// Delete removes a tag and its item links.
func (s *TagService) Delete(id uint) error {
	var tag models.Tag
	if err := s.db.First(&tag, id).Error; err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM item_tags WHERE tag_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Tag{}, id).Error
	})
}
