package services

import (
	"favliz/internal/database"
	"favliz/internal/models"

	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService() *UserService {
	return &UserService{
		db: database.GetDB(),
	}
}

// NewUserServiceWith wires an explicit handle; used by tests.
func NewUserServiceWith(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// GetWithPage lists app users, newest first, with optional keyword and
// status filters.
func (s *UserService) GetWithPage(keyword, status string, page, pageSize int) ([]*models.User, int64, error) {
	var users []*models.User
	var total int64

	query := s.db.Model(&models.User{})
	if keyword != "" {
		pattern := "%" + keyword + "%"
		query = query.Where("email LIKE ? OR name LIKE ?", pattern, pattern)
	}
	switch status {
	case "active":
		query = query.Where("is_active = ?", true)
	case "inactive":
		query = query.Where("is_active = ?", false)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.Order("created_at DESC").Offset(offset).Limit(pageSize).Find(&users).Error
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// ToggleActive flips is_active for an app user.
func (s *UserService) ToggleActive(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, err
	}

	user.IsActive = !user.IsActive
	if err := s.db.Model(&user).Update("is_active", user.IsActive).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

// Delete hard-deletes a user together with everything they own.
func (s *UserService) Delete(id uint) error {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM item_tags WHERE item_id IN (SELECT id FROM items WHERE user_id = ?)", id).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Item{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.List{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Tag{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, id).Error
	})
}
