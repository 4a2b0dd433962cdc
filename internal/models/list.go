package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// List is a user-curated collection of items, optionally shared publicly
// through its share token.
type List struct {
	BaseModel
	UserID     uint   `json:"user_id" gorm:"not null;index"`
	Name       string `json:"name" gorm:"size:100;not null"`
	Slug       string `json:"slug" gorm:"size:100;not null;index"`
	IsPublic   bool   `json:"is_public" gorm:"default:false"`
	ShareToken string `json:"share_token" gorm:"size:36;uniqueIndex"`

	User  *User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Items []Item `gorm:"foreignKey:ListID" json:"items,omitempty"`
}

// TableName table name
func (List) TableName() string {
	return "lists"
}

// BeforeCreate assigns the share token used by public share links.
func (l *List) BeforeCreate(tx *gorm.DB) error {
	if l.ShareToken == "" {
		l.ShareToken = uuid.NewString()
	}
	return nil
}
