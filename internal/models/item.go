package models

import "gorm.io/datatypes"

// Item is a saved favorite: a link, an image or a note.
type Item struct {
	BaseModel
	UserID uint           `json:"user_id" gorm:"not null;index"`
	ListID *uint          `json:"list_id" gorm:"index"`
	Type   string         `json:"type" gorm:"size:20;not null;default:'link'"`
	Title  string         `json:"title" gorm:"size:255;not null"`
	URL    *string        `json:"url" gorm:"size:2048"`
	Note   string         `json:"note" gorm:"type:text"`
	Meta   datatypes.JSON `json:"meta"` // link metadata captured by the extension: url, image, excerpt

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	List *List `gorm:"foreignKey:ListID" json:"list,omitempty"`
	Tags []Tag `gorm:"many2many:item_tags;" json:"tags,omitempty"`
}

// TableName table name
func (Item) TableName() string {
	return "items"
}

// Item type constants
const (
	ItemTypeLink  = "link"
	ItemTypeImage = "image"
	ItemTypeNote  = "note"
)
