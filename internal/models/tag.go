package models

// Tag labels a user's items.
type Tag struct {
	BaseModel
	UserID uint   `json:"user_id" gorm:"not null;index;uniqueIndex:idx_user_name"`
	Name   string `json:"name" gorm:"size:50;not null;uniqueIndex:idx_user_name"`
	Color  string `json:"color" gorm:"size:7;default:'#2196F3'"`

	User  *User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Items []Item `gorm:"many2many:item_tags;" json:"-"`
}

// TableName table name
func (Tag) TableName() string {
	return "tags"
}
