package models

// User is an end user of the bookmarking app. Accounts are owned by the
// web app's auth provider; the back-office only lists, disables and
// deletes them.
type User struct {
	BaseModel
	Email    string  `json:"email" gorm:"unique;not null;size:100;index"`
	Name     string  `json:"name" gorm:"size:100"`
	Avatar   *string `json:"avatar" gorm:"size:255"`
	IsActive bool    `json:"is_active" gorm:"default:true"`
}

// TableName table name
func (u *User) TableName() string {
	return "users"
}
