package models

import "time"

// Role is a named, reusable bundle of permissions.
type Role struct {
	BaseModel
	Name        string `gorm:"size:100;not null" json:"name"`
	Slug        string `gorm:"uniqueIndex;size:100;not null" json:"slug"`
	Description string `gorm:"size:255" json:"description"`
	IsSystem    bool   `gorm:"default:false" json:"is_system"` // system roles cannot be deleted

	Permissions []Permission `gorm:"many2many:role_permissions;" json:"permissions,omitempty"`
}

// TableName table name
func (Role) TableName() string {
	return "roles"
}

// Seeded system role slugs
const (
	RoleSlugSuperAdmin = "quan-tri"
	RoleSlugEditor     = "bien-tap"
)

// RolePermission role ↔ permission link
type RolePermission struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	RoleID       uint      `gorm:"not null;index" json:"role_id"`
	PermissionID uint      `gorm:"not null;index" json:"permission_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// PermissionKeys renders the role's permissions in wire form.
func (r *Role) PermissionKeys() []string {
	keys := make([]string, 0, len(r.Permissions))
	for _, p := range r.Permissions {
		keys = append(keys, p.Key())
	}
	return keys
}
