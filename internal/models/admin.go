package models

import (
	"sort"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Admin is a back-office operator account. Created by an existing
// privileged admin (or the seed process for the first root account),
// never by unauthenticated callers.
type Admin struct {
	BaseModel
	Username     string `json:"username" gorm:"unique;not null;size:50;index"`
	PasswordHash string `json:"-" gorm:"not null;size:255"`
	Name         string `json:"name" gorm:"size:100"`
	IsRoot       bool   `json:"is_root" gorm:"default:false"`
	IsActive     bool   `json:"is_active" gorm:"default:true"`
	CreatedBy    *uint  `json:"created_by"` // creating admin, for audit

	Roles []Role `gorm:"many2many:admin_roles;" json:"roles,omitempty"`
}

// AdminRole admin ↔ role link
type AdminRole struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	AdminID   uint      `gorm:"not null;index" json:"admin_id"`
	RoleID    uint      `gorm:"not null;index" json:"role_id"`
	CreatedAt time.Time `json:"created_at"`
	CreatedBy uint      `json:"created_by"` // who assigned the role
}

// TableName table name
func (a *Admin) TableName() string {
	return "admins"
}

// SetPassword hashes and stores the password.
func (a *Admin) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	a.PasswordHash = string(hashedPassword)
	return nil
}

// CheckPassword verifies the password against the stored hash.
func (a *Admin) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password))
	return err == nil
}

// PermissionKeys flattens the admin's roles into a deduplicated, sorted
// set of permission keys. Requires Roles.Permissions to be preloaded.
func (a *Admin) PermissionKeys() []string {
	seen := make(map[string]struct{})
	keys := make([]string, 0)
	for _, role := range a.Roles {
		for _, key := range role.PermissionKeys() {
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}

// RoleNames collects the display names of the admin's roles.
func (a *Admin) RoleNames() []string {
	names := make([]string, 0, len(a.Roles))
	for _, role := range a.Roles {
		names = append(names, role.Name)
	}
	return names
}
