package models

// Permission is an atomic capability, identified by (resource, action).
// The full space is fixed and pre-seeded; rows are never created or
// deleted at runtime.
type Permission struct {
	BaseModel
	Resource    Resource `gorm:"size:50;not null;uniqueIndex:idx_resource_action" json:"resource"`
	Action      Action   `gorm:"size:50;not null;uniqueIndex:idx_resource_action" json:"action"`
	Description string   `gorm:"size:255" json:"description"`
}

// TableName table name
func (Permission) TableName() string {
	return "permissions"
}

// Resource is a named category of protected data.
type Resource string

// Action is an operation class on a resource.
type Action string

// Protected resources
const (
	ResourceUsers  Resource = "users"
	ResourceItems  Resource = "items"
	ResourceLists  Resource = "lists"
	ResourceTags   Resource = "tags"
	ResourceAdmins Resource = "admins"
	ResourceRoles  Resource = "roles"
)

// Actions
const (
	ActionRead   Action = "read"
	ActionWrite  Action = "write"
	ActionDelete Action = "delete"
)

// AllResources in seed order
var AllResources = []Resource{
	ResourceUsers,
	ResourceItems,
	ResourceLists,
	ResourceTags,
	ResourceAdmins,
	ResourceRoles,
}

// AllActions in seed order
var AllActions = []Action{
	ActionRead,
	ActionWrite,
	ActionDelete,
}

// PermissionKey renders the wire form "resource.action".
func PermissionKey(resource Resource, action Action) string {
	return string(resource) + "." + string(action)
}

// Key renders the permission's wire form.
func (p *Permission) Key() string {
	return PermissionKey(p.Resource, p.Action)
}

// ValidResource reports whether r belongs to the fixed vocabulary.
func ValidResource(r Resource) bool {
	for _, known := range AllResources {
		if r == known {
			return true
		}
	}
	return false
}

// ValidAction reports whether a belongs to the fixed vocabulary.
func ValidAction(a Action) bool {
	for _, known := range AllActions {
		if a == known {
			return true
		}
	}
	return false
}
