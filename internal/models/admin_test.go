package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAndCheckPassword(t *testing.T) {
	admin := &Admin{Username: "alice"}
	require.NoError(t, admin.SetPassword("Secret@123"))

	assert.NotEmpty(t, admin.PasswordHash)
	assert.NotEqual(t, "Secret@123", admin.PasswordHash)
	assert.True(t, admin.CheckPassword("Secret@123"))
	assert.False(t, admin.CheckPassword("secret@123"))
	assert.False(t, admin.CheckPassword(""))
}

func TestPermissionKeysDeduplicatesAcrossRoles(t *testing.T) {
	admin := &Admin{
		Roles: []Role{
			{
				Name: "Biên tập",
				Permissions: []Permission{
					{Resource: ResourceItems, Action: ActionRead},
					{Resource: ResourceItems, Action: ActionWrite},
					{Resource: ResourceTags, Action: ActionRead},
				},
			},
			{
				Name: "Kiểm duyệt",
				Permissions: []Permission{
					{Resource: ResourceItems, Action: ActionRead},
					{Resource: ResourceUsers, Action: ActionRead},
				},
			},
		},
	}

	keys := admin.PermissionKeys()
	assert.Equal(t, []string{
		"items.read",
		"items.write",
		"tags.read",
		"users.read",
	}, keys)
}

func TestPermissionKeysNoRoles(t *testing.T) {
	admin := &Admin{}

	keys := admin.PermissionKeys()
	assert.NotNil(t, keys)
	assert.Empty(t, keys)
}

func TestRoleNames(t *testing.T) {
	admin := &Admin{
		Roles: []Role{{Name: "Quản trị"}, {Name: "Biên tập"}},
	}
	assert.Equal(t, []string{"Quản trị", "Biên tập"}, admin.RoleNames())

	assert.Empty(t, (&Admin{}).RoleNames())
}
