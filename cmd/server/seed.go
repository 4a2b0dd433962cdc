package main

import (
	"fmt"
	"os"

	"favliz/internal/database"
	"favliz/internal/models"
	"favliz/pkg/logger"

	"gorm.io/gorm"
)

// seedData provisions the fixed permission space, the built-in roles and
// the root account. Safe to run on every boot.
func seedData() error {
	appLogger := logger.GetLogger()
	appLogger.Info("Starting seed data initialization...")

	db := database.GetDB()

	if err := initializePermissions(db); err != nil {
		return fmt.Errorf("seed permissions: %v", err)
	}

	if err := createSystemRoles(db); err != nil {
		return fmt.Errorf("seed system roles: %v", err)
	}

	if err := createRootAdmin(db); err != nil {
		return fmt.Errorf("seed root admin: %v", err)
	}

	appLogger.Info("Seed data initialization completed successfully")
	return nil
}

// permissionDescriptions Vietnamese labels for the catalog.
var permissionDescriptions = map[models.Resource]string{
	models.ResourceUsers:  "người dùng",
	models.ResourceItems:  "mục đã lưu",
	models.ResourceLists:  "bộ sưu tập",
	models.ResourceTags:   "thẻ",
	models.ResourceAdmins: "quản trị viên",
	models.ResourceRoles:  "vai trò",
}

var actionDescriptions = map[models.Action]string{
	models.ActionRead:   "Xem",
	models.ActionWrite:  "Quản lý",
	models.ActionDelete: "Xóa",
}

// initializePermissions creates the full 18-entry permission space. The
// catalog is append-only: existing rows are left untouched.
func initializePermissions(db *gorm.DB) error {
	for _, resource := range models.AllResources {
		for _, action := range models.AllActions {
			var count int64
			db.Model(&models.Permission{}).
				Where("resource = ? AND action = ?", resource, action).
				Count(&count)
			if count > 0 {
				continue
			}

			permission := models.Permission{
				Resource:    resource,
				Action:      action,
				Description: actionDescriptions[action] + " " + permissionDescriptions[resource],
			}
			if err := db.Create(&permission).Error; err != nil {
				return fmt.Errorf("create permission %s: %v", permission.Key(), err)
			}
		}
	}

	logger.GetLogger().Info("Permission catalog seeded")
	return nil
}

// createSystemRoles provisions the built-in roles: full administration
// and a content editor limited to items, lists and tags.
func createSystemRoles(db *gorm.DB) error {
	if err := createSystemRole(db, models.RoleSlugSuperAdmin, "Quản trị", "Toàn quyền hệ thống",
		func(p models.Permission) bool { return true }); err != nil {
		return err
	}

	editorResources := map[models.Resource]bool{
		models.ResourceItems: true,
		models.ResourceLists: true,
		models.ResourceTags:  true,
	}
	return createSystemRole(db, models.RoleSlugEditor, "Biên tập", "Quản lý nội dung: mục, bộ sưu tập, thẻ",
		func(p models.Permission) bool {
			return editorResources[p.Resource] && p.Action != models.ActionDelete
		})
}

func createSystemRole(db *gorm.DB, slug, name, description string, include func(models.Permission) bool) error {
	var count int64
	db.Model(&models.Role{}).Where("slug = ?", slug).Count(&count)
	if count > 0 {
		return nil
	}

	role := &models.Role{
		Name:        name,
		Slug:        slug,
		Description: description,
		IsSystem:    true,
	}
	if err := db.Create(role).Error; err != nil {
		return err
	}

	var permissions []models.Permission
	if err := db.Find(&permissions).Error; err != nil {
		return err
	}

	for _, permission := range permissions {
		if !include(permission) {
			continue
		}
		link := models.RolePermission{
			RoleID:       role.ID,
			PermissionID: permission.ID,
		}
		if err := db.Create(&link).Error; err != nil {
			return err
		}
	}

	logger.GetLogger().Infof("System role %s seeded", slug)
	return nil
}

// createRootAdmin provisions the distinguished root account. Root
// bypasses all permission checks and needs no role assignment.
func createRootAdmin(db *gorm.DB) error {
	var count int64
	db.Model(&models.Admin{}).Where("username = ?", "root").Count(&count)
	if count > 0 {
		return nil
	}

	password := os.Getenv("SEED_ROOT_PASSWORD")
	if password == "" {
		password = "Root@123"
	}

	admin := &models.Admin{
		Username: "root",
		Name:     "Quản trị gốc",
		IsRoot:   true,
		IsActive: true,
	}
	if err := admin.SetPassword(password); err != nil {
		return fmt.Errorf("hash root password: %v", err)
	}

	if err := db.Create(admin).Error; err != nil {
		return err
	}

	logger.GetLogger().Info("Root admin seeded - username: root")
	return nil
}
