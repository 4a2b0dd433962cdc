package router

import (
	"favliz/internal/handlers"
	"favliz/internal/middleware"
	"favliz/internal/models"
	"favliz/internal/services"
	"favliz/pkg/response"

	"github.com/gin-gonic/gin"
)

// SetupRouter builds the gin engine with middleware and routes.
func SetupRouter() *gin.Engine {
	router := gin.New()

	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.SetupCORS())

	registerRoutes(router)
	return router
}

// registerRoutes wires every admin surface behind the permission gate.
// Only login/logout bypass it.
func registerRoutes(router *gin.Engine) {

	guard := middleware.NewSessionMiddleware()

	api := router.Group("/api/v1")
	{
		api.GET("/health", healthCheck)

		// Auth boundary: the only ungated routes.
		authHandler := handlers.NewAuthHandler(services.NewAdminService())
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/logout", authHandler.Logout)
			authGroup.GET("/me", guard.RequireSession(), authHandler.Me)
		}

		// Admin accounts
		adminHandler := handlers.NewAdminHandler(services.NewAdminService())
		admins := api.Group("/admins", guard.RequireSession())
		{
			admins.GET("", guard.RequirePermission(models.ResourceAdmins, models.ActionRead), adminHandler.GetAll)
			admins.POST("", guard.RequirePermission(models.ResourceAdmins, models.ActionWrite), adminHandler.Create)
			admins.PUT("/:id/toggle", guard.RequirePermission(models.ResourceAdmins, models.ActionWrite), adminHandler.ToggleActive)
			admins.DELETE("/:id", guard.RequirePermission(models.ResourceAdmins, models.ActionDelete), adminHandler.Delete)
		}

		// Roles and the fixed permission catalog
		roleHandler := handlers.NewRoleHandler(services.NewRoleService())
		roles := api.Group("/roles", guard.RequireSession())
		{
			roles.GET("", guard.RequirePermission(models.ResourceRoles, models.ActionRead), roleHandler.GetAll)
			roles.GET("/:id", guard.RequirePermission(models.ResourceRoles, models.ActionRead), roleHandler.GetByID)
			roles.POST("", guard.RequirePermission(models.ResourceRoles, models.ActionWrite), roleHandler.Create)
			roles.PUT("/:id/permissions", guard.RequirePermission(models.ResourceRoles, models.ActionWrite), roleHandler.UpdatePermissions)
			roles.DELETE("/:id", guard.RequirePermission(models.ResourceRoles, models.ActionDelete), roleHandler.Delete)
		}

		permissionHandler := handlers.NewPermissionHandler(services.NewPermissionService())
		api.GET("/permissions", guard.RequireSession(), guard.RequirePermission(models.ResourceRoles, models.ActionRead), permissionHandler.GetAll)

		// Domain resources, from the admin's viewpoint
		userHandler := handlers.NewUserHandler(services.NewUserService())
		users := api.Group("/users", guard.RequireSession())
		{
			users.GET("", guard.RequirePermission(models.ResourceUsers, models.ActionRead), userHandler.GetAll)
			users.PUT("/:id/toggle", guard.RequirePermission(models.ResourceUsers, models.ActionWrite), userHandler.ToggleActive)
			users.DELETE("/:id", guard.RequirePermission(models.ResourceUsers, models.ActionDelete), userHandler.Delete)
		}

		itemHandler := handlers.NewItemHandler(services.NewItemService())
		items := api.Group("/items", guard.RequireSession())
		{
			items.GET("", guard.RequirePermission(models.ResourceItems, models.ActionRead), itemHandler.GetAll)
			items.DELETE("/:id", guard.RequirePermission(models.ResourceItems, models.ActionDelete), itemHandler.Delete)
		}

		listHandler := handlers.NewListHandler(services.NewListService())
		lists := api.Group("/lists", guard.RequireSession())
		{
			lists.GET("", guard.RequirePermission(models.ResourceLists, models.ActionRead), listHandler.GetAll)
			lists.DELETE("/:id", guard.RequirePermission(models.ResourceLists, models.ActionDelete), listHandler.Delete)
		}

		tagHandler := handlers.NewTagHandler(services.NewTagService())
		tags := api.Group("/tags", guard.RequireSession())
		{
			tags.GET("", guard.RequirePermission(models.ResourceTags, models.ActionRead), tagHandler.GetAll)
			tags.DELETE("/:id", guard.RequirePermission(models.ResourceTags, models.ActionDelete), tagHandler.Delete)
		}

		// Dashboard needs a valid session but no specific capability.
		dashboardHandler := handlers.NewDashboardHandler(services.NewDashboardService())
		api.GET("/dashboard/stats", guard.RequireSession(), dashboardHandler.GetStats)
	}
}

func healthCheck(c *gin.Context) {
	response.Success(c, gin.H{"status": "ok"})
}
