package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/campushq/backoffice/internal/app/controllers"
	"github.com/campushq/backoffice/internal/app/models"
	"github.com/campushq/backoffice/internal/app/models/dto"
	"github.com/campushq/backoffice/internal/middleware"
)

// Page paths used for permission lookups. Each route group is guarded by
// the permission row of its page.
const (
	PageNotifications  = "/notifications"
	PageGallery        = "/gallery"
	PageBanners        = "/banners"
	PageImportantLinks = "/important-links"
	PageFaculty        = "/faculty"
	PagePermissions    = "/permissions"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	notificationController *controllers.NotificationController,
	galleryController *controllers.GalleryController,
	bannerController *controllers.BannerController,
	linkController *controllers.LinkController,
	facultyController *controllers.FacultyController,
	permissionController *controllers.PermissionController,
	authMiddleware *middleware.AuthMiddleware,
	permissionMiddleware *middleware.PermissionMiddleware,
) {
	v1 := router.Group("/api/v1")

	// Public routes
	v1.POST("/login", authController.Login)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.NewSuccessResponse(gin.H{"status": "ok"}))
	})

	// Everything below requires a valid token
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	notifications := authenticated.Group("/notifications")
	{
		notifications.GET("/all-notification",
			permissionMiddleware.RequirePermission(PageNotifications, models.ActionRead),
			notificationController.GetAllNotifications)
		notifications.POST("/add-notification",
			permissionMiddleware.RequirePermission(PageNotifications, models.ActionCreate),
			notificationController.AddNotification)
		notifications.PUT("/edit/:id",
			permissionMiddleware.RequirePermission(PageNotifications, models.ActionUpdate),
			notificationController.EditNotification)
		notifications.DELETE("/delete/:id",
			permissionMiddleware.RequirePermission(PageNotifications, models.ActionDelete),
			notificationController.DeleteNotification)
	}

	gallery := authenticated.Group("/gallery")
	{
		gallery.GET("",
			permissionMiddleware.RequirePermission(PageGallery, models.ActionRead),
			galleryController.GetAllGalleryItems)
		gallery.POST("/upload",
			permissionMiddleware.RequirePermission(PageGallery, models.ActionCreate),
			galleryController.UploadGalleryItem)
		gallery.PUT("/update/:id",
			permissionMiddleware.RequirePermission(PageGallery, models.ActionUpdate),
			galleryController.UpdateGalleryItem)
		gallery.DELETE("/delete/:id",
			permissionMiddleware.RequirePermission(PageGallery, models.ActionDelete),
			galleryController.DeleteGalleryItem)
		gallery.PUT("/toggle-visibility/:id",
			permissionMiddleware.RequirePermission(PageGallery, models.ActionUpdate),
			galleryController.ToggleGalleryItemVisibility)
	}

	banners := authenticated.Group("/banners")
	{
		banners.GET("",
			permissionMiddleware.RequirePermission(PageBanners, models.ActionRead),
			bannerController.GetAllBanners)
		banners.POST("/upload",
			permissionMiddleware.RequirePermission(PageBanners, models.ActionCreate),
			bannerController.UploadBanner)
		banners.PUT("/update/:id",
			permissionMiddleware.RequirePermission(PageBanners, models.ActionUpdate),
			bannerController.UpdateBanner)
		banners.DELETE("/delete/:id",
			permissionMiddleware.RequirePermission(PageBanners, models.ActionDelete),
			bannerController.DeleteBanner)
		banners.PUT("/toggle-visibility/:id",
			permissionMiddleware.RequirePermission(PageBanners, models.ActionUpdate),
			bannerController.ToggleBannerVisibility)
	}

	links := authenticated.Group("/important-links")
	{
		links.GET("/all",
			permissionMiddleware.RequirePermission(PageImportantLinks, models.ActionRead),
			linkController.GetAllLinks)
		links.POST("/upload",
			permissionMiddleware.RequirePermission(PageImportantLinks, models.ActionCreate),
			linkController.UploadLink)
		links.PUT("/update/:id",
			permissionMiddleware.RequirePermission(PageImportantLinks, models.ActionUpdate),
			linkController.UpdateLink)
		links.DELETE("/delete/:id",
			permissionMiddleware.RequirePermission(PageImportantLinks, models.ActionDelete),
			linkController.DeleteLink)
		links.PUT("/toggle-visibility/:id",
			permissionMiddleware.RequirePermission(PageImportantLinks, models.ActionUpdate),
			linkController.ToggleLinkVisibility)
	}

	faculty := authenticated.Group("/faculty")
	{
		faculty.GET("",
			permissionMiddleware.RequirePermission(PageFaculty, models.ActionRead),
			facultyController.GetAllFaculty)
		faculty.POST("/add",
			permissionMiddleware.RequirePermission(PageFaculty, models.ActionCreate),
			facultyController.AddFaculty)
		faculty.PUT("/update/:id",
			permissionMiddleware.RequirePermission(PageFaculty, models.ActionUpdate),
			facultyController.UpdateFaculty)
		faculty.DELETE("/delete/:id",
			permissionMiddleware.RequirePermission(PageFaculty, models.ActionDelete),
			facultyController.DeleteFaculty)
		faculty.PUT("/toggle-visibility/:id",
			permissionMiddleware.RequirePermission(PageFaculty, models.ActionUpdate),
			facultyController.ToggleFacultyVisibility)
		faculty.PUT("/:id/update-document-title",
			permissionMiddleware.RequirePermission(PageFaculty, models.ActionUpdate),
			facultyController.UpdateDocumentTitle)
	}

	permissions := authenticated.Group("")
	{
		permissions.GET("/permissions",
			permissionMiddleware.RequirePermission(PagePermissions, models.ActionRead),
			permissionController.GetAllPermissions)
		permissions.POST("/permissions",
			permissionMiddleware.RequirePermission(PagePermissions, models.ActionCreate),
			permissionController.UpsertPermission)
		permissions.PUT("/permissions/:id",
			permissionMiddleware.RequirePermission(PagePermissions, models.ActionUpdate),
			permissionController.UpdatePermission)
		permissions.GET("/roles",
			permissionMiddleware.RequirePermission(PagePermissions, models.ActionRead),
			permissionController.GetAllRoles)
		permissions.GET("/pages",
			permissionMiddleware.RequirePermission(PagePermissions, models.ActionRead),
			permissionController.GetAllPages)
	}
}
