package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"virtualbiblio-backend/internal/shared/middleware"
	"virtualbiblio-backend/internal/shared/response"
	"virtualbiblio-backend/pkg/container"
)

// SetupRouter registers every route group: the public catalog, the
// authenticated account area and the admin surface.
func SetupRouter(c *container.Container) *gin.Engine {
	if c.Config.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Recovery(),
		middleware.CORS(),
	)

	router.GET("/health", func(ctx *gin.Context) {
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			response.ErrorResponse(ctx, http.StatusServiceUnavailable, "DB_DOWN", err.Error())
			return
		}
		response.Success(ctx, http.StatusOK, gin.H{
			"status":  "ok",
			"version": c.Config.App.Version,
		})
	})

	api := router.Group("/api")

	auth := middleware.AuthMiddleware(c.JWTManager)
	admin := middleware.AdminMiddleware()

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", c.UserHandler.Register)
		authGroup.POST("/login", c.UserHandler.Login)
		authGroup.GET("/me", auth, c.UserHandler.Me)
		authGroup.PUT("/profile", auth, c.UserHandler.UpdateProfile)
		authGroup.PUT("/avatar", auth, c.UserHandler.UpdateAvatar)
		authGroup.PUT("/role", auth, admin, c.UserHandler.UpdateUserRole)
		authGroup.PUT("/password", auth, c.UserHandler.ChangePassword)
		authGroup.DELETE("/account", auth, c.UserHandler.DeleteAccount)
	}

	authors := api.Group("/authors")
	{
		authors.GET("", c.AuthorHandler.Search)
		authors.GET("/:id", c.AuthorHandler.GetByID)
		authors.POST("", auth, admin, c.AuthorHandler.Create)
		authors.PUT("/:id", auth, admin, c.AuthorHandler.Update)
		authors.DELETE("/:id", auth, admin, c.AuthorHandler.Deactivate)
	}

	books := api.Group("/books")
	{
		books.GET("", c.BookHandler.List)
		books.GET("/categories", c.BookHandler.Categories)
		books.GET("/formats", c.BookHandler.Formats)
		books.GET("/languages", c.BookHandler.Languages)
		books.GET("/sku/:sku", c.BookHandler.GetBySKU)
		books.GET("/:id", c.BookHandler.GetByID)
		books.POST("", auth, admin, c.BookHandler.Create)
		books.POST("/bulk", auth, admin, c.BookHandler.BulkCreate)
		books.PUT("/:id", auth, admin, c.BookHandler.Update)
		books.DELETE("/:id", auth, admin, c.BookHandler.Delete)
	}

	blog := api.Group("/blog")
	{
		blog.GET("", c.BlogHandler.List)
		blog.GET("/categories", c.BlogHandler.Categories)
		blog.GET("/:id", c.BlogHandler.GetByID)
		blog.POST("", auth, admin, c.BlogHandler.Create)
		blog.PUT("/:id", auth, admin, c.BlogHandler.Update)
		blog.DELETE("/:id", auth, admin, c.BlogHandler.Delete)
	}

	donation := api.Group("/donation")
	{
		donation.POST("", c.DonationHandler.Create)
		donation.GET("", auth, admin, c.DonationHandler.List)
		donation.GET("/stats", auth, admin, c.DonationHandler.Stats)
		donation.GET("/:id", auth, admin, c.DonationHandler.GetByID)
		donation.PUT("/:id/status", auth, admin, c.DonationHandler.UpdateStatus)
	}

	adminGroup := api.Group("/admin", auth, admin)
	{
		adminGroup.GET("/dashboard", c.AdminHandler.Dashboard)
		adminGroup.GET("/users", c.UserHandler.List)
		adminGroup.PUT("/users/:id/role", c.UserHandler.UpdateRole)
	}

	return router
}
