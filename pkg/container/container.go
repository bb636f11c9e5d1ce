package container

import (
	"context"
	"fmt"
	"time"

	"virtualbiblio-backend/internal/config"
	infraCache "virtualbiblio-backend/internal/infrastructure/cache"
	"virtualbiblio-backend/internal/infrastructure/database"
	"virtualbiblio-backend/pkg/cache"
	"virtualbiblio-backend/pkg/jwt"
	"virtualbiblio-backend/pkg/logger"
	"virtualbiblio-backend/pkg/uow"

	adminHandler "virtualbiblio-backend/internal/domains/admin/handler"
	adminRepo "virtualbiblio-backend/internal/domains/admin/repository"
	adminService "virtualbiblio-backend/internal/domains/admin/service"
	"virtualbiblio-backend/internal/domains/author"
	authorHandler "virtualbiblio-backend/internal/domains/author/handler"
	authorService "virtualbiblio-backend/internal/domains/author/service"
	blogHandler "virtualbiblio-backend/internal/domains/blog/handler"
	blogRepo "virtualbiblio-backend/internal/domains/blog/repository"
	blogService "virtualbiblio-backend/internal/domains/blog/service"
	bookHandler "virtualbiblio-backend/internal/domains/book/handler"
	bookRepo "virtualbiblio-backend/internal/domains/book/repository"
	bookService "virtualbiblio-backend/internal/domains/book/service"
	donationHandler "virtualbiblio-backend/internal/domains/donation/handler"
	donationRepo "virtualbiblio-backend/internal/domains/donation/repository"
	donationService "virtualbiblio-backend/internal/domains/donation/service"
	userHandler "virtualbiblio-backend/internal/domains/user/handler"
	userRepo "virtualbiblio-backend/internal/domains/user/repository"
	userService "virtualbiblio-backend/internal/domains/user/service"
)

// Container wires the whole dependency graph: config, infrastructure,
// repositories, services and HTTP handlers, in that order.
type Container struct {
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	JWTManager *jwt.Manager

	AuthorService   author.Service
	BookService     bookService.Service
	BlogService     blogService.Service
	DonationService donationService.Service
	UserService     userService.Service
	AdminService    adminService.Service

	AuthorHandler   *authorHandler.AuthorHandler
	BookHandler     *bookHandler.BookHandler
	BlogHandler     *blogHandler.BlogHandler
	DonationHandler *donationHandler.DonationHandler
	UserHandler     *userHandler.UserHandler
	AdminHandler    *adminHandler.AdminHandler
}

func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	logger.Info("configuration loaded", map[string]interface{}{
		"environment": cfg.App.Environment,
	})

	db := database.NewPostgresDB(&cfg.Database)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)
	if rc, ok := redisCache.(*infraCache.RedisCache); ok {
		// A cache outage degrades reads, it does not block startup.
		if err := rc.Connect(context.Background()); err != nil {
			logger.Warn("redis connection failed, continuing without warm cache", err)
		}
	}
	c.Cache = redisCache

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.ExpiryDays)

	c.initServices()
	c.initHandlers()

	return c, nil
}

func (c *Container) initServices() {
	pool := c.DB.Pool

	c.AuthorService = authorService.NewAuthorService(func() author.UnitOfWork {
		return uow.New(pool)
	})
	c.BookService = bookService.NewBookService(bookRepo.NewPostgresRepository(pool, c.Cache))
	c.BlogService = blogService.NewBlogService(blogRepo.NewPostgresRepository(pool))
	c.DonationService = donationService.NewDonationService(donationRepo.NewPostgresRepository(pool))
	c.UserService = userService.NewUserService(userRepo.NewPostgresRepository(pool), c.JWTManager)
	c.AdminService = adminService.NewAdminService(adminRepo.NewPostgresRepository(pool), c.Cache)
}

func (c *Container) initHandlers() {
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService)
	c.BlogHandler = blogHandler.NewBlogHandler(c.BlogService)
	c.DonationHandler = donationHandler.NewDonationHandler(c.DonationService)
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.AdminHandler = adminHandler.NewAdminHandler(c.AdminService)
}

// Cleanup releases infrastructure resources during graceful shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}
	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			logger.Warn("failed to close redis connection", err)
		}
	}
}
