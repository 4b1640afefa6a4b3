// Package server contains the HTTP handlers and route wiring for the API.
package server

import (
	"context"
	"fmt"
	"time"

	"quill/internal/cache"
	"quill/internal/config"
	"quill/internal/database"
	"quill/internal/middleware"
	"quill/internal/observability"
	"quill/internal/repository"
	"quill/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	app            *fiber.App
	promMiddleware *fiberprometheus.FiberPrometheus

	userRepo    repository.UserRepository
	groupRepo   repository.GroupRepository
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
	socialRepo  repository.SocialRepository

	userService    *service.UserService
	postService    *service.PostService
	commentService *service.CommentService
	socialService  *service.SocialService
	feedService    *service.FeedService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)

	return NewServerWithDeps(cfg, db, cache.GetClient())
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Tests use this with an in-memory database and miniredis.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Server, error) {
	userRepo := repository.NewUserRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	socialRepo := repository.NewSocialRepository(db)

	s := &Server{
		config:         cfg,
		db:             db,
		redis:          redisClient,
		promMiddleware: observability.InitMetrics("quill-api"),
		userRepo:       userRepo,
		groupRepo:      groupRepo,
		postRepo:       postRepo,
		commentRepo:    commentRepo,
		socialRepo:     socialRepo,
	}
	s.userService = service.NewUserService(userRepo)
	s.postService = service.NewPostService(postRepo, groupRepo, commentRepo)
	s.commentService = service.NewCommentService(commentRepo, postRepo)
	s.socialService = service.NewSocialService(socialRepo, userRepo, postRepo)
	s.feedService = service.NewFeedService(postRepo, groupRepo, userRepo, socialRepo, cfg)

	middleware.InitMiddleware(cfg)

	return s, nil
}

// App builds (once) and returns the Fiber application with all routes.
func (s *Server) App() *fiber.App {
	if s.app != nil {
		return s.app
	}

	app := fiber.New(fiber.Config{
		AppName: "Quill API",
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: s.config.AllowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.RequestContext())
	app.Use(middleware.RequestLogger())

	s.promMiddleware.RegisterAt(app, "/metrics")
	app.Use(s.promMiddleware.Middleware)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Credential endpoints get a tight per-IP limit, everything else is open.
	authLimiter := limiter.New(limiter.Config{
		Max:        100,
		Expiration: time.Minute,
	})

	// Auth
	api.Post("/signup", authLimiter, s.Signup)
	api.Post("/login", authLimiter, s.Login)

	// Feeds: readable anonymously, liked flags appear with a token.
	api.Get("/posts", middleware.OptionalAuth, s.GlobalFeed)
	api.Get("/posts/:id", middleware.OptionalAuth, s.GetPost)
	api.Get("/groups", s.GroupDirectory)
	api.Get("/groups/:slug", middleware.OptionalAuth, s.GroupFeed)
	api.Get("/authors", s.AuthorDirectory)
	api.Get("/profiles/:username", middleware.OptionalAuth, s.ProfileFeed)
	api.Get("/feed", middleware.AuthRequired, s.FollowingFeed)

	// Content mutations
	api.Post("/posts", middleware.AuthRequired, s.CreatePost)
	api.Put("/posts/:id", middleware.AuthRequired, s.EditPost)
	api.Delete("/posts/:id", middleware.AuthRequired, s.DeletePost)
	api.Post("/posts/:id/comments", middleware.AuthRequired, s.AddComment)
	api.Delete("/comments/:id", middleware.AuthRequired, s.DeleteComment)
	api.Post("/images", middleware.AuthRequired, s.UploadImage)

	// Social graph
	api.Post("/posts/:id/like", middleware.AuthRequired, s.ToggleLike)
	api.Post("/profiles/:username/follow", middleware.AuthRequired, s.Follow)
	api.Delete("/profiles/:username/follow", middleware.AuthRequired, s.Unfollow)

	// Profile mutations
	api.Put("/profiles/:username", middleware.AuthRequired, s.UpdateProfile)
	api.Put("/profiles/:username/status", middleware.AuthRequired, s.UpdateStatus)

	s.app = app
	return app
}

// Listen starts serving on the configured port.
func (s *Server) Listen() error {
	return s.App().Listen(":" + s.config.Port)
}

// Shutdown stops the Fiber app and closes outbound connections.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			return err
		}
	}
	cache.Close()
	if sqlDB, err := s.db.DB(); err == nil {
		return sqlDB.Close()
	}
	return nil
}
