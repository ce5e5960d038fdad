// Package server contains the HTTP surface of the application: route
// registration, request handlers and dependency wiring.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/paulmayer-fullstacker/underworld-wizards/internal/cache"
	"github.com/paulmayer-fullstacker/underworld-wizards/internal/config"
	"github.com/paulmayer-fullstacker/underworld-wizards/internal/database"
	"github.com/paulmayer-fullstacker/underworld-wizards/internal/middleware"
	"github.com/paulmayer-fullstacker/underworld-wizards/internal/repository"
	"github.com/paulmayer-fullstacker/underworld-wizards/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds every dependency the handlers need. Nothing here is global;
// tests construct a Server around stub repositories via NewServerWithDeps.
type Server struct {
	config *config.Config
	db     *gorm.DB
	redis  *redis.Client

	userRepo     repository.UserRepository
	postRepo     repository.PostRepository
	commentRepo  repository.CommentRepository
	categoryRepo repository.CategoryRepository
	graphRepo    repository.GraphRepository

	postService    *service.PostService
	commentService *service.CommentService
	userService    *service.UserService
	graphService   *service.GraphService
	feedService    *service.FeedService
}

// NewServer connects to Postgres and Redis and wires the full dependency
// graph. Redis being down is survivable; Postgres being down is not.
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg, middleware.Logger)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	redisClient := cache.InitRedis(cfg.RedisURL)
	if redisClient == nil {
		middleware.Logger.Warn("Redis unavailable, running without cache")
	}

	middleware.InitMiddleware(cfg)

	return NewServerWithDeps(cfg, db, redisClient,
		repository.NewUserRepository(db),
		repository.NewPostRepository(db),
		repository.NewCommentRepository(db),
		repository.NewCategoryRepository(db),
		repository.NewGraphRepository(db),
	), nil
}

// NewServerWithDeps wires services around externally supplied repositories.
func NewServerWithDeps(
	cfg *config.Config,
	db *gorm.DB,
	redisClient *redis.Client,
	userRepo repository.UserRepository,
	postRepo repository.PostRepository,
	commentRepo repository.CommentRepository,
	categoryRepo repository.CategoryRepository,
	graphRepo repository.GraphRepository,
) *Server {
	s := &Server{
		config:       cfg,
		db:           db,
		redis:        redisClient,
		userRepo:     userRepo,
		postRepo:     postRepo,
		commentRepo:  commentRepo,
		categoryRepo: categoryRepo,
		graphRepo:    graphRepo,
	}

	s.postService = service.NewPostService(postRepo, categoryRepo)
	s.commentService = service.NewCommentService(commentRepo, postRepo)
	s.userService = service.NewUserService(userRepo, graphRepo)
	s.graphService = service.NewGraphService(graphRepo, userRepo, postRepo)
	s.feedService = service.NewFeedService(
		graphRepo, postRepo, commentRepo, userRepo, categoryRepo,
		cfg.FeedTimeout(),
	)

	return s
}

// SetupMiddleware configures the global middleware chain for the Fiber app.
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Propagate request ID and user ID into the request context
	app.Use(middleware.ContextMiddleware())

	// Structured logging (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	app.Use(cors.New(cors.Config{
		AllowOrigins: "http://localhost:5173,http://localhost:3000",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		MaxAge:       86400,
	}))
}

// SetupRoutes registers all routes for the application.
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	app.Get("/health", s.HealthCheck)

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/signup", s.Signup)
	auth.Post("/login", s.Login)

	// Public post routes
	posts := api.Group("/posts")
	posts.Get("/", s.GetPosts)
	posts.Get("/search", s.SearchPosts)
	posts.Get("/:id/comments", s.GetComments)
	posts.Get("/:id", s.GetPost)

	// Public category routes
	api.Get("/categories", s.GetCategories)

	// Public user routes
	users := api.Group("/users")
	users.Get("/:id/posts", s.GetUserPosts)
	users.Get("/:id", s.GetUserProfile)

	// Protected routes
	protected := api.Group("", middleware.AuthRequired)

	protected.Get("/feed", s.GetFeed)

	follows := protected.Group("/follows")
	follows.Post("/", s.FollowUser)
	follows.Delete("/:followedId", s.UnfollowUser)

	likes := protected.Group("/likes")
	likes.Post("/", s.LikePost)
	likes.Delete("/:postId", s.UnlikePost)

	protectedPosts := protected.Group("/posts")
	protectedPosts.Post("/", s.CreatePost)
	protectedPosts.Post("/:id/comments", s.CreateComment)
	protectedPosts.Put("/:id", s.UpdatePost)
	protectedPosts.Delete("/:id", s.DeletePost)

	protected.Delete("/comments/:id", s.DeleteComment)

	protected.Post("/categories", s.CreateCategory)
}

// HealthCheck reports process liveness plus dependency status.
func (s *Server) HealthCheck(c *fiber.Ctx) error {
	status := fiber.Map{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	}

	if s.db != nil {
		sqlDB, err := s.db.DB()
		if err != nil || sqlDB.PingContext(c.Context()) != nil {
			status["status"] = "degraded"
			status["database"] = "down"
		} else {
			status["database"] = "up"
		}
	}

	if s.redis != nil {
		if err := s.redis.Ping(c.Context()).Err(); err != nil {
			status["redis"] = "down"
		} else {
			status["redis"] = "up"
		}
	} else {
		status["redis"] = "disabled"
	}

	return c.JSON(status)
}

// Shutdown closes database and Redis connections.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			middleware.Logger.Warn("Redis close failed", slog.String("error", err.Error()))
		}
	}

	if s.db != nil {
		sqlDB, err := s.db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}
