// Package server contains the HTTP handlers and routing for the API.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	_ "tastebuds/docs" // swagger docs
	"tastebuds/internal/admin"
	"tastebuds/internal/cache"
	"tastebuds/internal/config"
	"tastebuds/internal/database"
	"tastebuds/internal/featureflags"
	"tastebuds/internal/middleware"
	"tastebuds/internal/models"
	"tastebuds/internal/observability"
	"tastebuds/internal/repository"
	"tastebuds/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	cache          *cache.Store
	app            *fiber.App
	promMiddleware *fiberprometheus.FiberPrometheus
	featureFlags   *featureflags.Manager
	admin          *admin.Registry

	userService         *service.UserService
	ingredientService   *service.IngredientService
	cocktailService     *service.CocktailService
	dishService         *service.DishService
	favoriteService     *service.FavoriteService
	pairingService      *service.PairingService
	postService         *service.PostService
	commentService      *service.CommentService
	chatService         *service.ChatService
	notificationService *service.NotificationService
	followService       *service.FollowService
}

// NewServer connects to the database and Redis described by cfg and builds a
// Server on top of them.
func NewServer(ctx context.Context, cfg *config.Config) (*Server, error) {
	db, err := database.Connect(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	return NewServerWithDeps(cfg, db, cache.NewClient(ctx, cfg.RedisURL))
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// redisClient may be nil, in which case reads are never cached.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Server, error) {
	if cfg == nil || db == nil {
		return nil, errors.New("server requires a config and a database")
	}
	store := cache.NewStore(redisClient)

	userRepo := repository.NewUserRepository(db)
	ingredientRepo := repository.NewIngredientRepository(db)
	cocktailRepo := repository.NewCocktailRepository(db, store)
	dishRepo := repository.NewDishRepository(db, store)
	favoriteRepo := repository.NewFavoriteRepository(db)
	pairingRepo := repository.NewPairingRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	chatRepo := repository.NewChatRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	followRepo := repository.NewFollowRepository(db)

	return &Server{
		config:         cfg,
		db:             db,
		redis:          redisClient,
		cache:          store,
		promMiddleware: middleware.InitMetrics("tastebuds-api"),
		featureFlags:   featureflags.NewManager(cfg.FeatureFlags),
		admin:          admin.NewRegistry(db, store),

		userService:         service.NewUserService(userRepo, cocktailRepo, dishRepo),
		ingredientService:   service.NewIngredientService(ingredientRepo),
		cocktailService:     service.NewCocktailService(cocktailRepo, userRepo),
		dishService:         service.NewDishService(dishRepo, userRepo),
		favoriteService:     service.NewFavoriteService(favoriteRepo, userRepo, cocktailRepo, dishRepo),
		pairingService:      service.NewPairingService(pairingRepo, userRepo, cocktailRepo, dishRepo),
		postService:         service.NewPostService(postRepo, commentRepo, userRepo),
		commentService:      service.NewCommentService(commentRepo, postRepo, userRepo),
		chatService:         service.NewChatService(chatRepo, messageRepo, userRepo),
		notificationService: service.NewNotificationService(notificationRepo, userRepo),
		followService:       service.NewFollowService(followRepo, userRepo),
	}, nil
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	app.Use(recover.New())
	app.Use(requestid.New())

	if s.config.TracingEnabled {
		app.Use(middleware.TracingMiddleware())
	}
	// Propagates request and correlation ids into the user context.
	app.Use(middleware.ContextMiddleware())

	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	app.Use(helmet.New())
	app.Use(middleware.StructuredLogger())

	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "*"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:  origins,
		AllowMethods:  "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:  "Origin, Content-Type, Accept, " + middleware.AdminKeyHeader + ", " + middleware.CorrelationHeader,
		ExposeHeaders: middleware.CorrelationHeader + ", X-Trace-ID",
		MaxAge:        86400,
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)

	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	api := app.Group("/api")
	api.Get("/metrics/dashboard", monitor.New(monitor.Config{
		Title: "Tastebuds Metrics Dashboard",
	}))
	api.Get("/swagger/*", swagger.HandlerDefault)

	users := api.Group("/users")
	users.Get("/", s.ListUsers)
	users.Post("/", s.CreateUser)
	// Specific /:id/:resource routes before the generic /:id routes.
	users.Get("/:id/favorites", s.ListUserFavorites)
	users.Get("/:id/pairings", s.ListUserPairings)
	users.Get("/:id/followers", s.ListFollowers)
	users.Get("/:id/following", s.ListFollowing)
	users.Get("/:id", s.GetUser)
	users.Put("/:id", s.UpdateUser)
	users.Delete("/:id", s.DeleteUser)

	ingredients := api.Group("/ingredients")
	ingredients.Get("/", s.ListIngredients)
	ingredients.Post("/", s.CreateIngredient)
	ingredients.Get("/:id", s.GetIngredient)
	ingredients.Put("/:id", s.UpdateIngredient)
	ingredients.Delete("/:id", s.DeleteIngredient)

	cocktails := api.Group("/cocktails")
	cocktails.Get("/", s.ListCocktails)
	cocktails.Post("/", s.CreateCocktail)
	cocktails.Get("/:id", s.GetCocktail)
	cocktails.Put("/:id", s.UpdateCocktail)
	cocktails.Delete("/:id", s.DeleteCocktail)

	dishes := api.Group("/dishes")
	dishes.Get("/", s.ListDishes)
	dishes.Post("/", s.CreateDish)
	dishes.Get("/:id", s.GetDish)
	dishes.Put("/:id", s.UpdateDish)
	dishes.Delete("/:id", s.DeleteDish)

	favorites := api.Group("/favorites")
	favorites.Get("/", s.ListFavorites)
	favorites.Post("/", s.CreateFavorite)
	favorites.Get("/:id", s.GetFavorite)
	favorites.Put("/:id", s.UpdateFavorite)
	favorites.Delete("/:id", s.DeleteFavorite)

	pairings := api.Group("/pairings")
	pairings.Get("/", s.ListPairings)
	pairings.Post("/", s.CreatePairing)
	pairings.Get("/:id", s.GetPairing)
	pairings.Put("/:id", s.UpdatePairing)
	pairings.Delete("/:id", s.DeletePairing)

	posts := api.Group("/posts")
	posts.Get("/", s.ListPosts)
	posts.Post("/", s.CreatePost)
	posts.Get("/:id/comments", s.ListPostComments)
	posts.Get("/:id", s.GetPost)
	posts.Put("/:id", s.UpdatePost)
	posts.Delete("/:id", s.DeletePost)

	comments := api.Group("/comments")
	comments.Get("/", s.ListComments)
	comments.Post("/", s.CreateComment)
	comments.Get("/:id", s.GetComment)
	comments.Put("/:id", s.UpdateComment)
	comments.Delete("/:id", s.DeleteComment)

	chats := api.Group("/chats")
	chats.Get("/", s.ListChats)
	chats.Post("/", s.CreateChat)
	chats.Get("/:id/participants", s.ListParticipants)
	chats.Post("/:id/participants", s.AddParticipant)
	chats.Delete("/:id/participants/:userId", s.RemoveParticipant)
	chats.Get("/:id/messages", s.ListMessages)
	chats.Post("/:id/messages", s.SendMessage)
	chats.Get("/:id", s.GetChat)
	chats.Put("/:id", s.UpdateChat)
	chats.Delete("/:id", s.DeleteChat)

	api.Delete("/messages/:id", s.DeleteMessage)

	notifications := api.Group("/notifications")
	notifications.Get("/", s.ListNotifications)
	notifications.Post("/", s.CreateNotification)
	notifications.Get("/:id", s.GetNotification)
	notifications.Put("/:id", s.UpdateNotification)
	notifications.Delete("/:id", s.DeleteNotification)

	follows := api.Group("/follows")
	follows.Get("/", s.ListFollows)
	follows.Post("/", s.Follow)
	follows.Delete("/:followerId/:followedId", s.Unfollow)

	if s.featureFlags.Reachable(featureflags.LegacyRoutes) {
		s.setupLegacyRoutes(api, middleware.FeatureGate(s.featureFlags, featureflags.LegacyRoutes))
	}

	if s.featureFlags.Enabled(featureflags.AdminConsole) && s.config.AdminSecretKey != "" {
		adminGroup := app.Group("/admin", middleware.AdminKeyRequired(s.config.AdminSecretKey))
		adminGroup.Get("/feature-flags", s.GetFeatureFlags)
		adminGroup.Get("/tables", s.AdminListTables)
		adminGroup.Get("/tables/:table", s.AdminListRows)
		adminGroup.Post("/tables/:table", s.AdminCreateRow)
		adminGroup.Get("/tables/:table/:key", s.AdminGetRow)
		adminGroup.Put("/tables/:table/:key", s.AdminUpdateRow)
		adminGroup.Delete("/tables/:table/:key", s.AdminDeleteRow)
	}
}

// LivenessCheck answers as long as the process is serving.
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck reports whether the database, and Redis when configured, answer.
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	redisStatus := "disabled"
	if s.cache.Enabled() {
		redisStatus = "healthy"
		if err := s.cache.Ping(ctx); err != nil {
			redisStatus = "unhealthy"
		}
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus != "healthy" || redisStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overallStatus,
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// App builds the Fiber application with middleware and routes installed.
func (s *Server) App() *fiber.App {
	if s.app != nil {
		return s.app
	}
	app := fiber.New(fiber.Config{
		AppName:      "Tastebuds API",
		ErrorHandler: s.errorHandler,
	})
	s.SetupMiddleware(app)
	s.SetupRoutes(app)
	s.app = app
	return app
}

// errorHandler turns errors that escape a handler, recovered panics included,
// into the standard JSON error body.
func (s *Server) errorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
		return c.Status(fe.Code).JSON(models.ErrorResponse{Error: fe.Message, Code: codeForStatus(fe.Code)})
	}
	observability.Logger.ErrorContext(c.UserContext(), "unhandled request error",
		slog.String("method", c.Method()),
		slog.String("path", c.Path()),
		slog.String("error", err.Error()))
	return models.RespondWithError(c, fiber.StatusInternalServerError, models.NewInternalError(err))
}

func codeForStatus(status int) string {
	switch status {
	case fiber.StatusNotFound, fiber.StatusMethodNotAllowed:
		return models.CodeNotFound
	case fiber.StatusUnauthorized:
		return models.CodeUnauthorized
	case fiber.StatusConflict:
		return models.CodeConflict
	default:
		return models.CodeValidation
	}
}

// Start starts the server
func (s *Server) Start() error {
	app := s.App()
	observability.Logger.Info("Server starting", slog.String("port", s.config.Port))
	return app.Listen(":" + s.config.Port)
}

// Shutdown drains in-flight requests, then closes the database and Redis.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			observability.Logger.Error("error shutting down HTTP server", slog.String("error", err.Error()))
		}
	}

	if err := database.Close(s.db); err != nil {
		observability.Logger.Error("error closing database", slog.String("error", err.Error()))
	}

	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			observability.Logger.Error("error closing redis", slog.String("error", err.Error()))
		}
	}

	observability.Logger.Info("Server shutdown complete")
	return nil
}
