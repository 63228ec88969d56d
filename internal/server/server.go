// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"context"
	"log"
	"strconv"
	"strings"
	"time"

	_ "doorlist/docs" // swagger docs
	"doorlist/internal/config"
	"doorlist/internal/middleware"
	"doorlist/internal/models"
	"doorlist/internal/permissions"
	"doorlist/internal/repository"
	"doorlist/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/golang-jwt/jwt/v5"
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

	userRepo     repository.UserRepository
	eventRepo    repository.EventRepository
	typeRepo     repository.ListTypeRepository
	sectorRepo   repository.SectorRepository
	listRepo     repository.EventListRepository
	guestRepo    repository.GuestRepository
	activityRepo repository.ActivityLogRepository
	settingsRepo repository.SiteSettingRepository

	userService     *service.UserService
	eventService    *service.EventService
	catalogService  *service.CatalogService
	listService     *service.EventListService
	guestService    *service.GuestService
	activityService *service.ActivityService
	settingsService *service.SettingsService
	reportService   *service.ReportService
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// The bootstrap layer establishes DB/Redis and performs dev bootstrap and
// catalog seeding before handing them over; tests inject fakes directly.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Server, error) {
	server := &Server{
		config:         cfg,
		db:             db,
		redis:          redisClient,
		promMiddleware: middleware.InitMetrics("doorlist-api"),
		userRepo:       repository.NewUserRepository(db),
		eventRepo:      repository.NewEventRepository(db),
		typeRepo:       repository.NewListTypeRepository(db),
		sectorRepo:     repository.NewSectorRepository(db),
		listRepo:       repository.NewEventListRepository(db),
		guestRepo:      repository.NewGuestRepository(db),
		activityRepo:   repository.NewActivityLogRepository(db),
		settingsRepo:   repository.NewSiteSettingRepository(db),
	}

	server.userService = service.NewUserService(server.userRepo)
	server.eventService = service.NewEventService(server.eventRepo, server.activityRepo)
	server.catalogService = service.NewCatalogService(server.typeRepo, server.sectorRepo)
	server.listService = service.NewEventListService(
		server.listRepo, server.eventRepo, server.typeRepo, server.sectorRepo, server.activityRepo)
	server.settingsService = service.NewSettingsService(server.settingsRepo, server.activityRepo)
	server.guestService = service.NewGuestService(server.guestRepo, server.listRepo, server.settingsService)
	server.activityService = service.NewActivityService(server.activityRepo)
	server.reportService = service.NewReportService(server.guestRepo, server.eventRepo)

	return server, nil
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Context Middleware to propagate Request ID and User ID
	app.Use(middleware.ContextMiddleware())

	// Distributed tracing (no-op tracer when TRACING_ENABLED is false)
	if s.config.TracingEnabled {
		app.Use(middleware.TracingMiddleware())
	}

	// Prometheus Metrics
	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	// Security headers
	app.Use(helmet.New())

	// Structured Logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// CORS middleware should run before middlewares that can short-circuit (e.g. limiter)
	// so browser clients still receive CORS headers on error responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}))

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		// Never rate-limit preflight requests; they should be handled by CORS.
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	app.Get("/health", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}
	api.Get("/metrics/dashboard", monitor.New(monitor.Config{
		Title: "Doorlist Metrics Dashboard",
	}))

	// Swagger documentation
	api.Get("/swagger/*", swagger.HandlerDefault)

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/signup", middleware.RateLimit(
		s.redis, 3, 10*time.Minute, "signup"), s.Signup)
	auth.Post("/login", middleware.RateLimit(
		s.redis, 10, 5*time.Minute, "login"), s.Login)
	auth.Post("/refresh", s.Refresh)
	auth.Post("/logout", s.Logout)

	// Public routes: site settings subset and the anonymous submission form.
	api.Get("/settings/public", s.GetPublicSettings)
	api.Post("/public/guests", middleware.RateLimit(
		s.redis, 5, 10*time.Minute, "public_submission"), s.SubmitGuestsPublic)

	// Protected routes
	protected := api.Group("", s.AuthRequired())

	protected.Get("/me", s.GetMyProfile)

	// Event routes
	events := protected.Group("/events")
	events.Get("/", s.Require(func(p permissions.Capabilities) bool { return p.ViewEvents }), s.GetEvents)
	events.Post("/", s.Require(func(p permissions.Capabilities) bool { return p.ManageEvents }), s.CreateEvent)
	// Specific /:id/:resource routes BEFORE generic /:id route
	events.Get("/:id/lists", s.Require(func(p permissions.Capabilities) bool { return p.ViewLists }), s.GetEventLists)
	events.Get("/:id/guests", s.Require(func(p permissions.Capabilities) bool { return p.ViewGuests }), s.GetEventGuests)
	events.Get("/:id/activity", s.Require(func(p permissions.Capabilities) bool { return p.ViewLogs }), s.GetEventActivity)
	events.Get("/:id/report", s.Require(func(p permissions.Capabilities) bool { return p.ViewReports }), s.GetEventReport)
	events.Get("/:id/export", s.Require(func(p permissions.Capabilities) bool { return p.ExportReports }), s.ExportEventGuests)
	events.Get("/:id", s.Require(func(p permissions.Capabilities) bool { return p.ViewEvents }), s.GetEvent)
	events.Put("/:id", s.Require(func(p permissions.Capabilities) bool { return p.ManageEvents }), s.UpdateEvent)
	events.Delete("/:id", s.Require(func(p permissions.Capabilities) bool { return p.ManageEvents }), s.DeleteEvent)

	// List type routes
	listTypes := protected.Group("/list-types")
	listTypes.Get("/", s.Require(func(p permissions.Capabilities) bool { return p.ViewLists }), s.GetListTypes)
	listTypes.Post("/", s.Require(func(p permissions.Capabilities) bool { return p.ManageListTypes }), s.CreateListType)
	listTypes.Put("/:id", s.Require(func(p permissions.Capabilities) bool { return p.ManageListTypes }), s.UpdateListType)
	listTypes.Delete("/:id", s.Require(func(p permissions.Capabilities) bool { return p.ManageListTypes }), s.DeleteListType)

	// Sector routes
	sectors := protected.Group("/sectors")
	sectors.Get("/", s.Require(func(p permissions.Capabilities) bool { return p.ViewLists }), s.GetSectors)
	sectors.Post("/", s.Require(func(p permissions.Capabilities) bool { return p.ManageSectors }), s.CreateSector)
	sectors.Put("/:id", s.Require(func(p permissions.Capabilities) bool { return p.ManageSectors }), s.UpdateSector)
	sectors.Delete("/:id", s.Require(func(p permissions.Capabilities) bool { return p.ManageSectors }), s.DeleteSector)

	// Event list routes
	lists := protected.Group("/lists")
	lists.Get("/", s.Require(func(p permissions.Capabilities) bool { return p.ViewLists }), s.GetLists)
	lists.Post("/", s.Require(func(p permissions.Capabilities) bool { return p.ManageLists }), s.CreateList)
	lists.Get("/:id/guests", s.Require(func(p permissions.Capabilities) bool { return p.ViewGuests }), s.GetListGuests)
	lists.Get("/:id", s.Require(func(p permissions.Capabilities) bool { return p.ViewLists }), s.GetList)
	lists.Put("/:id", s.Require(func(p permissions.Capabilities) bool { return p.ManageLists }), s.UpdateList)
	lists.Delete("/:id", s.Require(func(p permissions.Capabilities) bool { return p.ManageLists }), s.DeleteList)

	// Guest routes
	guests := protected.Group("/guests")
	guests.Get("/", s.Require(func(p permissions.Capabilities) bool { return p.ViewGuests }), s.GetGuests)
	guests.Get("/grouped", s.Require(func(p permissions.Capabilities) bool { return p.ViewGuests }), s.GetGuestsGrouped)
	guests.Post("/", s.Require(func(p permissions.Capabilities) bool { return p.SubmitGuests }), s.SubmitGuests)
	guests.Post("/:id/checkin", s.Require(func(p permissions.Capabilities) bool { return p.CheckIn }), s.CheckInGuest)
	guests.Post("/:id/checkout", s.Require(func(p permissions.Capabilities) bool { return p.CheckIn }), s.CheckOutGuest)
	guests.Post("/:id/status", s.Require(func(p permissions.Capabilities) bool { return p.ApproveGuests }), s.SetGuestStatus)
	guests.Get("/:id", s.Require(func(p permissions.Capabilities) bool { return p.ViewGuests }), s.GetGuest)
	guests.Delete("/:id", s.Require(func(p permissions.Capabilities) bool { return p.DeleteGuests }), s.DeleteGuest)

	// Settings routes
	settings := protected.Group("/settings")
	settings.Get("/", s.Require(func(p permissions.Capabilities) bool { return p.ManageSettings }), s.GetSettings)
	settings.Put("/:key", s.Require(func(p permissions.Capabilities) bool { return p.ManageSettings }), s.UpdateSetting)

	// Admin routes
	admin := protected.Group("/admin")
	admin.Post("/users", s.Require(func(p permissions.Capabilities) bool { return p.ManageUsers }), s.CreateUser)
	admin.Get("/users", s.Require(func(p permissions.Capabilities) bool { return p.ViewUsers }), s.GetUsers)
	admin.Put("/users/:id/role", s.Require(func(p permissions.Capabilities) bool { return p.ManageUsers }), s.UpdateUserRole)
	admin.Delete("/users/:id", s.Require(func(p permissions.Capabilities) bool { return p.ManageUsers }), s.DeleteUser)
	admin.Get("/activity", s.Require(func(p permissions.Capabilities) bool { return p.ViewLogs }), s.GetActivity)
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	redisStatus := "healthy"
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	} else {
		// The app runs without Redis (no cache, no JTI revocation), so a
		// missing client degrades readiness but does not fail it.
		redisStatus = "unavailable"
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus == "unhealthy" {
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

// Require returns middleware that rejects users whose role lacks the picked
// capability with 403. Must be placed after AuthRequired so that userID is
// available in locals.
func (s *Server) Require(pick func(permissions.Capabilities) bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Locals("userID").(uint)

		user, err := s.userRepo.GetByID(c.Context(), userID)
		if err != nil {
			return models.RespondWithError(c, fiber.StatusInternalServerError, err)
		}
		if !pick(permissions.Resolve(user.Role)) {
			return models.RespondWithError(c, fiber.StatusForbidden,
				models.NewForbiddenError("You do not have permission to perform this action"))
		}

		return c.Next()
	}
}

// AuthRequired returns the authentication middleware
func (s *Server) AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		tokenString := ""
		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				tokenString = parts[1]
			}
		}

		if tokenString == "" {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Authorization required"))
		}

		// Parse and validate token
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
			// Validate signing method
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(s.config.JWTSecret), nil
		})

		if err != nil || !token.Valid {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid or expired token"))
		}

		// Extract claims
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid token claims"))
		}

		// Validate issuer and audience
		if issuer, issuerOk := claims["iss"].(string); !issuerOk || issuer != "doorlist-api" {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid token issuer"))
		}
		if audience, audienceOk := claims["aud"].(string); !audienceOk || audience != "doorlist-client" {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid token audience"))
		}

		// Extract user ID from subject claim
		sub, ok := claims["sub"].(string)
		if !ok {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid subject claim"))
		}

		userID, err := strconv.ParseUint(sub, 10, 32)
		if err != nil {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid user ID in token"))
		}

		// Check JTI for revocation
		if jti, exists := claims["jti"].(string); exists && jti != "" {
			if s.redis != nil {
				isBlacklisted, err := s.redis.Exists(c.Context(), "blacklist:"+jti).Result()
				if err == nil && isBlacklisted > 0 {
					return models.RespondWithError(c, fiber.StatusUnauthorized,
						models.NewUnauthorizedError("Token has been revoked"))
				}
			}
		}

		// Store user ID in context
		c.Locals("userID", uint(userID))
		// Sync to UserContext for logging and downstream services
		ctx := context.WithValue(c.UserContext(), middleware.UserIDKey, uint(userID))
		c.SetUserContext(ctx)

		return c.Next()
	}
}

// Start starts the server
func (s *Server) Start() error {
	app := fiber.New(fiber.Config{
		AppName: "Doorlist API",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		},
	})
	s.app = app

	s.SetupMiddleware(app)
	s.SetupRoutes(app)

	log.Printf("Server starting on port %s...", s.config.Port)
	return app.Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			log.Printf("error shutting down HTTP server: %v", err)
		}
	}

	if sqlDB, err := s.db.DB(); err == nil {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Printf("error closing sql DB: %v", cerr)
		}
	}

	if s.redis != nil {
		if rerr := s.redis.Close(); rerr != nil {
			log.Printf("error closing redis: %v", rerr)
		}
	}

	log.Println("Server shutdown complete")
	return nil
}
