// Package router provides HTTP routing, middleware configuration, and server setup for the web application
package router

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"log"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/compress"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/helmet"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"

	"github.com/prospectra/lead-console/app/dto"
	"github.com/prospectra/lead-console/app/handlers"
	"github.com/prospectra/lead-console/app/middleware"
	"github.com/prospectra/lead-console/utils"
)

// Router interface for HTTP routing
type Router interface {
	SetupRoutes()
	Start(address string) error
	GetApp() *fiber.App
}

// Handlers bundles every HTTP handler the router mounts
type Handlers struct {
	Auth       handlers.AuthHandlerInterface
	Audience   handlers.AudienceHandlerInterface
	Allocation handlers.AllocationHandlerInterface
	Campaign   handlers.CampaignHandlerInterface
	Contact    handlers.ContactHandlerInterface
	Company    handlers.CompanyHandlerInterface
	MasterData handlers.MasterDataHandlerInterface
	Dashboard  handlers.DashboardHandlerInterface
	User       handlers.UserHandlerInterface
}

// Options carries environment-dependent router settings
type Options struct {
	AllowedOrigins []string
	EnableMetrics  bool
}

// FiberRouter implements Router using Fiber v3
type FiberRouter struct {
	app      *fiber.App
	handlers Handlers
	auth     *middleware.AuthMiddleware
	opts     Options
}

// NewFiberRouter creates a new Fiber router
func NewFiberRouter(h Handlers, auth *middleware.AuthMiddleware, opts Options) Router {
	app := fiber.New(fiber.Config{
		AppName:      "Lead Console API",
		ServerHeader: "lead-console",
		ErrorHandler: errorHandler,
		BodyLimit:    16 * 1024 * 1024, // xlsx uploads
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
	})

	return &FiberRouter{
		app:      app,
		handlers: h,
		auth:     auth,
		opts:     opts,
	}
}

// SetupRoutes configures all application routes
func (r *FiberRouter) SetupRoutes() {
	r.setupMiddleware()

	if r.opts.EnableMetrics {
		metricsHandler := fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
		r.app.Get("/metrics", func(c fiber.Ctx) error {
			metricsHandler(c.RequestCtx())
			return nil
		})
	}

	api := r.app.Group("/api/v1")

	// Health check route (no rate limiting)
	api.Get("/health", r.healthCheck)

	api.Use(limiter.New(limiter.Config{
		Max:        2000,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.APIResponse{
				Success: false,
				Message: "Too many requests. Please try again later.",
				Error: dto.ErrorDetail{
					Code: "RATE_LIMIT_EXCEEDED",
				},
			})
		},
		Next: func(c fiber.Ctx) bool {
			return c.Path() == "/api/v1/health"
		},
	}))

	// Auth routes with stricter rate limiting
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:        20,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.APIResponse{
				Success: false,
				Message: "Too many requests. Please try again later.",
				Error: dto.ErrorDetail{
					Code: "RATE_LIMIT_EXCEEDED",
				},
			})
		},
	}))

	auth.Post("/login", r.handlers.Auth.Login)
	auth.Post("/refresh", r.handlers.Auth.Refresh)

	// Everything below requires a valid access token
	protected := api.Group("", r.auth.Authenticate())

	audience := protected.Group("/audience")
	audience.Post("/search", r.handlers.Audience.Search)
	audience.Post("/preview", r.handlers.Audience.Preview)
	audience.Post("/build", r.handlers.Audience.Build)
	audience.Get("/runs", r.handlers.Audience.ListRuns)
	audience.Get("/runs/:id", r.handlers.Audience.GetRun)
	audience.Patch("/runs/:id", r.handlers.Audience.UpdateRun)
	audience.Delete("/runs/:id", r.handlers.Audience.DeleteRun)
	audience.Get("/runs/:id/results", r.handlers.Audience.GetRunResults)
	audience.Get("/runs/:id/allocations", r.handlers.Allocation.ListAllocations)

	protected.Post("/allocations", r.handlers.Allocation.Allocate)

	campaigns := protected.Group("/campaigns")
	campaigns.Post("", r.handlers.Campaign.Create)
	campaigns.Get("", r.handlers.Campaign.List)
	campaigns.Get("/:id", r.handlers.Campaign.Get)
	campaigns.Patch("/:id", r.handlers.Campaign.Update)
	campaigns.Delete("/:id", r.handlers.Campaign.Delete)
	campaigns.Get("/:id/files", r.handlers.Allocation.ListFiles)

	contacts := protected.Group("/contacts")
	contacts.Post("", r.handlers.Contact.Create)
	contacts.Get("", r.handlers.Contact.List)
	contacts.Post("/bulk-upload", r.handlers.Contact.BulkUpload)
	contacts.Get("/bulk-upload/template", r.handlers.Contact.DownloadTemplate)
	contacts.Get("/export", r.handlers.Contact.Export)
	contacts.Get("/:id", r.handlers.Contact.Get)
	contacts.Patch("/:id", r.handlers.Contact.Update)
	contacts.Delete("/:id", r.handlers.Contact.Delete)

	companies := protected.Group("/companies")
	companies.Post("", r.handlers.Company.Create)
	companies.Get("", r.handlers.Company.List)
	companies.Get("/:id", r.handlers.Company.Get)
	companies.Patch("/:id", r.handlers.Company.Update)
	companies.Delete("/:id", r.handlers.Company.Delete)

	masterData := protected.Group("/master-data")
	masterData.Get("", r.handlers.MasterData.GetAll)
	masterData.Post("/cities", r.handlers.MasterData.CreateCity)
	masterData.Post("/industries", r.handlers.MasterData.CreateIndustry)
	masterData.Post("/departments", r.handlers.MasterData.CreateDepartment)
	masterData.Post("/job-levels", r.handlers.MasterData.CreateJobLevel)
	masterData.Post("/employee-ranges", r.handlers.MasterData.CreateEmployeeRange)
	masterData.Post("/turnover-ranges", r.handlers.MasterData.CreateTurnoverRange)
	masterData.Delete("/:table/:id", r.handlers.MasterData.Delete)

	users := protected.Group("/users")
	users.Get("", r.handlers.User.List)
	users.Post("", r.handlers.User.Create)
	users.Patch("/:id", r.handlers.User.Update)
	users.Delete("/:id", r.handlers.User.Delete)

	protected.Get("/dashboard", r.handlers.Dashboard.GetDashboard)

	// Not found handler
	r.app.Use(r.notFoundHandler)
}

// setupMiddleware configures global middleware
func (r *FiberRouter) setupMiddleware() {
	// Request ID middleware - must be first
	r.app.Use(requestid.New(requestid.Config{
		Header: "X-Request-ID",
		Generator: func() string {
			return generateRequestID()
		},
	}))

	// Security headers middleware
	r.app.Use(helmet.New(helmet.Config{
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "DENY",
		HSTSMaxAge:            31536000,
		HSTSExcludeSubdomains: false,
		ContentSecurityPolicy: "default-src 'self'; frame-ancestors 'none';",
		ReferrerPolicy:        "strict-origin-when-cross-origin",
		XDNSPrefetchControl:   "off",
		XDownloadOptions:      "noopen",
		XPermittedCrossDomain: "none",
	}))

	// CORS middleware
	r.app.Use(cors.New(cors.Config{
		AllowOrigins: r.opts.AllowedOrigins,
		AllowMethods: []string{
			"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
			"Authorization",
			"X-Requested-With",
			"X-Request-ID",
			"Cache-Control",
		},
		ExposeHeaders: []string{
			"X-Request-ID",
			"Content-Disposition",
		},
		AllowCredentials: true,
		MaxAge:           utils.CORSMaxAge,
	}))

	// Compression middleware
	r.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
		Next: func(c fiber.Ctx) bool {
			// xlsx responses are already deflate-compressed
			contentType := c.Get("Content-Type")
			return contentType == "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		},
	}))

	// Structured request logging
	r.app.Use(logger.New(logger.Config{
		Format:     `{"time":"${time}","pid":"${pid}","request_id":"${locals:requestid}","level":"info","method":"${method}","path":"${path}","protocol":"${protocol}","ip":"${ip}","user_agent":"${ua}","status":${status},"latency":"${latency}","bytes_in":${bytesReceived},"bytes_out":${bytesSent},"referer":"${referer}"}` + "\n",
		TimeFormat: time.RFC3339,
		TimeZone:   "UTC",
		Next: func(c fiber.Ctx) bool {
			return c.Path() == "/api/v1/health" || c.Path() == "/metrics"
		},
	}))

	if r.opts.EnableMetrics {
		r.app.Use(middleware.Metrics())
	}

	// Recovery middleware with custom error handling
	r.app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c fiber.Ctx, e interface{}) {
			log.Printf(`{"time":"%s","level":"error","request_id":"%s","event":"panic","error":"%v","path":"%s","method":"%s","ip":"%s"}`,
				utils.UTCNow().Format(time.RFC3339),
				c.Locals("requestid"),
				e,
				c.Path(),
				c.Method(),
				c.IP(),
			)
		},
	}))
}

// Start starts the HTTP server
func (r *FiberRouter) Start(address string) error {
	log.Printf("Starting server on %s", address)
	return r.app.Listen(address)
}

// GetApp returns the Fiber app instance
func (r *FiberRouter) GetApp() *fiber.App {
	return r.app
}

// Health check endpoint
func (r *FiberRouter) healthCheck(c fiber.Ctx) error {
	return c.JSON(dto.APIResponse{
		Success: true,
		Message: "Service is healthy",
		Data: fiber.Map{
			"status":    "ok",
			"timestamp": utils.UTCNow().Unix(),
			"version":   "1.0.0",
			"service":   "lead-console-api",
		},
	})
}

// Not found handler
func (r *FiberRouter) notFoundHandler(c fiber.Ctx) error {
	requestID := c.Locals("requestid")

	return c.Status(fiber.StatusNotFound).JSON(dto.APIResponse{
		Success: false,
		Message: "The requested resource was not found",
		Error: dto.ErrorDetail{
			Code: "NOT_FOUND",
			Details: fiber.Map{
				"path":       c.Path(),
				"method":     c.Method(),
				"request_id": requestID,
			},
		},
	})
}

// Global error handler
func errorHandler(c fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	log.Printf("Error %d: %v", code, err)

	requestID := c.Locals("requestid")

	return c.Status(code).JSON(dto.APIResponse{
		Success: false,
		Message: "An internal server error occurred",
		Error: dto.ErrorDetail{
			Code: "INTERNAL_ERROR",
			Details: fiber.Map{
				"timestamp":  utils.UTCNow().Unix(),
				"request_id": requestID,
			},
		},
	})
}

// generateRequestID creates a unique request ID
func generateRequestID() string {
	bytes := make([]byte, 8)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}
