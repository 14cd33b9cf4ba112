package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"github.com/gofiber/fiber/v3/middleware/static"

	authrouter "friends_cafe/internal/api/auth/router"
	basehdl "friends_cafe/internal/api/base/handler"
	menurouter "friends_cafe/internal/api/menu/router"
	orderrouter "friends_cafe/internal/api/order/router"
	ratingrouter "friends_cafe/internal/api/rating/router"
	apirouter "friends_cafe/internal/api/router"
	shoprouter "friends_cafe/internal/api/shop/router"
	"friends_cafe/internal/global"
	"friends_cafe/internal/logger"
	"friends_cafe/internal/media"
	"friends_cafe/internal/notification"
)

// InitFiberApp khởi tạo ứng dụng Fiber với các middleware cần thiết
func InitFiberApp() *fiber.App {
	log := logger.GetAppLogger()
	cfg := global.ServerConfig

	app := fiber.New(fiber.Config{
		AppName:      "Friends Cafe API",
		ServerHeader: "Friends Cafe API",

		BodyLimit:    10 * 1024 * 1024, // Max size của request body (10MB), đủ cho ảnh món ăn
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,

		ErrorHandler: func(c fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			message := "Server error"
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
				message = e.Message
			}

			logger.GetErrorLogger().WithFields(map[string]interface{}{
				"code":   code,
				"path":   c.Path(),
				"method": c.Method(),
			}).WithError(err).Error("Request error")

			return c.Status(code).JSON(fiber.Map{"message": message})
		},
	})

	// 1. Request ID Middleware - Tạo ID duy nhất cho mỗi request để trace
	app.Use(requestid.New(requestid.Config{
		Header: "X-Request-ID",
		Generator: func() string {
			return fmt.Sprintf("%d", time.Now().UnixNano())
		},
	}))

	// 2. CORS Middleware - đặt trước các middleware khác để xử lý preflight requests
	corsOrigins := cfg.CORS_Origins
	var allowOrigins []string
	if corsOrigins == "*" {
		allowOrigins = []string{"*"}
	} else {
		allowOrigins = strings.Split(corsOrigins, ",")
		for i, origin := range allowOrigins {
			allowOrigins[i] = strings.TrimSpace(origin)
		}
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins: allowOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
			"X-Request-ID",
			"X-Requested-With",
		},
		AllowCredentials: cfg.CORS_AllowCredentials,
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		MaxAge:           24 * 60 * 60,
	}))

	// 3. Rate Limiting Middleware - giới hạn số request theo IP
	if cfg.RateLimit_Enabled && cfg.RateLimit_Max > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        cfg.RateLimit_Max,
			Expiration: time.Duration(cfg.RateLimit_Window) * time.Second,
			KeyGenerator: func(c fiber.Ctx) string {
				return c.IP()
			},
			LimitReached: func(c fiber.Ctx) error {
				return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
					"message": "Too many requests, please try again later",
				})
			},
			Next: func(c fiber.Ctx) bool {
				// Bỏ qua rate limit cho health check và preflight requests
				return c.Path() == "/health" || c.Method() == "OPTIONS"
			},
		}))
		log.Infof("Rate limiting enabled: %d requests per %d seconds", cfg.RateLimit_Max, cfg.RateLimit_Window)
	} else {
		log.Info("Rate limiting disabled")
	}

	// 4. Recover Middleware
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c fiber.Ctx, e interface{}) {
			logger.GetErrorLogger().WithFields(map[string]interface{}{
				"panic": e,
				"path":  c.Path(),
			}).Error("Panic recovered")

			c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Server error",
				"error":   fmt.Sprintf("%v", e),
			})
		},
		Next: func(c fiber.Ctx) bool {
			return c.Path() == "/health"
		},
	}))

	// 5. Static files - serve ảnh món ăn đã upload
	storage, err := media.NewLocalStorage(cfg.UploadsDir)
	if err != nil {
		log.Fatalf("Failed to initialize uploads storage: %v", err)
	}
	app.Use("/Uploads", static.New(storage.Dir()))

	// Health check
	systemHandler := basehdl.NewSystemHandler()
	app.Get("/health", systemHandler.HandleHealth)

	// Khởi tạo routes của các domain
	notifier := notification.NewWhatsAppSender(cfg)
	err = apirouter.SetupRoutes(app,
		authrouter.Register,
		menurouter.Register(storage),
		orderrouter.Register(notifier),
		ratingrouter.Register,
		shoprouter.Register,
	)
	if err != nil {
		log.Fatalf("Failed to setup routes: %v", err)
	}

	return app
}
