package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"kriyatec.com/medicare-api/pkg/shared/helper"
)

type Config struct {
	AppName     string
	Description string
	// Prefork enables fiber prefork in production
	Prefork bool
	// Dashboard mounts the monitor page on /server-dashboard
	Dashboard bool
	// BodyLimit in bytes, fiber default when zero
	BodyLimit int
}

func setupMiddlewares(app *fiber.App) {
	// Provide a custom compression level
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed, // 1
	}))

	app.Use(cors.New(cors.Config{
		AllowHeaders:     "Origin, Accept, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, X-Requested-With",
		AllowMethods:     "POST,GET,PUT,PATCH,OPTIONS,DELETE",
		ExposeHeaders:    "Origin, Content-Disposition, X-Request-ID",
		AllowCredentials: true,
		MaxAge:           10,
		AllowOriginsFunc: AllowOrigins,
	}))

	//ETag middleware lets caches skip unchanged responses
	app.Use(etag.New(etag.Config{
		Weak: true,
	}))

	app.Use(requestid.New())
	app.Use(helper.RequestLogger())

	//Recover middleware hands panics to the centralized ErrorHandler
	app.Use(recover.New())
}

func Create(cfg Config) *fiber.App {
	fc := fiber.Config{
		AppName:      cfg.AppName,
		Prefork:      cfg.Prefork,
		ErrorHandler: CustomErrorHandler,
	}
	if cfg.BodyLimit > 0 {
		fc.BodyLimit = cfg.BodyLimit
	}
	app := fiber.New(fc)
	setupMiddlewares(app)
	desc := cfg.Description
	if desc == "" {
		desc = "Welcome to " + cfg.AppName
	}
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(desc)
	})
	if cfg.Dashboard {
		app.Get("/server-dashboard", monitor.New(monitor.Config{Title: cfg.AppName}))
	}
	return app
}

func AllowOrigins(origin string) bool {
	return true
}

// Listen mounts the 404 handler and serves, over TLS when SSL_CERT_FILE is set.
func Listen(app *fiber.App, addr string) error {
	sslCertFile := helper.GetenvStr("SSL_CERT_FILE", "")
	sslKeyFile := helper.GetenvStr("SSL_KEY_FILE", "")
	app.Use(NotFound)
	if sslCertFile != "" {
		return app.ListenTLS(addr, sslCertFile, sslKeyFile)
	}
	return app.Listen(addr)
}

// 404 Handler
func NotFound(c *fiber.Ctx) error {
	return helper.EntityNotFound("Route not found: " + c.Method() + " " + c.Path())
}

// Override default error handler
func CustomErrorHandler(ctx *fiber.Ctx, err error) error {
	if e, ok := err.(*helper.Error); ok {
		if e.Status == 0 {
			e.Status = helper.StatusForCode(e.Code)
		}
		return ctx.Status(e.Status).JSON(e)
	} else if e, ok := err.(*fiber.Error); ok {
		return ctx.Status(e.Code).JSON(helper.Error{Status: e.Code, Code: "HTTP_ERROR", Message: e.Message})
	}
	return ctx.Status(fiber.StatusInternalServerError).JSON(helper.Error{Status: fiber.StatusInternalServerError, Code: helper.CodeInternal, Message: err.Error()})
}
