package server

import (
	"flag"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"innomatrics.com/go-api/pkg/shared/helper"
)

func setupMiddlewares(app *fiber.App) {
	var loggger = flag.Bool("logger", false, "Whether log service is required or not")

	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))

	app.Use(cors.New(cors.Config{
		AllowHeaders:     "Origin, Accept, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization,X-Requested-With",
		AllowMethods:     "POST,GET,PUT,OPTIONS,DELETE",
		ExposeHeaders:    "Origin",
		AllowCredentials: true,
		MaxAge:           10,
		AllowOriginsFunc: AllowOrigins,
	}))

	app.Use(etag.New(etag.Config{
		Weak: true,
	}))

	if *loggger {
		file, err := os.OpenFile("./log/debug.log", os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			log.Fatalf("error opening file: %v", err)
		}
		defer file.Close()
		app.Use(logger.New(logger.Config{
			Output:     file,
			Format:     "${pid} ${status} - ${method} ${path}\n",
			TimeFormat: "02-Jan-2006",
			TimeZone:   "Asia/Kolkata",
		}))
	}

	app.Use(recover.New())
}

func Create() *fiber.App {
	var (
		appname = flag.String("appname", os.Getenv("APP_NAME"), "Application Name")
		prod    = flag.Bool("prod", false, "Enable prefork in Production")
	)
	app := fiber.New(fiber.Config{
		AppName:      *appname,
		Prefork:      *prod,
		ErrorHandler: CustomErrorHandler,
	})
	setupMiddlewares(app)
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Welcome to Innomatrics Console")
	})
	app.Get("/server-dashboard", monitor.New())
	return app
}

func AllowOrigins(origin string) bool {
	return true
}

func Listen(app *fiber.App) error {
	var url = flag.String("port", os.Getenv("SERVER_LISTEN_URL"), "Port to listen on")
	var ssl_cert_file = os.Getenv("SSL_CERT_FILE")
	var ssl_key_file = os.Getenv("SSL_KEY_FILE")
	// 404 Handler
	app.Use(func(c *fiber.Ctx) error {
		return c.SendStatus(404)
	})
	if ssl_cert_file != "" {
		return app.ListenTLS(*url, ssl_cert_file, ssl_key_file)
	}
	return app.Listen(*url)
}

// Override default error handler
func CustomErrorHandler(ctx *fiber.Ctx, err error) error {
	if e, ok := err.(*helper.Error); ok {
		return ctx.Status(e.Status).JSON(e)
	} else if e, ok := err.(*fiber.Error); ok {
		return ctx.Status(e.Code).JSON(helper.Error{Status: e.Code, Code: "internal-server", Message: e.Message})
	} else {
		return ctx.Status(500).JSON(helper.Error{Status: 500, Code: "internal-server", Message: err.Error()})
	}
}
