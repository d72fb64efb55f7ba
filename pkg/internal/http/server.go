package http

import (
	"errors"
	"time"

	"git.solsynth.dev/hypernet/blogly/pkg/internal/http/admin"
	"git.solsynth.dev/hypernet/blogly/pkg/internal/http/api"
	"git.solsynth.dev/hypernet/blogly/pkg/views"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/gofiber/template/html/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type App struct {
	app *fiber.App
}

func NewServer(db *gorm.DB, printRoutes ...bool) *App {
	engine := html.NewFileSystem(views.FS(), ".html")

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		EnableIPValidation:    true,
		ServerHeader:          "Hypernet.Blogly",
		AppName:               "Hypernet.Blogly",
		Views:                 engine,
		ViewsLayout:           "layouts/main",
		ErrorHandler:          errorHandler,
		EnablePrintRoutes:     len(printRoutes) > 0 && printRoutes[0],
	})

	app.Use(recover.New())
	app.Use(requestLogger)

	api.MapControllers(app, db)
	admin.MapControllers(app, "/admin", db)

	return &App{app}
}

// Handler exposes the underlying fiber app, mainly for app.Test in tests.
func (v *App) Handler() *fiber.App {
	return v.app
}

func (v *App) Listen(bind string) {
	if err := v.app.Listen(bind); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when starting server...")
	}
}

func (v *App) Shutdown() error {
	return v.app.ShutdownWithTimeout(5 * time.Second)
}

func requestLogger(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()

	status := c.Response().StatusCode()
	var fe *fiber.Error
	if errors.As(err, &fe) {
		status = fe.Code
	} else if err != nil {
		status = fiber.StatusInternalServerError
	}

	log.Debug().
		Str("method", c.Method()).
		Str("path", c.Path()).
		Int("status", status).
		Dur("elapsed", time.Since(start)).
		Msg("Handled request.")

	return err
}

// errorHandler answers framework errors with their status code and anything
// else with a 500.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	} else if errors.Is(err, gorm.ErrDuplicatedKey) {
		log.Warn().Err(err).Str("path", c.Path()).Msg("A unique constraint was violated...")
	} else {
		log.Error().Err(err).Str("path", c.Path()).Msg("An error occurred when handling request...")
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.Status(code).SendString(utils.StatusMessage(code))
}
