package admin

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func MapControllers(app *fiber.App, baseURL string, db *gorm.DB) {
	v := &maintenanceControllers{db: db}

	admin := app.Group(baseURL)
	{
		admin.Post("/cleanup", v.triggerDatabaseCleanup)
	}
}
