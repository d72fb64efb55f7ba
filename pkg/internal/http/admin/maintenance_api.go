package admin

import (
	"fmt"

	"git.solsynth.dev/hypernet/blogly/pkg/internal/http/exts"
	"git.solsynth.dev/hypernet/blogly/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type maintenanceControllers struct {
	db *gorm.DB
}

func (v *maintenanceControllers) triggerDatabaseCleanup(c *fiber.Ctx) error {
	count, err := services.DoAutoDatabaseCleanup(v.db.WithContext(c.UserContext()))
	if err != nil {
		return err
	}

	exts.SetFlash(c, exts.FlashSuccess, fmt.Sprintf("Removed %d orphaned post tags.", count))
	return c.Redirect("/", fiber.StatusFound)
}
