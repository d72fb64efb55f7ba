package exts

import (
	"encoding/base64"
	"time"

	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
)

const (
	FlashCookieName = "blogly_flash"
	FlashSuccess    = "success"
)

type Flash struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

// SetFlash attaches a message that is shown on the next rendered page only.
func SetFlash(c *fiber.Ctx, category, message string) {
	raw, err := jsoniter.Marshal(Flash{Category: category, Message: message})
	if err != nil {
		return
	}
	c.Cookie(&fiber.Cookie{
		Name:     FlashCookieName,
		Value:    base64.RawURLEncoding.EncodeToString(raw),
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// ConsumeFlash returns the pending message, if any, and expires it.
func ConsumeFlash(c *fiber.Ctx) *Flash {
	value := c.Cookies(FlashCookieName)
	if len(value) == 0 {
		return nil
	}

	c.Cookie(&fiber.Cookie{
		Name:     FlashCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	raw, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return nil
	}
	var flash Flash
	if err := jsoniter.Unmarshal(raw, &flash); err != nil || len(flash.Message) == 0 {
		return nil
	}
	return &flash
}
