package api

import (
	"git.solsynth.dev/hypernet/blogly/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (v *Controllers) getHome(c *fiber.Ctx) error {
	posts, err := services.ListRecentPosts(v.tx(c), services.RecentPostsLimit)
	if err != nil {
		return err
	}

	return v.render(c, "home", fiber.Map{
		"Title": "Blogly",
		"Posts": posts,
	})
}
