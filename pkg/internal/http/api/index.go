package api

import (
	"errors"
	"fmt"

	"git.solsynth.dev/hypernet/blogly/pkg/internal/http/exts"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Controllers struct {
	db *gorm.DB
}

func MapControllers(app *fiber.App, db *gorm.DB) {
	v := &Controllers{db: db}

	app.Get("/", v.getHome)

	users := app.Group("/users")
	{
		users.Get("/", v.listUser)
		users.Get("/new", v.newUserForm)
		users.Post("/new", v.createUser)
		users.Get("/:userId<int>", v.getUser)
		users.Get("/:userId<int>/edit", v.editUserForm)
		users.Post("/:userId<int>/edit", v.editUser)
		users.Post("/:userId<int>/delete", v.deleteUser)
		users.Get("/:userId<int>/posts/new", v.newPostForm)
		users.Post("/:userId<int>/posts/new", v.createPost)
	}

	posts := app.Group("/posts")
	{
		posts.Get("/:postId<int>", v.getPost)
		posts.Get("/:postId<int>/edit", v.editPostForm)
		posts.Post("/:postId<int>/edit", v.editPost)
		posts.Post("/:postId<int>/delete", v.deletePost)
	}

	tags := app.Group("/tags")
	{
		tags.Get("/", v.listTag)
		tags.Get("/new", v.newTagForm)
		tags.Post("/new", v.createTag)
		tags.Get("/:tagId<int>", v.getTag)
		tags.Get("/:tagId<int>/edit", v.editTagForm)
		tags.Post("/:tagId<int>/edit", v.editTag)
		tags.Post("/:tagId<int>/delete", v.deleteTag)
	}
}

// tx binds the storage client to the lifetime of the request.
func (v *Controllers) tx(c *fiber.Ctx) *gorm.DB {
	return v.db.WithContext(c.UserContext())
}

func (v *Controllers) render(c *fiber.Ctx, name string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	data["Flash"] = exts.ConsumeFlash(c)
	return c.Render(name, data)
}

func paramsID(c *fiber.Ctx, key string) (uint, error) {
	id, err := c.ParamsInt(key, 0)
	if err != nil || id <= 0 {
		return 0, fiber.ErrNotFound
	}
	return uint(id), nil
}

// lookupError turns a failed primary key lookup into a 404.
func lookupError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.ErrNotFound
	}
	return err
}

func redirectTo(c *fiber.Ctx, format string, args ...any) error {
	return c.Redirect(fmt.Sprintf(format, args...), fiber.StatusFound)
}
