package api

import (
	"git.solsynth.dev/hypernet/blogly/pkg/internal/http/exts"
	"git.solsynth.dev/hypernet/blogly/pkg/internal/models"
	"git.solsynth.dev/hypernet/blogly/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

type postForm struct {
	Title   string `form:"title" validate:"required"`
	Content string `form:"content" validate:"required"`
	Tags    []uint `form:"tags"`
}

type tagChoice struct {
	models.Tag
	Checked bool
}

func listTagChoices(tx *gorm.DB, selected []models.Tag) ([]tagChoice, error) {
	tags, err := services.ListTags(tx)
	if err != nil {
		return nil, err
	}
	return lo.Map(tags, func(tag models.Tag, _ int) tagChoice {
		return tagChoice{
			Tag:     tag,
			Checked: lo.ContainsBy(selected, func(item models.Tag) bool {
				return item.ID == tag.ID
			}),
		}
	}), nil
}

func (v *Controllers) getPost(c *fiber.Ctx) error {
	id, err := paramsID(c, "postId")
	if err != nil {
		return err
	}

	item, err := services.GetPost(v.tx(c), id)
	if err != nil {
		return lookupError(err)
	}

	return v.render(c, "posts/show", fiber.Map{
		"Title": item.Title,
		"Post":  item,
	})
}

func (v *Controllers) newPostForm(c *fiber.Ctx) error {
	id, err := paramsID(c, "userId")
	if err != nil {
		return err
	}

	user, err := services.GetUser(v.tx(c), id)
	if err != nil {
		return lookupError(err)
	}

	choices, err := listTagChoices(v.tx(c), nil)
	if err != nil {
		return err
	}

	return v.render(c, "posts/new", fiber.Map{
		"Title": "Add a post",
		"User":  user,
		"Tags":  choices,
	})
}

func (v *Controllers) createPost(c *fiber.Ctx) error {
	id, err := paramsID(c, "userId")
	if err != nil {
		return err
	}

	user, err := services.GetUser(v.tx(c), id)
	if err != nil {
		return lookupError(err)
	}

	var data postForm
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	if _, err := services.NewPost(v.tx(c), user, data.Title, data.Content, data.Tags); err != nil {
		return err
	}

	exts.SetFlash(c, exts.FlashSuccess, "New Post Added!")
	return redirectTo(c, "/users/%d", user.ID)
}

func (v *Controllers) editPostForm(c *fiber.Ctx) error {
	id, err := paramsID(c, "postId")
	if err != nil {
		return err
	}

	item, err := services.GetPost(v.tx(c), id)
	if err != nil {
		return lookupError(err)
	}

	choices, err := listTagChoices(v.tx(c), item.Tags)
	if err != nil {
		return err
	}

	return v.render(c, "posts/edit", fiber.Map{
		"Title": "Edit a post",
		"Post":  item,
		"Tags":  choices,
	})
}

func (v *Controllers) editPost(c *fiber.Ctx) error {
	id, err := paramsID(c, "postId")
	if err != nil {
		return err
	}

	item, err := services.GetPost(v.tx(c), id)
	if err != nil {
		return lookupError(err)
	}

	var data postForm
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	if _, err := services.EditPost(v.tx(c), item, data.Title, data.Content, data.Tags); err != nil {
		return err
	}

	exts.SetFlash(c, exts.FlashSuccess, "Post Updated!")
	return redirectTo(c, "/users/%d", item.UserID)
}

func (v *Controllers) deletePost(c *fiber.Ctx) error {
	id, err := paramsID(c, "postId")
	if err != nil {
		return err
	}

	item, err := services.GetPost(v.tx(c), id)
	if err != nil {
		return lookupError(err)
	}

	if err := services.DeletePost(v.tx(c), item); err != nil {
		return err
	}

	exts.SetFlash(c, exts.FlashSuccess, "Post Deleted!")
	return redirectTo(c, "/users/%d", item.UserID)
}
