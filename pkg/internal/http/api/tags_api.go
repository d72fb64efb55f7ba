package api

import (
	"git.solsynth.dev/hypernet/blogly/pkg/internal/http/exts"
	"git.solsynth.dev/hypernet/blogly/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

type tagForm struct {
	Name string `form:"tagname" validate:"required"`
}

func (v *Controllers) listTag(c *fiber.Ctx) error {
	tags, err := services.ListTags(v.tx(c))
	if err != nil {
		return err
	}

	return v.render(c, "tags/index", fiber.Map{
		"Title": "Tags",
		"Tags":  tags,
	})
}

func (v *Controllers) getTag(c *fiber.Ctx) error {
	id, err := paramsID(c, "tagId")
	if err != nil {
		return err
	}

	tag, err := services.GetTagWithPosts(v.tx(c), id)
	if err != nil {
		return lookupError(err)
	}

	return v.render(c, "tags/show", fiber.Map{
		"Title": tag.Name,
		"Tag":   tag,
	})
}

func (v *Controllers) newTagForm(c *fiber.Ctx) error {
	return v.render(c, "tags/new", fiber.Map{
		"Title": "Create a tag",
	})
}

func (v *Controllers) createTag(c *fiber.Ctx) error {
	var data tagForm
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	if _, err := services.NewTag(v.tx(c), data.Name); err != nil {
		return err
	}

	exts.SetFlash(c, exts.FlashSuccess, "New Tag Created!")
	return redirectTo(c, "/tags")
}

func (v *Controllers) editTagForm(c *fiber.Ctx) error {
	id, err := paramsID(c, "tagId")
	if err != nil {
		return err
	}

	tag, err := services.GetTag(v.tx(c), id)
	if err != nil {
		return lookupError(err)
	}

	return v.render(c, "tags/edit", fiber.Map{
		"Title": "Edit a tag",
		"Tag":   tag,
	})
}

func (v *Controllers) editTag(c *fiber.Ctx) error {
	id, err := paramsID(c, "tagId")
	if err != nil {
		return err
	}

	tag, err := services.GetTag(v.tx(c), id)
	if err != nil {
		return lookupError(err)
	}

	var data tagForm
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	if _, err := services.EditTag(v.tx(c), tag, data.Name); err != nil {
		return err
	}

	exts.SetFlash(c, exts.FlashSuccess, "Tag Updated!")
	return redirectTo(c, "/tags")
}

func (v *Controllers) deleteTag(c *fiber.Ctx) error {
	id, err := paramsID(c, "tagId")
	if err != nil {
		return err
	}

	tag, err := services.GetTag(v.tx(c), id)
	if err != nil {
		return lookupError(err)
	}

	if err := services.DeleteTag(v.tx(c), tag); err != nil {
		return err
	}

	exts.SetFlash(c, exts.FlashSuccess, "Tag Deleted!")
	return redirectTo(c, "/tags")
}
