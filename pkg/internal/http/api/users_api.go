package api

import (
	"git.solsynth.dev/hypernet/blogly/pkg/internal/http/exts"
	"git.solsynth.dev/hypernet/blogly/pkg/internal/models"
	"git.solsynth.dev/hypernet/blogly/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

type userForm struct {
	FirstName string `form:"first_name" validate:"required"`
	LastName  string `form:"last_name" validate:"required"`
	ImageURL  string `form:"image_url"`
}

func (v *Controllers) listUser(c *fiber.Ctx) error {
	users, err := services.ListUsers(v.tx(c))
	if err != nil {
		return err
	}

	return v.render(c, "users/index", fiber.Map{
		"Title": "Users",
		"Users": users,
	})
}

func (v *Controllers) getUser(c *fiber.Ctx) error {
	id, err := paramsID(c, "userId")
	if err != nil {
		return err
	}

	user, err := services.GetUserWithPosts(v.tx(c), id)
	if err != nil {
		return lookupError(err)
	}

	return v.render(c, "users/show", fiber.Map{
		"Title": user.FullName(),
		"User":  user,
	})
}

func (v *Controllers) newUserForm(c *fiber.Ctx) error {
	return v.render(c, "users/new", fiber.Map{
		"Title":        "Create a user",
		"DefaultImage": models.DefaultImageURL,
	})
}

func (v *Controllers) createUser(c *fiber.Ctx) error {
	var data userForm
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	if _, err := services.NewUser(v.tx(c), data.FirstName, data.LastName, data.ImageURL); err != nil {
		return err
	}

	exts.SetFlash(c, exts.FlashSuccess, "New User Created!")
	return redirectTo(c, "/users")
}

func (v *Controllers) editUserForm(c *fiber.Ctx) error {
	id, err := paramsID(c, "userId")
	if err != nil {
		return err
	}

	user, err := services.GetUser(v.tx(c), id)
	if err != nil {
		return lookupError(err)
	}

	return v.render(c, "users/edit", fiber.Map{
		"Title": "Edit a user",
		"User":  user,
	})
}

func (v *Controllers) editUser(c *fiber.Ctx) error {
	id, err := paramsID(c, "userId")
	if err != nil {
		return err
	}

	user, err := services.GetUser(v.tx(c), id)
	if err != nil {
		return lookupError(err)
	}

	var data userForm
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	if _, err := services.EditUser(v.tx(c), user, data.FirstName, data.LastName, data.ImageURL); err != nil {
		return err
	}

	exts.SetFlash(c, exts.FlashSuccess, "User Updated!")
	return redirectTo(c, "/users")
}

func (v *Controllers) deleteUser(c *fiber.Ctx) error {
	id, err := paramsID(c, "userId")
	if err != nil {
		return err
	}

	user, err := services.GetUser(v.tx(c), id)
	if err != nil {
		return lookupError(err)
	}

	if err := services.DeleteUser(v.tx(c), user); err != nil {
		return err
	}

	exts.SetFlash(c, exts.FlashSuccess, "User Deleted!")
	return redirectTo(c, "/users")
}
