package http_test

import (
	"fmt"
	"net/url"
	"testing"

	"git.solsynth.dev/hypernet/blogly/pkg/internal/models"
	"git.solsynth.dev/hypernet/blogly/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTag(t *testing.T) {
	s := newTestServer(t)

	assert.Equal(t, fiber.StatusOK, s.get("/tags/new").Status)

	resp := s.post("/tags/new", url.Values{"tagname": {"Food"}})
	require.Equal(t, fiber.StatusFound, resp.Status)
	assert.Equal(t, "/tags", resp.Location)

	tags, err := services.ListTags(s.db)
	require.NoError(t, err)
	require.Len(t, tags, 1)

	listing := s.get("/tags")
	assert.Contains(t, listing.Body, fmt.Sprintf(`<li><a href="/tags/%d">Food</a></li>`, tags[0].ID))
}

func TestCreateDuplicateTagFails(t *testing.T) {
	s := newTestServer(t)

	first := s.post("/tags/new", url.Values{"tagname": {"Food"}})
	require.Equal(t, fiber.StatusFound, first.Status)

	second := s.post("/tags/new", url.Values{"tagname": {"Food"}})
	assert.Equal(t, fiber.StatusInternalServerError, second.Status)

	tags, err := services.ListTags(s.db)
	require.NoError(t, err)
	assert.Len(t, tags, 1)
}

func TestCreateTagMissingName(t *testing.T) {
	s := newTestServer(t)

	assert.Equal(t, fiber.StatusBadRequest, s.post("/tags/new", nil).Status)
}

func TestShowTag(t *testing.T) {
	s := newTestServer(t)
	user, err := services.NewUser(s.db, "Allen", "Apple", "")
	require.NoError(t, err)
	tag, err := services.NewTag(s.db, "Food")
	require.NoError(t, err)
	_, err = services.NewPost(s.db, user, "Lunch", "Soup", []uint{tag.ID})
	require.NoError(t, err)

	resp := s.get(fmt.Sprintf("/tags/%d", tag.ID))
	assert.Equal(t, fiber.StatusOK, resp.Status)
	assert.Contains(t, resp.Body, "<h1>Food</h1>")
	assert.Contains(t, resp.Body, "Lunch")

	assert.Equal(t, fiber.StatusNotFound, s.get("/tags/404").Status)
}

func TestEditTag(t *testing.T) {
	s := newTestServer(t)
	tag, err := services.NewTag(s.db, "Food")
	require.NoError(t, err)

	form := s.get(fmt.Sprintf("/tags/%d/edit", tag.ID))
	assert.Equal(t, fiber.StatusOK, form.Status)
	assert.Contains(t, form.Body, `value="Food"`)

	resp := s.post(fmt.Sprintf("/tags/%d/edit", tag.ID), url.Values{"tagname": {"Drinks"}})
	require.Equal(t, fiber.StatusFound, resp.Status)
	assert.Equal(t, "/tags", resp.Location)

	renamed, err := services.GetTag(s.db, tag.ID)
	require.NoError(t, err)
	assert.Equal(t, "Drinks", renamed.Name)
}

func TestDeleteTagKeepsPosts(t *testing.T) {
	s := newTestServer(t)
	user, err := services.NewUser(s.db, "Allen", "Apple", "")
	require.NoError(t, err)
	tag, err := services.NewTag(s.db, "Food")
	require.NoError(t, err)
	post, err := services.NewPost(s.db, user, "Lunch", "Soup", []uint{tag.ID})
	require.NoError(t, err)

	resp := s.post(fmt.Sprintf("/tags/%d/delete", tag.ID), nil)
	require.Equal(t, fiber.StatusFound, resp.Status)
	assert.Equal(t, "/tags", resp.Location)

	var count int64
	require.NoError(t, s.db.Model(&models.PostTag{}).Where("tag_id = ?", tag.ID).Count(&count).Error)
	assert.Zero(t, count)
	assert.Equal(t, fiber.StatusOK, s.get(fmt.Sprintf("/posts/%d", post.ID)).Status)
	assert.Equal(t, fiber.StatusNotFound, s.get(fmt.Sprintf("/tags/%d", tag.ID)).Status)
}
