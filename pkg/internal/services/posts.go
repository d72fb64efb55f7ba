package services

import (
	"time"

	"git.solsynth.dev/hypernet/blogly/pkg/internal/models"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const RecentPostsLimit = 5

func PreloadGeneral(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("User").
		Preload("Tags", func(db *gorm.DB) *gorm.DB {
			return db.Order("name")
		})
}

func GetPost(tx *gorm.DB, id uint) (models.Post, error) {
	var item models.Post
	if err := PreloadGeneral(tx).
		First(&item, id).Error; err != nil {
		return item, err
	}

	return item, nil
}

// ListRecentPosts returns the newest posts first. Posts created at the same
// instant are ordered by id so the listing is stable.
func ListRecentPosts(tx *gorm.DB, take int) ([]models.Post, error) {
	if take <= 0 {
		take = RecentPostsLimit
	}

	var items []models.Post
	if err := tx.
		Preload("User").
		Order("created_at DESC, id DESC").
		Limit(take).
		Find(&items).Error; err != nil {
		return items, err
	}

	return items, nil
}

func NewPost(tx *gorm.DB, user models.User, title, content string, tags []uint) (models.Post, error) {
	item := models.Post{
		Title:   title,
		Content: content,
		UserID:  user.ID,
	}

	log.Debug().Uint("user", user.ID).Uints("tags", tags).Msg("Posting a post...")
	start := time.Now()

	err := tx.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&item).Error; err != nil {
			return err
		}
		var err error
		item.Tags, err = SetPostTags(tx, item, tags)
		return err
	})
	if err != nil {
		return item, err
	}

	item.User = user
	log.Debug().Dur("elapsed", time.Since(start)).Uint("post", item.ID).Msg("The post is posted.")
	return item, nil
}

// EditPost overwrites the title and content and replaces the tag set. The
// creation time is left as it was.
func EditPost(tx *gorm.DB, item models.Post, title, content string, tags []uint) (models.Post, error) {
	item.Title = title
	item.Content = content

	err := tx.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&item).
			Select("Title", "Content").
			Updates(models.Post{Title: title, Content: content}).Error; err != nil {
			return err
		}
		var err error
		item.Tags, err = SetPostTags(tx, item, tags)
		return err
	})

	return item, err
}

func DeletePost(tx *gorm.DB, item models.Post) error {
	return tx.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", item.ID).Delete(&models.PostTag{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Post{}, item.ID).Error
	})
}

// SetPostTags makes the post's tag set exactly the tags with the given ids.
// Associations missing from the set are dropped and new ones are attached.
// Ids that match no tag are ignored.
func SetPostTags(tx *gorm.DB, item models.Post, tags []uint) ([]models.Tag, error) {
	tags = lo.Uniq(tags)

	var desired []models.Tag
	if len(tags) > 0 {
		if err := tx.Where("id IN ?", tags).Order("name").Find(&desired).Error; err != nil {
			return nil, err
		}
	}

	var current []uint
	if err := tx.Model(&models.PostTag{}).
		Where("post_id = ?", item.ID).
		Pluck("tag_id", &current).Error; err != nil {
		return nil, err
	}

	desiredIDs := lo.Map(desired, func(tag models.Tag, _ int) uint {
		return tag.ID
	})
	removed, added := lo.Difference(current, desiredIDs)

	if len(removed) > 0 {
		if err := tx.
			Where("post_id = ? AND tag_id IN ?", item.ID, removed).
			Delete(&models.PostTag{}).Error; err != nil {
			return nil, err
		}
	}
	if len(added) > 0 {
		rows := lo.Map(added, func(tag uint, _ int) models.PostTag {
			return models.PostTag{PostID: item.ID, TagID: tag}
		})
		if err := tx.Create(&rows).Error; err != nil {
			return nil, err
		}
	}

	log.Debug().
		Uint("post", item.ID).
		Int("added", len(added)).
		Int("removed", len(removed)).
		Msg("Reassigned post tags.")

	return desired, nil
}
