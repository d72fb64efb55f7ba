package services

import (
	"git.solsynth.dev/hypernet/blogly/pkg/internal/models"
	"gorm.io/gorm"
)

func ListTags(tx *gorm.DB) ([]models.Tag, error) {
	var tags []models.Tag
	err := tx.Order("name, id").Find(&tags).Error

	return tags, err
}

func GetTag(tx *gorm.DB, id uint) (models.Tag, error) {
	var tag models.Tag
	if err := tx.First(&tag, id).Error; err != nil {
		return tag, err
	}
	return tag, nil
}

func GetTagWithPosts(tx *gorm.DB, id uint) (models.Tag, error) {
	var tag models.Tag
	if err := tx.
		Preload("Posts", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC, id DESC")
		}).
		Preload("Posts.User").
		First(&tag, id).Error; err != nil {
		return tag, err
	}
	return tag, nil
}

func NewTag(tx *gorm.DB, name string) (models.Tag, error) {
	tag := models.Tag{
		Name: name,
	}

	err := tx.Create(&tag).Error

	return tag, err
}

func EditTag(tx *gorm.DB, tag models.Tag, name string) (models.Tag, error) {
	tag.Name = name

	err := tx.Model(&tag).Update("name", name).Error

	return tag, err
}

// DeleteTag detaches the tag from every post before removing it. The posts
// themselves are kept.
func DeleteTag(tx *gorm.DB, tag models.Tag) error {
	return tx.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tag_id = ?", tag.ID).Delete(&models.PostTag{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Tag{}, tag.ID).Error
	})
}
