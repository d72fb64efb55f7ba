package services

import (
	"git.solsynth.dev/hypernet/blogly/pkg/internal/models"
	"gorm.io/gorm"
)

func ListUsers(tx *gorm.DB) ([]models.User, error) {
	var users []models.User
	err := tx.Order("id").Find(&users).Error

	return users, err
}

func GetUser(tx *gorm.DB, id uint) (models.User, error) {
	var user models.User
	if err := tx.First(&user, id).Error; err != nil {
		return user, err
	}
	return user, nil
}

func GetUserWithPosts(tx *gorm.DB, id uint) (models.User, error) {
	var user models.User
	if err := tx.
		Preload("Posts", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC, id DESC")
		}).
		First(&user, id).Error; err != nil {
		return user, err
	}
	return user, nil
}

func imageOrDefault(image string) string {
	if len(image) == 0 {
		return models.DefaultImageURL
	}
	return image
}

func NewUser(tx *gorm.DB, firstName, lastName, image string) (models.User, error) {
	user := models.User{
		FirstName: firstName,
		LastName:  lastName,
		ImageURL:  imageOrDefault(image),
	}

	err := tx.Create(&user).Error

	return user, err
}

func EditUser(tx *gorm.DB, user models.User, firstName, lastName, image string) (models.User, error) {
	user.FirstName = firstName
	user.LastName = lastName
	user.ImageURL = imageOrDefault(image)

	err := tx.Model(&user).
		Select("FirstName", "LastName", "ImageURL").
		Updates(&user).Error

	return user, err
}

// DeleteUser removes the user together with every post they own and the
// tag associations of those posts.
func DeleteUser(tx *gorm.DB, user models.User) error {
	return tx.Transaction(func(tx *gorm.DB) error {
		var postIDs []uint
		if err := tx.Model(&models.Post{}).
			Where("user_id = ?", user.ID).
			Pluck("id", &postIDs).Error; err != nil {
			return err
		}

		if len(postIDs) > 0 {
			if err := tx.Where("post_id IN ?", postIDs).Delete(&models.PostTag{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", postIDs).Delete(&models.Post{}).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&user).Error
	})
}
