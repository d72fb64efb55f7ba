package services

import (
	"git.solsynth.dev/hypernet/blogly/pkg/internal/models"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// DoAutoDatabaseCleanup drops post_tag rows pointing at posts or tags that
// no longer exist. Stores that enforce foreign keys never have any.
func DoAutoDatabaseCleanup(tx *gorm.DB) (int64, error) {
	log.Debug().Msg("Cleaning up orphaned post tags...")

	result := tx.
		Where("post_id NOT IN (?)", tx.Model(&models.Post{}).Select("id")).
		Or("tag_id NOT IN (?)", tx.Model(&models.Tag{}).Select("id")).
		Delete(&models.PostTag{})
	if result.Error != nil {
		log.Error().Err(result.Error).Msg("An error occurred when cleaning up orphaned post tags...")
		return 0, result.Error
	}

	log.Info().Int64("count", result.RowsAffected).Msg("Cleaned up orphaned post tags.")
	return result.RowsAffected, nil
}
