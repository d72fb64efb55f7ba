package services_test

import (
	"fmt"
	"testing"
	"time"

	"git.solsynth.dev/hypernet/blogly/pkg/internal/database"
	"git.solsynth.dev/hypernet/blogly/pkg/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := database.NewGorm(database.DialectSqlite, dsn, false)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.RunMigration(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, first, last string) models.User {
	t.Helper()
	user := models.User{FirstName: first, LastName: last, ImageURL: models.DefaultImageURL}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedTag(t *testing.T, db *gorm.DB, name string) models.Tag {
	t.Helper()
	tag := models.Tag{Name: name}
	require.NoError(t, db.Create(&tag).Error)
	return tag
}

func seedPost(t *testing.T, db *gorm.DB, user models.User, title string, at time.Time) models.Post {
	t.Helper()
	post := models.Post{Title: title, Content: title + " content", UserID: user.ID, CreatedAt: at}
	require.NoError(t, db.Omit("User", "Tags").Create(&post).Error)
	return post
}

func postTagIDs(t *testing.T, db *gorm.DB, post models.Post) []uint {
	t.Helper()
	var ids []uint
	require.NoError(t, db.Model(&models.PostTag{}).
		Where("post_id = ?", post.ID).
		Order("tag_id").
		Pluck("tag_id", &ids).Error)
	return ids
}
