package models

import (
	"time"
)

const PostFriendlyDateLayout = "01/02/06"

type Post struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"not null"`
	Content   string    `json:"content" gorm:"not null"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;index"`
	Tags      []Tag     `json:"tags" gorm:"many2many:post_tag;constraint:OnDelete:CASCADE"`

	UserID uint `json:"user_id" gorm:"not null;index"`
	User   User `json:"user"`
}

func (Post) TableName() string {
	return "post"
}

// FriendlyDate formats the creation time as month/day/two-digit year.
func (v Post) FriendlyDate() string {
	return v.CreatedAt.Format(PostFriendlyDateLayout)
}
