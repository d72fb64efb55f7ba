package models

type Tag struct {
	ID    uint   `json:"id" gorm:"primaryKey"`
	Name  string `json:"name" gorm:"not null;uniqueIndex"`
	Posts []Post `json:"posts" gorm:"many2many:post_tag;constraint:OnDelete:CASCADE"`
}

// PostTag is the join row between a post and one of its tags.
type PostTag struct {
	PostID uint `json:"post_id" gorm:"primaryKey;autoIncrement:false"`
	TagID  uint `json:"tag_id" gorm:"primaryKey;autoIncrement:false"`
}

func (PostTag) TableName() string {
	return "post_tag"
}
