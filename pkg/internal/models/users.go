package models

const DefaultImageURL = "https://www.freeiconspng.com/uploads/icon-user-blue-symbol-people-person-generic--public-domain--21.png"

type User struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	FirstName string `json:"first_name" gorm:"not null"`
	LastName  string `json:"last_name" gorm:"not null"`
	ImageURL  string `json:"image_url" gorm:"not null"`

	Posts []Post `json:"posts" gorm:"constraint:OnDelete:CASCADE"`
}

func (v User) FullName() string {
	return v.FirstName + " " + v.LastName
}
