package models

// User - a profile shown by the feed and profile views. Rows are created
// only by seeding; there is no registration endpoint.
type User struct {
	ID          int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Username    string `gorm:"size:60;uniqueIndex" json:"username"`
	DisplayName string `gorm:"size:255" json:"display_name"`
	Avatar      string `gorm:"size:255" json:"avatar"`
	Bio         string `gorm:"type:text" json:"bio"`
}

func (User) TableName() string {
	return "users"
}
