package models

// Product - a shop item. Category is free text, unlike the enumerated
// post types.
type Product struct {
	ID          int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"size:255" json:"name"`
	Description string  `gorm:"type:text" json:"description"`
	Price       float64 `json:"price"`
	Image       string  `gorm:"size:255" json:"image"`
	Category    string  `gorm:"size:60" json:"category"`
	Rating      float64 `gorm:"default:4.5" json:"rating"`
}

func (Product) TableName() string {
	return "products"
}
