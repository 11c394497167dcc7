package models

// Item represents an item owned by a user.
type Item struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	Title       string  `json:"title" gorm:"type:varchar(200);not null"`
	Description *string `json:"description" gorm:"type:varchar(1000)"`
	Price       float64 `json:"price" gorm:"not null"`
	IsActive    bool    `json:"is_active" gorm:"not null"`
	OwnerID     uint    `json:"owner_id" gorm:"index;not null"`
}
