package models

// User represents a registered user.
type User struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"type:varchar(100);not null"`
	Age  int    `json:"age" gorm:"not null"`

	// Items owned by this user. Deleting the user removes them.
	Items []Item `json:"-" gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
}
