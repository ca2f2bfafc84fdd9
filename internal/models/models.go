package models

type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string `gorm:"not null"                 json:"name"`
	Email        string `gorm:"uniqueIndex;not null"     json:"email"`
	PasswordHash string `gorm:"not null"                 json:"-"`
	Token        string `gorm:"not null"                 json:"-"`
	Role         string `gorm:"not null"                 json:"role"`
}

type Product struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"not null"                 json:"name"`
	Price       float64 `gorm:"not null"                 json:"price"`
	Brand       string  `json:"brand,omitempty"`
	Stock       uint    `gorm:"not null"                 json:"stock"`
	Image       string  `gorm:"not null"                 json:"image"`
	Description string  `gorm:"not null"                 json:"description"`
	UserID      uint    `gorm:"index"                    json:"user_id"`
}
