package models

import "time"

// Profissional dona do estúdio — um calendário, um slug público
type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Phone        string `gorm:"size:20" json:"phone"`

	StudioName string `gorm:"size:100" json:"studio_name"`
	Slug       string `gorm:"size:100;uniqueIndex;not null" json:"slug"`

	PublicBookingEnabled bool   `gorm:"default:true" json:"public_booking_enabled"`
	Timezone             string `gorm:"size:50" json:"timezone"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
