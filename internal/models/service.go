package models

import (
	"time"

	"gorm.io/gorm"
)

// ===============================
// Price Mode
// ===============================

const (
	PriceModeFixed = "fixed"
	PriceModeFree  = "free"
	PriceModeRange = "range"
)

// Serviço oferecido pela profissional. Soft delete: agendamentos
// antigos continuam apontando para um registro válido.
type Service struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"index" json:"user_id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`
	DurationMin int    `gorm:"not null" json:"duration_min"`

	PriceMode      string   `gorm:"size:10;default:'fixed'" json:"price_mode"`
	SuggestedPrice *float64 `json:"suggested_price"`

	IncludeSalonPercentage bool     `gorm:"default:false" json:"include_salon_percentage"`
	SalonPercentage        *float64 `json:"salon_percentage"`

	Active bool `gorm:"default:true" json:"active"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
