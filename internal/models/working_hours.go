package models

import "time"

// Expediente por dia da semana (0 = domingo ... 6 = sábado).
// No máximo um registro ativo por (user, weekday); o save substitui
// tudo de uma vez (delete-all + insert).
type WorkingHours struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"index" json:"user_id"`

	Weekday int `json:"weekday"`

	StartTime string `gorm:"size:8" json:"start_time"`
	EndTime   string `gorm:"size:8" json:"end_time"`
	Active    bool   `json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
