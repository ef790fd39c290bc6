package models

import "time"

// Horário pré-aprovado exposto na página pública de agendamento.
// Catálogo independente do expediente: sem linhas ativas, o link
// público não oferece horário nenhum.
type BookingTimeSlot struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"uniqueIndex:idx_booking_slot_user_time" json:"user_id"`

	TimeSlot string `gorm:"size:8;uniqueIndex:idx_booking_slot_user_time;not null" json:"time_slot"`
	Active   bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
