package models

import (
	"time"

	"github.com/EspacoLashStudio/studio-agenda/internal/httperr"
)

// Bloqueio de agenda: dia inteiro (BlockedTime nulo) ou um horário
// pontual. Linhas pontuais idênticas podem coexistir — cada uma tem
// ciclo de vida e motivo próprios.
type BlockedSlot struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"index" json:"user_id"`

	BlockedDate string  `gorm:"size:10;index;not null" json:"blocked_date"`
	BlockedTime *string `gorm:"size:8" json:"blocked_time"`
	IsFullDay   bool    `gorm:"default:false" json:"is_full_day"`
	Reason      string  `gorm:"size:255" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewBlockedSlot monta um bloqueio válido: dia inteiro exige
// BlockedTime nulo, bloqueio pontual exige horário.
func NewBlockedSlot(userID uint, date string, blockedTime *string, reason string) (*BlockedSlot, error) {
	fullDay := blockedTime == nil

	if !fullDay && *blockedTime == "" {
		return nil, httperr.ErrBusiness("invalid_time_format")
	}

	return &BlockedSlot{
		UserID:      userID,
		BlockedDate: date,
		BlockedTime: blockedTime,
		IsFullDay:   fullDay,
		Reason:      reason,
	}, nil
}
