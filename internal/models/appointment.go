package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
)

// Agendamento. A duração NÃO é copiada para cá: o intervalo ocupado
// [time, time+service.duration) é resolvido na leitura, via join com
// o serviço.
type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"index" json:"user_id"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	AppointmentDate string `gorm:"size:10;index;not null" json:"appointment_date"`
	AppointmentTime string `gorm:"size:8;not null" json:"appointment_time"`

	Price  float64 `json:"price"`
	Status string  `gorm:"size:20;default:'scheduled'" json:"status"`

	PaymentMethod *string `gorm:"size:30" json:"payment_method"`
	PaymentStatus string  `gorm:"size:20;default:'pending'" json:"payment_status"`

	IncludeSalonPercentage bool     `gorm:"default:false" json:"include_salon_percentage"`
	SalonPercentage        *float64 `json:"salon_percentage"`

	Notes string `gorm:"size:255" json:"notes"`

	// Referência opaca usada pela página pública
	PublicRef string `gorm:"size:36;uniqueIndex" json:"public_ref"`

	ConfirmedAt *time.Time `json:"confirmed_at"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (ap *Appointment) BeforeCreate(tx *gorm.DB) error {
	if ap.PublicRef == "" {
		ap.PublicRef = uuid.New().String()
	}
	return nil
}
