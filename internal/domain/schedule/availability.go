package schedule

type AvailabilityInput struct {
	UserID    uint
	ServiceID uint
	Date      string // YYYY-MM-DD
}

type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Motivos de lista vazia que não são erro — a interface trata
// "fechado" diferente de "sem horário livre".
const (
	ReasonDayClosed      = "day_closed"
	ReasonDayBlocked     = "day_blocked"
	ReasonNoBookingSlots = "no_booking_slots"
)

type AvailabilityResult struct {
	Slots  []TimeSlot `json:"slots"`
	Reason string     `json:"reason,omitempty"`
}

// Intervalo ocupado por um agendamento vivo, em minutos desde a
// meia-noite. End vem do join com a duração atual do serviço.
type Occupied struct {
	Start         int
	End           int
	AppointmentID uint
	Status        string
}
