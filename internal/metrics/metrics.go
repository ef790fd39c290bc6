package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AppointmentsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agenda_appointments_created_total",
			Help: "Appointments created, by source (staff/public).",
		},
		[]string{"source"},
	)

	SlotConflicts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "agenda_slot_conflicts_total",
			Help: "Create/reschedule attempts rejected by the overlap check.",
		},
	)

	AvailabilityQueries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agenda_availability_queries_total",
			Help: "Availability resolutions, by cache outcome.",
		},
		[]string{"cache"},
	)
)
