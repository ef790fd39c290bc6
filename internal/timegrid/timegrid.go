package timegrid

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/EspacoLashStudio/studio-agenda/internal/httperr"
)

// Aritmética de horário do dia em minutos desde a meia-noite.
// Strings "HH:MM" (ou "HH:MM:SS") só existem na borda; todo o
// cálculo de disponibilidade e conflito trabalha com int.

// ParseTime aceita "HH:MM" ou "HH:MM:SS" e devolve minutos desde
// a meia-noite.
func ParseTime(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, httperr.ErrBusiness("invalid_time_format")
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, httperr.ErrBusiness("invalid_time_format")
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, httperr.ErrBusiness("invalid_time_format")
	}

	return hour*60 + minute, nil
}

// FormatTime devolve "HH:MM".
func FormatTime(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

func AddMinutes(minutes, delta int) int {
	return minutes + delta
}

// IntervalsOverlap usa semântica de intervalo semiaberto [start, end):
// extremos encostados não conflitam.
func IntervalsOverlap(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}

// HourlySlots gera a grade de hora em hora usada pela agenda interna
// (visão dia/semana), de startHour até endHour inclusive.
func HourlySlots(startHour, endHour int) []string {
	if endHour < startHour {
		return []string{}
	}

	slots := make([]string, 0, endHour-startHour+1)
	for h := startHour; h <= endHour; h++ {
		slots = append(slots, FormatTime(h*60))
	}
	return slots
}
