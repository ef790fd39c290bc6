package schedule

import (
	"time"

	"github.com/EspacoLashStudio/studio-agenda/internal/httperr"
	"github.com/EspacoLashStudio/studio-agenda/internal/models"
	"github.com/EspacoLashStudio/studio-agenda/internal/timegrid"
)

// Janela de expediente em minutos desde a meia-noite, [Start, End).
type Window struct {
	Start int
	End   int
}

// WindowFromRecord converte o registro do dia em janela ativa.
// Registro ausente, inativo ou com horários inválidos vale "fechado".
func WindowFromRecord(wh *models.WorkingHours) (Window, bool) {
	if wh == nil || !wh.Active || wh.StartTime == "" || wh.EndTime == "" {
		return Window{}, false
	}

	start, err := timegrid.ParseTime(wh.StartTime)
	if err != nil {
		return Window{}, false
	}

	end, err := timegrid.ParseTime(wh.EndTime)
	if err != nil {
		return Window{}, false
	}

	if start >= end {
		return Window{}, false
	}

	return Window{Start: start, End: end}, true
}

// Contains valida só o início do slot contra a janela.
// O término pode estourar o fechamento — comportamento herdado da
// agenda original, mantido para o link público e o balcão oferecerem
// os mesmos horários.
func (w Window) Contains(startMinutes int) bool {
	return startMinutes >= w.Start && startMinutes < w.End
}

// Weekday resolve o dia da semana (0 = domingo) de uma data ISO.
func Weekday(date string, loc *time.Location) (int, error) {
	d, err := time.ParseInLocation("2006-01-02", date, loc)
	if err != nil {
		return 0, httperr.ErrBusiness("invalid_date")
	}
	return int(d.Weekday()), nil
}
