package schedule

import "github.com/EspacoLashStudio/studio-agenda/internal/models"

// Bloqueios de uma data: flag de dia inteiro + horários pontuais.
// Dia inteiro vence qualquer outra regra.
type DayBlocks struct {
	FullDay bool
	Points  map[string]bool
	Reasons map[string]string
}

func BuildDayBlocks(rows []models.BlockedSlot) DayBlocks {
	blocks := DayBlocks{
		Points:  make(map[string]bool),
		Reasons: make(map[string]string),
	}

	for _, row := range rows {
		if row.IsFullDay || row.BlockedTime == nil {
			blocks.FullDay = true
			continue
		}

		blocks.Points[*row.BlockedTime] = true

		// linhas duplicadas podem existir; o primeiro motivo prevalece
		if _, ok := blocks.Reasons[*row.BlockedTime]; !ok {
			blocks.Reasons[*row.BlockedTime] = row.Reason
		}
	}

	return blocks
}

func (b DayBlocks) IsBlockedAt(timeStr string) bool {
	if b.FullDay {
		return true
	}
	return b.Points[timeStr]
}
