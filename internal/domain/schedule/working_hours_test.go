package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EspacoLashStudio/studio-agenda/internal/models"
)

func TestWindowFromRecord(t *testing.T) {
	t.Run("ativo", func(t *testing.T) {
		w, open := WindowFromRecord(&models.WorkingHours{
			Active:    true,
			StartTime: "09:00",
			EndTime:   "18:00",
		})
		require.True(t, open)
		assert.Equal(t, Window{Start: 540, End: 1080}, w)
	})

	t.Run("registro ausente vale fechado", func(t *testing.T) {
		_, open := WindowFromRecord(nil)
		assert.False(t, open)
	})

	t.Run("inativo vale fechado", func(t *testing.T) {
		_, open := WindowFromRecord(&models.WorkingHours{
			Active:    false,
			StartTime: "09:00",
			EndTime:   "18:00",
		})
		assert.False(t, open)
	})

	t.Run("horário invertido vale fechado", func(t *testing.T) {
		_, open := WindowFromRecord(&models.WorkingHours{
			Active:    true,
			StartTime: "18:00",
			EndTime:   "09:00",
		})
		assert.False(t, open)
	})

	t.Run("horário ilegível vale fechado", func(t *testing.T) {
		_, open := WindowFromRecord(&models.WorkingHours{
			Active:    true,
			StartTime: "bogus",
			EndTime:   "18:00",
		})
		assert.False(t, open)
	})
}

func TestWindowContains_StartOnly(t *testing.T) {
	w := Window{Start: 540, End: 1080} // 09:00–18:00

	assert.True(t, w.Contains(540))
	assert.True(t, w.Contains(1079))
	assert.False(t, w.Contains(1080)) // fechamento é exclusivo
	assert.False(t, w.Contains(539))

	// só o início conta: um serviço longo começando 17:59 passa
	assert.True(t, w.Contains(1079))
}

func TestWeekday(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	// 2026-08-31 é segunda-feira
	wd, err := Weekday("2026-08-31", loc)
	require.NoError(t, err)
	assert.Equal(t, 1, wd)

	wd, err = Weekday("2026-09-06", loc)
	require.NoError(t, err)
	assert.Equal(t, 0, wd) // domingo

	_, err = Weekday("31/08/2026", loc)
	assert.Error(t, err)
}
