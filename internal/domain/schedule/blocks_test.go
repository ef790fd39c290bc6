package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/EspacoLashStudio/studio-agenda/internal/models"
)

func strPtr(s string) *string { return &s }

func TestBuildDayBlocks_Points(t *testing.T) {
	blocks := BuildDayBlocks([]models.BlockedSlot{
		{BlockedTime: strPtr("10:00"), Reason: "almoço"},
		{BlockedTime: strPtr("14:00"), Reason: "médico"},
	})

	assert.False(t, blocks.FullDay)
	assert.True(t, blocks.IsBlockedAt("10:00"))
	assert.True(t, blocks.IsBlockedAt("14:00"))
	assert.False(t, blocks.IsBlockedAt("11:00"))
	assert.Equal(t, "almoço", blocks.Reasons["10:00"])
}

func TestBuildDayBlocks_FullDayWins(t *testing.T) {
	blocks := BuildDayBlocks([]models.BlockedSlot{
		{BlockedTime: strPtr("10:00")},
		{IsFullDay: true, Reason: "feriado"},
	})

	assert.True(t, blocks.FullDay)
	assert.True(t, blocks.IsBlockedAt("10:00"))
	assert.True(t, blocks.IsBlockedAt("16:00")) // qualquer horário
}

func TestBuildDayBlocks_NilTimeMeansFullDay(t *testing.T) {
	blocks := BuildDayBlocks([]models.BlockedSlot{
		{BlockedTime: nil},
	})
	assert.True(t, blocks.FullDay)
}

// Linhas pontuais duplicadas coexistem; o primeiro motivo prevalece.
func TestBuildDayBlocks_DuplicatePoints(t *testing.T) {
	blocks := BuildDayBlocks([]models.BlockedSlot{
		{BlockedTime: strPtr("10:00"), Reason: "primeiro"},
		{BlockedTime: strPtr("10:00"), Reason: "segundo"},
	})

	assert.True(t, blocks.IsBlockedAt("10:00"))
	assert.Equal(t, "primeiro", blocks.Reasons["10:00"])
}

func TestBuildDayBlocks_Empty(t *testing.T) {
	blocks := BuildDayBlocks(nil)
	assert.False(t, blocks.FullDay)
	assert.False(t, blocks.IsBlockedAt("10:00"))
}
