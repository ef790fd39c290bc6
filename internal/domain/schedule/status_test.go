package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/EspacoLashStudio/studio-agenda/internal/httperr"
)

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		name  string
		check func(Status) error
		from  Status
		ok    bool
	}{
		{"confirm scheduled", CanConfirm, StatusScheduled, true},
		{"confirm confirmed", CanConfirm, StatusConfirmed, false},
		{"confirm cancelled", CanConfirm, StatusCancelled, false},
		{"confirm completed", CanConfirm, StatusCompleted, false},

		{"cancel scheduled", CanCancel, StatusScheduled, true},
		{"cancel confirmed", CanCancel, StatusConfirmed, true},
		{"cancel cancelled", CanCancel, StatusCancelled, false},
		{"cancel completed", CanCancel, StatusCompleted, false},

		{"complete scheduled", CanComplete, StatusScheduled, true},
		{"complete confirmed", CanComplete, StatusConfirmed, true},
		{"complete cancelled", CanComplete, StatusCancelled, false},
		{"complete completed", CanComplete, StatusCompleted, false},

		{"reschedule scheduled", CanReschedule, StatusScheduled, true},
		{"reschedule confirmed", CanReschedule, StatusConfirmed, true},
		{"reschedule cancelled", CanReschedule, StatusCancelled, false},
		{"reschedule completed", CanReschedule, StatusCompleted, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.check(tc.from)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidTransition))
			}
		})
	}
}

func TestOccupies(t *testing.T) {
	assert.True(t, Occupies(StatusScheduled))
	assert.True(t, Occupies(StatusConfirmed))
	assert.True(t, Occupies(StatusCompleted))
	assert.False(t, Occupies(StatusCancelled))
}
