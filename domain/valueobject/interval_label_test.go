package valueobject

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/enoch85/ge-spot-sub001/domain"
)

func TestNewIntervalLabel(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		label, err := NewIntervalLabel(14, 15)
		assert.NoError(t, err)
		assert.Equal(t, "14:15", label.String())
		assert.Equal(t, 14, label.Hour())
		assert.Equal(t, 15, label.Minute())
	})

	t.Run("out of range", func(t *testing.T) {
		_, err := NewIntervalLabel(24, 0)
		assert.True(t, domain.IsErrorCode(err, domain.ErrCodeInvalidConfiguration))

		_, err = NewIntervalLabel(0, 60)
		assert.True(t, domain.IsErrorCode(err, domain.ErrCodeInvalidConfiguration))

		_, err = NewIntervalLabel(-1, 0)
		assert.Error(t, err)
	})
}

func TestIntervalLabelFromTime(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Stockholm")
	assert.NoError(t, err)

	t.Run("rounds down to granularity boundary", func(t *testing.T) {
		instant := time.Date(2025, 6, 15, 14, 44, 59, 0, loc)

		assert.Equal(t, "14:40", IntervalLabelFromTime(instant, Granularity5).String())
		assert.Equal(t, "14:30", IntervalLabelFromTime(instant, Granularity15).String())
		assert.Equal(t, "14:30", IntervalLabelFromTime(instant, Granularity30).String())
		assert.Equal(t, "14:00", IntervalLabelFromTime(instant, Granularity60).String())
	})

	t.Run("uses the time's own location", func(t *testing.T) {
		utc := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
		assert.Equal(t, "12:00", IntervalLabelFromTime(utc, Granularity60).String())
		assert.Equal(t, "14:00", IntervalLabelFromTime(utc.In(loc), Granularity60).String())
	})
}

func TestParseIntervalLabel(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		label, err := ParseIntervalLabel("08:45")
		assert.NoError(t, err)
		assert.Equal(t, 8, label.Hour())
		assert.Equal(t, 45, label.Minute())
	})

	t.Run("invalid", func(t *testing.T) {
		for _, raw := range []string{"", "8:45", "08.45", "0845", "25:00", "08:61", "ab:cd"} {
			_, err := ParseIntervalLabel(raw)
			assert.Error(t, err, "input %q", raw)
		}
	})
}

func TestIntervalLabelArithmetic(t *testing.T) {
	t.Run("AddHours wraps", func(t *testing.T) {
		label, _ := NewIntervalLabel(23, 30)
		assert.Equal(t, "00:30", label.AddHours(1).String())
		assert.Equal(t, "22:30", label.AddHours(-1).String())
		assert.Equal(t, "23:30", label.AddHours(24).String())
		assert.Equal(t, "21:30", label.AddHours(-26).String())
	})

	t.Run("Next wraps at midnight", func(t *testing.T) {
		label, _ := NewIntervalLabel(23, 45)
		assert.Equal(t, "00:00", label.Next(Granularity15).String())

		label, _ = NewIntervalLabel(13, 0)
		assert.Equal(t, "13:30", label.Next(Granularity30).String())
	})

	t.Run("Equals", func(t *testing.T) {
		a, _ := NewIntervalLabel(2, 0)
		b, _ := NewIntervalLabel(2, 0)
		c, _ := NewIntervalLabel(3, 0)
		assert.True(t, a.Equals(b))
		assert.False(t, a.Equals(c))
	})
}

func TestParseReferenceMode(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		mode, err := ParseReferenceMode("home_assistant_time")
		assert.NoError(t, err)
		assert.Equal(t, ReferenceModeHomeAssistantTime, mode)

		mode, err = ParseReferenceMode(" Local_Area_Time ")
		assert.NoError(t, err)
		assert.Equal(t, ReferenceModeLocalAreaTime, mode)
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := ParseReferenceMode("utc")
		assert.True(t, domain.IsErrorCode(err, domain.ErrCodeInvalidConfiguration))
	})
}
