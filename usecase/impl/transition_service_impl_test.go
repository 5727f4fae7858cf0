package impl

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/enoch85/ge-spot-sub001/domain/valueobject"
)

func TestTransitionServiceImpl_Classify(t *testing.T) {
	service := NewTransitionServiceImpl(&testLogger{})
	stockholm := mustLoadLocation("Europe/Stockholm")
	sydney := mustLoadLocation("Australia/Sydney")

	tests := []struct {
		name     string
		year     int
		month    time.Month
		day      int
		loc      *time.Location
		expected valueobject.DayKind
	}{
		{"normal day in Stockholm", 2025, time.June, 15, stockholm, valueobject.DayKindNormal},
		{"spring-forward day in Stockholm", 2025, time.March, 30, stockholm, valueobject.DayKindSpringForward},
		{"fall-back day in Stockholm", 2025, time.October, 26, stockholm, valueobject.DayKindFallBack},
		{"day before the transition is normal", 2025, time.October, 25, stockholm, valueobject.DayKindNormal},
		{"spring-forward day in Sydney", 2025, time.October, 5, sydney, valueobject.DayKindSpringForward},
		{"fall-back day in Sydney", 2025, time.April, 6, sydney, valueobject.DayKindFallBack},
		{"every day is normal in UTC", 2025, time.March, 30, time.UTC, valueobject.DayKindNormal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := service.Classify(tt.year, tt.month, tt.day, tt.loc)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestTransitionServiceImpl_DSTOffset(t *testing.T) {
	service := NewTransitionServiceImpl(&testLogger{})
	stockholm := mustLoadLocation("Europe/Stockholm")
	sydney := mustLoadLocation("Australia/Sydney")

	t.Run("summer time in Stockholm is one hour", func(t *testing.T) {
		at := time.Date(2025, 7, 1, 12, 0, 0, 0, stockholm)
		assert.Equal(t, time.Hour, service.DSTOffset(at, stockholm))
	})

	t.Run("standard time in Stockholm is zero", func(t *testing.T) {
		at := time.Date(2025, 1, 15, 12, 0, 0, 0, stockholm)
		assert.Equal(t, time.Duration(0), service.DSTOffset(at, stockholm))
	})

	t.Run("southern hemisphere summer is in January", func(t *testing.T) {
		january := time.Date(2025, 1, 15, 12, 0, 0, 0, sydney)
		july := time.Date(2025, 7, 15, 12, 0, 0, 0, sydney)

		assert.Equal(t, time.Hour, service.DSTOffset(january, sydney))
		assert.Equal(t, time.Duration(0), service.DSTOffset(july, sydney))
	})

	t.Run("distinguishes the two passes of the fall-back hour", func(t *testing.T) {
		// Stockholm 2025-10-26: 03:00 CEST becomes 02:00 CET, so the wall
		// clock shows 02:30 twice.
		firstPass := time.Date(2025, 10, 26, 0, 30, 0, 0, time.UTC)
		secondPass := time.Date(2025, 10, 26, 1, 30, 0, 0, time.UTC)

		assert.Equal(t, 2, firstPass.In(stockholm).Hour())
		assert.Equal(t, 2, secondPass.In(stockholm).Hour())

		assert.Equal(t, time.Hour, service.DSTOffset(firstPass, stockholm))
		assert.Equal(t, time.Duration(0), service.DSTOffset(secondPass, stockholm))
	})
}

func TestTransitionServiceImpl_OffsetDescription(t *testing.T) {
	service := NewTransitionServiceImpl(&testLogger{})
	stockholm := mustLoadLocation("Europe/Stockholm")

	t.Run("renders an active offset", func(t *testing.T) {
		at := time.Date(2025, 7, 1, 12, 0, 0, 0, stockholm)
		assert.Equal(t, "+1 hour", service.OffsetDescription(at, stockholm))
	})

	t.Run("renders standard time as none", func(t *testing.T) {
		at := time.Date(2025, 1, 15, 12, 0, 0, 0, stockholm)
		assert.Equal(t, "none", service.OffsetDescription(at, stockholm))
	})

	t.Run("renders a fractional offset", func(t *testing.T) {
		// Lord Howe Island uses a 30-minute DST shift.
		lordHowe := mustLoadLocation("Australia/Lord_Howe")
		at := time.Date(2025, 1, 15, 12, 0, 0, 0, lordHowe)

		assert.Equal(t, "+30 minutes", service.OffsetDescription(at, lordHowe))
	})
}
