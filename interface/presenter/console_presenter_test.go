package presenter

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enoch85/ge-spot-sub001/domain/entity"
	"github.com/enoch85/ge-spot-sub001/domain/valueobject"
	usecase "github.com/enoch85/ge-spot-sub001/usecase/interface"
)

func mustLabel(t *testing.T, hour, minute int) valueobject.IntervalLabel {
	t.Helper()
	label, err := valueobject.NewIntervalLabel(hour, minute)
	require.NoError(t, err)
	return label
}

func reportFixture(t *testing.T) *ConversionReport {
	t.Helper()

	set := entity.NewNormalizedPriceSet()
	set.SetToday(mustLabel(t, 10, 0), 42.5)
	set.SetToday(mustLabel(t, 11, 0), 43.0)
	set.SetTomorrow(mustLabel(t, 0, 0), 39.25)

	current := mustLabel(t, 11, 0)
	next := mustLabel(t, 12, 0)

	return &ConversionReport{
		Source:         "nordpool",
		TargetTimezone: "Europe/Stockholm",
		Granularity:    valueobject.Granularity60,
		Result: &usecase.ConversionResult{
			Set:            set,
			SourceTimezone: "Europe/Oslo",
			TodayKind:      valueobject.DayKindNormal,
			TomorrowKind:   valueobject.DayKindNormal,
			DroppedPoints:  2,
			TodayComplete:  false,
		},
		CurrentLabel: &current,
		NextLabel:    &next,
	}
}

func TestConsolePresenter_PrintConversion(t *testing.T) {
	var buf bytes.Buffer
	p := &ConsolePresenterImpl{writer: &buf}

	err := p.PrintConversion(reportFixture(t))
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Source: nordpool (Europe/Oslo)")
	assert.Contains(t, output, "Target: Europe/Stockholm")
	assert.Contains(t, output, "10:00")
	assert.Contains(t, output, "42.5000")
	assert.Contains(t, output, "Tomorrow")
	assert.Contains(t, output, "39.2500")
	assert.Contains(t, output, "Dropped: 2 point(s)")
	assert.Contains(t, output, "today is incomplete")
	assert.Contains(t, output, "Current interval: 11:00 (next: 12:00)")
}

func TestConsolePresenter_PrintConversion_NoTomorrow(t *testing.T) {
	var buf bytes.Buffer
	p := &ConsolePresenterImpl{writer: &buf}

	report := reportFixture(t)
	report.Result.Set = entity.NewNormalizedPriceSet()
	report.Result.Set.SetToday(mustLabel(t, 10, 0), 42.5)
	report.CurrentLabel = nil
	report.NextLabel = nil

	err := p.PrintConversion(report)
	require.NoError(t, err)

	output := buf.String()
	assert.NotContains(t, output, "Tomorrow")
	assert.NotContains(t, output, "Current interval")
}

func TestConsolePresenter_PrintCurrentInterval(t *testing.T) {
	var buf bytes.Buffer
	p := &ConsolePresenterImpl{writer: &buf}

	err := p.PrintCurrentInterval(mustLabel(t, 13, 0), mustLabel(t, 14, 0))
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "13:00")
	assert.Contains(t, output, "14:00")
	assert.Contains(t, output, "current")
	assert.Contains(t, output, "next")
}
