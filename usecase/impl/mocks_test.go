package impl

import (
	"context"
	"fmt"
	"time"

	"github.com/enoch85/ge-spot-sub001/domain"
	"github.com/enoch85/ge-spot-sub001/domain/repository"
)

// testLogger discards everything; test assertions run on return values,
// not log output
type testLogger struct{}

func (l *testLogger) Debug(_ context.Context, _ string, _ ...domain.Field) {}
func (l *testLogger) Info(_ context.Context, _ string, _ ...domain.Field)  {}
func (l *testLogger) Warn(_ context.Context, _ string, _ ...domain.Field)  {}
func (l *testLogger) Error(_ context.Context, _ string, _ ...domain.Field) {}
func (l *testLogger) WithFields(_ ...domain.Field) domain.Logger           { return l }

// testResolver resolves IANA names directly plus a small alias table, the
// same shape the production resolver has
type testResolver struct {
	aliases map[string]string
}

func newTestResolver() *testResolver {
	return &testResolver{
		aliases: map[string]string{
			"SE3":      "Europe/Stockholm",
			"nordpool": "Europe/Oslo",
		},
	}
}

func (r *testResolver) Resolve(identifier string) (*time.Location, error) {
	name := identifier
	if alias, ok := r.aliases[identifier]; ok {
		name = alias
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, domain.ErrInvalidTimezoneWithCause(identifier, err)
	}
	return loc, nil
}

func (r *testResolver) Info(loc *time.Location, at time.Time) repository.TimezoneInfo {
	local := at.In(loc)
	_, offsetSeconds := local.Zone()
	return repository.TimezoneInfo{
		Name:          loc.String(),
		Offset:        local.Format("-07:00"),
		OffsetSeconds: offsetSeconds,
		IsDST:         local.IsDST(),
	}
}

// recordingMetricsRepo captures every gauge sent to it
type recordingMetricsRepo struct {
	gauges map[string]float64
	labels map[string]map[string]string
	closed bool
	err    error
}

func newRecordingMetricsRepo() *recordingMetricsRepo {
	return &recordingMetricsRepo{
		gauges: make(map[string]float64),
		labels: make(map[string]map[string]string),
	}
}

func (r *recordingMetricsRepo) SendGauge(name string, value float64, labels map[string]string) error {
	if r.err != nil {
		return r.err
	}
	r.gauges[name] = value
	r.labels[name] = labels
	return nil
}

func (r *recordingMetricsRepo) Close() error {
	r.closed = true
	return nil
}

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(fmt.Sprintf("cannot load location %s: %v", name, err))
	}
	return loc
}
