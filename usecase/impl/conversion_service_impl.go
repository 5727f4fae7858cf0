package impl

import (
	"context"
	"sort"
	"time"

	"github.com/enoch85/ge-spot-sub001/domain"
	"github.com/enoch85/ge-spot-sub001/domain/entity"
	"github.com/enoch85/ge-spot-sub001/domain/repository"
	"github.com/enoch85/ge-spot-sub001/domain/valueobject"
	usecase "github.com/enoch85/ge-spot-sub001/usecase/interface"
)

// ConversionServiceImpl implements the ConversionService interface. The
// target timezone and granularity are fixed at construction; the source
// timezone travels with each price map.
type ConversionServiceImpl struct {
	timestampService usecase.TimestampService
	transition       usecase.TransitionService
	resample         usecase.ResampleService
	timezoneResolver repository.TimezoneResolver
	targetTZ         *time.Location
	granularity      valueobject.Granularity
	logger           domain.Logger
}

// NewConversionServiceImpl creates a new instance of ConversionServiceImpl
func NewConversionServiceImpl(
	timestampService usecase.TimestampService,
	transition usecase.TransitionService,
	resample usecase.ResampleService,
	timezoneResolver repository.TimezoneResolver,
	targetTZ *time.Location,
	granularity valueobject.Granularity,
	logger domain.Logger,
) *ConversionServiceImpl {
	return &ConversionServiceImpl{
		timestampService: timestampService,
		transition:       transition,
		resample:         resample,
		timezoneResolver: timezoneResolver,
		targetTZ:         targetTZ,
		granularity:      granularity,
		logger:           logger,
	}
}

// pricePoint is a parsed entry awaiting bucketing
type pricePoint struct {
	instant time.Time
	price   float64
}

// Convert projects a raw price map into today/tomorrow label buckets
func (s *ConversionServiceImpl) Convert(
	prices map[string]float64,
	sourceTimezone string,
	opts usecase.ConvertOptions,
) (*entity.NormalizedPriceSet, error) {
	result, err := s.convert(prices, sourceTimezone, s.granularity, opts)
	if err != nil {
		return nil, err
	}
	return result.Set, nil
}

// ConvertDocument converts a full vendor document, resampling to the
// target granularity first when the vendor samples at a different one
func (s *ConversionServiceImpl) ConvertDocument(
	doc *entity.PriceDocument,
	opts usecase.ConvertOptions,
) (*usecase.ConversionResult, error) {
	result, err := s.convert(doc.Prices(), doc.SourceTimezone(), doc.SourceGranularity(), opts)
	if err != nil {
		return nil, err
	}

	s.logger.Info(context.Background(), "Converted price document",
		domain.NewField("source", doc.Source()),
		domain.NewField("source_timezone", result.SourceTimezone),
		domain.NewField("today_intervals", len(result.Set.Today())),
		domain.NewField("tomorrow_intervals", len(result.Set.Tomorrow())),
		domain.NewField("dropped_points", result.DroppedPoints),
	)
	return result, nil
}

func (s *ConversionServiceImpl) convert(
	prices map[string]float64,
	sourceTimezone string,
	sourceGranularity valueobject.Granularity,
	opts usecase.ConvertOptions,
) (*usecase.ConversionResult, error) {
	sourceLoc, err := s.timezoneResolver.Resolve(sourceTimezone)
	if err != nil {
		return nil, err
	}

	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	points, dropped := s.parsePoints(prices, sourceLoc)

	if sourceGranularity != s.granularity {
		points, err = s.resamplePoints(points, sourceGranularity)
		if err != nil {
			return nil, err
		}
	}

	// Ascending instant order makes the fall-back collision deterministic:
	// both occurrences of the repeated hour project onto the same label and
	// the later instant, the standard-time one, overwrites the first.
	sort.Slice(points, func(i, j int) bool {
		return points[i].instant.Before(points[j].instant)
	})

	localNow := now.In(s.targetTZ)
	todayDate := localNow.Format("2006-01-02")
	tomorrowDate := localNow.AddDate(0, 0, 1).Format("2006-01-02")

	set := entity.NewNormalizedPriceSet()
	for _, p := range points {
		local := p.instant.In(s.targetTZ)
		label := valueobject.IntervalLabelFromTime(local, s.granularity)

		switch local.Format("2006-01-02") {
		case todayDate:
			set.SetToday(label, p.price)
		case tomorrowDate:
			set.SetTomorrow(label, p.price)
		default:
			// Outside today/tomorrow: stale backfill or far-ahead data.
			dropped++
			s.logger.Debug(context.Background(), "Dropped out-of-window price point",
				domain.NewField("instant", p.instant.Format(time.RFC3339)),
				domain.NewField("local_date", local.Format("2006-01-02")),
			)
		}
	}

	todayKind := s.transition.Classify(localNow.Year(), localNow.Month(), localNow.Day(), s.targetTZ)
	localTomorrow := localNow.AddDate(0, 0, 1)
	tomorrowKind := s.transition.Classify(localTomorrow.Year(), localTomorrow.Month(), localTomorrow.Day(), s.targetTZ)

	return &usecase.ConversionResult{
		Set:            set,
		SourceTimezone: sourceLoc.String(),
		TodayKind:      todayKind,
		TomorrowKind:   tomorrowKind,
		DroppedPoints:  dropped,
		TodayComplete:  set.IsCompleteFor(todayKind, s.granularity),
	}, nil
}

// parsePoints parses every raw key against the resolved source location.
// Unparsable keys are dropped with a diagnostic; they never fail the call.
func (s *ConversionServiceImpl) parsePoints(
	prices map[string]float64,
	sourceLoc *time.Location,
) ([]pricePoint, int) {
	points := make([]pricePoint, 0, len(prices))
	dropped := 0
	for raw, price := range prices {
		instant, err := s.timestampService.ParseIn(raw, sourceLoc)
		if err != nil {
			dropped++
			s.logger.Warn(context.Background(), "Dropped unparsable timestamp",
				domain.NewField("raw", raw),
				domain.NewField("error", err.Error()),
			)
			continue
		}
		points = append(points, pricePoint{instant: instant, price: price})
	}
	return points, dropped
}

// resamplePoints converts the parsed points to the target granularity via
// the resample service
func (s *ConversionServiceImpl) resamplePoints(
	points []pricePoint,
	from valueobject.Granularity,
) ([]pricePoint, error) {
	byInstant := make(map[time.Time]float64, len(points))
	for _, p := range points {
		byInstant[p.instant] = p.price
	}

	resampled, err := s.resample.Resample(byInstant, from, s.granularity)
	if err != nil {
		return nil, err
	}

	out := make([]pricePoint, 0, len(resampled))
	for instant, price := range resampled {
		out = append(out, pricePoint{instant: instant, price: price})
	}
	return out, nil
}
