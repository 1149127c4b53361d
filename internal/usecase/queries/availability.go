package queries

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"inkslot/internal/domain/artist"
	"inkslot/internal/domain/availability"
	"inkslot/internal/domain/calendar"
	"inkslot/internal/domain/reservation"
	"inkslot/internal/domain/schedule"
	"inkslot/internal/infra"
	"inkslot/internal/pkg/clock"
	"inkslot/internal/pkg/config"
	"inkslot/internal/pkg/errs"
	"inkslot/internal/usecase/shared"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	minStepMinutes = 5
	maxStepMinutes = 480
)

type AvailabilityInput struct {
	ArtistID uuid.UUID
	// From defaults to now, To to From plus the default window.
	From      *time.Time
	To        *time.Time
	ServiceID *uuid.UUID
	// DurationMinutes is required when ServiceID is nil.
	DurationMinutes *int
	StepMinutes     *int
}

type AvailabilityQueries interface {
	GetAvailability(ctx context.Context, in AvailabilityInput) (*AvailabilityView, error)
}

// AvailabilityReads is the read side needed to compute availability.
type AvailabilityReads interface {
	ArtistByID(ctx context.Context, id uuid.UUID) (*artist.Artist, error)
	OfferingByID(ctx context.Context, id uuid.UUID) (*artist.Offering, error)
	WorkingHours(ctx context.Context, artistID uuid.UUID) ([]schedule.Rule, error)
	ActiveReservationsInRange(ctx context.Context, artistID uuid.UUID, window calendar.Interval) ([]calendar.Interval, error)
}

type availabilityQueriesImpl struct {
	reads   AvailabilityReads
	embed   availability.EmbedProvider
	cache   shared.AvailabilityCache
	clock   clock.Clock
	booking config.BookingConfig
}

func NewAvailabilityQueries(
	reads AvailabilityReads,
	embed availability.EmbedProvider,
	cache shared.AvailabilityCache,
	clk clock.Clock,
	cfg config.Config,
) AvailabilityQueries {
	return &availabilityQueriesImpl{
		reads:   reads,
		embed:   embed,
		cache:   cache,
		clock:   clk,
		booking: cfg.Booking,
	}
}

type availabilityPlan struct {
	window   calendar.Interval
	duration time.Duration
	step     time.Duration
}

func (p availabilityPlan) cacheKey(serviceID *uuid.UUID) string {
	svc := "-"
	if serviceID != nil {
		svc = serviceID.String()
	}
	return fmt.Sprintf("%d:%d:%s:%d:%d",
		p.window.Start().Unix(), p.window.End().Unix(), svc,
		int(p.duration/time.Minute), int(p.step/time.Minute))
}

func (q *availabilityQueriesImpl) GetAvailability(ctx context.Context, in AvailabilityInput) (*AvailabilityView, error) {
	now := q.clock.Now()
	window, err := q.resolveWindow(in, now)
	if err != nil {
		return nil, err
	}
	if err := validateOverrides(in); err != nil {
		return nil, err
	}

	art, err := q.reads.ArtistByID(ctx, in.ArtistID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrArtistNotFound
		}
		return nil, errs.Mark(err, ErrQueryFailed)
	}

	plan, err := q.plan(ctx, art, in, window)
	if err != nil {
		return nil, err
	}

	key := plan.cacheKey(in.ServiceID)
	cached, version, cacheable := q.fromCache(ctx, art.ID(), key)
	if cached != nil {
		return cached, nil
	}

	slots, err := q.compute(ctx, art, plan, now)
	if err != nil {
		return nil, err
	}

	view := buildAvailabilityView(art, plan, slots)
	if cacheable {
		q.toCache(ctx, art.ID(), version, key, view)
	}
	return view, nil
}

func (q *availabilityQueriesImpl) resolveWindow(in AvailabilityInput, now time.Time) (calendar.Interval, error) {
	from := now.Truncate(time.Minute)
	if in.From != nil {
		from = *in.From
	}
	to := from.Add(q.booking.DefaultWindow())
	if in.To != nil {
		to = *in.To
	}
	if !to.After(from) || to.Sub(from) > q.booking.MaxWindow() {
		return calendar.Interval{}, ErrInvalidQuery
	}
	window, err := calendar.NewInterval(from, to)
	if err != nil {
		return calendar.Interval{}, errs.Mark(err, ErrInvalidQuery)
	}
	return window, nil
}

func validateOverrides(in AvailabilityInput) error {
	if in.DurationMinutes != nil {
		if err := reservation.ValidateDuration(time.Duration(*in.DurationMinutes) * time.Minute); err != nil {
			return errs.Mark(err, ErrInvalidQuery)
		}
	} else if in.ServiceID == nil {
		return ErrInvalidQuery
	}
	if in.StepMinutes != nil && (*in.StepMinutes < minStepMinutes || *in.StepMinutes > maxStepMinutes) {
		return ErrInvalidQuery
	}
	return nil
}

func (q *availabilityQueriesImpl) plan(ctx context.Context, art *artist.Artist, in AvailabilityInput, window calendar.Interval) (availabilityPlan, error) {
	var requested *time.Duration
	if in.DurationMinutes != nil {
		d := time.Duration(*in.DurationMinutes) * time.Minute
		requested = &d
	}

	p := availabilityPlan{window: window, step: artist.DefaultServiceStep}
	if in.ServiceID == nil {
		p.duration = *requested
	} else {
		offering, err := q.reads.OfferingByID(ctx, *in.ServiceID)
		switch {
		case err != nil && infra.IsKind(err, infra.KindNotFound):
			return p, ErrServiceNotFound
		case err != nil:
			return p, errs.Mark(err, ErrQueryFailed)
		case !offering.BelongsTo(art.ID()):
			return p, ErrServiceNotFound
		case !offering.IsOffered():
			return p, ErrServiceUnavailable
		}
		p.duration = offering.DurationFor(requested)
		p.step = offering.SlotStep()
	}
	if in.StepMinutes != nil {
		p.step = time.Duration(*in.StepMinutes) * time.Minute
	}
	return p, nil
}

// compute reads working hours and active reservations concurrently and joins
// them before subtracting booked ranges.
func (q *availabilityQueriesImpl) compute(ctx context.Context, art *artist.Artist, p availabilityPlan, now time.Time) ([]availability.Slot, error) {
	var (
		rules  []schedule.Rule
		booked []calendar.Interval
	)
	g, gctx := errgroup.WithContext(ctx)
	if art.SlotSource() == artist.SlotSourceNative {
		g.Go(func() error {
			var err error
			rules, err = q.reads.WorkingHours(gctx, art.ID())
			return err
		})
	}
	g.Go(func() error {
		var err error
		booked, err = q.reads.ActiveReservationsInRange(gctx, art.ID(), p.window)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}

	var src availability.Source
	if art.SlotSource() == artist.SlotSourceEmbed {
		ref := art.Embed()
		src = availability.NewEmbedSource(q.embed, ref.Username, ref.EventType, art.Location())
	} else {
		src = availability.NewWorkingHoursSource(schedule.NewWeeklySchedule(rules, art.Location()))
	}

	slots, err := availability.Compute(ctx, src, availability.Request{
		Window:    p.window,
		Duration:  p.duration,
		Step:      p.step,
		LeadTime:  art.LeadTime(),
		Now:       now,
		Conflicts: availability.NewConflictIndex(booked),
	})
	if err != nil {
		if src.Name() == string(artist.SlotSourceEmbed) {
			slog.ErrorContext(ctx, "embed slot source failed",
				"artist_id", art.ID().String(), "error", err.Error())
			return nil, errs.Mark(err, ErrSlotSourceUnavailable)
		}
		return nil, errs.Mark(err, ErrInvalidQuery)
	}
	return slots, nil
}

func buildAvailabilityView(art *artist.Artist, p availabilityPlan, slots []availability.Slot) *AvailabilityView {
	loc := art.Location()
	view := &AvailabilityView{
		ArtistID:        art.ID(),
		TimeZone:        loc.String(),
		Source:          art.SlotSource().String(),
		From:            p.window.Start().UTC(),
		To:              p.window.End().UTC(),
		DurationMinutes: int(p.duration / time.Minute),
		StepMinutes:     int(p.step / time.Minute),
		Slots:           make([]SlotView, 0, len(slots)),
	}
	for _, s := range slots {
		start, end := s.Start.In(loc), s.End.In(loc)
		view.Slots = append(view.Slots, SlotView{
			Date:      start.Format(time.DateOnly),
			StartTime: start.Format("15:04"),
			EndTime:   end.Format("15:04"),
			IsoStart:  s.Start.UTC(),
			Available: true,
		})
	}
	return view
}

// fromCache returns the cached view on a hit. On a miss it returns the cache
// version to store the computed view under; cacheable is false when the
// version could not be read.
func (q *availabilityQueriesImpl) fromCache(ctx context.Context, artistID uuid.UUID, key string) (view *AvailabilityView, version int64, cacheable bool) {
	raw, version, ok, err := q.cache.Get(ctx, artistID, key)
	if err != nil {
		slog.WarnContext(ctx, "availability cache read failed",
			"artist_id", artistID.String(), "error", err.Error())
		return nil, 0, false
	}
	if !ok {
		return nil, version, true
	}
	var cached AvailabilityView
	if err := json.Unmarshal(raw, &cached); err != nil {
		slog.WarnContext(ctx, "availability cache entry is corrupt",
			"artist_id", artistID.String(), "error", err.Error())
		return nil, version, true
	}
	return &cached, version, true
}

func (q *availabilityQueriesImpl) toCache(ctx context.Context, artistID uuid.UUID, version int64, key string, view *AvailabilityView) {
	raw, err := json.Marshal(view)
	if err != nil {
		return
	}
	if err := q.cache.Set(ctx, artistID, version, key, raw); err != nil {
		slog.WarnContext(ctx, "availability cache write failed",
			"artist_id", artistID.String(), "error", err.Error())
	}
}
