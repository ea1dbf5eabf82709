// internal/poller/poller.go
package poller

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/watchpost/watchpost/internal/alert"
	"github.com/watchpost/watchpost/internal/history"
	"github.com/watchpost/watchpost/internal/models"
	"github.com/watchpost/watchpost/internal/probe"
	"github.com/watchpost/watchpost/internal/snapshot"
)

const timeFormat = "2006-01-02 15:04:05"

// EndpointSource yields the endpoints to poll. Each cycle works on the list
// as it stood when the cycle began; adds and removes show up the next cycle.
type EndpointSource interface {
	List() []models.Endpoint
}

// Options carries the collaborators and tuning for a Scheduler.
type Options struct {
	Source      EndpointSource
	Client      probe.Client
	History     *history.Book
	Store       *snapshot.Store
	Notifier    alert.Notifier // nil disables alerting
	Interval    time.Duration
	MaxInflight int
	Location    *time.Location // zone capture timestamps are rendered in
}

// Scheduler drives the poll loop: every interval it probes all registered
// endpoints concurrently, reduces the responses to statuses and publishes
// the complete result set as the new snapshot.
type Scheduler struct {
	opts Options
}

// NewScheduler builds a Scheduler from opts, applying defaults for unset
// tuning values.
func NewScheduler(opts Options) *Scheduler {
	if opts.Interval <= 0 {
		opts.Interval = 5 * time.Second
	}
	if opts.MaxInflight <= 0 {
		opts.MaxInflight = 100
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	return &Scheduler{opts: opts}
}

// Run executes poll cycles until ctx is cancelled. The first cycle starts
// immediately so the dashboard is populated right after startup. The
// interval is idle time after each publication, so a cycle that outlasts
// it pushes the next one out instead of triggering it back-to-back.
func (s *Scheduler) Run(ctx context.Context) {
	log.Infof("Poller: starting, interval %s, max %d probes in flight",
		s.opts.Interval, s.opts.MaxInflight)

	s.RunCycle(ctx)

	timer := time.NewTimer(s.opts.Interval)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			log.Infof("Poller: stopping (%v)", ctx.Err())
			return
		case <-timer.C:
			s.RunCycle(ctx)
			timer.Reset(s.opts.Interval)
		}
	}
}

// RunCycle polls every registered endpoint once and publishes the fresh
// snapshot. Results keep registry order regardless of probe completion
// order.
func (s *Scheduler) RunCycle(ctx context.Context) {
	endpoints := s.opts.Source.List()
	results := make([]models.EndpointResult, len(endpoints))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.MaxInflight)
	for i, ep := range endpoints {
		g.Go(func() error {
			results[i] = s.collect(gctx, ep)
			return nil
		})
	}
	_ = g.Wait()

	s.opts.Store.Publish(results)
	log.Debugf("Poller: published snapshot for %d endpoints", len(results))
}

// collect runs one endpoint's probe. Unknown kinds from a hand-edited
// registry file fall back to the metrics path.
func (s *Scheduler) collect(ctx context.Context, ep models.Endpoint) models.EndpointResult {
	if ep.Kind == models.KindHTTPProbe {
		return s.collectProbe(ctx, ep)
	}
	return s.collectMetrics(ctx, ep)
}

func (s *Scheduler) collectMetrics(ctx context.Context, ep models.Endpoint) models.EndpointResult {
	capturedAt := s.timestamp()

	raw, err := s.opts.Client.FetchMetrics(ctx, ep.Address)
	if err != nil {
		var payloadErr *probe.PayloadError
		if errors.As(err, &payloadErr) {
			log.Warnf("Poller: endpoint '%s' returned an unusable payload: %v", ep.Name, err)
			s.alert(ctx, payloadAlert(ep.Name, capturedAt, payloadErr.Err))
			return metricsFailure(ep, models.StatusGreen, capturedAt)
		}
		log.Warnf("Poller: endpoint '%s' is unreachable: %v", ep.Name, err)
		s.alert(ctx, connectivityAlert(ep.Name, capturedAt, err))
		return metricsFailure(ep, models.StatusRed, capturedAt)
	}

	result := ReduceMetrics(ep, raw, capturedAt)
	if result.Overall.IsRed() {
		s.alert(ctx, redCategoriesAlert(result, capturedAt))
	}
	return result
}

func (s *Scheduler) collectProbe(ctx context.Context, ep models.Endpoint) models.EndpointResult {
	capturedAt := s.timestamp()

	code, err := s.opts.Client.FetchStatus(ctx, ep.Address)
	// Failed probes are recorded too, as status code 0, so the history
	// shows the outage.
	s.opts.History.Append(ep.Name, models.AvailabilityRecord{StatusCode: code, CapturedAt: capturedAt})
	records := s.opts.History.Records(ep.Name)

	result := ReduceAvailability(ep, code, err == nil, records, capturedAt)
	if err != nil {
		log.Warnf("Poller: probe '%s' is unreachable: %v", ep.Name, err)
	}
	// Any red observation alerts with its status code, an unreachable
	// target as code 0.
	if result.Availability.IsRed() {
		s.alert(ctx, probeStatusAlert(ep.Name, code, capturedAt))
	}
	return result
}

func (s *Scheduler) timestamp() string {
	return time.Now().In(s.opts.Location).Format(timeFormat)
}
