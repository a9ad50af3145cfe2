package usecase

import (
	"context"
	"log/slog"
	"math"
	"strings"
	"time"

	"dispatch_service/internal/domain/entities"
	"dispatch_service/internal/domain/geo"
	"dispatch_service/internal/infrastructure/metrics"
	"dispatch_service/internal/usecase/interfaces"
	"dispatch_service/internal/usecase/optimizer"

	"golang.org/x/sync/errgroup"
)

// IRouteUseCase orders a technician's day to minimize drive time.
type IRouteUseCase interface {
	Optimize(ctx context.Context, businessID, techID, date string, apply bool) (entities.RoutePlan, error)
}

type RouteOptions struct {
	Estimator     geo.Estimator
	MaxIterations int
}

type RouteUseCase struct {
	schedule IScheduleUseCase
	techs    interfaces.ITechnicianRepository
	jobs     interfaces.IJobCatalog
	routing  interfaces.IRoutingProvider
	opts     RouteOptions
	now      func() time.Time
}

var _ IRouteUseCase = (*RouteUseCase)(nil)

func NewRouteUseCase(
	schedule IScheduleUseCase,
	techs interfaces.ITechnicianRepository,
	jobs interfaces.IJobCatalog,
	routing interfaces.IRoutingProvider,
	opts RouteOptions,
) *RouteUseCase {
	return &RouteUseCase{
		schedule: schedule,
		techs:    techs,
		jobs:     jobs,
		routing:  routing,
		opts:     opts,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// routeStop is a scheduled entry with its resolved job.
type routeStop struct {
	entry    entities.ScheduleEntry
	job      entities.JobDetails
	rank     int
	node     int
	hasPoint bool
}

type leg struct {
	minutes   float64
	km        float64
	estimated bool
}

// Optimize only reorders entries that have not started. In-progress and
// completed entries keep their place at the front of the day. When the
// routing provider fails the input order is returned with Degraded set.
func (u *RouteUseCase) Optimize(ctx context.Context, businessID, techID, date string, apply bool) (entities.RoutePlan, error) {
	businessID, techID = strings.TrimSpace(businessID), strings.TrimSpace(techID)
	entries, err := u.schedule.ListDay(ctx, businessID, techID, date)
	if err != nil {
		return entities.RoutePlan{}, err
	}
	tech, err := u.techs.GetByID(ctx, businessID, techID)
	if err != nil {
		return entities.RoutePlan{}, err
	}
	if tech.ID == "" || tech.BusinessID != businessID {
		return entities.RoutePlan{}, ErrTechnicianNotFound
	}

	plan := entities.RoutePlan{BusinessID: businessID, TechID: techID, Date: date, Stops: []entities.RouteStop{}}
	var fixed []entities.ScheduleEntry
	var stops []*routeStop
	for _, e := range entries {
		if !e.Blocking() {
			continue
		}
		if e.Status == entities.ScheduleEntryStatusScheduled {
			stops = append(stops, &routeStop{entry: e})
		} else {
			fixed = append(fixed, e)
		}
	}
	// Fixed entries always lead the day.
	for i, s := range stops {
		s.rank = len(fixed) + i + 1
	}
	if len(stops) == 0 {
		return plan, nil
	}

	if err := u.resolveJobs(ctx, businessID, stops); err != nil {
		return entities.RoutePlan{}, err
	}

	var nodes []entities.GeoPoint
	if tech.Location != nil && date == u.now().Format(entities.DateLayout) {
		nodes = append(nodes, tech.Location.GeoPoint)
		plan.StartsFromLocation = true
	}
	routable := false
	for _, s := range stops {
		if s.job.Location != nil {
			s.node = len(nodes)
			s.hasPoint = true
			nodes = append(nodes, *s.job.Location)
		}
		if s.job.Vertical.Capabilities().RouteOptimization {
			routable = true
		}
	}

	legs, degraded := u.legs(ctx, nodes, departure(date, stops[0].entry.StartTime), routable)
	plan.Degraded = degraded

	cost := make([][]float64, len(nodes))
	for i := range legs {
		cost[i] = make([]float64, len(nodes))
		for j := range legs[i] {
			cost[i][j] = legs[i][j].minutes
		}
	}
	located := make([]*routeStop, 0, len(stops))
	var unlocated []*routeStop
	for _, s := range stops {
		if s.hasPoint {
			located = append(located, s)
		} else {
			unlocated = append(unlocated, s)
		}
	}

	problem := optimizer.Problem{Cost: cost, HasDepot: plan.StartsFromLocation, MaxIterations: u.opts.MaxIterations}
	var res optimizer.Result
	if routable && !degraded {
		res = optimizer.Solve(problem)
	}

	sequence := stops
	if res.Reordered {
		byNode := make(map[int]*routeStop, len(located))
		for _, s := range located {
			byNode[s.node] = s
		}
		sequence = make([]*routeStop, 0, len(stops))
		for _, n := range res.Order {
			sequence = append(sequence, byNode[n])
		}
		sequence = append(sequence, unlocated...)
	}
	naiveTotal := optimizer.PathCost(problem, nodeOrder(located))
	optimizedTotal := naiveTotal
	if res.Reordered {
		optimizedTotal = res.Total
	}
	plan.Iterations = res.Iterations

	plan.Stops = u.timeline(sequence, legs, plan.StartsFromLocation, len(fixed))
	plan.OriginalTotalMinutes = round1(naiveTotal)
	plan.OptimizedTotalMinutes = round1(optimizedTotal)
	plan.TimeSavedMinutes = round1(math.Max(naiveTotal-optimizedTotal, 0))
	metrics.RouteMinutesSaved.Observe(plan.TimeSavedMinutes)

	slog.Info("route optimized",
		"business_id", businessID, "tech_id", techID, "date", date, "stops", len(stops),
		"saved_minutes", plan.TimeSavedMinutes, "degraded", plan.Degraded, "reordered", plan.Reordered())

	if apply && plan.Reordered() {
		jobIDs := make([]string, 0, len(fixed)+len(plan.Stops))
		for _, e := range fixed {
			jobIDs = append(jobIDs, e.JobID)
		}
		for _, s := range plan.Stops {
			jobIDs = append(jobIDs, s.JobID)
		}
		if _, err := u.schedule.Reorder(ctx, businessID, techID, date, jobIDs); err != nil {
			return entities.RoutePlan{}, err
		}
		plan.Applied = true
	}
	return plan, nil
}

func (u *RouteUseCase) resolveJobs(ctx context.Context, businessID string, stops []*routeStop) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for _, s := range stops {
		g.Go(func() error {
			job, err := u.jobs.GetJob(gctx, businessID, s.entry.JobID)
			if err != nil {
				return err
			}
			if job.BusinessID == businessID {
				s.job = job
			}
			return nil
		})
	}
	return g.Wait()
}

// legs fills the travel matrix between nodes. Cells the provider could not
// answer, or every cell when it failed, fall back to the straight-line
// estimate. degraded reports a provider failure.
func (u *RouteUseCase) legs(ctx context.Context, nodes []entities.GeoPoint, departAt time.Time, useProvider bool) ([][]leg, bool) {
	out := make([][]leg, len(nodes))
	for i := range nodes {
		out[i] = make([]leg, len(nodes))
		for j := range nodes {
			if i == j {
				continue
			}
			m, km := u.opts.Estimator.Estimate(nodes[i], nodes[j])
			out[i][j] = leg{minutes: m, km: km, estimated: true}
		}
	}
	if len(nodes) < 2 || !useProvider || u.routing == nil {
		return out, false
	}

	matrix, err := u.routing.TravelMatrix(ctx, interfaces.TravelMatrixRequest{
		Origins:      nodes,
		Destinations: nodes,
		DepartAt:     departAt,
	})
	if err != nil {
		slog.Warn("routing provider unavailable, keeping input order", "nodes", len(nodes), "error", err)
		return out, true
	}
	for i := range out {
		for j := range out[i] {
			if i == j || i >= len(matrix) || j >= len(matrix[i]) || !matrix[i][j].OK {
				continue
			}
			out[i][j] = leg{minutes: matrix[i][j].Minutes, km: matrix[i][j].Km}
		}
	}
	return out, false
}

// timeline computes legs and advisory arrival times along the sequence. The
// first stop is assumed to be reached on time.
func (u *RouteUseCase) timeline(seq []*routeStop, legs [][]leg, hasDepot bool, offset int) []entities.RouteStop {
	out := make([]entities.RouteStop, 0, len(seq))
	prev := -1
	if hasDepot {
		prev = 0
	}
	var depart entities.ClockTime
	for k, s := range seq {
		rs := entities.RouteStop{
			EntryID:        s.entry.ID,
			JobID:          s.entry.JobID,
			Order:          offset + k + 1,
			OriginalOrder:  s.rank,
			ScheduledStart: s.entry.StartTime,
			LegEstimated:   true,
		}
		if s.hasPoint && prev >= 0 {
			l := legs[prev][s.node]
			rs.LegMinutes, rs.LegKm, rs.LegEstimated = round1(l.minutes), round1(l.km), l.estimated
		}
		start, _ := entities.ParseClock(s.entry.StartTime)
		arrival := start
		if k > 0 {
			arrival = depart + entities.ClockTime(math.Round(rs.LegMinutes))
		}
		rs.EstimatedArrival = arrival.String()
		if arrival > start {
			rs.LateMinutes = int(arrival - start)
		}
		depart = max(arrival, start).Add(s.entry.EstimatedHours)
		if s.hasPoint {
			prev = s.node
		}
		out = append(out, rs)
	}
	return out
}

func nodeOrder(located []*routeStop) []int {
	out := make([]int, len(located))
	for i, s := range located {
		out[i] = s.node
	}
	return out
}

// departure approximates the day's first departure for traffic lookups.
// Wall-clock times carry no zone, so UTC is used.
func departure(date, start string) time.Time {
	d, err := entities.ParseDate(date)
	if err != nil {
		return time.Time{}
	}
	c, err := entities.ParseClock(start)
	if err != nil {
		return d
	}
	return d.Add(time.Duration(c) * time.Minute)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
