// Package routing implements the travel-matrix collaborator used for ETAs and
// route optimization.
package routing

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"dispatch_service/internal/domain/entities"
	"dispatch_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/location"
	"github.com/aws/aws-sdk-go-v2/service/location/types"
	"golang.org/x/sync/errgroup"
)

var ErrMissingCalculatorName = errors.New("missing ROUTE_CALCULATOR_NAME")
var ErrLocationGatewayNotConfigured = errors.New("aws location gateway not configured")

// matrixAPI is the subset of the Location client the gateway calls.
type matrixAPI interface {
	CalculateRouteMatrix(ctx context.Context, in *location.CalculateRouteMatrixInput, optFns ...func(*location.Options)) (*location.CalculateRouteMatrixOutput, error)
}

// LocationGateway asks an Amazon Location route calculator for two matrices:
// one departing at the requested time (traffic-aware) and one without a
// departure time, which the calculator answers under free-flow conditions.
type LocationGateway struct {
	client         matrixAPI
	calculatorName string
	now            func() time.Time
}

var _ interfaces.IRoutingProvider = (*LocationGateway)(nil)

func NewLocationGateway(awsCfg aws.Config, calculatorName string) (*LocationGateway, error) {
	if calculatorName == "" {
		slog.Error("amazon location calculator name missing")
		return nil, ErrMissingCalculatorName
	}
	slog.Info("amazon location client initialized", "calculator", calculatorName)
	return newLocationGateway(location.NewFromConfig(awsCfg), calculatorName), nil
}

func newLocationGateway(client matrixAPI, calculatorName string) *LocationGateway {
	return &LocationGateway{client: client, calculatorName: calculatorName, now: time.Now}
}

func (g *LocationGateway) TravelMatrix(ctx context.Context, req interfaces.TravelMatrixRequest) (interfaces.TravelMatrix, error) {
	if g == nil || g.client == nil {
		return nil, ErrLocationGatewayNotConfigured
	}
	if len(req.Origins) == 0 || len(req.Destinations) == 0 {
		return interfaces.TravelMatrix{}, nil
	}

	base := location.CalculateRouteMatrixInput{
		CalculatorName:       aws.String(g.calculatorName),
		DeparturePositions:   positions(req.Origins),
		DestinationPositions: positions(req.Destinations),
		TravelMode:           types.TravelModeCar,
		DistanceUnit:         types.DistanceUnitKilometers,
	}
	traffic := base
	// the calculator rejects departure times in the past
	if req.DepartAt.After(g.now()) {
		traffic.DepartureTime = aws.Time(req.DepartAt)
	} else {
		traffic.DepartNow = aws.Bool(true)
	}

	var withTraffic, freeFlow *location.CalculateRouteMatrixOutput
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		out, err := g.client.CalculateRouteMatrix(egCtx, &traffic)
		withTraffic = out
		return err
	})
	eg.Go(func() error {
		out, err := g.client.CalculateRouteMatrix(egCtx, &base)
		freeFlow = out
		return err
	})
	if err := eg.Wait(); err != nil {
		slog.Warn("calculate route matrix failed", "origins", len(req.Origins), "destinations", len(req.Destinations), "error", err)
		return nil, err
	}

	m := make(interfaces.TravelMatrix, len(req.Origins))
	for i := range req.Origins {
		m[i] = make([]interfaces.TravelLeg, len(req.Destinations))
		for j := range req.Destinations {
			m[i][j] = leg(cell(withTraffic, i, j), cell(freeFlow, i, j))
		}
	}
	slog.Debug("route matrix calculated", "origins", len(req.Origins), "destinations", len(req.Destinations))
	return m, nil
}

func positions(ps []entities.GeoPoint) [][]float64 {
	out := make([][]float64, len(ps))
	for i, p := range ps {
		out[i] = []float64{p.Longitude, p.Latitude}
	}
	return out
}

func cell(out *location.CalculateRouteMatrixOutput, i, j int) *types.RouteMatrixEntry {
	if out == nil || i >= len(out.RouteMatrix) || j >= len(out.RouteMatrix[i]) {
		return nil
	}
	return &out.RouteMatrix[i][j]
}

// leg merges the two answers for one pair. A pair without a traffic-aware
// route is not usable; a missing free-flow duration falls back to the traffic
// one.
func leg(traffic, freeFlow *types.RouteMatrixEntry) interfaces.TravelLeg {
	if traffic == nil || traffic.Error != nil || traffic.DurationSeconds == nil {
		return interfaces.TravelLeg{}
	}
	l := interfaces.TravelLeg{
		Minutes: aws.ToFloat64(traffic.DurationSeconds) / 60,
		Km:      aws.ToFloat64(traffic.Distance),
		OK:      true,
	}
	l.MinutesWithoutTraffic = l.Minutes
	if freeFlow != nil && freeFlow.Error == nil && freeFlow.DurationSeconds != nil {
		l.MinutesWithoutTraffic = aws.ToFloat64(freeFlow.DurationSeconds) / 60
	}
	return l
}
