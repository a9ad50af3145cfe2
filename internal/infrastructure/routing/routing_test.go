package routing

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"dispatch_service/internal/domain/entities"
	"dispatch_service/internal/domain/geo"
	"dispatch_service/internal/usecase"
	"dispatch_service/internal/usecase/interfaces"
	mock_interfaces "dispatch_service/internal/usecase/interfaces/mocks"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/location"
	"github.com/aws/aws-sdk-go-v2/service/location/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeMatrixAPI struct {
	mu     sync.Mutex
	inputs []*location.CalculateRouteMatrixInput
	err    error
}

// CalculateRouteMatrix answers 10 minutes per destination index, doubled for
// the traffic-aware call.
func (f *fakeMatrixAPI) CalculateRouteMatrix(_ context.Context, in *location.CalculateRouteMatrixInput, _ ...func(*location.Options)) (*location.CalculateRouteMatrixOutput, error) {
	f.mu.Lock()
	f.inputs = append(f.inputs, in)
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	factor := 1.0
	if in.DepartureTime != nil || aws.ToBool(in.DepartNow) {
		factor = 2
	}
	out := &location.CalculateRouteMatrixOutput{RouteMatrix: make([][]types.RouteMatrixEntry, len(in.DeparturePositions))}
	for i := range in.DeparturePositions {
		for j := range in.DestinationPositions {
			e := types.RouteMatrixEntry{
				DurationSeconds: aws.Float64(float64(j+1) * 600 * factor),
				Distance:        aws.Float64(float64(j + 1)),
			}
			if j == 2 {
				e = types.RouteMatrixEntry{Error: &types.RouteMatrixEntryError{Code: types.RouteMatrixErrorCodeRouteNotFound}}
			}
			out.RouteMatrix[i] = append(out.RouteMatrix[i], e)
		}
	}
	return out, nil
}

func TestLocationGateway_TravelMatrix(t *testing.T) {
	api := &fakeMatrixAPI{}
	g := newLocationGateway(api, "calc")
	g.now = func() time.Time { return time.Date(2025, 3, 3, 7, 0, 0, 0, time.UTC) }

	depart := time.Date(2025, 3, 3, 8, 0, 0, 0, time.UTC)
	m, err := g.TravelMatrix(context.Background(), interfaces.TravelMatrixRequest{
		Origins:      []entities.GeoPoint{{Longitude: 1, Latitude: 2}},
		Destinations: []entities.GeoPoint{{}, {}, {}},
		DepartAt:     depart,
	})
	require.NoError(t, err)
	require.Len(t, m, 1)
	require.Len(t, m[0], 3)

	assert.Equal(t, interfaces.TravelLeg{Minutes: 20, MinutesWithoutTraffic: 10, Km: 1, OK: true}, m[0][0])
	assert.Equal(t, 40.0, m[0][1].Minutes)
	assert.False(t, m[0][2].OK)

	require.Len(t, api.inputs, 2)
	var sawDeparture bool
	for _, in := range api.inputs {
		assert.Equal(t, []float64{1, 2}, in.DeparturePositions[0])
		assert.Equal(t, "calc", aws.ToString(in.CalculatorName))
		if in.DepartureTime != nil {
			sawDeparture = true
			assert.True(t, depart.Equal(*in.DepartureTime))
		}
	}
	assert.True(t, sawDeparture)
}

func TestLocationGateway_PastDepartureUsesNow(t *testing.T) {
	api := &fakeMatrixAPI{}
	g := newLocationGateway(api, "calc")
	g.now = func() time.Time { return time.Date(2025, 3, 3, 12, 0, 0, 0, time.UTC) }

	_, err := g.TravelMatrix(context.Background(), interfaces.TravelMatrixRequest{
		Origins:      []entities.GeoPoint{{}},
		Destinations: []entities.GeoPoint{{}},
		DepartAt:     time.Date(2025, 3, 3, 8, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	for _, in := range api.inputs {
		assert.Nil(t, in.DepartureTime)
	}
}

func TestLocationGateway_Errors(t *testing.T) {
	_, err := NewLocationGateway(aws.Config{}, "")
	assert.ErrorIs(t, err, ErrMissingCalculatorName)

	var nilGateway *LocationGateway
	_, err = nilGateway.TravelMatrix(context.Background(), interfaces.TravelMatrixRequest{})
	assert.ErrorIs(t, err, ErrLocationGatewayNotConfigured)

	boom := errors.New("throttled")
	g := newLocationGateway(&fakeMatrixAPI{err: boom}, "calc")
	_, err = g.TravelMatrix(context.Background(), interfaces.TravelMatrixRequest{
		Origins:      []entities.GeoPoint{{}},
		Destinations: []entities.GeoPoint{{}},
	})
	assert.ErrorIs(t, err, boom)
}

func TestStraightLine_TravelMatrix(t *testing.T) {
	s := StraightLine{Estimator: geo.Estimator{AverageSpeedKmh: 60, RoadFactor: 1}}
	m, err := s.TravelMatrix(context.Background(), interfaces.TravelMatrixRequest{
		Origins:      []entities.GeoPoint{{Latitude: 0}},
		Destinations: []entities.GeoPoint{{Latitude: 0}, {Latitude: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, m[0][0].Minutes)
	// one degree of latitude is ~111 km, ~111 minutes at 60 km/h
	assert.InDelta(t, 111.2, m[0][1].Minutes, 0.5)
	assert.True(t, m[0][1].OK)
}

func TestResilient_RetriesTransientErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mock_interfaces.NewMockIRoutingProvider(ctrl)
	want := interfaces.TravelMatrix{{{Minutes: 5, OK: true}}}

	gomock.InOrder(
		next.EXPECT().TravelMatrix(gomock.Any(), gomock.Any()).Return(nil, errors.New("503")),
		next.EXPECT().TravelMatrix(gomock.Any(), gomock.Any()).Return(want, nil),
	)

	r := NewResilient(next, time.Second, 2)
	r.initialInterval = time.Millisecond
	got, err := r.TravelMatrix(context.Background(), interfaces.TravelMatrixRequest{})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestResilient_GivesUp(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mock_interfaces.NewMockIRoutingProvider(ctrl)
	boom := errors.New("bad request")
	next.EXPECT().TravelMatrix(gomock.Any(), gomock.Any()).Return(nil, boom).Times(2)

	r := NewResilient(next, time.Second, 1)
	r.initialInterval = time.Millisecond
	_, err := r.TravelMatrix(context.Background(), interfaces.TravelMatrixRequest{})
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, usecase.ErrExternalTimeout)
}

func TestResilient_TimeoutMapsToExternalTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mock_interfaces.NewMockIRoutingProvider(ctrl)
	next.EXPECT().TravelMatrix(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ interfaces.TravelMatrixRequest) (interfaces.TravelMatrix, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		})

	r := NewResilient(next, 20*time.Millisecond, 3)
	_, err := r.TravelMatrix(context.Background(), interfaces.TravelMatrixRequest{})
	assert.ErrorIs(t, err, usecase.ErrExternalTimeout)
}

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestRouting_LogMessages(t *testing.T) {
	buf := captureLogs(t)

	g := newLocationGateway(&fakeMatrixAPI{err: errors.New("throttled")}, "calc")
	r := NewResilient(g, time.Second, 1)
	r.initialInterval = time.Millisecond
	_, err := r.TravelMatrix(context.Background(), interfaces.TravelMatrixRequest{
		Origins:      []entities.GeoPoint{{}},
		Destinations: []entities.GeoPoint{{}},
	})
	require.Error(t, err)

	var msgs []string
	dec := json.NewDecoder(buf)
	for dec.More() {
		var line struct {
			Msg string `json:"msg"`
		}
		require.NoError(t, dec.Decode(&line))
		msgs = append(msgs, line.Msg)
	}
	assert.Contains(t, msgs, "calculate route matrix failed")
	assert.Contains(t, msgs, "routing attempt failed")
	for _, m := range msgs {
		assert.NotContains(t, m, "[", "log message %q", m)
	}
}
