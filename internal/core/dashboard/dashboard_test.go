package dashboard

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weatherdash.app/internal/adapters/external"
	"weatherdash.app/internal/adapters/infrastructure"
	"weatherdash.app/internal/core/forecast"
	"weatherdash.app/internal/core/history"
	"weatherdash.app/internal/mocks"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

type stubForecaster struct {
	mu      sync.Mutex
	calls   []string
	results map[string]*forecast.QueryResult
	err     error
	block   chan struct{}
	started chan struct{}
}

func (s *stubForecaster) Query(ctx context.Context, request forecast.QueryRequest) (*forecast.QueryResult, error) {
	s.mu.Lock()
	s.calls = append(s.calls, request.Location)
	s.mu.Unlock()

	if s.started != nil {
		s.started <- struct{}{}
	}
	if s.block != nil {
		<-s.block
	}
	if s.err != nil {
		return nil, s.err
	}
	if r, ok := s.results[request.Location]; ok {
		return r, nil
	}
	return &forecast.QueryResult{RawText: "no data"}, nil
}

func (s *stubForecaster) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.calls...)
}

func result(location, temp, condition string) *forecast.QueryResult {
	return &forecast.QueryResult{
		Data: &forecast.WeatherRecord{
			Location: location,
			Current:  forecast.CurrentConditions{Temp: temp, Condition: condition},
		},
		RawText: "```json ... ```",
		Sources: []forecast.SourceRef{},
	}
}

func newHistoryStore(t *testing.T, kv ports.KeyValueStore) *history.Store {
	t.Helper()

	config := mocks.NewConfigProvider(t)
	config.EXPECT().GetHistoryConfig().Return(ports.HistoryConfig{StoreType: "memory", Key: "weather_history"}).Maybe()

	store, err := history.NewStore(history.StoreDependencies{
		KV:      kv,
		Config:  config,
		Logger:  discardLogger(),
		Metrics: infrastructure.NewPrometheusMetricsCollector(prometheus.NewRegistry()),
	})
	require.NoError(t, err)
	return store
}

func discardLogger() ports.Logger {
	return infrastructure.NewSlogLoggerAdapter(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newDashboard(t *testing.T, f Forecaster, h HistoryStore) *Dashboard {
	t.Helper()

	d, err := New(Dependencies{Forecaster: f, History: h, Logger: discardLogger()})
	require.NoError(t, err)
	return d
}

func TestNew_RequiresDependencies(t *testing.T) {
	_, err := New(Dependencies{})
	assert.True(t, errors.IsValidationError(err))
}

func TestDashboard_Search_RecordsHistory(t *testing.T) {
	f := &stubForecaster{results: map[string]*forecast.QueryResult{
		"Paris": result("Paris, France", "18°C", "Partly Cloudy"),
	}}
	store := newHistoryStore(t, external.NewMemoryKeyValueStore())
	d := newDashboard(t, f, store)

	res, err := d.Search(context.Background(), "Paris")

	require.NoError(t, err)
	assert.Equal(t, "Paris, France", res.Data.Location)
	assert.Same(t, res, d.Current())
	require.Len(t, d.History(), 1)
	assert.Equal(t, "Paris, France", d.History()[0].Location)
	assert.False(t, d.IsBusy())
}

func TestDashboard_Search_NoDataSkipsHistory(t *testing.T) {
	f := &stubForecaster{}
	store := newHistoryStore(t, external.NewMemoryKeyValueStore())
	d := newDashboard(t, f, store)

	res, err := d.Search(context.Background(), "Atlantis")

	require.NoError(t, err)
	assert.Nil(t, res.Data)
	assert.Equal(t, "no data", res.RawText)
	assert.Empty(t, d.History())
}

func TestDashboard_Search_FailureKeepsCurrent(t *testing.T) {
	f := &stubForecaster{results: map[string]*forecast.QueryResult{"Rome": result("Rome, Italy", "25°C", "Sunny")}}
	d := newDashboard(t, f, newHistoryStore(t, external.NewMemoryKeyValueStore()))

	first, err := d.Search(context.Background(), "Rome")
	require.NoError(t, err)

	f.err = errors.NewExternalAPIError("weather request failed", fmt.Errorf("boom"))
	_, err = d.Search(context.Background(), "Oslo")

	assert.True(t, errors.IsExternalAPIError(err))
	assert.Same(t, first, d.Current())
	assert.Len(t, d.History(), 1)
	assert.False(t, d.IsBusy())
}

func TestDashboard_Search_HistoryFailureDoesNotFailQuery(t *testing.T) {
	kv := mocks.NewKeyValueStore(t)
	kv.EXPECT().Set(mock.Anything, "weather_history", mock.Anything, mock.Anything).
		Return(errors.NewDatabaseError("write failed", nil)).Once()
	f := &stubForecaster{results: map[string]*forecast.QueryResult{"Lima": result("Lima, Peru", "22°C", "Clear")}}
	d := newDashboard(t, f, newHistoryStore(t, kv))

	res, err := d.Search(context.Background(), "Lima")

	require.NoError(t, err)
	assert.NotNil(t, res.Data)
}

func TestDashboard_Search_EmptyLocation(t *testing.T) {
	f := &stubForecaster{}
	d := newDashboard(t, f, newHistoryStore(t, external.NewMemoryKeyValueStore()))

	_, err := d.Search(context.Background(), "  ")

	assert.True(t, errors.IsValidationError(err))
	assert.Empty(t, f.Calls())
}

func TestDashboard_Search_RejectsWhileBusy(t *testing.T) {
	f := &stubForecaster{
		block:   make(chan struct{}),
		started: make(chan struct{}, 1),
	}
	d := newDashboard(t, f, newHistoryStore(t, external.NewMemoryKeyValueStore()))

	done := make(chan error, 1)
	go func() {
		_, err := d.Search(context.Background(), "Paris")
		done <- err
	}()
	<-f.started

	assert.True(t, d.IsBusy())
	_, err := d.Search(context.Background(), "London")
	assert.True(t, errors.IsBusyError(err))

	_, err = d.SearchCoordinates(context.Background(), Coordinates{Latitude: ptr(1), Longitude: ptr(2)})
	assert.True(t, errors.IsBusyError(err))

	close(f.block)
	require.NoError(t, <-done)
	assert.False(t, d.IsBusy())
	assert.Equal(t, []string{"Paris"}, f.Calls())
}

func ptr(v float64) *float64 { return &v }

func TestDashboard_SearchCoordinates(t *testing.T) {
	t.Run("FormatsLatLon", func(t *testing.T) {
		f := &stubForecaster{}
		d := newDashboard(t, f, newHistoryStore(t, external.NewMemoryKeyValueStore()))

		_, err := d.SearchCoordinates(context.Background(), Coordinates{Latitude: ptr(48.8566), Longitude: ptr(2.3522)})

		require.NoError(t, err)
		assert.Equal(t, []string{"48.8566, 2.3522"}, f.Calls())
	})

	t.Run("WholeNumbers", func(t *testing.T) {
		f := &stubForecaster{}
		d := newDashboard(t, f, newHistoryStore(t, external.NewMemoryKeyValueStore()))

		_, err := d.SearchCoordinates(context.Background(), Coordinates{Latitude: ptr(-33), Longitude: ptr(151)})

		require.NoError(t, err)
		assert.Equal(t, []string{"-33, 151"}, f.Calls())
	})

	t.Run("Denied", func(t *testing.T) {
		f := &stubForecaster{results: map[string]*forecast.QueryResult{"Rome": result("Rome", "25°C", "Sunny")}}
		d := newDashboard(t, f, newHistoryStore(t, external.NewMemoryKeyValueStore()))
		current, err := d.Search(context.Background(), "Rome")
		require.NoError(t, err)

		_, err = d.SearchCoordinates(context.Background(), Coordinates{Error: "User denied Geolocation"})

		require.Error(t, err)
		assert.True(t, errors.IsGeolocationError(err))
		var appErr *errors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, GeolocationDeniedMessage, appErr.Message)
		assert.Same(t, current, d.Current())
		assert.Equal(t, []string{"Rome"}, f.Calls())
	})

	t.Run("MissingCoordinates", func(t *testing.T) {
		d := newDashboard(t, &stubForecaster{}, newHistoryStore(t, external.NewMemoryKeyValueStore()))

		_, err := d.SearchCoordinates(context.Background(), Coordinates{Latitude: ptr(10)})

		assert.True(t, errors.IsGeolocationError(err))
		assert.False(t, d.IsBusy())
	})
}

func TestDashboard_Replay(t *testing.T) {
	f := &stubForecaster{results: map[string]*forecast.QueryResult{
		"tokyo":        result("Tokyo, Japan", "20°C", "Clear"),
		"Tokyo, Japan": result("Tokyo, Japan", "21°C", "Sunny"),
	}}
	d := newDashboard(t, f, newHistoryStore(t, external.NewMemoryKeyValueStore()))

	_, err := d.Search(context.Background(), "tokyo")
	require.NoError(t, err)
	id := d.History()[0].ID

	res, err := d.Replay(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, "21°C", res.Data.Current.Temp)
	assert.Equal(t, []string{"tokyo", "Tokyo, Japan"}, f.Calls())
	require.Len(t, d.History(), 1)
	assert.Equal(t, "21°C", d.History()[0].Temp)

	_, err = d.Replay(context.Background(), "unknown")
	assert.True(t, errors.IsNotFoundError(err))
}

func TestDashboard_ClearHistory(t *testing.T) {
	f := &stubForecaster{results: map[string]*forecast.QueryResult{"Rome": result("Rome", "25°C", "Sunny")}}
	d := newDashboard(t, f, newHistoryStore(t, external.NewMemoryKeyValueStore()))
	_, err := d.Search(context.Background(), "Rome")
	require.NoError(t, err)

	require.NoError(t, d.ClearHistory(context.Background()))
	assert.Empty(t, d.History())

	kv := mocks.NewKeyValueStore(t)
	kv.EXPECT().Delete(mock.Anything, "weather_history").Return(errors.NewExternalAPIError("redis delete operation failed", nil)).Once()
	failing := newDashboard(t, f, newHistoryStore(t, kv))

	err = failing.ClearHistory(context.Background())
	assert.True(t, errors.IsDatabaseError(err))
}
