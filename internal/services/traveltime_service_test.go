package services

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"withme/pkg/memcache"
)

func intPtr(v int) *int         { return &v }
func f64Ptr(v float64) *float64 { return &v }

func testStop(id string, day, pos *int, start string, lat, lng *float64) ItineraryStop {
	return ItineraryStop{ID: id, DayNumber: day, Position: pos, StartTime: start, Latitude: lat, Longitude: lng}
}

func coordStop(id string, day, pos int) ItineraryStop {
	return testStop(id, intPtr(day), intPtr(pos), "", f64Ptr(48.85), f64Ptr(2.35))
}

func newTestTravelTimeService(t *testing.T, baseURL string, maxConcurrent int) TravelTimeServiceInterface {
	t.Helper()
	return NewTravelTimeService(TravelTimeConfig{
		AccessToken:    "test-token",
		BaseURL:        baseURL,
		MaxConcurrent:  maxConcurrent,
		RequestTimeout: 5 * time.Second,
		CacheTTL:       time.Hour,
	}, memcache.NewTravelPairCache(), zap.NewNop())
}

func TestBuildSegmentJobs(t *testing.T) {
	t.Run("groups by day and pairs consecutively", func(t *testing.T) {
		stops := []ItineraryStop{
			coordStop("d1-a", 1, 0),
			coordStop("d1-b", 1, 1),
			coordStop("d2-a", 2, 0),
			coordStop("d2-b", 2, 1),
			coordStop("d2-c", 2, 2),
		}
		jobs := buildSegmentJobs(stops)

		// (1 pair on day 1 + 2 pairs on day 2) x 2 modes
		assert.Len(t, jobs, 6)
		for _, job := range jobs {
			assert.NotEqual(t, "d1-b", job.from.ID+"->"+job.to.ID, "no pair across days")
		}
	})

	t.Run("nil day lands in the unscheduled bucket", func(t *testing.T) {
		stops := []ItineraryStop{
			testStop("u1", nil, intPtr(0), "", f64Ptr(1), f64Ptr(1)),
			testStop("u2", nil, intPtr(1), "", f64Ptr(2), f64Ptr(2)),
			coordStop("d1", 1, 0),
		}
		jobs := buildSegmentJobs(stops)

		// Only u1->u2 pairs; d1 is alone on day 1.
		assert.Len(t, jobs, 2)
		for _, job := range jobs {
			assert.Equal(t, "u1", job.from.ID)
			assert.Equal(t, "u2", job.to.ID)
		}
	})

	t.Run("skips pairs missing coordinates", func(t *testing.T) {
		stops := []ItineraryStop{
			coordStop("a", 1, 0),
			testStop("b", intPtr(1), intPtr(1), "", nil, nil),
			coordStop("c", 1, 2),
		}
		jobs := buildSegmentJobs(stops)

		// a->b and b->c are both skipped; nothing remains because the
		// coordinate-less stop sits between the other two.
		assert.Empty(t, jobs)
	})

	t.Run("missing single coordinate also skips", func(t *testing.T) {
		stops := []ItineraryStop{
			coordStop("a", 1, 0),
			testStop("b", intPtr(1), intPtr(1), "", f64Ptr(10), nil),
		}
		assert.Empty(t, buildSegmentJobs(stops))
	})
}

func TestSortStopsInDay(t *testing.T) {
	tests := []struct {
		name  string
		stops []ItineraryStop
		want  []string
	}{
		{
			name: "by position ascending",
			stops: []ItineraryStop{
				testStop("b", nil, intPtr(2), "", nil, nil),
				testStop("a", nil, intPtr(1), "", nil, nil),
			},
			want: []string{"a", "b"},
		},
		{
			name: "nil position sorts last",
			stops: []ItineraryStop{
				testStop("late", nil, nil, "", nil, nil),
				testStop("early", nil, intPtr(5), "", nil, nil),
			},
			want: []string{"early", "late"},
		},
		{
			name: "start time breaks position ties",
			stops: []ItineraryStop{
				testStop("noon", nil, intPtr(1), "12:00", nil, nil),
				testStop("morning", nil, intPtr(1), "09:00", nil, nil),
			},
			want: []string{"morning", "noon"},
		},
		{
			name: "empty start time sorts first",
			stops: []ItineraryStop{
				testStop("timed", nil, nil, "08:00", nil, nil),
				testStop("untimed", nil, nil, "", nil, nil),
			},
			want: []string{"untimed", "timed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sortStopsInDay(tt.stops)
			got := make([]string, 0, len(tt.stops))
			for _, s := range tt.stops {
				got = append(got, s.ID)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEstimateTravelTimes(t *testing.T) {
	t.Run("fewer than two stops yields empty result", func(t *testing.T) {
		svc := newTestTravelTimeService(t, "http://unused.invalid", 4)
		out, err := svc.EstimateTravelTimes(context.Background(), []ItineraryStop{coordStop("only", 1, 0)})
		require.NoError(t, err)
		assert.Empty(t, out)
	})

	t.Run("missing token yields empty result without any requests", func(t *testing.T) {
		var calls int
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
		}))
		defer server.Close()

		svc := NewTravelTimeService(TravelTimeConfig{
			BaseURL:        server.URL,
			MaxConcurrent:  4,
			RequestTimeout: time.Second,
			CacheTTL:       time.Hour,
		}, memcache.NewTravelPairCache(), zap.NewNop())

		out, err := svc.EstimateTravelTimes(context.Background(), []ItineraryStop{
			coordStop("a", 1, 0), coordStop("b", 1, 1),
		})
		require.NoError(t, err)
		assert.Empty(t, out)
		assert.Zero(t, calls)
	})

	t.Run("modes fail independently", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.Contains(r.URL.Path, "/walking/") {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			fmt.Fprint(w, `{"code":"Ok","routes":[{"duration":300}]}`)
		}))
		defer server.Close()

		svc := newTestTravelTimeService(t, server.URL, 4)
		out, err := svc.EstimateTravelTimes(context.Background(), []ItineraryStop{
			coordStop("a", 1, 0), coordStop("b", 1, 1),
		})
		require.NoError(t, err)

		require.Contains(t, out, "a")
		assert.Nil(t, out["a"]["walking"])
		require.NotNil(t, out["a"]["driving"])
		assert.Equal(t, 300, out["a"]["driving"].DurationSeconds)
		assert.Equal(t, "5 min", out["a"]["driving"].FormattedDuration)
	})

	t.Run("no-route response stores nil", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"code":"NoRoute","routes":[]}`)
		}))
		defer server.Close()

		svc := newTestTravelTimeService(t, server.URL, 4)
		out, err := svc.EstimateTravelTimes(context.Background(), []ItineraryStop{
			coordStop("a", 1, 0), coordStop("b", 1, 1),
		})
		require.NoError(t, err)
		require.Contains(t, out, "a")
		assert.Nil(t, out["a"]["walking"])
		assert.Nil(t, out["a"]["driving"])
	})

	t.Run("fan-out stays within the concurrency limit", func(t *testing.T) {
		var mu sync.Mutex
		inFlight, maxInFlight := 0, 0

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			mu.Lock()
			inFlight++
			if inFlight > maxInFlight {
				maxInFlight = inFlight
			}
			mu.Unlock()

			time.Sleep(20 * time.Millisecond)

			mu.Lock()
			inFlight--
			mu.Unlock()

			fmt.Fprint(w, `{"code":"Ok","routes":[{"duration":60}]}`)
		}))
		defer server.Close()

		stops := make([]ItineraryStop, 0, 6)
		for i := 0; i < 6; i++ {
			stops = append(stops, coordStop(fmt.Sprintf("s%d", i), 1, i))
		}

		svc := newTestTravelTimeService(t, server.URL, 2)
		_, err := svc.EstimateTravelTimes(context.Background(), stops)
		require.NoError(t, err)

		mu.Lock()
		defer mu.Unlock()
		assert.LessOrEqual(t, maxInFlight, 2)
	})

	t.Run("second call is served from the pair cache", func(t *testing.T) {
		var mu sync.Mutex
		calls := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			mu.Lock()
			calls++
			mu.Unlock()
			fmt.Fprint(w, `{"code":"Ok","routes":[{"duration":120}]}`)
		}))
		defer server.Close()

		svc := newTestTravelTimeService(t, server.URL, 4)
		stops := []ItineraryStop{coordStop("a", 1, 0), coordStop("b", 1, 1)}

		_, err := svc.EstimateTravelTimes(context.Background(), stops)
		require.NoError(t, err)

		mu.Lock()
		firstCalls := calls
		mu.Unlock()
		assert.Equal(t, 2, firstCalls) // one per mode

		out, err := svc.EstimateTravelTimes(context.Background(), stops)
		require.NoError(t, err)

		mu.Lock()
		assert.Equal(t, firstCalls, calls)
		mu.Unlock()
		require.NotNil(t, out["a"]["driving"])
		assert.Equal(t, "2 min", out["a"]["driving"].FormattedDuration)
	})
}
