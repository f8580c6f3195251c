package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"os"
	"sort"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"withme/internal/models/response_models"
	"withme/pkg/memcache"
	"withme/pkg/utils"
)

// ItineraryStop is the estimator's input. Day, position and coordinates are
// optional; stops without coordinates never produce a segment.
type ItineraryStop struct {
	ID        string
	Latitude  *float64
	Longitude *float64
	DayNumber *int
	Position  *int
	StartTime string
}

var travelModes = []string{"walking", "driving"}

type TravelTimeServiceInterface interface {
	EstimateTravelTimes(ctx context.Context, stops []ItineraryStop) (response_models.TravelTimes, error)
}

type TravelTimeConfig struct {
	AccessToken    string
	BaseURL        string
	MaxConcurrent  int
	RequestTimeout time.Duration
	CacheTTL       time.Duration
}

func TravelTimeConfigFromEnv() TravelTimeConfig {
	cfg := TravelTimeConfig{
		AccessToken:    os.Getenv("MAPBOX_ACCESS_TOKEN"),
		BaseURL:        "https://api.mapbox.com",
		MaxConcurrent:  8,
		RequestTimeout: 10 * time.Second,
		CacheTTL:       7 * 24 * time.Hour,
	}
	if v, err := strconv.Atoi(os.Getenv("TRAVELTIME_MAX_CONCURRENT")); err == nil && v > 0 {
		cfg.MaxConcurrent = v
	}
	if v, err := strconv.Atoi(os.Getenv("TRAVELTIME_REQUEST_TIMEOUT_MS")); err == nil && v > 0 {
		cfg.RequestTimeout = time.Duration(v) * time.Millisecond
	}
	return cfg
}

type TravelTimeService struct {
	httpClient *http.Client
	cfg        TravelTimeConfig
	cache      memcache.TravelPairCache
	logger     *zap.Logger
}

func NewTravelTimeService(cfg TravelTimeConfig, cache memcache.TravelPairCache, logger *zap.Logger) TravelTimeServiceInterface {
	return &TravelTimeService{
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
		cfg:        cfg,
		cache:      cache,
		logger:     logger,
	}
}

type segmentJob struct {
	from ItineraryStop
	to   ItineraryStop
	mode string
}

// EstimateTravelTimes computes per-mode routing durations between
// consecutive stops of each day. Stops without a day number land in day 0.
// One failed request only blanks its own (pair, mode) entry.
func (s *TravelTimeService) EstimateTravelTimes(ctx context.Context, stops []ItineraryStop) (response_models.TravelTimes, error) {
	out := response_models.TravelTimes{}
	if len(stops) < 2 {
		return out, nil
	}
	if s.cfg.AccessToken == "" {
		s.logger.Warn("mapbox access token missing, skipping travel time estimation")
		return out, nil
	}

	jobs := buildSegmentJobs(stops)
	if len(jobs) == 0 {
		return out, nil
	}

	var mu sync.Mutex
	store := func(originID, mode string, d *response_models.ModeDuration) {
		mu.Lock()
		defer mu.Unlock()
		if out[originID] == nil {
			out[originID] = make(map[string]*response_models.ModeDuration, len(travelModes))
		}
		out[originID][mode] = d
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.MaxConcurrent)

	for _, job := range jobs {
		job := job
		g.Go(func() error {
			key := memcache.PairKey{Mode: job.mode, From: job.from.ID, To: job.to.ID}
			if edge, ok := s.cache.Get(key); ok {
				store(job.from.ID, job.mode, &response_models.ModeDuration{
					DurationSeconds:   edge.DurationSeconds,
					Mode:              job.mode,
					FormattedDuration: utils.FormatTravelDuration(edge.DurationSeconds),
				})
				return nil
			}

			seconds, err := s.fetchDuration(gctx, job)
			if err != nil {
				s.logger.Warn("travel time lookup failed",
					zap.String("from", job.from.ID),
					zap.String("to", job.to.ID),
					zap.String("mode", job.mode),
					zap.Error(err))
				store(job.from.ID, job.mode, nil)
				return nil
			}

			s.cache.Set(key, memcache.TravelEdge{DurationSeconds: seconds}, s.cfg.CacheTTL)
			store(job.from.ID, job.mode, &response_models.ModeDuration{
				DurationSeconds:   seconds,
				Mode:              job.mode,
				FormattedDuration: utils.FormatTravelDuration(seconds),
			})
			return nil
		})
	}

	// Workers never return errors; failures are recorded as nil entries.
	_ = g.Wait()

	return out, nil
}

// buildSegmentJobs groups stops by day, orders each day and emits one job
// per consecutive coordinate-bearing pair and mode.
func buildSegmentJobs(stops []ItineraryStop) []segmentJob {
	buckets := make(map[int][]ItineraryStop)
	for _, stop := range stops {
		day := 0
		if stop.DayNumber != nil {
			day = *stop.DayNumber
		}
		buckets[day] = append(buckets[day], stop)
	}

	days := make([]int, 0, len(buckets))
	for day := range buckets {
		days = append(days, day)
	}
	sort.Ints(days)

	var jobs []segmentJob
	for _, day := range days {
		group := buckets[day]
		sortStopsInDay(group)

		for i := 0; i+1 < len(group); i++ {
			from, to := group[i], group[i+1]
			if !hasCoordinates(from) || !hasCoordinates(to) {
				continue
			}
			for _, mode := range travelModes {
				jobs = append(jobs, segmentJob{from: from, to: to, mode: mode})
			}
		}
	}
	return jobs
}

// sortStopsInDay orders by position (nil last), then start time. An empty
// start time string sorts first, which lexicographic comparison gives us.
func sortStopsInDay(group []ItineraryStop) {
	sort.SliceStable(group, func(i, j int) bool {
		pi, pj := group[i].Position, group[j].Position
		switch {
		case pi != nil && pj != nil && *pi != *pj:
			return *pi < *pj
		case pi != nil && pj == nil:
			return true
		case pi == nil && pj != nil:
			return false
		}
		return group[i].StartTime < group[j].StartTime
	})
}

func hasCoordinates(s ItineraryStop) bool {
	return s.Latitude != nil && s.Longitude != nil
}

type directionsResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Duration float64 `json:"duration"`
	} `json:"routes"`
}

func (s *TravelTimeService) fetchDuration(ctx context.Context, job segmentJob) (int, error) {
	reqCtx, cancel := context.WithTimeout(ctx, s.cfg.RequestTimeout)
	defer cancel()

	coords := fmt.Sprintf("%f,%f;%f,%f",
		*job.from.Longitude, *job.from.Latitude,
		*job.to.Longitude, *job.to.Latitude)

	u, err := url.Parse(s.cfg.BaseURL)
	if err != nil {
		return 0, err
	}
	u.Path = fmt.Sprintf("/directions/v5/mapbox/%s/%s", job.mode, coords)
	q := url.Values{}
	q.Set("access_token", s.cfg.AccessToken)
	q.Set("overview", "false")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, u.String(), nil)
	if err != nil {
		return 0, err
	}
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("mapbox directions http error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return 0, fmt.Errorf("mapbox directions bad status: %s", resp.Status)
	}

	var payload directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, fmt.Errorf("mapbox decode: %w", err)
	}
	if payload.Code != "Ok" || len(payload.Routes) == 0 {
		return 0, fmt.Errorf("no route: code=%s", payload.Code)
	}

	return int(math.Round(payload.Routes[0].Duration)), nil
}
