package services

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"withme/internal/models/db_models"
	"withme/internal/models/response_models"
)

// Hand-written fakes for the repository interfaces; they keep state in
// memory and allow injecting errors per call site.

type fakeSurveyRepo struct {
	triggers  []db_models.SurveyTrigger
	responses []db_models.SurveyResponse
	events    []db_models.SurveyEvent

	listErr     error
	responseErr error
	eventErr    error
}

func (f *fakeSurveyRepo) ListActiveTriggers(_ context.Context, eventType string) ([]db_models.SurveyTrigger, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []db_models.SurveyTrigger
	for _, tr := range f.triggers {
		if tr.EventType == eventType && tr.Active {
			out = append(out, tr)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Priority > out[j].Priority })
	return out, nil
}

func (f *fakeSurveyRepo) HasResponseSince(_ context.Context, formID uuid.UUID, sessionID string, since int64) (bool, error) {
	if f.responseErr != nil {
		return false, f.responseErr
	}
	for _, r := range f.responses {
		if r.FormID == formID && r.SessionID == sessionID && r.SubmittedAt >= since {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeSurveyRepo) CreateResponse(_ context.Context, response *db_models.SurveyResponse) error {
	if f.responseErr != nil {
		return f.responseErr
	}
	f.responses = append(f.responses, *response)
	return nil
}

func (f *fakeSurveyRepo) CreateEvent(_ context.Context, event *db_models.SurveyEvent) error {
	if f.eventErr != nil {
		return f.eventErr
	}
	f.events = append(f.events, *event)
	return nil
}

type fakePlaceRepo struct {
	stored map[string]db_models.Place // keyed by source_id

	findErr      error
	batchErr     error
	createErrFor map[string]error // source_id -> error

	findCalls   int
	batchCalls  int
	createCalls int
}

func newFakePlaceRepo() *fakePlaceRepo {
	return &fakePlaceRepo{stored: make(map[string]db_models.Place)}
}

func (f *fakePlaceRepo) FindBySourceRefs(_ context.Context, source string, sourceIDs []string) ([]db_models.Place, error) {
	f.findCalls++
	if f.findErr != nil {
		return nil, f.findErr
	}
	var out []db_models.Place
	for _, id := range sourceIDs {
		if row, ok := f.stored[id]; ok && row.Source == source {
			out = append(out, row)
		}
	}
	return out, nil
}

func (f *fakePlaceRepo) GetBySourceRef(_ context.Context, source, sourceID string) (*db_models.Place, error) {
	if row, ok := f.stored[sourceID]; ok && row.Source == source {
		return &row, nil
	}
	return nil, nil
}

func (f *fakePlaceRepo) CreateBatch(_ context.Context, places []*db_models.Place) error {
	f.batchCalls++
	if f.batchErr != nil {
		return f.batchErr
	}
	for _, p := range places {
		p.ID = uuid.New()
		f.stored[p.SourceID] = *p
	}
	return nil
}

func (f *fakePlaceRepo) Create(_ context.Context, place *db_models.Place) error {
	f.createCalls++
	if err, ok := f.createErrFor[place.SourceID]; ok {
		return err
	}
	place.ID = uuid.New()
	f.stored[place.SourceID] = *place
	return nil
}

func (f *fakePlaceRepo) List(_ context.Context, page, pageSize int) ([]db_models.Place, error) {
	var out []db_models.Place
	for _, row := range f.stored {
		out = append(out, row)
	}
	return out, nil
}

type fakeParser struct {
	list *ParsedList
	err  error
}

func (f *fakeParser) ParseSharedList(_ context.Context, _ string) (*ParsedList, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.list, nil
}

type fakeTripRepo struct {
	trips   map[uuid.UUID]*db_models.Trip
	members []db_models.TripMember
}

func newFakeTripRepo() *fakeTripRepo {
	return &fakeTripRepo{trips: make(map[uuid.UUID]*db_models.Trip)}
}

func (f *fakeTripRepo) Create(_ context.Context, trip *db_models.Trip) (uuid.UUID, error) {
	trip.ID = uuid.New()
	f.trips[trip.ID] = trip
	return trip.ID, nil
}

func (f *fakeTripRepo) Update(_ context.Context, trip *db_models.Trip) error {
	f.trips[trip.ID] = trip
	return nil
}

func (f *fakeTripRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.trips, id)
	return nil
}

func (f *fakeTripRepo) GetByIDWithMembers(_ context.Context, id string) (*db_models.Trip, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}
	trip, ok := f.trips[parsed]
	if !ok {
		return nil, nil
	}
	copied := *trip
	copied.Members = nil
	for _, m := range f.members {
		if m.TripID == trip.ID {
			copied.Members = append(copied.Members, m)
		}
	}
	return &copied, nil
}

func (f *fakeTripRepo) ListByUser(_ context.Context, userID string, page, pageSize int) ([]db_models.Trip, error) {
	var out []db_models.Trip
	for _, trip := range f.trips {
		if trip.CreatedBy.String() == userID {
			out = append(out, *trip)
		}
	}
	return out, nil
}

func (f *fakeTripRepo) AddMember(_ context.Context, member *db_models.TripMember) error {
	f.members = append(f.members, *member)
	return nil
}

func (f *fakeTripRepo) HasMember(_ context.Context, tripID, userID uuid.UUID) (bool, error) {
	for _, m := range f.members {
		if m.TripID == tripID && m.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

type fakeItineraryRepo struct {
	items map[uuid.UUID]*db_models.ItineraryItem
}

func newFakeItineraryRepo() *fakeItineraryRepo {
	return &fakeItineraryRepo{items: make(map[uuid.UUID]*db_models.ItineraryItem)}
}

func (f *fakeItineraryRepo) Create(_ context.Context, item *db_models.ItineraryItem) (uuid.UUID, error) {
	item.ID = uuid.New()
	f.items[item.ID] = item
	return item.ID, nil
}

func (f *fakeItineraryRepo) Update(_ context.Context, item *db_models.ItineraryItem) error {
	f.items[item.ID] = item
	return nil
}

func (f *fakeItineraryRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.items, id)
	return nil
}

func (f *fakeItineraryRepo) GetByID(_ context.Context, id string) (*db_models.ItineraryItem, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}
	item, ok := f.items[parsed]
	if !ok {
		return nil, nil
	}
	copied := *item
	return &copied, nil
}

func (f *fakeItineraryRepo) ListByTrip(_ context.Context, tripID string) ([]db_models.ItineraryItem, error) {
	parsed, err := uuid.Parse(tripID)
	if err != nil {
		return nil, nil
	}
	var out []db_models.ItineraryItem
	for _, item := range f.items {
		if item.TripID == parsed {
			out = append(out, *item)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

type fakeExpenseRepo struct {
	expenses []db_models.Expense
}

func (f *fakeExpenseRepo) Create(_ context.Context, expense *db_models.Expense) (uuid.UUID, error) {
	expense.ID = uuid.New()
	f.expenses = append(f.expenses, *expense)
	return expense.ID, nil
}

func (f *fakeExpenseRepo) ListByTrip(_ context.Context, tripID string) ([]db_models.Expense, error) {
	parsed, err := uuid.Parse(tripID)
	if err != nil {
		return nil, nil
	}
	var out []db_models.Expense
	for _, e := range f.expenses {
		if e.TripID == parsed {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeTravelTimeService struct {
	gotStops []ItineraryStop
	result   response_models.TravelTimes
}

func (f *fakeTravelTimeService) EstimateTravelTimes(_ context.Context, stops []ItineraryStop) (response_models.TravelTimes, error) {
	f.gotStops = stops
	if f.result == nil {
		return response_models.TravelTimes{}, nil
	}
	return f.result, nil
}
