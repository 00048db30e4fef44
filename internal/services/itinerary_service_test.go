package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"wayfare/internal/config"
	"wayfare/internal/models/request_models"
	"wayfare/internal/planner"
	mem "wayfare/pkg/memcache"
	"wayfare/pkg/utils"
)

// zeroRand always returns the band floor.
type zeroRand struct{}

func (zeroRand) Intn(n int) int { return 0 }

func plannerConfig() config.Config {
	return config.Config{
		Planner: config.PlannerConfig{
			DefaultProfile: "detailed",
			SessionTTL:     time.Hour,
		},
	}
}

func seedSession(t *testing.T, store mem.SessionStore, withSource bool) string {
	t.Helper()

	raw := []planner.RawPlace{
		{Name: "Palace", Category: "attraction", Latitude: 0.001},
		{Name: "Museum", Category: "museum", Latitude: 0.002},
		{Name: "Garden", Category: "garden", Latitude: 0.003},
		{Name: "Cafe", Category: "cafe", Latitude: 0.004},
		{Name: "Diner", Category: "restaurant", Latitude: 0.005},
		{Name: "Bistro", Category: "restaurant", Latitude: 0.006},
		{Name: "Hotel", Category: "hotel", Latitude: 0.007},
	}
	session := mem.Session{
		ID:          "sess-1",
		Destination: planner.Anchor{Name: "Bangalore"},
		Pool:        planner.BuildPool(raw, planner.Coordinate{}),
		CreatedAt:   time.Now(),
	}
	if withSource {
		source := planner.Anchor{Name: "Mysore", Coordinate: planner.Coordinate{Latitude: 1}}
		session.Source = &source
		session.SourcePool = planner.BuildSourcePool([]planner.RawPlace{
			{Name: "Falls", Category: "waterfall", Latitude: 1.002},
		}, source.Coordinate)
	}
	store.Put(session, time.Hour)
	return session.ID
}

func TestGenerateItinerary(t *testing.T) {
	store := mem.NewPoolSessions()
	id := seedSession(t, store, false)

	svc := NewItineraryService(store, NewCostService(zeroRand{}), zeroRand{}, plannerConfig())

	got, err := svc.Generate(context.Background(), request_models.GenerateItineraryRequest{
		SessionID: id,
		StartDate: "2026-09-01",
		EndDate:   "2026-09-02",
		Budget:    20000,
	})
	if err != nil {
		t.Fatal(err)
	}

	if got.Days != 1 || got.Profile != "detailed" {
		t.Errorf("days=%d profile=%q, want 1/detailed", got.Days, got.Profile)
	}
	if got.Stay == nil || got.Stay.Place.Name != "Hotel" {
		t.Fatalf("stay = %+v, want Hotel", got.Stay)
	}
	// zeroRand pins the stay rate at the 10% floor.
	if want := 20000 * 10.0 / 100; got.Stay.CostPerDay != want {
		t.Errorf("stay cost = %v, want %v", got.Stay.CostPerDay, want)
	}
	if got.NoStayWarning {
		t.Error("unexpected no-stay warning")
	}
	if len(got.DayPlans) != 1 {
		t.Fatalf("day plans = %d, want 1", len(got.DayPlans))
	}
	day := got.DayPlans[0]
	if len(day.Attractions) != 3 {
		t.Errorf("attractions = %d, want 3", len(day.Attractions))
	}
	if len(day.Meals) != 3 || day.MealsMissing != 0 {
		t.Errorf("meals = %d missing %d, want 3/0", len(day.Meals), day.MealsMissing)
	}
	if day.Attractions[0].Place.Category != "Attraction" {
		t.Errorf("display category = %q, want Attraction", day.Attractions[0].Place.Category)
	}
}

func TestGenerateSourceLegByProfile(t *testing.T) {
	store := mem.NewPoolSessions()
	id := seedSession(t, store, true)

	svc := NewItineraryService(store, NewCostService(zeroRand{}), zeroRand{}, plannerConfig())

	req := request_models.GenerateItineraryRequest{
		SessionID: id,
		StartDate: "2026-09-01",
		EndDate:   "2026-09-03",
		Budget:    20000,
	}

	got, err := svc.Generate(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}
	if got.SourceLeg == nil || got.SourceLeg.From != "Mysore" {
		t.Fatalf("source leg = %+v, want leg from Mysore", got.SourceLeg)
	}

	// The classic profile plans destination-only.
	req.Profile = "classic"
	got, err = svc.Generate(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}
	if got.SourceLeg != nil {
		t.Errorf("source leg = %+v, want none under classic profile", got.SourceLeg)
	}
}

func TestGenerateValidation(t *testing.T) {
	store := mem.NewPoolSessions()
	id := seedSession(t, store, false)

	svc := NewItineraryService(store, NewCostService(zeroRand{}), zeroRand{}, plannerConfig())

	cases := []struct {
		name string
		req  request_models.GenerateItineraryRequest
		want error
	}{
		{
			name: "bad start date",
			req:  request_models.GenerateItineraryRequest{SessionID: id, StartDate: "01-09-2026", EndDate: "2026-09-02", Budget: 100},
			want: utils.ErrInvalidInput,
		},
		{
			name: "bad end date",
			req:  request_models.GenerateItineraryRequest{SessionID: id, StartDate: "2026-09-01", EndDate: "tomorrow", Budget: 100},
			want: utils.ErrInvalidInput,
		},
		{
			name: "non-positive budget",
			req:  request_models.GenerateItineraryRequest{SessionID: id, StartDate: "2026-09-01", EndDate: "2026-09-02", Budget: 0},
			want: utils.ErrInvalidInput,
		},
		{
			name: "unknown session",
			req:  request_models.GenerateItineraryRequest{SessionID: "nope", StartDate: "2026-09-01", EndDate: "2026-09-02", Budget: 100},
			want: utils.ErrSessionNotFound,
		},
		{
			name: "same-day trip",
			req:  request_models.GenerateItineraryRequest{SessionID: id, StartDate: "2026-09-01", EndDate: "2026-09-01", Budget: 100},
			want: utils.ErrInvalidTripDuration,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Generate(context.Background(), tc.req)
			if !errors.Is(err, tc.want) {
				t.Errorf("error = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestStayCostPerDay(t *testing.T) {
	svc := NewCostService(zeroRand{})
	if got := svc.StayCostPerDay(50000, 5); got != 100 {
		t.Errorf("cost = %v, want 50000*10%%/5 = 100", got)
	}
	if got := svc.StayCostPerDay(50000, 0); got != 0 {
		t.Errorf("cost for zero days = %v, want 0", got)
	}
}
