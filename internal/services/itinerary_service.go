package services

import (
	"context"
	"time"

	"wayfare/internal/config"
	"wayfare/internal/models/request_models"
	"wayfare/internal/models/response_models"
	"wayfare/internal/planner"
	mem "wayfare/pkg/memcache"
	"wayfare/pkg/utils"
)

const dateLayout = "2006-01-02"

type ItineraryServiceInterface interface {
	Generate(ctx context.Context, req request_models.GenerateItineraryRequest) (*response_models.Itinerary, error)
}

type ItineraryService struct {
	sessions       mem.SessionStore
	cost           CostServiceInterface
	rng            planner.RandSource
	defaultProfile planner.Profile
}

func NewItineraryService(
	sessions mem.SessionStore,
	cost CostServiceInterface,
	rng planner.RandSource,
	cfg config.Config,
) ItineraryServiceInterface {
	return &ItineraryService{
		sessions:       sessions,
		cost:           cost,
		rng:            rng,
		defaultProfile: planner.ParseProfile(cfg.Planner.DefaultProfile),
	}
}

// Generate rebuilds the itinerary from the session's pools. Each call starts
// from a fresh visited set, so regenerations are independent.
func (s *ItineraryService) Generate(ctx context.Context, req request_models.GenerateItineraryRequest) (*response_models.Itinerary, error) {
	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	if req.Budget <= 0 {
		return nil, utils.ErrInvalidInput
	}

	session, ok := s.sessions.Get(req.SessionID)
	if !ok {
		return nil, utils.ErrSessionNotFound
	}

	profile := s.defaultProfile
	if req.Profile != "" {
		profile = planner.ParseProfile(req.Profile)
	}

	tripReq := planner.TripRequest{
		Start:       start,
		End:         end,
		Budget:      req.Budget,
		Destination: session.Destination,
		Pool:        session.Pool,
		Profile:     profile,
	}
	if session.Source != nil && profile == planner.ProfileDetailed {
		tripReq.Source = session.Source
		tripReq.SourcePool = session.SourcePool
	}

	itinerary, err := planner.NewPlanner(s.rng).BuildItinerary(tripReq)
	if err != nil {
		return nil, err
	}

	return s.toResponse(itinerary, profile), nil
}

func (s *ItineraryService) toResponse(it *planner.Itinerary, profile planner.Profile) *response_models.Itinerary {
	out := &response_models.Itinerary{
		StartDate:     it.Start.Format(dateLayout),
		EndDate:       it.End.Format(dateLayout),
		Days:          it.Days,
		Budget:        it.Budget,
		Profile:       string(profile),
		NoStayWarning: it.NoStay,
	}

	if it.Stay != nil {
		out.Stay = &response_models.StayInfo{
			Place:      toPlace(*it.Stay),
			CostPerDay: s.cost.StayCostPerDay(it.Budget, it.Days),
		}
	}

	if it.SourceLeg != nil {
		leg := &response_models.SourceLeg{
			From:       it.SourceLeg.FromName,
			To:         it.SourceLeg.ToName,
			DistanceKm: it.SourceLeg.DistanceKm,
			Minutes:    it.SourceLeg.Minutes,
			Mode:       string(it.SourceLeg.Mode),
		}
		for _, stop := range it.SourceLeg.Stops {
			leg.Stops = append(leg.Stops, toExtraSlot(stop))
		}
		out.SourceLeg = leg
	}

	for _, day := range it.DayPlans {
		plan := response_models.DayPlan{
			Day:          day.Day,
			Date:         day.Date.Format(dateLayout),
			MealsMissing: day.MealsMissing,
		}
		for _, slot := range day.Attractions {
			plan.Attractions = append(plan.Attractions, response_models.AttractionSlot{
				Place:        toPlace(slot.Place),
				Leg:          toLeg(slot.Leg),
				VisitMinutes: slot.VisitMinutes,
			})
		}
		for _, slot := range day.Extras {
			plan.Extras = append(plan.Extras, toExtraSlot(slot))
		}
		for _, slot := range day.Meals {
			plan.Meals = append(plan.Meals, response_models.MealSlot{
				Meal:  string(slot.Meal),
				Place: toPlace(slot.Place),
				Leg:   toLeg(slot.Leg),
			})
		}
		out.DayPlans = append(out.DayPlans, plan)
	}

	if it.AttractionsExhausted {
		out.AttractionsExhaustedAtDay = it.ExhaustedAtDay
	}

	return out
}

func toPlace(p planner.Place) response_models.Place {
	return response_models.Place{
		Name:        p.Name,
		Category:    planner.DisplayCategory(p.Category),
		RawCategory: p.Category,
		Latitude:    p.Latitude,
		Longitude:   p.Longitude,
		DistanceKm:  p.DistanceKm,
	}
}

func toLeg(l planner.Leg) response_models.LegInfo {
	return response_models.LegInfo{
		From:       l.FromName,
		Warning:    l.Warning,
		DistanceKm: l.DistanceKm,
		Minutes:    l.Minutes,
		Mode:       string(l.Mode),
	}
}

func toExtraSlot(e planner.ExtraSlot) response_models.ExtraSlot {
	return response_models.ExtraSlot{
		Place: toPlace(e.Place),
		Leg:   toLeg(e.Leg),
	}
}
