package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/platform/obs"
	"trip-planner-service/internal/ports"
)

var ErrEmptyItinerary = errors.New("itinerary must contain at least one day")

// Itineraries reads stored plans and turns them into day-wise schedules.
type Itineraries struct {
	Store     ports.PlanStore
	Partition PartitionOptions
	Now       func() time.Time
}

// loadOwnedPlan returns the plan if it belongs to userID.
func (s *Itineraries) loadOwnedPlan(ctx context.Context, userID, planID string) (*domain.TripPlan, error) {
	plan, err := s.Store.GetPlan(ctx, planID)
	if err != nil {
		return nil, err
	}
	if plan.UserID != userID {
		return nil, fmt.Errorf("plan %s: %w", planID, ports.ErrForbidden)
	}
	return plan, nil
}

// DayWisePlan loads a plan owned by userID and splits it into days.
func (s *Itineraries) DayWisePlan(ctx context.Context, userID, planID string) (_ *domain.TripPlan, _ []domain.DayPlan, err error) {
	defer obs.Time(ctx, "services.DayWisePlan")(&err)

	plan, err := s.loadOwnedPlan(ctx, userID, planID)
	if err != nil {
		return nil, nil, fmt.Errorf("day-wise plan: %w", err)
	}

	days := PartitionDays(plan.Feasible, plan.Days, s.Partition)
	return plan, days, nil
}

// Confirm stores the day-wise plan as an itinerary and confirms the plan.
func (s *Itineraries) Confirm(ctx context.Context, userID, planID string, days []domain.DayPlan) (_ *domain.Itinerary, err error) {
	defer obs.Time(ctx, "services.ConfirmItinerary")(&err)

	if len(days) == 0 {
		return nil, fmt.Errorf("confirm itinerary: %w", ErrEmptyItinerary)
	}

	if _, err := s.loadOwnedPlan(ctx, userID, planID); err != nil {
		return nil, fmt.Errorf("confirm itinerary: %w", err)
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}

	it := &domain.Itinerary{
		ID:             uuid.NewString(),
		UserID:         userID,
		OriginalPlanID: planID,
		Days:           days,
		CreatedAt:      now().UTC(),
	}

	if err := s.Store.ConfirmItinerary(ctx, it); err != nil {
		return nil, fmt.Errorf("confirm itinerary: %w", err)
	}

	return it, nil
}
