package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/platform/db"
	"trip-planner-service/internal/platform/obs"
	"trip-planner-service/internal/ports"
)

// Stored shape of a place inside plan and itinerary documents.
type placeRecord struct {
	Place               string   `json:"place"`
	State               string   `json:"state,omitempty"`
	Latitude            float64  `json:"latitude"`
	Longitude           float64  `json:"longitude"`
	ExpectedTimeToVisit string   `json:"expected_time_to_visit"`
	EntryFees           string   `json:"entry_fees"`
	Description         []string `json:"description,omitempty"`
}

type stopRecord struct {
	placeRecord
	DistanceFromPrev float64 `json:"distanceFromPrev"`
	TravelCost       float64 `json:"travelCost"`
	EntryFee         float64 `json:"entryFee"`
	TimeToVisit      float64 `json:"timeToVisit"`
}

type dayRecord struct {
	Day        int           `json:"day"`
	Places     []placeRecord `json:"places"`
	HoursSpent float64       `json:"hoursSpent"`
}

func toPlaceRecord(p domain.Place) placeRecord {
	return placeRecord{
		Place:               p.Name,
		State:               p.State,
		Latitude:            p.Latitude,
		Longitude:           p.Longitude,
		ExpectedTimeToVisit: p.DurationText,
		EntryFees:           p.EntryFeeText,
		Description:         p.Categories,
	}
}

func (r placeRecord) toDomain() domain.Place {
	return domain.Place{
		Name:         r.Place,
		State:        r.State,
		Latitude:     r.Latitude,
		Longitude:    r.Longitude,
		DurationText: r.ExpectedTimeToVisit,
		EntryFeeText: r.EntryFees,
		Categories:   r.Description,
	}
}

// SQL-backed implementation of the PlanStore port.
type SQLPlanStore struct {
	DB     *sql.DB
	Driver string
}

func NewSQLPlanStore(conn *sql.DB, driver string) *SQLPlanStore {
	return &SQLPlanStore{DB: conn, Driver: driver}
}

func (s *SQLPlanStore) SavePlan(ctx context.Context, plan *domain.TripPlan) (err error) {
	defer obs.Time(ctx, "plans.SavePlan")(&err)

	if s.DB == nil {
		return errors.New("sql plan store: DB is nil")
	}
	if plan == nil || plan.ID == "" {
		return errors.New("save plan: plan id must be set")
	}

	stops := make([]stopRecord, 0, len(plan.Feasible.Stops))
	for _, st := range plan.Feasible.Stops {
		stops = append(stops, stopRecord{
			placeRecord:      toPlaceRecord(st.Place),
			DistanceFromPrev: st.DistanceFromPrev,
			TravelCost:       st.TravelCost,
			EntryFee:         st.EntryFee,
			TimeToVisit:      st.TimeToVisit,
		})
	}
	doc, err := json.Marshal(stops)
	if err != nil {
		return fmt.Errorf("save plan id=%s: encode feasible places: %w", plan.ID, err)
	}

	q := db.Rebind(s.Driver, `
	INSERT INTO plans (
		id,
		user_id,
		status,
		start_address,
		days,
		passengers,
		total_cost,
		total_time,
		total_budget,
		total_hours,
		feasible_places,
		created_at
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`)

	_, err = s.DB.ExecContext(ctx, q,
		plan.ID,
		plan.UserID,
		string(plan.Status),
		plan.StartAddress,
		plan.Days,
		plan.Passengers,
		plan.Feasible.TotalCost,
		plan.Feasible.TotalTime,
		plan.Feasible.TotalBudget,
		plan.Feasible.TotalHours,
		string(doc),
		plan.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("save plan id=%s: insert plans table: %w", plan.ID, err)
	}

	return nil
}

func (s *SQLPlanStore) GetPlan(ctx context.Context, id string) (_ *domain.TripPlan, err error) {
	defer obs.Time(ctx, "plans.GetPlan")(&err)

	if s.DB == nil {
		return nil, errors.New("sql plan store: DB is nil")
	}

	q := db.Rebind(s.Driver, `
	SELECT
		id,
		user_id,
		status,
		start_address,
		days,
		passengers,
		total_cost,
		total_time,
		total_budget,
		total_hours,
		feasible_places,
		created_at
	FROM plans
	WHERE id = ?;
	`)

	var (
		p         domain.TripPlan
		status    string
		doc       string
		createdAt string
	)
	err = s.DB.QueryRowContext(ctx, q, id).Scan(
		&p.ID,
		&p.UserID,
		&status,
		&p.StartAddress,
		&p.Days,
		&p.Passengers,
		&p.Feasible.TotalCost,
		&p.Feasible.TotalTime,
		&p.Feasible.TotalBudget,
		&p.Feasible.TotalHours,
		&doc,
		&createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get plan id=%s: %w", id, ports.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get plan id=%s: query plans table: %w", id, err)
	}

	p.Status = domain.PlanStatus(status)
	p.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("get plan id=%s: parse created_at: %w", id, err)
	}

	var stops []stopRecord
	if err := json.Unmarshal([]byte(doc), &stops); err != nil {
		return nil, fmt.Errorf("get plan id=%s: decode feasible places: %w", id, err)
	}
	p.Feasible.Stops = make([]domain.FeasibleStop, 0, len(stops))
	for _, st := range stops {
		p.Feasible.Stops = append(p.Feasible.Stops, domain.FeasibleStop{
			Place:            st.placeRecord.toDomain(),
			DistanceFromPrev: st.DistanceFromPrev,
			TravelCost:       st.TravelCost,
			EntryFee:         st.EntryFee,
			TimeToVisit:      st.TimeToVisit,
		})
	}

	return &p, nil
}

// Store the itinerary and flip its plan to confirmed in one transaction.
func (s *SQLPlanStore) ConfirmItinerary(ctx context.Context, it *domain.Itinerary) (err error) {
	defer obs.Time(ctx, "plans.ConfirmItinerary")(&err)

	if s.DB == nil {
		return errors.New("sql plan store: DB is nil")
	}
	if it == nil || it.ID == "" {
		return errors.New("confirm itinerary: itinerary id must be set")
	}

	days := make([]dayRecord, 0, len(it.Days))
	for _, d := range it.Days {
		rec := dayRecord{Day: d.Day, HoursSpent: d.HoursSpent, Places: make([]placeRecord, 0, len(d.Places))}
		for _, p := range d.Places {
			rec.Places = append(rec.Places, toPlaceRecord(p))
		}
		days = append(days, rec)
	}
	doc, err := json.Marshal(days)
	if err != nil {
		return fmt.Errorf("confirm itinerary plan=%s: encode days: %w", it.OriginalPlanID, err)
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("confirm itinerary plan=%s: begin tx: %w", it.OriginalPlanID, err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, db.Rebind(s.Driver, `
	UPDATE plans
	SET status = ?
	WHERE id = ?;
	`), string(domain.PlanStatusConfirmed), it.OriginalPlanID)
	if err != nil {
		return fmt.Errorf("confirm itinerary plan=%s: update plans table: %w", it.OriginalPlanID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("confirm itinerary plan=%s: rows affected: %w", it.OriginalPlanID, err)
	}
	if n == 0 {
		return fmt.Errorf("confirm itinerary plan=%s: %w", it.OriginalPlanID, ports.ErrNotFound)
	}

	_, err = tx.ExecContext(ctx, db.Rebind(s.Driver, `
	INSERT INTO itineraries (
		id,
		user_id,
		original_plan_id,
		itinerary,
		created_at
	)
	VALUES (?, ?, ?, ?, ?);
	`),
		it.ID,
		it.UserID,
		it.OriginalPlanID,
		string(doc),
		it.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("confirm itinerary plan=%s: insert itineraries table: %w", it.OriginalPlanID, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("confirm itinerary plan=%s: commit tx: %w", it.OriginalPlanID, err)
	}

	return nil
}
