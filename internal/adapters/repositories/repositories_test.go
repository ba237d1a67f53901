package repositories

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/platform/db"
	"trip-planner-service/internal/ports"
)

const seedJSON = `[
  {"place": "Hawa Mahal", "state": "Rajasthan", "latitude": 26.9239, "longitude": 75.8267,
   "expected_time_to_visit": "1 hour", "entry_fees": "50 INR", "description": ["Historical", "Architecture"]},
  {"place": "Amber Fort", "state": "Rajasthan", "latitude": 26.9855, "longitude": 75.8513,
   "expected_time_to_visit": "3 hours", "entry_fees": "100", "description": ["Historical"]},
  {"place": "Nahargarh Biological Park", "state": "Rajasthan", "latitude": 27.0208, "longitude": 75.9004,
   "expected_time_to_visit": "2 hours 30 minutes", "entry_fees": "Free", "description": ["Nature"]}
]`

const seedYAML = `
- place: Jal Mahal
  state: Rajasthan
  latitude: 26.9535
  longitude: 75.8462
  expected_time_to_visit: 30 minutes
  entry_fees: "0"
  description: [Architecture, Lake]
`

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := db.Open(db.DriverSQLite, filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	require.NoError(t, InitSchema(conn))
	return conn
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestInitSchemaIsIdempotent(t *testing.T) {
	conn := openTestDB(t)
	require.NoError(t, InitSchema(conn))
	require.Error(t, InitSchema(nil))
}

func TestSeedAndListPlaces(t *testing.T) {
	conn := openTestDB(t)
	ctx := context.Background()

	n, err := SeedPlaces(conn, db.DriverSQLite, writeFile(t, "places.json", seedJSON))
	require.NoError(t, err)
	require.Equal(t, 3, n)

	// Reseeding replaces rows instead of duplicating them.
	_, err = SeedPlaces(conn, db.DriverSQLite, writeFile(t, "places.json", seedJSON))
	require.NoError(t, err)

	catalog := NewSQLPlaceCatalog(conn, db.DriverSQLite)

	got, err := catalog.ListPlaces(ctx, []string{"Historical", "Historical", " "})
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "Hawa Mahal", got[0].Name)
	require.Equal(t, "Amber Fort", got[1].Name)
	require.ElementsMatch(t, []string{"Architecture", "Historical"}, got[0].Categories)
	require.Equal(t, 1.0, got[0].VisitHours())
	require.Equal(t, 50, got[0].EntryFee())

	got, err = catalog.ListPlaces(ctx, []string{"Nature", "Architecture"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "Hawa Mahal", got[0].Name)
	require.Equal(t, "Nahargarh Biological Park", got[1].Name)
	require.Equal(t, 0, got[1].EntryFee())

	got, err = catalog.ListPlaces(ctx, nil)
	require.NoError(t, err)
	require.Empty(t, got)

	got, err = catalog.ListPlaces(ctx, []string{"Beach"})
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestSeedPlacesYAML(t *testing.T) {
	conn := openTestDB(t)

	n, err := SeedPlaces(conn, db.DriverSQLite, writeFile(t, "places.yaml", seedYAML))
	require.NoError(t, err)
	require.Equal(t, 1, n)

	got, err := NewSQLPlaceCatalog(conn, db.DriverSQLite).ListPlaces(context.Background(), []string{"Lake"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "Jal Mahal", got[0].Name)
	require.Equal(t, 0.5, got[0].VisitHours())
}

func TestLoadPlaceSeedsRejectsBadInput(t *testing.T) {
	_, err := LoadPlaceSeeds(writeFile(t, "bad.json", `[{"place": "", "latitude": 1, "longitude": 1}]`))
	require.Error(t, err)

	_, err = LoadPlaceSeeds(writeFile(t, "bad.json", `[{"place": "X", "latitude": 91, "longitude": 1}]`))
	require.Error(t, err)

	_, err = LoadPlaceSeeds(writeFile(t, "bad.yaml", "place: [unclosed"))
	require.Error(t, err)

	_, err = LoadPlaceSeeds(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func samplePlan(id string) *domain.TripPlan {
	return &domain.TripPlan{
		ID:           id,
		UserID:       "user-1",
		Status:       domain.PlanStatusDraft,
		StartAddress: "MI Road, Jaipur",
		Days:         2,
		Passengers:   3,
		CreatedAt:    time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Feasible: domain.FeasiblePlan{
			Stops: []domain.FeasibleStop{
				{Place: domain.NewStartPlace("MI Road, Jaipur", domain.Coordinates{Lat: 26.91, Lon: 75.80})},
				{
					Place: domain.Place{
						Name: "Hawa Mahal", Latitude: 26.9239, Longitude: 75.8267,
						DurationText: "1 hour", EntryFeeText: "50", Categories: []string{"Historical"},
					},
					DistanceFromPrev: 3,
					TravelCost:       135,
					EntryFee:         150,
					TimeToVisit:      1,
				},
			},
			TotalCost:   285,
			TotalTime:   1,
			TotalBudget: 5000,
			TotalHours:  36,
		},
	}
}

func TestPlanStoreRoundTrip(t *testing.T) {
	conn := openTestDB(t)
	store := NewSQLPlanStore(conn, db.DriverSQLite)
	ctx := context.Background()

	want := samplePlan("plan-1")
	require.NoError(t, store.SavePlan(ctx, want))

	got, err := store.GetPlan(ctx, "plan-1")
	require.NoError(t, err)
	require.Equal(t, want, got)

	_, err = store.GetPlan(ctx, "missing")
	require.ErrorIs(t, err, ports.ErrNotFound)

	require.Error(t, store.SavePlan(ctx, want), "duplicate id must fail")
}

func TestConfirmItinerary(t *testing.T) {
	conn := openTestDB(t)
	store := NewSQLPlanStore(conn, db.DriverSQLite)
	ctx := context.Background()

	plan := samplePlan("plan-2")
	require.NoError(t, store.SavePlan(ctx, plan))

	it := &domain.Itinerary{
		ID:             "it-1",
		UserID:         "user-1",
		OriginalPlanID: "plan-2",
		CreatedAt:      time.Now(),
		Days: []domain.DayPlan{
			{Day: 1, Places: []domain.Place{plan.Feasible.Stops[1].Place}, HoursSpent: 1.1},
		},
	}
	require.NoError(t, store.ConfirmItinerary(ctx, it))

	got, err := store.GetPlan(ctx, "plan-2")
	require.NoError(t, err)
	require.Equal(t, domain.PlanStatusConfirmed, got.Status)

	var doc string
	require.NoError(t, conn.QueryRow(`SELECT itinerary FROM itineraries WHERE id = ?`, "it-1").Scan(&doc))
	require.JSONEq(t, `[{"day":1,"hoursSpent":1.1,"places":[{"place":"Hawa Mahal","latitude":26.9239,"longitude":75.8267,"expected_time_to_visit":"1 hour","entry_fees":"50","description":["Historical"]}]}]`, doc)

	missing := *it
	missing.ID = "it-2"
	missing.OriginalPlanID = "nope"
	require.ErrorIs(t, store.ConfirmItinerary(ctx, &missing), ports.ErrNotFound)

	var count int
	require.NoError(t, conn.QueryRow(`SELECT COUNT(*) FROM itineraries`).Scan(&count))
	require.Equal(t, 1, count)
}
