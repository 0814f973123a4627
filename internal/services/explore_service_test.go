package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"elope/internal/catalog"
	"elope/internal/models/db_models"
	"elope/pkg/utils"
)

type mockTripRepo struct {
	trips     []db_models.TripPlan
	listErr   error
	insertErr error
	inserted  []*db_models.TripPlan
}

func (m *mockTripRepo) InsertTrip(_ context.Context, trip *db_models.TripPlan) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	m.inserted = append(m.inserted, trip)
	return nil
}

func (m *mockTripRepo) ListCompletedTrips(_ context.Context, _ string) ([]db_models.TripPlan, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	// The real repository filters drafts in SQL.
	out := make([]db_models.TripPlan, 0, len(m.trips))
	for _, trip := range m.trips {
		if trip.Status == db_models.TripStatusCompleted {
			out = append(out, trip)
		}
	}
	return out, nil
}

func completedTrip(cityID string) db_models.TripPlan {
	return db_models.TripPlan{CityID: cityID, Status: db_models.TripStatusCompleted}
}

func draftTrip(cityID string) db_models.TripPlan {
	return db_models.TripPlan{CityID: cityID, Status: db_models.TripStatusDraft}
}

func TestUnlockedFromTrips(t *testing.T) {
	trips := []db_models.TripPlan{
		completedTrip("venice-it"),
		completedTrip("rome-it"),
		draftTrip("lisbon-pt"),
	}

	got := UnlockedFromTrips(trips)
	// Rome dedups into the Italy already seen; the Lisbon draft never counts.
	require.Len(t, got, 1)
	assert.Equal(t, catalog.Country{CountryCode: "IT", CountryName: "Italy"}, got[0])
}

func TestUnlockedFromTripsOrderAndUnknowns(t *testing.T) {
	trips := []db_models.TripPlan{
		completedTrip("porto-pt"),
		completedTrip("gone-city"),
		completedTrip("milan-it"),
	}

	got := UnlockedFromTrips(trips)
	require.Len(t, got, 2)
	assert.Equal(t, "PT", got[0].CountryCode)
	assert.Equal(t, "IT", got[1].CountryCode)
}

func TestResolveSelection(t *testing.T) {
	unlocked := []catalog.Country{
		{CountryCode: "IT", CountryName: "Italy"},
		{CountryCode: "PT", CountryName: "Portugal"},
	}

	// no explicit selection: first unlocked wins
	assert.Equal(t, "IT", ResolveSelection(unlocked, ""))

	// explicit selection still unlocked is preserved, not reset
	assert.Equal(t, "PT", ResolveSelection(unlocked, "PT"))

	// explicit selection outside the unlocked set falls back to the default
	assert.Equal(t, "IT", ResolveSelection(unlocked, "FR"))

	// nothing unlocked, nothing selected
	assert.Equal(t, "", ResolveSelection(nil, ""))
	assert.Equal(t, "", ResolveSelection(nil, "IT"))
}

func TestBrowsableCities(t *testing.T) {
	assert.Empty(t, BrowsableCities(""))

	got := BrowsableCities("IT")
	require.Len(t, got, 3)
	assert.Equal(t, "venice-it", got[0].ID)
}

func TestExploreService(t *testing.T) {
	repo := &mockTripRepo{trips: []db_models.TripPlan{
		completedTrip("lisbon-pt"),
		completedTrip("venice-it"),
		draftTrip("paris-fr"),
	}}
	svc := NewExploreService(repo, zap.NewNop())

	view, err := svc.Explore(context.Background(), "user-1", "")
	require.NoError(t, err)
	require.Len(t, view.UnlockedCountries, 2)
	assert.Equal(t, "PT", view.UnlockedCountries[0].CountryCode)
	assert.Equal(t, "IT", view.UnlockedCountries[1].CountryCode)
	assert.Equal(t, "PT", view.SelectedCountry)
	require.Len(t, view.Cities, 2)
	assert.Equal(t, "lisbon-pt", view.Cities[0].ID)

	// explicit selection held across recomputation with the same unlock set
	view, err = svc.Explore(context.Background(), "user-1", "IT")
	require.NoError(t, err)
	assert.Equal(t, "IT", view.SelectedCountry)
	assert.Len(t, view.Cities, 3)

	// a completed trip to Italy does not unlock France
	view, err = svc.Explore(context.Background(), "user-1", "FR")
	require.NoError(t, err)
	assert.Equal(t, "PT", view.SelectedCountry)
}

func TestExploreServiceNoTrips(t *testing.T) {
	svc := NewExploreService(&mockTripRepo{}, zap.NewNop())

	view, err := svc.Explore(context.Background(), "user-1", "")
	require.NoError(t, err)
	assert.Empty(t, view.UnlockedCountries)
	assert.Empty(t, view.SelectedCountry)
	assert.Empty(t, view.Cities)
}

func TestExploreServiceRepoFailure(t *testing.T) {
	svc := NewExploreService(&mockTripRepo{listErr: errors.New("connection refused")}, zap.NewNop())

	_, err := svc.Explore(context.Background(), "user-1", "")
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
}
