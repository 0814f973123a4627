package services

import (
	"context"

	"go.uber.org/zap"

	"elope/internal/catalog"
	"elope/internal/models/db_models"
	"elope/internal/models/response_models"
	"elope/internal/repositories"
	"elope/pkg/utils"
)

type ExploreServiceInterface interface {
	// UnlockedCountries answers which countries the user may browse, purely
	// as a function of their completed trips.
	UnlockedCountries(ctx context.Context, userID string) ([]catalog.Country, error)

	// Explore combines unlocked countries, the resolved selection and the
	// browsable cities into one view. explicitCountry may be empty.
	Explore(ctx context.Context, userID string, explicitCountry string) (*response_models.ExploreResponse, error)
}

type ExploreService struct {
	tripRepo repositories.TripRepository
	logger   *zap.Logger
}

func NewExploreService(tripRepo repositories.TripRepository, logger *zap.Logger) ExploreServiceInterface {
	return &ExploreService{
		tripRepo: tripRepo,
		logger:   logger,
	}
}

func (e *ExploreService) UnlockedCountries(ctx context.Context, userID string) ([]catalog.Country, error) {
	trips, err := e.tripRepo.ListCompletedTrips(ctx, userID)
	if err != nil {
		e.logger.Error("listing completed trips failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return UnlockedFromTrips(trips), nil
}

func (e *ExploreService) Explore(ctx context.Context, userID string, explicitCountry string) (*response_models.ExploreResponse, error) {
	unlocked, err := e.UnlockedCountries(ctx, userID)
	if err != nil {
		return nil, err
	}

	selected := ResolveSelection(unlocked, explicitCountry)

	return &response_models.ExploreResponse{
		UnlockedCountries: unlocked,
		SelectedCountry:   selected,
		Cities:            BrowsableCities(selected),
	}, nil
}

// UnlockedFromTrips derives the unlock set: completed trips only, country
// granularity, deduplicated in the order the trips are supplied (upstream is
// most-recent-first). Drafts never contribute.
func UnlockedFromTrips(trips []db_models.TripPlan) []catalog.Country {
	cityIDs := make([]string, 0, len(trips))
	for _, trip := range trips {
		if trip.Status != db_models.TripStatusCompleted {
			continue
		}
		cityIDs = append(cityIDs, trip.CityID)
	}
	return catalog.CountriesFromCityIDs(cityIDs)
}

// ResolveSelection keeps an explicit selection as long as it is still
// unlocked; otherwise the first unlocked country becomes the default. With
// nothing unlocked there is no selection.
func ResolveSelection(unlocked []catalog.Country, explicit string) string {
	if explicit != "" {
		for _, c := range unlocked {
			if c.CountryCode == explicit {
				return explicit
			}
		}
	}
	if len(unlocked) > 0 {
		return unlocked[0].CountryCode
	}
	return ""
}

// BrowsableCities returns the cities of the selected country, or nothing
// when no country is selected.
func BrowsableCities(selectedCountry string) []catalog.City {
	if selectedCountry == "" {
		return []catalog.City{}
	}
	return catalog.CitiesInCountries([]string{selectedCountry})
}
