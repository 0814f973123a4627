package services

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"elope/internal/catalog"
	"elope/internal/models/db_models"
	"elope/internal/models/response_models"
	"elope/internal/quiz"
	"elope/internal/repositories"
	"elope/pkg/utils"
)

type TripServiceInterface interface {
	// SaveTrip validates the flow state and, if everything holds, persists a
	// completed trip. Exactly one write per successful call; no retries.
	SaveTrip(ctx context.Context, userID string, state quiz.FlowState) (*response_models.SaveTripResponse, error)

	ListTrips(ctx context.Context, userID string) ([]response_models.TripResponse, error)
}

type TripService struct {
	tripRepo repositories.TripRepository
	logger   *zap.Logger
}

func NewTripService(tripRepo repositories.TripRepository, logger *zap.Logger) TripServiceInterface {
	return &TripService{
		tripRepo: tripRepo,
		logger:   logger,
	}
}

func (t *TripService) SaveTrip(ctx context.Context, userID string, state quiz.FlowState) (*response_models.SaveTripResponse, error) {
	if err := quiz.ValidateBeforeSave(userID, state); err != nil {
		return nil, err
	}
	if err := quiz.ValidateAnswers(state.Answers); err != nil {
		return nil, err
	}

	city, ok := catalog.CityByID(state.CityID)
	if !ok {
		return nil, utils.ErrCityNotFound
	}

	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, utils.ErrNotSignedIn
	}

	quizJSON, err := json.Marshal(state.Answers)
	if err != nil {
		t.logger.Error("encoding quiz answers failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	trip := &db_models.TripPlan{
		UserID:    uid,
		CityID:    state.CityID,
		StartDate: state.StartDate,
		EndDate:   state.EndDate,
		Status:    db_models.TripStatusCompleted,
		Quiz:      datatypes.JSON(quizJSON),
		Anchors:   pq.StringArray(state.Answers.Anchors),
	}

	if err := t.tripRepo.InsertTrip(ctx, trip); err != nil {
		t.logger.Error("inserting trip failed", zap.Error(err))
		// The storage collaborator's message goes through verbatim.
		return nil, utils.NewPersistenceError(err)
	}

	return &response_models.SaveTripResponse{
		TripID:      trip.ID.String(),
		CountryName: city.CountryName,
	}, nil
}

func (t *TripService) ListTrips(ctx context.Context, userID string) ([]response_models.TripResponse, error) {
	trips, err := t.tripRepo.ListCompletedTrips(ctx, userID)
	if err != nil {
		t.logger.Error("listing trips failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.TripResponse, 0, len(trips))
	for _, trip := range trips {
		resp := response_models.TripResponse{
			ID:        trip.ID.String(),
			CityID:    trip.CityID,
			StartDate: utils.FormatDate(trip.StartDate),
			EndDate:   utils.FormatDate(trip.EndDate),
			Status:    string(trip.Status),
		}
		if city, ok := catalog.CityByID(trip.CityID); ok {
			resp.CityName = city.Name
			resp.CountryName = city.CountryName
		}
		out = append(out, resp)
	}
	return out, nil
}
