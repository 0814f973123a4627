package repositories

import (
	"context"

	"gorm.io/gorm"

	"elope/internal/models/db_models"
)

type TripRepository interface {
	InsertTrip(ctx context.Context, trip *db_models.TripPlan) error

	// ListCompletedTrips returns the user's completed trips most-recent-first.
	// Draft rows never come back from here.
	ListCompletedTrips(ctx context.Context, userID string) ([]db_models.TripPlan, error)
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func (t *tripRepository) InsertTrip(ctx context.Context, trip *db_models.TripPlan) error {
	return t.db.WithContext(ctx).Create(trip).Error
}

func (t *tripRepository) ListCompletedTrips(ctx context.Context, userID string) ([]db_models.TripPlan, error) {
	var trips []db_models.TripPlan
	err := t.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, db_models.TripStatusCompleted).
		Order("created_at DESC").
		Find(&trips).Error
	if err != nil {
		return nil, err
	}
	return trips, nil
}
