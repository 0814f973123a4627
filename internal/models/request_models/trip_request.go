package request_models

import "elope/internal/quiz"

type CreateTripRequest struct {
	CityID    string       `json:"city_id" binding:"required"`
	StartDate string       `json:"start_date" binding:"required"` // "2006-01-02"
	EndDate   string       `json:"end_date" binding:"required"`
	Quiz      quiz.Answers `json:"quiz" binding:"required"`
}
