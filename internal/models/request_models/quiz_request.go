package request_models

import "elope/internal/quiz"

// QuizEventRequest carries one flow event. Only the fields the event kind
// reads need to be set.
type QuizEventRequest struct {
	Kind      string        `json:"kind" binding:"required,oneof=next back select_city set_dates set_answers"`
	CityID    string        `json:"city_id,omitempty"`
	StartDate string        `json:"start_date,omitempty"` // "2006-01-02"
	EndDate   string        `json:"end_date,omitempty"`
	Answers   *quiz.Answers `json:"answers,omitempty"`
}
