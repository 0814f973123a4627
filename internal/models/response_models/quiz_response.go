package response_models

import "elope/internal/quiz"

type QuizSessionResponse struct {
	SessionID  string       `json:"session_id"`
	Step       int          `json:"step"`
	TotalSteps int          `json:"total_steps"`
	CityID     string       `json:"city_id,omitempty"`
	StartDate  string       `json:"start_date,omitempty"`
	EndDate    string       `json:"end_date,omitempty"`
	Answers    quiz.Answers `json:"answers"`
}
