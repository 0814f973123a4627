package quiz

import (
	"strings"
	"time"

	"elope/pkg/utils"
)

const (
	FirstStep = 1
	LastStep  = 5
)

// FlowState is the whole quiz-in-progress: current step, trip selection and
// answers. It is a plain value; Reduce never mutates its input.
type FlowState struct {
	Step      int       `json:"step"`
	CityID    string    `json:"city_id"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Answers   Answers   `json:"answers"`
}

// NewFlowState starts a session at step 1 with the default answer set.
func NewFlowState() FlowState {
	return FlowState{
		Step:    FirstStep,
		Answers: DefaultAnswers(),
	}
}

type EventKind string

const (
	EventNext       EventKind = "next"
	EventBack       EventKind = "back"
	EventSelectCity EventKind = "select_city"
	EventSetDates   EventKind = "set_dates"
	EventSetAnswers EventKind = "set_answers"
)

// Event is one user action against the flow. Fields beyond Kind are read
// only by the event kinds that need them.
type Event struct {
	Kind      EventKind
	CityID    string
	StartDate time.Time
	EndDate   time.Time
	Answers   Answers
}

// Reduce applies one event to the flow: strictly linear stepping, clamped
// at both ends, no branching. Unknown events leave the state unchanged.
func Reduce(state FlowState, event Event) FlowState {
	switch event.Kind {
	case EventNext:
		if state.Step < LastStep {
			state.Step++
		}
	case EventBack:
		if state.Step > FirstStep {
			state.Step--
		}
	case EventSelectCity:
		state.CityID = event.CityID
	case EventSetDates:
		state.StartDate = event.StartDate
		state.EndDate = event.EndDate
	case EventSetAnswers:
		state.Answers = event.Answers
	}
	return state
}

// ValidateBeforeSave runs the pre-save checks in fixed priority order and
// returns the first failure. The ordering is part of the contract: when
// several things are wrong at once, the user sees the highest-priority one.
func ValidateBeforeSave(userID string, state FlowState) error {
	if userID == "" {
		return utils.ErrNotSignedIn
	}
	if state.CityID == "" {
		return utils.ErrMissingCity
	}
	if state.StartDate.IsZero() || state.EndDate.IsZero() {
		return utils.ErrMissingDates
	}
	if state.EndDate.Before(state.StartDate) {
		return utils.ErrInvalidDateRange
	}
	if err := ValidateAnchors(state.Answers.Anchors); err != nil {
		return err
	}
	if strings.TrimSpace(state.Answers.MustDo) == "" {
		return utils.ErrEmptyMustDo
	}
	return nil
}
