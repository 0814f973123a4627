package quiz

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elope/pkg/utils"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

// validState returns a FlowState that passes every pre-save check.
func validState() FlowState {
	state := NewFlowState()
	state.CityID = "venice-it"
	state.StartDate = date("2026-09-01")
	state.EndDate = date("2026-09-08")
	state.Answers.MustDo = "cicchetti crawl"
	return state
}

func TestReduceStepping(t *testing.T) {
	state := NewFlowState()
	require.Equal(t, FirstStep, state.Step)

	// back at step 1 is a no-op
	state = Reduce(state, Event{Kind: EventBack})
	assert.Equal(t, FirstStep, state.Step)

	for i := 0; i < 10; i++ {
		state = Reduce(state, Event{Kind: EventNext})
	}
	// next at step 5 is a no-op, no matter how often
	assert.Equal(t, LastStep, state.Step)

	state = Reduce(state, Event{Kind: EventBack})
	assert.Equal(t, LastStep-1, state.Step)
}

func TestReduceIsPure(t *testing.T) {
	before := NewFlowState()
	_ = Reduce(before, Event{Kind: EventNext})
	assert.Equal(t, FirstStep, before.Step)

	_ = Reduce(before, Event{Kind: EventSelectCity, CityID: "rome-it"})
	assert.Empty(t, before.CityID)
}

func TestReduceFieldEvents(t *testing.T) {
	state := NewFlowState()

	state = Reduce(state, Event{Kind: EventSelectCity, CityID: "lisbon-pt"})
	assert.Equal(t, "lisbon-pt", state.CityID)

	state = Reduce(state, Event{Kind: EventSetDates, StartDate: date("2026-05-01"), EndDate: date("2026-05-10")})
	assert.Equal(t, date("2026-05-01"), state.StartDate)
	assert.Equal(t, date("2026-05-10"), state.EndDate)

	answers := DefaultAnswers()
	answers.MustDo = "pastel de nata tour"
	state = Reduce(state, Event{Kind: EventSetAnswers, Answers: answers})
	assert.Equal(t, "pastel de nata tour", state.Answers.MustDo)

	// unknown event kinds leave the state untouched
	same := Reduce(state, Event{Kind: "teleport"})
	assert.Equal(t, state, same)
}

func TestValidateBeforeSavePriorityOrder(t *testing.T) {
	const userID = "6f1b0f2e-9b3a-4c88-9e4f-1a2b3c4d5e6f"

	tests := []struct {
		name    string
		userID  string
		mutate  func(*FlowState)
		wantErr error
	}{
		{
			name:    "valid state passes",
			userID:  userID,
			mutate:  func(s *FlowState) {},
			wantErr: nil,
		},
		{
			name:   "not signed in wins over everything",
			userID: "",
			mutate: func(s *FlowState) {
				s.CityID = ""
				s.Answers.Anchors = nil
				s.Answers.MustDo = ""
			},
			wantErr: utils.ErrNotSignedIn,
		},
		{
			name:   "missing city beats missing dates",
			userID: userID,
			mutate: func(s *FlowState) {
				s.CityID = ""
				s.StartDate = time.Time{}
				s.EndDate = time.Time{}
			},
			wantErr: utils.ErrMissingCity,
		},
		{
			name:   "missing dates beats bad anchors",
			userID: userID,
			mutate: func(s *FlowState) {
				s.EndDate = time.Time{}
				s.Answers.Anchors = []string{"museums"}
			},
			wantErr: utils.ErrMissingDates,
		},
		{
			name:   "date range beats bad anchors",
			userID: userID,
			mutate: func(s *FlowState) {
				s.StartDate = date("2026-09-08")
				s.EndDate = date("2026-09-01")
				s.Answers.Anchors = []string{"museums", "museums", "nightlife"}
			},
			wantErr: utils.ErrInvalidDateRange,
		},
		{
			name:   "anchors beat empty must-do",
			userID: userID,
			mutate: func(s *FlowState) {
				s.Answers.Anchors = []string{"museums", "museums", "nightlife"}
				s.Answers.MustDo = "   "
			},
			wantErr: utils.ErrDuplicateAnchor,
		},
		{
			name:   "whitespace-only must-do fails",
			userID: userID,
			mutate: func(s *FlowState) {
				s.Answers.MustDo = " \t "
			},
			wantErr: utils.ErrEmptyMustDo,
		},
		{
			name:   "equal start and end dates pass",
			userID: userID,
			mutate: func(s *FlowState) {
				s.EndDate = s.StartDate
			},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := validState()
			tt.mutate(&state)

			err := ValidateBeforeSave(tt.userID, state)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
