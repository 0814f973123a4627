package quiz

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elope/pkg/utils"
)

func TestBudgetToDollarSigns(t *testing.T) {
	for tier := 1; tier <= 4; tier++ {
		got, err := BudgetToDollarSigns(tier)
		require.NoError(t, err)
		assert.Len(t, got, tier)
		assert.Equal(t, strings.Repeat("$", tier), got)
	}

	for _, tier := range []int{0, -1, 5, 100} {
		_, err := BudgetToDollarSigns(tier)
		assert.ErrorIs(t, err, utils.ErrInvalidBudget, "tier %d", tier)
	}
}

func TestValidateAnchors(t *testing.T) {
	tests := []struct {
		name    string
		anchors []string
		wantErr error
	}{
		{
			name:    "nil anchors",
			anchors: nil,
			wantErr: utils.ErrMissingAnchors,
		},
		{
			name:    "too few",
			anchors: []string{"museums", "nightlife"},
			wantErr: utils.ErrWrongAnchorCount,
		},
		{
			name:    "too many",
			anchors: []string{"museums", "nightlife", "food_markets", "live_music"},
			wantErr: utils.ErrWrongAnchorCount,
		},
		{
			name:    "empty slice",
			anchors: []string{},
			wantErr: utils.ErrWrongAnchorCount,
		},
		{
			name:    "duplicate",
			anchors: []string{"museums", "museums", "nightlife"},
			wantErr: utils.ErrDuplicateAnchor,
		},
		{
			name:    "valid",
			anchors: []string{"food_markets", "museums", "nightlife"},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAnchors(tt.anchors)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateAnswers(t *testing.T) {
	valid := DefaultAnswers()
	assert.NoError(t, ValidateAnswers(valid))

	t.Run("budget out of range", func(t *testing.T) {
		a := DefaultAnswers()
		a.Budget = 5
		assert.ErrorIs(t, ValidateAnswers(a), utils.ErrInvalidBudget)
	})

	t.Run("out-of-enum single choice", func(t *testing.T) {
		a := DefaultAnswers()
		a.Pace = "hyperspeed"
		assert.ErrorIs(t, ValidateAnswers(a), utils.ErrInvalidAnswer)
	})

	t.Run("out-of-enum anchor", func(t *testing.T) {
		a := DefaultAnswers()
		a.Anchors = []string{"food_markets", "museums", "skydiving"}
		assert.ErrorIs(t, ValidateAnswers(a), utils.ErrInvalidAnswer)
	})
}

func TestDefaultAnswersIsFullyPopulated(t *testing.T) {
	a := DefaultAnswers()
	assert.NoError(t, ValidateAnswers(a))
	assert.NoError(t, ValidateAnchors(a.Anchors))
	assert.Equal(t, 2, a.Budget)
	// MustDo intentionally starts empty; the save validation demands it.
	assert.Empty(t, a.MustDo)
}
