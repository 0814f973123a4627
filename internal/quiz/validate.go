package quiz

import (
	"strings"

	"elope/pkg/utils"
)

// BudgetToDollarSigns renders a budget tier as a repeated "$". Tiers outside
// 1..4 are rejected rather than silently truncated.
func BudgetToDollarSigns(tier int) (string, error) {
	if tier < 1 || tier > 4 {
		return "", utils.ErrInvalidBudget
	}
	return strings.Repeat("$", tier), nil
}

// ValidateAnchors enforces the pick-exactly-3-distinct rule.
func ValidateAnchors(anchors []string) error {
	if anchors == nil {
		return utils.ErrMissingAnchors
	}
	if len(anchors) != 3 {
		return utils.ErrWrongAnchorCount
	}
	seen := make(map[string]bool, len(anchors))
	for _, a := range anchors {
		if seen[a] {
			return utils.ErrDuplicateAnchor
		}
		seen[a] = true
	}
	return nil
}

// ValidateAnswers checks every closed enumeration for membership. The
// original UI could only produce in-enum values; an API payload cannot be
// trusted the same way.
func ValidateAnswers(a Answers) error {
	if a.Budget < 1 || a.Budget > 4 {
		return utils.ErrInvalidBudget
	}
	fields := []struct {
		value  string
		values []string
	}{
		{a.Confidence, ConfidenceValues},
		{a.Purpose, PurposeValues},
		{a.Accommodation, AccommodationValues},
		{a.WorkStyle, WorkStyleValues},
		{a.Pace, PaceValues},
		{a.PeakTime, PeakTimeValues},
		{a.Spontaneity, SpontaneityValues},
		{a.Transport, TransportValues},
		{a.SocialStyle, SocialStyleValues},
		{a.Intention, IntentionValues},
	}
	for _, f := range fields {
		if !contains(f.values, f.value) {
			return utils.ErrInvalidAnswer
		}
	}
	for _, anchor := range a.Anchors {
		if !contains(AnchorValues, anchor) {
			return utils.ErrInvalidAnswer
		}
	}
	return nil
}
