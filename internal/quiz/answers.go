package quiz

// Answers is the full quiz record a trip is saved with. Every field except
// MustDo is a closed enumeration; Anchors is a pick-exactly-3 multi-select.
type Answers struct {
	// Screen 1
	Confidence string `json:"confidence"`

	// Screen 2
	Purpose       string `json:"purpose"`
	Accommodation string `json:"accommodation"`
	WorkStyle     string `json:"work_style"`

	// Screen 3
	Pace        string `json:"pace"`
	PeakTime    string `json:"peak_time"`
	Spontaneity string `json:"spontaneity"`

	// Screen 4
	Budget      int    `json:"budget"` // 1..4, rendered as $..$$$$
	Transport   string `json:"transport"`
	SocialStyle string `json:"social_style"`

	// Screen 5
	Anchors   []string `json:"anchors"`
	MustDo    string   `json:"must_do"`
	Intention string   `json:"intention"`
}

var (
	ConfidenceValues    = []string{"booked_all", "booked_partial", "dates_set", "exploring"}
	PurposeValues       = []string{"work_explore", "vacation", "visit_people", "relocating", "event", "unsure"}
	AccommodationValues = []string{"hostel", "budget_hotel", "boutique_hotel", "airbnb", "co_living", "with_people"}
	WorkStyleValues     = []string{"coworking", "cafes", "mostly_home", "not_working"}
	PaceValues          = []string{"packed", "anchors_wander", "slow_mornings", "rest"}
	PeakTimeValues      = []string{"morning", "afternoon", "night", "flex"}
	SpontaneityValues   = []string{"planned", "loose", "spontaneous"}
	TransportValues     = []string{"walk_transit", "mix_rideshare", "bikes_scooters", "rent_car"}
	SocialStyleValues   = []string{"deep_1_2", "small_groups", "big_social", "mostly_solo"}
	IntentionValues     = []string{"dating", "friends", "adventure", "open"}

	AnchorValues = []string{
		"food_markets",
		"museums",
		"nature_daytrips",
		"nightlife",
		"live_music",
		"architecture",
		"beaches_water",
		"shopping_design",
		"sports_fitness",
		"history_tours",
	}
)

// DefaultAnswers is the fully populated value a new quiz session starts from.
func DefaultAnswers() Answers {
	return Answers{
		Confidence:    "dates_set",
		Purpose:       "work_explore",
		Accommodation: "airbnb",
		WorkStyle:     "coworking",
		Pace:          "anchors_wander",
		PeakTime:      "flex",
		Spontaneity:   "loose",
		Budget:        2,
		Transport:     "walk_transit",
		SocialStyle:   "small_groups",
		Anchors:       []string{"food_markets", "architecture", "museums"},
		MustDo:        "",
		Intention:     "open",
	}
}

func contains(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
