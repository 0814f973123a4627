package utils

import "errors"

var (
	ErrNotSignedIn      = errors.New("please sign in first")
	ErrMissingCity      = errors.New("pick a city")
	ErrMissingDates     = errors.New("pick dates")
	ErrInvalidDateRange = errors.New("end date must be after start date")
	ErrMissingAnchors   = errors.New("pick 3 anchors")
	ErrWrongAnchorCount = errors.New("pick exactly 3 anchors")
	ErrDuplicateAnchor  = errors.New("no duplicates, pick 3 different anchors")
	ErrEmptyMustDo      = errors.New("add your must-do")
	ErrInvalidAnswer    = errors.New("answer is not one of the allowed options")
	ErrInvalidBudget    = errors.New("budget tier must be between 1 and 4")

	ErrSaveInFlight    = errors.New("a save is already in progress")
	ErrSessionNotFound = errors.New("quiz session not found or expired")
	ErrCityNotFound    = errors.New("city not found")

	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrDatabaseError      = errors.New("database error")
)

// PersistenceError carries the storage collaborator's failure text so it
// reaches the user verbatim instead of being reinterpreted.
type PersistenceError struct {
	Message string
}

func (e *PersistenceError) Error() string {
	return e.Message
}

func NewPersistenceError(cause error) *PersistenceError {
	return &PersistenceError{Message: cause.Error()}
}
