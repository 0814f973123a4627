package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"elope/internal/models/response_models"
	"elope/internal/quiz"
	mem "elope/pkg/memcache"
	"elope/pkg/utils"
)

type QuizServiceInterface interface {
	StartSession(userID string) *response_models.QuizSessionResponse
	GetSession(sessionID string, userID string) (*response_models.QuizSessionResponse, error)

	// ApplyEvent runs one event through the flow reducer and stores the
	// resulting state back on the session.
	ApplyEvent(sessionID string, userID string, event quiz.Event) (*response_models.QuizSessionResponse, error)

	// SaveSession validates and persists the session's trip. While one save
	// is outstanding the session refuses a second; on success the session is
	// disposed of.
	SaveSession(ctx context.Context, sessionID string, userID string) (*response_models.SaveTripResponse, error)
}

type QuizService struct {
	sessions   mem.QuizSessionStore
	trips      TripServiceInterface
	sessionTTL time.Duration
	logger     *zap.Logger
}

func NewQuizService(sessions mem.QuizSessionStore, trips TripServiceInterface, sessionTTL time.Duration, logger *zap.Logger) QuizServiceInterface {
	return &QuizService{
		sessions:   sessions,
		trips:      trips,
		sessionTTL: sessionTTL,
		logger:     logger,
	}
}

func (q *QuizService) StartSession(userID string) *response_models.QuizSessionResponse {
	state := quiz.NewFlowState()
	id := q.sessions.Create(userID, state, q.sessionTTL)
	return sessionResponse(id, state)
}

func (q *QuizService) GetSession(sessionID string, userID string) (*response_models.QuizSessionResponse, error) {
	session, ok := q.sessions.Get(sessionID)
	if !ok || session.UserID != userID {
		return nil, utils.ErrSessionNotFound
	}
	return sessionResponse(sessionID, session.State), nil
}

func (q *QuizService) ApplyEvent(sessionID string, userID string, event quiz.Event) (*response_models.QuizSessionResponse, error) {
	session, ok := q.sessions.Get(sessionID)
	if !ok || session.UserID != userID {
		return nil, utils.ErrSessionNotFound
	}

	next := quiz.Reduce(session.State, event)
	if !q.sessions.Update(sessionID, next) {
		return nil, utils.ErrSessionNotFound
	}
	return sessionResponse(sessionID, next), nil
}

func (q *QuizService) SaveSession(ctx context.Context, sessionID string, userID string) (*response_models.SaveTripResponse, error) {
	session, ok := q.sessions.Get(sessionID)
	if !ok || session.UserID != userID {
		return nil, utils.ErrSessionNotFound
	}

	started, found := q.sessions.BeginSave(sessionID)
	if !found {
		return nil, utils.ErrSessionNotFound
	}
	if !started {
		return nil, utils.ErrSaveInFlight
	}
	defer q.sessions.EndSave(sessionID)

	saved, err := q.trips.SaveTrip(ctx, userID, session.State)
	if err != nil {
		// The session stays; the user fixes the state and saves again.
		return nil, err
	}

	q.sessions.Delete(sessionID)
	q.logger.Info("trip activated",
		zap.String("session_id", sessionID),
		zap.String("trip_id", saved.TripID),
		zap.String("country", saved.CountryName))
	return saved, nil
}

func sessionResponse(id string, state quiz.FlowState) *response_models.QuizSessionResponse {
	return &response_models.QuizSessionResponse{
		SessionID:  id,
		Step:       state.Step,
		TotalSteps: quiz.LastStep,
		CityID:     state.CityID,
		StartDate:  utils.FormatDate(state.StartDate),
		EndDate:    utils.FormatDate(state.EndDate),
		Answers:    state.Answers,
	}
}
