package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"elope/internal/models/request_models"
	"elope/internal/quiz"
	"elope/internal/services"
	"elope/pkg/utils"
)

type QuizController struct {
	quizService services.QuizServiceInterface
}

func NewQuizController(quizService services.QuizServiceInterface) *QuizController {
	return &QuizController{
		quizService: quizService,
	}
}

// StartSession godoc
// @Summary Start a new trip quiz session
// @Tags Quiz
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /quiz/start [post]
func (q *QuizController) StartSession(c *gin.Context) {
	session := q.quizService.StartSession(c.GetString("user_id"))
	utils.RespondSuccess(c, session, "Quiz session started")
}

// GetSession godoc
// @Summary Fetch the current state of a quiz session
// @Tags Quiz
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /quiz/{id} [get]
func (q *QuizController) GetSession(c *gin.Context) {
	session, err := q.quizService.GetSession(c.Param("id"), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, session, "Quiz session fetched")
}

// ApplyEvent godoc
// @Summary Apply one flow event (next, back, select_city, set_dates, set_answers)
// @Tags Quiz
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Param request body request_models.QuizEventRequest true "Event payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /quiz/{id}/event [post]
func (q *QuizController) ApplyEvent(c *gin.Context) {
	var req request_models.QuizEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	event := quiz.Event{Kind: quiz.EventKind(req.Kind), CityID: req.CityID}

	if req.Kind == string(quiz.EventSetDates) {
		start, err := utils.ParseDate(req.StartDate)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid start date, expected YYYY-MM-DD")
			return
		}
		end, err := utils.ParseDate(req.EndDate)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid end date, expected YYYY-MM-DD")
			return
		}
		event.StartDate = start
		event.EndDate = end
	}

	if req.Kind == string(quiz.EventSetAnswers) {
		if req.Answers == nil {
			utils.RespondError(c, http.StatusBadRequest, "Answers payload missing")
			return
		}
		event.Answers = *req.Answers
	}

	session, err := q.quizService.ApplyEvent(c.Param("id"), c.GetString("user_id"), event)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, session, "Quiz session updated")
}

// SaveSession godoc
// @Summary Validate the session and activate the trip
// @Tags Quiz
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Security BearerAuth
// @Router /quiz/{id}/save [post]
func (q *QuizController) SaveSession(c *gin.Context) {
	saved, err := q.quizService.SaveSession(c.Request.Context(), c.Param("id"), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, saved, "Trip activated, browsing unlocked for "+saved.CountryName)
}
