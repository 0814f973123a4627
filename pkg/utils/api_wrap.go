package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps service sentinels onto HTTP codes. Every
// validation failure keeps its own message; a PersistenceError keeps the
// collaborator's text untouched.
func HandleServiceError(c *gin.Context, err error) {
	var pe *PersistenceError
	switch {
	case errors.Is(err, ErrNotSignedIn):
		RespondError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, ErrMissingCity),
		errors.Is(err, ErrMissingDates),
		errors.Is(err, ErrInvalidDateRange),
		errors.Is(err, ErrMissingAnchors),
		errors.Is(err, ErrWrongAnchorCount),
		errors.Is(err, ErrDuplicateAnchor),
		errors.Is(err, ErrEmptyMustDo),
		errors.Is(err, ErrInvalidAnswer),
		errors.Is(err, ErrInvalidBudget):
		RespondError(c, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, ErrSaveInFlight):
		RespondError(c, http.StatusConflict, err.Error())
	case errors.Is(err, ErrSessionNotFound),
		errors.Is(err, ErrCityNotFound),
		errors.Is(err, ErrAccountNotFound):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusConflict, err.Error())
	case errors.As(err, &pe):
		RespondError(c, http.StatusBadGateway, pe.Message)
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
