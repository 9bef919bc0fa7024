package user

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rohannso/Quiz-backend/internal/dto"
	"github.com/rohannso/Quiz-backend/internal/service"
	"github.com/rohannso/Quiz-backend/internal/validation"
	"github.com/rs/zerolog/log"
)

// QuizController serves the public quiz surface: listing, the take view,
// and answer submission. None of its routes require authentication.
type QuizController struct {
	quizService service.QuizService
	takeService service.TakeService
}

func NewQuizController(quizService service.QuizService, takeService service.TakeService) *QuizController {
	return &QuizController{quizService: quizService, takeService: takeService}
}

// ListQuizzes godoc
// @Summary List all quizzes
// @Tags Public
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /quizzes [get]
func (c *QuizController) ListQuizzes(ctx *gin.Context) {
	quizzes, err := c.quizService.ListQuizzes()
	if err != nil {
		log.Error().Err(err).Msg("ListQuizzes: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to retrieve quizzes"})
		return
	}

	if len(quizzes) == 0 {
		ctx.JSON(http.StatusOK, gin.H{"message": "No quizzes found", "data": []dto.QuizResponse{}})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"message": "Quizzes retrieved successfully",
		"count":   len(quizzes),
		"data":    quizzes,
	})
}

// TakeQuiz godoc
// @Summary Fetch a quiz's questions for taking, with correct answers stripped
// @Tags Public
// @Produce json
// @Param id path int true "Quiz ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} dto.ErrorResponse "Quiz not found or has no questions"
// @Router /quizzes/{id}/take [get]
func (c *QuizController) TakeQuiz(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	take, err := c.takeService.TakeQuiz(id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrQuizNotFound):
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Quiz not found"})
		case errors.Is(err, service.ErrQuizHasNoQuestions):
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "This quiz has no questions yet"})
		default:
			log.Error().Err(err).Uint("quizID", id).Msg("TakeQuiz: service error")
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to retrieve quiz questions"})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message":         "Quiz questions retrieved successfully",
		"quiz_title":      take.QuizTitle,
		"total_questions": take.TotalQuestions,
		"data":            take.Questions,
	})
}

// SubmitQuiz godoc
// @Summary Submit answers for a quiz and get the score
// @Tags Public
// @Accept json
// @Produce json
// @Param id path int true "Quiz ID"
// @Param submission body dto.SubmitRequest true "Answer list"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Router /quizzes/{id}/submit [post]
func (c *QuizController) SubmitQuiz(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var req dto.SubmitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Validation failed", Details: []string{err.Error()}})
		return
	}

	result, err := c.takeService.SubmitQuiz(id, req)
	if err != nil {
		var verr *validation.Error
		switch {
		case errors.Is(err, service.ErrQuizNotFound):
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Quiz not found"})
		case errors.As(err, &verr):
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Validation failed", Details: verr.Fields})
		default:
			log.Error().Err(err).Uint("quizID", id).Msg("SubmitQuiz: service error")
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to score submission"})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message":    "Quiz submitted successfully",
		"score":      result.Score,
		"total":      result.Total,
		"percentage": result.Percentage,
	})
}

func parseID(ctx *gin.Context) (uint, bool) {
	val, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid quiz ID format"})
		return 0, false
	}
	return uint(val), true
}
