package admin

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rohannso/Quiz-backend/internal/dto"
	"github.com/rohannso/Quiz-backend/internal/service"
	"github.com/rohannso/Quiz-backend/internal/validation"
	"github.com/rs/zerolog/log"
)

type QuizController struct {
	quizService service.QuizService
}

func NewQuizController(quizService service.QuizService) *QuizController {
	return &QuizController{quizService: quizService}
}

// CreateQuiz godoc
// @Summary Create a quiz
// @Tags Quizzes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param quiz body dto.QuizRequest true "Quiz data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Router /quizzes [post]
func (c *QuizController) CreateQuiz(ctx *gin.Context) {
	var req dto.QuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	quiz, err := c.quizService.CreateQuiz(req)
	if err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Validation failed", Details: verr.Fields})
			return
		}
		log.Error().Err(err).Msg("CreateQuiz: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to create quiz"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": "Quiz created successfully", "data": quiz})
}

// GetQuiz godoc
// @Summary Retrieve a quiz with its question count
// @Tags Quizzes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Quiz ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Router /quizzes/{id} [get]
func (c *QuizController) GetQuiz(ctx *gin.Context) {
	id, ok := parseID(ctx, "Invalid quiz ID format")
	if !ok {
		return
	}

	quiz, err := c.quizService.GetQuiz(id)
	if err != nil {
		if errors.Is(err, service.ErrQuizNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Quiz not found"})
			return
		}
		log.Error().Err(err).Uint("quizID", id).Msg("GetQuiz: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to retrieve quiz"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Quiz retrieved successfully", "data": quiz})
}

// UpdateQuiz godoc
// @Summary Update a quiz title
// @Tags Quizzes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Quiz ID"
// @Param quiz body dto.QuizRequest true "Quiz data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Router /quizzes/{id} [put]
func (c *QuizController) UpdateQuiz(ctx *gin.Context) {
	id, ok := parseID(ctx, "Invalid quiz ID format")
	if !ok {
		return
	}

	var req dto.QuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	quiz, err := c.quizService.UpdateQuiz(id, req)
	if err != nil {
		var verr *validation.Error
		switch {
		case errors.As(err, &verr):
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Validation failed", Details: verr.Fields})
		case errors.Is(err, service.ErrQuizNotFound):
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Quiz not found"})
		default:
			log.Error().Err(err).Uint("quizID", id).Msg("UpdateQuiz: service error")
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to update quiz"})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Quiz updated successfully", "data": quiz})
}

// DeleteQuiz godoc
// @Summary Delete a quiz and cascade to its questions and options
// @Tags Quizzes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Quiz ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Router /quizzes/{id} [delete]
func (c *QuizController) DeleteQuiz(ctx *gin.Context) {
	id, ok := parseID(ctx, "Invalid quiz ID format")
	if !ok {
		return
	}

	title, err := c.quizService.DeleteQuiz(id)
	if err != nil {
		if errors.Is(err, service.ErrQuizNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Quiz not found"})
			return
		}
		log.Error().Err(err).Uint("quizID", id).Msg("DeleteQuiz: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to delete quiz"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Quiz %q deleted successfully", title)})
}

func parseID(ctx *gin.Context, message string) (uint, bool) {
	val, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: message})
		return 0, false
	}
	return uint(val), true
}
