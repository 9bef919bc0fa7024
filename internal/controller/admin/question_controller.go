package admin

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

type QuestionController struct {
	questionService service.QuestionService
}

func NewQuestionController(questionService service.QuestionService) *QuestionController {
	return &QuestionController{questionService: questionService}
}

// CreateQuestion godoc
// @Summary Create a question with its options
// @Description Persists the question together with its 2-6 options atomically. Exactly one option must be marked correct.
// @Tags Questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param question body dto.QuestionCreateRequest true "Question with options"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Router /questions [post]
func (c *QuestionController) CreateQuestion(ctx *gin.Context) {
	var req dto.QuestionCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	question, err := c.questionService.CreateQuestion(req)
	if err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Validation failed", Details: verr.Fields})
			return
		}
		log.Error().Err(err).Uint("quizID", req.QuizID).Msg("CreateQuestion: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to create question"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": "Question created successfully", "data": question})
}

// ListQuestions godoc
// @Summary List questions, optionally filtered by quiz
// @Tags Questions
// @Produce json
// @Security BearerAuth
// @Param quiz_id query int false "Filter by quiz ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} dto.ErrorResponse "Invalid quiz_id format"
// @Router /questions [get]
func (c *QuestionController) ListQuestions(ctx *gin.Context) {
	var quizID *uint
	if raw := ctx.Query("quiz_id"); raw != "" {
		val, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid quiz_id format"})
			return
		}
		id := uint(val)
		quizID = &id
	}

	questions, err := c.questionService.ListQuestions(quizID)
	if err != nil {
		log.Error().Err(err).Msg("ListQuestions: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to retrieve questions"})
		return
	}

	if len(questions) == 0 {
		ctx.JSON(http.StatusOK, gin.H{"message": "No questions found", "data": []dto.QuestionResponse{}})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"message": "Questions retrieved successfully",
		"count":   len(questions),
		"data":    questions,
	})
}

// GetQuestion godoc
// @Summary Retrieve a question with its options
// @Tags Questions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Question ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /questions/{id} [get]
func (c *QuestionController) GetQuestion(ctx *gin.Context) {
	id, ok := parseID(ctx, "Invalid question ID format")
	if !ok {
		return
	}

	question, err := c.questionService.GetQuestion(id)
	if err != nil {
		if errors.Is(err, service.ErrQuestionNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Question not found"})
			return
		}
		log.Error().Err(err).Uint("questionID", id).Msg("GetQuestion: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to retrieve question"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Question retrieved successfully", "data": question})
}

// UpdateQuestion godoc
// @Summary Update a question's text
// @Tags Questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Question ID"
// @Param question body dto.QuestionUpdateRequest true "New text"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /questions/{id} [put]
func (c *QuestionController) UpdateQuestion(ctx *gin.Context) {
	id, ok := parseID(ctx, "Invalid question ID format")
	if !ok {
		return
	}

	var req dto.QuestionUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	question, err := c.questionService.UpdateQuestion(id, req)
	if err != nil {
		var verr *validation.Error
		switch {
		case errors.As(err, &verr):
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Validation failed", Details: verr.Fields})
		case errors.Is(err, service.ErrQuestionNotFound):
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Question not found"})
		default:
			log.Error().Err(err).Uint("questionID", id).Msg("UpdateQuestion: service error")
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to update question"})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Question updated successfully", "data": question})
}

// DeleteQuestion godoc
// @Summary Delete a question and its options
// @Tags Questions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Question ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /questions/{id} [delete]
func (c *QuestionController) DeleteQuestion(ctx *gin.Context) {
	id, ok := parseID(ctx, "Invalid question ID format")
	if !ok {
		return
	}

	if err := c.questionService.DeleteQuestion(id); err != nil {
		if errors.Is(err, service.ErrQuestionNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Question not found"})
			return
		}
		log.Error().Err(err).Uint("questionID", id).Msg("DeleteQuestion: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to delete question"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Question deleted successfully"})
}
