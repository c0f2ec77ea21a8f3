package handlers

import (
	"net/http"
	"strconv"

	"github.com/n-tawaki/quiz-system/internal/services"

	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	questionService *services.QuestionService
}

func NewQuestionHandler(questionService *services.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionService: questionService}
}

// ListQuestions godoc
// @Summary      List all questions
// @Description  Every question with its four choices. Correct answers and start times are not included.
// @Tags         questions
// @Produce      json
// @Success      200 {array} models.Question
// @Failure      500 {object} ErrorResponse
// @Router       /questions [get]
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	questions, err := h.questionService.List()
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, questions)
}

// GetCorrectAnswer godoc
// @Summary      Get the correct answer for a question
// @Description  Returns a one-element array with the correct-choice label, or null when the question does not exist
// @Tags         questions
// @Produce      json
// @Param        question_id path int true "Question ID"
// @Success      200 {array} string
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /correct_answer/{question_id} [get]
func (h *QuestionHandler) GetCorrectAnswer(c *gin.Context) {
	questionID, err := strconv.ParseUint(c.Param("question_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, failResponse("invalid question id"))
		return
	}

	answer, err := h.questionService.CorrectAnswer(uint(questionID))
	if err == services.ErrQuestionNotFound {
		c.JSON(http.StatusOK, nil)
		return
	}
	if err != nil {
		storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, []string{answer})
}
