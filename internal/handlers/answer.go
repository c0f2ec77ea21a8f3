package handlers

import (
	"net/http"

	"github.com/n-tawaki/quiz-system/internal/services"

	"github.com/gin-gonic/gin"
)

type AnswerHandler struct {
	answerService *services.AnswerService
}

func NewAnswerHandler(answerService *services.AnswerService) *AnswerHandler {
	return &AnswerHandler{answerService: answerService}
}

type SubmitAnswerRequest struct {
	UserName       string `json:"user_name" binding:"required,max=100" example:"alice"`
	QuestionID     uint   `json:"question_id" binding:"required" example:"1"`
	SelectedChoice string `json:"selected_choice" binding:"required,oneof=1 2 3 4" example:"3"`
}

type SubmitAnswerResponse struct {
	Success   bool `json:"success"`
	IsCorrect bool `json:"is_correct"`
}

// SubmitAnswer godoc
// @Summary      Submit an answer
// @Description  Record one user's choice for a question. Correctness and elapsed time are derived at write time; one answer per user per question.
// @Tags         answers
// @Accept       json
// @Produce      json
// @Param        request body SubmitAnswerRequest true "Answer"
// @Success      200 {object} SubmitAnswerResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /answers [post]
func (h *AnswerHandler) SubmitAnswer(c *gin.Context) {
	var req SubmitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c)
		return
	}

	isCorrect, err := h.answerService.Submit(req.UserName, req.QuestionID, req.SelectedChoice)
	switch {
	case err == services.ErrQuestionNotFound:
		c.JSON(http.StatusNotFound, failResponse("question not found"))
		return
	case err == services.ErrAlreadyAnswered:
		c.JSON(http.StatusConflict, failResponse("already answered"))
		return
	case err != nil:
		storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, SubmitAnswerResponse{Success: true, IsCorrect: isCorrect})
}
