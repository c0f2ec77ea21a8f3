package handlers

import (
	"net/http"
	"strconv"

	"github.com/n-tawaki/quiz-system/internal/services"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	statsService *services.StatsService
}

func NewStatsHandler(statsService *services.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

type ScoreResponse struct {
	UserName string `json:"user_name" example:"alice"`
	Score    int    `json:"score" example:"3"`
}

type UserAnswerResponse struct {
	Answered       bool   `json:"answered"`
	SelectedChoice string `json:"selected_choice,omitempty" example:"2"`
}

// GetScore godoc
// @Summary      Get a user's score
// @Description  Count of correct answers recorded for the user
// @Tags         stats
// @Produce      json
// @Param        user_name path string true "User name"
// @Success      200 {object} ScoreResponse
// @Failure      500 {object} ErrorResponse
// @Router       /scores/{user_name} [get]
func (h *StatsHandler) GetScore(c *gin.Context) {
	userName := c.Param("user_name")

	score, err := h.statsService.Score(userName)
	if err != nil {
		storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, ScoreResponse{UserName: userName, Score: score})
}

// GetUserAnswer godoc
// @Summary      Get one user's answer to one question
// @Description  The selected choice, or answered=false when no record exists
// @Tags         stats
// @Produce      json
// @Param        user_name path string true "User name"
// @Param        question_id path int true "Question ID"
// @Success      200 {object} UserAnswerResponse
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /answers/{user_name}/{question_id} [get]
func (h *StatsHandler) GetUserAnswer(c *gin.Context) {
	userName := c.Param("user_name")
	questionID, err := strconv.ParseUint(c.Param("question_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, failResponse("invalid question id"))
		return
	}

	choice, answered, err := h.statsService.UserAnswer(userName, uint(questionID))
	if err != nil {
		storeError(c, err)
		return
	}

	if !answered {
		c.JSON(http.StatusOK, UserAnswerResponse{Answered: false})
		return
	}
	c.JSON(http.StatusOK, UserAnswerResponse{Answered: true, SelectedChoice: choice})
}

// GetChoiceDistribution godoc
// @Summary      Answer counts per choice
// @Description  For one question, the number of answers per choice label. All four labels are present, zero counts included.
// @Tags         stats
// @Produce      json
// @Param        question_id path int true "Question ID"
// @Success      200 {array} services.ChoiceCount
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /answer_check/{question_id} [get]
func (h *StatsHandler) GetChoiceDistribution(c *gin.Context) {
	questionID, err := strconv.ParseUint(c.Param("question_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, failResponse("invalid question id"))
		return
	}

	distribution, err := h.statsService.ChoiceDistribution(uint(questionID))
	if err != nil {
		storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, distribution)
}

// GetRanking godoc
// @Summary      Get the ranking
// @Description  Users ordered by correct-answer count, ties broken by total time spent on correct answers
// @Tags         stats
// @Produce      json
// @Success      200 {array} services.RankingEntry
// @Failure      500 {object} ErrorResponse
// @Router       /ranking [get]
func (h *StatsHandler) GetRanking(c *gin.Context) {
	ranking, err := h.statsService.Ranking()
	if err != nil {
		storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, ranking)
}
