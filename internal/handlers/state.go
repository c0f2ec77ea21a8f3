package handlers

import (
	"net/http"

	"github.com/n-tawaki/quiz-system/internal/services"
	"github.com/n-tawaki/quiz-system/internal/ws"

	"github.com/gin-gonic/gin"
)

type StateHandler struct {
	stateService *services.StateService
	hub          *ws.Hub
}

func NewStateHandler(stateService *services.StateService, hub *ws.Hub) *StateHandler {
	return &StateHandler{stateService: stateService, hub: hub}
}

type SetStateRequest struct {
	State      string `json:"state" binding:"required" example:"ANSWERING"`
	QuestionID uint   `json:"question_id" example:"1"`
}

type StateResponse struct {
	State      string `json:"state" example:"WAITING"`
	QuestionID uint   `json:"question_id" example:"1"`
}

type SetStateResponse struct {
	Success    bool   `json:"success"`
	State      string `json:"state" example:"ANSWERING"`
	QuestionID uint   `json:"question_id" example:"1"`
}

// GetState godoc
// @Summary      Get session state
// @Description  Current phase and question of the running session
// @Tags         state
// @Produce      json
// @Success      200 {object} StateResponse
// @Router       /state [get]
func (h *StateHandler) GetState(c *gin.Context) {
	state := h.stateService.Get()
	c.JSON(http.StatusOK, StateResponse{State: state.Phase, QuestionID: state.QuestionID})
}

// SetState godoc
// @Summary      Update session state
// @Description  Overwrite the phase and current question, then push the new state to every connected client. Entering ANSWERING stamps the question start time.
// @Tags         state
// @Accept       json
// @Produce      json
// @Param        request body SetStateRequest true "New state"
// @Success      200 {object} SetStateResponse
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /state [post]
func (h *StateHandler) SetState(c *gin.Context) {
	var req SetStateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c)
		return
	}

	state, err := h.stateService.Set(req.State, req.QuestionID)
	if err != nil {
		storeError(c, err)
		return
	}

	// Start time is persisted before anyone hears about the change.
	h.hub.Broadcast(ws.StateMessage{State: state.Phase, QuestionID: state.QuestionID})

	c.JSON(http.StatusOK, SetStateResponse{
		Success:    true,
		State:      state.Phase,
		QuestionID: state.QuestionID,
	})
}
