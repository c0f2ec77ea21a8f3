// Package session owns the process-wide quiz session state: the current
// phase and the current question. The state is not persisted; a restart
// resets it to the defaults.
package session

import "sync"

const (
	PhaseWaiting   = "WAITING"
	PhaseAnswering = "ANSWERING"
)

// State is a snapshot of the session at one point in time.
type State struct {
	Phase      string `json:"state"`
	QuestionID uint   `json:"question_id"`
}

// Holder guards the mutable session state. Phase values are stored as
// given; controllers may use values outside the known constants.
type Holder struct {
	mu    sync.RWMutex
	state State
}

func NewHolder() *Holder {
	return &Holder{state: State{Phase: PhaseWaiting, QuestionID: 0}}
}

func (h *Holder) Get() State {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.state
}

func (h *Holder) Set(phase string, questionID uint) State {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.state = State{Phase: phase, QuestionID: questionID}
	return h.state
}
