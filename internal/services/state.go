package services

import (
	"time"

	"github.com/n-tawaki/quiz-system/internal/models"
	"github.com/n-tawaki/quiz-system/internal/session"

	"gorm.io/gorm"
)

type StateService struct {
	db     *gorm.DB
	holder *session.Holder
}

func NewStateService(db *gorm.DB, holder *session.Holder) *StateService {
	return &StateService{db: db, holder: holder}
}

func (s *StateService) Get() session.State {
	return s.holder.Get()
}

// Set overwrites the session state. Entering the answering phase stamps the
// question's start time first, so any client that receives the broadcast
// and immediately submits an answer observes a persisted start time.
func (s *StateService) Set(phase string, questionID uint) (session.State, error) {
	if phase == session.PhaseAnswering {
		err := s.db.Model(&models.Question{}).
			Where("id = ?", questionID).
			Update("start_time", time.Now()).Error
		if err != nil {
			return session.State{}, err
		}
	}
	return s.holder.Set(phase, questionID), nil
}
