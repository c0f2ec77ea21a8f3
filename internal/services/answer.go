package services

import (
	"errors"
	"time"

	"github.com/n-tawaki/quiz-system/internal/models"

	"gorm.io/gorm"
)

var ErrAlreadyAnswered = errors.New("already answered")

type AnswerService struct {
	db *gorm.DB
}

func NewAnswerService(db *gorm.DB) *AnswerService {
	return &AnswerService{db: db}
}

// Submit records one answer. Correctness is an exact match against the
// stored correct-choice label. Elapsed time is only computed when the
// question has a recorded start time; otherwise it is stored as NULL,
// not zero. One answer per user per question; repeats are rejected.
func (s *AnswerService) Submit(userName string, questionID uint, selectedChoice string) (bool, error) {
	var question models.Question
	err := s.db.First(&question, questionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, ErrQuestionNotFound
	}
	if err != nil {
		return false, err
	}

	var existing models.Answer
	err = s.db.Where("user_name = ? AND question_id = ?", userName, questionID).
		First(&existing).Error
	if err == nil {
		return false, ErrAlreadyAnswered
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	answeredAt := time.Now()
	isCorrect := selectedChoice == question.CorrectAnswer

	var answerTimeMs *int64
	if question.StartTime != nil {
		ms := answeredAt.Sub(*question.StartTime).Milliseconds()
		answerTimeMs = &ms
	}

	answer := models.Answer{
		UserName:       userName,
		QuestionID:     questionID,
		SelectedChoice: selectedChoice,
		IsCorrect:      isCorrect,
		AnsweredAt:     answeredAt,
		AnswerTimeMs:   answerTimeMs,
	}
	if err := s.db.Create(&answer).Error; err != nil {
		return false, err
	}

	return isCorrect, nil
}
