package services

import (
	"errors"

	"github.com/n-tawaki/quiz-system/internal/models"

	"gorm.io/gorm"
)

var ErrQuestionNotFound = errors.New("question not found")

type QuestionService struct {
	db *gorm.DB
}

func NewQuestionService(db *gorm.DB) *QuestionService {
	return &QuestionService{db: db}
}

func (s *QuestionService) List() ([]models.Question, error) {
	questions := make([]models.Question, 0)
	if err := s.db.Order("id ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

// CorrectAnswer returns the stored correct-choice label for a question.
func (s *QuestionService) CorrectAnswer(questionID uint) (string, error) {
	var question models.Question
	err := s.db.Select("correct_answer").First(&question, questionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrQuestionNotFound
	}
	if err != nil {
		return "", err
	}
	return question.CorrectAnswer, nil
}
