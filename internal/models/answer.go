package models

import "time"

// Answer is one stored submission. IsCorrect is derived at write time and
// never updated. AnswerTimeMs is NULL when the question had no recorded
// start time. The unique index enforces one answer per user per question.
type Answer struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserName       string    `gorm:"size:100;not null;uniqueIndex:idx_user_question" json:"user_name"`
	QuestionID     uint      `gorm:"not null;uniqueIndex:idx_user_question;index" json:"question_id"`
	SelectedChoice string    `gorm:"size:1;not null" json:"selected_choice"`
	IsCorrect      bool      `gorm:"not null" json:"is_correct"`
	AnsweredAt     time.Time `json:"answered_at"`
	AnswerTimeMs   *int64    `json:"answer_time_ms,omitempty"`
}

func (Answer) TableName() string {
	return "user_answers"
}
