package models

import "time"

// Question choices are labelled "1".."4"; CorrectAnswer holds one of those
// labels. StartTime is set when the question enters the answering phase and
// stays NULL until then.
type Question struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	QuestionText  string     `gorm:"type:text;not null" json:"question_text"`
	ChoiceA       string     `gorm:"type:text;not null" json:"choice_a"`
	ChoiceB       string     `gorm:"type:text;not null" json:"choice_b"`
	ChoiceC       string     `gorm:"type:text;not null" json:"choice_c"`
	ChoiceD       string     `gorm:"type:text;not null" json:"choice_d"`
	CorrectAnswer string     `gorm:"size:1;not null" json:"-"`
	StartTime     *time.Time `json:"-"`
}

// ChoiceLabels is the fixed label set used for selected_choice and
// correct_answer values.
var ChoiceLabels = []string{"1", "2", "3", "4"}
