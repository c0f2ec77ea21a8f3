package services

import (
	"testing"

	"github.com/n-tawaki/quiz-system/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	// A second pooled connection would see an empty in-memory database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("access pool: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.Question{}, &models.Answer{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func seedQuestion(t *testing.T, db *gorm.DB, correct string) models.Question {
	t.Helper()

	q := models.Question{
		QuestionText:  "What is the capital of Japan?",
		ChoiceA:       "Tokyo",
		ChoiceB:       "Osaka",
		ChoiceC:       "Kyoto",
		ChoiceD:       "Nagoya",
		CorrectAnswer: correct,
	}
	if err := db.Create(&q).Error; err != nil {
		t.Fatalf("seed question: %v", err)
	}
	return q
}
