package services

import (
	"errors"
	"math"
	"sort"

	"github.com/n-tawaki/quiz-system/internal/models"

	"gorm.io/gorm"
)

type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

// Score is the number of correct answers recorded for a user.
func (s *StatsService) Score(userName string) (int, error) {
	var count int64
	err := s.db.Model(&models.Answer{}).
		Where("user_name = ? AND is_correct = ?", userName, true).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

// UserAnswer looks up the choice a user selected for one question. The
// earliest submission wins, which keeps the result deterministic even if
// the uniqueness constraint is ever relaxed.
func (s *StatsService) UserAnswer(userName string, questionID uint) (string, bool, error) {
	var answer models.Answer
	err := s.db.Where("user_name = ? AND question_id = ?", userName, questionID).
		Order("answered_at ASC, id ASC").
		First(&answer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return answer.SelectedChoice, true, nil
}

type ChoiceCount struct {
	Choice string `json:"choice"`
	Count  int    `json:"count"`
}

// ChoiceDistribution counts answers per choice label for one question.
// Every label in the fixed set appears in the result, zero counts included.
func (s *StatsService) ChoiceDistribution(questionID uint) ([]ChoiceCount, error) {
	var rows []ChoiceCount
	err := s.db.Model(&models.Answer{}).
		Select("selected_choice AS choice, COUNT(*) AS count").
		Where("question_id = ?", questionID).
		Group("selected_choice").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(rows))
	for _, r := range rows {
		counts[r.Choice] = r.Count
	}

	result := make([]ChoiceCount, 0, len(models.ChoiceLabels))
	for _, label := range models.ChoiceLabels {
		result = append(result, ChoiceCount{Choice: label, Count: counts[label]})
	}
	return result, nil
}

type RankingEntry struct {
	Rank     int     `json:"rank"`
	UserName string  `json:"user_name"`
	Point    int     `json:"point"`
	Time     float64 `json:"time"`
}

type rankingRow struct {
	UserName string
	Points   int
	TotalMs  int64
}

// Ranking orders users by correct-answer count descending, ties broken by
// total time spent on correct answers ascending. Users with equal count and
// time share a rank. Time is reported in seconds with two decimals.
func (s *StatsService) Ranking() ([]RankingEntry, error) {
	var rows []rankingRow
	err := s.db.Model(&models.Answer{}).
		Select("user_name, " +
			"COUNT(CASE WHEN is_correct THEN 1 END) AS points, " +
			"COALESCE(SUM(CASE WHEN is_correct THEN answer_time_ms END), 0) AS total_ms").
		Group("user_name").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Points != rows[j].Points {
			return rows[i].Points > rows[j].Points
		}
		if rows[i].TotalMs != rows[j].TotalMs {
			return rows[i].TotalMs < rows[j].TotalMs
		}
		return rows[i].UserName < rows[j].UserName
	})

	result := make([]RankingEntry, 0, len(rows))
	for i, r := range rows {
		rank := i + 1
		if i > 0 && r.Points == rows[i-1].Points && r.TotalMs == rows[i-1].TotalMs {
			rank = result[i-1].Rank
		}
		result = append(result, RankingEntry{
			Rank:     rank,
			UserName: r.UserName,
			Point:    r.Points,
			Time:     math.Round(float64(r.TotalMs)/10) / 100,
		})
	}
	return result, nil
}
