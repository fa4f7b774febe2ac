package services

import (
	"fmt"

	"stresscheck/models"

	"github.com/samber/lo"
)

// MaxQuestionnaireScore is the sum of every question's highest option.
const MaxQuestionnaireScore = 135

// questionPoints maps each question's options to the stress points they add.
var questionPoints = map[models.QuestionID]map[string]int{
	models.QuestionBurden: {
		"Pekerjaan / tugas":          10,
		"Hubungan sosial / keluarga": 15,
		"Finansial atau Kesehatan":   20,
	},
	models.QuestionDuration: {
		"Beberapa hari":       5,
		"Lebih dari seminggu": 10,
		"Beberapa bulan":      15,
		"Sangat lama, bahkan lupa kapan merasa baik": 20,
	},
	models.QuestionFeeling: {
		"Cemas / khawatir berlebihan": 15,
		"Marah / mudah tersinggung":   10,
		"Lelah atau Mati rasa":        20,
	},
	models.QuestionSleep: {
		"Nyenyak & cukup":         0,
		"Sering bangun / gelisah": 10,
		"Sulit tidur":             15,
		"Terlalu banyak tidur":    20,
	},
	models.QuestionCoping: {
		"Curhat ke teman / keluarga": 0,
		"Menyibukkan diri":           10,
		"Menarik diri dari sekitar":  20,
		"Bingung harus bagaimana":    15,
	},
	models.QuestionSupport: {
		"Ya, lebih dari satu":     0,
		"Ya, tapi hanya satu-dua": 5,
		"Tidak yakin":             15,
		"Tidak ada":               20,
	},
	models.QuestionNeed: {
		"Waktu istirahat atau Tempat curhat":       5,
		"Arahan atau solusi praktis":               10,
		"Tidak tahu, tapi ingin merasa lebih baik": 15,
	},
}

// OptionPoints returns the points for one answer. Unknown options score 0.
//
// TODO: reject unknown options once clients send option IDs instead of text.
func OptionPoints(id models.QuestionID, option string) int {
	return questionPoints[id][option]
}

// ScoreAnswers sums the points of all seven answers into [0, MaxQuestionnaireScore].
func ScoreAnswers(answers models.Answers) int {
	return lo.SumBy(models.QuestionIDs, func(id models.QuestionID) int {
		return OptionPoints(id, answers.Get(id))
	})
}

// ValidateScoringTables checks that the questionnaire catalog and the scoring
// tables describe the same option domains and that the maxima add up.
func ValidateScoringTables() error {
	if len(questionPoints) != len(models.QuestionIDs) {
		return fmt.Errorf("scoring tables cover %d questions, want %d", len(questionPoints), len(models.QuestionIDs))
	}

	total := 0
	for _, q := range models.Questionnaire {
		table, ok := questionPoints[q.ID]
		if !ok {
			return fmt.Errorf("question %s has no scoring table", q.ID)
		}
		if len(table) != len(q.Options) {
			return fmt.Errorf("question %s: %d scored options, %d in catalog", q.ID, len(table), len(q.Options))
		}
		for _, opt := range q.Options {
			if _, ok := table[opt]; !ok {
				return fmt.Errorf("question %s: option %q has no points", q.ID, opt)
			}
		}
		total += lo.Max(lo.Values(table))
	}
	if total != MaxQuestionnaireScore {
		return fmt.Errorf("questionnaire maximum is %d, want %d", total, MaxQuestionnaireScore)
	}

	if len(emotionScores) != len(EmotionCategories) {
		return fmt.Errorf("emotion table has %d categories, want %d", len(emotionScores), len(EmotionCategories))
	}
	for _, category := range EmotionCategories {
		if _, ok := emotionScores[category]; !ok {
			return fmt.Errorf("emotion %q has no score", category)
		}
	}
	return nil
}
