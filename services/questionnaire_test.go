package services

import (
	"testing"

	"stresscheck/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreAnswers(t *testing.T) {
	tests := []struct {
		description string
		answers     models.Answers
		want        int
	}{
		{
			"Should score the reference answer set",
			sampleAnswers(),
			105,
		},
		{
			"Should reach the maximum with the heaviest options",
			models.Answers{
				Q1: "Finansial atau Kesehatan",
				Q2: "Sangat lama, bahkan lupa kapan merasa baik",
				Q3: "Lelah atau Mati rasa",
				Q4: "Terlalu banyak tidur",
				Q5: "Menarik diri dari sekitar",
				Q6: "Tidak ada",
				Q7: "Tidak tahu, tapi ingin merasa lebih baik",
			},
			MaxQuestionnaireScore,
		},
		{
			"Should score the lightest options",
			models.Answers{
				Q1: "Pekerjaan / tugas",
				Q2: "Beberapa hari",
				Q3: "Marah / mudah tersinggung",
				Q4: "Nyenyak & cukup",
				Q5: "Curhat ke teman / keluarga",
				Q6: "Ya, lebih dari satu",
				Q7: "Waktu istirahat atau Tempat curhat",
			},
			30,
		},
		{
			"Should count unknown options as zero",
			func() models.Answers {
				a := sampleAnswers()
				a.Q1 = "Something else"
				a.Q6 = "tidak ada"
				return a
			}(),
			75,
		},
		{
			"Should score an empty answer set as zero",
			models.Answers{},
			0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			assert.Equal(t, tt.want, ScoreAnswers(tt.answers))
		})
	}
}

func TestScoreAnswers_StaysWithinBoundsForEveryCombination(t *testing.T) {
	q := models.Questionnaire
	count := 0
	for _, a1 := range q[0].Options {
		for _, a2 := range q[1].Options {
			for _, a3 := range q[2].Options {
				for _, a4 := range q[3].Options {
					for _, a5 := range q[4].Options {
						for _, a6 := range q[5].Options {
							for _, a7 := range q[6].Options {
								score := ScoreAnswers(models.Answers{Q1: a1, Q2: a2, Q3: a3, Q4: a4, Q5: a5, Q6: a6, Q7: a7})
								if score < 0 || score > MaxQuestionnaireScore {
									t.Fatalf("score %d out of range for %v", score, []string{a1, a2, a3, a4, a5, a6, a7})
								}
								count++
							}
						}
					}
				}
			}
		}
	}
	assert.Equal(t, 3*4*3*4*4*4*3, count)
}

func TestValidateScoringTables(t *testing.T) {
	require.NoError(t, ValidateScoringTables())
}

func TestOptionPoints(t *testing.T) {
	assert.Equal(t, 15, OptionPoints(models.QuestionBurden, "Hubungan sosial / keluarga"))
	assert.Equal(t, 0, OptionPoints(models.QuestionSleep, "Nyenyak & cukup"))
	assert.Equal(t, 0, OptionPoints(models.QuestionID("q8"), "Tidak ada"))
}
