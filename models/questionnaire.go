package models

import (
	"github.com/go-playground/validator/v10"
)

// QuestionID identifies one of the fixed questionnaire items.
type QuestionID string

const (
	QuestionBurden   QuestionID = "q1"
	QuestionDuration QuestionID = "q2"
	QuestionFeeling  QuestionID = "q3"
	QuestionSleep    QuestionID = "q4"
	QuestionCoping   QuestionID = "q5"
	QuestionSupport  QuestionID = "q6"
	QuestionNeed     QuestionID = "q7"
)

// QuestionIDs lists every question in presentation order.
var QuestionIDs = []QuestionID{
	QuestionBurden,
	QuestionDuration,
	QuestionFeeling,
	QuestionSleep,
	QuestionCoping,
	QuestionSupport,
	QuestionNeed,
}

// Question is one questionnaire item as rendered by a client.
type Question struct {
	ID      QuestionID `json:"id" yaml:"id"`
	Prompt  string     `json:"prompt" yaml:"prompt"`
	Options []string   `json:"options" yaml:"options"`
}

// Questionnaire is the fixed survey shown next to the face photo.
var Questionnaire = []Question{
	{
		ID:      QuestionBurden,
		Prompt:  "Apa yang paling membebani pikiranmu akhir-akhir ini?",
		Options: []string{"Pekerjaan / tugas", "Hubungan sosial / keluarga", "Finansial atau Kesehatan"},
	},
	{
		ID:      QuestionDuration,
		Prompt:  "Sejak kapan kamu merasa seperti ini?",
		Options: []string{"Beberapa hari", "Lebih dari seminggu", "Beberapa bulan", "Sangat lama, bahkan lupa kapan merasa baik"},
	},
	{
		ID:      QuestionFeeling,
		Prompt:  "Apa yang paling sering kamu rasakan?",
		Options: []string{"Cemas / khawatir berlebihan", "Marah / mudah tersinggung", "Lelah atau Mati rasa"},
	},
	{
		ID:      QuestionSleep,
		Prompt:  "Bagaimana kualitas tidurmu akhir-akhir ini?",
		Options: []string{"Nyenyak & cukup", "Sering bangun / gelisah", "Sulit tidur", "Terlalu banyak tidur"},
	},
	{
		ID:      QuestionCoping,
		Prompt:  "Bagaimana cara kamu mengatasi tekanan tersebut?",
		Options: []string{"Curhat ke teman / keluarga", "Menyibukkan diri", "Menarik diri dari sekitar", "Bingung harus bagaimana"},
	},
	{
		ID:      QuestionSupport,
		Prompt:  "Apakah kamu merasa punya dukungan sosial?",
		Options: []string{"Ya, lebih dari satu", "Ya, tapi hanya satu-dua", "Tidak yakin", "Tidak ada"},
	},
	{
		ID:      QuestionNeed,
		Prompt:  "Apa yang paling kamu butuhkan saat ini?",
		Options: []string{"Waktu istirahat atau Tempat curhat", "Arahan atau solusi praktis", "Tidak tahu, tapi ingin merasa lebih baik"},
	},
}

// Answers holds the selected option for each question. Every field must be
// set before scoring; the option text itself is not checked here.
type Answers struct {
	Q1 string `json:"q1" yaml:"q1" form:"q1" validate:"required"`
	Q2 string `json:"q2" yaml:"q2" form:"q2" validate:"required"`
	Q3 string `json:"q3" yaml:"q3" form:"q3" validate:"required"`
	Q4 string `json:"q4" yaml:"q4" form:"q4" validate:"required"`
	Q5 string `json:"q5" yaml:"q5" form:"q5" validate:"required"`
	Q6 string `json:"q6" yaml:"q6" form:"q6" validate:"required"`
	Q7 string `json:"q7" yaml:"q7" form:"q7" validate:"required"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate reports the first unanswered question.
func (a Answers) Validate() error {
	return validate.Struct(a)
}

// Get returns the selected option for id, or "" for an unknown id.
func (a Answers) Get(id QuestionID) string {
	switch id {
	case QuestionBurden:
		return a.Q1
	case QuestionDuration:
		return a.Q2
	case QuestionFeeling:
		return a.Q3
	case QuestionSleep:
		return a.Q4
	case QuestionCoping:
		return a.Q5
	case QuestionSupport:
		return a.Q6
	case QuestionNeed:
		return a.Q7
	}
	return ""
}
