package dtos

import (
	"mendel/api/models/constants"

	"github.com/google/uuid"
)

type ExplainRequestDto struct {
	Query string `json:"query"`
}

type ExplainResponseDto struct {
	Query    string `json:"query"`
	Markdown string `json:"markdown"`
	Html     string `json:"html"`
}

type QuizQuestion struct {
	Question      string   `json:"question" mapstructure:"question"`
	Options       []string `json:"options" mapstructure:"options"`
	CorrectAnswer int      `json:"correctAnswer" mapstructure:"correctAnswer"`
	Explanation   string   `json:"explanation" mapstructure:"explanation"`
}

type QuizDto struct {
	Id        uuid.UUID           `json:"id"`
	Topic     constants.QuizTopic `json:"topic"`
	Questions []QuizQuestion      `json:"questions"`
}

type QuizScoreRequestDto struct {
	Quiz QuizDto `json:"quiz"`
	// question index -> chosen option index
	Answers map[int]int `json:"answers"`
}

type QuizScoreResponseDto struct {
	QuizId  uuid.UUID             `json:"quizId"`
	Score   int                   `json:"score"`
	Total   int                   `json:"total"`
	Reviews []QuizAnswerReviewDto `json:"reviews"`
}

type QuizAnswerReviewDto struct {
	Index          int    `json:"index"`
	Question       string `json:"question"`
	SelectedAnswer int    `json:"selectedAnswer"`
	CorrectAnswer  int    `json:"correctAnswer"`
	IsCorrect      bool   `json:"isCorrect"`
	Explanation    string `json:"explanation"`
}

type TopicsResponseDto struct {
	Default constants.QuizTopic   `json:"default"`
	Topics  []constants.QuizTopic `json:"topics"`
}
