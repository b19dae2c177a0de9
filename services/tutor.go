package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"mendel/api/models/constants"
	quizTopic "mendel/api/models/constants/quiz-topic"
	"mendel/api/models/dtos"
	"mendel/api/repositories/gemini"
	"mendel/api/utils"
	"strings"

	"github.com/Jeffail/gabs"
	. "github.com/ahmetb/go-linq"
	"github.com/gomarkdown/markdown"
	"github.com/google/uuid"
	"github.com/mitchellh/mapstructure"
)

const QuizQuestionCount = 5

var (
	ErrMissingCredential = gemini.ErrMissingCredential
	ErrGenerationFailed  = gemini.ErrGenerationFailed
	ErrMalformedQuiz     = errors.New("generated quiz is malformed")
	ErrIncompleteAnswers = errors.New("every question must be answered")
	ErrEmptyQuery        = errors.New("query must not be empty")
	ErrInvalidQuiz       = errors.New("quiz has no questions")
)

var Suggestions = []string{
	"How to use a Punnett Square?",
	"Explain Dominant vs Recessive",
	"What is Genotype vs Phenotype?",
	"Law of Segregation",
	"Incomplete Dominance examples",
	"What is a Dihybrid Cross?",
}

type (
	// TextGenerator turns a prompt into generated text.
	TextGenerator interface {
		GenerateContent(ctx context.Context, prompt string) (string, error)
	}

	TutorService struct {
		generator TextGenerator
	}
)

func NewTutorService(generator TextGenerator) *TutorService {
	return &TutorService{
		generator: generator,
	}
}

func (ts *TutorService) Explain(ctx context.Context, query string) (*dtos.ExplainResponseDto, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	text, err := ts.generator.GenerateContent(ctx, explainPrompt(query))
	if err != nil {
		return nil, err
	}

	return &dtos.ExplainResponseDto{
		Query:    query,
		Markdown: text,
		Html:     string(markdown.ToHTML([]byte(text), nil, nil)),
	}, nil
}

func (ts *TutorService) GenerateQuiz(ctx context.Context, topic constants.QuizTopic) (*dtos.QuizDto, error) {
	if topic == "" || topic == quizTopic.Unknown {
		topic = quizTopic.Default
	}

	text, err := ts.generator.GenerateContent(ctx, quizPrompt(topic))
	if err != nil {
		return nil, err
	}

	questions, err := ParseQuiz(text)
	if err != nil {
		return nil, err
	}

	return &dtos.QuizDto{
		Id:        uuid.New(),
		Topic:     topic,
		Questions: questions,
	}, nil
}

// ParseQuiz pulls the question array out of generated text. Surrounding
// prose and code fences are ignored. The prompt asks for QuizQuestionCount
// questions, but any non-empty array of well-formed questions is accepted.
func ParseQuiz(text string) ([]dtos.QuizQuestion, error) {
	arrayString, ok := utils.GetOutermostStringInBetweenSquareBrackets(text)
	if !ok {
		return nil, fmt.Errorf("%w: no JSON array found", ErrMalformedQuiz)
	}

	parsed, err := gabs.ParseJSON([]byte(arrayString))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedQuiz, err)
	}

	if _, isArray := parsed.Data().([]interface{}); !isArray {
		return nil, fmt.Errorf("%w: expected a JSON array", ErrMalformedQuiz)
	}
	children, err := parsed.Children()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedQuiz, err)
	}
	if len(children) == 0 {
		return nil, fmt.Errorf("%w: no questions", ErrMalformedQuiz)
	}

	questions := make([]dtos.QuizQuestion, 0, len(children))
	for i, child := range children {
		if !child.Exists("correctAnswer") {
			return nil, fmt.Errorf("%w: question %d has no correctAnswer", ErrMalformedQuiz, i+1)
		}
		if answer, isNumber := child.S("correctAnswer").Data().(float64); isNumber && answer != math.Trunc(answer) {
			return nil, fmt.Errorf("%w: question %d has fractional correctAnswer %v", ErrMalformedQuiz, i+1, answer)
		}

		var question dtos.QuizQuestion
		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			WeaklyTypedInput: true,
			Result:           &question,
		})
		if err != nil {
			return nil, err
		}
		if err := decoder.Decode(child.Data()); err != nil {
			return nil, fmt.Errorf("%w: question %d: %v", ErrMalformedQuiz, i+1, err)
		}

		if strings.TrimSpace(question.Question) == "" {
			return nil, fmt.Errorf("%w: question %d has no text", ErrMalformedQuiz, i+1)
		}
		if len(question.Options) < 2 {
			return nil, fmt.Errorf("%w: question %d needs at least two options", ErrMalformedQuiz, i+1)
		}
		if question.CorrectAnswer < 0 || question.CorrectAnswer >= len(question.Options) {
			return nil, fmt.Errorf("%w: question %d has correctAnswer %d out of range", ErrMalformedQuiz, i+1, question.CorrectAnswer)
		}

		questions = append(questions, question)
	}

	return questions, nil
}

// ScoreQuiz grades a submission. Every question needs an answer; partial
// submissions are rejected rather than scored.
func (ts *TutorService) ScoreQuiz(quiz dtos.QuizDto, answers map[int]int) (*dtos.QuizScoreResponseDto, error) {
	if len(quiz.Questions) == 0 {
		return nil, ErrInvalidQuiz
	}

	missing := 0
	reviews := make([]dtos.QuizAnswerReviewDto, 0, len(quiz.Questions))
	for i, question := range quiz.Questions {
		selected, answered := answers[i]
		if !answered {
			missing++
			continue
		}

		reviews = append(reviews, dtos.QuizAnswerReviewDto{
			Index:          i,
			Question:       question.Question,
			SelectedAnswer: selected,
			CorrectAnswer:  question.CorrectAnswer,
			IsCorrect:      selected == question.CorrectAnswer,
			Explanation:    question.Explanation,
		})
	}
	if missing > 0 {
		return nil, fmt.Errorf("%w: %d of %d unanswered", ErrIncompleteAnswers, missing, len(quiz.Questions))
	}

	score := From(reviews).CountWithT(func(r dtos.QuizAnswerReviewDto) bool {
		return r.IsCorrect
	})

	return &dtos.QuizScoreResponseDto{
		QuizId:  quiz.Id,
		Score:   score,
		Total:   len(quiz.Questions),
		Reviews: reviews,
	}, nil
}

func explainPrompt(query string) string {
	return fmt.Sprintf("You are an expert biology teacher specializing in genetics. "+
		"Explain the following concept or answer the question clearly and concisely for a student: %s", query)
}

func quizPrompt(topic constants.QuizTopic) string {
	return fmt.Sprintf(`Generate %d multiple-choice questions about "%s" for a high school or early college biology student.
Return ONLY a JSON array of objects. Each object must have:
- "question": string
- "options": array of 4 strings
- "correctAnswer": number (0-3 index)
- "explanation": string (why the answer is correct)

Do not use Markdown formatting for the JSON.`, QuizQuestionCount, topic)
}
