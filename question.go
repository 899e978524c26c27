package opentdb

import (
	"fmt"
	"strconv"
)

// QuestionType discriminates the two question variants the API serves.
type QuestionType string

const (
	// TypeMultiple is a multiple choice question.
	TypeMultiple QuestionType = "multiple"

	// TypeBoolean is a true/false question.
	TypeBoolean QuestionType = "boolean"
)

func (t QuestionType) ParameterName() string { return "type" }

func (t QuestionType) ParameterValue() string { return string(t) }

// Difficulty is the difficulty of a question.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty returns the Difficulty for an API difficulty code.
func ParseDifficulty(code string) (Difficulty, error) {
	switch d := Difficulty(code); d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return d, nil
	default:
		return "", fmt.Errorf("unsupported difficulty: %q", code)
	}
}

func (d Difficulty) ParameterName() string { return "difficulty" }

func (d Difficulty) ParameterValue() string { return string(d) }

// Question is a single question received from the API. It is a closed union
// over two variants, discriminated by Type: use Multiple or Boolean to
// narrow to the variant-specific view.
type Question struct {
	Type       QuestionType
	Category   Category
	Difficulty Difficulty
	Text       string

	// Answers in raw wire form. For boolean questions the wire form of the
	// correct answer is "True" or "False".
	correctAnswer    string
	incorrectAnswers []string

	// Parsed correct answer, valid only when Type == TypeBoolean.
	correctBool bool
}

// NewMultipleChoiceQuestion builds a multiple choice question.
// The order of incorrectAnswers is preserved.
func NewMultipleChoiceQuestion(category Category, difficulty Difficulty, text, correctAnswer string, incorrectAnswers []string) Question {
	incorrect := make([]string, len(incorrectAnswers))
	copy(incorrect, incorrectAnswers)
	return Question{
		Type:             TypeMultiple,
		Category:         category,
		Difficulty:       difficulty,
		Text:             text,
		correctAnswer:    correctAnswer,
		incorrectAnswers: incorrect,
	}
}

// NewBooleanQuestion builds a true/false question. The incorrect answer is
// always the negation of the correct one.
func NewBooleanQuestion(category Category, difficulty Difficulty, text string, correctAnswer bool) Question {
	wire := "False"
	incorrect := "True"
	if correctAnswer {
		wire, incorrect = incorrect, wire
	}
	return Question{
		Type:             TypeBoolean,
		Category:         category,
		Difficulty:       difficulty,
		Text:             text,
		correctAnswer:    wire,
		incorrectAnswers: []string{incorrect},
		correctBool:      correctAnswer,
	}
}

// CorrectAnswer returns the correct answer in its wire form.
func (q Question) CorrectAnswer() string { return q.correctAnswer }

// IncorrectAnswers returns the incorrect answers in wire form and wire order.
func (q Question) IncorrectAnswers() []string {
	out := make([]string, len(q.incorrectAnswers))
	copy(out, q.incorrectAnswers)
	return out
}

// IsCorrectAnswer reports whether answer equals the stored correct answer in
// wire form. It never fails; for typed comparison use the narrowed views.
func (q Question) IsCorrectAnswer(answer string) bool {
	return q.correctAnswer == answer
}

// Multiple narrows the question to its multiple choice view.
// Returns ErrTypeMismatch if the question is a true/false question.
func (q Question) Multiple() (MultipleChoiceQuestion, error) {
	if q.Type != TypeMultiple {
		return MultipleChoiceQuestion{}, fmt.Errorf("narrow %q question to multiple choice: %w", q.Type, ErrTypeMismatch)
	}
	return MultipleChoiceQuestion{
		Category:         q.Category,
		Difficulty:       q.Difficulty,
		Text:             q.Text,
		CorrectAnswer:    q.correctAnswer,
		IncorrectAnswers: q.IncorrectAnswers(),
	}, nil
}

// Boolean narrows the question to its true/false view.
// Returns ErrTypeMismatch if the question is a multiple choice question.
func (q Question) Boolean() (BooleanQuestion, error) {
	if q.Type != TypeBoolean {
		return BooleanQuestion{}, fmt.Errorf("narrow %q question to boolean: %w", q.Type, ErrTypeMismatch)
	}
	return BooleanQuestion{
		Category:      q.Category,
		Difficulty:    q.Difficulty,
		Text:          q.Text,
		CorrectAnswer: q.correctBool,
	}, nil
}

func (q Question) String() string {
	return fmt.Sprintf("Q:%s(%s/%s/%s)", q.Text, q.Category.Name, q.Type, q.Difficulty)
}

// MultipleChoiceQuestion is the narrowed view of a multiple choice question.
type MultipleChoiceQuestion struct {
	Category   Category
	Difficulty Difficulty
	Text       string

	CorrectAnswer    string
	IncorrectAnswers []string
}

func (q MultipleChoiceQuestion) Type() QuestionType { return TypeMultiple }

// IsCorrectAnswer reports whether answer equals the correct answer.
func (q MultipleChoiceQuestion) IsCorrectAnswer(answer string) bool {
	return q.CorrectAnswer == answer
}

// BooleanQuestion is the narrowed view of a true/false question.
type BooleanQuestion struct {
	Category   Category
	Difficulty Difficulty
	Text       string

	CorrectAnswer bool
}

func (q BooleanQuestion) Type() QuestionType { return TypeBoolean }

// IncorrectAnswer is the negation of the correct answer.
func (q BooleanQuestion) IncorrectAnswer() bool { return !q.CorrectAnswer }

// IsCorrectAnswer reports whether answer equals the correct answer.
func (q BooleanQuestion) IsCorrectAnswer(answer bool) bool {
	return q.CorrectAnswer == answer
}

// questionPayload mirrors one element of the results array.
type questionPayload struct {
	Type             string   `json:"type"`
	Category         string   `json:"category"`
	Difficulty       string   `json:"difficulty"`
	Question         string   `json:"question"`
	CorrectAnswer    string   `json:"correct_answer"`
	IncorrectAnswers []string `json:"incorrect_answers"`
}

// decodeQuestion turns one wire result into a Question. The category name is
// resolved against cats when available; otherwise the Category carries the
// name only. Unrecognized type strings fail decoding.
func decodeQuestion(p questionPayload, cats *Categories) (Question, error) {
	difficulty, err := ParseDifficulty(p.Difficulty)
	if err != nil {
		return Question{}, err
	}

	category := Category{Name: p.Category}
	if cats != nil {
		if c, ok := cats.ByName(p.Category); ok {
			category = c
		}
	}

	switch QuestionType(p.Type) {
	case TypeBoolean:
		correct, err := strconv.ParseBool(p.CorrectAnswer)
		if err != nil {
			return Question{}, fmt.Errorf("parse boolean correct answer %q: %w", p.CorrectAnswer, err)
		}
		return NewBooleanQuestion(category, difficulty, p.Question, correct), nil
	case TypeMultiple:
		return NewMultipleChoiceQuestion(category, difficulty, p.Question, p.CorrectAnswer, p.IncorrectAnswers), nil
	default:
		return Question{}, fmt.Errorf("unsupported question type: %q", p.Type)
	}
}
