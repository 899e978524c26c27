package output

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"opentdb"
	"opentdb/internal/play"
)

func sampleQuestions() []opentdb.Question {
	return []opentdb.Question{
		opentdb.NewMultipleChoiceQuestion(
			opentdb.Category{ID: 9, Name: "General Knowledge"},
			opentdb.DifficultyEasy,
			"Capital of France?",
			"Paris",
			[]string{"Lyon", "Nice"},
		),
		opentdb.NewBooleanQuestion(
			opentdb.Category{ID: 18, Name: "Science: Computers"},
			opentdb.DifficultyHard,
			"RAM is volatile?",
			true,
		),
	}
}

func TestStdPrinter_PrintQuestions_Human(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	p := NewStdPrinter(&out, &out, false)

	if err := p.PrintQuestions(context.Background(), sampleQuestions()); err != nil {
		t.Fatalf("PrintQuestions() error = %v", err)
	}

	got := out.String()
	for _, want := range []string{"1)", "Capital of France?", "Paris", "Lyon", "2)", "RAM is volatile?"} {
		if !strings.Contains(got, want) {
			t.Fatalf("output missing %q:\n%s", want, got)
		}
	}
}

func TestStdPrinter_PrintQuestions_JSON(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	p := NewStdPrinter(&out, &out, true)

	if err := p.PrintQuestions(context.Background(), sampleQuestions()); err != nil {
		t.Fatalf("PrintQuestions() error = %v", err)
	}

	var views []struct {
		Type             string   `json:"type"`
		Question         string   `json:"question"`
		CorrectAnswer    string   `json:"correct_answer"`
		IncorrectAnswers []string `json:"incorrect_answers"`
	}
	if err := json.Unmarshal([]byte(out.String()), &views); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out.String())
	}
	if len(views) != 2 {
		t.Fatalf("len(views) = %d, want 2", len(views))
	}
	if views[0].CorrectAnswer != "Paris" || len(views[0].IncorrectAnswers) != 2 {
		t.Fatalf("unexpected first view: %+v", views[0])
	}
	if views[1].Type != "boolean" || views[1].CorrectAnswer != "True" {
		t.Fatalf("unexpected second view: %+v", views[1])
	}
}

func TestStdPrinter_PrintTokenStatus(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	p := NewStdPrinter(&out, &out, false)

	if err := p.PrintTokenStatus(context.Background(), "", false); err != nil {
		t.Fatalf("PrintTokenStatus() error = %v", err)
	}
	if !strings.Contains(out.String(), "(none)") {
		t.Fatalf("output = %q, want none marker", out.String())
	}

	out.Reset()
	if err := p.PrintTokenStatus(context.Background(), "SOMETOKEN", true); err != nil {
		t.Fatalf("PrintTokenStatus() error = %v", err)
	}
	if !strings.Contains(out.String(), "SOMETOKEN") || !strings.Contains(out.String(), "expired") {
		t.Fatalf("output = %q, want token and expired status", out.String())
	}
}

func TestStdPrinter_PrintPlayResult(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	p := NewStdPrinter(&out, &out, false)

	if err := p.PrintPlayResult(context.Background(), play.Result{Asked: 3, Correct: 2}); err != nil {
		t.Fatalf("PrintPlayResult() error = %v", err)
	}
	if !strings.Contains(out.String(), "Score: 2/3") {
		t.Fatalf("output = %q, want score line", out.String())
	}
}

func TestStdPrinter_PrintError(t *testing.T) {
	t.Parallel()

	var out, errOut strings.Builder
	p := NewStdPrinter(&out, &errOut, false)

	if err := p.PrintError(context.Background(), errors.New("boom")); err != nil {
		t.Fatalf("PrintError() error = %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("stdout should stay empty, got %q", out.String())
	}
	if !strings.Contains(errOut.String(), "boom") {
		t.Fatalf("stderr = %q, want message", errOut.String())
	}
}
