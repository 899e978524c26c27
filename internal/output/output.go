package output

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"opentdb"
	"opentdb/internal/play"
)

// Printer renders user-facing output (human and/or JSON).
type Printer interface {
	PrintQuestions(ctx context.Context, questions []opentdb.Question) error
	PrintCategories(ctx context.Context, categories []opentdb.Category) error
	PrintTokenStatus(ctx context.Context, token string, expired bool) error
	PrintPlayResult(ctx context.Context, res play.Result) error
	PrintError(ctx context.Context, err error) error
}

// StdPrinter is a simple stdout/stderr printer.
type StdPrinter struct {
	Out  io.Writer
	Err  io.Writer
	JSON bool
}

func NewStdPrinter(out io.Writer, err io.Writer, asJSON bool) *StdPrinter {
	return &StdPrinter{Out: out, Err: err, JSON: asJSON}
}

// questionView is the JSON shape for one question; the wire field names of
// the API are kept so output stays familiar.
type questionView struct {
	Type             string   `json:"type"`
	Category         string   `json:"category"`
	Difficulty       string   `json:"difficulty"`
	Question         string   `json:"question"`
	CorrectAnswer    string   `json:"correct_answer"`
	IncorrectAnswers []string `json:"incorrect_answers"`
}

func viewOf(q opentdb.Question) questionView {
	return questionView{
		Type:             string(q.Type),
		Category:         q.Category.Name,
		Difficulty:       string(q.Difficulty),
		Question:         q.Text,
		CorrectAnswer:    q.CorrectAnswer(),
		IncorrectAnswers: q.IncorrectAnswers(),
	}
}

func (p *StdPrinter) PrintQuestions(ctx context.Context, questions []opentdb.Question) error {
	if p.JSON {
		views := make([]questionView, 0, len(questions))
		for _, q := range questions {
			views = append(views, viewOf(q))
		}
		return json.NewEncoder(p.Out).Encode(views)
	}

	for i, q := range questions {
		if _, err := fmt.Fprintf(p.Out, "%d) [%s/%s] %s\n", i+1, q.Category.Name, q.Difficulty, q.Text); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(p.Out, "   answer: %s", q.CorrectAnswer()); err != nil {
			return err
		}
		if q.Type == opentdb.TypeMultiple {
			if _, err := fmt.Fprintf(p.Out, "  (others: %v)", q.IncorrectAnswers()); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(p.Out); err != nil {
			return err
		}
	}
	return nil
}

func (p *StdPrinter) PrintCategories(ctx context.Context, categories []opentdb.Category) error {
	if p.JSON {
		return json.NewEncoder(p.Out).Encode(categories)
	}
	for _, c := range categories {
		if _, err := fmt.Fprintf(p.Out, "%3d  %s\n", c.ID, c.Name); err != nil {
			return err
		}
	}
	return nil
}

func (p *StdPrinter) PrintTokenStatus(ctx context.Context, token string, expired bool) error {
	if p.JSON {
		return json.NewEncoder(p.Out).Encode(struct {
			Token   string `json:"token"`
			Expired bool   `json:"expired"`
		}{Token: token, Expired: expired})
	}
	if token == "" {
		_, err := fmt.Fprintln(p.Out, "token: (none)")
		return err
	}
	status := "active"
	if expired {
		status = "expired (6 hours of inactivity)"
	}
	_, err := fmt.Fprintf(p.Out, "token: %s (%s)\n", token, status)
	return err
}

func (p *StdPrinter) PrintPlayResult(ctx context.Context, res play.Result) error {
	if p.JSON {
		return json.NewEncoder(p.Out).Encode(res)
	}
	_, err := fmt.Fprintf(p.Out, "\nScore: %d/%d\n", res.Correct, res.Asked)
	return err
}

func (p *StdPrinter) PrintError(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	_, werr := fmt.Fprintf(p.Err, "error: %v\n", err)
	return werr
}
