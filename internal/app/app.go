package app

import (
	"context"
	"errors"
	"strconv"

	"opentdb"
	"opentdb/internal/errx"
	"opentdb/internal/output"
	"opentdb/internal/play"
	"opentdb/internal/render"
)

// CategoryService is the refreshable category lookup the app consults when a
// category filter is given. *opentdb.Categories satisfies it.
type CategoryService interface {
	Refresh(ctx context.Context) error
	All() []opentdb.Category
	ByID(id int) (opentdb.Category, bool)
	ByName(name string) (opentdb.Category, bool)
}

// Player runs an interactive quiz over fetched questions.
type Player interface {
	Run(ctx context.Context, questions []opentdb.Question) (play.Result, error)
}

// App orchestrates the client, category lookup, renderer, and printer
// behind the CLI commands.
type App struct {
	Trivia     opentdb.Client
	Categories CategoryService
	Renderer   render.Renderer
	Player     Player
	Output     output.Printer

	// Encoding mirrors the encoding the client requests; the renderer needs
	// it to undo the escaping for display.
	Encoding opentdb.EncodingType
}

func New(deps App) *App {
	return &deps
}

type FetchOptions struct {
	Amount     int
	Category   string // category name or numeric id; empty means no filter
	Type       string // "multiple" or "boolean"; empty means no filter
	Difficulty string // "easy", "medium" or "hard"; empty means no filter

	// AwaitToken blocks until the session token is ready before sending.
	AwaitToken bool

	// Raw skips text decoding and prints wire-form strings.
	Raw bool
}

// Fetch requests questions and prints them.
func (a *App) Fetch(ctx context.Context, opts FetchOptions) error {
	questions, err := a.fetch(ctx, opts)
	if err != nil {
		return err
	}
	return a.Output.PrintQuestions(ctx, questions)
}

// Play requests questions and runs an interactive quiz over them.
func (a *App) Play(ctx context.Context, opts FetchOptions) error {
	// Quiz answers must be readable, so decoding is forced.
	opts.Raw = false
	questions, err := a.fetch(ctx, opts)
	if err != nil {
		return err
	}
	res, err := a.Player.Run(ctx, questions)
	if err != nil {
		return err
	}
	return a.Output.PrintPlayResult(ctx, res)
}

// ListCategories refreshes the category table and prints it.
func (a *App) ListCategories(ctx context.Context) error {
	if err := a.Categories.Refresh(ctx); err != nil {
		return err
	}
	return a.Output.PrintCategories(ctx, a.Categories.All())
}

// ResetToken resets the session token and waits for completion.
func (a *App) ResetToken(ctx context.Context) error {
	fut, err := a.Trivia.ResetToken(ctx)
	if err != nil {
		return err
	}
	return fut.Await(ctx)
}

// TokenStatus prints the current session token and its expiry diagnostic.
func (a *App) TokenStatus(ctx context.Context) error {
	token, _ := a.Trivia.Token()
	return a.Output.PrintTokenStatus(ctx, token, a.Trivia.IsTokenExpired())
}

func (a *App) fetch(ctx context.Context, opts FetchOptions) ([]opentdb.Question, error) {
	req, err := a.buildRequest(ctx, opts)
	if err != nil {
		return nil, err
	}

	if opts.AwaitToken {
		if err := a.Trivia.AwaitToken(ctx); err != nil {
			return nil, err
		}
	}

	questions, err := a.Trivia.Send(ctx, req)
	if err != nil {
		return nil, err
	}

	if opts.Raw {
		return questions, nil
	}
	decoded := make([]opentdb.Question, 0, len(questions))
	for _, q := range questions {
		dq, err := a.Renderer.DecodeQuestion(a.Encoding, q)
		if err != nil {
			return nil, err
		}
		decoded = append(decoded, dq)
	}
	return decoded, nil
}

func (a *App) buildRequest(ctx context.Context, opts FetchOptions) (opentdb.Request, error) {
	b, err := opentdb.NewRequestBuilder(opts.Amount)
	if err != nil {
		if errors.Is(err, opentdb.ErrInvalidAmount) {
			return opentdb.Request{}, errx.Usage("invalid amount %d", opts.Amount)
		}
		return opentdb.Request{}, err
	}

	if opts.Category != "" {
		cat, err := a.resolveCategory(ctx, opts.Category)
		if err != nil {
			return opentdb.Request{}, err
		}
		b.FromCategory(&cat)
	}

	switch opts.Type {
	case "":
	case string(opentdb.TypeMultiple):
		b.OfType(opentdb.TypeMultiple)
	case string(opentdb.TypeBoolean):
		b.OfType(opentdb.TypeBoolean)
	default:
		return opentdb.Request{}, errx.Usage("invalid question type %q", opts.Type)
	}

	if opts.Difficulty != "" {
		d, err := opentdb.ParseDifficulty(opts.Difficulty)
		if err != nil {
			return opentdb.Request{}, errx.Usage("invalid difficulty %q", opts.Difficulty)
		}
		b.OfDifficulty(d)
	}

	return b.Build(), nil
}

// resolveCategory accepts either a numeric category id or an exact category
// name, refreshing the lookup table first.
func (a *App) resolveCategory(ctx context.Context, key string) (opentdb.Category, error) {
	if err := a.Categories.Refresh(ctx); err != nil {
		return opentdb.Category{}, err
	}

	if id, err := strconv.Atoi(key); err == nil {
		if cat, ok := a.Categories.ByID(id); ok {
			return cat, nil
		}
		return opentdb.Category{}, errx.Usage("unknown category id %d", id)
	}
	if cat, ok := a.Categories.ByName(key); ok {
		return cat, nil
	}
	return opentdb.Category{}, errx.Usage("unknown category %q", key)
}
