package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"opentdb"
	"opentdb/internal/app"
	"opentdb/internal/config"
	"opentdb/internal/errx"
	"opentdb/internal/output"
	"opentdb/internal/play"
	"opentdb/internal/render"
)

const (
	kEnvTrivBaseURL    = "TRIV_BASE_URL"
	kEnvTrivConfigPath = "TRIV_CONFIG_PATH"
)

func main() {
	os.Exit(realMain(os.Args))
}

func validateArgs(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("missing command")
	}

	switch args[1] {
	case "fetch":
	case "play":
	case "categories":
	case "token":
	case "config":
	case "help", "-h", "--help":
		break
	default:
		return fmt.Errorf("unknown command: %s", args[1])
	}

	return nil
}

func realMain(args []string) int {
	if err := validateArgs(args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		usage(os.Stderr)
		return 2
	}

	if args[1] == "help" || args[1] == "-h" || args[1] == "--help" {
		usage(os.Stdout)
		return 0
	}

	ctx := context.Background()

	cfgPath := strings.TrimSpace(os.Getenv(kEnvTrivConfigPath))
	if cfgPath == "" {
		var err error
		cfgPath, err = config.DefaultConfigPath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: resolve config path: %v\n", err)
			return 1
		}
	}
	cfgStore := config.NewFileStore(cfgPath)

	cfg, err := cfgStore.Load(ctx)
	if errors.Is(err, os.ErrNotExist) {
		cfg = config.Default()
	} else if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	baseURL := os.Getenv(kEnvTrivBaseURL)
	if baseURL == "" {
		baseURL = cfg.BaseURL
	}

	enc, err := cfg.EncodingType()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	httpClient := &http.Client{
		Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
	}
	cats := opentdb.NewCategories(baseURL, httpClient)
	client := opentdb.NewHttpClient(opentdb.HttpClientOptions{
		BaseURL:             baseURL,
		Encoding:            enc,
		Http:                httpClient,
		Categories:          cats,
		DisableSessionToken: !cfg.UseSessionToken,
	})

	pr := output.NewStdPrinter(os.Stdout, os.Stderr, false)
	a := app.New(app.App{
		Trivia:     client,
		Categories: cats,
		Renderer:   render.NewTextRenderer(),
		Player:     play.NewSession(os.Stdin, os.Stdout),
		Output:     pr,
		Encoding:   enc,
	})

	cmd := args[1]
	var runErr error
	switch cmd {
	case "fetch":
		runErr = runFetch(ctx, a, client, cfg, pr, args[2:])
	case "play":
		runErr = runPlay(ctx, a, client, cfg, pr, args[2:])
	case "categories":
		runErr = runCategories(ctx, a, pr, args[2:])
	case "token":
		runErr = runToken(ctx, a, client, cfg, args[2:])
	case "config":
		runErr = runConfig(ctx, cfgStore, pr, args[2:])
	}

	if runErr == nil {
		return 0
	}

	_ = pr.PrintError(ctx, runErr)
	return errx.ExitCode(runErr)
}

func addFetchFlags(fs *flag.FlagSet, cfg config.Config, opts *app.FetchOptions) {
	fs.IntVar(&opts.Amount, "amount", cfg.DefaultAmount, "amount of questions (the API serves at most 50)")
	fs.StringVar(&opts.Category, "category", "", "category name or numeric id")
	fs.StringVar(&opts.Type, "type", "", "question type: multiple or boolean")
	fs.StringVar(&opts.Difficulty, "difficulty", "", "difficulty: easy, medium or hard")
}

func startSession(ctx context.Context, client opentdb.Client, cfg config.Config, opts *app.FetchOptions) {
	if cfg.UseSessionToken {
		client.FetchToken(ctx)
		opts.AwaitToken = true
	}
}

func runFetch(ctx context.Context, a *app.App, client opentdb.Client, cfg config.Config, pr *output.StdPrinter, argv []string) error {
	fs := flag.NewFlagSet("fetch", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts app.FetchOptions
	var asJSON bool
	addFetchFlags(fs, cfg, &opts)
	fs.BoolVar(&opts.Raw, "raw", false, "print wire-form strings without decoding")
	fs.BoolVar(&asJSON, "json", false, "emit JSON output")

	if err := fs.Parse(argv); err != nil {
		return errx.Usage("fetch: %v", err)
	}
	pr.JSON = asJSON

	startSession(ctx, client, cfg, &opts)
	return a.Fetch(ctx, opts)
}

func runPlay(ctx context.Context, a *app.App, client opentdb.Client, cfg config.Config, pr *output.StdPrinter, argv []string) error {
	fs := flag.NewFlagSet("play", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts app.FetchOptions
	addFetchFlags(fs, cfg, &opts)

	if err := fs.Parse(argv); err != nil {
		return errx.Usage("play: %v", err)
	}

	startSession(ctx, client, cfg, &opts)
	return a.Play(ctx, opts)
}

func runCategories(ctx context.Context, a *app.App, pr *output.StdPrinter, argv []string) error {
	fs := flag.NewFlagSet("categories", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var asJSON bool
	fs.BoolVar(&asJSON, "json", false, "emit JSON output")
	if err := fs.Parse(argv); err != nil {
		return errx.Usage("categories: %v", err)
	}
	pr.JSON = asJSON

	return a.ListCategories(ctx)
}

func runToken(ctx context.Context, a *app.App, client opentdb.Client, cfg config.Config, argv []string) error {
	if len(argv) < 1 {
		return errx.Usage("token: missing subcommand (status|reset)")
	}
	if !cfg.UseSessionToken {
		return errx.Usage("token: session tokens are disabled in config")
	}

	switch argv[0] {
	case "status":
		client.FetchToken(ctx)
		if err := client.AwaitToken(ctx); err != nil {
			return err
		}
		return a.TokenStatus(ctx)
	case "reset":
		client.FetchToken(ctx)
		if err := client.AwaitToken(ctx); err != nil {
			return err
		}
		return a.ResetToken(ctx)
	default:
		return errx.Usage("token: unknown subcommand %q (expected status|reset)", argv[0])
	}
}

func runConfig(ctx context.Context, store *config.FileStore, pr *output.StdPrinter, argv []string) error {
	if len(argv) < 1 {
		return errx.Usage("config: missing subcommand (init|show)")
	}
	switch argv[0] {
	case "init":
		return runConfigInit(ctx, store, pr, argv[1:])
	case "show":
		return runConfigShow(ctx, store, pr, argv[1:])
	default:
		return errx.Usage("config: unknown subcommand %q (expected init|show)", argv[0])
	}
}

func runConfigInit(ctx context.Context, store *config.FileStore, pr *output.StdPrinter, argv []string) error {
	fs := flag.NewFlagSet("config init", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	cfg := config.Default()
	var force bool
	fs.StringVar(&cfg.Encoding, "encoding", cfg.Encoding, "encode parameter code (empty, urlLegacy, url3986, base64)")
	fs.IntVar(&cfg.DefaultAmount, "amount", cfg.DefaultAmount, "default amount of questions")
	fs.BoolVar(&cfg.UseSessionToken, "session-token", cfg.UseSessionToken, "fetch and send a session token")
	fs.BoolVar(&force, "force", false, "overwrite existing config file")

	if err := fs.Parse(argv); err != nil {
		return errx.Usage("config init: %v", err)
	}

	if _, err := os.Stat(store.Path); err == nil && !force {
		return fmt.Errorf("config already exists at %s (use --force to overwrite)", store.Path)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat config %s: %w", store.Path, err)
	}

	if err := store.Save(ctx, cfg); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(pr.Out, "wrote config: %s\n", store.Path)
	return nil
}

func runConfigShow(ctx context.Context, store *config.FileStore, pr *output.StdPrinter, argv []string) error {
	fs := flag.NewFlagSet("config show", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	if err := fs.Parse(argv); err != nil {
		return errx.Usage("config show: %v", err)
	}

	cfg, err := store.Load(ctx)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("config not found at %s (run: triv config init)", store.Path)
		}
		return err
	}

	enc, err := cfg.EncodingType()
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(pr.Out, "path: %s\n", store.Path)
	_, _ = fmt.Fprintf(pr.Out, "base_url: %s\n", cfg.BaseURL)
	_, _ = fmt.Fprintf(pr.Out, "encoding: %s\n", enc.ReadableName())
	_, _ = fmt.Fprintf(pr.Out, "default_amount: %d\n", cfg.DefaultAmount)
	_, _ = fmt.Fprintf(pr.Out, "use_session_token: %v\n", cfg.UseSessionToken)
	_, _ = fmt.Fprintf(pr.Out, "timeout_seconds: %d\n", cfg.TimeoutSeconds)
	return nil
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "triv - trivia questions in the terminal")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  triv <command> [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  fetch       [--amount N] [--category name|id] [--type multiple|boolean] [--difficulty easy|medium|hard] [--raw] [--json]")
	fmt.Fprintln(w, "  play        [--amount N] [--category name|id] [--type multiple|boolean] [--difficulty easy|medium|hard]")
	fmt.Fprintln(w, "  categories  [--json]")
	fmt.Fprintln(w, "  token       status|reset")
	fmt.Fprintln(w, "  config      init|show")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Notes:")
	fmt.Fprintln(w, "  - the API serves at most 50 questions per request regardless of --amount")
	fmt.Fprintln(w, "  - a session token prevents repeated questions until it expires after 6 hours of inactivity")
}
