package play

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"
	"strings"

	"opentdb"
)

// Result summarizes a finished quiz session.
type Result struct {
	Asked   int `json:"asked"`
	Correct int `json:"correct"`
}

// Session runs an interactive quiz over a question list: print a question,
// read an answer, check it, keep score. Answers for multiple choice
// questions are shuffled before display.
type Session struct {
	In  io.Reader
	Out io.Writer

	// Shuffle reorders the displayed answers; defaults to rand.Shuffle.
	// Tests inject a no-op to keep output deterministic.
	Shuffle func(n int, swap func(i, j int))
}

func NewSession(in io.Reader, out io.Writer) *Session {
	return &Session{In: in, Out: out, Shuffle: rand.Shuffle}
}

// Run asks every question in order. It stops early on ctx cancellation or
// when input runs out, returning the score so far alongside the error.
func (s *Session) Run(ctx context.Context, questions []opentdb.Question) (Result, error) {
	shuffle := s.Shuffle
	if shuffle == nil {
		shuffle = rand.Shuffle
	}
	scanner := bufio.NewScanner(s.In)

	var res Result
	for i, q := range questions {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		fmt.Fprintf(s.Out, "\n%d) %s\n", i+1, q.Text)

		correct, err := s.askOne(q, shuffle, scanner)
		if err != nil {
			return res, err
		}
		res.Asked++
		if correct {
			res.Correct++
			fmt.Fprintln(s.Out, "Correct!")
		} else {
			fmt.Fprintf(s.Out, "Wrong. The answer was: %s\n", q.CorrectAnswer())
		}
	}
	return res, nil
}

func (s *Session) askOne(q opentdb.Question, shuffle func(int, func(int, int)), scanner *bufio.Scanner) (bool, error) {
	switch q.Type {
	case opentdb.TypeBoolean:
		fmt.Fprint(s.Out, "True or False? ")
		line, err := readLine(scanner)
		if err != nil {
			return false, err
		}
		answer, err := strconv.ParseBool(strings.TrimSpace(line))
		if err != nil {
			return false, nil
		}
		bq, err := q.Boolean()
		if err != nil {
			return false, err
		}
		return bq.IsCorrectAnswer(answer), nil

	case opentdb.TypeMultiple:
		mq, err := q.Multiple()
		if err != nil {
			return false, err
		}
		options := append([]string{mq.CorrectAnswer}, mq.IncorrectAnswers...)
		shuffle(len(options), func(i, j int) {
			options[i], options[j] = options[j], options[i]
		})
		for n, opt := range options {
			fmt.Fprintf(s.Out, "  %d. %s\n", n+1, opt)
		}
		fmt.Fprintf(s.Out, "Answer (1-%d)? ", len(options))
		line, err := readLine(scanner)
		if err != nil {
			return false, err
		}
		pick, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || pick < 1 || pick > len(options) {
			return false, nil
		}
		return mq.IsCorrectAnswer(options[pick-1]), nil

	default:
		return false, fmt.Errorf("unsupported question type: %q", string(q.Type))
	}
}

func readLine(scanner *bufio.Scanner) (string, error) {
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("read answer: %w", err)
		}
		return "", io.EOF
	}
	return scanner.Text(), nil
}
