package errx

import (
	"errors"
	"fmt"
)

// ErrUsage marks errors caused by bad command-line input rather than by the
// API or the network.
var ErrUsage = errors.New("usage error")

// Usage returns a usage-class error with a formatted message.
func Usage(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrUsage)...)
}

// ExitCode maps an error to the CLI exit code: 0 for nil, 2 for usage
// errors, 1 for everything else.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrUsage):
		return 2
	default:
		return 1
	}
}
