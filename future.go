package opentdb

import "context"

// QuestionsFuture represents an in-flight asynchronous question fetch.
type QuestionsFuture struct {
	done      chan struct{}
	questions []Question
	err       error
}

func newQuestionsFuture() *QuestionsFuture {
	return &QuestionsFuture{done: make(chan struct{})}
}

func (f *QuestionsFuture) resolve(questions []Question, err error) {
	f.questions = questions
	f.err = err
	close(f.done)
}

// Done is closed when the fetch has completed.
func (f *QuestionsFuture) Done() <-chan struct{} { return f.done }

// Await blocks until the fetch completes or ctx is done. Cancellation of ctx
// does not stop the in-flight request.
func (f *QuestionsFuture) Await(ctx context.Context) ([]Question, error) {
	select {
	case <-f.done:
		return f.questions, f.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// ResetFuture represents an in-flight asynchronous token reset.
type ResetFuture struct {
	done chan struct{}
	err  error
}

func newResetFuture() *ResetFuture {
	return &ResetFuture{done: make(chan struct{})}
}

func (f *ResetFuture) resolve(err error) {
	f.err = err
	close(f.done)
}

// Done is closed when the reset has completed.
func (f *ResetFuture) Done() <-chan struct{} { return f.done }

// Await blocks until the reset completes or ctx is done.
func (f *ResetFuture) Await(ctx context.Context) error {
	select {
	case <-f.done:
		return f.err
	case <-ctx.Done():
		return ctx.Err()
	}
}
