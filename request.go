package opentdb

// Request describes "fetch Amount questions matching the optional filters".
// It is an immutable snapshot; build one with NewRequest or RequestBuilder.
//
// Note: an amount over 50 is accepted, but the API will not return more than
// 50 questions at a time.
type Request struct {
	amount     int
	category   *Category
	qType      QuestionType
	difficulty Difficulty
}

// NewRequest creates a filter-less request for amount questions.
// Equivalent to NewRequestBuilder(amount) followed by Build.
func NewRequest(amount int) (Request, error) {
	b, err := NewRequestBuilder(amount)
	if err != nil {
		return Request{}, err
	}
	return b.Build(), nil
}

// Amount returns the amount of questions in this request.
func (r Request) Amount() int { return r.amount }

// Category returns the category filter, or nil when unset.
func (r Request) Category() *Category { return r.category }

// Type returns the question type filter; empty when unset.
func (r Request) Type() QuestionType { return r.qType }

// Difficulty returns the difficulty filter; empty when unset.
func (r Request) Difficulty() Difficulty { return r.difficulty }

// RequestBuilder assembles a Request. The amount is validated up front; the
// filters are optional and their zero values mean "omit".
type RequestBuilder struct {
	req Request
}

// NewRequestBuilder creates a builder for amount questions.
// Returns ErrInvalidAmount when amount is zero or negative.
func NewRequestBuilder(amount int) (*RequestBuilder, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	return &RequestBuilder{req: Request{amount: amount}}, nil
}

// FromCategory sets the category filter; nil clears it.
func (b *RequestBuilder) FromCategory(category *Category) *RequestBuilder {
	if category == nil {
		b.req.category = nil
		return b
	}
	c := *category
	b.req.category = &c
	return b
}

// OfType sets the question type filter; the empty value clears it.
func (b *RequestBuilder) OfType(t QuestionType) *RequestBuilder {
	b.req.qType = t
	return b
}

// OfDifficulty sets the difficulty filter; the empty value clears it.
func (b *RequestBuilder) OfDifficulty(d Difficulty) *RequestBuilder {
	b.req.difficulty = d
	return b
}

// Build returns an immutable snapshot of the current builder state.
func (b *RequestBuilder) Build() Request {
	req := b.req
	if req.category != nil {
		c := *req.category
		req.category = &c
	}
	return req
}
