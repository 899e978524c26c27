package opentdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const (
	kDefaultBaseURL = "https://opentdb.com"

	kQuestionPath = "/api.php"
	kTokenPath    = "/api_token.php"
	kCategoryPath = "/api_category.php"

	kQueryParamAmount  = "amount"
	kQueryParamToken   = "token"
	kQueryParamCommand = "command"

	kCommandRequest = "request"
	kCommandReset   = "reset"

	kMaxErrorBodyBytes = 8 << 10
	kMaxBodyBytes      = 2 << 20

	kTokenExpiredMessage = "Session Token has been invalidated after 6 hours of inactivity"
)

// Client is the public client contract.
type Client interface {
	// Send dispatches the request and blocks until the question list is
	// available or the request failed.
	Send(ctx context.Context, req Request) ([]Question, error)

	// SendAsync dispatches the request without blocking.
	SendAsync(ctx context.Context, req Request) *QuestionsFuture

	// FetchToken starts retrieving a session token in the background.
	// Use AwaitToken to block until it is available.
	FetchToken(ctx context.Context)

	// ResetToken asks the server to forget which questions this token has
	// seen. It fails immediately, before any network I/O, when no token
	// exists.
	ResetToken(ctx context.Context) (*ResetFuture, error)

	// AwaitToken blocks until a session token has been retrieved, a token
	// issuance failure was recorded, or ctx is done.
	AwaitToken(ctx context.Context) error

	// Token returns the current session token, if one exists.
	Token() (string, bool)

	// IsTokenExpired reports whether more than 6 hours have passed since
	// the token was issued or last reset. Diagnostic only; the token is
	// never cleared automatically.
	IsTokenExpired() bool
}

// HttpClient is an API client backed by net/http.
type HttpClient struct {
	BaseURL string

	// Encoding is the encoding type requested for all responses; it
	// determines the value of the encode parameter.
	Encoding EncodingType

	Http *http.Client

	// Categories, when set, resolves category names to full Category values
	// during question decoding. Optional.
	Categories *Categories

	token *tokenState
}

type HttpClientOptions struct {
	BaseURL    string
	Encoding   EncodingType
	Http       *http.Client
	Categories *Categories

	// DisableSessionToken turns session tokens off permanently for this
	// client: FetchToken becomes a no-op and requests never carry a token.
	DisableSessionToken bool
}

func NewHttpClient(opts HttpClientOptions) *HttpClient {
	c := &HttpClient{
		BaseURL:    opts.BaseURL,
		Encoding:   opts.Encoding,
		Http:       opts.Http,
		Categories: opts.Categories,
		token:      newTokenState(opts.DisableSessionToken),
	}
	if c.Http == nil {
		c.Http = http.DefaultClient
	}
	return c
}

// buildQuestionURL composes the question endpoint URL. Parameter order:
// encode (always emitted, empty value for the default scheme), amount, then
// category/type/difficulty only when present, then token only when present.
func (c *HttpClient) buildQuestionURL(req Request) string {
	var sb strings.Builder
	sb.WriteString(normalizedBaseURL(c.BaseURL))
	sb.WriteString(kQuestionPath)

	enc := c.Encoding
	sb.WriteString("?" + enc.ParameterName() + "=" + enc.ParameterValue())
	sb.WriteString("&" + kQueryParamAmount + "=" + strconv.Itoa(req.Amount()))

	if cat := req.Category(); cat != nil {
		sb.WriteString("&" + cat.ParameterName() + "=" + cat.ParameterValue())
	}
	if t := req.Type(); t != "" {
		sb.WriteString("&" + t.ParameterName() + "=" + t.ParameterValue())
	}
	if d := req.Difficulty(); d != "" {
		sb.WriteString("&" + d.ParameterName() + "=" + d.ParameterValue())
	}
	if tok, _, ok := c.token.snapshot(); ok {
		sb.WriteString("&" + kQueryParamToken + "=" + url.QueryEscape(tok))
	}
	return sb.String()
}

func (c *HttpClient) Send(ctx context.Context, req Request) ([]Question, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.buildQuestionURL(req), nil)
	if err != nil {
		return nil, fmt.Errorf("create question request: %w", err)
	}

	resp, err := c.Http.Do(httpReq)
	if err != nil {
		// Transport failures are normalized into the response-code taxonomy.
		er := newErrorResponseMessage(ResponseUnknown, fmt.Sprintf("question request failed: %v", err))
		er.Err = err
		return nil, er
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, kMaxErrorBodyBytes))
		msg := strings.TrimSpace(string(snippet))
		if msg == "" {
			msg = resp.Status
		}
		return nil, newErrorResponseMessage(ResponseUnknown, fmt.Sprintf("question endpoint: status %d: %s", resp.StatusCode, msg))
	}

	return c.handleResponse(resp.Body)
}

func (c *HttpClient) SendAsync(ctx context.Context, req Request) *QuestionsFuture {
	fut := newQuestionsFuture()
	go func() {
		fut.resolve(c.Send(ctx, req))
	}()
	return fut
}

// handleResponse decodes the response-code envelope and either returns the
// question list or the matching error.
func (c *HttpClient) handleResponse(body io.Reader) ([]Question, error) {
	var payload struct {
		ResponseCode int               `json:"response_code"`
		Results      []questionPayload `json:"results"`
	}
	if err := json.NewDecoder(io.LimitReader(body, kMaxBodyBytes)).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode question response: %w", err)
	}

	code := ResponseCodeFromCode(payload.ResponseCode)
	switch code {
	case ResponseSuccess:
		questions := make([]Question, 0, len(payload.Results))
		for _, p := range payload.Results {
			q, err := decodeQuestion(p, c.Categories)
			if err != nil {
				return nil, fmt.Errorf("decode question: %w", err)
			}
			questions = append(questions, q)
		}
		return questions, nil
	case ResponseTokenNotFound:
		if _, issued, ok := c.token.snapshot(); ok && !issued.IsZero() && c.token.expired() {
			return nil, newErrorResponseMessage(code, kTokenExpiredMessage)
		}
		return nil, newErrorResponse(code)
	default:
		return nil, newErrorResponse(code)
	}
}

func (c *HttpClient) FetchToken(ctx context.Context) {
	if c.token.disabled {
		return
	}
	go func() {
		token, code, err := c.tokenCommand(ctx, kCommandRequest, "")
		if err != nil {
			c.token.setFatal(fmt.Errorf("fetch token: %w", err))
			return
		}
		if code != ResponseSuccess {
			// The API is contracted to always issue a token; a refusal is a
			// broken invariant, not a normal error.
			c.token.setFatal(&UnexpectedStateError{Code: code})
			return
		}
		c.token.set(token)
	}()
}

func (c *HttpClient) ResetToken(ctx context.Context) (*ResetFuture, error) {
	tok, _, ok := c.token.snapshot()
	if !ok {
		return nil, ErrNoToken
	}

	fut := newResetFuture()
	go func() {
		_, code, err := c.tokenCommand(ctx, kCommandReset, tok)
		if err != nil {
			fut.resolve(fmt.Errorf("reset token: %w", err))
			return
		}
		if code != ResponseSuccess {
			if code.IsError() {
				fut.resolve(newErrorResponse(code))
			} else {
				fut.resolve(newErrorResponseMessage(ResponseUnknown, fmt.Sprintf("reset token: unexpected response code %v", code)))
			}
			return
		}
		c.token.refresh()
		fut.resolve(nil)
	}()
	return fut, nil
}

// tokenCommand calls the token endpoint with the given command and returns
// the issued token (when present) and the decoded response code.
func (c *HttpClient) tokenCommand(ctx context.Context, command, token string) (string, ResponseCode, error) {
	endpoint := normalizedBaseURL(c.BaseURL) + kTokenPath + "?" + kQueryParamCommand + "=" + command
	if token != "" {
		endpoint += "&" + kQueryParamToken + "=" + url.QueryEscape(token)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", ResponseUnknown, fmt.Errorf("create token request: %w", err)
	}
	resp, err := c.Http.Do(req)
	if err != nil {
		return "", ResponseUnknown, fmt.Errorf("token request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, kMaxErrorBodyBytes))
		msg := strings.TrimSpace(string(snippet))
		if msg == "" {
			msg = resp.Status
		}
		return "", ResponseUnknown, fmt.Errorf("token endpoint: status %d: %s", resp.StatusCode, msg)
	}

	var payload struct {
		ResponseCode int    `json:"response_code"`
		Token        string `json:"token"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, kMaxBodyBytes)).Decode(&payload); err != nil {
		return "", ResponseUnknown, fmt.Errorf("decode token response: %w", err)
	}
	return payload.Token, ResponseCodeFromCode(payload.ResponseCode), nil
}

func (c *HttpClient) AwaitToken(ctx context.Context) error {
	return c.token.await(ctx)
}

func (c *HttpClient) Token() (string, bool) {
	tok, _, ok := c.token.snapshot()
	return tok, ok
}

func (c *HttpClient) IsTokenExpired() bool {
	return c.token.expired()
}

func normalizedBaseURL(baseURL string) string {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if base == "" {
		return kDefaultBaseURL
	}
	return base
}
