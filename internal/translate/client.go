// Package translate is the HTTP client for the /api/translate endpoint.
package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Rorical/RoriLingo/internal/langs"
)

const (
	DefaultTimeout    = 10 * time.Second
	DefaultRetryDelay = 600 * time.Millisecond
	DefaultRetries    = 1

	// Path is appended to the configured API base.
	Path = "/api/translate"

	userAgent = "RoriLingo/1.0"

	// maxResponseSize bounds how much of a response body is read.
	maxResponseSize = 1 << 20
)

// Request is one translation call.
type Request struct {
	Text       string
	SourceLang langs.Code
	TargetLang langs.Code
}

// Validate rejects requests that must not reach the network.
func (r Request) Validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return &Error{Kind: KindValidation, Message: "Enter text before translating."}
	}
	return nil
}

// Result is a successful translation.
type Result struct {
	Translation        string
	DetectedSourceLang langs.Code // empty when the service did not report one
	Attempts           int
	RequestID          string
}

// Translator is what the UI core needs from a translation backend.
type Translator interface {
	Translate(ctx context.Context, req Request) (Result, error)
}

// Options configures a Client. Zero values take the defaults above; set
// Retries to a negative number to disable retrying.
type Options struct {
	BaseURL    string
	Timeout    time.Duration
	Retries    int
	RetryDelay time.Duration
	HTTPClient *http.Client
	// OnRetry runs before the retry delay, on the calling goroutine.
	OnRetry func(attempt int, err error)
}

// Client posts translation requests with a per-attempt timeout and a
// bounded number of retries.
type Client struct {
	endpoint   string
	timeout    time.Duration
	retries    int
	retryDelay time.Duration
	http       *http.Client
	onRetry    func(int, error)
}

func NewClient(opts Options) *Client {
	c := &Client{
		endpoint:   strings.TrimRight(opts.BaseURL, "/") + Path,
		timeout:    opts.Timeout,
		retries:    opts.Retries,
		retryDelay: opts.RetryDelay,
		http:       opts.HTTPClient,
		onRetry:    opts.OnRetry,
	}
	if c.timeout <= 0 {
		c.timeout = DefaultTimeout
	}
	if c.retries == 0 {
		c.retries = DefaultRetries
	}
	if c.retries < 0 {
		c.retries = 0
	}
	if c.retryDelay <= 0 {
		c.retryDelay = DefaultRetryDelay
	}
	if c.http == nil {
		c.http = &http.Client{}
	}
	return c
}

func (c *Client) Endpoint() string {
	return c.endpoint
}

// WithOnRetry returns a copy of c that reports retries to fn.
func (c *Client) WithOnRetry(fn func(attempt int, err error)) *Client {
	cp := *c
	cp.onRetry = fn
	return &cp
}

type requestBody struct {
	Text       string     `json:"text"`
	SourceLang langs.Code `json:"source_lang"`
	TargetLang langs.Code `json:"target_lang"`
}

type responseBody struct {
	Translation        string `json:"translation"`
	TranslatedText     string `json:"translated_text"`
	DetectedSourceLang string `json:"detected_source_lang"`
}

type errorBody struct {
	Error string `json:"error"`
}

// Translate sends req, retrying transport failures, timeouts and non-2xx
// responses. The returned error is always a *Error.
func (c *Client) Translate(ctx context.Context, req Request) (Result, error) {
	if err := req.Validate(); err != nil {
		return Result{}, err
	}
	payload, err := json.Marshal(requestBody{
		Text:       strings.TrimSpace(req.Text),
		SourceLang: req.SourceLang,
		TargetLang: req.TargetLang,
	})
	if err != nil {
		return Result{}, &Error{Kind: KindValidation, Message: "Could not encode request", Err: err}
	}

	requestID := uuid.New().String()
	attempts := c.retries + 1

	for attempt := 1; ; attempt++ {
		res, err := c.do(ctx, payload, requestID)
		if err == nil {
			res.Attempts = attempt
			res.RequestID = requestID
			return res, nil
		}
		err.Attempts = attempt

		if attempt >= attempts || !err.Retryable() || ctx.Err() != nil {
			return Result{}, err
		}
		if c.onRetry != nil {
			c.onRetry(attempt, err)
		}
		if hook := RetryHook(ctx); hook != nil {
			hook(attempt, err)
		}
		select {
		case <-ctx.Done():
			return Result{}, &Error{Kind: KindTransport, Message: "Request cancelled", Attempts: attempt, Err: ctx.Err()}
		case <-time.After(c.retryDelay):
		}
	}
}

func (c *Client) do(ctx context.Context, payload []byte, requestID string) (Result, *Error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return Result{}, &Error{Kind: KindTransport, Message: "Invalid translation endpoint", Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", userAgent)
	httpReq.Header.Set("X-Request-ID", requestID)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return Result{}, &Error{Kind: KindTimeout, Message: "Request timed out", Err: err}
		}
		return Result{}, &Error{Kind: KindTransport, Message: fmt.Sprintf("Network error: %v", rootCause(err)), Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return Result{}, &Error{Kind: KindTimeout, Status: resp.StatusCode, Message: "Request timed out", Err: err}
		}
		return Result{}, &Error{Kind: KindTransport, Status: resp.StatusCode, Message: fmt.Sprintf("Network error: %v", err), Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := fmt.Sprintf("Request failed (%d)", resp.StatusCode)
		var eb errorBody
		if json.Unmarshal(body, &eb) == nil && eb.Error != "" {
			message = eb.Error
		}
		return Result{}, &Error{Kind: KindProtocol, Status: resp.StatusCode, Message: message}
	}

	var rb responseBody
	if err := json.Unmarshal(body, &rb); err != nil {
		return Result{}, &Error{Kind: KindProtocol, Status: resp.StatusCode, Message: "Invalid response from translation service", Err: err}
	}
	translation := rb.Translation
	if translation == "" {
		translation = rb.TranslatedText
	}
	if translation == "" {
		return Result{}, &Error{Kind: KindProtocol, Status: resp.StatusCode, Message: "No translation field in API response"}
	}

	res := Result{Translation: translation}
	if code, ok := langs.Normalize(rb.DetectedSourceLang); ok {
		res.DetectedSourceLang = code
	}
	return res, nil
}

// rootCause strips the url.Error wrapping so messages stay short.
func rootCause(err error) error {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}
