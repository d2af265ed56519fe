package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/2beens/lifedash/internal/auth"
	"github.com/2beens/lifedash/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
)

// UserAgent identifies the CLI, the API lets it through CORS.
var UserAgent = "lifectl/dev"

var (
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFound is a 404 the API answered for a missing resource, never one for an unknown route.
	ErrNotFound = errors.New("not found")
)

// StatusError is a non 2xx answer from the API.
type StatusError struct {
	Method string
	Path   string
	Code   int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.Code, e.Body)
}

func (e *StatusError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Code == http.StatusUnauthorized
	}
	return false
}

// resourceNotFound marks err with ErrNotFound when it is a 404 carrying the API's own body for the resource.
// Any other 404, like a wrong base URL or a proxy page, stays a plain StatusError.
func resourceNotFound(err error, body string) error {
	var statusErr *StatusError
	if errors.As(err, &statusErr) && statusErr.Code == http.StatusNotFound && statusErr.Body == body {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	return err
}

// Client is a typed client of the lifedash API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// New creates the client. A nil httpClient gets a traced default one.
func New(baseURL, token string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: httpClient,
	}
}

func (c *Client) SetToken(token string) {
	c.token = token
}

func (c *Client) Token() string {
	return c.token
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "apiclient.do")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("http.method", method),
		attribute.String("http.path", path),
	)

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", UserAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set(auth.TokenHeader, c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}
	log.Tracef("api %s %s -> %d", method, path, resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{
			Method: method,
			Path:   path,
			Code:   resp.StatusCode,
			Body:   strings.TrimSpace(string(respBytes)),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBytes, out); err != nil {
		return fmt.Errorf("unmarshal %s %s response: %w", method, path, err)
	}
	return nil
}

// Login exchanges credentials for a token, which the client keeps for later calls.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	var resp struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/a/login", auth.Credentials{
		Username: username,
		Password: password,
	}, &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", errors.New("login: empty token")
	}
	c.token = resp.Token
	return resp.Token, nil
}

func (c *Client) Logout(ctx context.Context) error {
	if err := c.do(ctx, http.MethodGet, "/a/logout", nil, nil); err != nil {
		return err
	}
	c.token = ""
	return nil
}
