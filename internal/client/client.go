// Package client provides an HTTP client for the portfolio backend.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/evcraddock/portfolio/internal/auth"
	"github.com/evcraddock/portfolio/internal/comment"
)

const (
	// SessionCookie is the cookie the backend uses to identify a logged-in visitor.
	SessionCookie = auth.CookieName

	defaultTimeout = 30 * time.Second
)

// Client talks to the portfolio backend.
type Client struct {
	baseURL    string
	session    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithSession attaches a session id to every request.
func WithSession(id string) Option {
	return func(c *Client) { c.session = id }
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New creates a new backend client.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListComments fetches GET /data and decodes it as an ordered list of comments.
func (c *Client) ListComments(ctx context.Context) ([]comment.Comment, error) {
	body, u, err := c.get(ctx, "/data")
	if err != nil {
		return nil, err
	}

	var comments []comment.Comment
	if err := json.Unmarshal(body, &comments); err != nil {
		return nil, &ParseError{URL: u, Err: err}
	}
	if comments == nil {
		// "null" is not a list.
		return nil, &ParseError{URL: u, Err: errors.New("expected a JSON array")}
	}
	return comments, nil
}

// Text fetches path and returns the body as plain text without the trailing newline.
func (c *Client) Text(ctx context.Context, path string) (string, error) {
	body, _, err := c.get(ctx, path)
	if err != nil {
		return "", err
	}
	text := string(body)
	if t, ok := strings.CutSuffix(text, "\n"); ok {
		text = strings.TrimSuffix(t, "\r")
	}
	return text, nil
}

// HomeURL fetches GET /home: the login or logout URL for the current visitor.
func (c *Client) HomeURL(ctx context.Context) (string, error) {
	return c.Text(ctx, "/home")
}

// AddComment posts a comment through the same form the About page submits.
func (c *Client) AddComment(ctx context.Context, text string, sentimentScore float64) error {
	form := url.Values{}
	form.Set("text-input", text)
	if sentimentScore != 0 {
		form.Set("sentiment_score", strconv.FormatFloat(sentimentScore, 'f', -1, 64))
	}
	_, _, err := c.postForm(ctx, "/data", form)
	return err
}

// Login opens a session for nickname and returns the session id.
func (c *Client) Login(ctx context.Context, nickname string) (string, error) {
	form := url.Values{}
	form.Set("nickname", nickname)

	_, resp, err := c.postForm(ctx, "/login", form)
	if err != nil {
		return "", err
	}
	for _, ck := range resp.Cookies() {
		if ck.Name == SessionCookie && ck.Value != "" {
			return ck.Value, nil
		}
	}
	return "", &ParseError{URL: c.baseURL + "/login", Err: errors.New("no session cookie in response")}
}

// Logout ends the session on the backend.
func (c *Client) Logout(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/logout?next=/about/", nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	_, _, err = c.do(req, false)
	return err
}

// get fetches path, following redirects to the final resource.
func (c *Client) get(ctx context.Context, path string) ([]byte, string, error) {
	u := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, u, fmt.Errorf("creating request: %w", err)
	}
	body, _, err := c.do(req, true)
	return body, u, err
}

func (c *Client) postForm(ctx context.Context, path string, form url.Values) ([]byte, *http.Response, error) {
	u := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req, false)
}

// do executes req. Unless follow is set, a redirect is returned as the
// response and counts as success: the backend answers form posts with
// 303 See Other and sets the session cookie on that response.
func (c *Client) do(req *http.Request, follow bool) ([]byte, *http.Response, error) {
	if c.session != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: c.session})
	}

	hc := c.httpClient
	if !follow {
		noRedirect := *c.httpClient
		noRedirect.CheckRedirect = func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		}
		hc = &noRedirect
	}

	u := req.URL.String()
	resp, err := hc.Do(req)
	if err != nil {
		return nil, nil, &FetchError{Method: req.Method, URL: u, Err: err}
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			fmt.Printf("warning: closing response body: %v\n", cerr)
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp, &FetchError{Method: req.Method, URL: u, StatusCode: resp.StatusCode, Err: fmt.Errorf("reading response: %w", err)}
	}

	if resp.StatusCode >= 400 {
		fe := &FetchError{Method: req.Method, URL: u, StatusCode: resp.StatusCode}
		var errResp struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(body, &errResp) == nil && errResp.Error != "" {
			fe.Message = errResp.Error
		} else if msg := strings.TrimSpace(string(body)); msg != "" && len(msg) < 200 {
			fe.Message = msg
		}
		return nil, resp, fe
	}

	return body, resp, nil
}
