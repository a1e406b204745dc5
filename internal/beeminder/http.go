package beeminder

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"beeminder-dow/internal/domain"
)

// DefaultBaseURL is the public Beeminder API root.
const DefaultBaseURL = "https://www.beeminder.com/api/v1"

// StatusError is a non-2xx response that has no more specific meaning.
type StatusError struct {
	Method string
	Path   string
	Code   int
	Body   string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("beeminder %s %s: %d %s", e.Method, e.Path, e.Code, http.StatusText(e.Code))
	}
	return fmt.Sprintf("beeminder %s %s: %d %s: %s", e.Method, e.Path, e.Code, http.StatusText(e.Code), e.Body)
}

type HTTP struct {
	Base  string
	Token string
	HTTP  *http.Client
}

func NewHTTP(base, token string, client *http.Client) *HTTP {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTP{Base: strings.TrimRight(base, "/"), Token: token, HTTP: client}
}

type userResponse struct {
	Username string `json:"username"`
}

type goalResponse struct {
	Slug     string            `json:"slug"`
	Title    string            `json:"title"`
	GoalDate *float64          `json:"goaldate"`
	Rate     *float64          `json:"rate"`
	RUnits   string            `json:"runits"`
	RoadAll  []json.RawMessage `json:"roadall"`
}

// ResolveUsername returns the user that owns the token.
func (c *HTTP) ResolveUsername(ctx context.Context) (string, error) {
	var out userResponse
	if err := c.getJSON(ctx, "/users/me.json", &out); err != nil {
		return "", err
	}
	if out.Username == "" {
		return "", fmt.Errorf("beeminder GET /users/me.json: response has no username")
	}
	return out.Username, nil
}

// FetchGoal returns a snapshot of goal as owned by username.
func (c *HTTP) FetchGoal(ctx context.Context, username, goal string) (domain.GoalSnapshot, error) {
	var out goalResponse
	path := "/users/" + url.PathEscape(username) + "/goals/" + url.PathEscape(goal) + ".json"
	if err := c.getJSON(ctx, path, &out); err != nil {
		return domain.GoalSnapshot{}, err
	}

	snap := domain.GoalSnapshot{
		Slug:      out.Slug,
		Title:     out.Title,
		Rate:      out.Rate,
		RateUnits: out.RUnits,
		Road:      out.RoadAll,
	}
	if snap.Slug == "" {
		snap.Slug = goal
	}
	if out.GoalDate != nil && *out.GoalDate > 0 {
		snap.EndDate = time.Unix(int64(*out.GoalDate), 0)
	}
	return snap, nil
}

func (c *HTTP) getJSON(ctx context.Context, path string, out any) error {
	q := url.Values{}
	q.Set("auth_token", c.Token)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Base+path+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("beeminder GET %s: create request: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		// url.Error embeds the full URL, token included.
		return fmt.Errorf("beeminder GET %s: %w", path, redact(err, c.Token))
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return statusError(http.MethodGet, path, resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("beeminder GET %s: decode: %w", path, err)
	}
	return nil
}

func statusError(method, path string, resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("beeminder %s %s: %w", method, path, domain.ErrUnauthorized)
	case http.StatusNotFound:
		if strings.Contains(path, "/goals/") {
			return fmt.Errorf("beeminder %s %s: %w", method, path, domain.ErrGoalNotFound)
		}
	}
	b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return &StatusError{
		Method: method,
		Path:   path,
		Code:   resp.StatusCode,
		Body:   strings.TrimSpace(string(b)),
	}
}

// redact strips the token out of transport errors.
func redact(err error, token string) error {
	if token == "" {
		return err
	}
	msg := err.Error()
	for _, s := range []string{url.QueryEscape(token), token} {
		msg = strings.ReplaceAll(msg, s, "REDACTED")
	}
	if msg == err.Error() {
		return err
	}
	return redactedError{msg: msg, err: err}
}

type redactedError struct {
	msg string
	err error
}

func (e redactedError) Error() string { return e.msg }
func (e redactedError) Unwrap() error { return e.err }

var _ domain.GoalClient = (*HTTP)(nil)
