package folio

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/rs/zerolog"
)

// Client is the portfolio API collaborator. Every call is bearer-token
// authenticated when a token is present. Calls are plain request/response:
// no retry, no client-side timeout beyond the context, no cancellation
// magic. A failed request surfaces immediately.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	log     zerolog.Logger
}

// NewClient creates a client for the API at baseURL.
func NewClient(baseURL string, logger zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    http.DefaultClient,
		log:     logger,
	}
}

// SetToken installs (or clears) the bearer token used on every call.
func (c *Client) SetToken(token string) { c.token = token }

// Token returns the current bearer token, "" when logged out.
func (c *Client) Token() string { return c.token }

// RequestError is a non-2xx response or transport failure. Detail carries
// the human-readable message from the error body when the server sent one;
// the view-model surfaces it verbatim or falls back to a localized
// message keyed by FallbackKey.
type RequestError struct {
	Status      int
	Detail      string
	FallbackKey string
}

func (e *RequestError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("request failed (status %d)", e.Status)
}

// IsUnauthorized reports whether err is a 401 response.
func IsUnauthorized(err error) bool {
	re, ok := err.(*RequestError)
	return ok && re.Status == http.StatusUnauthorized
}

// do performs one JSON request. A non-nil out receives the decoded 2xx
// body. Error bodies are shaped {detail?, message?}; either field is
// accepted, extracted tolerantly because servers have drifted on the
// exact shape.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("cannot encode request body: %w", err)
		}
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("cannot build request %s %s: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("method", method).Str("path", path).Msg("request failed")
		return &RequestError{Detail: "", FallbackKey: "requestFailed"}
	}
	defer resp.Body.Close()
	c.log.Debug().Str("method", method).Str("path", path).Int("status", resp.StatusCode).Msg("api call")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &RequestError{
			Status:      resp.StatusCode,
			Detail:      errorDetail(resp.Body),
			FallbackKey: "requestFailed",
		}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("cannot decode response of %s %s: %w", method, path, err)
	}
	return nil
}

// errorDetail extracts "detail" or "message" from an error body, tolerant
// of any surrounding shape. Absence of both yields "" and the caller falls
// back to a localized generic message.
func errorDetail(r io.Reader) string {
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return ""
	}
	for _, path := range []string{"$.detail", "$.message"} {
		jval, err := jsonpath.Get(path, jobj)
		if err != nil {
			continue
		}
		if s, ok := jval.(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// Session is the authenticated identity returned by login.
type Session struct {
	Token string `json:"token"`
	Email string `json:"email"`
}

// Login exchanges credentials for a session and installs its token.
func (c *Client) Login(ctx context.Context, email, password string) (Session, error) {
	var s Session
	payload := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/api/login", payload, &s); err != nil {
		return Session{}, err
	}
	c.token = s.Token
	return s, nil
}

// Register creates an account. The caller still has to log in.
func (c *Client) Register(ctx context.Context, email, password string) error {
	payload := map[string]string{"email": email, "password": password}
	return c.do(ctx, http.MethodPost, "/api/register", payload, nil)
}

// Logout invalidates the session server-side. The local token is cleared
// regardless of the outcome.
func (c *Client) Logout(ctx context.Context) error {
	err := c.do(ctx, http.MethodPost, "/api/logout", nil, nil)
	c.token = ""
	return err
}

// Profile returns the authenticated user's profile.
func (c *Client) Profile(ctx context.Context) (email string, err error) {
	var out struct {
		Email string `json:"email"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/profile", nil, &out); err != nil {
		return "", err
	}
	return out.Email, nil
}

// List fetches the full holdings collection.
func (c *Client) List(ctx context.Context) ([]Holding, error) {
	var holdings []Holding
	if err := c.do(ctx, http.MethodGet, "/api/portfolio", nil, &holdings); err != nil {
		return nil, err
	}
	return holdings, nil
}

// holdingPayload is the create/update request body. The API names the
// cost field "cost" while serving it back as "totalCost".
type holdingPayload struct {
	Name         string    `json:"name"`
	Category     Category  `json:"category"`
	Quantity     float64   `json:"quantity"`
	Cost         float64   `json:"cost"`
	Currency     string    `json:"currency,omitempty"`
	CurrentPrice *float64  `json:"currentPrice,omitempty"`
	RiskLevel    RiskLevel `json:"riskLevel,omitempty"`
	Strategy     string    `json:"strategy,omitempty"`
	Sentiment    string    `json:"sentiment,omitempty"`
	Tags         []string  `json:"tags,omitempty"`
	Note         string    `json:"note,omitempty"`
}

func payloadOf(h Holding) holdingPayload {
	return holdingPayload{
		Name:         h.Name,
		Category:     h.Category,
		Quantity:     h.Quantity,
		Cost:         h.TotalCost,
		Currency:     h.Currency,
		CurrentPrice: h.CurrentPrice,
		RiskLevel:    h.RiskLevel,
		Strategy:     h.Strategy,
		Sentiment:    h.Sentiment,
		Tags:         h.Tags,
		Note:         h.Note,
	}
}

// Create stores a new holding and returns the record with its assigned id.
func (c *Client) Create(ctx context.Context, h Holding) (Holding, error) {
	var saved Holding
	if err := c.do(ctx, http.MethodPost, "/api/portfolio", payloadOf(h), &saved); err != nil {
		return Holding{}, err
	}
	return saved, nil
}

// Update replaces the holding with the given id and returns the record.
func (c *Client) Update(ctx context.Context, id string, h Holding) (Holding, error) {
	var saved Holding
	if err := c.do(ctx, http.MethodPut, "/api/portfolio/"+id, payloadOf(h), &saved); err != nil {
		return Holding{}, err
	}
	return saved, nil
}

// Delete removes the holding with the given id.
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/portfolio/"+id, nil, nil)
}
