// Package client provides programmatic access to the disbursement
// voucher report API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Error is returned when the server responds with a status code
// outside of the 2xx range.
type Error struct {
	StatusCode int    // Numeric HTTP status code, e.g. 404
	Status     string // Status line as the server sent it, e.g. "404 Not Found"
}

func (e *Error) Error() string {
	return fmt.Sprintf("the server responded with %s", e.Status)
}

// Client calls the disbursement voucher endpoints of a central server.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
	log        zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the http.Client used for requests.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithToken sets a bearer token that is sent with every request.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// WithLogger sets the logger for request debug logging.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// New returns a Client for the server at baseURL.
func New(baseURL string, options ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		log:        zerolog.Nop(),
	}

	for _, option := range options {
		option(c)
	}

	return c
}

func (c *Client) monthURL(schoolID uint64, year int, month time.Month) string {
	return fmt.Sprintf("%s/api/v1/reports/disbursement-voucher/%d/%d/%d", c.baseURL, schoolID, year, int(month))
}

func (c *Client) dayURL(schoolID uint64, year int, month time.Month, day int) string {
	return fmt.Sprintf("%s/%d", c.monthURL(schoolID, year, month), day)
}

// CreateOrUpdate files the voucher for a day. An existing voucher for
// the same day is replaced, including all of its line items.
func (c *Client) CreateOrUpdate(ctx context.Context, schoolID uint64, year int, month time.Month, day int, voucher VoucherCreateRequest) (Voucher, error) {
	var saved Voucher
	err := c.do(ctx, http.MethodPost, c.dayURL(schoolID, year, month, day), voucher, &saved)
	return saved, err
}

// Get returns the voucher filed for a specific day.
func (c *Client) Get(ctx context.Context, schoolID uint64, year int, month time.Month, day int) (Voucher, error) {
	var voucher Voucher
	err := c.do(ctx, http.MethodGet, c.dayURL(schoolID, year, month, day), nil, &voucher)
	return voucher, err
}

// GetForMonth returns all vouchers of a reporting month, ordered by
// date. When linkedCategory is non-empty, only vouchers linked to that
// liquidation report category are returned.
func (c *Client) GetForMonth(ctx context.Context, schoolID uint64, year int, month time.Month, linkedCategory string) ([]Voucher, error) {
	reqURL := c.monthURL(schoolID, year, month)
	if linkedCategory != "" {
		query := url.Values{}
		query.Set("linked_category", linkedCategory)
		reqURL += "?" + query.Encode()
	}

	vouchers := make([]Voucher, 0)
	err := c.do(ctx, http.MethodGet, reqURL, nil, &vouchers)
	return vouchers, err
}

// do executes a request against the server and decodes the response
// into target.
func (c *Client) do(ctx context.Context, method, reqURL string, body, target any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("request body could not be marshaled: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return fmt.Errorf("request could not be created: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	c.log.Debug().Str("method", method).Str("url", reqURL).Msg("Client")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode > 299 {
		return &Error{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	err = json.NewDecoder(resp.Body).Decode(target)
	if err != nil {
		return fmt.Errorf("response could not be decoded: %w", err)
	}

	return nil
}
