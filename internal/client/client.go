// Package client talks to the customer service API.
package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"go.uber.org/zap"

	appErrors "github.com/unclebandit/customer-lookup/internal/errors"
	"github.com/unclebandit/customer-lookup/internal/model"
)

const maxBodyBytes = 1 << 20

type Client struct {
	baseURL  string
	http     *http.Client
	log      *zap.Logger
	validate *validator.Validate
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithTimeout bounds each request. Zero leaves requests unbounded.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     &http.Client{},
		log:      zap.NewNop(),
		validate: validator.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CustomerURL is the lookup endpoint for id. The id is forwarded as given.
func (c *Client) CustomerURL(id string) string {
	return c.baseURL + "/api/customers/" + url.PathEscape(id)
}

// customerBody mirrors the response with pointer fields so absent keys can be told apart
// from empty strings.
type customerBody struct {
	ID    *int    `json:"id"`
	Name  *string `json:"name" validate:"required"`
	City  *string `json:"city" validate:"required"`
	Email *string `json:"email" validate:"required"`
}

// GetCustomer fetches one customer. Non-200 answers come back as *appErrors.StatusError
// and unusable bodies as *appErrors.DecodeError.
func (c *Client) GetCustomer(ctx context.Context, id string) (*model.Customer, error) {
	target := c.CustomerURL(id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", target, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", target, err)
	}

	c.log.Debug("customer api responded",
		zap.String("url", target),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode != http.StatusOK {
		statusErr := &appErrors.StatusError{Code: resp.StatusCode}
		var msg model.ErrorMessage
		if json.Unmarshal(body, &msg) == nil {
			statusErr.Message = msg.Message
		}
		return nil, statusErr
	}

	var wire customerBody
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, &appErrors.DecodeError{Err: err}
	}
	if err := c.validate.Struct(wire); err != nil {
		return nil, &appErrors.DecodeError{Err: err}
	}

	customer := &model.Customer{
		Name:  *wire.Name,
		City:  *wire.City,
		Email: *wire.Email,
	}
	if wire.ID != nil {
		customer.ID = *wire.ID
	}
	return customer, nil
}
