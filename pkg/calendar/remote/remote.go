// Package remote reads the transactions for the calendar from another
// instance of the API.
package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/duecal/backend/pkg/calendar"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// ErrUpstream is returned when the upstream API responds with an error.
var ErrUpstream = errors.New("upstream transaction service returned an error")

// Source queries the transactions endpoint of an upstream API.
type Source struct {
	base   *url.URL
	client *retryablehttp.Client
}

// Option configures a Source.
type Option func(*Source)

// WithRetries sets how often a failed request is retried.
func WithRetries(n int) Option {
	return func(s *Source) {
		s.client.RetryMax = n
	}
}

// WithBackoff sets the minimum and maximum time to wait between retries.
func WithBackoff(min, max time.Duration) Option {
	return func(s *Source) {
		s.client.RetryWaitMin = min
		s.client.RetryWaitMax = max
	}
}

// WithHTTPClient sets the client used for requests.
func WithHTTPClient(c *http.Client) Option {
	return func(s *Source) {
		s.client.HTTPClient = c
	}
}

// New returns a Source for the API at base, e.g. https://example.com/api.
func New(base *url.URL, opts ...Option) *Source {
	client := retryablehttp.NewClient()
	client.Logger = leveledLogger{logger: log.Logger.With().Str("component", "calendar-source").Logger()}

	// Keep the last response to report the error the upstream sent
	client.ErrorHandler = func(resp *http.Response, err error, _ int) (*http.Response, error) {
		if resp != nil {
			return resp, nil
		}
		return nil, err
	}

	s := &Source{
		base:   base,
		client: client,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// transaction is a transaction as the upstream API returns it.
type transaction struct {
	ID           string                     `json:"id"`
	Type         calendar.TransactionType   `json:"type"`
	Status       calendar.TransactionStatus `json:"status"`
	Amount       decimal.Decimal            `json:"amount"`
	Description  string                     `json:"description"`
	DueDate      time.Time                  `json:"dueDate"`
	ExecutedDate *time.Time                 `json:"executedDate"`
	Recurring    bool                       `json:"recurring"`
	CategoryID   *string                    `json:"categoryId"`
	CategoryName string                     `json:"categoryName"`
}

func (t transaction) calendar() calendar.Transaction {
	ct := calendar.Transaction{
		ID:           t.ID,
		Type:         t.Type,
		Amount:       t.Amount,
		Description:  t.Description,
		DueDate:      t.DueDate.Format(time.RFC3339Nano),
		Status:       t.Status,
		Recurring:    t.Recurring,
		CategoryName: t.CategoryName,
	}

	if t.ExecutedDate != nil {
		ct.ExecutedDate = t.ExecutedDate.Format(time.RFC3339Nano)
	}

	if t.CategoryID != nil {
		ct.CategoryID = *t.CategoryID
	}

	return ct
}

type listResponse struct {
	Data  []transaction `json:"data"`
	Error *string       `json:"error"`
}

// Transactions returns the transactions due within the window that match the filter.
func (s *Source) Transactions(ctx context.Context, window calendar.Window, filter calendar.Filter) ([]calendar.Transaction, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, s.url(window, filter), nil)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("could not query transactions: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read response: %w", err)
	}

	var r listResponse
	decodeErr := json.Unmarshal(body, &r)

	if resp.StatusCode != http.StatusOK {
		msg := strings.TrimSpace(string(body))
		if decodeErr == nil && r.Error != nil {
			msg = *r.Error
		}
		return nil, fmt.Errorf("%w: status %d: %s", ErrUpstream, resp.StatusCode, msg)
	}

	if decodeErr != nil {
		return nil, fmt.Errorf("could not decode response: %w", decodeErr)
	}

	transactions := make([]calendar.Transaction, 0, len(r.Data))
	for _, t := range r.Data {
		transactions = append(transactions, t.calendar())
	}

	return transactions, nil
}

// url returns the URL of the transaction list for the window and filter.
func (s *Source) url(window calendar.Window, filter calendar.Filter) string {
	u := s.base.JoinPath("v1", "transactions")

	q := url.Values{}
	q.Set("dueFrom", window.Start.Format(time.RFC3339Nano))
	q.Set("dueBefore", window.End.Format(time.RFC3339Nano))
	q.Set("limit", "-1")

	for _, t := range filter.Types {
		q.Add("type", string(t))
	}

	for _, status := range filter.Statuses {
		q.Add("status", string(status))
	}

	for _, c := range filter.Categories {
		q.Add("category", c)
	}

	if filter.AccountID != "" {
		q.Set("account", filter.AccountID)
	}

	u.RawQuery = q.Encode()
	return u.String()
}

// leveledLogger writes the logs of the retrying client with zerolog.
type leveledLogger struct {
	logger zerolog.Logger
}

func (l leveledLogger) Error(msg string, keysAndValues ...any) {
	l.logger.Error().Fields(keysAndValues).Msg(msg)
}

func (l leveledLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Info().Fields(keysAndValues).Msg(msg)
}

func (l leveledLogger) Debug(msg string, keysAndValues ...any) {
	l.logger.Debug().Fields(keysAndValues).Msg(msg)
}

func (l leveledLogger) Warn(msg string, keysAndValues ...any) {
	l.logger.Warn().Fields(keysAndValues).Msg(msg)
}
