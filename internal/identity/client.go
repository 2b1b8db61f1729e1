// Package identity talks to the identity service on behalf of the catalog service.
package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"
	"golang.org/x/sync/singleflight"

	"luxe-be/internal/models"
)

var (
	// ErrRejected means the identity service refused the credential.
	ErrRejected = errors.New("identity service rejected the credential")
	// ErrUnavailable means no answer could be obtained (network, timeout, 5xx, open breaker).
	ErrUnavailable = errors.New("identity service unavailable")
)

const profilePath = "/auth/me"

// Client fetches user profiles from the identity service.
type Client struct {
	baseURL string
	http    *http.Client
	timeout time.Duration
	breaker *gobreaker.CircuitBreaker[*models.UserResponse]
	sfg     singleflight.Group
	logger  *slog.Logger
}

// NewClient builds a client whose every lookup is bounded by timeout.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		timeout: timeout,
		logger:  logger,
	}
	c.breaker = gobreaker.NewCircuitBreaker[*models.UserResponse](gobreaker.Settings{
		Name:        "identity-service",
		MaxRequests: 1,
		Timeout:     10 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		// a rejected token says nothing about the health of the service
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrRejected)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()))
		},
	})
	return c
}

// FetchProfile returns the profile behind a bearer token.
// Concurrent lookups for the same token share one request. The shared request
// is detached from every caller and bounded only by the client timeout; a
// caller whose ctx ends stops waiting without affecting the others.
func (c *Client) FetchProfile(ctx context.Context, token string) (*models.UserResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	shared := context.WithoutCancel(ctx)
	ch := c.sfg.DoChan(token, func() (any, error) {
		profile, err := c.breaker.Execute(func() (*models.UserResponse, error) {
			return c.fetch(shared, token)
		})
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		return profile, err
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*models.UserResponse), nil
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, ctx.Err())
	}
}

func (c *Client) fetch(ctx context.Context, token string) (*models.UserResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+profilePath, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrUnavailable, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return nil, fmt.Errorf("%w: status %d", ErrRejected, resp.StatusCode)
	default:
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	var profile models.UserResponse
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("%w: decode profile: %v", ErrUnavailable, err)
	}
	if profile.ID == "" {
		return nil, fmt.Errorf("%w: profile without id", ErrRejected)
	}
	return &profile, nil
}
