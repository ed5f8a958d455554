package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/oze4/go-egnyte/internal/config"
	"github.com/oze4/go-egnyte/internal/services/links"
	"github.com/oze4/go-egnyte/internal/services/transport"
	"github.com/sirupsen/logrus"
)

// Container centralizes the core dependencies used across the application.
// It is intentionally small and uses interfaces so callers (and tests) can
// substitute implementations easily.
type Container struct {
	Config       *config.Config
	Logger       *logrus.Logger
	Links        links.ClientAPI
	ValidateAuth bool
}

// Option allows customizing the container during construction.
type Option func(*Container) error

// WithLogger overrides the default logger.
func WithLogger(logger *logrus.Logger) Option {
	return func(c *Container) error {
		if logger == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		c.Logger = logger
		return nil
	}
}

// WithLinksClient overrides the default links client.
func WithLinksClient(client links.ClientAPI) Option {
	return func(c *Container) error {
		if client == nil {
			return fmt.Errorf("links client cannot be nil")
		}
		c.Links = client
		return nil
	}
}

// WithAuthValidation enables or disables token validation at construction
// time (default: enabled).
func WithAuthValidation(validate bool) Option {
	return func(c *Container) error {
		c.ValidateAuth = validate
		return nil
	}
}

// NewContainer builds a Container with sensible defaults derived from cfg.
// Options can be supplied to override specific dependencies (useful in tests).
func NewContainer(cfg *config.Config, opts ...Option) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	container := &Container{
		Config:       cfg,
		Logger:       buildDefaultLogger(cfg.Loglevel),
		ValidateAuth: true,
	}

	// Apply options early so tests can inject mocks before defaults are created.
	for _, opt := range opts {
		if err := opt(container); err != nil {
			return nil, err
		}
	}

	if container.Links == nil {
		sender := transport.NewClient(cfg.Token,
			transport.WithHTTPClient(&http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second}),
			transport.WithRetryPolicy(transport.RetryPolicy{MaxAttempts: cfg.MaxRetries}),
			transport.WithLogger(container.Logger),
		)
		container.Links = links.NewClient(cfg.BaseURL(), sender)
	}

	if container.ValidateAuth {
		// The links API has no dedicated ping, so probe with the
		// cheapest possible listing.
		one := 1
		if _, err := container.Links.ListLinks(context.Background(), links.ListOptions{Count: &one}); err != nil {
			return nil, fmt.Errorf("failed to verify API token: %w", err)
		}
	}

	return container, nil
}

func buildDefaultLogger(levelStr string) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	return logger
}
