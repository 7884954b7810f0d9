// Package importer fetches deck files from remote URLs and stores them in
// the local deck repository.
package importer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"resty.dev/v3"

	"github.com/flashkit-cli/flashkit/internal/deck"
)

const defaultRetryAttempts = 3

type Importer struct {
	httpClient       *resty.Client
	repository       deck.Repository
	maxRetryAttempts uint
}

type Option func(*Importer)

func WithRetryAttempts(attempts uint) Option {
	return func(i *Importer) {
		i.maxRetryAttempts = attempts
	}
}

// WithBaseURL points the importer at a fixed host, mainly for tests.
func WithBaseURL(baseURL string) Option {
	return func(i *Importer) {
		i.httpClient.SetBaseURL(baseURL)
	}
}

func New(repository deck.Repository, opts ...Option) *Importer {
	client := resty.New()
	client.SetHeader("Accept", "application/yaml, text/yaml, text/plain")

	importer := &Importer{
		httpClient:       client,
		repository:       repository,
		maxRetryAttempts: defaultRetryAttempts,
	}
	for _, opt := range opts {
		opt(importer)
	}
	return importer
}

func (i *Importer) Close() error {
	return i.httpClient.Close()
}

// isRetryableError determines if an error should trigger a retry
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	errStr := err.Error()
	if strings.Contains(errStr, "connection refused") || strings.Contains(errStr, "i/o timeout") {
		return true
	}
	if strings.Contains(errStr, "response error 5") {
		return true
	}
	if strings.Contains(errStr, "response error 429") {
		return true
	}

	return false
}

// Import fetches a deck file from url, validates it and saves it through
// the repository. When name is empty the deck's own name is used.
func (i *Importer) Import(ctx context.Context, url, name string) (*deck.Deck, error) {
	var fetched *deck.Deck
	if err := retry.Do(
		func() error {
			d, err := i.fetch(ctx, url)
			if err != nil {
				if !isRetryableError(err) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			fetched = d
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(i.maxRetryAttempts+1),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
	); err != nil {
		return nil, err
	}

	if name != "" {
		fetched.Name = name
	}
	if fetched.Name == "" {
		return nil, fmt.Errorf("imported deck from %s has no name; pass one explicitly", url)
	}

	for index := range fetched.Cards {
		if fetched.Cards[index].ID == "" {
			fetched.Cards[index].ID = uuid.NewString()
		}
		if fetched.Cards[index].Deck == "" {
			fetched.Cards[index].Deck = fetched.Name
		}
	}

	if errs := fetched.Validate(); len(errs) > 0 {
		messages := make([]string, 0, len(errs))
		for _, validationErr := range errs {
			messages = append(messages, validationErr.Error())
		}
		return nil, fmt.Errorf("imported deck is invalid: %s", strings.Join(messages, "; "))
	}

	if err := i.repository.SaveDeck(fetched); err != nil {
		return nil, fmt.Errorf("repository.SaveDeck() > %w", err)
	}

	slog.Default().Debug("imported deck",
		"url", url,
		"deck", fetched.Name,
		"cards", len(fetched.Cards),
	)
	return fetched, nil
}

func (i *Importer) fetch(ctx context.Context, url string) (*deck.Deck, error) {
	response, err := i.httpClient.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return nil, fmt.Errorf("httpClient.Get > %w", err)
	}
	if response.IsError() {
		return nil, fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
	}

	var d deck.Deck
	if err := yaml.Unmarshal([]byte(response.String()), &d); err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal() > %w", err)
	}
	return &d, nil
}
