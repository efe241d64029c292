// Package tagger provides a client for an external part-of-speech
// tagging service. The service is an optional capability: when it
// cannot be reached, extraction falls back to heuristics.
package tagger

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	retry "github.com/avast/retry-go"
	"github.com/go-resty/resty/v2"
)

// Token is one annotated token returned by the tagging service.
type Token struct {
	Text     string `json:"text"`
	Lemma    string `json:"lemma"`
	POS      string `json:"pos"`
	IsStop   bool   `json:"is_stop"`
	IsPunct  bool   `json:"is_punct"`
	IsSpace  bool   `json:"is_space"`
	IsDigit  bool   `json:"is_digit"`
	Gender   string `json:"gender,omitempty"`
	Sentence string `json:"sentence"`
}

// Config holds the tagging service connection settings.
type Config struct {
	BaseURL      string
	APIKey       string
	ChunkSize    int
	ProbeTimeout time.Duration
}

const (
	defaultChunkSize    = 100000
	defaultProbeTimeout = 5 * time.Second
)

// Client calls the tagging service over HTTP. The availability probe
// runs at most once per Client; its result is memoized.
type Client struct {
	config Config
	client *resty.Client

	probeOnce sync.Once
	probeErr  error
}

// NewClient creates a Client for the given service configuration.
func NewClient(config Config) *Client {
	if config.ChunkSize <= 0 {
		config.ChunkSize = defaultChunkSize
	}
	if config.ProbeTimeout <= 0 {
		config.ProbeTimeout = defaultProbeTimeout
	}
	return &Client{
		config: config,
		client: resty.New(),
	}
}

// ChunkSize returns the maximum text length per annotation request.
func (c *Client) ChunkSize() int {
	return c.config.ChunkSize
}

// Available probes the service health endpoint. The probe runs only on
// the first call; later calls return the memoized result.
func (c *Client) Available(ctx context.Context) error {
	c.probeOnce.Do(func() {
		probeCtx, cancel := context.WithTimeout(ctx, c.config.ProbeTimeout)
		defer cancel()

		res, err := c.client.R().
			SetContext(probeCtx).
			Get(fmt.Sprintf("%s/health", c.config.BaseURL))
		if err != nil {
			c.probeErr = fmt.Errorf("client.R.Get > %w", err)
			return
		}
		if res.StatusCode() != http.StatusOK {
			c.probeErr = fmt.Errorf("status code: %d, body: %s", res.StatusCode(), string(res.Body()))
		}
	})
	return c.probeErr
}

type annotateRequest struct {
	Text string `json:"text"`
}

type annotateResponse struct {
	Tokens []Token `json:"tokens"`
}

// Annotate sends text to the service and returns annotated tokens.
// Transient failures are retried a few times before giving up. The text
// must not exceed ChunkSize; callers chunk longer documents.
func (c *Client) Annotate(ctx context.Context, text string) ([]Token, error) {
	var body []byte
	err := retry.Do(
		func() error {
			res, err := c.client.R().
				SetContext(ctx).
				SetHeader("Content-Type", "application/json").
				SetHeader("x-api-key", c.config.APIKey).
				SetBody(annotateRequest{Text: text}).
				Post(fmt.Sprintf("%s/annotate", c.config.BaseURL))
			if err != nil {
				return fmt.Errorf("client.R.Post > %w", err)
			}
			if res.StatusCode() != http.StatusOK {
				return fmt.Errorf("status code: %d, body: %s", res.StatusCode(), string(res.Body()))
			}
			body = res.Body()
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(3),
		retry.Delay(100*time.Millisecond),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return nil, err
	}

	var response annotateResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("json.Unmarshal > %w", err)
	}
	return response.Tokens, nil
}
