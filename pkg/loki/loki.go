// Package loki is a small batching client for the Loki push API.
package loki

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

// Logger receives the client's own delivery failures; pushing them through
// the client itself would recurse.
type Logger interface {
	Error(msg string, args ...any)
}

type Config struct {
	// URL of the push endpoint, e.g. https://loki.example.com/loki/api/v1/push
	URL string `validate:"required"`

	// Labels attached to every pushed line.
	Labels map[string]string

	// BatchSize is how many lines are buffered before a push is forced.
	BatchSize int `validate:"gte=1"`

	// FlushInterval is the longest a buffered line waits before being pushed.
	FlushInterval time.Duration `validate:"gte=1"`

	// Username and Password enable basic auth when both are set.
	Username string
	Password string
}

func (cfg *Config) setDefaults() {
	if cfg.BatchSize == 0 {
		cfg.BatchSize = 500
	}
	if cfg.FlushInterval == 0 {
		cfg.FlushInterval = 5 * time.Second
	}
	if cfg.Labels == nil {
		cfg.Labels = map[string]string{}
	}
}

type Line struct {
	Level   string `json:"level"`
	Message string `json:"msg"`
	Caller  string `json:"caller"`
}

type pushRequest struct {
	Streams []stream `json:"streams"`
}

type stream struct {
	Stream map[string]string `json:"stream"`
	Values [][]string        `json:"values"`
}

type Client struct {
	config *Config
	ctx    context.Context
	cancel context.CancelFunc
	http   *http.Client
	lines  chan Line
	done   sync.WaitGroup
	logger Logger
}

func New(ctx context.Context, cfg Config, logger Logger) (*Client, error) {

	cfg.setDefaults()
	if err := validator.New().Struct(cfg); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	c := &Client{
		config: &cfg,
		ctx:    ctx,
		cancel: cancel,
		http:   &http.Client{Timeout: 10 * time.Second},
		lines:  make(chan Line, cfg.BatchSize),
		logger: logger,
	}

	c.done.Add(1)
	go c.run()
	return c, nil
}

// Push queues a line for delivery. Lines are dropped when the buffer is full
// rather than blocking the caller.
func (c *Client) Push(line Line) {
	select {
	case c.lines <- line:
	default:
	}
}

// Stop flushes buffered lines and shuts the client down.
func (c *Client) Stop() {
	c.cancel()
	c.done.Wait()
}

func (c *Client) run() {
	defer c.done.Done()

	ticker := time.NewTicker(c.config.FlushInterval)
	defer ticker.Stop()

	batch := make([][]string, 0, c.config.BatchSize)

	flush := func() {
		if len(batch) == 0 {
			return
		}
		if err := c.send(batch); err != nil {
			c.logger.Error("failed to send logs to loki", "error", err)
		}
		batch = batch[:0]
	}
	defer flush()

	for {
		select {
		case <-c.ctx.Done():
			return
		case line := <-c.lines:
			encoded, err := json.Marshal(line)
			if err != nil {
				continue
			}
			ts := strconv.FormatInt(time.Now().UnixNano(), 10)
			batch = append(batch, []string{ts, string(encoded)})
			if len(batch) >= c.config.BatchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		}
	}
}

func (c *Client) send(batch [][]string) error {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)

	payload := pushRequest{Streams: []stream{{
		Stream: c.config.Labels,
		Values: batch,
	}}}
	if err := json.NewEncoder(gz).Encode(payload); err != nil {
		return err
	}
	if err := gz.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, c.config.URL, &buf)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Content-Encoding", "gzip")

	if c.config.Username != "" && c.config.Password != "" {
		req.SetBasicAuth(c.config.Username, c.config.Password)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("received unexpected response code from Loki: %s, body: %s", resp.Status, string(body))
	}

	return nil
}
