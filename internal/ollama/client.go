// Package ollama is a thin client for the Ollama native HTTP API. It covers
// the three operations the gateway needs: list installed models, pull a
// model, and generate text. The client is stateless; concurrent calls are
// independent round-trips.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Client abstracts the inference backend so the gateway can take a test
// double.
type Client interface {
	// List returns the identifiers of the models installed on the backend.
	List(ctx context.Context) ([]string, error)
	// Pull instructs the backend to download/install the model. May block
	// for a long time on large downloads; the context is the only bound.
	Pull(ctx context.Context, model string) error
	// Generate produces a completion for prompt using model.
	Generate(ctx context.Context, model, prompt string) (string, error)
}

// HTTPClient talks to an Ollama daemon over its native REST API.
type HTTPClient struct {
	baseURL string
	hc      *http.Client
	log     zerolog.Logger
}

// NewHTTPClient builds a client for the daemon at baseURL
// (e.g. "http://localhost:11434"). The underlying http.Client has no
// timeout: pulls and generations are bounded only by the caller's context.
func NewHTTPClient(baseURL string, log zerolog.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{},
		log:     log,
	}
}

type tagsResponse struct {
	Models []struct {
		Name string `json:"name"`
	} `json:"models"`
}

type pullRequest struct {
	Name   string `json:"name"`
	Stream bool   `json:"stream"`
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type generateResponse struct {
	Response string `json:"response"`
}

// errorBody is the shape Ollama uses for non-2xx replies.
type errorBody struct {
	Error string `json:"error"`
}

// List implements Client via GET /api/tags.
func (c *HTTPClient) List(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/tags", nil)
	if err != nil {
		return nil, ErrBackendUnavailable(err)
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, ErrBackendUnavailable(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, ErrBackendUnavailable(errors.New(readErrorMessage(resp)))
	}
	var tags tagsResponse
	if err := json.NewDecoder(resp.Body).Decode(&tags); err != nil {
		return nil, ErrBackendUnavailable(fmt.Errorf("decode tags response: %w", err))
	}
	names := make([]string, 0, len(tags.Models))
	for _, m := range tags.Models {
		names = append(names, m.Name)
	}
	return names, nil
}

// Pull implements Client via POST /api/pull with stream=false, so the call
// returns only once the download completed or failed.
func (c *HTTPClient) Pull(ctx context.Context, model string) error {
	start := time.Now()
	resp, err := c.postJSON(ctx, "/api/pull", pullRequest{Name: model, Stream: false})
	if err != nil {
		return ErrAcquisitionFailed(model, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return ErrAcquisitionFailed(model, errors.New(readErrorMessage(resp)))
	}
	// Drain so the connection can be reused.
	_, _ = io.Copy(io.Discard, resp.Body)
	c.log.Debug().Str("model", model).Dur("dur", time.Since(start)).Msg("model pulled")
	return nil
}

// Generate implements Client via POST /api/generate with stream=false.
func (c *HTTPClient) Generate(ctx context.Context, model, prompt string) (string, error) {
	resp, err := c.postJSON(ctx, "/api/generate", generateRequest{Model: model, Prompt: prompt, Stream: false})
	if err != nil {
		return "", ErrGenerationFailed(model, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", ErrGenerationFailed(model, errors.New(readErrorMessage(resp)))
	}
	var gen generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&gen); err != nil {
		return "", ErrGenerationFailed(model, fmt.Errorf("decode generate response: %w", err))
	}
	return gen.Response, nil
}

func (c *HTTPClient) postJSON(ctx context.Context, path string, payload any) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.hc.Do(req)
}

// readErrorMessage extracts the backend's error message from a non-2xx
// response, falling back to the raw body or status line.
func readErrorMessage(resp *http.Response) string {
	b, err := io.ReadAll(io.LimitReader(resp.Body, 8<<10))
	if err == nil && len(b) > 0 {
		var eb errorBody
		if json.Unmarshal(b, &eb) == nil && eb.Error != "" {
			return eb.Error
		}
		if s := strings.TrimSpace(string(b)); s != "" {
			return s
		}
	}
	return resp.Status
}
