package embedding

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// ErrModelUnavailable marks embedding failures that must surface to the
// caller. Downgrading them to "no semantic match" would hide an outage
// behind users apparently not being understood.
var ErrModelUnavailable = errors.New("embedding model unavailable")

// Embedder turns texts into vectors. The chatbot depends on this interface
// so the rule tier and orchestration can be tested with a stub.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

type httpEmbedder struct {
	baseURL string
	client  *http.Client
	logger  *log.Logger
}

type embedRequest struct {
	Inputs []string `json:"inputs"`
}

type embedResponse struct {
	Embeddings [][]float32 `json:"embeddings"`
}

// NewHTTPEmbedder talks to a local inference server exposing POST /embed
// with {"inputs": [...]} → {"embeddings": [[...]]}. Returns nil when no
// base URL is configured.
func NewHTTPEmbedder(baseURL string, timeout time.Duration, logger *log.Logger) Embedder {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &httpEmbedder{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

func (e *httpEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if e == nil || e.client == nil {
		return nil, fmt.Errorf("%w: nil embedder", ErrModelUnavailable)
	}
	if len(texts) == 0 {
		return [][]float32{}, nil
	}
	endpoint := e.baseURL + "/embed"

	b, err := json.Marshal(embedRequest{Inputs: texts})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrModelUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rb, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		bodyStr := strings.TrimSpace(string(rb))
		if e.logger != nil {
			e.logger.Printf("[Embedding] request failed endpoint=%s status=%d body=%q", endpoint, resp.StatusCode, bodyStr)
		}
		return nil, fmt.Errorf("%w: status=%d", ErrModelUnavailable, resp.StatusCode)
	}

	var out embedResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrModelUnavailable, err)
	}
	if len(out.Embeddings) != len(texts) {
		return nil, fmt.Errorf("%w: got %d embeddings for %d inputs", ErrModelUnavailable, len(out.Embeddings), len(texts))
	}
	return out.Embeddings, nil
}

var _ Embedder = (*httpEmbedder)(nil)
