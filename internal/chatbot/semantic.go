package chatbot

import (
	"context"
	"fmt"
	"math"
	"time"

	"freelance-hub/internal/infrastructure/embedding"

	gocache "github.com/patrickmn/go-cache"
)

// DefaultSimilarityThreshold is the minimum cosine similarity for the
// semantic tier to claim an intent.
const DefaultSimilarityThreshold = 0.6

// SemanticFallback resolves intents by cosine similarity between the input
// text and the taxonomy labels used as semantic anchors. Anchor embeddings
// are computed once at construction and never mutated, so concurrent
// Classify calls need no locking.
type SemanticFallback struct {
	embedder  embedding.Embedder
	intents   []Intent
	anchors   [][]float32
	threshold float64
	inputs    *gocache.Cache
}

// NewSemanticFallback precomputes the anchor embeddings. An embedder
// failure here is an initialization error, not a soft miss.
func NewSemanticFallback(ctx context.Context, embedder embedding.Embedder, threshold float64) (*SemanticFallback, error) {
	if embedder == nil {
		return nil, fmt.Errorf("%w: no embedder configured", embedding.ErrModelUnavailable)
	}
	if threshold <= 0 {
		threshold = DefaultSimilarityThreshold
	}

	intents := Intents()
	labels := make([]string, 0, len(intents))
	for _, it := range intents {
		labels = append(labels, it.String())
	}

	anchors, err := embedder.Embed(ctx, labels)
	if err != nil {
		return nil, fmt.Errorf("embed intent anchors: %w", err)
	}
	if len(anchors) != len(intents) {
		return nil, fmt.Errorf("%w: anchor count mismatch", embedding.ErrModelUnavailable)
	}

	return &SemanticFallback{
		embedder:  embedder,
		intents:   intents,
		anchors:   anchors,
		threshold: threshold,
		inputs:    gocache.New(10*time.Minute, 15*time.Minute),
	}, nil
}

// Classify embeds the text and takes the arg-max anchor similarity. Exact
// ties keep the earliest anchor. A best score at or below the threshold is
// a miss, not an error.
func (s *SemanticFallback) Classify(ctx context.Context, text string) (Intent, bool, error) {
	norm := normalize(text)
	if norm == "" {
		return "", false, nil
	}

	vec, err := s.embedText(ctx, norm)
	if err != nil {
		return "", false, err
	}

	bestIdx := -1
	bestScore := math.Inf(-1)
	for i, anchor := range s.anchors {
		score := cosineSimilarity(vec, anchor)
		if score > bestScore {
			bestScore = score
			bestIdx = i
		}
	}

	if bestIdx < 0 || bestScore <= s.threshold {
		return "", false, nil
	}
	return s.intents[bestIdx], true, nil
}

func (s *SemanticFallback) embedText(ctx context.Context, norm string) ([]float32, error) {
	if cached, ok := s.inputs.Get(norm); ok {
		if vec, ok := cached.([]float32); ok {
			return vec, nil
		}
	}

	vecs, err := s.embedder.Embed(ctx, []string{norm})
	if err != nil {
		return nil, err
	}
	if len(vecs) != 1 {
		return nil, fmt.Errorf("%w: expected 1 embedding, got %d", embedding.ErrModelUnavailable, len(vecs))
	}

	s.inputs.Set(norm, vecs[0], gocache.DefaultExpiration)
	return vecs[0], nil
}

func cosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
