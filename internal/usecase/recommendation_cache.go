package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RecommendationCache stores ranked result lists. A nil or unavailable
// cache degrades to recomputing; it never makes a request fail.
type RecommendationCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

const recommendationTTL = 5 * time.Minute

const (
	gigRecPattern = "rec:gigs:*"
	gapRecPattern = "rec:gaps:*"
)

func gigRecKey(userID uuid.UUID) string {
	return fmt.Sprintf("rec:gigs:%s", userID)
}

func courseRecKey(userID uuid.UUID) string {
	return fmt.Sprintf("rec:courses:%s", userID)
}

func gapRecKey(userID uuid.UUID) string {
	return fmt.Sprintf("rec:gaps:%s", userID)
}
