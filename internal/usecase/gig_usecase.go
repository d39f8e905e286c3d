package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"freelance-hub/internal/domain/gig"
	"freelance-hub/internal/repository"

	"github.com/google/uuid"
)

type CreateGigInput struct {
	UserID      uuid.UUID
	Title       string
	Description string
	PriceMin    float64
	PriceMax    float64
	Duration    string
	SkillIDs    []uuid.UUID
}

type GigItem struct {
	ID          uuid.UUID          `json:"id"`
	OwnerID     uuid.UUID          `json:"owner_id"`
	OwnerName   string             `json:"owner_name"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	PriceMin    float64            `json:"price_min"`
	PriceMax    float64            `json:"price_max"`
	Duration    string             `json:"duration"`
	Status      string             `json:"status"`
	CreatedAt   time.Time          `json:"created_at"`
	Skills      []RecommendedSkill `json:"skills"`
}

type GigUsecase interface {
	CreateGig(ctx context.Context, in CreateGigInput) (GigItem, error)
	ListGigs(ctx context.Context, limit, offset int) ([]GigItem, error)
}

// GigNotifier fans a freshly created gig out to connected chat clients.
type GigNotifier interface {
	NotifyGigCreated(g GigItem)
}

// RecommendationSweeper clears cached ranked results matching a key pattern.
// A new gig changes every user's gig ranking and the demand signal behind
// skill gaps, so both caches go stale at once.
type RecommendationSweeper interface {
	DeleteByPattern(ctx context.Context, pattern string) error
}

type Gigs struct {
	users    repository.UserRepository
	repo     repository.GigRepository
	notifier GigNotifier
	sweeper  RecommendationSweeper
	logger   *log.Logger
}

func NewGigUsecase(users repository.UserRepository, repo repository.GigRepository, notifier GigNotifier, sweeper RecommendationSweeper, logger *log.Logger) *Gigs {
	return &Gigs{users: users, repo: repo, notifier: notifier, sweeper: sweeper, logger: logger}
}

func (u *Gigs) CreateGig(ctx context.Context, in CreateGigInput) (GigItem, error) {
	if in.UserID == uuid.Nil {
		return GigItem{}, ErrInvalidInput
	}
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return GigItem{}, ErrInvalidInput
	}
	if in.PriceMin <= 0 || in.PriceMax <= 0 || in.PriceMin > in.PriceMax {
		return GigItem{}, ErrInvalidInput
	}
	if len(in.SkillIDs) == 0 {
		return GigItem{}, ErrInvalidInput
	}
	seen := make(map[uuid.UUID]struct{}, len(in.SkillIDs))
	skillIDs := make([]uuid.UUID, 0, len(in.SkillIDs))
	for _, id := range in.SkillIDs {
		if id == uuid.Nil {
			return GigItem{}, ErrInvalidInput
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		skillIDs = append(skillIDs, id)
	}

	exists, err := u.users.ExistsByID(ctx, in.UserID)
	if err != nil {
		return GigItem{}, ErrInternal
	}
	if !exists {
		return GigItem{}, ErrUserNotFound
	}

	owner, err := u.users.GetByID(ctx, in.UserID)
	if err != nil {
		return GigItem{}, ErrInternal
	}

	created, err := u.repo.Create(ctx, repository.Gig{
		UserID:      in.UserID,
		OwnerName:   owner.Username,
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		PriceMin:    in.PriceMin,
		PriceMax:    in.PriceMax,
		Duration:    strings.TrimSpace(in.Duration),
		Status:      gig.StatusActive,
	}, skillIDs)
	if err != nil {
		if isForeignKeyViolation(err) {
			return GigItem{}, ErrSkillNotFound
		}
		return GigItem{}, ErrInternal
	}

	item := toGigItem(created)
	u.invalidateRankings(ctx)
	if u.notifier != nil {
		u.notifier.NotifyGigCreated(item)
	}
	return item, nil
}

func (u *Gigs) invalidateRankings(ctx context.Context) {
	if u.sweeper == nil {
		return
	}
	for _, pattern := range []string{gigRecPattern, gapRecPattern} {
		if err := u.sweeper.DeleteByPattern(ctx, pattern); err != nil && u.logger != nil {
			u.logger.Printf("[Gig] Cache invalidate failed | pattern=%s error=%v", pattern, err)
		}
	}
}

func (u *Gigs) ListGigs(ctx context.Context, limit, offset int) ([]GigItem, error) {
	if limit == 0 {
		limit = 20
	}
	if limit < 0 || limit > maxRecommendLimit || offset < 0 {
		return nil, ErrInvalidInput
	}

	rows, err := u.repo.ListRecent(ctx, limit, offset)
	if err != nil {
		return nil, ErrInternal
	}
	out := make([]GigItem, 0, len(rows))
	for _, g := range rows {
		out = append(out, toGigItem(g))
	}
	return out, nil
}

func toGigItem(g repository.Gig) GigItem {
	return GigItem{
		ID:          g.ID,
		OwnerID:     g.UserID,
		OwnerName:   g.OwnerName,
		Title:       g.Title,
		Description: g.Description,
		PriceMin:    g.PriceMin,
		PriceMax:    g.PriceMax,
		Duration:    g.Duration,
		Status:      g.Status,
		CreatedAt:   g.CreatedAt,
		Skills:      toRecommendedSkills(g.Skills),
	}
}
