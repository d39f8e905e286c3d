package usecase

import (
	"context"
	"errors"
	"log"

	"freelance-hub/internal/domain/skill"
	"freelance-hub/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

type UserSkillItem struct {
	ID              uuid.UUID `json:"id"`
	SkillID         uuid.UUID `json:"skill_id"`
	SkillName       string    `json:"skill_name"`
	Category        string    `json:"category"`
	Proficiency     string    `json:"proficiency"`
	YearsExperience int       `json:"years_experience"`
}

type SaveUserSkillInput struct {
	SkillID         uuid.UUID
	Proficiency     string
	YearsExperience int
}

type UserSkillUsecase interface {
	ListUserSkills(ctx context.Context, userID uuid.UUID) ([]UserSkillItem, error)
	// ReplaceUserSkills swaps the user's whole skill set for the given one.
	ReplaceUserSkills(ctx context.Context, userID uuid.UUID, items []SaveUserSkillInput) ([]UserSkillItem, error)
}

type cacheInvalidator interface {
	invalidateForUser(ctx context.Context, userID uuid.UUID)
}

type UserSkills struct {
	users       repository.UserRepository
	repo        repository.UserSkillRepository
	invalidator cacheInvalidator
	logger      *log.Logger
}

func NewUserSkillUsecase(users repository.UserRepository, repo repository.UserSkillRepository, invalidator cacheInvalidator, logger *log.Logger) *UserSkills {
	return &UserSkills{users: users, repo: repo, invalidator: invalidator, logger: logger}
}

func (u *UserSkills) ListUserSkills(ctx context.Context, userID uuid.UUID) ([]UserSkillItem, error) {
	if userID == uuid.Nil {
		return nil, ErrInvalidInput
	}
	exists, err := u.users.ExistsByID(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	if !exists {
		return nil, ErrUserNotFound
	}

	items, err := u.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	out := make([]UserSkillItem, 0, len(items))
	for _, it := range items {
		out = append(out, UserSkillItem{
			ID:              it.ID,
			SkillID:         it.SkillID,
			SkillName:       it.SkillName,
			Category:        it.Category,
			Proficiency:     it.Proficiency,
			YearsExperience: it.YearsExperience,
		})
	}
	return out, nil
}

func (u *UserSkills) ReplaceUserSkills(ctx context.Context, userID uuid.UUID, items []SaveUserSkillInput) ([]UserSkillItem, error) {
	if userID == uuid.Nil {
		return nil, ErrInvalidInput
	}

	seen := make(map[uuid.UUID]struct{}, len(items))
	inputs := make([]repository.UserSkillInput, 0, len(items))
	for _, it := range items {
		if it.SkillID == uuid.Nil {
			return nil, ErrInvalidInput
		}
		if _, dup := seen[it.SkillID]; dup {
			return nil, ErrInvalidInput
		}
		seen[it.SkillID] = struct{}{}
		if _, ok := skill.ParseProficiency(it.Proficiency); !ok {
			return nil, ErrInvalidProficiencyLevel
		}
		if it.YearsExperience < 0 {
			return nil, ErrInvalidInput
		}
		inputs = append(inputs, repository.UserSkillInput{
			SkillID:         it.SkillID,
			Proficiency:     it.Proficiency,
			YearsExperience: it.YearsExperience,
		})
	}

	exists, err := u.users.ExistsByID(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	if !exists {
		return nil, ErrUserNotFound
	}

	if err := u.repo.ReplaceForUser(ctx, userID, inputs); err != nil {
		if isForeignKeyViolation(err) {
			return nil, ErrSkillNotFound
		}
		return nil, ErrInternal
	}

	if u.invalidator != nil {
		u.invalidator.invalidateForUser(ctx, userID)
	}

	return u.ListUserSkills(ctx, userID)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	return false
}
