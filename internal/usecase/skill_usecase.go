package usecase

import (
	"context"
	"strings"

	"freelance-hub/internal/repository"

	"github.com/google/uuid"
)

type SkillItem struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Category string    `json:"category"`
}

type SkillUsecase interface {
	ListSkills(ctx context.Context) ([]SkillItem, error)
	ListSkillsByCategory(ctx context.Context) (map[string][]SkillItem, error)
	CreateSkill(ctx context.Context, name, category string) (SkillItem, error)
}

type Skills struct {
	repo repository.SkillRepository
}

func NewSkillUsecase(repo repository.SkillRepository) *Skills {
	return &Skills{repo: repo}
}

func (u *Skills) ListSkills(ctx context.Context) ([]SkillItem, error) {
	all, err := u.repo.GetAllSkills(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	out := make([]SkillItem, 0, len(all))
	for _, s := range all {
		out = append(out, SkillItem{ID: s.ID, Name: s.Name, Category: s.Category})
	}
	return out, nil
}

func (u *Skills) ListSkillsByCategory(ctx context.Context) (map[string][]SkillItem, error) {
	grouped, err := u.repo.GetSkillsByCategory(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	out := make(map[string][]SkillItem, len(grouped))
	for cat, skills := range grouped {
		items := make([]SkillItem, 0, len(skills))
		for _, s := range skills {
			items = append(items, SkillItem{ID: s.ID, Name: s.Name, Category: s.Category})
		}
		out[cat] = items
	}
	return out, nil
}

func (u *Skills) CreateSkill(ctx context.Context, name, category string) (SkillItem, error) {
	name = strings.TrimSpace(name)
	category = strings.TrimSpace(category)
	if name == "" || category == "" {
		return SkillItem{}, ErrInvalidInput
	}

	created, err := u.repo.CreateSkill(ctx, name, category)
	if err != nil {
		if isUniqueViolation(err) {
			return SkillItem{}, ErrSkillAlreadyExists
		}
		return SkillItem{}, ErrInternal
	}
	return SkillItem{ID: created.ID, Name: created.Name, Category: created.Category}, nil
}
