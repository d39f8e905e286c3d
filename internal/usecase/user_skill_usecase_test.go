package usecase

import (
	"context"
	"errors"
	"testing"

	"freelance-hub/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestReplaceUserSkills_RejectsBadInput(t *testing.T) {
	userID := uuid.New()
	users := mockUserRepo{users: map[uuid.UUID]repository.User{userID: {ID: userID, Username: "dina"}}}
	uc := NewUserSkillUsecase(users, &mockUserSkillRepo{}, nil, nil)

	cases := []struct {
		name  string
		items []SaveUserSkillInput
		want  error
	}{
		{"nil skill id", []SaveUserSkillInput{{SkillID: uuid.Nil, Proficiency: "Beginner"}}, ErrInvalidInput},
		{"bad proficiency", []SaveUserSkillInput{{SkillID: uuid.New(), Proficiency: "Wizard"}}, ErrInvalidProficiencyLevel},
		{"negative years", []SaveUserSkillInput{{SkillID: uuid.New(), Proficiency: "Beginner", YearsExperience: -1}}, ErrInvalidInput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := uc.ReplaceUserSkills(context.Background(), userID, tc.items); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestReplaceUserSkills_RejectsDuplicateSkill(t *testing.T) {
	userID := uuid.New()
	users := mockUserRepo{users: map[uuid.UUID]repository.User{userID: {ID: userID, Username: "dina"}}}
	uc := NewUserSkillUsecase(users, &mockUserSkillRepo{}, nil, nil)

	dup := uuid.New()
	_, err := uc.ReplaceUserSkills(context.Background(), userID, []SaveUserSkillInput{
		{SkillID: dup, Proficiency: "Beginner"},
		{SkillID: dup, Proficiency: "Advanced"},
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestReplaceUserSkills_UnknownUser(t *testing.T) {
	uc := NewUserSkillUsecase(mockUserRepo{users: map[uuid.UUID]repository.User{}}, &mockUserSkillRepo{}, nil, nil)

	_, err := uc.ReplaceUserSkills(context.Background(), uuid.New(), nil)
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestReplaceUserSkills_ForeignKeyViolationMapsToSkillNotFound(t *testing.T) {
	userID := uuid.New()
	users := mockUserRepo{users: map[uuid.UUID]repository.User{userID: {ID: userID, Username: "dina"}}}
	repo := &mockUserSkillRepo{replaceErr: &pgconn.PgError{Code: "23503"}}
	uc := NewUserSkillUsecase(users, repo, nil, nil)

	_, err := uc.ReplaceUserSkills(context.Background(), userID, []SaveUserSkillInput{
		{SkillID: uuid.New(), Proficiency: "Beginner", YearsExperience: 1},
	})
	if !errors.Is(err, ErrSkillNotFound) {
		t.Fatalf("expected ErrSkillNotFound, got %v", err)
	}
}

func TestReplaceUserSkills_SavesAndInvalidatesCache(t *testing.T) {
	userID := uuid.New()
	skillID := uuid.New()
	users := mockUserRepo{users: map[uuid.UUID]repository.User{userID: {ID: userID, Username: "dina"}}}
	repo := &mockUserSkillRepo{skills: []repository.UserSkill{{
		ID: uuid.New(), UserID: userID, SkillID: skillID,
		SkillName: "Go", Category: "Programming", Proficiency: "Advanced", YearsExperience: 3,
	}}}

	cache := newMockRecCache()
	rec := NewRecommendationUsecase(users, repo, &mockGigRepo{}, mockCourseRepo{}, cache, nil)
	uc := NewUserSkillUsecase(users, repo, rec, nil)

	got, err := uc.ReplaceUserSkills(context.Background(), userID, []SaveUserSkillInput{
		{SkillID: skillID, Proficiency: "Advanced", YearsExperience: 3},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 1 || got[0].SkillName != "Go" {
		t.Fatalf("unexpected items: %+v", got)
	}
	if len(repo.replaced) != 1 || repo.replaced[0].SkillID != skillID {
		t.Fatalf("replace not forwarded to repository")
	}
	if len(cache.deleted) != 3 {
		t.Fatalf("expected 3 cache keys invalidated, got %d", len(cache.deleted))
	}
}

func TestListUserSkills_UnknownUser(t *testing.T) {
	uc := NewUserSkillUsecase(mockUserRepo{users: map[uuid.UUID]repository.User{}}, &mockUserSkillRepo{}, nil, nil)

	_, err := uc.ListUserSkills(context.Background(), uuid.New())
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
