package usecase

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"freelance-hub/internal/chatbot"
	"freelance-hub/internal/domain/skill"
	"freelance-hub/internal/repository"

	"github.com/google/uuid"
)

func fixedRand() func() *rand.Rand {
	return func() *rand.Rand { return rand.New(rand.NewSource(1)) }
}

func TestChat_EmptyMessage(t *testing.T) {
	uc := NewChatUsecase(mockUserRepo{}, &mockUserSkillRepo{}, &mockGigRepo{}, nil, chatbot.NewRuleClassifier(), nil, fixedRand(), nil)

	_, err := uc.Chat(context.Background(), nil, "   ")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestChat_AnonymousGreeting(t *testing.T) {
	uc := NewChatUsecase(mockUserRepo{}, &mockUserSkillRepo{}, &mockGigRepo{}, nil, chatbot.NewRuleClassifier(), nil, fixedRand(), nil)

	got, err := uc.Chat(context.Background(), nil, "hello")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !got.Matched || got.Intent != "greeting" {
		t.Fatalf("expected greeting intent, got %+v", got)
	}
	if got.Reply == "" {
		t.Fatalf("expected a reply")
	}
}

func TestChat_PersonalizedGreetingUsesName(t *testing.T) {
	userID := uuid.New()
	users := mockUserRepo{users: map[uuid.UUID]repository.User{userID: {ID: userID, Username: "dina"}}}
	uc := NewChatUsecase(users, &mockUserSkillRepo{}, &mockGigRepo{}, nil, chatbot.NewRuleClassifier(), nil, fixedRand(), nil)

	got, err := uc.Chat(context.Background(), &userID, "hi")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !strings.Contains(got.Reply, "dina") {
		t.Fatalf("expected reply to address the user, got %q", got.Reply)
	}
}

func TestChat_UnknownUser(t *testing.T) {
	uc := NewChatUsecase(mockUserRepo{users: map[uuid.UUID]repository.User{}}, &mockUserSkillRepo{}, &mockGigRepo{}, nil, chatbot.NewRuleClassifier(), nil, fixedRand(), nil)

	missing := uuid.New()
	_, err := uc.Chat(context.Background(), &missing, "hello")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestChat_UnmatchedFallsBackToDefault(t *testing.T) {
	uc := NewChatUsecase(mockUserRepo{}, &mockUserSkillRepo{}, &mockGigRepo{}, nil, chatbot.NewRuleClassifier(), nil, fixedRand(), nil)

	got, err := uc.Chat(context.Background(), nil, "quantum flux capacitors")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Matched || got.Intent != "" {
		t.Fatalf("expected no intent, got %+v", got)
	}
	found := false
	for _, d := range chatbot.DefaultResponses() {
		if got.Reply == d {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("expected a default message, got %q", got.Reply)
	}
}

func TestChatAdvisor_PopularMissingSkillsFiltersOwned(t *testing.T) {
	ownedID, rustID := uuid.New(), uuid.New()
	adv := &chatAdvisor{
		gigs: &mockGigRepo{popular: []repository.Skill{
			{ID: ownedID, Name: "Go", Category: "Programming"},
			{ID: rustID, Name: "Rust", Category: "Programming"},
		}},
		skills: []skill.UserSkill{{SkillID: ownedID, SkillName: "Go", Category: "Programming"}},
	}

	names, err := adv.PopularMissingSkills(context.Background(), uuid.New(), "Programming", 2)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(names) != 1 || names[0] != "Rust" {
		t.Fatalf("expected only the missing skill, got %v", names)
	}
}

func TestChatAdvisor_TopCourse(t *testing.T) {
	userID := uuid.New()
	goID := uuid.New()
	users := mockUserRepo{users: map[uuid.UUID]repository.User{userID: {ID: userID, Username: "dina"}}}
	userSkills := &mockUserSkillRepo{skills: []repository.UserSkill{{
		UserID: userID, SkillID: goID, SkillName: "Go", Category: "Programming", Proficiency: "Beginner",
	}}}
	courses := mockCourseRepo{courses: []repository.Course{{
		ID: uuid.New(), Title: "Go Basics", Provider: "Coursera", Difficulty: "Beginner",
		Skills: []repository.Skill{{ID: goID, Name: "Go"}},
	}}}
	rec := NewRecommendationUsecase(users, userSkills, &mockGigRepo{}, courses, nil, nil)

	adv := &chatAdvisor{recommender: rec}
	title, provider, ok, err := adv.TopCourse(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !ok || title != "Go Basics" || provider != "Coursera" {
		t.Fatalf("unexpected course: %q by %q ok=%v", title, provider, ok)
	}
}
