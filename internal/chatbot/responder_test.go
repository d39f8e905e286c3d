package chatbot

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"freelance-hub/internal/domain/skill"

	"github.com/google/uuid"
)

type stubAdvisor struct {
	courseTitle    string
	courseProvider string
	courseOK       bool
	missing        []string
	err            error
}

func (s stubAdvisor) TopCourse(context.Context, uuid.UUID) (string, string, bool, error) {
	return s.courseTitle, s.courseProvider, s.courseOK, s.err
}

func (s stubAdvisor) PopularMissingSkills(context.Context, uuid.UUID, string, int) ([]string, error) {
	return s.missing, s.err
}

func testProfile() Profile {
	return Profile{
		UserID: uuid.New(),
		Name:   "Dina",
		Skills: []skill.UserSkill{
			{SkillID: uuid.New(), SkillName: "Go", Category: "Programming", Proficiency: skill.ProficiencyExpert, YearsExperience: 6},
			{SkillID: uuid.New(), SkillName: "Python", Category: "Programming", Proficiency: skill.ProficiencyIntermediate, YearsExperience: 3},
			{SkillID: uuid.New(), SkillName: "Figma", Category: "Design", Proficiency: skill.ProficiencyBeginner, YearsExperience: 1},
		},
	}
}

func TestResponseGenerator_FixedSeedIsDeterministic(t *testing.T) {
	a := NewResponseGenerator(testProfile(), nil, rand.New(rand.NewSource(42)))
	b := NewResponseGenerator(testProfile(), nil, rand.New(rand.NewSource(42)))

	ra, err := a.FindingClients(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	rb, err := b.FindingClients(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if ra != rb {
		t.Fatalf("same seed must produce same response")
	}
}

func TestResponseGenerator_GreetingUsesName(t *testing.T) {
	g := NewResponseGenerator(testProfile(), nil, rand.New(rand.NewSource(7)))
	reply, err := g.Greeting(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !strings.Contains(reply, "Dina") {
		t.Fatalf("expected personalized greeting, got %q", reply)
	}
}

func TestResponseGenerator_PricingMentionsExpertSkill(t *testing.T) {
	profile := testProfile()
	profile.Skills = profile.Skills[:1] // only the expert Go skill
	g := NewResponseGenerator(profile, nil, rand.New(rand.NewSource(3)))

	reply, err := g.Pricing(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !strings.Contains(reply, "an expert in Go") {
		t.Fatalf("expected premium-rate advice for the expert skill, got %q", reply)
	}
}

func TestResponseGenerator_SkillImprovementIncludesCoursePick(t *testing.T) {
	adv := stubAdvisor{courseTitle: "Go Concurrency Deep Dive", courseProvider: "Udemy", courseOK: true}
	g := NewResponseGenerator(testProfile(), adv, rand.New(rand.NewSource(5)))

	reply, err := g.SkillImprovement(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !strings.Contains(reply, "'Go Concurrency Deep Dive' on Udemy") {
		t.Fatalf("expected the advisor's course pick, got %q", reply)
	}
}

func TestResponseGenerator_AnalyzeSkillProfile(t *testing.T) {
	adv := stubAdvisor{missing: []string{"Rust", "Kubernetes", "TypeScript"}}
	g := NewResponseGenerator(testProfile(), adv, rand.New(rand.NewSource(9)))

	reply, err := g.AnalyzeSkillProfile(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !strings.Contains(reply, "strongest category appears to be Programming with 2 skills") {
		t.Fatalf("expected strongest category analysis, got %q", reply)
	}
	if !strings.Contains(reply, "Go (Expert)") {
		t.Fatalf("expected top skills listing, got %q", reply)
	}
	if !strings.Contains(reply, "Rust") || !strings.Contains(reply, "Kubernetes") {
		t.Fatalf("expected the first two missing skills, got %q", reply)
	}
	if strings.Contains(reply, "TypeScript") {
		t.Fatalf("expected at most two missing skills, got %q", reply)
	}
}

func TestResponseGenerator_AnalyzeWithoutSkills(t *testing.T) {
	g := NewResponseGenerator(Profile{}, nil, rand.New(rand.NewSource(1)))
	reply, err := g.AnalyzeSkillProfile(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !strings.Contains(reply, "once you've added skills") {
		t.Fatalf("expected onboarding nudge, got %q", reply)
	}
}

func TestResponseGenerator_AdvisorErrorPropagates(t *testing.T) {
	boom := errors.New("db down")
	g := NewResponseGenerator(testProfile(), stubAdvisor{err: boom}, rand.New(rand.NewSource(1)))

	if _, err := g.SkillImprovement(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected advisor error to propagate, got %v", err)
	}
	if _, err := g.AnalyzeSkillProfile(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected advisor error to propagate, got %v", err)
	}
}

func TestResponseGenerator_SampleSizeCapped(t *testing.T) {
	g := NewResponseGenerator(Profile{}, nil, rand.New(rand.NewSource(1)))
	got := g.sample([]string{"a", "b"}, 5)
	if len(got) != 2 {
		t.Fatalf("expected sample capped at population size, got %d", len(got))
	}
}
