package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"freelance-hub/internal/chatbot"
	"freelance-hub/internal/delivery/http/middleware"
	"freelance-hub/internal/delivery/http/routes"
	"freelance-hub/internal/repository"
	"freelance-hub/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type semanticResponse struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type fixture struct {
	userID  uuid.UUID
	goSkill uuid.UUID
	gigID   uuid.UUID
}

type stubUserRepo struct{ f fixture }

func (s stubUserRepo) GetByID(_ context.Context, id uuid.UUID) (repository.User, error) {
	if id != s.f.userID {
		return repository.User{}, repository.ErrUserNotFound
	}
	return repository.User{ID: id, Username: "dina"}, nil
}

func (s stubUserRepo) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	return id == s.f.userID, nil
}

type stubUserSkillRepo struct{ f fixture }

func (s stubUserSkillRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]repository.UserSkill, error) {
	if userID != s.f.userID {
		return []repository.UserSkill{}, nil
	}
	return []repository.UserSkill{{
		ID: uuid.New(), UserID: userID, SkillID: s.f.goSkill,
		SkillName: "Go", Category: "Programming", Proficiency: "Advanced", YearsExperience: 4,
	}}, nil
}

func (s stubUserSkillRepo) ReplaceForUser(context.Context, uuid.UUID, []repository.UserSkillInput) error {
	return nil
}

func (s stubUserSkillRepo) SkillExistsByID(context.Context, uuid.UUID) (bool, error) {
	return true, nil
}

type stubGigRepo struct{ f fixture }

func (s stubGigRepo) ListBySkillIDs(context.Context, []uuid.UUID, uuid.UUID) ([]repository.Gig, error) {
	return []repository.Gig{{
		ID: s.f.gigID, UserID: uuid.New(), OwnerName: "arif",
		Title: "Go microservice", PriceMin: 100, PriceMax: 400, Status: "active",
		CreatedAt: time.Now().UTC(),
		Skills:    []repository.Skill{{ID: s.f.goSkill, Name: "Go", Category: "Programming"}},
	}}, nil
}

func (s stubGigRepo) ListRecent(context.Context, int, int) ([]repository.Gig, error) {
	return []repository.Gig{}, nil
}

func (s stubGigRepo) Create(_ context.Context, g repository.Gig, _ []uuid.UUID) (repository.Gig, error) {
	return g, nil
}

func (s stubGigRepo) PopularSkillsByCategory(context.Context, string, int) ([]repository.Skill, error) {
	return []repository.Skill{}, nil
}

type stubCourseRepo struct{}

func (stubCourseRepo) ListBySkillIDs(context.Context, []uuid.UUID) ([]repository.Course, error) {
	return []repository.Course{}, nil
}

func (stubCourseRepo) ListSkillIDsTaughtInCategories(context.Context, []string) ([]uuid.UUID, error) {
	return []uuid.UUID{}, nil
}

func newTestApp(f fixture) *fiber.App {
	users := stubUserRepo{f}
	userSkills := stubUserSkillRepo{f}
	gigs := stubGigRepo{f}
	courses := stubCourseRepo{}

	rec := usecase.NewRecommendationUsecase(users, userSkills, gigs, courses, nil, nil)
	chat := usecase.NewChatUsecase(users, userSkills, gigs, rec, chatbot.NewRuleClassifier(), nil, nil, nil)

	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware().Middleware())
	routes.NewRegistry(routes.Deps{
		UserSkills:      usecase.NewUserSkillUsecase(users, userSkills, nil, nil),
		Recommendations: rec,
		Chat:            chat,
	}).Register(app)
	return app
}

func TestAPI_GigRecommendations(t *testing.T) {
	f := fixture{userID: uuid.New(), goSkill: uuid.New(), gigID: uuid.New()}
	app := newTestApp(f)

	url := fmt.Sprintf("/api/v1/users/%s/recommendations/gigs?limit=5", f.userID)
	resp, err := app.Test(httptest.NewRequest("GET", url, nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var env semanticResponse
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if env.Status != fiber.StatusOK {
		t.Fatalf("unexpected envelope status %d", env.Status)
	}

	var items []usecase.RecommendedGig
	if err := json.Unmarshal(env.Data, &items); err != nil {
		t.Fatalf("decode items: %v", err)
	}
	if len(items) != 1 || items[0].GigID != f.gigID {
		t.Fatalf("unexpected items: %+v", items)
	}
	if items[0].MatchingSkills != 1 {
		t.Fatalf("expected matching_skills=1, got %d", items[0].MatchingSkills)
	}
}

func TestAPI_RecommendationsUnknownUser(t *testing.T) {
	f := fixture{userID: uuid.New(), goSkill: uuid.New(), gigID: uuid.New()}
	app := newTestApp(f)

	url := fmt.Sprintf("/api/v1/users/%s/recommendations/gigs", uuid.New())
	resp, err := app.Test(httptest.NewRequest("GET", url, nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestAPI_ChatGreeting(t *testing.T) {
	f := fixture{userID: uuid.New(), goSkill: uuid.New(), gigID: uuid.New()}
	app := newTestApp(f)

	body, _ := json.Marshal(map[string]any{"user_id": f.userID, "message": "hello"})
	req := httptest.NewRequest("POST", "/api/v1/chat", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var env semanticResponse
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	var reply usecase.ChatReply
	if err := json.Unmarshal(env.Data, &reply); err != nil {
		t.Fatalf("decode reply: %v", err)
	}
	if !reply.Matched || reply.Intent != "greeting" {
		t.Fatalf("unexpected reply: %+v", reply)
	}
	if reply.Reply == "" {
		t.Fatalf("expected a reply")
	}
}

func TestAPI_ChatEmptyMessage(t *testing.T) {
	f := fixture{userID: uuid.New(), goSkill: uuid.New(), gigID: uuid.New()}
	app := newTestApp(f)

	body, _ := json.Marshal(map[string]any{"message": ""})
	req := httptest.NewRequest("POST", "/api/v1/chat", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}
