package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"freelance-hub/internal/repository"

	"github.com/google/uuid"
)

type mockUserRepo struct {
	users map[uuid.UUID]repository.User
	err   error
}

func (m mockUserRepo) GetByID(_ context.Context, id uuid.UUID) (repository.User, error) {
	if m.err != nil {
		return repository.User{}, m.err
	}
	u, ok := m.users[id]
	if !ok {
		return repository.User{}, repository.ErrUserNotFound
	}
	return u, nil
}

func (m mockUserRepo) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.users[id]
	return ok, nil
}

type mockUserSkillRepo struct {
	skills     []repository.UserSkill
	err        error
	replaceErr error
	replaced   []repository.UserSkillInput
}

func (m *mockUserSkillRepo) FindByUserID(context.Context, uuid.UUID) ([]repository.UserSkill, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.skills, nil
}

func (m *mockUserSkillRepo) ReplaceForUser(_ context.Context, _ uuid.UUID, items []repository.UserSkillInput) error {
	if m.replaceErr != nil {
		return m.replaceErr
	}
	m.replaced = items
	return nil
}

func (m *mockUserSkillRepo) SkillExistsByID(context.Context, uuid.UUID) (bool, error) {
	return true, nil
}

type mockGigRepo struct {
	gigs    []repository.Gig
	popular []repository.Skill
	created *repository.Gig
	err     error
}

func (m *mockGigRepo) ListBySkillIDs(context.Context, []uuid.UUID, uuid.UUID) ([]repository.Gig, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.gigs, nil
}

func (m *mockGigRepo) ListRecent(context.Context, int, int) ([]repository.Gig, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.gigs, nil
}

func (m *mockGigRepo) Create(_ context.Context, g repository.Gig, skillIDs []uuid.UUID) (repository.Gig, error) {
	if m.err != nil {
		return repository.Gig{}, m.err
	}
	g.ID = uuid.New()
	g.CreatedAt = time.Now().UTC()
	for _, sid := range skillIDs {
		g.Skills = append(g.Skills, repository.Skill{ID: sid})
	}
	m.created = &g
	return g, nil
}

func (m *mockGigRepo) PopularSkillsByCategory(context.Context, string, int) ([]repository.Skill, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.popular, nil
}

type mockCourseRepo struct {
	courses []repository.Course
	taught  []uuid.UUID
	err     error
}

func (m mockCourseRepo) ListBySkillIDs(context.Context, []uuid.UUID) ([]repository.Course, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.courses, nil
}

func (m mockCourseRepo) ListSkillIDsTaughtInCategories(context.Context, []string) ([]uuid.UUID, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.taught, nil
}

type mockRecCache struct {
	entries map[string][]byte
	deleted []string
	swept   []string
}

func newMockRecCache() *mockRecCache {
	return &mockRecCache{entries: make(map[string][]byte)}
}

func (m *mockRecCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	raw, ok := m.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, out)
}

func (m *mockRecCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.entries[key] = raw
	return nil
}

func (m *mockRecCache) Delete(_ context.Context, key string) error {
	m.deleted = append(m.deleted, key)
	delete(m.entries, key)
	return nil
}

func (m *mockRecCache) DeleteByPattern(_ context.Context, pattern string) error {
	m.swept = append(m.swept, pattern)
	prefix := strings.TrimSuffix(pattern, "*")
	for key := range m.entries {
		if strings.HasPrefix(key, prefix) {
			delete(m.entries, key)
		}
	}
	return nil
}
