package usecase

import (
	"context"
	"log"

	"freelance-hub/internal/domain/course"
	"freelance-hub/internal/domain/recommend"
	"freelance-hub/internal/domain/skill"
	"freelance-hub/internal/observability"
	"freelance-hub/internal/repository"

	"github.com/google/uuid"
)

const (
	defaultGigLimit    = 5
	defaultCourseLimit = 10
	defaultGapLimit    = 5
	maxRecommendLimit  = 50
)

type RecommendedSkill struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Category string    `json:"category"`
}

type RecommendedGig struct {
	GigID          uuid.UUID          `json:"gig_id"`
	OwnerID        uuid.UUID          `json:"owner_id"`
	OwnerName      string             `json:"owner_name"`
	Title          string             `json:"title"`
	Description    string             `json:"description"`
	PriceMin       float64            `json:"price_min"`
	PriceMax       float64            `json:"price_max"`
	Duration       string             `json:"duration"`
	MatchingSkills int                `json:"matching_skills"`
	Skills         []RecommendedSkill `json:"skills"`
}

type RecommendedCourse struct {
	CourseID       uuid.UUID          `json:"course_id"`
	Title          string             `json:"title"`
	Provider       string             `json:"provider"`
	URL            string             `json:"url"`
	Difficulty     string             `json:"difficulty"`
	Duration       string             `json:"duration"`
	Price          float64            `json:"price"`
	MatchingSkills int                `json:"matching_skills"`
	Skills         []RecommendedSkill `json:"skills"`
}

type RecommendationUsecase interface {
	RecommendGigs(ctx context.Context, userID uuid.UUID, limit int) ([]RecommendedGig, error)
	RecommendCourses(ctx context.Context, userID uuid.UUID, limit int) ([]RecommendedCourse, error)
	SkillGapCourses(ctx context.Context, userID uuid.UUID, limit int) ([]RecommendedCourse, error)
}

type Recommendation struct {
	users      repository.UserRepository
	userSkills repository.UserSkillRepository
	gigs       repository.GigRepository
	courses    repository.CourseRepository
	cache      RecommendationCache
	logger     *log.Logger
}

func NewRecommendationUsecase(
	users repository.UserRepository,
	userSkills repository.UserSkillRepository,
	gigs repository.GigRepository,
	courses repository.CourseRepository,
	cache RecommendationCache,
	logger *log.Logger,
) *Recommendation {
	return &Recommendation{
		users:      users,
		userSkills: userSkills,
		gigs:       gigs,
		courses:    courses,
		cache:      cache,
		logger:     logger,
	}
}

func clampLimit(limit, def int) (int, error) {
	if limit == 0 {
		return def, nil
	}
	if limit < 0 || limit > maxRecommendLimit {
		return 0, ErrInvalidInput
	}
	return limit, nil
}

// loadProfile fetches the user's skills after checking the user exists.
// A user without skills gets (empty, nil): every recommender treats an
// empty profile as "nothing to recommend", not an error.
func (u *Recommendation) loadProfile(ctx context.Context, userID uuid.UUID) ([]repository.UserSkill, error) {
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
	us, err := u.userSkills.FindByUserID(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return us, nil
}

func (u *Recommendation) cacheGet(ctx context.Context, key string, out any) bool {
	if u.cache == nil {
		return false
	}
	hit, err := u.cache.GetJSON(ctx, key, out)
	if err != nil || !hit {
		if u.logger != nil {
			u.logger.Printf("[Recommend] Cache MISS: %s", key)
		}
		return false
	}
	if u.logger != nil {
		u.logger.Printf("[Recommend] Cache HIT: %s", key)
	}
	return true
}

func (u *Recommendation) cacheSet(ctx context.Context, key string, value any) {
	if u.cache == nil {
		return
	}
	if err := u.cache.SetJSON(ctx, key, value, recommendationTTL); err != nil && u.logger != nil {
		u.logger.Printf("[Recommend] Cache SET failed: %s: %v", key, err)
	}
}

func (u *Recommendation) RecommendGigs(ctx context.Context, userID uuid.UUID, limit int) ([]RecommendedGig, error) {
	limit, err := clampLimit(limit, defaultGigLimit)
	if err != nil {
		return nil, err
	}
	observability.IncRecommendation("gigs")

	us, err := u.loadProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(us) == 0 {
		return []RecommendedGig{}, nil
	}

	key := gigRecKey(userID)
	var cached []RecommendedGig
	if u.cacheGet(ctx, key, &cached) {
		return truncateGigs(cached, limit), nil
	}

	skillIDs := make([]uuid.UUID, 0, len(us))
	for _, s := range us {
		skillIDs = append(skillIDs, s.SkillID)
	}

	rows, err := u.gigs.ListBySkillIDs(ctx, skillIDs, userID)
	if err != nil {
		return nil, ErrInternal
	}

	byID := make(map[uuid.UUID]repository.Gig, len(rows))
	candidates := make([]recommend.GigCandidate, 0, len(rows))
	for _, g := range rows {
		byID[g.ID] = g
		candidates = append(candidates, recommend.GigCandidate{
			GigID:     g.ID,
			OwnerID:   g.UserID,
			SkillIDs:  skillIDsOf(g.Skills),
			CreatedAt: g.CreatedAt,
		})
	}

	// Rank the full candidate set once and cache it; callers with smaller
	// limits share the entry.
	ranked := recommend.RankGigs(skillIDs, userID, candidates, maxRecommendLimit)

	out := make([]RecommendedGig, 0, len(ranked))
	for _, r := range ranked {
		g := byID[r.GigID]
		out = append(out, RecommendedGig{
			GigID:          g.ID,
			OwnerID:        g.UserID,
			OwnerName:      g.OwnerName,
			Title:          g.Title,
			Description:    g.Description,
			PriceMin:       g.PriceMin,
			PriceMax:       g.PriceMax,
			Duration:       g.Duration,
			MatchingSkills: r.MatchingSkills,
			Skills:         toRecommendedSkills(g.Skills),
		})
	}

	u.cacheSet(ctx, key, out)
	return truncateGigs(out, limit), nil
}

func (u *Recommendation) RecommendCourses(ctx context.Context, userID uuid.UUID, limit int) ([]RecommendedCourse, error) {
	limit, err := clampLimit(limit, defaultCourseLimit)
	if err != nil {
		return nil, err
	}
	observability.IncRecommendation("courses")

	us, err := u.loadProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(us) == 0 {
		return []RecommendedCourse{}, nil
	}

	key := courseRecKey(userID)
	var cached []RecommendedCourse
	if u.cacheGet(ctx, key, &cached) {
		return truncateCourses(cached, limit), nil
	}

	profile := toEngineSkills(us)
	skillIDs := make([]uuid.UUID, 0, len(us))
	for _, s := range us {
		skillIDs = append(skillIDs, s.SkillID)
	}

	rows, err := u.courses.ListBySkillIDs(ctx, skillIDs)
	if err != nil {
		return nil, ErrInternal
	}

	byID := make(map[uuid.UUID]repository.Course, len(rows))
	candidates := make([]recommend.CourseCandidate, 0, len(rows))
	for _, c := range rows {
		byID[c.ID] = c
		candidates = append(candidates, toCourseCandidate(c))
	}

	ranked := recommend.RankCourses(profile, candidates, maxRecommendLimit)

	out := make([]RecommendedCourse, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, toRecommendedCourse(byID[r.CourseID], r.MatchingSkills))
	}

	u.cacheSet(ctx, key, out)
	return truncateCourses(out, limit), nil
}

func (u *Recommendation) SkillGapCourses(ctx context.Context, userID uuid.UUID, limit int) ([]RecommendedCourse, error) {
	limit, err := clampLimit(limit, defaultGapLimit)
	if err != nil {
		return nil, err
	}
	observability.IncRecommendation("skill_gaps")

	us, err := u.loadProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(us) == 0 {
		return []RecommendedCourse{}, nil
	}

	key := gapRecKey(userID)
	var cached []RecommendedCourse
	if u.cacheGet(ctx, key, &cached) {
		return truncateCourses(cached, limit), nil
	}

	categorySet := make(map[string]struct{}, len(us))
	categories := make([]string, 0, len(us))
	ownedIDs := make([]uuid.UUID, 0, len(us))
	for _, s := range us {
		ownedIDs = append(ownedIDs, s.SkillID)
		if _, dup := categorySet[s.Category]; dup {
			continue
		}
		categorySet[s.Category] = struct{}{}
		categories = append(categories, s.Category)
	}

	taught, err := u.courses.ListSkillIDsTaughtInCategories(ctx, categories)
	if err != nil {
		return nil, ErrInternal
	}

	missing := recommend.MissingSkills(ownedIDs, taught)
	if len(missing) == 0 {
		empty := []RecommendedCourse{}
		u.cacheSet(ctx, key, empty)
		return empty, nil
	}

	rows, err := u.courses.ListBySkillIDs(ctx, missing)
	if err != nil {
		return nil, ErrInternal
	}

	missingSet := make(map[uuid.UUID]struct{}, len(missing))
	for _, id := range missing {
		missingSet[id] = struct{}{}
	}

	byID := make(map[uuid.UUID]repository.Course, len(rows))
	candidates := make([]recommend.CourseCandidate, 0, len(rows))
	for _, c := range rows {
		byID[c.ID] = c
		candidates = append(candidates, toCourseCandidate(c))
	}

	picked := recommend.EasiestCoursePerSkill(missing, candidates, maxRecommendLimit)

	out := make([]RecommendedCourse, 0, len(picked))
	for _, id := range picked {
		c := byID[id]
		// matching_skills here counts the gap skills the course covers.
		n := 0
		for _, s := range c.Skills {
			if _, ok := missingSet[s.ID]; ok {
				n++
			}
		}
		out = append(out, toRecommendedCourse(c, n))
	}

	u.cacheSet(ctx, key, out)
	return truncateCourses(out, limit), nil
}

func (u *Recommendation) invalidateForUser(ctx context.Context, userID uuid.UUID) {
	if u.cache == nil {
		return
	}
	for _, key := range []string{gigRecKey(userID), courseRecKey(userID), gapRecKey(userID)} {
		if err := u.cache.Delete(ctx, key); err != nil && u.logger != nil {
			u.logger.Printf("[Recommend] Cache DELETE failed: %s: %v", key, err)
		}
	}
}

func skillIDsOf(skills []repository.Skill) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(skills))
	for _, s := range skills {
		ids = append(ids, s.ID)
	}
	return ids
}

func toRecommendedSkills(skills []repository.Skill) []RecommendedSkill {
	out := make([]RecommendedSkill, 0, len(skills))
	for _, s := range skills {
		out = append(out, RecommendedSkill{ID: s.ID, Name: s.Name, Category: s.Category})
	}
	return out
}

func toEngineSkills(us []repository.UserSkill) []recommend.UserSkill {
	out := make([]recommend.UserSkill, 0, len(us))
	for _, s := range us {
		out = append(out, recommend.UserSkill{
			SkillID:     s.SkillID,
			Category:    s.Category,
			Proficiency: skill.Proficiency(s.Proficiency),
		})
	}
	return out
}

func toCourseCandidate(c repository.Course) recommend.CourseCandidate {
	return recommend.CourseCandidate{
		CourseID:   c.ID,
		Difficulty: course.Difficulty(c.Difficulty),
		SkillIDs:   skillIDsOf(c.Skills),
	}
}

func toRecommendedCourse(c repository.Course, matching int) RecommendedCourse {
	return RecommendedCourse{
		CourseID:       c.ID,
		Title:          c.Title,
		Provider:       c.Provider,
		URL:            c.URL,
		Difficulty:     c.Difficulty,
		Duration:       c.Duration,
		Price:          c.Price,
		MatchingSkills: matching,
		Skills:         toRecommendedSkills(c.Skills),
	}
}

func truncateGigs(items []RecommendedGig, limit int) []RecommendedGig {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}

func truncateCourses(items []RecommendedCourse, limit int) []RecommendedCourse {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
