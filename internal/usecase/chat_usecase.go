package usecase

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"strings"

	"freelance-hub/internal/chatbot"
	"freelance-hub/internal/domain/skill"
	"freelance-hub/internal/repository"

	"github.com/google/uuid"
)

type ChatReply struct {
	Intent  string `json:"intent,omitempty"`
	Matched bool   `json:"matched"`
	Reply   string `json:"reply"`
}

type ChatUsecase interface {
	// Chat answers one message. userID is optional; with it responses are
	// personalized against the user's skill profile.
	Chat(ctx context.Context, userID *uuid.UUID, message string) (ChatReply, error)
}

type Chat struct {
	users       repository.UserRepository
	userSkills  repository.UserSkillRepository
	gigs        repository.GigRepository
	recommender RecommendationUsecase
	rules       *chatbot.RuleClassifier
	semantic    *chatbot.SemanticFallback
	newRand     func() *rand.Rand
	logger      *log.Logger
}

func NewChatUsecase(
	users repository.UserRepository,
	userSkills repository.UserSkillRepository,
	gigs repository.GigRepository,
	recommender RecommendationUsecase,
	rules *chatbot.RuleClassifier,
	semantic *chatbot.SemanticFallback,
	newRand func() *rand.Rand,
	logger *log.Logger,
) *Chat {
	if newRand == nil {
		newRand = func() *rand.Rand { return rand.New(rand.NewSource(rand.Int63())) }
	}
	return &Chat{
		users:       users,
		userSkills:  userSkills,
		gigs:        gigs,
		recommender: recommender,
		rules:       rules,
		semantic:    semantic,
		newRand:     newRand,
		logger:      logger,
	}
}

func (u *Chat) Chat(ctx context.Context, userID *uuid.UUID, message string) (ChatReply, error) {
	if strings.TrimSpace(message) == "" {
		return ChatReply{}, ErrInvalidInput
	}

	var profile chatbot.Profile
	var advisor chatbot.Advisor
	if userID != nil && *userID != uuid.Nil {
		p, err := u.loadProfile(ctx, *userID)
		if err != nil {
			return ChatReply{}, err
		}
		profile = p
		advisor = &chatAdvisor{recommender: u.recommender, gigs: u.gigs, skills: p.Skills}
	}

	gen := chatbot.NewResponseGenerator(profile, advisor, u.newRand())
	bot := chatbot.NewBot(u.rules, u.semantic, gen)

	intent, matched, reply, err := bot.Respond(ctx, message)
	if err != nil {
		// Embedder outages surface as-is so the transport can report the
		// model-unavailable class distinctly.
		return ChatReply{}, err
	}
	out := ChatReply{Matched: matched, Reply: reply}
	if matched {
		out.Intent = intent.String()
	}
	return out, nil
}

func (u *Chat) loadProfile(ctx context.Context, userID uuid.UUID) (chatbot.Profile, error) {
	user, err := u.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return chatbot.Profile{}, ErrUserNotFound
		}
		return chatbot.Profile{}, ErrInternal
	}
	rows, err := u.userSkills.FindByUserID(ctx, userID)
	if err != nil {
		return chatbot.Profile{}, ErrInternal
	}

	skills := make([]skill.UserSkill, 0, len(rows))
	for _, r := range rows {
		skills = append(skills, skill.UserSkill{
			ID:              r.ID,
			UserID:          r.UserID,
			SkillID:         r.SkillID,
			SkillName:       r.SkillName,
			Category:        r.Category,
			Proficiency:     skill.Proficiency(r.Proficiency),
			YearsExperience: r.YearsExperience,
		})
	}
	return chatbot.Profile{UserID: userID, Name: user.Username, Skills: skills}, nil
}

// chatAdvisor backs the personalized responses with live recommendation and
// gig-demand data.
type chatAdvisor struct {
	recommender RecommendationUsecase
	gigs        repository.GigRepository
	skills      []skill.UserSkill
}

func (a *chatAdvisor) TopCourse(ctx context.Context, userID uuid.UUID) (string, string, bool, error) {
	if a.recommender == nil {
		return "", "", false, nil
	}
	courses, err := a.recommender.RecommendCourses(ctx, userID, 1)
	if err != nil {
		return "", "", false, err
	}
	if len(courses) == 0 {
		return "", "", false, nil
	}
	return courses[0].Title, courses[0].Provider, true, nil
}

func (a *chatAdvisor) PopularMissingSkills(ctx context.Context, userID uuid.UUID, category string, limit int) ([]string, error) {
	if a.gigs == nil {
		return nil, nil
	}
	owned := make(map[uuid.UUID]struct{}, len(a.skills))
	for _, s := range a.skills {
		owned[s.SkillID] = struct{}{}
	}

	// Over-fetch so filtering out owned skills still leaves enough.
	popular, err := a.gigs.PopularSkillsByCategory(ctx, category, limit+len(a.skills))
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, limit)
	for _, s := range popular {
		if _, has := owned[s.ID]; has {
			continue
		}
		names = append(names, s.Name)
		if len(names) >= limit {
			break
		}
	}
	return names, nil
}
