package recommend

import (
	"sort"
	"time"

	"freelance-hub/internal/domain/course"
	"freelance-hub/internal/domain/skill"

	"github.com/google/uuid"
)

type UserSkill struct {
	SkillID     uuid.UUID
	Category    string
	Proficiency skill.Proficiency
}

type GigCandidate struct {
	GigID     uuid.UUID
	OwnerID   uuid.UUID
	SkillIDs  []uuid.UUID
	CreatedAt time.Time
}

type CourseCandidate struct {
	CourseID   uuid.UUID
	Difficulty course.Difficulty
	SkillIDs   []uuid.UUID
}

type ScoredGig struct {
	GigID          uuid.UUID
	MatchingSkills int
}

type ScoredCourse struct {
	CourseID       uuid.UUID
	MatchingSkills int
}

var proficiencyToDifficulties = map[skill.Proficiency][]course.Difficulty{
	skill.ProficiencyBeginner:     {course.DifficultyBeginner},
	skill.ProficiencyIntermediate: {course.DifficultyBeginner, course.DifficultyIntermediate},
	skill.ProficiencyAdvanced:     {course.DifficultyIntermediate, course.DifficultyAdvanced},
	skill.ProficiencyExpert:       {course.DifficultyAdvanced, course.DifficultyExpert},
}

// AllowedDifficulties unions the difficulty levels reachable from every
// proficiency the user declared. An empty union falls back to Beginner.
func AllowedDifficulties(userSkills []UserSkill) map[course.Difficulty]struct{} {
	allowed := make(map[course.Difficulty]struct{})
	for _, us := range userSkills {
		for _, d := range proficiencyToDifficulties[us.Proficiency] {
			allowed[d] = struct{}{}
		}
	}
	if len(allowed) == 0 {
		allowed[course.DifficultyBeginner] = struct{}{}
	}
	return allowed
}

func skillIDSet(ids []uuid.UUID) map[uuid.UUID]struct{} {
	set := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			continue
		}
		set[id] = struct{}{}
	}
	return set
}

func countMatching(userIDs map[uuid.UUID]struct{}, candidateIDs []uuid.UUID) int {
	seen := make(map[uuid.UUID]struct{}, len(candidateIDs))
	n := 0
	for _, id := range candidateIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if _, ok := userIDs[id]; ok {
			n++
		}
	}
	return n
}

// RankGigs scores gigs by distinct shared skills with the user, drops gigs
// owned by excludeOwner or sharing nothing, and orders by matching skills
// descending then creation time descending.
func RankGigs(userSkillIDs []uuid.UUID, excludeOwner uuid.UUID, candidates []GigCandidate, limit int) []ScoredGig {
	if len(userSkillIDs) == 0 {
		return []ScoredGig{}
	}
	userSet := skillIDSet(userSkillIDs)

	type scored struct {
		ScoredGig
		createdAt time.Time
	}
	out := make([]scored, 0, len(candidates))
	for _, c := range candidates {
		if c.OwnerID == excludeOwner && excludeOwner != uuid.Nil {
			continue
		}
		m := countMatching(userSet, c.SkillIDs)
		if m == 0 {
			continue
		}
		out = append(out, scored{ScoredGig{GigID: c.GigID, MatchingSkills: m}, c.CreatedAt})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].MatchingSkills != out[j].MatchingSkills {
			return out[i].MatchingSkills > out[j].MatchingSkills
		}
		if !out[i].createdAt.Equal(out[j].createdAt) {
			return out[i].createdAt.After(out[j].createdAt)
		}
		return out[i].GigID.String() < out[j].GigID.String()
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	res := make([]ScoredGig, 0, len(out))
	for _, s := range out {
		res = append(res, s.ScoredGig)
	}
	return res
}

// RankCourses keeps courses whose difficulty the user's proficiencies allow
// and which share at least one skill, ordered by matching skills descending
// then difficulty ascending.
func RankCourses(userSkills []UserSkill, candidates []CourseCandidate, limit int) []ScoredCourse {
	if len(userSkills) == 0 {
		return []ScoredCourse{}
	}
	allowed := AllowedDifficulties(userSkills)

	ids := make([]uuid.UUID, 0, len(userSkills))
	for _, us := range userSkills {
		ids = append(ids, us.SkillID)
	}
	userSet := skillIDSet(ids)

	type scored struct {
		ScoredCourse
		rank int
	}
	out := make([]scored, 0, len(candidates))
	for _, c := range candidates {
		if _, ok := allowed[c.Difficulty]; !ok {
			continue
		}
		m := countMatching(userSet, c.SkillIDs)
		if m == 0 {
			continue
		}
		out = append(out, scored{ScoredCourse{CourseID: c.CourseID, MatchingSkills: m}, c.Difficulty.Rank()})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].MatchingSkills != out[j].MatchingSkills {
			return out[i].MatchingSkills > out[j].MatchingSkills
		}
		if out[i].rank != out[j].rank {
			return out[i].rank < out[j].rank
		}
		return out[i].CourseID.String() < out[j].CourseID.String()
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	res := make([]ScoredCourse, 0, len(out))
	for _, s := range out {
		res = append(res, s.ScoredCourse)
	}
	return res
}

// MissingSkills returns taught minus owned in ascending UUID-string order.
// Sorting pins the iteration order the gap finder walks, so ties among
// candidate courses resolve the same way on every call.
func MissingSkills(userSkillIDs []uuid.UUID, taughtSkillIDs []uuid.UUID) []uuid.UUID {
	owned := skillIDSet(userSkillIDs)
	missingSet := make(map[uuid.UUID]struct{})
	for _, id := range taughtSkillIDs {
		if id == uuid.Nil {
			continue
		}
		if _, has := owned[id]; has {
			continue
		}
		missingSet[id] = struct{}{}
	}

	missing := make([]uuid.UUID, 0, len(missingSet))
	for id := range missingSet {
		missing = append(missing, id)
	}
	sort.Slice(missing, func(i, j int) bool {
		return missing[i].String() < missing[j].String()
	})
	return missing
}

// EasiestCoursePerSkill picks, for each missing skill in order, the course
// teaching it with the lowest difficulty rank (ties broken by course id),
// skipping skills nothing teaches, deduplicating courses, and stopping at
// limit distinct picks.
func EasiestCoursePerSkill(missing []uuid.UUID, candidates []CourseCandidate, limit int) []uuid.UUID {
	bySkill := make(map[uuid.UUID][]CourseCandidate)
	for _, c := range candidates {
		for _, sid := range c.SkillIDs {
			bySkill[sid] = append(bySkill[sid], c)
		}
	}

	picked := make([]uuid.UUID, 0, limit)
	seen := make(map[uuid.UUID]struct{})
	for _, sid := range missing {
		teaching := bySkill[sid]
		if len(teaching) == 0 {
			continue
		}

		best := teaching[0]
		for _, c := range teaching[1:] {
			if c.Difficulty.Rank() < best.Difficulty.Rank() {
				best = c
				continue
			}
			if c.Difficulty.Rank() == best.Difficulty.Rank() && c.CourseID.String() < best.CourseID.String() {
				best = c
			}
		}

		if _, dup := seen[best.CourseID]; dup {
			continue
		}
		seen[best.CourseID] = struct{}{}
		picked = append(picked, best.CourseID)
		if limit > 0 && len(picked) >= limit {
			break
		}
	}
	return picked
}
