package recommend

import (
	"testing"
	"time"

	"freelance-hub/internal/domain/course"
	"freelance-hub/internal/domain/skill"

	"github.com/google/uuid"
)

func userSkill(id uuid.UUID, category string, p skill.Proficiency) UserSkill {
	return UserSkill{SkillID: id, Category: category, Proficiency: p}
}

func TestAllowedDifficulties_Union(t *testing.T) {
	a := uuid.New()
	b := uuid.New()
	allowed := AllowedDifficulties([]UserSkill{
		userSkill(a, "Programming", skill.ProficiencyBeginner),
		userSkill(b, "Design", skill.ProficiencyAdvanced),
	})

	want := []course.Difficulty{course.DifficultyBeginner, course.DifficultyIntermediate, course.DifficultyAdvanced}
	if len(allowed) != len(want) {
		t.Fatalf("expected %d difficulties, got %d", len(want), len(allowed))
	}
	for _, d := range want {
		if _, ok := allowed[d]; !ok {
			t.Fatalf("expected %s to be allowed", d)
		}
	}
	if _, ok := allowed[course.DifficultyExpert]; ok {
		t.Fatalf("expert should not be allowed")
	}
}

func TestAllowedDifficulties_EmptyDefaultsToBeginner(t *testing.T) {
	allowed := AllowedDifficulties([]UserSkill{userSkill(uuid.New(), "Programming", skill.Proficiency("Guru"))})
	if len(allowed) != 1 {
		t.Fatalf("expected 1 difficulty, got %d", len(allowed))
	}
	if _, ok := allowed[course.DifficultyBeginner]; !ok {
		t.Fatalf("expected beginner fallback")
	}
}

func TestRankGigs_OrderAndExclusion(t *testing.T) {
	s1, s2, s3 := uuid.New(), uuid.New(), uuid.New()
	me := uuid.New()
	other := uuid.New()

	now := time.Now().UTC()
	two := GigCandidate{GigID: uuid.New(), OwnerID: other, SkillIDs: []uuid.UUID{s1, s2}, CreatedAt: now.Add(-2 * time.Hour)}
	oneNew := GigCandidate{GigID: uuid.New(), OwnerID: other, SkillIDs: []uuid.UUID{s1}, CreatedAt: now}
	oneOld := GigCandidate{GigID: uuid.New(), OwnerID: other, SkillIDs: []uuid.UUID{s2}, CreatedAt: now.Add(-time.Hour)}
	mine := GigCandidate{GigID: uuid.New(), OwnerID: me, SkillIDs: []uuid.UUID{s1, s2}, CreatedAt: now}
	unrelated := GigCandidate{GigID: uuid.New(), OwnerID: other, SkillIDs: []uuid.UUID{s3}, CreatedAt: now}

	got := RankGigs([]uuid.UUID{s1, s2}, me, []GigCandidate{oneOld, mine, two, unrelated, oneNew}, 10)
	if len(got) != 3 {
		t.Fatalf("expected 3 gigs, got %d", len(got))
	}
	if got[0].GigID != two.GigID || got[0].MatchingSkills != 2 {
		t.Fatalf("expected two-skill gig first with matching=2, got %+v", got[0])
	}
	if got[1].GigID != oneNew.GigID {
		t.Fatalf("expected newer one-skill gig second")
	}
	if got[2].GigID != oneOld.GigID {
		t.Fatalf("expected older one-skill gig third")
	}
}

func TestRankGigs_SingleSharedSkillBoundary(t *testing.T) {
	s1 := uuid.New()
	g := GigCandidate{GigID: uuid.New(), OwnerID: uuid.New(), SkillIDs: []uuid.UUID{s1}, CreatedAt: time.Now()}

	got := RankGigs([]uuid.UUID{s1}, uuid.New(), []GigCandidate{g}, 5)
	if len(got) != 1 {
		t.Fatalf("expected 1 gig, got %d", len(got))
	}
	if got[0].MatchingSkills != 1 {
		t.Fatalf("expected matching_skills=1, got %d", got[0].MatchingSkills)
	}
}

func TestRankGigs_NoUserSkills(t *testing.T) {
	g := GigCandidate{GigID: uuid.New(), OwnerID: uuid.New(), SkillIDs: []uuid.UUID{uuid.New()}}
	if got := RankGigs(nil, uuid.Nil, []GigCandidate{g}, 5); len(got) != 0 {
		t.Fatalf("expected empty result, got %d", len(got))
	}
}

func TestRankGigs_DuplicateSkillIDsCountOnce(t *testing.T) {
	s1 := uuid.New()
	g := GigCandidate{GigID: uuid.New(), OwnerID: uuid.New(), SkillIDs: []uuid.UUID{s1, s1, s1}}
	got := RankGigs([]uuid.UUID{s1}, uuid.Nil, []GigCandidate{g}, 5)
	if len(got) != 1 || got[0].MatchingSkills != 1 {
		t.Fatalf("expected single match counted once, got %+v", got)
	}
}

func TestRankCourses_DifficultyFilterAndOrder(t *testing.T) {
	s1, s2 := uuid.New(), uuid.New()
	user := []UserSkill{userSkill(s1, "Programming", skill.ProficiencyBeginner), userSkill(s2, "Programming", skill.ProficiencyBeginner)}

	begTwo := CourseCandidate{CourseID: uuid.New(), Difficulty: course.DifficultyBeginner, SkillIDs: []uuid.UUID{s1, s2}}
	begOne := CourseCandidate{CourseID: uuid.New(), Difficulty: course.DifficultyBeginner, SkillIDs: []uuid.UUID{s1}}
	advanced := CourseCandidate{CourseID: uuid.New(), Difficulty: course.DifficultyAdvanced, SkillIDs: []uuid.UUID{s1, s2}}

	got := RankCourses(user, []CourseCandidate{advanced, begOne, begTwo}, 10)
	if len(got) != 2 {
		t.Fatalf("expected advanced course filtered out, got %d results", len(got))
	}
	if got[0].CourseID != begTwo.CourseID || got[0].MatchingSkills != 2 {
		t.Fatalf("expected two-skill beginner course first, got %+v", got[0])
	}
	if got[1].CourseID != begOne.CourseID {
		t.Fatalf("expected one-skill beginner course second")
	}
}

func TestRankCourses_EasierDifficultyBreaksTies(t *testing.T) {
	s1 := uuid.New()
	user := []UserSkill{userSkill(s1, "Programming", skill.ProficiencyIntermediate)}

	inter := CourseCandidate{CourseID: uuid.New(), Difficulty: course.DifficultyIntermediate, SkillIDs: []uuid.UUID{s1}}
	beg := CourseCandidate{CourseID: uuid.New(), Difficulty: course.DifficultyBeginner, SkillIDs: []uuid.UUID{s1}}

	got := RankCourses(user, []CourseCandidate{inter, beg}, 10)
	if len(got) != 2 {
		t.Fatalf("expected 2 courses, got %d", len(got))
	}
	if got[0].CourseID != beg.CourseID {
		t.Fatalf("expected beginner course to rank first on equal matching skills")
	}
}

func TestRankCourses_Limit(t *testing.T) {
	s1 := uuid.New()
	user := []UserSkill{userSkill(s1, "Programming", skill.ProficiencyBeginner)}
	cands := make([]CourseCandidate, 0, 5)
	for i := 0; i < 5; i++ {
		cands = append(cands, CourseCandidate{CourseID: uuid.New(), Difficulty: course.DifficultyBeginner, SkillIDs: []uuid.UUID{s1}})
	}
	if got := RankCourses(user, cands, 3); len(got) != 3 {
		t.Fatalf("expected 3 courses, got %d", len(got))
	}
}

func TestMissingSkills_SortedDiff(t *testing.T) {
	owned := []uuid.UUID{uuid.New(), uuid.New()}
	gapA := uuid.New()
	gapB := uuid.New()
	taught := []uuid.UUID{owned[0], gapA, gapB, gapA}

	got := MissingSkills(owned, taught)
	if len(got) != 2 {
		t.Fatalf("expected 2 missing skills, got %d", len(got))
	}
	if got[0].String() > got[1].String() {
		t.Fatalf("expected ascending order, got %v", got)
	}
	for _, id := range got {
		if id != gapA && id != gapB {
			t.Fatalf("unexpected missing skill %s", id)
		}
	}
}

func TestEasiestCoursePerSkill_PicksLowestDifficultyAndDedupes(t *testing.T) {
	gap1, gap2 := uuid.New(), uuid.New()

	shared := CourseCandidate{CourseID: uuid.New(), Difficulty: course.DifficultyBeginner, SkillIDs: []uuid.UUID{gap1, gap2}}
	harder := CourseCandidate{CourseID: uuid.New(), Difficulty: course.DifficultyAdvanced, SkillIDs: []uuid.UUID{gap1}}

	got := EasiestCoursePerSkill([]uuid.UUID{gap1, gap2}, []CourseCandidate{harder, shared}, 5)
	if len(got) != 1 {
		t.Fatalf("expected shared beginner course picked once, got %d", len(got))
	}
	if got[0] != shared.CourseID {
		t.Fatalf("expected easiest course, got %s", got[0])
	}
}

func TestEasiestCoursePerSkill_SkipsUntaughtAndHonorsLimit(t *testing.T) {
	gaps := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	c1 := CourseCandidate{CourseID: uuid.New(), Difficulty: course.DifficultyBeginner, SkillIDs: []uuid.UUID{gaps[1]}}
	c2 := CourseCandidate{CourseID: uuid.New(), Difficulty: course.DifficultyIntermediate, SkillIDs: []uuid.UUID{gaps[2]}}

	got := EasiestCoursePerSkill(gaps, []CourseCandidate{c1, c2}, 1)
	if len(got) != 1 {
		t.Fatalf("expected limit to cap picks, got %d", len(got))
	}
}

func TestEasiestCoursePerSkill_TieBreaksOnCourseID(t *testing.T) {
	gap := uuid.New()
	a := CourseCandidate{CourseID: uuid.New(), Difficulty: course.DifficultyBeginner, SkillIDs: []uuid.UUID{gap}}
	b := CourseCandidate{CourseID: uuid.New(), Difficulty: course.DifficultyBeginner, SkillIDs: []uuid.UUID{gap}}

	want := a.CourseID
	if b.CourseID.String() < a.CourseID.String() {
		want = b.CourseID
	}

	got := EasiestCoursePerSkill([]uuid.UUID{gap}, []CourseCandidate{a, b}, 5)
	if len(got) != 1 || got[0] != want {
		t.Fatalf("expected deterministic tie-break on course id")
	}
	gotSwapped := EasiestCoursePerSkill([]uuid.UUID{gap}, []CourseCandidate{b, a}, 5)
	if len(gotSwapped) != 1 || gotSwapped[0] != want {
		t.Fatalf("expected same pick regardless of candidate order")
	}
}
