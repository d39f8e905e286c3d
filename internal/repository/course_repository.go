package repository

import (
	"context"
	"time"

	"freelance-hub/internal/database"

	"github.com/google/uuid"
)

type Course struct {
	ID          uuid.UUID
	Title       string
	Description string
	Provider    string
	URL         string
	Difficulty  string
	Duration    string
	Price       float64
	CreatedAt   time.Time
	Skills      []Skill
}

type CourseRepository interface {
	// ListBySkillIDs returns courses teaching at least one of the skills,
	// each with its full skill list.
	ListBySkillIDs(ctx context.Context, skillIDs []uuid.UUID) ([]Course, error)
	// ListSkillIDsTaughtInCategories returns the distinct ids of skills
	// that appear in any course and belong to one of the categories.
	ListSkillIDsTaughtInCategories(ctx context.Context, categories []string) ([]uuid.UUID, error)
}

type PostgresCourseRepository struct {
	db database.DB
}

func NewPostgresCourseRepository(db database.DB) *PostgresCourseRepository {
	return &PostgresCourseRepository{db: db}
}

func (r *PostgresCourseRepository) ListBySkillIDs(ctx context.Context, skillIDs []uuid.UUID) ([]Course, error) {
	if len(skillIDs) == 0 {
		return []Course{}, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT DISTINCT c.id, c.title, c.description, c.provider, c.url,
		        c.difficulty_level, c.duration, c.price, c.created_at
		 FROM courses c
		 JOIN course_skills cs ON cs.course_id = c.id
		 WHERE cs.skill_id = ANY($1)
		 ORDER BY c.title ASC`,
		skillIDs,
	)
	if err != nil {
		return nil, err
	}
	courses, err := scanCourses(rows)
	if err != nil {
		return nil, err
	}
	return r.attachSkills(ctx, courses)
}

func (r *PostgresCourseRepository) ListSkillIDsTaughtInCategories(ctx context.Context, categories []string) ([]uuid.UUID, error) {
	if len(categories) == 0 {
		return []uuid.UUID{}, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT DISTINCT s.id
		 FROM skills s
		 JOIN course_skills cs ON cs.skill_id = s.id
		 WHERE s.category = ANY($1)`,
		categories,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanCourses(rows database.Rows) ([]Course, error) {
	defer rows.Close()

	out := make([]Course, 0)
	for rows.Next() {
		var c Course
		if err := rows.Scan(&c.ID, &c.Title, &c.Description, &c.Provider, &c.URL,
			&c.Difficulty, &c.Duration, &c.Price, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCourseRepository) attachSkills(ctx context.Context, courses []Course) ([]Course, error) {
	if len(courses) == 0 {
		return courses, nil
	}

	ids := make([]uuid.UUID, 0, len(courses))
	for _, c := range courses {
		ids = append(ids, c.ID)
	}

	rows, err := r.db.Query(ctx,
		`SELECT cs.course_id, s.id, s.name, s.category
		 FROM course_skills cs
		 JOIN skills s ON s.id = cs.skill_id
		 WHERE cs.course_id = ANY($1)
		 ORDER BY s.name ASC`,
		ids,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byCourse := make(map[uuid.UUID][]Skill, len(courses))
	for rows.Next() {
		var courseID uuid.UUID
		var s Skill
		if err := rows.Scan(&courseID, &s.ID, &s.Name, &s.Category); err != nil {
			return nil, err
		}
		byCourse[courseID] = append(byCourse[courseID], s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range courses {
		courses[i].Skills = byCourse[courses[i].ID]
	}
	return courses, nil
}
