package repository

import (
	"context"

	"freelance-hub/internal/database"

	"github.com/google/uuid"
)

type Skill struct {
	ID       uuid.UUID
	Name     string
	Category string
}

type SkillRepository interface {
	GetAllSkills(ctx context.Context) ([]Skill, error)
	GetSkillsByCategory(ctx context.Context) (map[string][]Skill, error)
	CreateSkill(ctx context.Context, name string, category string) (Skill, error)
}

type PostgresSkillRepository struct {
	db database.DB
}

func NewPostgresSkillRepository(db database.DB) *PostgresSkillRepository {
	return &PostgresSkillRepository{db: db}
}

func (r *PostgresSkillRepository) GetAllSkills(ctx context.Context) ([]Skill, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, category FROM skills ORDER BY category ASC, name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Skill, 0)
	for rows.Next() {
		var s Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Category); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresSkillRepository) GetSkillsByCategory(ctx context.Context) (map[string][]Skill, error) {
	all, err := r.GetAllSkills(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string][]Skill)
	for _, s := range all {
		out[s.Category] = append(out[s.Category], s)
	}
	return out, nil
}

func (r *PostgresSkillRepository) CreateSkill(ctx context.Context, name string, category string) (Skill, error) {
	id := uuid.New()
	_, err := r.db.Exec(ctx, `INSERT INTO skills (id, name, category) VALUES ($1, $2, $3)`, id, name, category)
	if err != nil {
		return Skill{}, err
	}
	return Skill{ID: id, Name: name, Category: category}, nil
}
