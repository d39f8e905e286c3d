package repository

import (
	"context"
	"errors"

	"freelance-hub/internal/database"

	"github.com/google/uuid"
)

var ErrSkillNotFound = errors.New("skill not found")

type UserSkill struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	SkillID         uuid.UUID
	SkillName       string
	Category        string
	Proficiency     string
	YearsExperience int
}

// UserSkillInput is one entry of a full-replace save.
type UserSkillInput struct {
	SkillID         uuid.UUID
	Proficiency     string
	YearsExperience int
}

type UserSkillRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]UserSkill, error)
	// ReplaceForUser deletes every skill association of the user and
	// inserts the given set in a single transaction.
	ReplaceForUser(ctx context.Context, userID uuid.UUID, items []UserSkillInput) error
	SkillExistsByID(ctx context.Context, skillID uuid.UUID) (bool, error)
}

type PostgresUserSkillRepository struct {
	db database.DB
}

func NewPostgresUserSkillRepository(db database.DB) *PostgresUserSkillRepository {
	return &PostgresUserSkillRepository{db: db}
}

func (r *PostgresUserSkillRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]UserSkill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT us.id, us.user_id, us.skill_id, s.name, s.category,
		        COALESCE(us.proficiency_level, ''), COALESCE(us.years_experience, 0)
		 FROM user_skills us
		 JOIN skills s ON s.id = us.skill_id
		 WHERE us.user_id = $1
		 ORDER BY s.category ASC, s.name ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]UserSkill, 0)
	for rows.Next() {
		var us UserSkill
		if err := rows.Scan(&us.ID, &us.UserID, &us.SkillID, &us.SkillName, &us.Category, &us.Proficiency, &us.YearsExperience); err != nil {
			return nil, err
		}
		out = append(out, us)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresUserSkillRepository) ReplaceForUser(ctx context.Context, userID uuid.UUID, items []UserSkillInput) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	if _, err := tx.Exec(ctx, `DELETE FROM user_skills WHERE user_id = $1`, userID); err != nil {
		return err
	}

	for _, it := range items {
		_, err := tx.Exec(ctx,
			`INSERT INTO user_skills (id, user_id, skill_id, proficiency_level, years_experience)
			 VALUES ($1, $2, $3, $4, $5)`,
			uuid.New(), userID, it.SkillID, it.Proficiency, it.YearsExperience,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *PostgresUserSkillRepository) SkillExistsByID(ctx context.Context, skillID uuid.UUID) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM skills WHERE id = $1)`, skillID)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
