package seeder

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"freelance-hub/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// DemoSeeder inserts a pair of demo freelancers with skill profiles and a
// few gigs so a fresh install has data the recommenders can work on.
type DemoSeeder struct{}

func (DemoSeeder) Name() string { return "demo" }

func (DemoSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "users", "id", "username", "created_at"); err != nil {
		return err
	}
	if err := EnsureTableColumns(ctx, db, "gigs",
		"id", "user_id", "title", "description", "price_min", "price_max", "duration", "status", "created_at"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, u := range demoUsers() {
		userID, err := ensureUser(ctx, tx, u.Username)
		if err != nil {
			return err
		}
		for _, s := range u.Skills {
			_, err := tx.Exec(ctx,
				`INSERT INTO user_skills (id, user_id, skill_id, proficiency_level, years_experience)
				 SELECT gen_random_uuid(), $1, id, $2, $3 FROM skills WHERE name = $4
				 ON CONFLICT (user_id, skill_id) DO NOTHING`,
				userID, s.Proficiency, s.Years, s.Name,
			)
			if err != nil {
				return err
			}
		}
		for _, g := range u.Gigs {
			if err := ensureGig(ctx, tx, userID, g); err != nil {
				return err
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func ensureUser(ctx context.Context, tx database.Tx, username string) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, `SELECT id FROM users WHERE username = $1`, username).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) && !errors.Is(err, sql.ErrNoRows) {
		return uuid.Nil, err
	}
	id = uuid.New()
	if _, err := tx.Exec(ctx, `INSERT INTO users (id, username) VALUES ($1, $2)`, id, username); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func ensureGig(ctx context.Context, tx database.Tx, userID uuid.UUID, g demoGig) error {
	var id uuid.UUID
	err := tx.QueryRow(ctx, `SELECT id FROM gigs WHERE user_id = $1 AND title = $2`, userID, g.Title).Scan(&id)
	if err == nil {
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) && !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	id = uuid.New()
	_, err = tx.Exec(ctx,
		`INSERT INTO gigs (id, user_id, title, description, price_min, price_max, duration, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, 'active')`,
		id, userID, g.Title, g.Description, g.PriceMin, g.PriceMax, g.Duration,
	)
	if err != nil {
		return err
	}
	for _, name := range g.SkillNames {
		_, err := tx.Exec(ctx,
			`INSERT INTO gig_skills (gig_id, skill_id)
			 SELECT $1, id FROM skills WHERE name = $2
			 ON CONFLICT DO NOTHING`,
			id, name,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

type demoGig struct {
	Title       string
	Description string
	PriceMin    float64
	PriceMax    float64
	Duration    string
	SkillNames  []string
}

type demoUser struct {
	Username string
	Skills   []struct {
		Name        string
		Proficiency string
		Years       int
	}
	Gigs []demoGig
}

func demoUsers() []demoUser {
	return []demoUser{
		{
			Username: "demo_maya",
			Skills: []struct {
				Name        string
				Proficiency string
				Years       int
			}{
				{"Python", "Advanced", 5},
				{"Django", "Intermediate", 3},
				{"Data Analysis", "Intermediate", 2},
			},
			Gigs: []demoGig{
				{
					Title:       "Python automation scripts",
					Description: "Custom scripts to automate repetitive workflows",
					PriceMin:    50, PriceMax: 200, Duration: "3 days",
					SkillNames: []string{"Python"},
				},
				{
					Title:       "Django REST API development",
					Description: "Design and build REST APIs with Django and PostgreSQL",
					PriceMin:    300, PriceMax: 900, Duration: "2 weeks",
					SkillNames: []string{"Python", "Django"},
				},
			},
		},
		{
			Username: "demo_arif",
			Skills: []struct {
				Name        string
				Proficiency string
				Years       int
			}{
				{"Graphic Design", "Expert", 8},
				{"Logo Design", "Advanced", 6},
				{"Figma", "Intermediate", 2},
			},
			Gigs: []demoGig{
				{
					Title:       "Minimalist logo design",
					Description: "Three logo concepts with unlimited revisions",
					PriceMin:    80, PriceMax: 250, Duration: "5 days",
					SkillNames: []string{"Logo Design", "Graphic Design"},
				},
				{
					Title:       "Landing page UI in Figma",
					Description: "Pixel-perfect landing page designs ready for handoff",
					PriceMin:    150, PriceMax: 400, Duration: "1 week",
					SkillNames: []string{"Figma", "UI Design"},
				},
			},
		},
	}
}
