package repository

import (
	"context"
	"time"

	"freelance-hub/internal/database"

	"github.com/google/uuid"
)

type Gig struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	OwnerName   string
	Title       string
	Description string
	PriceMin    float64
	PriceMax    float64
	Duration    string
	Status      string
	CreatedAt   time.Time
	Skills      []Skill
}

type GigRepository interface {
	// ListBySkillIDs returns gigs tagged with at least one of the skills,
	// excluding gigs owned by excludeUserID, each with its full skill list.
	ListBySkillIDs(ctx context.Context, skillIDs []uuid.UUID, excludeUserID uuid.UUID) ([]Gig, error)
	ListRecent(ctx context.Context, limit int, offset int) ([]Gig, error)
	Create(ctx context.Context, g Gig, skillIDs []uuid.UUID) (Gig, error)
	// PopularSkillsByCategory ranks skills of one category by how many gigs
	// require them.
	PopularSkillsByCategory(ctx context.Context, category string, limit int) ([]Skill, error)
}

type PostgresGigRepository struct {
	db database.DB
}

func NewPostgresGigRepository(db database.DB) *PostgresGigRepository {
	return &PostgresGigRepository{db: db}
}

func (r *PostgresGigRepository) ListBySkillIDs(ctx context.Context, skillIDs []uuid.UUID, excludeUserID uuid.UUID) ([]Gig, error) {
	if len(skillIDs) == 0 {
		return []Gig{}, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT DISTINCT g.id, g.user_id, u.username, g.title, g.description,
		        g.price_min, g.price_max, g.duration, g.status, g.created_at
		 FROM gigs g
		 JOIN users u ON u.id = g.user_id
		 JOIN gig_skills gs ON gs.gig_id = g.id
		 WHERE gs.skill_id = ANY($1) AND g.user_id <> $2
		 ORDER BY g.created_at DESC`,
		skillIDs, excludeUserID,
	)
	if err != nil {
		return nil, err
	}
	gigs, err := scanGigs(rows)
	if err != nil {
		return nil, err
	}
	return r.attachSkills(ctx, gigs)
}

func (r *PostgresGigRepository) ListRecent(ctx context.Context, limit int, offset int) ([]Gig, error) {
	rows, err := r.db.Query(ctx,
		`SELECT g.id, g.user_id, u.username, g.title, g.description,
		        g.price_min, g.price_max, g.duration, g.status, g.created_at
		 FROM gigs g
		 JOIN users u ON u.id = g.user_id
		 ORDER BY g.created_at DESC
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	gigs, err := scanGigs(rows)
	if err != nil {
		return nil, err
	}
	return r.attachSkills(ctx, gigs)
}

func (r *PostgresGigRepository) Create(ctx context.Context, g Gig, skillIDs []uuid.UUID) (Gig, error) {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	if g.CreatedAt.IsZero() {
		g.CreatedAt = time.Now().UTC()
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return Gig{}, err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	_, err = tx.Exec(ctx,
		`INSERT INTO gigs (id, user_id, title, description, price_min, price_max, duration, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		g.ID, g.UserID, g.Title, g.Description, g.PriceMin, g.PriceMax, g.Duration, g.Status, g.CreatedAt,
	)
	if err != nil {
		return Gig{}, err
	}

	for _, sid := range skillIDs {
		if _, err := tx.Exec(ctx,
			`INSERT INTO gig_skills (gig_id, skill_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			g.ID, sid,
		); err != nil {
			return Gig{}, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return Gig{}, err
	}

	created, err := r.attachSkills(ctx, []Gig{g})
	if err != nil {
		return Gig{}, err
	}
	return created[0], nil
}

func (r *PostgresGigRepository) PopularSkillsByCategory(ctx context.Context, category string, limit int) ([]Skill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT s.id, s.name, s.category
		 FROM skills s
		 JOIN gig_skills gs ON gs.skill_id = s.id
		 WHERE s.category = $1
		 GROUP BY s.id, s.name, s.category
		 ORDER BY COUNT(gs.gig_id) DESC, s.name ASC
		 LIMIT $2`,
		category, limit,
	)
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

func scanGigs(rows database.Rows) ([]Gig, error) {
	defer rows.Close()

	out := make([]Gig, 0)
	for rows.Next() {
		var g Gig
		if err := rows.Scan(&g.ID, &g.UserID, &g.OwnerName, &g.Title, &g.Description,
			&g.PriceMin, &g.PriceMax, &g.Duration, &g.Status, &g.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresGigRepository) attachSkills(ctx context.Context, gigs []Gig) ([]Gig, error) {
	if len(gigs) == 0 {
		return gigs, nil
	}

	ids := make([]uuid.UUID, 0, len(gigs))
	for _, g := range gigs {
		ids = append(ids, g.ID)
	}

	rows, err := r.db.Query(ctx,
		`SELECT gs.gig_id, s.id, s.name, s.category
		 FROM gig_skills gs
		 JOIN skills s ON s.id = gs.skill_id
		 WHERE gs.gig_id = ANY($1)
		 ORDER BY s.name ASC`,
		ids,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byGig := make(map[uuid.UUID][]Skill, len(gigs))
	for rows.Next() {
		var gigID uuid.UUID
		var s Skill
		if err := rows.Scan(&gigID, &s.ID, &s.Name, &s.Category); err != nil {
			return nil, err
		}
		byGig[gigID] = append(byGig[gigID], s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range gigs {
		gigs[i].Skills = byGig[gigs[i].ID]
	}
	return gigs, nil
}
