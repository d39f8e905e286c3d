package seeder

import (
	"context"
	"fmt"

	"freelance-hub/internal/database"
)

type SkillsSeeder struct{}

func (SkillsSeeder) Name() string { return "skills" }

func (SkillsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "skills", "id", "name", "category", "created_at"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, it := range skillCatalog() {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO skills (id, name, category) VALUES (gen_random_uuid(), $1, $2) ON CONFLICT (name) DO NOTHING`,
			it.Name,
			it.Category,
		)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

type skillEntry struct {
	Name     string
	Category string
}

func skillCatalog() []skillEntry {
	return []skillEntry{
		{"Python", "Programming"},
		{"JavaScript", "Programming"},
		{"Java", "Programming"},
		{"C#", "Programming"},
		{"PHP", "Programming"},
		{"Ruby", "Programming"},
		{"Swift", "Programming"},
		{"Kotlin", "Programming"},
		{"Go", "Programming"},
		{"Rust", "Programming"},

		{"HTML/CSS", "Web Development"},
		{"React", "Web Development"},
		{"Angular", "Web Development"},
		{"Vue.js", "Web Development"},
		{"Node.js", "Web Development"},
		{"Django", "Web Development"},
		{"Flask", "Web Development"},
		{"WordPress", "Web Development"},
		{"Shopify", "Web Development"},

		{"iOS Development", "Mobile Development"},
		{"Android Development", "Mobile Development"},
		{"React Native", "Mobile Development"},
		{"Flutter", "Mobile Development"},

		{"Data Analysis", "Data Science"},
		{"Machine Learning", "Data Science"},
		{"Deep Learning", "Data Science"},
		{"Natural Language Processing", "Data Science"},
		{"Computer Vision", "Data Science"},
		{"Statistics", "Data Science"},
		{"R", "Data Science"},
		{"Tableau", "Data Science"},
		{"Power BI", "Data Science"},

		{"UI Design", "Design"},
		{"UX Design", "Design"},
		{"Graphic Design", "Design"},
		{"Logo Design", "Design"},
		{"Illustration", "Design"},
		{"Adobe Photoshop", "Design"},
		{"Adobe Illustrator", "Design"},
		{"Figma", "Design"},
		{"Sketch", "Design"},

		{"Content Writing", "Writing"},
		{"Copywriting", "Writing"},
		{"Technical Writing", "Writing"},
		{"Creative Writing", "Writing"},
		{"SEO Writing", "Writing"},
		{"Editing", "Writing"},
		{"Proofreading", "Writing"},

		{"Digital Marketing", "Marketing"},
		{"Social Media Marketing", "Marketing"},
		{"SEO", "Marketing"},
		{"SEM", "Marketing"},
		{"Email Marketing", "Marketing"},
		{"Content Marketing", "Marketing"},
		{"Affiliate Marketing", "Marketing"},
		{"Google Analytics", "Marketing"},

		{"Video Editing", "Video & Audio"},
		{"Animation", "Video & Audio"},
		{"Voice Over", "Video & Audio"},
		{"Audio Editing", "Video & Audio"},
		{"Music Production", "Video & Audio"},

		{"Project Management", "Business"},
		{"Business Analysis", "Business"},
		{"Virtual Assistance", "Business"},
		{"Accounting", "Business"},
		{"Financial Analysis", "Business"},
		{"Customer Service", "Business"},
		{"Sales", "Business"},
		{"HR Management", "Business"},
	}
}
