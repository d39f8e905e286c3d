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

type CoursesSeeder struct{}

func (CoursesSeeder) Name() string { return "courses" }

func (CoursesSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "courses",
		"id", "title", "description", "provider", "url", "difficulty_level", "duration", "price", "created_at"); err != nil {
		return err
	}
	if err := EnsureTableColumns(ctx, db, "course_skills", "course_id", "skill_id"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, c := range courseCatalog() {
		var courseID uuid.UUID
		err := tx.QueryRow(ctx, `SELECT id FROM courses WHERE title = $1`, c.Title).Scan(&courseID)
		if err != nil {
			if !errors.Is(err, pgx.ErrNoRows) && !errors.Is(err, sql.ErrNoRows) {
				return err
			}
			courseID = uuid.New()
			_, err = tx.Exec(ctx,
				`INSERT INTO courses (id, title, description, provider, url, difficulty_level, duration, price)
				 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
				courseID, c.Title, c.Description, c.Provider, c.URL, c.Difficulty, c.Duration, c.Price,
			)
			if err != nil {
				return err
			}
		}

		for _, name := range c.SkillNames {
			_, err := tx.Exec(ctx,
				`INSERT INTO course_skills (course_id, skill_id)
				 SELECT $1, id FROM skills WHERE name = $2
				 ON CONFLICT DO NOTHING`,
				courseID, name,
			)
			if err != nil {
				return err
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

type courseEntry struct {
	Title       string
	Description string
	Provider    string
	URL         string
	Difficulty  string
	Duration    string
	Price       float64
	SkillNames  []string
}

func courseCatalog() []courseEntry {
	return []courseEntry{
		{"Python for Beginners", "Learn Python programming from scratch with hands-on projects",
			"Udemy", "https://udemy.com/python-beginners", "Beginner", "10 hours", 19.99,
			[]string{"Python"}},
		{"Advanced JavaScript", "Master modern JavaScript with advanced concepts and patterns",
			"Coursera", "https://coursera.org/advanced-js", "Advanced", "20 hours", 49.99,
			[]string{"JavaScript"}},
		{"Java Masterclass", "Complete Java programming bootcamp with real-world applications",
			"Udemy", "https://udemy.com/java-masterclass", "Intermediate", "30 hours", 29.99,
			[]string{"Java"}},
		{"Full Stack Web Development", "Learn front-end and back-end web development with MERN stack",
			"Udemy", "https://udemy.com/fullstack-web", "Intermediate", "40 hours", 39.99,
			[]string{"JavaScript", "HTML/CSS", "React", "Node.js"}},
		{"React - The Complete Guide", "Dive into React, Redux, and build powerful single-page applications",
			"Udemy", "https://udemy.com/react-complete-guide", "Intermediate", "25 hours", 24.99,
			[]string{"JavaScript", "React"}},
		{"Django for Web Development", "Build web applications with Python and Django framework",
			"Coursera", "https://coursera.org/django-web", "Intermediate", "15 hours", 29.99,
			[]string{"Python", "Django"}},
		{"iOS App Development with Swift", "Build iOS apps with Swift and UIKit",
			"Udacity", "https://udacity.com/ios-swift", "Intermediate", "20 hours", 199.00,
			[]string{"Swift", "iOS Development"}},
		{"Android Development Masterclass", "Create Android apps with Kotlin from scratch",
			"Udemy", "https://udemy.com/android-kotlin", "Intermediate", "25 hours", 24.99,
			[]string{"Kotlin", "Android Development"}},
		{"React Native - Mobile Apps", "Build native mobile apps for iOS and Android with React Native",
			"Udemy", "https://udemy.com/react-native-apps", "Intermediate", "20 hours", 29.99,
			[]string{"JavaScript", "React Native"}},
		{"Data Science Specialization", "Master data science skills with R and Python",
			"Coursera", "https://coursera.org/data-science-spec", "Advanced", "60 hours", 99.00,
			[]string{"Python", "Data Analysis", "R"}},
		{"Machine Learning A-Z", "Learn and implement machine learning algorithms",
			"Udemy", "https://udemy.com/machine-learning-az", "Intermediate", "30 hours", 34.99,
			[]string{"Python", "Machine Learning"}},
		{"Deep Learning Fundamentals", "Master neural networks and deep learning frameworks",
			"edX", "https://edx.org/deep-learning", "Advanced", "40 hours", 49.00,
			[]string{"Python", "Deep Learning"}},
		{"UI/UX Design Bootcamp", "Master user interface and user experience design",
			"Udemy", "https://udemy.com/uiux-bootcamp", "Beginner", "20 hours", 29.99,
			[]string{"UI Design", "UX Design"}},
		{"Graphic Design Masterclass", "Learn graphic design principles and Adobe Creative Suite",
			"Skillshare", "https://skillshare.com/graphic-design", "Beginner", "15 hours", 15.00,
			[]string{"Graphic Design", "Adobe Photoshop", "Adobe Illustrator"}},
		{"Figma - UI/UX Design", "Create modern interfaces with Figma design tool",
			"Udemy", "https://udemy.com/figma-design", "Beginner", "10 hours", 19.99,
			[]string{"UI Design", "Figma"}},
		{"Content Writing Masterclass", "Create engaging content for blogs and websites",
			"Udemy", "https://udemy.com/content-writing", "Beginner", "8 hours", 19.99,
			[]string{"Content Writing"}},
		{"Copywriting for Conversion", "Write copy that sells and converts",
			"Skillshare", "https://skillshare.com/copywriting", "Intermediate", "5 hours", 10.00,
			[]string{"Copywriting"}},
		{"Technical Writing", "Learn to write clear technical documentation",
			"Udemy", "https://udemy.com/technical-writing", "Intermediate", "12 hours", 24.99,
			[]string{"Technical Writing"}},
		{"Digital Marketing Specialization", "Master all aspects of digital marketing",
			"Coursera", "https://coursera.org/digital-marketing", "Intermediate", "30 hours", 49.00,
			[]string{"Digital Marketing"}},
		{"Social Media Marketing", "Grow your business with social media strategies",
			"Udemy", "https://udemy.com/social-media-marketing", "Beginner", "15 hours", 19.99,
			[]string{"Social Media Marketing"}},
		{"SEO 2023: Complete Guide", "Master search engine optimization techniques",
			"Udemy", "https://udemy.com/seo-complete", "Intermediate", "10 hours", 24.99,
			[]string{"SEO"}},
		{"Video Editing with Premiere Pro", "Master video editing with Adobe Premiere Pro",
			"Udemy", "https://udemy.com/premiere-pro", "Intermediate", "15 hours", 24.99,
			[]string{"Video Editing"}},
		{"Animation Fundamentals", "Learn 2D and 3D animation principles",
			"Skillshare", "https://skillshare.com/animation", "Beginner", "10 hours", 15.00,
			[]string{"Animation"}},
		{"Voice Over Masterclass", "Become a professional voice over artist",
			"Udemy", "https://udemy.com/voice-over", "Beginner", "8 hours", 19.99,
			[]string{"Voice Over"}},
		{"Project Management Professional", "Prepare for PMP certification",
			"Udemy", "https://udemy.com/pmp-prep", "Advanced", "25 hours", 29.99,
			[]string{"Project Management"}},
		{"Business Analysis Fundamentals", "Learn essential business analysis skills",
			"Coursera", "https://coursera.org/business-analysis", "Intermediate", "20 hours", 39.00,
			[]string{"Business Analysis"}},
		{"Virtual Assistant - Start a VA Business", "Build your virtual assistant business from scratch",
			"Udemy", "https://udemy.com/virtual-assistant", "Beginner", "10 hours", 19.99,
			[]string{"Virtual Assistance"}},
	}
}
