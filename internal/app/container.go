package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"freelance-hub/internal/chatbot"
	"freelance-hub/internal/config"
	"freelance-hub/internal/database"
	"freelance-hub/internal/database/migration"
	dbpostgres "freelance-hub/internal/database/postgres"
	"freelance-hub/internal/database/seeder"
	"freelance-hub/internal/infrastructure/cache"
	"freelance-hub/internal/infrastructure/embedding"
	"freelance-hub/internal/repository"
	"freelance-hub/internal/usecase"
	"freelance-hub/internal/ws"
)

type Container struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub
	Logger *log.Logger

	Skills          usecase.SkillUsecase
	UserSkills      usecase.UserSkillUsecase
	Gigs            usecase.GigUsecase
	Recommendations usecase.RecommendationUsecase
	Chat            usecase.ChatUsecase
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err := (migration.Runner{Dir: "migrations"}).Run(ctx, db.SQLDB()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	if cfg.App.SeedOnStart {
		if err := (seeder.Runner{Seeders: seeder.Defaults()}).Run(ctx, db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("seed database: %w", err)
		}
	}

	redisCache := cache.NewRedis(cfg.Redis, logger)

	// The semantic tier is active only when an embedding endpoint is
	// configured; anchor precompute failing then is a startup error, not a
	// silently degraded bot.
	var semantic *chatbot.SemanticFallback
	if cfg.Embedding.BaseURL != "" {
		embedder := embedding.NewHTTPEmbedder(cfg.Embedding.BaseURL, cfg.Embedding.Timeout, logger)
		semantic, err = chatbot.NewSemanticFallback(ctx, embedder, cfg.Embedding.SimilarityThreshold)
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("init semantic fallback: %w", err)
		}
	} else {
		logger.Printf("[Chat] No embedding endpoint configured, running rule tier only")
	}

	hub := ws.NewHub(logger)

	users := repository.NewPostgresUserRepository(db)
	userSkills := repository.NewPostgresUserSkillRepository(db)
	skills := repository.NewPostgresSkillRepository(db)
	gigs := repository.NewPostgresGigRepository(db)
	courses := repository.NewPostgresCourseRepository(db)

	recommendations := usecase.NewRecommendationUsecase(users, userSkills, gigs, courses, redisCache, logger)
	userSkillsUC := usecase.NewUserSkillUsecase(users, userSkills, recommendations, logger)
	gigsUC := usecase.NewGigUsecase(users, gigs, ws.NewNotifier(hub), redisCache, logger)
	chatUC := usecase.NewChatUsecase(users, userSkills, gigs, recommendations, chatbot.NewRuleClassifier(), semantic, nil, logger)

	return &Container{
		Config: cfg,
		DB:     db,
		Cache:  redisCache,
		Hub:    hub,
		Logger: logger,

		Skills:          usecase.NewSkillUsecase(skills),
		UserSkills:      userSkillsUC,
		Gigs:            gigsUC,
		Recommendations: recommendations,
		Chat:            chatUC,
	}, nil
}

func (c *Container) Close() error {
	if c == nil || c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
