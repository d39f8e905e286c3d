package seeder

import (
	"context"

	"freelance-hub/internal/database"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}
