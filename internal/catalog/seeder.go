package catalog

import (
	"context"
	"fmt"
	"time"

	"glassysee/internal/model"
	"glassysee/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Seeder populates an empty product catalogue from a seed file.
type Seeder struct {
	products repository.ProductRepository
	loader   Loader
	logger   zerolog.Logger
}

// NewSeeder creates a catalogue seeder.
func NewSeeder(products repository.ProductRepository, loader Loader, logger zerolog.Logger) *Seeder {
	return &Seeder{
		products: products,
		loader:   loader,
		logger:   logger.With().Str("component", "catalog-seeder").Logger(),
	}
}

// Seed inserts the seed products when the catalogue is empty. A
// non-empty catalogue is left untouched.
func (s *Seeder) Seed(ctx context.Context, seedPath string) error {
	count, err := s.products.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to check catalogue size: %w", err)
	}

	if count > 0 {
		s.logger.Info().Int("products", count).Msg("catalogue already populated, skipping seed")
		return nil
	}

	seeds, err := s.loader.Load(ctx, seedPath)
	if err != nil {
		return fmt.Errorf("failed to load seed file: %w", err)
	}

	now := time.Now()
	for _, seed := range seeds {
		product := &model.Product{
			ID:          uuid.New().String(),
			Name:        seed.Name,
			Description: seed.Description,
			Price:       seed.Price,
			Image:       seed.Image,
			Category:    seed.Category,
			Collection:  seed.Collection,
			InStock:     seed.InStock,
			CreatedAt:   now,
			UpdatedAt:   now,
		}

		if err := s.products.Create(ctx, product); err != nil {
			return fmt.Errorf("failed to seed product %s: %w", seed.Name, err)
		}

		s.logger.Debug().
			Str("product_id", product.ID).
			Str("name", product.Name).
			Msg("seeded product")
	}

	s.logger.Info().Int("products", len(seeds)).Msg("catalogue seeded")
	return nil
}
