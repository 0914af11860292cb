package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"glassysee/internal/model"

	"github.com/rs/zerolog"
)

// SeedProduct is one record of the catalogue seed file.
type SeedProduct struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	Collection  *string `json:"collection,omitempty"`
	InStock     bool    `json:"inStock"`
}

// Loader loads the catalogue seed file from some backing store.
type Loader interface {
	// Load reads the seed file at the given path or key and returns
	// its product records.
	Load(ctx context.Context, path string) ([]SeedProduct, error)
}

// fileLoader implements Loader for local seed files.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based seed loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "seed-loader").Logger(),
	}
}

// Load reads a JSON seed file containing an array of products.
func (l *fileLoader) Load(ctx context.Context, filePath string) ([]SeedProduct, error) {
	l.logger.Info().Str("file", filePath).Msg("loading catalogue seed file")

	data, err := os.ReadFile(filePath)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to read seed file")
		return nil, fmt.Errorf("failed to read seed file %s: %w", filePath, err)
	}

	products, err := decodeSeed(data)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to decode seed file")
		return nil, fmt.Errorf("failed to decode seed file %s: %w", filePath, err)
	}

	l.logger.Info().
		Str("file", filePath).
		Int("products", len(products)).
		Msg("catalogue seed file loaded")

	return products, nil
}

// decodeSeed parses and validates the seed file contents.
func decodeSeed(data []byte) ([]SeedProduct, error) {
	var products []SeedProduct
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, err
	}

	for i, p := range products {
		if p.Name == "" {
			return nil, fmt.Errorf("seed product %d: name is required", i)
		}
		if p.Price < 0 {
			return nil, fmt.Errorf("seed product %d: price must not be negative", i)
		}
		if !model.ValidCategory(p.Category) {
			return nil, fmt.Errorf("seed product %d: unknown category %q", i, p.Category)
		}
	}

	return products, nil
}
