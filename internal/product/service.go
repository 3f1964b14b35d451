package product

import (
	"context"
	"time"

	"digipasal-be/internal/logger"
	"digipasal-be/internal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	LoadCatalog(ctx context.Context) error
	Search(ctx context.Context, query string, mode SortMode) []Product
	GetBySlug(ctx context.Context, slug string) (*Product, error)
	GetByID(ctx context.Context, id string) (*Product, error)
	Create(ctx context.Context, input NewProductInput) (*Product, error)
	Update(ctx context.Context, input UpdateProductInput) (*Product, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo    Repository
	catalog *Catalog
}

func NewService(repo Repository) Service {
	return &service{repo: repo, catalog: NewCatalog()}
}

// LoadCatalog fetches all products into memory. Called once at startup and
// again after every admin write.
func (s *service) LoadCatalog(ctx context.Context) error {
	start := time.Now()

	products, err := s.repo.GetAll(ctx)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to load catalog", zap.Error(err))
		return err
	}

	s.catalog.Replace(products)

	logger.FromCtx(ctx).Info("catalog loaded",
		zap.Int("count", len(products)),
		zap.Duration("duration", time.Since(start)),
	)
	return nil
}

func (s *service) Search(ctx context.Context, query string, mode SortMode) []Product {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Search"),
	)

	results := s.catalog.Query(query, mode)

	log.Debug("catalog searched",
		zap.String("query", query),
		zap.String("sort", string(mode)),
		zap.Int("count", len(results)),
	)
	return results
}

func (s *service) GetBySlug(ctx context.Context, slug string) (*Product, error) {
	if p, ok := s.catalog.BySlug(slug); ok {
		return &p, nil
	}
	return nil, ErrProductNotFound
}

func (s *service) GetByID(ctx context.Context, id string) (*Product, error) {
	if p, ok := s.catalog.ByID(id); ok {
		return &p, nil
	}
	// Catalog may be stale right after a write; fall back to the DB.
	return s.repo.GetByID(ctx, id)
}

func (s *service) Create(ctx context.Context, input NewProductInput) (*Product, error) {
	if input.Title == "" {
		return nil, ErrTitleRequired
	}
	if input.Price < 0 {
		return nil, ErrNegativePrice
	}

	p := Product{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Slug:        utils.Slugify(input.Title),
		Price:       input.Price,
		ImageURL:    input.ImageURL,
		Category:    input.Category,
		Description: input.Description,
		Rating:      input.Rating,
	}

	created, err := s.repo.Create(ctx, p)
	if err != nil {
		return nil, err
	}

	if err := s.LoadCatalog(ctx); err != nil {
		logger.FromCtx(ctx).Warn("catalog refresh after create failed", zap.Error(err))
	}

	return &created, nil
}

func (s *service) Update(ctx context.Context, input UpdateProductInput) (*Product, error) {
	if !input.HasAnyField() {
		return nil, ErrNoUpdateField
	}

	existing, err := s.repo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	p := *existing
	if input.Title != nil {
		p.Title = *input.Title
		p.Slug = utils.Slugify(*input.Title)
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, ErrNegativePrice
		}
		p.Price = *input.Price
	}
	if input.ImageURL != nil {
		p.ImageURL = *input.ImageURL
	}
	if input.Category != nil {
		p.Category = *input.Category
	}
	if input.Description != nil {
		p.Description = *input.Description
	}
	if input.Rating != nil {
		p.Rating = input.Rating
	}

	updated, err := s.repo.Update(ctx, p)
	if err != nil {
		return nil, err
	}

	if err := s.LoadCatalog(ctx); err != nil {
		logger.FromCtx(ctx).Warn("catalog refresh after update failed", zap.Error(err))
	}

	return &updated, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.LoadCatalog(ctx); err != nil {
		logger.FromCtx(ctx).Warn("catalog refresh after delete failed", zap.Error(err))
	}
	return nil
}
