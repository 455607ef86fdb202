package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/SocioProphet/zenflows/internal/data/repos"
	types "github.com/SocioProphet/zenflows/internal/domain"
	"github.com/SocioProphet/zenflows/internal/pkg/changeset"
	"github.com/SocioProphet/zenflows/internal/pkg/page"
	"github.com/SocioProphet/zenflows/internal/platform/logger"
)

// RecipeExchangeChanges is a partial-update changeset for a recipe exchange.
type RecipeExchangeChanges struct {
	Name *string
	Note *string
}

func (c RecipeExchangeChanges) validate() error {
	return changeset.New().
		NonEmptyPtr("name", c.Name).
		Err()
}

type RecipeService interface {
	CreateExchange(ctx context.Context, name, note string) (*types.RecipeExchange, error)
	GetExchange(ctx context.Context, id uuid.UUID) (*types.RecipeExchange, error)
	ListExchanges(ctx context.Context, p page.Params) ([]*types.RecipeExchange, string, error)
	UpdateExchange(ctx context.Context, id uuid.UUID, changes RecipeExchangeChanges) (*types.RecipeExchange, error)
	DeleteExchange(ctx context.Context, id uuid.UUID) (*types.RecipeExchange, error)
}

type recipeService struct {
	db        *gorm.DB
	log       *logger.Logger
	exchanges repos.RecipeExchangeRepo
}

func NewRecipeService(db *gorm.DB, baseLog *logger.Logger, exchanges repos.RecipeExchangeRepo) RecipeService {
	serviceLog := baseLog.With("service", "RecipeService")
	return &recipeService{db: db, log: serviceLog, exchanges: exchanges}
}

func (s *recipeService) CreateExchange(ctx context.Context, name, note string) (*types.RecipeExchange, error) {
	if err := changeset.New().NonEmpty("name", name).Err(); err != nil {
		return nil, err
	}
	rec := &types.RecipeExchange{
		ID:   uuid.New(),
		Name: name,
		Note: note,
	}
	if err := s.exchanges.Create(ctx, nil, rec); err != nil {
		s.log.Error("CreateExchange failed", "error", err)
		return nil, err
	}
	return rec, nil
}

func (s *recipeService) GetExchange(ctx context.Context, id uuid.UUID) (*types.RecipeExchange, error) {
	return s.exchanges.One(ctx, nil, id)
}

func (s *recipeService) ListExchanges(ctx context.Context, p page.Params) ([]*types.RecipeExchange, string, error) {
	return s.exchanges.All(ctx, nil, p)
}

func (s *recipeService) UpdateExchange(ctx context.Context, id uuid.UUID, changes RecipeExchangeChanges) (*types.RecipeExchange, error) {
	var out *types.RecipeExchange
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rec, err := s.exchanges.One(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := changes.validate(); err != nil {
			return err
		}
		if changes.Name != nil {
			rec.Name = *changes.Name
		}
		if changes.Note != nil {
			rec.Note = *changes.Note
		}
		if err := s.exchanges.Save(ctx, tx, rec); err != nil {
			return err
		}
		out = rec
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *recipeService) DeleteExchange(ctx context.Context, id uuid.UUID) (*types.RecipeExchange, error) {
	var out *types.RecipeExchange
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rec, err := s.exchanges.One(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := s.exchanges.Delete(ctx, tx, rec); err != nil {
			return err
		}
		out = rec
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
