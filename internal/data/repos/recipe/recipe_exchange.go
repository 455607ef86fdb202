package recipe

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/SocioProphet/zenflows/internal/domain"
	"github.com/SocioProphet/zenflows/internal/pkg/errs"
	"github.com/SocioProphet/zenflows/internal/pkg/page"
	"github.com/SocioProphet/zenflows/internal/platform/logger"
)

type RecipeExchangeRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rec *types.RecipeExchange) error
	One(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.RecipeExchange, error)
	All(ctx context.Context, tx *gorm.DB, p page.Params) ([]*types.RecipeExchange, string, error)
	Save(ctx context.Context, tx *gorm.DB, rec *types.RecipeExchange) error
	Delete(ctx context.Context, tx *gorm.DB, rec *types.RecipeExchange) error
}

type recipeExchangeRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRecipeExchangeRepo(db *gorm.DB, baseLog *logger.Logger) RecipeExchangeRepo {
	repoLog := baseLog.With("repo", "RecipeExchangeRepo")
	return &recipeExchangeRepo{db: db, log: repoLog}
}

func (r *recipeExchangeRepo) handle(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *recipeExchangeRepo) Create(ctx context.Context, tx *gorm.DB, rec *types.RecipeExchange) error {
	if err := r.handle(tx).WithContext(ctx).Create(rec).Error; err != nil {
		return errs.MapStorage("recipeExchange.Create", err)
	}
	return nil
}

func (r *recipeExchangeRepo) One(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.RecipeExchange, error) {
	var rec types.RecipeExchange
	err := r.handle(tx).WithContext(ctx).
		Where("id = ?", id).
		First(&rec).Error
	if err != nil {
		return nil, errs.MapStorage("recipeExchange.One", err)
	}
	return &rec, nil
}

func (r *recipeExchangeRepo) All(ctx context.Context, tx *gorm.DB, p page.Params) ([]*types.RecipeExchange, string, error) {
	query := r.handle(tx).WithContext(ctx).Model(&types.RecipeExchange{})

	cursor, err := page.Decode(p.Cursor)
	if err != nil {
		return nil, "", errs.MapStorage("recipeExchange.All", err)
	}
	if cursor != nil {
		query = query.Where(
			"(created_at > ?) OR (created_at = ? AND id > ?)",
			cursor.CreatedAt, cursor.CreatedAt, cursor.ID,
		)
	}

	limit := p.Bound()
	var rows []*types.RecipeExchange
	if err := query.
		Order("created_at ASC, id ASC").
		Limit(limit + 1).
		Find(&rows).Error; err != nil {
		return nil, "", errs.MapStorage("recipeExchange.All", err)
	}

	next := ""
	if len(rows) > limit {
		rows = rows[:limit]
		last := rows[len(rows)-1]
		next = page.Encode(last.CreatedAt, last.ID)
	}
	return rows, next, nil
}

func (r *recipeExchangeRepo) Save(ctx context.Context, tx *gorm.DB, rec *types.RecipeExchange) error {
	if err := r.handle(tx).WithContext(ctx).Save(rec).Error; err != nil {
		return errs.MapStorage("recipeExchange.Save", err)
	}
	return nil
}

func (r *recipeExchangeRepo) Delete(ctx context.Context, tx *gorm.DB, rec *types.RecipeExchange) error {
	result := r.handle(tx).WithContext(ctx).
		Where("id = ?", rec.ID).
		Delete(&types.RecipeExchange{})
	if result.Error != nil {
		return errs.MapStorage("recipeExchange.Delete", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.ErrNotFound
	}
	return nil
}
