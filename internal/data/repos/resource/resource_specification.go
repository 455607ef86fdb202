package resource

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/SocioProphet/zenflows/internal/domain"
	"github.com/SocioProphet/zenflows/internal/pkg/errs"
	"github.com/SocioProphet/zenflows/internal/pkg/page"
	"github.com/SocioProphet/zenflows/internal/platform/logger"
)

type ResourceSpecificationRepo interface {
	Create(ctx context.Context, tx *gorm.DB, spec *types.ResourceSpecification) error
	One(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.ResourceSpecification, error)
	All(ctx context.Context, tx *gorm.DB, p page.Params) ([]*types.ResourceSpecification, string, error)
	Save(ctx context.Context, tx *gorm.DB, spec *types.ResourceSpecification) error
}

type resourceSpecificationRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewResourceSpecificationRepo(db *gorm.DB, baseLog *logger.Logger) ResourceSpecificationRepo {
	repoLog := baseLog.With("repo", "ResourceSpecificationRepo")
	return &resourceSpecificationRepo{db: db, log: repoLog}
}

func (r *resourceSpecificationRepo) handle(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *resourceSpecificationRepo) Create(ctx context.Context, tx *gorm.DB, spec *types.ResourceSpecification) error {
	if err := r.handle(tx).WithContext(ctx).
		Omit(clause.Associations).
		Create(spec).Error; err != nil {
		return errs.MapStorage("spec.Create", err)
	}
	return nil
}

func (r *resourceSpecificationRepo) One(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.ResourceSpecification, error) {
	var spec types.ResourceSpecification
	err := r.handle(tx).WithContext(ctx).
		Where("id = ?", id).
		First(&spec).Error
	if err != nil {
		return nil, errs.MapStorage("spec.One", err)
	}
	return &spec, nil
}

func (r *resourceSpecificationRepo) All(ctx context.Context, tx *gorm.DB, p page.Params) ([]*types.ResourceSpecification, string, error) {
	query := r.handle(tx).WithContext(ctx).Model(&types.ResourceSpecification{})

	cursor, err := page.Decode(p.Cursor)
	if err != nil {
		return nil, "", errs.MapStorage("spec.All", err)
	}
	if cursor != nil {
		query = query.Where(
			"(created_at > ?) OR (created_at = ? AND id > ?)",
			cursor.CreatedAt, cursor.CreatedAt, cursor.ID,
		)
	}

	limit := p.Bound()
	var rows []*types.ResourceSpecification
	if err := query.
		Order("created_at ASC, id ASC").
		Limit(limit + 1).
		Find(&rows).Error; err != nil {
		return nil, "", errs.MapStorage("spec.All", err)
	}

	next := ""
	if len(rows) > limit {
		rows = rows[:limit]
		last := rows[len(rows)-1]
		next = page.Encode(last.CreatedAt, last.ID)
	}
	return rows, next, nil
}

func (r *resourceSpecificationRepo) Save(ctx context.Context, tx *gorm.DB, spec *types.ResourceSpecification) error {
	if err := r.handle(tx).WithContext(ctx).
		Omit(clause.Associations).
		Save(spec).Error; err != nil {
		return errs.MapStorage("spec.Save", err)
	}
	return nil
}
