package measure

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/SocioProphet/zenflows/internal/domain"
	"github.com/SocioProphet/zenflows/internal/pkg/errs"
	"github.com/SocioProphet/zenflows/internal/platform/logger"
)

type UnitRepo interface {
	Create(ctx context.Context, tx *gorm.DB, u *types.Unit) error
	One(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Unit, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Unit, error)
}

type unitRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUnitRepo(db *gorm.DB, baseLog *logger.Logger) UnitRepo {
	repoLog := baseLog.With("repo", "UnitRepo")
	return &unitRepo{db: db, log: repoLog}
}

func (r *unitRepo) handle(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *unitRepo) Create(ctx context.Context, tx *gorm.DB, u *types.Unit) error {
	if err := r.handle(tx).WithContext(ctx).Create(u).Error; err != nil {
		return errs.MapStorage("unit.Create", err)
	}
	return nil
}

func (r *unitRepo) One(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Unit, error) {
	var u types.Unit
	err := r.handle(tx).WithContext(ctx).
		Where("id = ?", id).
		First(&u).Error
	if err != nil {
		return nil, errs.MapStorage("unit.One", err)
	}
	return &u, nil
}

func (r *unitRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Unit, error) {
	var rows []*types.Unit
	if len(ids) == 0 {
		return rows, nil
	}
	if err := r.handle(tx).WithContext(ctx).
		Where("id IN ?", ids).
		Find(&rows).Error; err != nil {
		return nil, errs.MapStorage("unit.GetByIDs", err)
	}
	return rows, nil
}
