package instance

import (
	"context"

	"gorm.io/gorm"

	types "github.com/SocioProphet/zenflows/internal/domain"
	"github.com/SocioProphet/zenflows/internal/pkg/errs"
	"github.com/SocioProphet/zenflows/internal/platform/logger"
)

type InstanceSpecsRepo interface {
	Get(ctx context.Context, tx *gorm.DB) (*types.InstanceSpecs, error)
	Create(ctx context.Context, tx *gorm.DB, specs *types.InstanceSpecs) error
}

type instanceSpecsRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewInstanceSpecsRepo(db *gorm.DB, baseLog *logger.Logger) InstanceSpecsRepo {
	repoLog := baseLog.With("repo", "InstanceSpecsRepo")
	return &instanceSpecsRepo{db: db, log: repoLog}
}

func (r *instanceSpecsRepo) handle(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *instanceSpecsRepo) Get(ctx context.Context, tx *gorm.DB) (*types.InstanceSpecs, error) {
	var specs types.InstanceSpecs
	err := r.handle(tx).WithContext(ctx).
		Where("id = ?", types.InstanceSpecsID).
		First(&specs).Error
	if err != nil {
		return nil, errs.MapStorage("instanceSpecs.Get", err)
	}
	return &specs, nil
}

func (r *instanceSpecsRepo) Create(ctx context.Context, tx *gorm.DB, specs *types.InstanceSpecs) error {
	specs.ID = types.InstanceSpecsID
	if err := r.handle(tx).WithContext(ctx).Create(specs).Error; err != nil {
		return errs.MapStorage("instanceSpecs.Create", err)
	}
	return nil
}
