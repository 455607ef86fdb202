package agent

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/SocioProphet/zenflows/internal/domain"
	"github.com/SocioProphet/zenflows/internal/pkg/errs"
	"github.com/SocioProphet/zenflows/internal/platform/logger"
)

type AgentRepo interface {
	Create(ctx context.Context, tx *gorm.DB, a *types.Agent) error
	One(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Agent, error)
	OneByEmail(ctx context.Context, tx *gorm.DB, email string) (*types.Agent, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Agent, error)
}

type agentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAgentRepo(db *gorm.DB, baseLog *logger.Logger) AgentRepo {
	repoLog := baseLog.With("repo", "AgentRepo")
	return &agentRepo{db: db, log: repoLog}
}

func (r *agentRepo) handle(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *agentRepo) Create(ctx context.Context, tx *gorm.DB, a *types.Agent) error {
	if err := r.handle(tx).WithContext(ctx).Create(a).Error; err != nil {
		return errs.MapStorage("agent.Create", err)
	}
	return nil
}

func (r *agentRepo) One(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Agent, error) {
	var a types.Agent
	err := r.handle(tx).WithContext(ctx).
		Where("id = ?", id).
		First(&a).Error
	if err != nil {
		return nil, errs.MapStorage("agent.One", err)
	}
	return &a, nil
}

func (r *agentRepo) OneByEmail(ctx context.Context, tx *gorm.DB, email string) (*types.Agent, error) {
	var a types.Agent
	err := r.handle(tx).WithContext(ctx).
		Where("email = ?", email).
		First(&a).Error
	if err != nil {
		return nil, errs.MapStorage("agent.OneByEmail", err)
	}
	return &a, nil
}

func (r *agentRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Agent, error) {
	var rows []*types.Agent
	if len(ids) == 0 {
		return rows, nil
	}
	if err := r.handle(tx).WithContext(ctx).
		Where("id IN ?", ids).
		Find(&rows).Error; err != nil {
		return nil, errs.MapStorage("agent.GetByIDs", err)
	}
	return rows, nil
}
