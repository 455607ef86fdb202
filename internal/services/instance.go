package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/SocioProphet/zenflows/internal/data/repos"
	types "github.com/SocioProphet/zenflows/internal/domain"
	"github.com/SocioProphet/zenflows/internal/pkg/changeset"
	"github.com/SocioProphet/zenflows/internal/pkg/errs"
	"github.com/SocioProphet/zenflows/internal/platform/logger"
)

// InstanceInit carries the references seeded into the singleton
// instance-specs record.
type InstanceInit struct {
	UnitOneID            uuid.UUID
	UnitCurrencyID       uuid.UUID
	SpecCurrencyID       uuid.UUID
	SpecProjectDesignID  uuid.UUID
	SpecProjectServiceID uuid.UUID
}

func (in InstanceInit) validate() error {
	cs := changeset.New()
	required := map[string]uuid.UUID{
		"unit_one_id":             in.UnitOneID,
		"unit_currency_id":        in.UnitCurrencyID,
		"spec_currency_id":        in.SpecCurrencyID,
		"spec_project_design_id":  in.SpecProjectDesignID,
		"spec_project_service_id": in.SpecProjectServiceID,
	}
	for field, id := range required {
		if id == uuid.Nil {
			cs.AddError(field, "can't be blank")
		}
	}
	return cs.Err()
}

type InstanceService interface {
	Get(ctx context.Context) (*types.InstanceSpecs, error)
	Init(ctx context.Context, in InstanceInit) (*types.InstanceSpecs, error)
}

type instanceService struct {
	db    *gorm.DB
	log   *logger.Logger
	specs repos.InstanceSpecsRepo
	units repos.UnitRepo
}

func NewInstanceService(db *gorm.DB, baseLog *logger.Logger, specs repos.InstanceSpecsRepo, units repos.UnitRepo) InstanceService {
	serviceLog := baseLog.With("service", "InstanceService")
	return &instanceService{db: db, log: serviceLog, specs: specs, units: units}
}

func (s *instanceService) Get(ctx context.Context) (*types.InstanceSpecs, error) {
	return s.specs.Get(ctx, nil)
}

// Init seeds the singleton exactly once. A second Init fails validation, as
// does a unit reference that does not resolve to a stored row.
func (s *instanceService) Init(ctx context.Context, in InstanceInit) (*types.InstanceSpecs, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	var out *types.InstanceSpecs
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		_, err := s.specs.Get(ctx, tx)
		if err == nil {
			return errs.Validation(errs.FieldError{Field: "id", Message: "already initialized"})
		}
		if !errors.Is(err, errs.ErrNotFound) {
			return err
		}
		if err := s.checkUnits(ctx, tx, in); err != nil {
			return err
		}
		specs := &types.InstanceSpecs{
			UnitOneID:            in.UnitOneID,
			UnitCurrencyID:       in.UnitCurrencyID,
			SpecCurrencyID:       in.SpecCurrencyID,
			SpecProjectDesignID:  in.SpecProjectDesignID,
			SpecProjectServiceID: in.SpecProjectServiceID,
		}
		if err := s.specs.Create(ctx, tx, specs); err != nil {
			return err
		}
		out = specs
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *instanceService) checkUnits(ctx context.Context, tx *gorm.DB, in InstanceInit) error {
	found, err := s.units.GetByIDs(ctx, tx, []uuid.UUID{in.UnitOneID, in.UnitCurrencyID})
	if err != nil {
		return err
	}
	stored := map[uuid.UUID]bool{}
	for _, u := range found {
		stored[u.ID] = true
	}
	cs := changeset.New()
	if !stored[in.UnitOneID] {
		cs.AddError("unit_one_id", "does not exist")
	}
	if !stored[in.UnitCurrencyID] {
		cs.AddError("unit_currency_id", "does not exist")
	}
	return cs.Err()
}
