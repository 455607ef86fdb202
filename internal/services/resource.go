package services

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/SocioProphet/zenflows/internal/data/repos"
	types "github.com/SocioProphet/zenflows/internal/domain"
	"github.com/SocioProphet/zenflows/internal/pkg/changeset"
	"github.com/SocioProphet/zenflows/internal/platform/logger"
)

// ResourceInput carries the fields of a new economic resource.
type ResourceInput struct {
	Name                    string
	Note                    string
	TrackingIdentifier      string
	ClassifiedAs            []string
	ConformsToID            uuid.UUID
	PrimaryAccountableID    *uuid.UUID
	CustodianID             *uuid.UUID
	StageID                 *uuid.UUID
	State                   string
	CurrentLocationID       *uuid.UUID
	LotID                   *uuid.UUID
	ContainedInID           *uuid.UUID
	UnitOfEffortID          *uuid.UUID
	AccountingQuantityValue float64
	AccountingQuantityUnit  *uuid.UUID
	OnhandQuantityValue     float64
	OnhandQuantityUnit      *uuid.UUID
}

func (in ResourceInput) validate() error {
	cs := changeset.New().
		NonEmpty("name", in.Name)
	if in.ConformsToID == uuid.Nil {
		cs.AddError("conforms_to_id", "can't be blank")
	}
	value := in.AccountingQuantityValue
	cs.NonNegative("accounting_quantity_value", &value)
	onhand := in.OnhandQuantityValue
	cs.NonNegative("onhand_quantity_value", &onhand)
	if in.State != "" {
		state := in.State
		cs.OneOf("state", &state, types.ActionIDs()...)
	}
	return cs.Err()
}

// ResourceChanges is a partial-update changeset: nil pointers leave the field
// untouched.
type ResourceChanges struct {
	Name                    *string
	Note                    *string
	TrackingIdentifier      *string
	ClassifiedAs            []string
	PrimaryAccountableID    *uuid.UUID
	CustodianID             *uuid.UUID
	StageID                 *uuid.UUID
	State                   *string
	CurrentLocationID       *uuid.UUID
	LotID                   *uuid.UUID
	ContainedInID           *uuid.UUID
	UnitOfEffortID          *uuid.UUID
	AccountingQuantityValue *float64
	OnhandQuantityValue     *float64
}

func (c ResourceChanges) validate() error {
	cs := changeset.New().
		NonEmptyPtr("name", c.Name).
		NonNegative("accounting_quantity_value", c.AccountingQuantityValue).
		NonNegative("onhand_quantity_value", c.OnhandQuantityValue)
	if c.State != nil && *c.State != "" {
		cs.OneOf("state", c.State, types.ActionIDs()...)
	}
	return cs.Err()
}

func (c ResourceChanges) apply(res *types.EconomicResource) {
	if c.Name != nil {
		res.Name = *c.Name
	}
	if c.Note != nil {
		res.Note = *c.Note
	}
	if c.TrackingIdentifier != nil {
		res.TrackingIdentifier = *c.TrackingIdentifier
	}
	if c.ClassifiedAs != nil {
		res.SetClassifiedAs(c.ClassifiedAs)
	}
	if c.PrimaryAccountableID != nil {
		res.PrimaryAccountableID = c.PrimaryAccountableID
	}
	if c.CustodianID != nil {
		res.CustodianID = c.CustodianID
	}
	if c.StageID != nil {
		res.StageID = c.StageID
	}
	if c.State != nil {
		res.State = *c.State
		res.StateAction = nil
	}
	if c.CurrentLocationID != nil {
		res.CurrentLocationID = c.CurrentLocationID
	}
	if c.LotID != nil {
		res.LotID = c.LotID
	}
	if c.ContainedInID != nil {
		res.ContainedInID = c.ContainedInID
	}
	if c.UnitOfEffortID != nil {
		res.UnitOfEffortID = c.UnitOfEffortID
	}
	if c.AccountingQuantityValue != nil {
		res.AccountingQuantityValue = *c.AccountingQuantityValue
	}
	if c.OnhandQuantityValue != nil {
		res.OnhandQuantityValue = *c.OnhandQuantityValue
	}
}

type ResourceService interface {
	Create(ctx context.Context, in ResourceInput) (*types.EconomicResource, error)
	Get(ctx context.Context, id uuid.UUID) (*types.EconomicResource, error)
	GetDetailed(ctx context.Context, id uuid.UUID, rels []repos.Relation) (*types.EconomicResource, error)
	List(ctx context.Context, q repos.ResourceQuery) ([]*types.EconomicResource, string, error)
	Update(ctx context.Context, id uuid.UUID, changes ResourceChanges) (*types.EconomicResource, error)
	Delete(ctx context.Context, id uuid.UUID) (*types.EconomicResource, error)
}

type resourceService struct {
	db        *gorm.DB
	log       *logger.Logger
	resources repos.EconomicResourceRepo
}

func NewResourceService(db *gorm.DB, baseLog *logger.Logger, resources repos.EconomicResourceRepo) ResourceService {
	serviceLog := baseLog.With("service", "ResourceService")
	return &resourceService{db: db, log: serviceLog, resources: resources}
}

func (s *resourceService) Create(ctx context.Context, in ResourceInput) (*types.EconomicResource, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	res := &types.EconomicResource{
		ID:                       uuid.New(),
		Name:                     in.Name,
		Note:                     in.Note,
		TrackingIdentifier:       in.TrackingIdentifier,
		ConformsToID:             in.ConformsToID,
		PrimaryAccountableID:     in.PrimaryAccountableID,
		CustodianID:              in.CustodianID,
		StageID:                  in.StageID,
		State:                    in.State,
		CurrentLocationID:        in.CurrentLocationID,
		LotID:                    in.LotID,
		ContainedInID:            in.ContainedInID,
		UnitOfEffortID:           in.UnitOfEffortID,
		AccountingQuantityValue:  in.AccountingQuantityValue,
		AccountingQuantityUnitID: in.AccountingQuantityUnit,
		OnhandQuantityValue:      in.OnhandQuantityValue,
		OnhandQuantityUnitID:     in.OnhandQuantityUnit,
	}
	res.SetClassifiedAs(in.ClassifiedAs)
	if err := s.resources.Create(ctx, nil, res); err != nil {
		s.log.Error("Create failed", "error", err)
		return nil, err
	}
	return res, nil
}

func (s *resourceService) Get(ctx context.Context, id uuid.UUID) (*types.EconomicResource, error) {
	return s.resources.One(ctx, nil, id)
}

// GetDetailed fetches a resource and attaches the requested relations,
// fetching independent relations concurrently. Enrichment only: nothing is
// written. Duplicate relations collapse to one goroutine so no entity field
// is attached from two goroutines at once.
func (s *resourceService) GetDetailed(ctx context.Context, id uuid.UUID, rels []repos.Relation) (*types.EconomicResource, error) {
	res, err := s.resources.One(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	g, gctx := errgroup.WithContext(ctx)
	seen := make(map[repos.Relation]bool, len(rels))
	for _, rel := range rels {
		if seen[rel] {
			continue
		}
		seen[rel] = true
		g.Go(func() error {
			return s.resources.Preload(gctx, nil, res, rel)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *resourceService) List(ctx context.Context, q repos.ResourceQuery) ([]*types.EconomicResource, string, error) {
	return s.resources.All(ctx, nil, q)
}

// Update runs fetch, validate and write as one atomic unit: a fetch miss
// stops before validation, a validation failure stops before any write, and
// any failure rolls the transaction back.
func (s *resourceService) Update(ctx context.Context, id uuid.UUID, changes ResourceChanges) (*types.EconomicResource, error) {
	var out *types.EconomicResource
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res, err := s.resources.One(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := changes.validate(); err != nil {
			return err
		}
		changes.apply(res)
		if err := s.resources.Save(ctx, tx, res); err != nil {
			return err
		}
		out = res
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete re-fetches then removes the row in one transaction and returns the
// entity as it existed immediately before removal.
func (s *resourceService) Delete(ctx context.Context, id uuid.UUID) (*types.EconomicResource, error) {
	var out *types.EconomicResource
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res, err := s.resources.One(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := s.resources.Delete(ctx, tx, res); err != nil {
			return err
		}
		out = res
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
