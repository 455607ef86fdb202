package resource

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/SocioProphet/zenflows/internal/domain"
	"github.com/SocioProphet/zenflows/internal/pkg/errs"
	"github.com/SocioProphet/zenflows/internal/pkg/page"
	"github.com/SocioProphet/zenflows/internal/platform/logger"
)

// Relation names one preloadable association of an economic resource. The
// enumeration is closed: every variant maps to a dedicated fetch below.
type Relation int

const (
	RelImages Relation = iota
	RelConformsTo
	RelAccountingQuantityUnit
	RelOnhandQuantityUnit
	RelPrimaryAccountable
	RelCustodian
	RelStage
	RelState
	RelCurrentLocation
	RelLot
	RelContainedIn
	RelUnitOfEffort
)

func (r Relation) String() string {
	switch r {
	case RelImages:
		return "images"
	case RelConformsTo:
		return "conforms_to"
	case RelAccountingQuantityUnit:
		return "accounting_quantity_unit"
	case RelOnhandQuantityUnit:
		return "onhand_quantity_unit"
	case RelPrimaryAccountable:
		return "primary_accountable"
	case RelCustodian:
		return "custodian"
	case RelStage:
		return "stage"
	case RelState:
		return "state"
	case RelCurrentLocation:
		return "current_location"
	case RelLot:
		return "lot"
	case RelContainedIn:
		return "contained_in"
	case RelUnitOfEffort:
		return "unit_of_effort"
	default:
		return "unknown"
	}
}

// RelationByName maps the wire-level relation name onto the enum. Unknown
// names report ok=false; callers decide whether to ignore or reject.
func RelationByName(name string) (Relation, bool) {
	for _, r := range []Relation{
		RelImages, RelConformsTo, RelAccountingQuantityUnit, RelOnhandQuantityUnit,
		RelPrimaryAccountable, RelCustodian, RelStage, RelState,
		RelCurrentLocation, RelLot, RelContainedIn, RelUnitOfEffort,
	} {
		if r.String() == name {
			return r, true
		}
	}
	return 0, false
}

// ResourceFilter narrows a listing. Clauses compose by AND; empty slices are
// no-ops. ClassifiedAs matches resources whose tag set contains every given
// tag.
type ResourceFilter struct {
	ClassifiedAs       []string
	PrimaryAccountable []uuid.UUID
	Custodian          []uuid.UUID
	ConformsTo         []uuid.UUID
}

// ResourceQuery bundles a filter with cursor paging parameters.
type ResourceQuery struct {
	Filter *ResourceFilter
	Page   page.Params
}

type EconomicResourceRepo interface {
	One(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.EconomicResource, error)
	OneBy(ctx context.Context, tx *gorm.DB, clauses map[string]any) (*types.EconomicResource, error)
	All(ctx context.Context, tx *gorm.DB, q ResourceQuery) ([]*types.EconomicResource, string, error)
	Create(ctx context.Context, tx *gorm.DB, res *types.EconomicResource) error
	Save(ctx context.Context, tx *gorm.DB, res *types.EconomicResource) error
	Delete(ctx context.Context, tx *gorm.DB, res *types.EconomicResource) error
	Preload(ctx context.Context, tx *gorm.DB, res *types.EconomicResource, rel Relation) error
}

type economicResourceRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewEconomicResourceRepo(db *gorm.DB, baseLog *logger.Logger) EconomicResourceRepo {
	repoLog := baseLog.With("repo", "EconomicResourceRepo")
	return &economicResourceRepo{db: db, log: repoLog}
}

func (r *economicResourceRepo) handle(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *economicResourceRepo) One(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.EconomicResource, error) {
	var res types.EconomicResource
	err := r.handle(tx).WithContext(ctx).
		Where("id = ?", id).
		First(&res).Error
	if err != nil {
		return nil, errs.MapStorage("resource.One", err)
	}
	return &res, nil
}

func (r *economicResourceRepo) OneBy(ctx context.Context, tx *gorm.DB, clauses map[string]any) (*types.EconomicResource, error) {
	var rows []*types.EconomicResource
	err := r.handle(tx).WithContext(ctx).
		Where(clauses).
		Limit(2).
		Find(&rows).Error
	if err != nil {
		return nil, errs.MapStorage("resource.OneBy", err)
	}
	switch len(rows) {
	case 0:
		return nil, errs.ErrNotFound
	case 1:
		return rows[0], nil
	default:
		return nil, errs.MapStorage("resource.OneBy", fmt.Errorf("expected at most one row for clauses %v", clauses))
	}
}

func (r *economicResourceRepo) All(ctx context.Context, tx *gorm.DB, q ResourceQuery) ([]*types.EconomicResource, string, error) {
	query := r.handle(tx).WithContext(ctx).Model(&types.EconomicResource{})

	if f := q.Filter; f != nil {
		if len(f.ClassifiedAs) > 0 {
			tags, err := json.Marshal(f.ClassifiedAs)
			if err != nil {
				return nil, "", errs.MapStorage("resource.All", err)
			}
			query = query.Where("classified_as @> ?", datatypes.JSON(tags))
		}
		if len(f.PrimaryAccountable) > 0 {
			query = query.Where("primary_accountable_id IN ?", f.PrimaryAccountable)
		}
		if len(f.Custodian) > 0 {
			query = query.Where("custodian_id IN ?", f.Custodian)
		}
		if len(f.ConformsTo) > 0 {
			query = query.Where("conforms_to_id IN ?", f.ConformsTo)
		}
	}

	cursor, err := page.Decode(q.Page.Cursor)
	if err != nil {
		return nil, "", errs.MapStorage("resource.All", err)
	}
	if cursor != nil {
		query = query.Where(
			"(created_at > ?) OR (created_at = ? AND id > ?)",
			cursor.CreatedAt, cursor.CreatedAt, cursor.ID,
		)
	}

	limit := q.Page.Bound()
	var rows []*types.EconomicResource
	if err := query.
		Order("created_at ASC, id ASC").
		Limit(limit + 1).
		Find(&rows).Error; err != nil {
		return nil, "", errs.MapStorage("resource.All", err)
	}

	next := ""
	if len(rows) > limit {
		rows = rows[:limit]
		last := rows[len(rows)-1]
		next = page.Encode(last.CreatedAt, last.ID)
	}
	return rows, next, nil
}

func (r *economicResourceRepo) Create(ctx context.Context, tx *gorm.DB, res *types.EconomicResource) error {
	// Associations are attached via Preload only, never written through.
	if err := r.handle(tx).WithContext(ctx).
		Omit(clause.Associations).
		Create(res).Error; err != nil {
		return errs.MapStorage("resource.Create", err)
	}
	return nil
}

func (r *economicResourceRepo) Save(ctx context.Context, tx *gorm.DB, res *types.EconomicResource) error {
	if err := r.handle(tx).WithContext(ctx).
		Omit(clause.Associations).
		Save(res).Error; err != nil {
		return errs.MapStorage("resource.Save", err)
	}
	return nil
}

func (r *economicResourceRepo) Delete(ctx context.Context, tx *gorm.DB, res *types.EconomicResource) error {
	result := r.handle(tx).WithContext(ctx).
		Where("id = ?", res.ID).
		Delete(&types.EconomicResource{})
	if result.Error != nil {
		return errs.MapStorage("resource.Delete", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// Preload attaches one named relation in memory. It is idempotent: an
// already-attached relation is returned as-is without another fetch, and it
// never mutates persisted state.
func (r *economicResourceRepo) Preload(ctx context.Context, tx *gorm.DB, res *types.EconomicResource, rel Relation) error {
	h := r.handle(tx).WithContext(ctx)

	switch rel {
	case RelImages:
		if res.Images != nil {
			return nil
		}
		var imgs []*types.ResourceImage
		if err := h.Where("economic_resource_id = ?", res.ID).
			Order("created_at ASC").
			Find(&imgs).Error; err != nil {
			return errs.MapStorage("resource.Preload.images", err)
		}
		if imgs == nil {
			imgs = []*types.ResourceImage{}
		}
		res.Images = imgs
		return nil

	case RelConformsTo:
		if res.ConformsTo != nil {
			return nil
		}
		var spec types.ResourceSpecification
		if err := h.Where("id = ?", res.ConformsToID).First(&spec).Error; err != nil {
			return errs.MapStorage("resource.Preload.conforms_to", err)
		}
		res.ConformsTo = &spec
		return nil

	case RelAccountingQuantityUnit:
		return preloadUnit(h, res.AccountingQuantityUnitID, &res.AccountingQuantityUnit)

	case RelOnhandQuantityUnit:
		return preloadUnit(h, res.OnhandQuantityUnitID, &res.OnhandQuantityUnit)

	case RelUnitOfEffort:
		return preloadUnit(h, res.UnitOfEffortID, &res.UnitOfEffort)

	case RelPrimaryAccountable:
		return preloadAgent(h, res.PrimaryAccountableID, &res.PrimaryAccountable)

	case RelCustodian:
		return preloadAgent(h, res.CustodianID, &res.Custodian)

	case RelStage:
		if res.StageID == nil || res.Stage != nil {
			return nil
		}
		var stage types.ProcessSpecification
		if err := h.Where("id = ?", *res.StageID).First(&stage).Error; err != nil {
			return errs.MapStorage("resource.Preload.stage", err)
		}
		res.Stage = &stage
		return nil

	case RelState:
		// The action table is static; no store access.
		if res.State == "" || res.StateAction != nil {
			return nil
		}
		action, ok := types.ActionByID(res.State)
		if !ok {
			return errs.MapStorage("resource.Preload.state", fmt.Errorf("unknown action id %q", res.State))
		}
		res.StateAction = &action
		return nil

	case RelCurrentLocation:
		if res.CurrentLocationID == nil || res.CurrentLocation != nil {
			return nil
		}
		var loc types.SpatialThing
		if err := h.Where("id = ?", *res.CurrentLocationID).First(&loc).Error; err != nil {
			return errs.MapStorage("resource.Preload.current_location", err)
		}
		res.CurrentLocation = &loc
		return nil

	case RelLot:
		if res.LotID == nil || res.Lot != nil {
			return nil
		}
		var lot types.ProductBatch
		if err := h.Where("id = ?", *res.LotID).First(&lot).Error; err != nil {
			return errs.MapStorage("resource.Preload.lot", err)
		}
		res.Lot = &lot
		return nil

	case RelContainedIn:
		if res.ContainedInID == nil || res.ContainedIn != nil {
			return nil
		}
		var container types.EconomicResource
		if err := h.Where("id = ?", *res.ContainedInID).First(&container).Error; err != nil {
			return errs.MapStorage("resource.Preload.contained_in", err)
		}
		res.ContainedIn = &container
		return nil

	default:
		return errs.MapStorage("resource.Preload", fmt.Errorf("unknown relation %d", rel))
	}
}

func preloadUnit(h *gorm.DB, id *uuid.UUID, target **types.Unit) error {
	if id == nil || *target != nil {
		return nil
	}
	var unit types.Unit
	if err := h.Where("id = ?", *id).First(&unit).Error; err != nil {
		return errs.MapStorage("resource.Preload.unit", err)
	}
	*target = &unit
	return nil
}

func preloadAgent(h *gorm.DB, id *uuid.UUID, target **types.Agent) error {
	if id == nil || *target != nil {
		return nil
	}
	var a types.Agent
	if err := h.Where("id = ?", *id).First(&a).Error; err != nil {
		return errs.MapStorage("resource.Preload.agent", err)
	}
	*target = &a
	return nil
}
