package resource

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/SocioProphet/zenflows/internal/domain/agent"
	"github.com/SocioProphet/zenflows/internal/domain/measure"
)

// EconomicResource is a trackable quantity of a resource type with custody,
// accountability and location state. The id is immutable; at most one
// custodian and one accountable party exist at any time (nullable FKs).
type EconomicResource struct {
	ID                 uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name               string         `gorm:"column:name;not null" json:"name"`
	Note               string         `gorm:"column:note" json:"note"`
	TrackingIdentifier string         `gorm:"column:tracking_identifier" json:"tracking_identifier"`
	ClassifiedAs       datatypes.JSON `gorm:"column:classified_as;type:jsonb" json:"classified_as"`

	ConformsToID uuid.UUID              `gorm:"column:conforms_to_id;type:uuid;not null;index" json:"conforms_to_id"`
	ConformsTo   *ResourceSpecification `gorm:"foreignKey:ConformsToID;references:ID" json:"conforms_to,omitempty"`

	PrimaryAccountableID *uuid.UUID   `gorm:"column:primary_accountable_id;type:uuid;index" json:"primary_accountable_id,omitempty"`
	PrimaryAccountable   *agent.Agent `gorm:"foreignKey:PrimaryAccountableID;references:ID" json:"primary_accountable,omitempty"`

	CustodianID *uuid.UUID   `gorm:"column:custodian_id;type:uuid;index" json:"custodian_id,omitempty"`
	Custodian   *agent.Agent `gorm:"foreignKey:CustodianID;references:ID" json:"custodian,omitempty"`

	StageID *uuid.UUID            `gorm:"column:stage_id;type:uuid" json:"stage_id,omitempty"`
	Stage   *ProcessSpecification `gorm:"foreignKey:StageID;references:ID" json:"stage,omitempty"`

	// State holds an action id from the static action table (e.g. pass, fail).
	State       string  `gorm:"column:state" json:"state,omitempty"`
	StateAction *Action `gorm:"-" json:"state_action,omitempty"`

	CurrentLocationID *uuid.UUID    `gorm:"column:current_location_id;type:uuid" json:"current_location_id,omitempty"`
	CurrentLocation   *SpatialThing `gorm:"foreignKey:CurrentLocationID;references:ID" json:"current_location,omitempty"`

	LotID *uuid.UUID    `gorm:"column:lot_id;type:uuid" json:"lot_id,omitempty"`
	Lot   *ProductBatch `gorm:"foreignKey:LotID;references:ID" json:"lot,omitempty"`

	ContainedInID *uuid.UUID        `gorm:"column:contained_in_id;type:uuid" json:"contained_in_id,omitempty"`
	ContainedIn   *EconomicResource `gorm:"foreignKey:ContainedInID;references:ID" json:"contained_in,omitempty"`

	UnitOfEffortID *uuid.UUID    `gorm:"column:unit_of_effort_id;type:uuid" json:"unit_of_effort_id,omitempty"`
	UnitOfEffort   *measure.Unit `gorm:"foreignKey:UnitOfEffortID;references:ID" json:"unit_of_effort,omitempty"`

	AccountingQuantityValue  float64       `gorm:"column:accounting_quantity_value;not null;default:0" json:"accounting_quantity_value"`
	AccountingQuantityUnitID *uuid.UUID    `gorm:"column:accounting_quantity_unit_id;type:uuid" json:"accounting_quantity_unit_id,omitempty"`
	AccountingQuantityUnit   *measure.Unit `gorm:"foreignKey:AccountingQuantityUnitID;references:ID" json:"accounting_quantity_unit,omitempty"`

	OnhandQuantityValue  float64       `gorm:"column:onhand_quantity_value;not null;default:0" json:"onhand_quantity_value"`
	OnhandQuantityUnitID *uuid.UUID    `gorm:"column:onhand_quantity_unit_id;type:uuid" json:"onhand_quantity_unit_id,omitempty"`
	OnhandQuantityUnit   *measure.Unit `gorm:"foreignKey:OnhandQuantityUnitID;references:ID" json:"onhand_quantity_unit,omitempty"`

	Images []*ResourceImage `gorm:"foreignKey:EconomicResourceID;references:ID" json:"images,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:now();index:idx_economic_resource_created_at_id,priority:1" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (EconomicResource) TableName() string { return "vf_economic_resource" }

// ClassifiedAsTags decodes the jsonb tag set. A missing column decodes to nil.
func (r *EconomicResource) ClassifiedAsTags() []string {
	if len(r.ClassifiedAs) == 0 {
		return nil
	}
	var tags []string
	if err := json.Unmarshal(r.ClassifiedAs, &tags); err != nil {
		return nil
	}
	return tags
}

// SetClassifiedAs encodes the tag set into the jsonb column.
func (r *EconomicResource) SetClassifiedAs(tags []string) {
	if tags == nil {
		tags = []string{}
	}
	raw, _ := json.Marshal(tags)
	r.ClassifiedAs = datatypes.JSON(raw)
}
