package instance

import (
	"time"

	"github.com/google/uuid"

	"github.com/SocioProphet/zenflows/internal/domain/measure"
	"github.com/SocioProphet/zenflows/internal/domain/resource"
)

// SingletonID pins the instance-specs table to exactly one row.
const SingletonID = 1

// InstanceSpecs is the singleton record holding instance-wide default unit
// and specification references. Seeded once at install time.
type InstanceSpecs struct {
	ID int `gorm:"primaryKey;check:id = 1" json:"id"`

	UnitOneID uuid.UUID     `gorm:"column:unit_one_id;type:uuid;not null" json:"unit_one_id"`
	UnitOne   *measure.Unit `gorm:"foreignKey:UnitOneID;references:ID" json:"unit_one,omitempty"`

	UnitCurrencyID uuid.UUID     `gorm:"column:unit_currency_id;type:uuid;not null" json:"unit_currency_id"`
	UnitCurrency   *measure.Unit `gorm:"foreignKey:UnitCurrencyID;references:ID" json:"unit_currency,omitempty"`

	SpecCurrencyID uuid.UUID                       `gorm:"column:spec_currency_id;type:uuid;not null" json:"spec_currency_id"`
	SpecCurrency   *resource.ResourceSpecification `gorm:"foreignKey:SpecCurrencyID;references:ID" json:"spec_currency,omitempty"`

	SpecProjectDesignID uuid.UUID                       `gorm:"column:spec_project_design_id;type:uuid;not null" json:"spec_project_design_id"`
	SpecProjectDesign   *resource.ResourceSpecification `gorm:"foreignKey:SpecProjectDesignID;references:ID" json:"spec_project_design,omitempty"`

	SpecProjectServiceID uuid.UUID                       `gorm:"column:spec_project_service_id;type:uuid;not null" json:"spec_project_service_id"`
	SpecProjectService   *resource.ResourceSpecification `gorm:"foreignKey:SpecProjectServiceID;references:ID" json:"spec_project_service,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (InstanceSpecs) TableName() string { return "vf_instance_specs" }
