package resource

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/SocioProphet/zenflows/internal/domain/measure"
)

// ResourceSpecification is the type-level description a resource conforms to.
// The default-unit columns were added after the fact, so both are nullable;
// only name is required.
type ResourceSpecification struct {
	ID           uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name         string         `gorm:"column:name;type:text;not null" json:"name"`
	Note         string         `gorm:"column:note;type:text" json:"note"`
	ClassifiedAs datatypes.JSON `gorm:"column:classified_as;type:jsonb" json:"classified_as"`

	DefaultUnitOfResourceID *uuid.UUID    `gorm:"column:default_unit_of_resource_id;type:uuid" json:"default_unit_of_resource_id,omitempty"`
	DefaultUnitOfResource   *measure.Unit `gorm:"foreignKey:DefaultUnitOfResourceID;references:ID" json:"default_unit_of_resource,omitempty"`

	DefaultUnitOfEffortID *uuid.UUID    `gorm:"column:default_unit_of_effort_id;type:uuid" json:"default_unit_of_effort_id,omitempty"`
	DefaultUnitOfEffort   *measure.Unit `gorm:"foreignKey:DefaultUnitOfEffortID;references:ID" json:"default_unit_of_effort,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (ResourceSpecification) TableName() string { return "vf_resource_specification" }
