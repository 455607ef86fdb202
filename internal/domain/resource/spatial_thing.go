package resource

import (
	"time"

	"github.com/google/uuid"
)

// SpatialThing is a mappable location.
type SpatialThing struct {
	ID              uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name            string    `gorm:"column:name;not null" json:"name"`
	MappableAddress string    `gorm:"column:mappable_address" json:"mappable_address"`
	Lat             *float64  `gorm:"column:lat" json:"lat,omitempty"`
	Long            *float64  `gorm:"column:long" json:"long,omitempty"`
	Alt             *float64  `gorm:"column:alt" json:"alt,omitempty"`
	Note            string    `gorm:"column:note" json:"note"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (SpatialThing) TableName() string { return "vf_spatial_thing" }
