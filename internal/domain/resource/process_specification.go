package resource

import (
	"time"

	"github.com/google/uuid"
)

// ProcessSpecification names a stage a resource can be at in its lifecycle
// (e.g. cleaning, repairing).
type ProcessSpecification struct {
	ID   uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name string    `gorm:"column:name;not null" json:"name"`
	Note string    `gorm:"column:note" json:"note"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (ProcessSpecification) TableName() string { return "vf_process_specification" }
