package measure

import (
	"time"

	"github.com/google/uuid"
)

// Unit is a unit of measure (om2 vocabulary label plus symbol).
type Unit struct {
	ID     uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Label  string    `gorm:"column:label;not null" json:"label"`
	Symbol string    `gorm:"column:symbol;not null" json:"symbol"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Unit) TableName() string { return "vf_unit" }
