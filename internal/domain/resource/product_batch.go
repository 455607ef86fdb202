package resource

import (
	"time"

	"github.com/google/uuid"
)

// ProductBatch is a lot a resource belongs to.
type ProductBatch struct {
	ID             uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	BatchNumber    string     `gorm:"column:batch_number;not null" json:"batch_number"`
	ExpiryDate     *time.Time `gorm:"column:expiry_date" json:"expiry_date,omitempty"`
	ProductionDate *time.Time `gorm:"column:production_date" json:"production_date,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (ProductBatch) TableName() string { return "vf_product_batch" }
