package resource

import (
	"time"

	"github.com/google/uuid"
)

// ResourceImage is an image file attached to an economic resource. Only the
// metadata lives here; bytes stay in external storage keyed by hash.
type ResourceImage struct {
	ID                 uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	EconomicResourceID uuid.UUID `gorm:"column:economic_resource_id;type:uuid;not null;index" json:"economic_resource_id"`

	Name        string `gorm:"column:name;not null" json:"name"`
	Description string `gorm:"column:description" json:"description"`
	MimeType    string `gorm:"column:mime_type;not null" json:"mime_type"`
	Extension   string `gorm:"column:extension" json:"extension"`
	SizeBytes   int64  `gorm:"column:size_bytes" json:"size_bytes"`
	Hash        string `gorm:"column:hash;not null" json:"hash"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (ResourceImage) TableName() string { return "vf_resource_image" }
