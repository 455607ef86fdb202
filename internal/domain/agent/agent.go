package agent

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypePerson       = "person"
	TypeOrganization = "organization"
)

// Agent is a person or organization that can be accountable for or have
// custody of economic resources.
type Agent struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name      string    `gorm:"column:name;not null" json:"name"`
	AgentType string    `gorm:"column:agent_type;not null;default:'person'" json:"agent_type"`
	Email     string    `gorm:"column:email;uniqueIndex" json:"email"`
	Password  string    `gorm:"column:password" json:"-"` // bcrypt hash
	Note      string    `gorm:"column:note" json:"note"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Agent) TableName() string { return "vf_agent" }
