package recipe

import (
	"time"

	"github.com/google/uuid"
)

// RecipeExchange is a planned exchange agreement inside a recipe. Name is the
// only required field.
type RecipeExchange struct {
	ID   uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name string    `gorm:"column:name;not null" json:"name"`
	Note string    `gorm:"column:note" json:"note"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (RecipeExchange) TableName() string { return "vf_recipe_exchange" }
