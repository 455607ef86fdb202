package db

import (
	"gorm.io/gorm"

	types "github.com/SocioProphet/zenflows/internal/domain"
)

// AutoMigrateAll applies additive, backward-compatible schema changes for the
// whole vocabulary. Order matters only for readability; FK constraints are
// disabled during migration.
func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(

		// Agents and units first, everything references them.
		&types.Agent{},
		&types.Unit{},

		// Specifications.
		&types.ResourceSpecification{},
		&types.ProcessSpecification{},

		// Resource surroundings.
		&types.SpatialThing{},
		&types.ProductBatch{},

		// The resource itself plus attachments.
		&types.EconomicResource{},
		&types.ResourceImage{},

		// Recipes.
		&types.RecipeExchange{},

		// Instance-wide defaults (singleton).
		&types.InstanceSpecs{},
	)
}
