package repos

import (
	"gorm.io/gorm"

	"github.com/SocioProphet/zenflows/internal/data/repos/agent"
	"github.com/SocioProphet/zenflows/internal/data/repos/instance"
	"github.com/SocioProphet/zenflows/internal/data/repos/measure"
	"github.com/SocioProphet/zenflows/internal/data/repos/recipe"
	"github.com/SocioProphet/zenflows/internal/data/repos/resource"
	"github.com/SocioProphet/zenflows/internal/platform/logger"
)

type AgentRepo = agent.AgentRepo
type UnitRepo = measure.UnitRepo

type EconomicResourceRepo = resource.EconomicResourceRepo
type ResourceSpecificationRepo = resource.ResourceSpecificationRepo

type RecipeExchangeRepo = recipe.RecipeExchangeRepo
type InstanceSpecsRepo = instance.InstanceSpecsRepo

// Re-exported resource query/relation types so callers can stay on this
// package.
type Relation = resource.Relation
type ResourceFilter = resource.ResourceFilter
type ResourceQuery = resource.ResourceQuery

const (
	RelImages                 = resource.RelImages
	RelConformsTo             = resource.RelConformsTo
	RelAccountingQuantityUnit = resource.RelAccountingQuantityUnit
	RelOnhandQuantityUnit     = resource.RelOnhandQuantityUnit
	RelPrimaryAccountable     = resource.RelPrimaryAccountable
	RelCustodian              = resource.RelCustodian
	RelStage                  = resource.RelStage
	RelState                  = resource.RelState
	RelCurrentLocation        = resource.RelCurrentLocation
	RelLot                    = resource.RelLot
	RelContainedIn            = resource.RelContainedIn
	RelUnitOfEffort           = resource.RelUnitOfEffort
)

func RelationByName(name string) (Relation, bool) { return resource.RelationByName(name) }

func NewAgentRepo(db *gorm.DB, baseLog *logger.Logger) AgentRepo {
	return agent.NewAgentRepo(db, baseLog)
}
func NewUnitRepo(db *gorm.DB, baseLog *logger.Logger) UnitRepo {
	return measure.NewUnitRepo(db, baseLog)
}

func NewEconomicResourceRepo(db *gorm.DB, baseLog *logger.Logger) EconomicResourceRepo {
	return resource.NewEconomicResourceRepo(db, baseLog)
}
func NewResourceSpecificationRepo(db *gorm.DB, baseLog *logger.Logger) ResourceSpecificationRepo {
	return resource.NewResourceSpecificationRepo(db, baseLog)
}

func NewRecipeExchangeRepo(db *gorm.DB, baseLog *logger.Logger) RecipeExchangeRepo {
	return recipe.NewRecipeExchangeRepo(db, baseLog)
}
func NewInstanceSpecsRepo(db *gorm.DB, baseLog *logger.Logger) InstanceSpecsRepo {
	return instance.NewInstanceSpecsRepo(db, baseLog)
}
