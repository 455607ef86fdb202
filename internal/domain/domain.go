// Package domain re-exports the vocabulary types so callers can import a
// single package as `types`.
package domain

import (
	"github.com/SocioProphet/zenflows/internal/domain/agent"
	"github.com/SocioProphet/zenflows/internal/domain/instance"
	"github.com/SocioProphet/zenflows/internal/domain/measure"
	"github.com/SocioProphet/zenflows/internal/domain/recipe"
	"github.com/SocioProphet/zenflows/internal/domain/resource"
)

type (
	Agent                 = agent.Agent
	Unit                  = measure.Unit
	EconomicResource      = resource.EconomicResource
	ResourceSpecification = resource.ResourceSpecification
	ProcessSpecification  = resource.ProcessSpecification
	SpatialThing          = resource.SpatialThing
	ProductBatch          = resource.ProductBatch
	ResourceImage         = resource.ResourceImage
	Action                = resource.Action
	RecipeExchange        = recipe.RecipeExchange
	InstanceSpecs         = instance.InstanceSpecs
)

const (
	AgentTypePerson       = agent.TypePerson
	AgentTypeOrganization = agent.TypeOrganization

	InstanceSpecsID = instance.SingletonID
)

// ActionByID resolves an action id against the static action table.
func ActionByID(id string) (Action, bool) { return resource.ActionByID(id) }

// ActionIDs lists the static action vocabulary.
func ActionIDs() []string { return resource.ActionIDs() }
