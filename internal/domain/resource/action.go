package resource

import "sort"

// Action is one entry of the fixed Valueflows action vocabulary. Actions are
// static data, never persisted; resource state references an action id.
type Action struct {
	ID             string `json:"id"`
	Label          string `json:"label"`
	ResourceEffect string `json:"resource_effect"`
	OnhandEffect   string `json:"onhand_effect"`
	InputOutput    string `json:"input_output,omitempty"`
	PairsWith      string `json:"pairs_with,omitempty"`
}

const (
	EffectIncrement          = "increment"
	EffectDecrement          = "decrement"
	EffectNoEffect           = "noEffect"
	EffectDecrementIncrement = "decrementIncrement"
)

var actions = map[string]Action{
	"produce":           {ID: "produce", Label: "produce", ResourceEffect: EffectIncrement, OnhandEffect: EffectIncrement, InputOutput: "output"},
	"consume":           {ID: "consume", Label: "consume", ResourceEffect: EffectDecrement, OnhandEffect: EffectDecrement, InputOutput: "input"},
	"use":               {ID: "use", Label: "use", ResourceEffect: EffectNoEffect, OnhandEffect: EffectNoEffect, InputOutput: "input"},
	"work":              {ID: "work", Label: "work", ResourceEffect: EffectNoEffect, OnhandEffect: EffectNoEffect, InputOutput: "input"},
	"cite":              {ID: "cite", Label: "cite", ResourceEffect: EffectNoEffect, OnhandEffect: EffectNoEffect, InputOutput: "input"},
	"deliverService":    {ID: "deliverService", Label: "deliver service", ResourceEffect: EffectNoEffect, OnhandEffect: EffectNoEffect, InputOutput: "outputInput"},
	"pickup":            {ID: "pickup", Label: "pickup", ResourceEffect: EffectNoEffect, OnhandEffect: EffectNoEffect, InputOutput: "input", PairsWith: "dropoff"},
	"dropoff":           {ID: "dropoff", Label: "dropoff", ResourceEffect: EffectNoEffect, OnhandEffect: EffectNoEffect, InputOutput: "output", PairsWith: "pickup"},
	"accept":            {ID: "accept", Label: "accept", ResourceEffect: EffectNoEffect, OnhandEffect: EffectDecrement, InputOutput: "input", PairsWith: "modify"},
	"modify":            {ID: "modify", Label: "modify", ResourceEffect: EffectNoEffect, OnhandEffect: EffectIncrement, InputOutput: "output", PairsWith: "accept"},
	"combine":           {ID: "combine", Label: "combine", ResourceEffect: EffectNoEffect, OnhandEffect: EffectDecrement, InputOutput: "input", PairsWith: "separate"},
	"separate":          {ID: "separate", Label: "separate", ResourceEffect: EffectNoEffect, OnhandEffect: EffectIncrement, InputOutput: "output", PairsWith: "combine"},
	"transferAllRights": {ID: "transferAllRights", Label: "transfer all rights", ResourceEffect: EffectDecrementIncrement, OnhandEffect: EffectNoEffect},
	"transferCustody":   {ID: "transferCustody", Label: "transfer custody", ResourceEffect: EffectNoEffect, OnhandEffect: EffectDecrementIncrement},
	"transfer":          {ID: "transfer", Label: "transfer", ResourceEffect: EffectDecrementIncrement, OnhandEffect: EffectDecrementIncrement},
	"move":              {ID: "move", Label: "move", ResourceEffect: EffectDecrementIncrement, OnhandEffect: EffectDecrementIncrement},
	"raise":             {ID: "raise", Label: "raise", ResourceEffect: EffectIncrement, OnhandEffect: EffectIncrement},
	"lower":             {ID: "lower", Label: "lower", ResourceEffect: EffectDecrement, OnhandEffect: EffectDecrement},
	"pass":              {ID: "pass", Label: "pass", ResourceEffect: EffectNoEffect, OnhandEffect: EffectNoEffect, InputOutput: "outputInput", PairsWith: "fail"},
	"fail":              {ID: "fail", Label: "fail", ResourceEffect: EffectNoEffect, OnhandEffect: EffectNoEffect, InputOutput: "outputInput", PairsWith: "pass"},
}

// ActionByID resolves an action id against the static table.
func ActionByID(id string) (Action, bool) {
	a, ok := actions[id]
	return a, ok
}

// ActionIDs returns all known action ids, sorted for stable output.
func ActionIDs() []string {
	ids := make([]string, 0, len(actions))
	for id := range actions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
