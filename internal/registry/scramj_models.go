// Package registry provides the static SCRAM-J model definitions used by
// the bridge: the caller-facing alias table and the per-model system
// prompt budgets.
package registry

// ModelInfo describes a model served by the Spark SCRAM-J backend.
type ModelInfo struct {
	ID            string
	DisplayName   string
	ContextLength int
	// SystemPromptBudget is the number of leading system prompt characters
	// the bridge will forward to this model.
	SystemPromptBudget int
}

const (
	// systemPromptBudgetDefault applies to the legacy Responder backends,
	// which run with a limited KV cache.
	systemPromptBudgetDefault = 800

	// systemPromptBudgetLong applies to the 128K-context backends.
	systemPromptBudgetLong = 4000
)

// modelAliases maps the caller-facing short names to backend model
// identifiers. Lookup is exact: no trimming, no case folding.
var modelAliases = map[string]string{
	"default":  "dual-9b",
	"dual":     "dual-9b",
	"scram-j":  "scram-j",
	"direct":   "responder-direct",
	"nemotron": "nemotron-direct",
}

// GetScramJModels returns the known SCRAM-J backend model definitions.
func GetScramJModels() []*ModelInfo {
	return []*ModelInfo{
		{
			ID:                 "dual-9b",
			DisplayName:        "SCRAM-J Dual (Nemotron 9B)",
			ContextLength:      131072,
			SystemPromptBudget: systemPromptBudgetLong,
		},
		{
			ID:                 "nemotron-direct",
			DisplayName:        "Nemotron 9B Direct",
			ContextLength:      131072,
			SystemPromptBudget: systemPromptBudgetLong,
		},
		{
			ID:                 "scram-j",
			DisplayName:        "SCRAM-J Responder",
			ContextLength:      8192,
			SystemPromptBudget: systemPromptBudgetDefault,
		},
		{
			ID:                 "responder-direct",
			DisplayName:        "Responder Direct",
			ContextLength:      8192,
			SystemPromptBudget: systemPromptBudgetDefault,
		},
	}
}

// Resolve maps a caller-facing alias to its backend model identifier.
// Unknown aliases pass through unchanged; they are never rejected.
func Resolve(alias string) string {
	if id, ok := modelAliases[alias]; ok {
		return id
	}
	return alias
}

// SystemPromptBudget returns the system prompt character budget for a
// resolved model identifier. Identifiers outside the table, including
// aliases that passed through Resolve unchanged, keep the legacy limit.
func SystemPromptBudget(model string) int {
	for _, info := range GetScramJModels() {
		if info.ID == model {
			return info.SystemPromptBudget
		}
	}
	return systemPromptBudgetDefault
}
