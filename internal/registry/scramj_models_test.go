package registry

import "testing"

func TestResolve_TableEntries(t *testing.T) {
	tests := []struct {
		name  string
		alias string
		want  string
	}{
		{"default alias", "default", "dual-9b"},
		{"dual alias", "dual", "dual-9b"},
		{"scram-j alias", "scram-j", "scram-j"},
		{"direct alias", "direct", "responder-direct"},
		{"nemotron alias", "nemotron", "nemotron-direct"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.alias); got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.alias, got, tt.want)
			}
		})
	}
}

func TestResolve_PassThrough(t *testing.T) {
	tests := []struct {
		name  string
		alias string
	}{
		{"unknown alias", "mystery-model"},
		{"empty alias", ""},
		{"case-sensitive lookup", "Default"},
		{"untrimmed alias", " default"},
		{"resolved identifier as alias", "responder-direct"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.alias); got != tt.alias {
				t.Errorf("Resolve(%q) = %q, want pass-through", tt.alias, got)
			}
		})
	}
}

func TestSystemPromptBudget(t *testing.T) {
	tests := []struct {
		name  string
		model string
		want  int
	}{
		{"dual-9b gets long budget", "dual-9b", 4000},
		{"nemotron-direct gets long budget", "nemotron-direct", 4000},
		{"legacy scram-j gets short budget", "scram-j", 800},
		{"responder-direct gets short budget", "responder-direct", 800},
		{"unknown model gets short budget", "some-custom-model", 800},
		// An unrecognized alias passes through Resolve unchanged, so it
		// lands here with the short budget even if the caller meant a
		// long-context backend.
		{"unresolved alias gets short budget", "nemotron-9b", 800},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SystemPromptBudget(tt.model); got != tt.want {
				t.Errorf("SystemPromptBudget(%q) = %d, want %d", tt.model, got, tt.want)
			}
		})
	}
}

func TestGetScramJModels_CoversAliasTargets(t *testing.T) {
	ids := make(map[string]bool)
	for _, info := range GetScramJModels() {
		if ids[info.ID] {
			t.Errorf("duplicate model id %q", info.ID)
		}
		ids[info.ID] = true
		if info.SystemPromptBudget != SystemPromptBudget(info.ID) {
			t.Errorf("model %q budget mismatch: table %d, lookup %d", info.ID, info.SystemPromptBudget, SystemPromptBudget(info.ID))
		}
	}
	for alias, target := range modelAliases {
		if !ids[target] {
			t.Errorf("alias %q resolves to %q, which has no model definition", alias, target)
		}
	}
}
