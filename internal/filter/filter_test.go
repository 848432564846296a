package filter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petrotech/petrotech/internal/catalog"
)

var eclipse = catalog.Tool{
	ID:          "eclipse",
	Name:        "Schlumberger ECLIPSE",
	Category:    "reservoir",
	Tags:        []string{"Simulation", "Reservoir", "Engineering"},
	Description: "Industry-standard numerical reservoir simulator for oil, gas, and condensate reservoirs",
	Added:       "2023-01-15",
}

func ids(tools []catalog.Tool) []string {
	out := make([]string, len(tools))
	for i, t := range tools {
		out[i] = t.ID
	}
	return out
}

func defaultTools(t *testing.T) []catalog.Tool {
	t.Helper()
	c, err := catalog.Default()
	require.NoError(t, err)
	return c.Tools()
}

func TestApplySingleToolScenarios(t *testing.T) {
	tools := []catalog.Tool{eclipse}

	tests := []struct {
		name     string
		criteria Criteria
		want     []string
	}{
		{"case-insensitive name match", Criteria{Search: "eclipse"}, []string{"eclipse"}},
		{"no match in name or description", Criteria{Search: "pipeline"}, []string{}},
		{"description match", Criteria{Search: "CONDENSATE"}, []string{"eclipse"}},
		{"selected category matches", Criteria{Category: "reservoir"}, []string{"eclipse"}},
		{"other category excludes", Criteria{Category: "drilling"}, []string{}},
		{"category match is exact", Criteria{Category: "Reservoir"}, []string{}},
		{"all selected tags present", Criteria{Tags: []string{"Simulation", "Engineering"}}, []string{"eclipse"}},
		{"conjunctive tags", Criteria{Tags: []string{"Simulation", "HSE"}}, []string{}},
		{"empty criteria", Criteria{}, []string{"eclipse"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Apply(tools, tt.criteria)))
		})
	}
}

func TestApplyEmptyCatalog(t *testing.T) {
	got := Apply(nil, Criteria{Search: "x"})
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestApplyPreservesOrder(t *testing.T) {
	tools := defaultTools(t)
	got := Apply(tools, Criteria{Tags: []string{"Simulation"}})

	pos := make(map[string]int, len(tools))
	for i, tool := range tools {
		pos[tool.ID] = i
	}
	for i := 1; i < len(got); i++ {
		assert.Less(t, pos[got[i-1].ID], pos[got[i].ID])
	}
}

func TestApplyDoesNotAliasInput(t *testing.T) {
	tools := []catalog.Tool{eclipse, eclipse}
	got := Apply(tools, Criteria{})
	got[0].Name = "changed"
	assert.Equal(t, "Schlumberger ECLIPSE", tools[0].Name)
}

func TestEveryResultMatchesSearchText(t *testing.T) {
	tools := defaultTools(t)
	for _, search := range []string{"sim", "SEISMIC", "flow", "a", "zzz"} {
		for _, tool := range Apply(tools, Criteria{Search: search}) {
			s := strings.ToLower(search)
			assert.True(t,
				strings.Contains(strings.ToLower(tool.Name), s) || strings.Contains(strings.ToLower(tool.Description), s),
				"%s does not contain %q", tool.ID, search)
		}
	}
}

func TestTagGrowthIsMonotonic(t *testing.T) {
	tools := defaultTools(t)
	tagSets := [][]string{
		{},
		{"Simulation"},
		{"Simulation", "Reservoir"},
		{"Simulation", "Reservoir", "Open Source"},
	}

	prev := map[string]bool{}
	for i, tags := range tagSets {
		got := Apply(tools, Criteria{Tags: tags})
		current := map[string]bool{}
		for _, tool := range got {
			current[tool.ID] = true
			if i > 0 {
				assert.True(t, prev[tool.ID], "%s appeared after adding a tag", tool.ID)
			}
		}
		prev = current
	}
	assert.Equal(t, map[string]bool{"opm-flow": true}, prev)
}

func TestMatchesAgreesWithApply(t *testing.T) {
	tools := defaultTools(t)
	c := Criteria{Search: "simulator", Category: "reservoir"}

	var want []string
	for _, tool := range tools {
		if Matches(tool, c) {
			want = append(want, tool.ID)
		}
	}
	assert.Equal(t, want, ids(Apply(tools, c)))
}
