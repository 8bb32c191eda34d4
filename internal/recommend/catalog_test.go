package recommend

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadCatalog(t *testing.T) {
	c, err := LoadCatalog()
	require.NoError(t, err)
	require.Equal(t, RulesetVersion, c.Version)
	require.Len(t, c.Rules, 26)

	e, ok := c.Entry("R05")
	require.True(t, ok, "R05 missing from catalog")
	require.Equal(t, "focus", e.Category)
	require.Equal(t, "low", e.Priority)
}

func TestParseCatalog_RejectsBadDocuments(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{`},
		{"missing version", `{"rules":[{"code":"R01","category":"focus","name":"n","summary":"s","priority":"high"}]}`},
		{"bad code format", `{"version":"v1.0.0","rules":[{"code":"X1","category":"focus","name":"n","summary":"s","priority":"high"}]}`},
		{"bad category", `{"version":"v1.0.0","rules":[{"code":"R01","category":"misc","name":"n","summary":"s","priority":"high"}]}`},
		{"bad priority", `{"version":"v1.0.0","rules":[{"code":"R01","category":"focus","name":"n","summary":"s","priority":"urgent"}]}`},
		{"empty rules", `{"version":"v1.0.0","rules":[]}`},
		{"unknown field", `{"version":"v1.0.0","extra":true,"rules":[{"code":"R01","category":"focus","name":"n","summary":"s","priority":"high"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseCatalog([]byte(tt.raw))
			require.Error(t, err)
		})
	}
}

func TestParseCatalog_RejectsDuplicateCodes(t *testing.T) {
	raw := `{"version":"v1.0.0","rules":[
		{"code":"R01","category":"focus","name":"a","summary":"s","priority":"high"},
		{"code":"R01","category":"focus","name":"b","summary":"s","priority":"low"}
	]}`
	_, err := parseCatalog([]byte(raw))
	require.Error(t, err)
}
