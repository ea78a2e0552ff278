package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/phrazzld/periodic-api/internal/domain/uncertain"
	"github.com/phrazzld/periodic-api/internal/periodic"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewCmdPeriodic("periodic", &out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestShow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []string
		contains []string
		wantErr  bool
	}{
		{
			name: "carbon_unabridged",
			args: []string{"show", "C"},
			contains: []string{
				"Carbon (C)",
				"atomic number:  6",
				"valency:        4, 2",
				"atomic weight:  [12.0096, 12.0116] (unabridged)",
				"C-12    mass 12±0  abundance 0.9893±0.0008",
				"C-14    mass 14.0032419884±0.000000004\n",
			},
		},
		{
			name:     "hydrogen_abridged_precision",
			args:     []string{"show", "H", "--mode=abridged", "--precision=3"},
			contains: []string{"atomic weight:  1.008±0.000 (abridged)"},
		},
		{
			name:     "no_weight",
			args:     []string{"show", "Og"},
			contains: []string{"Oganesson (Og)", "atomic weight:  n/a", "valency:        -"},
		},
		{name: "unknown_symbol", args: []string{"show", "Xx"}, wantErr: true},
		{name: "bad_mode", args: []string{"show", "C", "--mode=rounded"}, wantErr: true},
		{name: "bad_precision", args: []string{"show", "C", "--precision=18"}, wantErr: true},
		{name: "missing_symbol", args: []string{"show"}, wantErr: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			out, err := execute(t, tc.args...)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			for _, s := range tc.contains {
				assert.Contains(t, out, s)
			}
		})
	}
}

func TestList(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "list", "--mode=abridged")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, periodic.Count+1)
	assert.Equal(t, []string{"Z", "SYMBOL", "NAME", "GROUP", "PERIOD", "WEIGHT"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"1", "H", "Hydrogen", "1", "1", "1.008±0.0002"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"118", "Og", "Oganesson", "18", "7", "-"}, strings.Fields(lines[periodic.Count]))
}

func TestExportJSON(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "export", "C", "Tc")
	require.NoError(t, err)

	var docs []struct {
		Symbol               string              `json:"symbol"`
		StandardAtomicWeight *uncertain.Quantity `json:"standard_atomic_weight"`
		Isotopes             []struct {
			MassNumber          int                 `json:"mass_number"`
			RelativeAtomicMass  uncertain.Quantity  `json:"relative_atomic_mass"`
			IsotopicComposition *uncertain.Quantity `json:"isotopic_composition"`
		} `json:"isotopes"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &docs))
	require.Len(t, docs, 2)

	want, _ := periodic.C.StandardAtomicWeight(periodic.Unabridged)
	require.NotNil(t, docs[0].StandardAtomicWeight)
	assert.True(t, want.Equal(*docs[0].StandardAtomicWeight))
	assert.Contains(t, out, `"Interval": [`)

	require.Len(t, docs[0].Isotopes, 3)
	assert.NotNil(t, docs[0].Isotopes[0].IsotopicComposition)
	assert.Nil(t, docs[0].Isotopes[2].IsotopicComposition)

	assert.Equal(t, "Tc", docs[1].Symbol)
	assert.Nil(t, docs[1].StandardAtomicWeight)
}

func TestExportYAML(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "export", "--format=yaml", "--mode=abridged", "H")
	require.NoError(t, err)
	assert.Contains(t, out, "Uncertain:")

	var docs []struct {
		Symbol               string             `yaml:"symbol"`
		StandardAtomicWeight uncertain.Quantity `yaml:"standard_atomic_weight"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &docs))
	require.Len(t, docs, 1)

	want, _ := periodic.H.StandardAtomicWeight(periodic.Abridged)
	assert.Equal(t, "H", docs[0].Symbol)
	assert.True(t, want.Equal(docs[0].StandardAtomicWeight))
}

func TestExportErrors(t *testing.T) {
	t.Parallel()

	_, err := execute(t, "export", "--format=xml")
	assert.ErrorContains(t, err, "--format")

	_, err = execute(t, "export", "Xx")
	assert.ErrorIs(t, err, periodic.ErrUnknownElement)
}

func TestTable(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "table")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, periodic.Periods)
	assert.Equal(t, "H", strings.TrimSpace(lines[0][:3]))
	assert.True(t, strings.HasSuffix(lines[0], "He"))

	out, err = execute(t, "table", "--layout=left-step")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimRight(out, "\n"), "\n"), periodic.Periods+1)

	_, err = execute(t, "table", "--layout=spiral")
	assert.Error(t, err)
}
