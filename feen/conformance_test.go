package feen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// conformanceCase is one scenario from the YAML conformance suite.
type conformanceCase struct {
	Name      string `yaml:"name"`
	Field     string `yaml:"field"` // "placement" | "hands" | "position"
	Input     string `yaml:"input"`
	Strict    bool   `yaml:"strict,omitempty"`
	Canonical string `yaml:"canonical,omitempty"`
	Error     string `yaml:"error,omitempty"` // expected kind: syntax|count|piece|bounds
	Dimension int    `yaml:"dimension,omitempty"`
}

type conformanceSuite struct {
	Cases []conformanceCase `yaml:"cases"`
}

func loadConformanceSuite(t *testing.T) conformanceSuite {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "conformance.yaml"))
	require.NoError(t, err)
	var suite conformanceSuite
	require.NoError(t, yaml.Unmarshal(data, &suite))
	require.NotEmpty(t, suite.Cases)
	return suite
}

func TestConformanceSuite(t *testing.T) {
	suite := loadConformanceSuite(t)
	kinds := map[string]*Error{
		"syntax": ErrSyntax,
		"count":  ErrCount,
		"piece":  ErrPiece,
		"bounds": ErrBounds,
	}

	for _, tc := range suite.Cases {
		t.Run(tc.Name, func(t *testing.T) {
			var (
				dump string
				dim  int
				err  error
			)
			switch tc.Field {
			case "placement":
				var p *Placement
				p, err = ParsePlacement(tc.Input)
				if err == nil {
					dump, dim = p.Dump(), p.Dimension()
				}
			case "hands":
				var h *Hands
				h, err = ParseHandsWithOptions(tc.Input, HandsOptions{Strict: tc.Strict})
				if err == nil {
					dump = h.Dump()
				}
			case "position":
				var pos *Position
				pos, err = ParsePositionWithOptions(tc.Input, PositionOptions{Strict: tc.Strict})
				if err == nil {
					dump = pos.Dump()
					dim = pos.Placement().Dimension()
				}
			default:
				t.Fatalf("unknown field %q", tc.Field)
			}

			if tc.Error != "" {
				sentinel, ok := kinds[tc.Error]
				require.True(t, ok, "unknown error kind %q", tc.Error)
				require.ErrorIs(t, err, sentinel)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.Canonical, dump)
			if tc.Dimension > 0 {
				assert.Equal(t, tc.Dimension, dim)
			}
		})
	}
}
