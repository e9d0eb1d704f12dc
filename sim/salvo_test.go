package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSalvo_Counts(t *testing.T) {
	tests := []struct {
		name                       string
		missiles, mirvs, decoysPer int
		wantWarheads, wantDecoys   int
	}{
		{"typical loadout", 4, 3, 5, 12, 60},
		{"single warhead no decoys", 1, 1, 0, 1, 0},
		{"zero missiles", 0, 3, 5, 0, 0},
		{"decoy heavy", 2, 2, 10, 4, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &SimulationConfig{
				Missiles:         tt.missiles,
				MIRVsPerMissile:  tt.mirvs,
				DecoysPerWarhead: tt.decoysPer,
			}
			targets, warheads, decoys := GenerateSalvo(cfg, NewStream(1))

			assert.Equal(t, tt.wantWarheads, warheads)
			assert.Equal(t, tt.wantDecoys, decoys)
			assert.Len(t, targets, warheads+decoys)

			gotWarheads, gotDecoys := 0, 0
			for _, tgt := range targets {
				switch tgt.Kind {
				case KindWarhead:
					gotWarheads++
				case KindDecoy:
					gotDecoys++
				}
			}
			assert.Equal(t, warheads, gotWarheads, "warhead objects in population")
			assert.Equal(t, decoys, gotDecoys, "decoy objects in population")
		})
	}
}

func TestGenerateSalvo_UniqueIDs(t *testing.T) {
	cfg := &SimulationConfig{Missiles: 3, MIRVsPerMissile: 4, DecoysPerWarhead: 2}
	targets, _, _ := GenerateSalvo(cfg, NewStream(5))

	seen := make(map[string]bool, len(targets))
	for _, tgt := range targets {
		require.NotEmpty(t, tgt.ID)
		require.False(t, seen[tgt.ID], "duplicate track ID %s", tgt.ID)
		seen[tgt.ID] = true
	}
}

func TestGenerateSalvo_ShuffleDeterministic(t *testing.T) {
	cfg := &SimulationConfig{Missiles: 2, MIRVsPerMissile: 3, DecoysPerWarhead: 4}

	a, _, _ := GenerateSalvo(cfg, NewStream(42))
	b, _, _ := GenerateSalvo(cfg, NewStream(42))
	require.Equal(t, a, b, "same seed must reproduce the same order")

	c, _, _ := GenerateSalvo(cfg, NewStream(43))
	assert.NotEqual(t, a, c, "different seeds should reorder a 30-object population")
}
