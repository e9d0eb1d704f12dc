package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// perfectDefenseConfig is the minimal deterministic engagement: one warhead,
// flawless detection and classification, one guaranteed-kill barrage shot.
func perfectDefenseConfig() *SimulationConfig {
	return &SimulationConfig{
		Missiles:         1,
		MIRVsPerMissile:  1,
		DecoysPerWarhead: 0,
		PDetect:          1.0,
		ClassifierTPR:    1.0,
		ClassifierFPR:    0.0,
		Doctrine:         DoctrineBarrage,
		BarrageShots:     1,
		PKillWarhead:     1.0,
		PKillDecoy:       1.0,
		InventorySize:    1,
		Trials:           1,
		PSystemUp:        1.0,
	}
}

func mustDoctrine(t *testing.T, cfg *SimulationConfig) EngagementDoctrine {
	t.Helper()
	d, err := NewEngagementDoctrine(cfg)
	require.NoError(t, err)
	return d
}

func TestRunTrial_PerfectDefenseIntercepts(t *testing.T) {
	cfg := perfectDefenseConfig()
	result := RunTrial(cfg, mustDoctrine(t, cfg), NewStream(1))

	assert.Equal(t, 1, result.RealWarheads)
	assert.Equal(t, 0, result.PenetratedRealWarheads)
	assert.Equal(t, 1, result.InterceptedRealWarheads)
	assert.Equal(t, 1, result.ShotsTotal)
	assert.Equal(t, 1, result.TruePositives)
	assert.Equal(t, 0, result.InventoryRemaining)
	assert.True(t, result.SystemUp)
}

func TestRunTrial_EmptyInventoryCannotEngage(t *testing.T) {
	// The track is recognized as a threat but nothing is left to shoot.
	cfg := perfectDefenseConfig()
	cfg.InventorySize = 0

	result := RunTrial(cfg, mustDoctrine(t, cfg), NewStream(1))

	assert.Equal(t, 1, result.PenetratedRealWarheads)
	assert.Equal(t, 0, result.InterceptedRealWarheads)
	assert.Equal(t, 1, result.TruePositives, "classification still happens")
	assert.Equal(t, 0, result.ShotsTotal)
}

func TestRunTrial_BlindDefenseLetsEverythingThrough(t *testing.T) {
	cfg := &SimulationConfig{
		Missiles:         3,
		MIRVsPerMissile:  2,
		DecoysPerWarhead: 4,
		PDetect:          0.0,
		ClassifierTPR:    1.0,
		ClassifierFPR:    1.0,
		Doctrine:         DoctrineBarrage,
		BarrageShots:     2,
		InventorySize:    100,
		PSystemUp:        1.0,
	}

	for trial := 0; trial < 10; trial++ {
		result := RunTrial(cfg, mustDoctrine(t, cfg), ForTrial(9, trial))
		assert.Equal(t, 0, result.DetectedObjects)
		assert.Equal(t, result.RealWarheads, result.PenetratedRealWarheads)
		assert.Equal(t, 0, result.ShotsTotal)
		assert.Equal(t, 100, result.InventoryRemaining)
	}
}

func TestRunTrial_MisclassifiedWarheadPenetrates(t *testing.T) {
	// Detection succeeds, classification never flags the track, no shot taken.
	cfg := perfectDefenseConfig()
	cfg.ClassifierTPR = 0.0

	result := RunTrial(cfg, mustDoctrine(t, cfg), NewStream(1))

	assert.Equal(t, 1, result.DetectedRealWarheads)
	assert.Equal(t, 1, result.FalseNegatives)
	assert.Equal(t, 1, result.PenetratedRealWarheads)
	assert.Equal(t, 0, result.ShotsTotal)
	assert.Equal(t, 1, result.InventoryRemaining)
}

func TestRunTrial_WarheadFateConservation(t *testing.T) {
	// Across varied stochastic configs, every real warhead resolves to
	// exactly one of penetrated or intercepted, inventory never goes
	// negative, and counters stay non-negative.
	configs := []*SimulationConfig{
		{
			Missiles: 4, MIRVsPerMissile: 3, DecoysPerWarhead: 5,
			PDetect: 0.8, ClassifierTPR: 0.9, ClassifierFPR: 0.2,
			Doctrine: DoctrineBarrage, BarrageShots: 2,
			PKillWarhead: 0.7, PKillDecoy: 0.7, InventorySize: 30,
			PSystemUp: 0.9, DetectDegrade: 0.5, KillProbDegrade: 0.5,
		},
		{
			Missiles: 6, MIRVsPerMissile: 2, DecoysPerWarhead: 8,
			PDetect: 0.6, ClassifierTPR: 0.85, ClassifierFPR: 0.3,
			Doctrine: DoctrineShootLookShoot, SLSMaxShots: 3, SLSReengageProb: 0.7,
			PKillWarhead: 0.6, PKillDecoy: 0.5, InventorySize: 20,
			PSystemUp: 0.5, DetectDegrade: 0.4, KillProbDegrade: 0.6,
		},
	}

	for _, cfg := range configs {
		doctrine := mustDoctrine(t, cfg)
		for trial := 0; trial < 200; trial++ {
			result := RunTrial(cfg, doctrine, ForTrial(42, trial))

			require.Equal(t, result.RealWarheads,
				result.PenetratedRealWarheads+result.InterceptedRealWarheads,
				"trial %d: warhead fates must partition the salvo", trial)

			require.GreaterOrEqual(t, result.InventoryRemaining, 0)
			require.LessOrEqual(t, result.InventoryRemaining, cfg.InventorySize)
			require.Equal(t, result.ShotsTotal, result.ShotsAtWarheads+result.ShotsAtDecoys)
			require.Equal(t, cfg.InventorySize-result.ShotsTotal, result.InventoryRemaining,
				"every fired shot depletes the shared inventory")
			require.LessOrEqual(t, result.DetectedRealWarheads, result.DetectedObjects)
			require.Equal(t, result.DetectedRealWarheads, result.TruePositives+result.FalseNegatives,
				"every detected warhead is classified exactly once")
		}
	}
}
