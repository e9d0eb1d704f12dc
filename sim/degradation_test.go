package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDrawDegradation_SystemUp(t *testing.T) {
	cfg := &SimulationConfig{
		PDetect:         0.9,
		PKillWarhead:    0.8,
		PKillDecoy:      0.7,
		PSystemUp:       1.0,
		DetectDegrade:   0.5,
		KillProbDegrade: 0.25,
	}

	for trial := 0; trial < 20; trial++ {
		deg := DrawDegradation(cfg, ForTrial(42, trial))
		assert.True(t, deg.SystemUp)
		assert.Equal(t, 0.9, deg.PDetect)
		assert.Equal(t, 0.8, deg.PKillWarhead)
		assert.Equal(t, 0.7, deg.PKillDecoy)
	}
}

func TestDrawDegradation_SystemDown(t *testing.T) {
	cfg := &SimulationConfig{
		PDetect:         0.9,
		PKillWarhead:    0.8,
		PKillDecoy:      0.7,
		PSystemUp:       0.0,
		DetectDegrade:   0.5,
		KillProbDegrade: 0.25,
	}

	deg := DrawDegradation(cfg, NewStream(1))
	assert.False(t, deg.SystemUp)
	assert.InDelta(t, 0.45, deg.PDetect, 1e-12)
	assert.InDelta(t, 0.2, deg.PKillWarhead, 1e-12)
	assert.InDelta(t, 0.175, deg.PKillDecoy, 1e-12)
}

func TestDrawDegradation_ExactlyOneDrawPerTrial(t *testing.T) {
	// With pSystemUp strictly between 0 and 1, the degradation consumes
	// exactly one uniform draw: the next draw from the same stream must
	// equal the second draw of a fresh identically-seeded stream.
	cfg := &SimulationConfig{PSystemUp: 0.5}

	stream := NewStream(42)
	DrawDegradation(cfg, stream)
	next := stream.Uniform()

	ref := NewStream(42)
	ref.Uniform()
	want := ref.Uniform()

	assert.Equal(t, want, next)
}

func TestKillProbability_ByTrueKind(t *testing.T) {
	deg := TrialDegradation{PKillWarhead: 0.8, PKillDecoy: 0.3}
	assert.Equal(t, 0.8, deg.KillProbability(KindWarhead))
	assert.Equal(t, 0.3, deg.KillProbability(KindDecoy))
}
