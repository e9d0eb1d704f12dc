package sim

import "fmt"

// EngagementOutcome is the result of resolving one engaged track.
type EngagementOutcome struct {
	Killed             bool
	ShotsFired         int // shots charged against inventory (see doctrine rules)
	InventoryRemaining int
}

// EngagementDoctrine resolves a single track's shot sequence given a per-shot
// kill probability and the inventory remaining at engagement time. Doctrine
// values are stateless and safe to share across parallel trials; all mutable
// state lives in the arguments and the returned outcome.
type EngagementDoctrine interface {
	Resolve(pKill float64, inventory int, stream *Stream) EngagementOutcome
}

// NewEngagementDoctrine builds the doctrine selected by the configuration.
func NewEngagementDoctrine(cfg *SimulationConfig) (EngagementDoctrine, error) {
	switch cfg.Doctrine {
	case DoctrineBarrage:
		return BarrageDoctrine{ShotsPerTarget: cfg.BarrageShots}, nil
	case DoctrineShootLookShoot:
		return ShootLookShootDoctrine{
			MaxShotsPerTarget: cfg.SLSMaxShots,
			ReengageProb:      cfg.SLSReengageProb,
		}, nil
	default:
		return nil, fmt.Errorf("unknown doctrine mode %q", cfg.Doctrine)
	}
}

// BarrageDoctrine commits min(ShotsPerTarget, inventory) interceptors to the
// track as one atomic salvo. The full allocation is charged against inventory
// even when an early shot kills: the salvo is committed, not metered.
type BarrageDoctrine struct {
	ShotsPerTarget int
}

func (d BarrageDoctrine) Resolve(pKill float64, inventory int, stream *Stream) EngagementOutcome {
	alloc := min(d.ShotsPerTarget, inventory)
	if alloc <= 0 {
		return EngagementOutcome{Killed: false, ShotsFired: 0, InventoryRemaining: inventory}
	}

	killed := false
	for i := 0; i < alloc; i++ {
		if stream.Bernoulli(pKill) {
			killed = true
			break
		}
	}
	return EngagementOutcome{
		Killed:             killed,
		ShotsFired:         alloc,
		InventoryRemaining: inventory - alloc,
	}
}

// ShootLookShootDoctrine fires one interceptor at a time, charging inventory
// per shot. After each miss a Bernoulli(ReengageProb) draw decides whether
// another shot is feasible (a geometry/time-to-go proxy); an infeasible
// re-engagement ends the sequence early with the track surviving.
type ShootLookShootDoctrine struct {
	MaxShotsPerTarget int
	ReengageProb      float64
}

func (d ShootLookShootDoctrine) Resolve(pKill float64, inventory int, stream *Stream) EngagementOutcome {
	limit := min(d.MaxShotsPerTarget, inventory)

	shots := 0
	killed := false
	for shots < limit {
		shots++
		if stream.Bernoulli(pKill) {
			killed = true
			break
		}
		if !stream.Bernoulli(d.ReengageProb) {
			break
		}
	}
	return EngagementOutcome{
		Killed:             killed,
		ShotsFired:         shots,
		InventoryRemaining: inventory - shots,
	}
}
