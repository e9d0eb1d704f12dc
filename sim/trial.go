package sim

import (
	"github.com/sirupsen/logrus"
)

// TrialResult aggregates the diagnostic counters for one trial.
//
// Invariant: PenetratedRealWarheads + InterceptedRealWarheads == RealWarheads.
// Every real warhead resolves to exactly one fate: undetected, detected but
// misclassified, or engaged and {killed | missed}.
type TrialResult struct {
	RealWarheads            int
	PenetratedRealWarheads  int
	InterceptedRealWarheads int

	DetectedObjects      int
	DetectedRealWarheads int

	TruePositives  int // true warhead classified as warhead-track
	FalseNegatives int // true warhead classified as non-threat
	FalsePositives int // true decoy classified as warhead-track

	ShotsTotal      int
	ShotsAtWarheads int
	ShotsAtDecoys   int

	InventoryRemaining int
	SystemUp           bool
}

// RunTrial executes one full trial: generate the salvo, draw the common-mode
// degradation, then walk the shuffled population in strict order, threading
// the single inventory counter through every engagement. Each object's
// engagement depends on the inventory left by all objects before it — that
// sequential dependency is the central ordering invariant of the simulation.
func RunTrial(cfg *SimulationConfig, doctrine EngagementDoctrine, stream *Stream) TrialResult {
	targets, warheads, _ := GenerateSalvo(cfg, stream)
	deg := DrawDegradation(cfg, stream)
	sensor := Sensor{
		PDetect: deg.PDetect,
		TPR:     cfg.ClassifierTPR,
		FPR:     cfg.ClassifierFPR,
	}

	result := TrialResult{
		RealWarheads: warheads,
		SystemUp:     deg.SystemUp,
	}
	inventory := cfg.InventorySize

	for _, tgt := range targets {
		assessment := sensor.Assess(tgt, stream)

		if assessment == AssessUndetected {
			// Undetected decoys vanish from the diagnostics; only
			// real-warhead penetration is the scored outcome.
			if tgt.Kind == KindWarhead {
				result.PenetratedRealWarheads++
			}
			continue
		}

		result.DetectedObjects++
		if tgt.Kind == KindWarhead {
			result.DetectedRealWarheads++
		}

		if assessment == AssessRejected {
			// Correct rejections of decoys are not a named diagnostic.
			if tgt.Kind == KindWarhead {
				result.FalseNegatives++
				result.PenetratedRealWarheads++
			}
			continue
		}

		// Classified as warhead-track.
		if tgt.Kind == KindWarhead {
			result.TruePositives++
		} else {
			result.FalsePositives++
		}

		if inventory <= 0 {
			// Threat recognized, nothing left to shoot.
			if tgt.Kind == KindWarhead {
				result.PenetratedRealWarheads++
			}
			continue
		}

		outcome := doctrine.Resolve(deg.KillProbability(tgt.Kind), inventory, stream)
		inventory = outcome.InventoryRemaining

		result.ShotsTotal += outcome.ShotsFired
		if tgt.Kind == KindWarhead {
			result.ShotsAtWarheads += outcome.ShotsFired
			if outcome.Killed {
				result.InterceptedRealWarheads++
			} else {
				result.PenetratedRealWarheads++
			}
		} else {
			result.ShotsAtDecoys += outcome.ShotsFired
		}

		logrus.Tracef("engaged %s: killed=%v shots=%d inventory=%d",
			tgt.ID, outcome.Killed, outcome.ShotsFired, inventory)
	}

	result.InventoryRemaining = inventory
	return result
}
