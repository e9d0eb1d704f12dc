package sim

// TrialDegradation holds the operative probabilities for one trial after the
// common-mode reliability draw. It is computed exactly once per trial, before
// any object is processed, and shared by every object in that trial: a down
// system is a systemic fault (sensor or C2 disruption), not per-object noise.
type TrialDegradation struct {
	SystemUp     bool
	PDetect      float64
	PKillWarhead float64
	PKillDecoy   float64
}

// DrawDegradation performs the single per-trial Bernoulli(pSystemUp) draw.
// When the system is down, each operative probability is the configured value
// scaled by its degrade factor and reclamped.
func DrawDegradation(cfg *SimulationConfig, stream *Stream) TrialDegradation {
	up := stream.Bernoulli(cfg.PSystemUp)
	if up {
		return TrialDegradation{
			SystemUp:     true,
			PDetect:      cfg.PDetect,
			PKillWarhead: cfg.PKillWarhead,
			PKillDecoy:   cfg.PKillDecoy,
		}
	}
	return TrialDegradation{
		SystemUp:     false,
		PDetect:      Clamp01(cfg.PDetect * cfg.DetectDegrade),
		PKillWarhead: Clamp01(cfg.PKillWarhead * cfg.KillProbDegrade),
		PKillDecoy:   Clamp01(cfg.PKillDecoy * cfg.KillProbDegrade),
	}
}

// KillProbability returns the operative per-shot kill probability for the
// target's TRUE kind. The defense does not get better accuracy from its own
// possibly-wrong classification.
func (d TrialDegradation) KillProbability(kind TargetKind) float64 {
	if kind == KindWarhead {
		return d.PKillWarhead
	}
	return d.PKillDecoy
}
