package sim

import "fmt"

// TargetKind is the true nature of a trackable object.
type TargetKind uint8

const (
	KindWarhead TargetKind = iota
	KindDecoy
)

func (k TargetKind) String() string {
	switch k {
	case KindWarhead:
		return "warhead"
	case KindDecoy:
		return "decoy"
	default:
		return "unknown"
	}
}

// Target is one trackable object in a salvo. ID is a track label for
// traceability only; it carries no semantic weight.
type Target struct {
	Kind TargetKind
	ID   string
}

// GenerateSalvo expands the configured missile loadout into a shuffled object
// population: missiles × MIRVs real warheads plus decoysPerWarhead decoys for
// each. The returned order is a uniformly random permutation — without it,
// warheads would always precede decoys and the shared inventory would be
// drained by one kind before the other is ever reached.
func GenerateSalvo(cfg *SimulationConfig, stream *Stream) (targets []Target, warheads, decoys int) {
	warheads = cfg.RealWarheads()
	decoys = cfg.DecoyCount()

	targets = make([]Target, 0, warheads+decoys)
	for i := 0; i < warheads; i++ {
		targets = append(targets, Target{Kind: KindWarhead, ID: fmt.Sprintf("RV-%04d", i+1)})
	}
	for i := 0; i < decoys; i++ {
		targets = append(targets, Target{Kind: KindDecoy, ID: fmt.Sprintf("DC-%04d", i+1)})
	}

	stream.Shuffle(len(targets), func(i, j int) {
		targets[i], targets[j] = targets[j], targets[i]
	})
	return targets, warheads, decoys
}
