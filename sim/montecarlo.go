package sim

import (
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Summary is the distributional output of a Monte Carlo run: mean of every
// trial counter, percentiles of the headline penetrated-warhead count, and
// the raw per-trial sequences for downstream histogram rendering.
type Summary struct {
	RunID        string
	Trials       int
	RealWarheads int // deterministic given configuration, identical across trials

	MeanPenetrated float64
	PenetratedP10  float64
	PenetratedP50  float64
	PenetratedP90  float64
	// PenetrationRate is mean penetrated over the real-warhead count,
	// defined as 0 when the configuration produces no real warheads.
	PenetrationRate float64

	MeanIntercepted          float64
	MeanDetectedObjects      float64
	MeanDetectedRealWarheads float64
	MeanTruePositives        float64
	MeanFalseNegatives       float64
	MeanFalsePositives       float64
	MeanShotsTotal           float64
	MeanShotsAtWarheads      float64
	MeanShotsAtDecoys        float64
	MeanInventoryRemaining   float64
	MeanSystemUp             float64 // fraction of trials with the system up

	// Raw per-trial sequences, trial-ordered.
	Penetrated []int
	ShotsTotal []int
}

// Run executes cfg.Trials independent trials and aggregates their results.
//
// Workers <= 1 runs sequentially. Higher values spread trials across a worker
// pool; each trial draws from its own Stream derived from the master seed and
// writes into its own result slot, so the summary is bit-identical at any
// worker count. Within a trial everything stays on one goroutine — the
// inventory counter is owned by that trial alone.
func Run(cfg *SimulationConfig, seed int64, workers int) (*Summary, error) {
	doctrine, err := NewEngagementDoctrine(cfg)
	if err != nil {
		return nil, err
	}

	results := make([]TrialResult, cfg.Trials)
	if workers <= 1 {
		for i := range results {
			results[i] = RunTrial(cfg, doctrine, ForTrial(seed, i))
		}
	} else {
		runTrialsParallel(cfg, doctrine, seed, workers, results)
	}

	return summarize(cfg, results), nil
}

// runTrialsParallel fans trial indices out to a fixed worker pool. Results
// land in per-trial slots, never a shared accumulator, so no merge step can
// interleave partial trials.
func runTrialsParallel(cfg *SimulationConfig, doctrine EngagementDoctrine, seed int64, workers int, results []TrialResult) {
	if workers > len(results) {
		workers = len(results)
	}

	trialCh := make(chan int, len(results))
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range trialCh {
				results[i] = RunTrial(cfg, doctrine, ForTrial(seed, i))
			}
		}()
	}

	for i := range results {
		trialCh <- i
	}
	close(trialCh)
	wg.Wait()
}

func summarize(cfg *SimulationConfig, results []TrialResult) *Summary {
	n := len(results)
	penetrated := make([]int, n)
	intercepted := make([]int, n)
	detected := make([]int, n)
	detectedRV := make([]int, n)
	truePos := make([]int, n)
	falseNeg := make([]int, n)
	falsePos := make([]int, n)
	shotsTotal := make([]int, n)
	shotsRV := make([]int, n)
	shotsDecoy := make([]int, n)
	inventory := make([]int, n)
	systemUp := make([]int, n)

	for i, r := range results {
		penetrated[i] = r.PenetratedRealWarheads
		intercepted[i] = r.InterceptedRealWarheads
		detected[i] = r.DetectedObjects
		detectedRV[i] = r.DetectedRealWarheads
		truePos[i] = r.TruePositives
		falseNeg[i] = r.FalseNegatives
		falsePos[i] = r.FalsePositives
		shotsTotal[i] = r.ShotsTotal
		shotsRV[i] = r.ShotsAtWarheads
		shotsDecoy[i] = r.ShotsAtDecoys
		inventory[i] = r.InventoryRemaining
		if r.SystemUp {
			systemUp[i] = 1
		}
	}

	s := &Summary{
		RunID:        uuid.NewString(),
		Trials:       n,
		RealWarheads: cfg.RealWarheads(),

		MeanPenetrated: Mean(penetrated),
		PenetratedP10:  Percentile(penetrated, 10),
		PenetratedP50:  Percentile(penetrated, 50),
		PenetratedP90:  Percentile(penetrated, 90),

		MeanIntercepted:          Mean(intercepted),
		MeanDetectedObjects:      Mean(detected),
		MeanDetectedRealWarheads: Mean(detectedRV),
		MeanTruePositives:        Mean(truePos),
		MeanFalseNegatives:       Mean(falseNeg),
		MeanFalsePositives:       Mean(falsePos),
		MeanShotsTotal:           Mean(shotsTotal),
		MeanShotsAtWarheads:      Mean(shotsRV),
		MeanShotsAtDecoys:        Mean(shotsDecoy),
		MeanInventoryRemaining:   Mean(inventory),
		MeanSystemUp:             Mean(systemUp),

		Penetrated: penetrated,
		ShotsTotal: shotsTotal,
	}

	if s.RealWarheads > 0 {
		s.PenetrationRate = s.MeanPenetrated / float64(s.RealWarheads)
	}

	logrus.Debugf("run %s: %d trials, mean penetrated %.3f of %d warheads",
		s.RunID, s.Trials, s.MeanPenetrated, s.RealWarheads)
	return s
}
