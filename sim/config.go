package sim

// DoctrineMode selects the shot-allocation policy for engaged tracks.
type DoctrineMode string

const (
	// DoctrineBarrage commits a full salvo to each engaged track at once.
	DoctrineBarrage DoctrineMode = "barrage"
	// DoctrineShootLookShoot fires one interceptor at a time with a
	// feasibility-gated re-engagement decision after each miss.
	DoctrineShootLookShoot DoctrineMode = "shoot-look-shoot"
)

// SimulationConfig is the immutable engagement configuration for one run.
// Callers normalize it once (Normalize) before handing it to the engine; the
// engine itself performs no validation beyond probability clamping.
type SimulationConfig struct {
	Missiles         int `yaml:"missiles"`           // attacking missiles
	MIRVsPerMissile  int `yaml:"mirvs_per_missile"`  // real warheads per missile (>= 1)
	DecoysPerWarhead int `yaml:"decoys_per_warhead"` // decoys deployed per real warhead

	PDetect       float64 `yaml:"p_detect"`       // per-object detection probability
	ClassifierTPR float64 `yaml:"classifier_tpr"` // P(classified as warhead-track | true warhead)
	ClassifierFPR float64 `yaml:"classifier_fpr"` // P(classified as warhead-track | true decoy)

	Doctrine        DoctrineMode `yaml:"doctrine"`
	BarrageShots    int          `yaml:"barrage_shots"`     // interceptors per barrage salvo
	SLSMaxShots     int          `yaml:"sls_max_shots"`     // shot cap per track in shoot-look-shoot
	SLSReengageProb float64      `yaml:"sls_reengage_prob"` // feasibility of another shot after a miss
	PKillWarhead    float64      `yaml:"pk_warhead"`        // per-shot kill probability vs true warhead
	PKillDecoy      float64      `yaml:"pk_decoy"`          // per-shot kill probability vs true decoy
	InventorySize   int          `yaml:"inventory"`         // interceptors shared by one trial
	Trials          int          `yaml:"trials"`            // Monte Carlo trial count (>= 1)
	PSystemUp       float64      `yaml:"p_system_up"`       // per-trial common-mode reliability
	DetectDegrade   float64      `yaml:"detect_degrade"`    // detection multiplier when system is down
	KillProbDegrade float64      `yaml:"kill_degrade"`      // kill-probability multiplier when system is down
}

// RealWarheads is the deterministic real-warhead count for this
// configuration, identical across every trial of a run.
func (c *SimulationConfig) RealWarheads() int {
	return c.Missiles * c.MIRVsPerMissile
}

// DecoyCount is the deterministic decoy count for this configuration.
func (c *SimulationConfig) DecoyCount() int {
	return c.RealWarheads() * c.DecoysPerWarhead
}

// Normalize clamps every probability into [0,1] and floors counts at their
// documented minimums. Called at the boundary, once, before the engine runs.
func (c *SimulationConfig) Normalize() {
	if c.Missiles < 0 {
		c.Missiles = 0
	}
	if c.MIRVsPerMissile < 1 {
		c.MIRVsPerMissile = 1
	}
	if c.DecoysPerWarhead < 0 {
		c.DecoysPerWarhead = 0
	}
	if c.BarrageShots < 0 {
		c.BarrageShots = 0
	}
	if c.SLSMaxShots < 0 {
		c.SLSMaxShots = 0
	}
	if c.InventorySize < 0 {
		c.InventorySize = 0
	}
	if c.Trials < 1 {
		c.Trials = 1
	}

	c.PDetect = Clamp01(c.PDetect)
	c.ClassifierTPR = Clamp01(c.ClassifierTPR)
	c.ClassifierFPR = Clamp01(c.ClassifierFPR)
	c.SLSReengageProb = Clamp01(c.SLSReengageProb)
	c.PKillWarhead = Clamp01(c.PKillWarhead)
	c.PKillDecoy = Clamp01(c.PKillDecoy)
	c.PSystemUp = Clamp01(c.PSystemUp)
	c.DetectDegrade = Clamp01(c.DetectDegrade)
	c.KillProbDegrade = Clamp01(c.KillProbDegrade)
}
