package cmd

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/salvo-sim/salvo-sim/sim"
)

var (
	// CLI flags for run control
	seed         int64  // Seed for all random draws
	trials       int    // Number of Monte Carlo trials
	workers      int    // Worker goroutines for parallel trials (1 = sequential)
	logLevel     string // Log verbosity level
	bins         int    // Histogram bin count for the text renderer
	outputPrefix string // Prefix for raw per-trial sequence export files
	scenarioFile string // YAML file of named scenario presets
	scenarioName string // Preset name to load from the scenario file

	// CLI flags for the attacking salvo
	missiles         int // Attacking missile count
	mirvsPerMissile  int // Real warheads per missile
	decoysPerWarhead int // Decoys deployed per real warhead

	// CLI flags for the defense
	pDetect       float64 // Per-object detection probability
	classifierTPR float64 // Classifier true-positive rate
	classifierFPR float64 // Classifier false-positive rate
	doctrine      string  // Engagement doctrine (barrage, shoot-look-shoot)
	barrageShots  int     // Interceptors per barrage salvo
	slsMaxShots   int     // Shot cap per track in shoot-look-shoot
	slsReengage   float64 // Re-engagement feasibility after a miss
	pkWarhead     float64 // Per-shot kill probability vs true warhead
	pkDecoy       float64 // Per-shot kill probability vs true decoy
	inventory     int     // Interceptor inventory per trial

	// CLI flags for common-mode reliability
	pSystemUp     float64 // Probability the system is up for a trial
	detectDegrade float64 // Detection multiplier when the system is down
	killDegrade   float64 // Kill-probability multiplier when the system is down
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "salvo-sim",
	Short: "Monte Carlo simulator for layered missile-defense engagements",
}

// runCmd executes the simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the engagement simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		// Presets override only the fields they name; everything else
		// keeps its flag value.
		cfg := configFromFlags()
		if scenarioFile != "" {
			if err := LoadScenario(scenarioFile, scenarioName, cfg); err != nil {
				logrus.Fatalf("unable to load scenario: %v", err)
			}
		}
		cfg.Normalize()

		logrus.Infof("Starting simulation: %d trials, %d warheads + %d decoys per salvo, doctrine=%s, inventory=%d",
			cfg.Trials, cfg.RealWarheads(), cfg.DecoyCount(), cfg.Doctrine, cfg.InventorySize)

		startTime := time.Now()

		summary, err := sim.Run(cfg, seed, workers)
		if err != nil {
			logrus.Fatalf("simulation failed: %v", err)
		}

		PrintSummary(os.Stdout, summary, bins)
		logrus.Infof("Run %s complete in %v", summary.RunID, time.Since(startTime))

		if outputPrefix != "" {
			if err := ExportSequences(summary, outputPrefix); err != nil {
				logrus.Fatalf("unable to export sequences: %v", err)
			}
		}
	},
}

// configFromFlags assembles a SimulationConfig from the CLI flag values.
func configFromFlags() *sim.SimulationConfig {
	return &sim.SimulationConfig{
		Missiles:         missiles,
		MIRVsPerMissile:  mirvsPerMissile,
		DecoysPerWarhead: decoysPerWarhead,
		PDetect:          pDetect,
		ClassifierTPR:    classifierTPR,
		ClassifierFPR:    classifierFPR,
		Doctrine:         sim.DoctrineMode(doctrine),
		BarrageShots:     barrageShots,
		SLSMaxShots:      slsMaxShots,
		SLSReengageProb:  slsReengage,
		PKillWarhead:     pkWarhead,
		PKillDecoy:       pkDecoy,
		InventorySize:    inventory,
		Trials:           trials,
		PSystemUp:        pSystemUp,
		DetectDegrade:    detectDegrade,
		KillProbDegrade:  killDegrade,
	}
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for all random draws")
	runCmd.Flags().IntVar(&trials, "trials", 1000, "Number of Monte Carlo trials")
	runCmd.Flags().IntVar(&workers, "workers", 1, "Worker goroutines for parallel trials")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().IntVar(&bins, "bins", 20, "Histogram bin count for the text report")
	runCmd.Flags().StringVar(&outputPrefix, "output-prefix", "", "If set, export raw per-trial sequences to <prefix>_penetrated.txt and <prefix>_shots.txt")
	runCmd.Flags().StringVar(&scenarioFile, "scenario-file", "", "YAML file of named scenario presets")
	runCmd.Flags().StringVar(&scenarioName, "scenario", "baseline", "Preset name to load from the scenario file")

	// Salvo configs
	runCmd.Flags().IntVar(&missiles, "missiles", 4, "Attacking missile count")
	runCmd.Flags().IntVar(&mirvsPerMissile, "mirvs-per-missile", 3, "Real warheads (MIRVs) per missile")
	runCmd.Flags().IntVar(&decoysPerWarhead, "decoys-per-warhead", 5, "Decoys deployed per real warhead")

	// Defense configs
	runCmd.Flags().Float64Var(&pDetect, "p-detect", 0.9, "Per-object detection probability")
	runCmd.Flags().Float64Var(&classifierTPR, "classifier-tpr", 0.9, "Classifier true-positive rate")
	runCmd.Flags().Float64Var(&classifierFPR, "classifier-fpr", 0.15, "Classifier false-positive rate")
	runCmd.Flags().StringVar(&doctrine, "doctrine", "barrage", "Engagement doctrine (barrage, shoot-look-shoot)")
	runCmd.Flags().IntVar(&barrageShots, "barrage-shots", 2, "Interceptors committed per barrage salvo")
	runCmd.Flags().IntVar(&slsMaxShots, "sls-max-shots", 3, "Shot cap per track in shoot-look-shoot")
	runCmd.Flags().Float64Var(&slsReengage, "sls-reengage-prob", 0.7, "Re-engagement feasibility after a miss")
	runCmd.Flags().Float64Var(&pkWarhead, "pk-warhead", 0.75, "Per-shot kill probability vs a true warhead")
	runCmd.Flags().Float64Var(&pkDecoy, "pk-decoy", 0.75, "Per-shot kill probability vs a true decoy")
	runCmd.Flags().IntVar(&inventory, "inventory", 48, "Interceptor inventory per trial")

	// Reliability configs
	runCmd.Flags().Float64Var(&pSystemUp, "p-system-up", 0.95, "Probability the system is fully up for a trial")
	runCmd.Flags().Float64Var(&detectDegrade, "detect-degrade", 0.5, "Detection multiplier when the system is down")
	runCmd.Flags().Float64Var(&killDegrade, "kill-degrade", 0.5, "Kill-probability multiplier when the system is down")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
