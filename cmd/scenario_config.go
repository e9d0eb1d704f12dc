package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	sim "github.com/salvo-sim/salvo-sim/sim"
)

// ScenarioConfig maps preset names to engagement configurations,
// e.g. baseline, saturation, degraded. Presets are kept as raw YAML nodes so
// they can be decoded onto an existing configuration: only the keys a preset
// names are overridden.
type ScenarioConfig struct {
	Scenarios map[string]yaml.Node `yaml:"scenarios"`
}

// LoadScenario reads a YAML scenario file and applies the named preset on top
// of cfg. Fields the preset leaves unset keep their current (flag-supplied)
// values.
func LoadScenario(scenarioFilePath string, name string, cfg *sim.SimulationConfig) error {
	data, err := os.ReadFile(scenarioFilePath)
	if err != nil {
		return fmt.Errorf("reading scenario file: %w", err)
	}

	var presets ScenarioConfig
	if err := yaml.Unmarshal(data, &presets); err != nil {
		return fmt.Errorf("parsing scenario file %s: %w", scenarioFilePath, err)
	}

	scenario, ok := presets.Scenarios[name]
	if !ok {
		return fmt.Errorf("scenario %q not found in %s", name, scenarioFilePath)
	}
	if err := scenario.Decode(cfg); err != nil {
		return fmt.Errorf("decoding scenario %q: %w", name, err)
	}

	logrus.Infof("Using preset scenario %v", name)
	return nil
}
