package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	sim "github.com/salvo-sim/salvo-sim/sim"
)

// ExportSequences writes the raw per-trial penetrated-count and total-shots
// sequences to <prefix>_penetrated.txt and <prefix>_shots.txt for downstream
// consumers (external histogram or plotting tools).
func ExportSequences(s *sim.Summary, prefix string) error {
	if err := writeSequence(s.Penetrated, prefix+"_penetrated.txt"); err != nil {
		return err
	}
	return writeSequence(s.ShotsTotal, prefix+"_shots.txt")
}

// writeSequence saves one integer sequence to a comma-separated file.
func writeSequence(data []int, fileName string) error {
	file, err := os.OpenFile(fileName, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("creating file %s: %w", fileName, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			logrus.Errorf("Error closing file %s: %v", fileName, closeErr)
		}
	}()

	writer := bufio.NewWriter(file)
	for i, v := range data {
		if i > 0 {
			if _, err := fmt.Fprint(writer, ", "); err != nil {
				return fmt.Errorf("writing to %s: %w", fileName, err)
			}
		}
		if _, err := fmt.Fprint(writer, v); err != nil {
			return fmt.Errorf("writing to %s: %w", fileName, err)
		}
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("flushing %s: %w", fileName, err)
	}

	logrus.Debugf("Successfully wrote %d values to '%s'", len(data), fileName)
	return nil
}
