// Package debug captures and renders processor state for the CLI and the
// terminal inspector.
package debug

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/valerio/jeebie-bitunit/jeebie/cpu"
)

// Snapshot is a copy of the state visible to bit operations.
type Snapshot struct {
	A, F, B, C, D, E, H, L uint8
	HL                     uint16
	MemHL                  uint8
	Cycles                 uint64
}

// Capture copies the registers, the byte at (HL) and the cycle counter.
func Capture(s *cpu.State) Snapshot {
	return Snapshot{
		A:      s.Get(cpu.A),
		F:      s.Get(cpu.F),
		B:      s.Get(cpu.B),
		C:      s.Get(cpu.C),
		D:      s.Get(cpu.D),
		E:      s.Get(cpu.E),
		H:      s.Get(cpu.H),
		L:      s.Get(cpu.L),
		HL:     s.HL(),
		MemHL:  s.ReadByte(cpu.MemoryHL),
		Cycles: s.Cycles(),
	}
}

// Lines renders the snapshot one register pair per line.
func (s Snapshot) Lines() []string {
	return []string{
		fmt.Sprintf("A: 0x%02X  F: 0x%02X  [%s]", s.A, s.F, cpu.FlagString(s.F)),
		fmt.Sprintf("B: 0x%02X  C: 0x%02X", s.B, s.C),
		fmt.Sprintf("D: 0x%02X  E: 0x%02X", s.D, s.E),
		fmt.Sprintf("H: 0x%02X  L: 0x%02X", s.H, s.L),
		fmt.Sprintf("(HL): [0x%04X] = 0x%02X", s.HL, s.MemHL),
		fmt.Sprintf("Cycles: %d", s.Cycles),
	}
}

func (s Snapshot) String() string {
	return strings.Join(s.Lines(), "\n")
}

// Diff lists the fields that differ between two snapshots, e.g. "A: 0x00 -> 0x80".
// Flag changes are rendered with FlagString. Cycles are not compared.
func Diff(before, after Snapshot) []string {
	var changes []string

	bytes := []struct {
		name     string
		old, new uint8
	}{
		{"A", before.A, after.A},
		{"B", before.B, after.B},
		{"C", before.C, after.C},
		{"D", before.D, after.D},
		{"E", before.E, after.E},
		{"H", before.H, after.H},
		{"L", before.L, after.L},
	}
	for _, b := range bytes {
		if b.old != b.new {
			changes = append(changes, fmt.Sprintf("%s: 0x%02X -> 0x%02X", b.name, b.old, b.new))
		}
	}

	if before.F != after.F {
		changes = append(changes, fmt.Sprintf("F: %s -> %s", cpu.FlagString(before.F), cpu.FlagString(after.F)))
	}

	if before.HL == after.HL && before.MemHL != after.MemHL {
		changes = append(changes, fmt.Sprintf("(0x%04X): 0x%02X -> 0x%02X", after.HL, before.MemHL, after.MemHL))
	}

	return changes
}

// SaveToDir writes the snapshot as text to a timestamped file in directory,
// or the working directory when directory is empty. Returns the file path.
func SaveToDir(s Snapshot, baseName, directory string) (string, error) {
	outputDir := directory
	if outputDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get current directory: %w", err)
		}
		outputDir = cwd
	}

	timestamp := time.Now().Format("20060102_150405")
	filePath := filepath.Join(outputDir, fmt.Sprintf("%s_%s.txt", baseName, timestamp))

	if err := os.WriteFile(filePath, []byte(s.String()+"\n"), 0o644); err != nil {
		return "", fmt.Errorf("failed to write snapshot %s: %w", filePath, err)
	}

	slog.Info("Snapshot saved", "path", filePath)
	return filePath, nil
}
