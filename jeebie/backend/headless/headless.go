// Package headless runs a fixed program of bit operations and writes a
// trace, for scripting and tests.
package headless

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/valerio/jeebie-bitunit/jeebie/backend"
	"github.com/valerio/jeebie-bitunit/jeebie/debug"
	"github.com/valerio/jeebie-bitunit/jeebie/disasm"
)

// ErrEmptyProgram indicates a program with no instructions.
var ErrEmptyProgram = errors.New("program has no instructions")

// Backend implements the Backend interface for batch execution.
type Backend struct {
	config  backend.Config
	program []uint8
	out     io.Writer
}

func New(program []uint8, out io.Writer) *Backend {
	return &Backend{
		program: program,
		out:     out,
	}
}

func (h *Backend) Init(config backend.Config) error {
	if len(h.program) == 0 {
		return ErrEmptyProgram
	}
	h.config = config

	slog.Info("Running headless mode", "instructions", len(h.program))
	return nil
}

// Run executes the program and writes one trace line per instruction,
// followed by the final state.
func (h *Backend) Run(session *backend.Session) error {
	for i, opcode := range h.program {
		step, err := session.Exec(opcode)
		if err != nil {
			return fmt.Errorf("instruction %d: %w", i+1, err)
		}

		changes := debug.Diff(step.Before, step.After)
		if len(changes) == 0 {
			changes = []string{"no change"}
		}
		if _, err := fmt.Fprintf(h.out, "CB%02X  %-12s %d  %s\n",
			step.Opcode, step.Instruction, step.Cycles, strings.Join(changes, ", ")); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(h.out, "\n%s\n", debug.Capture(session.State()))
	return err
}

func (h *Backend) Cleanup() error {
	slog.Debug("Headless execution completed", "instructions", len(h.program))
	return nil
}

// ParseProgram parses one instruction per entry, see disasm.Parse.
// Blank entries and text after ';' or '#' are ignored.
func ParseProgram(lines []string) ([]uint8, error) {
	var program []uint8
	for i, line := range lines {
		if cut := strings.IndexAny(line, ";#"); cut >= 0 {
			line = line[:cut]
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		opcode, err := disasm.Parse(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		program = append(program, opcode)
	}
	return program, nil
}

// LoadProgram reads a program with one instruction per line.
func LoadProgram(r io.Reader) ([]uint8, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read program: %w", err)
	}
	return ParseProgram(lines)
}
