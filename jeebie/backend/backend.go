package backend

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/valerio/jeebie-bitunit/jeebie/cpu"
	"github.com/valerio/jeebie-bitunit/jeebie/debug"
	"github.com/valerio/jeebie-bitunit/jeebie/memory"
)

// Backend represents a front end driving a Session (batch trace, terminal UI).
type Backend interface {
	// Init configures the backend. This is a required step before calling Run.
	Init(config Config) error

	// Run drives the session until the backend is done with it.
	Run(session *Session) error

	// Cleanup resources when shutting down
	Cleanup() error
}

// Config holds the initial processor state and the front end settings.
type Config struct {
	// Registers holds initial values, registers not present start at 0.
	Registers map[cpu.Register]uint8
	// MemHL is written at the address held by HL once registers are set.
	MemHL uint8

	LogLevel    slog.Level
	SnapshotDir string // Directory for state snapshots, working directory if empty
}

// ErrUnsupportedOpcode indicates an opcode outside the bit operation block.
var ErrUnsupportedOpcode = errors.New("unsupported opcode")

var _ cpu.Memory = (*memory.RAM)(nil)

// Step records one executed instruction.
type Step struct {
	Opcode      uint8
	Instruction cpu.Instruction
	Cycles      int
	Before      debug.Snapshot
	After       debug.Snapshot
}

// Session owns a processor state over flat RAM and the history of what ran on it.
type Session struct {
	state   *cpu.State
	ram     *memory.RAM
	history []Step
}

// NewSession builds the processor state described by config.
func NewSession(config Config) *Session {
	ram := memory.New()
	state := cpu.NewState(ram)

	for reg, value := range config.Registers {
		state.Set(reg, value)
	}
	ram.Write(state.HL(), config.MemHL)

	slog.Debug("Session initialized", "hl", fmt.Sprintf("0x%04X", state.HL()), "flags", cpu.FlagString(state.Get(cpu.F)))

	return &Session{state: state, ram: ram}
}

// State returns the processor state the session executes on.
func (s *Session) State() *cpu.State {
	return s.state
}

// Memory returns the RAM behind (HL).
func (s *Session) Memory() *memory.RAM {
	return s.ram
}

// Exec runs the CB prefixed opcode and records it.
func (s *Session) Exec(opcode uint8) (Step, error) {
	inst, ok := cpu.Decode(opcode)
	if !ok {
		return Step{}, fmt.Errorf("%w: 0xCB%02X", ErrUnsupportedOpcode, opcode)
	}

	step := Step{Opcode: opcode, Instruction: inst, Before: debug.Capture(s.state)}
	step.Cycles = s.state.Exec(opcode)
	step.After = debug.Capture(s.state)
	s.history = append(s.history, step)

	slog.Debug("Executed", "opcode", fmt.Sprintf("0xCB%02X", opcode), "instruction", inst.String(), "cycles", step.Cycles)
	return step, nil
}

// Apply encodes and runs a bit operation.
func (s *Session) Apply(op cpu.Op, index uint8, target cpu.Target) (Step, error) {
	if index > 7 {
		return Step{}, fmt.Errorf("%w: bit %d", ErrUnsupportedOpcode, index)
	}
	if !isOperand(target) {
		return Step{}, fmt.Errorf("%w: operand %s", ErrUnsupportedOpcode, target)
	}
	return s.Exec(cpu.Encode(cpu.Instruction{Op: op, Bit: index, Target: target}))
}

func isOperand(target cpu.Target) bool {
	for _, t := range cpu.Operands() {
		if t == target {
			return true
		}
	}
	return false
}

// History returns the executed steps, oldest first.
func (s *Session) History() []Step {
	return s.history
}

// Last returns the most recent step, if any.
func (s *Session) Last() (Step, bool) {
	if len(s.history) == 0 {
		return Step{}, false
	}
	return s.history[len(s.history)-1], true
}
