package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli"
	"github.com/valerio/jeebie-bitunit/jeebie/backend"
	"github.com/valerio/jeebie-bitunit/jeebie/backend/headless"
	"github.com/valerio/jeebie-bitunit/jeebie/cpu"
)

// ErrValueOutOfRange indicates a register or memory flag above 0xFF.
var ErrValueOutOfRange = errors.New("value out of range")

var registerFlags = []struct {
	name string
	reg  cpu.Register
}{
	{"a", cpu.A},
	{"f", cpu.F},
	{"b", cpu.B},
	{"c", cpu.C},
	{"d", cpu.D},
	{"e", cpu.E},
	{"h", cpu.H},
	{"l", cpu.L},
}

func stateFlags() []cli.Flag {
	flags := make([]cli.Flag, 0, len(registerFlags)+2)
	for _, r := range registerFlags {
		flags = append(flags, cli.UintFlag{
			Name:  r.name,
			Usage: fmt.Sprintf("Initial value of register %s", r.reg),
		})
	}
	return append(flags,
		cli.UintFlag{
			Name:  "mem",
			Usage: "Initial byte at the address held by HL",
		},
		cli.StringFlag{
			Name:  "snapshot-dir",
			Usage: "Directory to save state snapshots (default: working directory)",
		},
	)
}

func configFromContext(c *cli.Context) (backend.Config, error) {
	values := make(map[string]uint, len(registerFlags)+1)
	for _, r := range registerFlags {
		values[r.name] = c.Uint(r.name)
	}
	values["mem"] = c.Uint("mem")

	return buildConfig(values, c.GlobalBool("debug"), c.String("snapshot-dir"))
}

// buildConfig validates flag values and converts them to a backend config.
func buildConfig(values map[string]uint, debug bool, snapshotDir string) (backend.Config, error) {
	config := backend.Config{
		Registers:   make(map[cpu.Register]uint8, len(registerFlags)),
		LogLevel:    slog.LevelInfo,
		SnapshotDir: snapshotDir,
	}
	if debug {
		config.LogLevel = slog.LevelDebug
	}

	for _, r := range registerFlags {
		v, err := byteValue(r.name, values[r.name])
		if err != nil {
			return backend.Config{}, err
		}
		config.Registers[r.reg] = v
	}

	mem, err := byteValue("mem", values["mem"])
	if err != nil {
		return backend.Config{}, err
	}
	config.MemHL = mem

	return config, nil
}

func byteValue(name string, v uint) (uint8, error) {
	if v > 0xFF {
		return 0, fmt.Errorf("%w: --%s=%d", ErrValueOutOfRange, name, v)
	}
	return uint8(v), nil
}

// readProgram loads instructions from path, if set, followed by args.
func readProgram(path string, args []string) ([]uint8, error) {
	var program []uint8

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open program: %w", err)
		}
		defer f.Close()

		program, err = headless.LoadProgram(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	fromArgs, err := headless.ParseProgram(args)
	if err != nil {
		return nil, err
	}
	return append(program, fromArgs...), nil
}
