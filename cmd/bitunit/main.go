package main

import (
	"log/slog"
	"os"

	"github.com/urfave/cli"
	"github.com/valerio/jeebie-bitunit/jeebie/backend"
	"github.com/valerio/jeebie-bitunit/jeebie/backend/headless"
	"github.com/valerio/jeebie-bitunit/jeebie/backend/terminal"
	"github.com/valerio/jeebie-bitunit/jeebie/disasm"
)

func main() {
	app := cli.NewApp()
	app.Name = "bitunit"
	app.Description = "BIT/RES/SET instruction core of a Game Boy CPU"
	app.Usage = "bitunit [--debug] <command> [options]"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "debug",
			Usage: "Log every executed instruction",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "table",
			Usage:  "Print the CB dispatch table (opcode, mnemonic, cycles)",
			Action: runTable,
		},
		{
			Name:      "exec",
			Usage:     "Execute a program of bit operations and print a trace",
			ArgsUsage: "[instruction...]",
			Flags: append(stateFlags(), cli.StringFlag{
				Name:  "file",
				Usage: "Read instructions from a file, one per line",
			}),
			Action: runExec,
		},
		{
			Name:   "inspect",
			Usage:  "Interactive terminal inspector",
			Flags:  stateFlags(),
			Action: runInspect,
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		slog.Error("Error running bitunit", "error", err)
		os.Exit(1)
	}
}

func runTable(c *cli.Context) error {
	return disasm.Listing(os.Stdout)
}

func runExec(c *cli.Context) error {
	config, err := configFromContext(c)
	if err != nil {
		return err
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: config.LogLevel,
	})
	slog.SetDefault(slog.New(handler))

	program, err := readProgram(c.String("file"), c.Args())
	if err != nil {
		return err
	}

	return run(headless.New(program, os.Stdout), config)
}

func runInspect(c *cli.Context) error {
	config, err := configFromContext(c)
	if err != nil {
		return err
	}
	return run(terminal.New(nil), config)
}

func run(b backend.Backend, config backend.Config) error {
	if err := b.Init(config); err != nil {
		return err
	}
	defer b.Cleanup()

	return b.Run(backend.NewSession(config))
}
