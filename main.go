// Package main implements an Intel 8080 interpreter, disassembler and
// stepping monitor.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/is386/i8080step/config"
	"github.com/is386/i8080step/i8080"
	"github.com/is386/i8080step/i8080Display"
	"github.com/is386/i8080step/i8080Test"
	"github.com/is386/i8080step/monitor"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func init() {
	// SDL has to be driven from the main thread.
	runtime.LockOSThread()
}

func main() {
	ctx := app.Context()

	opts, err := config.ParseFlags(os.Args)
	if err != nil {
		logger := config.CreateLogger(opts.DebugLogging(), opts.Quiet)
		var usageErr *config.UsageError
		if errors.As(err, &usageErr) {
			printBanner(logger, opts)
			logger.Error("Invalid arguments", log.Err(err))
			usageErr.ShowUsage(os.Stdout)
		} else {
			logger.Error(err.Error())
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts.DebugLogging(), opts.Quiet)
	printBanner(logger, opts)

	if err := run(ctx, logger, opts); err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Info("Operation cancelled")
			return
		}
		logger.Error("Execution failed", log.Err(err))
		os.Exit(1)
	}
}

func printBanner(logger *log.Logger, opts config.Options) {
	if opts.Quiet {
		return
	}
	logger.Info("i8080step", log.String("version", buildinfo.Version(version, commit, date)))
}

func run(ctx context.Context, logger *log.Logger, opts config.Options) error {
	logger.Debug("Opening", log.String("file", opts.File), log.Stringer("mode", opts.Mode()))

	switch opts.Mode() {
	case config.ModeDisassemble:
		return disassemble(opts)
	case config.ModeCPM:
		return runTestMachine(ctx, logger, opts)
	}

	cpu := i8080.NewCPU(0, i8080.WithLogger(logger), i8080.WithTrace(opts.Trace))
	if err := cpu.LoadRom(opts.File); err != nil {
		return err
	}
	breakpoints, err := opts.BreakpointSet()
	if err != nil {
		return err
	}

	switch opts.Mode() {
	case config.ModeDisplay:
		return runDisplay(ctx, logger, cpu, opts)
	case config.ModeStep:
		return runMonitor(ctx, logger, cpu, breakpoints, opts.NumOps)
	default:
		executed, err := i8080.Run(ctx, cpu, opts.NumOps, breakpoints)
		logger.Info("Execution stopped",
			log.Int("instructions", executed),
			log.Int("unimplemented", int(cpu.Unimplemented())),
			log.String("state", cpu.State()))
		return err
	}
}

func disassemble(opts config.Options) error {
	data, err := os.ReadFile(opts.File)
	if err != nil {
		return fmt.Errorf("reading program: %w", err)
	}
	length := opts.NumOps
	if length < 0 {
		length = len(data)
	}

	for _, line := range i8080.DisassembleRange(data, length) {
		fmt.Println(line)
	}
	return nil
}

func runTestMachine(ctx context.Context, logger *log.Logger, opts config.Options) error {
	tm, err := i8080Test.LoadTestMachine(logger, opts.File, os.Stdout, i8080.WithTrace(opts.Trace))
	if err != nil {
		return err
	}
	err = tm.Run(ctx)
	fmt.Println()
	logger.Info("Test completed", log.Int("instructions", tm.Instructions()))
	return err
}

func runDisplay(ctx context.Context, logger *log.Logger, cpu *i8080.CPU, opts config.Options) error {
	base, err := opts.BaseAddress()
	if err != nil {
		return err
	}
	screen, err := i8080Display.NewScreen("i8080step", opts.Scale)
	if err != nil {
		return err
	}
	defer screen.Destroy()

	display := i8080Display.New(logger, cpu, screen, i8080Display.Config{
		Base:          base,
		StepsPerFrame: opts.StepsPerFrame,
		Overlay:       opts.Overlay,
	})
	return display.Run(ctx)
}

func runMonitor(ctx context.Context, logger *log.Logger, cpu *i8080.CPU,
	breakpoints set.Set[uint16], budget int) error {
	t, err := monitor.OpenTerminal()
	if err != nil {
		return err
	}
	defer func() {
		_ = t.Restore()
		_ = t.Close()
	}()

	return monitor.New(logger, cpu, os.Stdout, breakpoints, budget).Run(ctx, t)
}
