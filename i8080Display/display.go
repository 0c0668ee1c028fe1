package i8080Display

import (
	"context"
	"fmt"

	"github.com/is386/i8080step/i8080"
	"github.com/retroenv/retrogolib/log"
)

// DefaultStepsPerFrame approximates the instructions a 2 MHz 8080 executes
// during one 60 Hz frame.
const DefaultStepsPerFrame = 8000

// Config controls the display machine.
type Config struct {
	Base          uint16 // start address of video RAM
	StepsPerFrame int
	Overlay       bool
}

// Renderer is the output surface of a Display.
type Renderer interface {
	Draw(pixels []byte) error
	Poll() (quit bool)
}

// Display runs a CPU and shows its video RAM after every batch of
// instructions.
type Display struct {
	cpu    *i8080.CPU
	out    Renderer
	logger *log.Logger
	cfg    Config
	frames int
}

// New returns a display for cpu that draws to out.
func New(logger *log.Logger, cpu *i8080.CPU, out Renderer, cfg Config) *Display {
	if cfg.StepsPerFrame <= 0 {
		cfg.StepsPerFrame = DefaultStepsPerFrame
	}
	return &Display{
		cpu:    cpu,
		out:    out,
		logger: logger,
		cfg:    cfg,
	}
}

// Frames returns the number of frames drawn.
func (d *Display) Frames() int {
	return d.frames
}

// Run steps the CPU frame by frame until the window is closed or ctx is
// cancelled. A halted CPU keeps its last frame on screen.
func (d *Display) Run(ctx context.Context) error {
	for {
		if d.out.Poll() {
			d.logger.Debug("Display closed", log.Int("frames", d.frames))
			return nil
		}

		if _, err := i8080.Run(ctx, d.cpu, d.cfg.StepsPerFrame, nil); err != nil {
			return err
		}
		if err := d.drawFrame(); err != nil {
			return err
		}
	}
}

func (d *Display) drawFrame() error {
	vram, err := d.cpu.GetMemory().Window(int(d.cfg.Base), VRAMSize)
	if err != nil {
		return fmt.Errorf("reading video memory: %w", err)
	}
	if err := d.out.Draw(Frame(vram, d.cfg.Overlay)); err != nil {
		return fmt.Errorf("drawing frame %d: %w", d.frames, err)
	}
	d.frames++
	return nil
}
