package i8080Display

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
)

// Screen is an SDL window showing one Width x Height frame.
type Screen struct {
	win *sdl.Window
	ren *sdl.Renderer
	tex *sdl.Texture
}

// NewScreen initializes SDL video and opens a window scaled by scale.
func NewScreen(title string, scale int) (*Screen, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("initializing sdl: %w", err)
	}

	win, err := newWindow(title, scale)
	if err != nil {
		sdl.Quit()
		return nil, err
	}
	ren, err := newRenderer(win)
	if err != nil {
		_ = win.Destroy()
		sdl.Quit()
		return nil, err
	}
	tex, err := newTexture(ren)
	if err != nil {
		_ = ren.Destroy()
		_ = win.Destroy()
		sdl.Quit()
		return nil, err
	}
	return &Screen{win: win, ren: ren, tex: tex}, nil
}

func newWindow(title string, scale int) (*sdl.Window, error) {
	win, err := sdl.CreateWindow(title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(Width*scale), int32(Height*scale), sdl.WINDOW_ALLOW_HIGHDPI)
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}
	return win, nil
}

func newRenderer(win *sdl.Window) (*sdl.Renderer, error) {
	ren, err := sdl.CreateRenderer(win, -1,
		sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		return nil, fmt.Errorf("creating renderer: %w", err)
	}
	if err := ren.SetLogicalSize(Width, Height); err != nil {
		return nil, fmt.Errorf("setting logical size: %w", err)
	}
	return ren, nil
}

func newTexture(ren *sdl.Renderer) (*sdl.Texture, error) {
	tex, err := ren.CreateTexture(uint32(sdl.PIXELFORMAT_RGBA32),
		sdl.TEXTUREACCESS_STREAMING, Width, Height)
	if err != nil {
		return nil, fmt.Errorf("creating texture: %w", err)
	}
	return tex, nil
}

// Destroy releases the SDL resources and shuts SDL down.
func (s *Screen) Destroy() {
	_ = s.tex.Destroy()
	_ = s.ren.Destroy()
	_ = s.win.Destroy()
	sdl.Quit()
}

// Draw uploads a frame produced by Frame and presents it.
func (s *Screen) Draw(pixels []byte) error {
	buf, _, err := s.tex.Lock(nil)
	if err != nil {
		return fmt.Errorf("locking texture: %w", err)
	}
	copy(buf, pixels)
	s.tex.Unlock()

	if err := s.ren.Copy(s.tex, nil, nil); err != nil {
		return fmt.Errorf("copying texture: %w", err)
	}
	s.ren.Present()
	return nil
}

// Poll drains pending events and reports whether the window was closed.
func (s *Screen) Poll() bool {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			return true
		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN && e.Keysym.Sym == sdl.K_ESCAPE {
				return true
			}
		}
	}
	return false
}
