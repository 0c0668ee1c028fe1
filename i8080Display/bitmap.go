package i8080Display

// Geometry of the video RAM as the display shows it. Memory is laid out in
// 224 columns of 256 pixels, bottom pixel first, so the image is rotated by
// 90 degrees counter-clockwise when drawn.
const (
	Width  = 224
	Height = 256

	// DefaultBase is the start of video RAM on the Space Invaders board.
	DefaultBase = 0x2400
	// VRAMSize is the number of bytes making up one frame.
	VRAMSize = Width * Height / 8

	bytesPerColumn = Height / 8
	bytesPerPixel  = 4
)

type rgba [bytesPerPixel]byte

var (
	black = rgba{0x00, 0x00, 0x00, 0xff}
	white = rgba{0xff, 0xff, 0xff, 0xff}
	green = rgba{0x00, 0xff, 0x00, 0xff}
	red   = rgba{0xff, 0x00, 0x00, 0xff}
)

// Frame converts one frame of 1 bit per pixel video RAM into RGBA32 pixels
// of a Width x Height image, top row first. With overlay set, pixels are
// tinted like the colored film strips of the arcade cabinet.
func Frame(vram []byte, overlay bool) []byte {
	pixels := make([]byte, Width*Height*bytesPerPixel)
	for i := 0; i < len(pixels); i += bytesPerPixel {
		copy(pixels[i:], black[:])
	}

	if len(vram) > VRAMSize {
		vram = vram[:VRAMSize]
	}
	for i, b := range vram {
		column := i / bytesPerColumn
		for bit := range 8 {
			if (b>>bit)&1 == 0 {
				continue
			}
			row := (i%bytesPerColumn)*8 + bit
			color := white
			if overlay {
				color = colorAt(row, column)
			}
			x, y := column, Height-1-row
			copy(pixels[(y*Width+x)*bytesPerPixel:], color[:])
		}
	}
	return pixels
}

// colorAt returns the overlay color for a lit pixel. row counts from the
// bottom of the screen.
func colorAt(row, column int) rgba {
	switch {
	case row < 16 && (column < 16 || column > 134):
		return white
	case row <= 72:
		return green
	case row >= 192 && row < 224:
		return red
	default:
		return white
	}
}
