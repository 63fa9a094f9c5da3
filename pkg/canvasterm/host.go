// Package canvasterm hosts a live terminal preview of the mesh-gradient
// renderer, converting the CPU framebuffer to half-block terminal cells
// the way the teacher's terminal viewer does, but driving the mesh-gradient
// frame orchestrator instead of a 3D mesh renderer.
package canvasterm

import (
	"context"
	"fmt"
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"

	"github.com/lucidcoons/meshgrad/pkg/raster"
)

// Host owns the terminal driver and the CPU framebuffer it presents.
// Framebuffer height is always 2x the terminal row count: each terminal
// cell renders two vertically-stacked framebuffer pixels via the upper
// half-block character (foreground = top pixel, background = bottom).
type Host struct {
	term *uv.Terminal
	Cols int
	Rows int
}

// NewHost opens the default terminal and sizes the preview to its current
// dimensions.
func NewHost() (*Host, error) {
	term := uv.DefaultTerminal()
	cols, rows, err := term.GetSize()
	if err != nil {
		return nil, fmt.Errorf("canvasterm: get terminal size: %w", err)
	}
	return &Host{term: term, Cols: cols, Rows: rows}, nil
}

// FramebufferSize returns the CPU framebuffer dimensions this host expects
// a caller to render into: (Cols, Rows*2).
func (h *Host) FramebufferSize() (width, height int) {
	return h.Cols, h.Rows * 2
}

// Start enters the alternate screen, hides the cursor, and sizes the
// terminal to the host's dimensions.
func (h *Host) Start() error {
	if err := h.term.Start(); err != nil {
		return fmt.Errorf("canvasterm: start terminal: %w", err)
	}
	h.term.EnterAltScreen()
	h.term.HideCursor()
	h.term.Resize(h.Cols, h.Rows)
	return nil
}

// Stop leaves the alternate screen, restores the cursor, and shuts the
// terminal driver down.
func (h *Host) Stop() {
	h.term.ExitAltScreen()
	h.term.ShowCursor()
	h.term.Shutdown(context.Background())
}

// Events exposes the terminal's input/resize event channel.
func (h *Host) Events() <-chan uv.Event {
	return h.term.Events()
}

// Resize updates the host's terminal dimensions in response to a
// WindowSizeEvent.
func (h *Host) Resize(cols, rows int) {
	h.Cols, h.Rows = cols, rows
	h.term.Erase()
	h.term.Resize(cols, rows)
}

// Present converts fb to half-block terminal cells and flushes them to the
// real terminal.
func (h *Host) Present(fb *raster.Framebuffer) error {
	area := uv.Rectangle{Min: uv.Point{X: 0, Y: 0}, Max: uv.Point{X: h.Cols, Y: h.Rows}}
	drawFramebuffer(fb, h.term, area)
	return h.term.Display()
}

// drawFramebuffer converts fb to terminal cells using the upper half-block
// character (foreground = top pixel, background = bottom pixel), the same
// two-pixels-per-cell convention the teacher's 3D Framebuffer.Draw uses.
func drawFramebuffer(fb *raster.Framebuffer, scr uv.Screen, area uv.Rectangle) {
	for row := area.Min.Y; row < area.Max.Y; row++ {
		topY := row * 2
		botY := topY + 1

		for col := area.Min.X; col < area.Max.X && col < fb.Width; col++ {
			topColor := fb.GetPixel(col, topY)
			botColor := fb.GetPixel(col, botY)

			cell := &uv.Cell{
				Content: "▀",
				Width:   1,
				Style: uv.Style{
					Fg: rgbaToColor(topColor),
					Bg: rgbaToColor(botColor),
				},
			}
			scr.SetCell(col, row, cell)
		}
	}
}

func rgbaToColor(c color.RGBA) color.Color {
	if c.A == 0 {
		return nil
	}
	return c
}
