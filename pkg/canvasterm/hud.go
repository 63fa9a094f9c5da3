package canvasterm

import (
	"fmt"
	"time"

	"github.com/lucidcoons/meshgrad/pkg/frame"
)

// HUD renders a one-line status overlay (FPS, grid shape, engine, color
// model, animation state) directly to the terminal with raw ANSI escapes,
// the same register the teacher's 3D viewer HUD uses rather than pulling
// in a TUI widget library for a single status line.
type HUD struct {
	fps       float64
	fpsFrames int
	fpsTime   time.Time
}

// NewHUD creates a HUD with its FPS counter starting now.
func NewHUD() *HUD {
	return &HUD{fpsTime: time.Now()}
}

// UpdateFPS updates the FPS counter; call once per rendered frame.
func (h *HUD) UpdateFPS() {
	h.fpsFrames++
	elapsed := time.Since(h.fpsTime)
	if elapsed >= time.Second {
		h.fps = float64(h.fpsFrames) / elapsed.Seconds()
		h.fpsFrames = 0
		h.fpsTime = time.Now()
	}
}

// Render draws (or, if show is false, clears) the HUD's single status row
// at the top of the terminal.
func (h *HUD) Render(show bool, cs frame.ControlState) {
	const (
		reset     = "\x1b[0m"
		bold      = "\x1b[1m"
		bgBlack   = "\x1b[40m"
		fgGreen   = "\x1b[92m"
		fgCyan    = "\x1b[96m"
		clearLine = "\x1b[2K"
	)
	moveTo := func(row, col int) string {
		return fmt.Sprintf("\x1b[%d;%dH", row, col)
	}

	fmt.Print(moveTo(1, 1) + clearLine)
	if !show {
		return
	}

	engine := "subdivision"
	if cs.Engine == frame.EngineFFD {
		engine = "ffd"
	}
	anim := "off"
	if cs.AnimationEnabled {
		anim = "on"
	}

	status := fmt.Sprintf(
		"%s%s%s %.0f FPS  %dx%d grid  depth %d  %s  %s  simpleUV=%v  anim=%s %s",
		bgBlack, bold, fgGreen, h.fps, cs.Rows, cs.Cols, cs.Depth, engine, cs.ColorModel, cs.UseSimpleUV, anim, reset,
	)
	fmt.Print(moveTo(1, 1) + fgCyan + status)
}
