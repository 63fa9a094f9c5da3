// meshgrad - interactive mesh-gradient rasterizer viewer.
//
// Controls:
//
//	d/D   - Increase/decrease subdivision depth
//	r/R   - Increase/decrease row count
//	c/C   - Increase/decrease column count
//	e     - Toggle rasterizer engine (subdivision <-> FFD)
//	m     - Cycle color model (RGBA -> HSLA -> Oklab)
//	u     - Toggle simple-UV (retro) mode
//	p     - Toggle control-point overlay
//	b     - Toggle Bézier-curve overlay
//	a     - Toggle animation
//	+/-   - Adjust animation amplitude
//	[/]   - Adjust animation speed
//	g     - Export the current frame as a glTF mesh
//	h/?   - Toggle the status HUD (FPS, grid shape, engine, color model)
//	q/Esc - Quit
package main

import (
	"context"
	"flag"
	"fmt"
	"image/color"
	"os"
	"os/signal"
	"syscall"
	"time"

	uv "github.com/charmbracelet/ultraviolet"

	"github.com/lucidcoons/meshgrad/pkg/bezier"
	"github.com/lucidcoons/meshgrad/pkg/canvasterm"
	"github.com/lucidcoons/meshgrad/pkg/colorspace"
	"github.com/lucidcoons/meshgrad/pkg/frame"
	"github.com/lucidcoons/meshgrad/pkg/meshexport"
	"github.com/lucidcoons/meshgrad/pkg/patch"
	"github.com/lucidcoons/meshgrad/pkg/raster"
	"github.com/lucidcoons/meshgrad/pkg/vec2"
)

var (
	rows       = flag.Int("rows", 1, "Initial row count [1,4]")
	cols       = flag.Int("cols", 1, "Initial column count [1,4]")
	depth      = flag.Int("depth", 4, "Initial subdivision depth [0,8]")
	colorModel = flag.String("model", "rgba", "Initial color model: rgba, hsla, or oklab")
	engine     = flag.String("engine", "subdivision", "Initial rasterizer: subdivision or ffd")
	targetFPS  = flag.Int("fps", 30, "Target frame rate")
	animate    = flag.Bool("animate", false, "Start with point animation enabled")

	outPath   = flag.String("out", "", "Render a single headless frame to this PNG path and exit")
	outWidth  = flag.Int("out-width", 800, "Headless render width (with -out)")
	outHeight = flag.Int("out-height", 600, "Headless render height (with -out)")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "meshgrad - interactive mesh-gradient rasterizer viewer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: meshgrad [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nControls:\n")
		fmt.Fprintf(os.Stderr, "  d/D         - Increase/decrease subdivision depth\n")
		fmt.Fprintf(os.Stderr, "  r/R, c/C    - Increase/decrease row/column count\n")
		fmt.Fprintf(os.Stderr, "  e           - Toggle rasterizer engine\n")
		fmt.Fprintf(os.Stderr, "  m           - Cycle color model\n")
		fmt.Fprintf(os.Stderr, "  u           - Toggle simple-UV mode\n")
		fmt.Fprintf(os.Stderr, "  p/b         - Toggle control-point/Bézier overlays\n")
		fmt.Fprintf(os.Stderr, "  a           - Toggle animation\n")
		fmt.Fprintf(os.Stderr, "  +/-, [/]    - Adjust animation amplitude/speed\n")
		fmt.Fprintf(os.Stderr, "  g           - Export current frame as glTF\n")
		fmt.Fprintf(os.Stderr, "  h/?         - Toggle status HUD\n")
		fmt.Fprintf(os.Stderr, "  q/Esc       - Quit\n")
	}
	flag.Parse()

	cs, err := initialControlState()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		flag.Usage()
		os.Exit(1)
	}

	if *outPath != "" {
		if err := renderHeadless(cs, *outWidth, *outHeight, *outPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(cs); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func initialControlState() (frame.ControlState, error) {
	cs := frame.DefaultControlState()
	cs.Rows, cs.Cols, cs.Depth = *rows, *cols, *depth
	cs.AnimationEnabled = *animate

	switch *colorModel {
	case "rgba":
		cs.ColorModel = colorspace.RGBA
	case "hsla":
		cs.ColorModel = colorspace.HSLA
	case "oklab":
		cs.ColorModel = colorspace.Oklab
	default:
		return cs, fmt.Errorf("unknown color model %q (want rgba, hsla, or oklab)", *colorModel)
	}

	switch *engine {
	case "subdivision":
		cs.Engine = frame.EngineSubdivision
	case "ffd":
		cs.Engine = frame.EngineFFD
	default:
		return cs, fmt.Errorf("unknown engine %q (want subdivision or ffd)", *engine)
	}

	cs.Clamp()
	return cs, nil
}

// demoScene builds a scene with a diagonal corner-color ramp, matching the
// kind of default gradient the editable control-point grid starts with
// before a host UI customizes it.
func demoScene(cs frame.ControlState) *frame.Scene {
	scene := frame.NewScene(cs.Rows, cs.Cols)
	stride := cs.Cols + 1
	palette := []colorspace.Color{
		colorspace.RGB(255, 64, 64),
		colorspace.RGB(64, 64, 255),
		colorspace.RGB(64, 255, 128),
		colorspace.RGB(255, 200, 64),
	}
	for i := 0; i <= cs.Rows; i++ {
		for j := 0; j <= cs.Cols; j++ {
			t := float64(i+j) / float64(cs.Rows+cs.Cols)
			lo := palette[(i+j)%len(palette)]
			hi := palette[(i+j+1)%len(palette)]
			scene.Colors[i*stride+j] = colorspace.Lerp(t, lo, hi)
		}
	}
	return scene
}

func renderHeadless(cs frame.ControlState, width, height int, path string) error {
	scene := demoScene(cs)
	fb := raster.NewFramebuffer(width, height)
	target := frame.Target{Width: width, Height: height}
	if err := frame.RenderFrame(scene, cs, target, 0, fb); err != nil {
		return fmt.Errorf("render frame: %w", err)
	}
	if err := fb.SavePNG(path); err != nil {
		return fmt.Errorf("save png: %w", err)
	}
	fmt.Fprintf(os.Stderr, "wrote %s (%dx%d)\n", path, width, height)
	return nil
}

func run(cs frame.ControlState) error {
	host, err := canvasterm.NewHost()
	if err != nil {
		return err
	}
	if err := host.Start(); err != nil {
		return err
	}
	defer host.Stop()

	width, height := host.FramebufferSize()
	scene := demoScene(cs)
	fb := raster.NewFramebuffer(width, height)
	smoother := frame.NewControlSmoother(*targetFPS, cs)
	hud := canvasterm.NewHUD()
	showHUD := false

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	go func() {
		for ev := range host.Events() {
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				host.Resize(ev.Width, ev.Height)
				width, height = host.FramebufferSize()
				fb = raster.NewFramebuffer(width, height)
			case uv.KeyPressEvent:
				if !handleKey(ev, &cs, scene, &showHUD) {
					cancel()
					return
				}
			}
		}
	}()

	start := time.Now()
	targetDuration := time.Second / time.Duration(*targetFPS)
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		frameStart := time.Now()
		eased := smoother.Update(cs)

		fb.Clear(color.RGBA{R: 16, G: 16, B: 20, A: 255})
		if err := frame.RenderFrame(scene, eased, frame.Target{Width: width, Height: height}, time.Since(start).Seconds(), fb); err != nil {
			return fmt.Errorf("render frame: %w", err)
		}
		if err := host.Present(fb); err != nil {
			return fmt.Errorf("present frame: %w", err)
		}
		hud.UpdateFPS()
		hud.Render(showHUD, eased)

		elapsed := time.Since(frameStart)
		if elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}

// handleKey applies one key event to cs in place (and exports a glTF
// snapshot on 'g'). It returns false when the viewer should quit.
func handleKey(ev uv.KeyPressEvent, cs *frame.ControlState, scene *frame.Scene, showHUD *bool) bool {
	switch {
	case ev.MatchString("h"), ev.MatchString("?"):
		*showHUD = !*showHUD
	case ev.MatchString("q"), ev.MatchString("escape"), ev.MatchString("ctrl+c"):
		return false
	case ev.MatchString("d"):
		cs.Depth++
	case ev.MatchString("D"):
		cs.Depth--
	case ev.MatchString("r"):
		growGrid(cs, scene, 1, 0)
	case ev.MatchString("R"):
		growGrid(cs, scene, -1, 0)
	case ev.MatchString("c"):
		growGrid(cs, scene, 0, 1)
	case ev.MatchString("C"):
		growGrid(cs, scene, 0, -1)
	case ev.MatchString("e"):
		if cs.Engine == frame.EngineSubdivision {
			cs.Engine = frame.EngineFFD
		} else {
			cs.Engine = frame.EngineSubdivision
		}
	case ev.MatchString("m"):
		cs.ColorModel = (cs.ColorModel + 1) % 3
	case ev.MatchString("u"):
		cs.UseSimpleUV = !cs.UseSimpleUV
	case ev.MatchString("p"):
		cs.ShowControlPoints = !cs.ShowControlPoints
	case ev.MatchString("b"):
		cs.ShowBezierCurves = !cs.ShowBezierCurves
	case ev.MatchString("a"):
		cs.AnimationEnabled = !cs.AnimationEnabled
	case ev.MatchString("+"), ev.MatchString("="):
		cs.AnimationAmplitude++
	case ev.MatchString("-"), ev.MatchString("_"):
		cs.AnimationAmplitude--
	case ev.MatchString("["):
		cs.AnimationSpeed -= 0.1
	case ev.MatchString("]"):
		cs.AnimationSpeed += 0.1
	case ev.MatchString("g"):
		exportSnapshot(*cs, scene)
	}
	cs.Clamp()
	return true
}

// growGrid resizes the scene's row/column count in place, preserving
// existing corner colors where the new grid still covers them and filling
// new vertices with white — a host UI's natural response to a row/column
// count change between frames, per the "mutation happens between frames"
// rule.
func growGrid(cs *frame.ControlState, scene *frame.Scene, dRows, dCols int) {
	newRows := clampDim(cs.Rows + dRows)
	newCols := clampDim(cs.Cols + dCols)
	if newRows == cs.Rows && newCols == cs.Cols {
		return
	}

	next := frame.NewScene(newRows, newCols)
	oldStride := cs.Cols + 1
	newStride := newCols + 1
	for i := 0; i <= newRows; i++ {
		for j := 0; j <= newCols; j++ {
			if i <= cs.Rows && j <= cs.Cols {
				next.Colors[i*newStride+j] = scene.Colors[i*oldStride+j]
			}
		}
	}
	*scene = *next
	cs.Rows, cs.Cols = newRows, newCols
}

func clampDim(x int) int {
	if x < 1 {
		return 1
	}
	if x > 4 {
		return 4
	}
	return x
}

func exportSnapshot(cs frame.ControlState, scene *frame.Scene) {
	path := fmt.Sprintf("meshgrad-%d.glb", time.Now().UnixNano())
	target := frame.Target{Width: 800, Height: 600}
	coonsPatches := scene.Grid.BuildPatches(scene.Colors)

	tex := raster.NewColorTexture(cs.Cols, cs.Rows, scene.Colors)

	var leaves []raster.Leaf
	idx := 0
	for i := 0; i < cs.Rows; i++ {
		for j := 0; j < cs.Cols; j++ {
			mapped := mapCoonsToTarget(coonsPatches[idx], target)
			idx++
			tensor := patch.CoonsToTensor(mapped)
			leaves = append(leaves, raster.Subdivide(tensor, j, i, cs.Cols, cs.Rows, cs.Depth)...)
		}
	}
	raster.SortLeaves(leaves)

	if err := meshexport.WriteGLB(leaves, tex, path); err != nil {
		fmt.Fprintf(os.Stderr, "gltf export failed: %v\n", err)
		return
	}
	fmt.Fprintf(os.Stderr, "exported %s\n", path)
}

// mapCoonsToTarget maps a Coons patch's boundary curves from canvas-normalized
// [0,100] coordinates into target pixel space, the same mapping RenderFrame
// applies internally, so the exported glTF mesh lines up with the rasterized
// preview.
func mapCoonsToTarget(c patch.Coons[colorspace.Color], target frame.Target) patch.Coons[colorspace.Color] {
	return patch.Coons[colorspace.Color]{
		North:  mapCubic(c.North, target),
		East:   mapCubic(c.East, target),
		South:  mapCubic(c.South, target),
		West:   mapCubic(c.West, target),
		Values: c.Values,
	}
}

func mapCubic(c bezier.Cubic, target frame.Target) bezier.Cubic {
	var out bezier.Cubic
	for i, p := range c {
		out[i] = vec2.V2(target.MapX(p.X), target.MapY(p.Y))
	}
	return out
}
