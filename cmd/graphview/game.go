package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"grapher/graph"
	"grapher/state"
)

const (
	screenWidth  = 800
	screenHeight = 600
	panFraction  = 0.02
	zoomFactor   = 1.02
)

var palette = []color.RGBA{
	{0x4c, 0xaf, 0x50, 0xff},
	{0x21, 0x96, 0xf3, 0xff},
	{0xf4, 0x43, 0x36, 0xff},
	{0xff, 0x98, 0x00, 0xff},
	{0x9c, 0x27, 0xb0, 0xff},
}

type plotted struct {
	entry state.FunctionEntry
	spec  graph.FunctionSpec
	color color.RGBA
	paths [][]graph.Point
}

type game struct {
	funcs    []*plotted
	viewport graph.Viewport
	history  state.History
	dirty    bool
}

func newGame(sources []string, xMin, xMax, yMin, yMax float64) (*game, error) {
	g := &game{
		viewport: graph.Viewport{XMin: xMin, XMax: xMax, YMin: yMin, YMax: yMax},
		dirty:    true,
	}
	for i, src := range sources {
		spec, err := graph.ParseFunction(src)
		if err != nil {
			return nil, fmt.Errorf("function %q: %w", src, err)
		}
		c := palette[i%len(palette)]
		g.funcs = append(g.funcs, &plotted{
			entry: state.NewFunctionEntry(src, fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)),
			spec:  spec,
			color: c,
		})
	}
	g.history.Push(g.snapshot())
	return g, nil
}

func (g *game) run() error {
	ebiten.SetWindowTitle("graphview")
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

func (g *game) snapshot() state.Snapshot {
	s := state.Snapshot{
		Viewport: g.viewport,
		Grid:     state.GridSettings{ShowGrid: true, ShowAxes: true, Spacing: 1},
		Tool:     "pan",
		Settings: state.Settings{AngleUnit: "radians", Precision: 6},
	}
	for _, p := range g.funcs {
		s.Functions = append(s.Functions, p.entry)
	}
	return s
}

// step advances one tick: apply pending viewport motion and resample any
// curves the motion invalidated.
func (g *game) step() {
	if !g.dirty {
		return
	}
	for _, p := range g.funcs {
		p.paths = g.samplePaths(p.spec)
	}
	g.dirty = false
}

func (g *game) samplePaths(spec graph.FunctionSpec) [][]graph.Point {
	var pts []graph.Point
	switch s := spec.(type) {
	case graph.Cartesian:
		pts, _ = graph.SampleCartesian(s.Y, g.viewport.XRange(screenWidth), nil)
	case graph.Parametric:
		pts, _ = graph.SampleParametric(s, graph.Range{Min: 0, Max: 2 * math.Pi, Step: math.Pi / 512}, nil)
	case graph.Polar:
		pts, _ = graph.SamplePolar(s.R, graph.Range{Min: 0, Max: 2 * math.Pi, Step: math.Pi / 512}, nil)
	case graph.Implicit:
		var paths [][]graph.Point
		for _, seg := range graph.SampleImplicit(s.F, g.viewport, 128, nil) {
			paths = append(paths, []graph.Point{seg.A, seg.B})
		}
		return paths
	}
	return graph.BuildPaths(pts, g.viewport, screenHeight)
}

func (g *game) Update() error {
	moved := false
	dx := g.viewport.Width() * panFraction
	dy := g.viewport.Height() * panFraction

	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		g.viewport.XMin -= dx
		g.viewport.XMax -= dx
		moved = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		g.viewport.XMin += dx
		g.viewport.XMax += dx
		moved = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyDown) {
		g.viewport.YMin -= dy
		g.viewport.YMax -= dy
		moved = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyUp) {
		g.viewport.YMin += dy
		g.viewport.YMax += dy
		moved = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyEqual) || ebiten.IsKeyPressed(ebiten.KeyKPAdd) {
		g.zoom(1 / zoomFactor)
		moved = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyMinus) || ebiten.IsKeyPressed(ebiten.KeyKPSubtract) {
		g.zoom(zoomFactor)
		moved = true
	}
	if moved {
		g.dirty = true
	}

	// Space bookmarks the current view; U and R walk the bookmarks.
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.history.Push(g.snapshot())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyU) {
		if s, ok := g.history.Undo(); ok {
			g.viewport = s.Viewport
			g.dirty = true
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if s, ok := g.history.Redo(); ok {
			g.viewport = s.Viewport
			g.dirty = true
		}
	}

	g.step()
	return nil
}

func (g *game) zoom(factor float64) {
	cx := (g.viewport.XMin + g.viewport.XMax) / 2
	cy := (g.viewport.YMin + g.viewport.YMax) / 2
	hw := g.viewport.Width() / 2 * factor
	hh := g.viewport.Height() / 2 * factor
	g.viewport = graph.Viewport{XMin: cx - hw, XMax: cx + hw, YMin: cy - hh, YMax: cy + hh}
}

func (g *game) toScreen(p graph.Point) (float32, float32) {
	x := (p.X - g.viewport.XMin) / g.viewport.Width() * screenWidth
	y := (g.viewport.YMax - p.Y) / g.viewport.Height() * screenHeight
	return float32(x), float32(y)
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x10, 0x10, 0x18, 0xff})
	g.drawGrid(screen)
	for _, p := range g.funcs {
		for _, path := range p.paths {
			g.drawPolyline(screen, path, p.color)
		}
	}
}

func (g *game) drawGrid(screen *ebiten.Image) {
	grid := color.RGBA{0x2a, 0x2a, 0x38, 0xff}
	axis := color.RGBA{0x60, 0x60, 0x78, 0xff}

	spacing := gridSpacing(g.viewport.Width())
	for x := math.Ceil(g.viewport.XMin/spacing) * spacing; x <= g.viewport.XMax; x += spacing {
		sx, _ := g.toScreen(graph.Point{X: x, Y: 0})
		vector.StrokeLine(screen, sx, 0, sx, screenHeight, 1, grid, false)
	}
	for y := math.Ceil(g.viewport.YMin/spacing) * spacing; y <= g.viewport.YMax; y += spacing {
		_, sy := g.toScreen(graph.Point{X: 0, Y: y})
		vector.StrokeLine(screen, 0, sy, screenWidth, sy, 1, grid, false)
	}

	if g.viewport.XMin <= 0 && g.viewport.XMax >= 0 {
		sx, _ := g.toScreen(graph.Point{})
		vector.StrokeLine(screen, sx, 0, sx, screenHeight, 2, axis, false)
	}
	if g.viewport.YMin <= 0 && g.viewport.YMax >= 0 {
		_, sy := g.toScreen(graph.Point{})
		vector.StrokeLine(screen, 0, sy, screenWidth, sy, 2, axis, false)
	}
}

// gridSpacing picks a 1/2/5*10^k interval that keeps roughly 10 to 25
// gridlines on screen.
func gridSpacing(width float64) float64 {
	if width <= 0 {
		return 1
	}
	raw := width / 20
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	switch {
	case raw/mag < 1.5:
		return mag
	case raw/mag < 3.5:
		return 2 * mag
	case raw/mag < 7.5:
		return 5 * mag
	default:
		return 10 * mag
	}
}

func (g *game) drawPolyline(screen *ebiten.Image, path []graph.Point, c color.RGBA) {
	for i := 1; i < len(path); i++ {
		x0, y0 := g.toScreen(path[i-1])
		x1, y1 := g.toScreen(path[i])
		vector.StrokeLine(screen, x0, y0, x1, y1, 2, c, true)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}
