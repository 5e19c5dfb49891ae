package main

import (
	"fmt"
	gomath "math"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/strokemesh/internal/capture"
	"github.com/Faultbox/strokemesh/internal/config"
	"github.com/Faultbox/strokemesh/internal/engine/camera"
	"github.com/Faultbox/strokemesh/internal/engine/picking"
	"github.com/Faultbox/strokemesh/internal/engine/render"
	"github.com/Faultbox/strokemesh/internal/engine/window"
	"github.com/Faultbox/strokemesh/internal/logger"
	"github.com/Faultbox/strokemesh/pkg/math"
	"github.com/Faultbox/strokemesh/pkg/obj"
	"github.com/Faultbox/strokemesh/pkg/tube"
)

const fovY = gomath.Pi / 4

// strokeState bundles one stroke's capture, generator and GPU mesh.
type strokeState struct {
	stroke *capture.Stroke
	gen    *tube.Generator
	mesh   *render.StrokeMesh
}

type viewer struct {
	cfg     *config.Config
	tubeCfg tube.Config

	win *window.Window
	ren *render.Renderer
	cam *camera.OrbitCamera

	strokes []*strokeState
	active  *strokeState
	seed    int64

	orbiting bool
}

func newViewer(cfg *config.Config, seed int64) (*viewer, error) {
	tubeCfg, err := cfg.Brush.TubeConfig()
	if err != nil {
		return nil, err
	}
	if err := tubeCfg.Validate(); err != nil {
		return nil, err
	}

	win, err := window.New(window.Config{
		Title:      "strokeview",
		Width:      cfg.Viewer.Width,
		Height:     cfg.Viewer.Height,
		Fullscreen: cfg.Viewer.Fullscreen,
		VSync:      cfg.Viewer.VSync,
	})
	if err != nil {
		return nil, err
	}

	w, h := win.Size()
	ren, err := render.New(render.Config{Width: w, Height: h})
	if err != nil {
		win.Close()
		return nil, err
	}
	ren.Resize(w, h)

	return &viewer{
		cfg:     cfg,
		tubeCfg: tubeCfg,
		win:     win,
		ren:     ren,
		cam:     camera.NewOrbitCamera(),
		seed:    seed,
	}, nil
}

func (v *viewer) Close() {
	for _, s := range v.strokes {
		s.mesh.Delete()
	}
	v.ren.Close()
	v.win.Close()
}

// Run drives the event and render loop until quit.
func (v *viewer) Run() error {
	for {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			if quit := v.handleEvent(event); quit {
				return nil
			}
		}

		v.renderFrame()
		v.win.SwapBuffers()
	}
}

func (v *viewer) handleEvent(event sdl.Event) (quit bool) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return true

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			v.ren.Resize(int(e.Data1), int(e.Data2))
		}

	case *sdl.KeyboardEvent:
		if e.Type == sdl.KEYDOWN {
			return v.handleKey(e.Keysym.Sym)
		}

	case *sdl.MouseButtonEvent:
		switch e.Button {
		case sdl.BUTTON_LEFT:
			if e.Type == sdl.MOUSEBUTTONDOWN {
				v.beginStroke()
				v.feedPointer(e.X, e.Y)
			} else {
				v.endStroke()
			}
		case sdl.BUTTON_RIGHT:
			v.orbiting = e.Type == sdl.MOUSEBUTTONDOWN
		}

	case *sdl.MouseMotionEvent:
		if v.active != nil {
			v.feedPointer(e.X, e.Y)
		} else if v.orbiting {
			v.cam.HandleDrag(float32(e.XRel), float32(e.YRel))
		}

	case *sdl.MouseWheelEvent:
		v.cam.HandleZoom(float32(e.Y))
	}
	return false
}

func (v *viewer) handleKey(key sdl.Keycode) (quit bool) {
	switch key {
	case sdl.K_ESCAPE, sdl.K_q:
		return true
	case sdl.K_c:
		v.clearStrokes()
	case sdl.K_e:
		v.exportLast()
	case sdl.K_f:
		v.frameLast()
	case sdl.K_w:
		v.cam.HandlePan(1, 0)
	case sdl.K_s:
		v.cam.HandlePan(-1, 0)
	case sdl.K_a:
		v.cam.HandlePan(0, -1)
	case sdl.K_d:
		v.cam.HandlePan(0, 1)
	}
	return false
}

// beginStroke starts a fresh stroke with its own generator and mesh.
func (v *viewer) beginStroke() {
	stroke := capture.New(v.cfg.Capture.Resolve())
	gen, err := tube.NewGenerator(v.tubeCfg, stroke, v.seed)
	if err != nil {
		logger.Error("failed to start stroke", zap.Error(err))
		return
	}
	gen.SpawnProgress = stroke.SpawnProgress
	v.seed++

	v.active = &strokeState{
		stroke: stroke,
		gen:    gen,
		mesh:   render.NewStrokeMesh(),
	}
	v.strokes = append(v.strokes, v.active)
}

func (v *viewer) endStroke() {
	if v.active == nil {
		return
	}
	buf := v.active.gen.Buffers()
	logger.Info("stroke finished",
		zap.Int("knots", v.active.stroke.Len()),
		zap.Int("verts", buf.VertexCount()),
		zap.Int("tris", buf.TriangleCount()),
	)
	v.win.SetTitle(fmt.Sprintf("strokeview - %d strokes, %d verts",
		len(v.strokes), buf.VertexCount()))
	v.active = nil
}

// feedPointer projects the mouse onto the drawing plane and advances the
// active stroke.
func (v *viewer) feedPointer(x, y int32) {
	if v.active == nil {
		return
	}

	w, h := v.win.Size()
	ray := picking.ScreenToRay(
		float32(x), float32(y),
		float32(w), float32(h),
		fovY, v.cam.Position(), v.cam.Center,
	)
	hit, ok := ray.IntersectPlaneY(0)
	if !ok {
		return
	}

	firstChanged, changed := v.active.stroke.Feed(capture.RawSample{
		Position: hit,
		Pressure: 1,
	})
	if !changed {
		return
	}
	v.active.gen.Update(firstChanged)
	v.active.mesh.Upload(v.active.gen.Buffers())
}

// frameLast re-centers the camera on the most recent stroke.
func (v *viewer) frameLast() {
	if len(v.strokes) == 0 {
		return
	}
	buf := v.strokes[len(v.strokes)-1].gen.Buffers()
	if buf.VertexCount() == 0 {
		return
	}
	lo := buf.Positions[0]
	hi := buf.Positions[0]
	for _, p := range buf.Positions[1:] {
		lo.X = min(lo.X, p.X)
		lo.Y = min(lo.Y, p.Y)
		lo.Z = min(lo.Z, p.Z)
		hi.X = max(hi.X, p.X)
		hi.Y = max(hi.Y, p.Y)
		hi.Z = max(hi.Z, p.Z)
	}
	v.cam.FitToBounds(lo, hi)
}

func (v *viewer) clearStrokes() {
	for _, s := range v.strokes {
		s.mesh.Delete()
	}
	v.strokes = nil
	v.active = nil
	logger.Info("strokes cleared")
}

// exportLast writes the most recent stroke to the configured OBJ path.
func (v *viewer) exportLast() {
	if len(v.strokes) == 0 {
		logger.Warn("nothing to export")
		return
	}
	last := v.strokes[len(v.strokes)-1]
	buf := last.gen.Buffers()
	if err := obj.WriteFile(v.cfg.Export.Path, v.cfg.Export.ObjectName, buf); err != nil {
		logger.Error("export failed", zap.Error(err))
		return
	}
	logger.Info("mesh exported",
		zap.String("path", v.cfg.Export.Path),
		zap.Int("verts", buf.VertexCount()),
	)
}

func (v *viewer) renderFrame() {
	proj := math.Perspective(fovY, v.ren.Aspect(), 0.1, 500)
	viewProj := proj.Mul(v.cam.ViewMatrix())

	v.ren.Begin()
	v.ren.DrawGrid(viewProj)
	lightDir := math.Vec3{X: -0.4, Y: -1, Z: -0.3}
	for _, s := range v.strokes {
		v.ren.DrawStroke(s.mesh, viewProj, lightDir)
	}
}
