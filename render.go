package fieldboard

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// DrawOp is one world-space rectangle to paint, bottom-up in slice order.
type DrawOp struct {
	Rect     Rect
	Fill     Color
	Label    string
	Selected bool
	// Handle draws the resize grab square in the bottom-right corner.
	Handle bool
}

// Frame is the reconciled visual state of a board for one tick: the
// canonical registry with the transient drag preview layered on top. It is
// backend-agnostic; Renderer targets ebiten, and retargeting the engine at
// another backend means consuming Frame elsewhere.
type Frame struct {
	Canvas Vec2
	Ops    []DrawOp
	// SelectionBox is the live box-select rectangle, if one is being drawn.
	SelectionBox *Rect
}

// Painting palette.
var (
	laneFill     = Color{R: 0.93, G: 0.95, B: 0.97, A: 1}
	textFill     = Color{R: 1, G: 1, B: 1, A: 0.9}
	cardFill     = Color{R: 1, G: 1, B: 1, A: 1}
	selectColor  = Color{R: 0.23, G: 0.51, B: 0.96, A: 1}
	boxFill      = Color{R: 0.23, G: 0.51, B: 0.96, A: 0.15}
	canvasFill   = Color{R: 0.16, G: 0.35, B: 0.25, A: 1}
	backdropFill = Color{R: 0.09, G: 0.09, B: 0.11, A: 1}
)

// BuildFrame reconciles the registry, selection, and any active drag session
// into draw operations: lanes first, then text and notes, then cards, so
// cards always paint above annotations. Entities being dragged or resized
// use their preview geometry; nothing is pushed to the caller.
func (b *Board) BuildFrame() Frame {
	var preview map[string]Rect
	var boxRect *Rect
	if b.session != nil {
		b.session.refreshPreview(b.cfg.CanvasWidth, b.cfg.CanvasHeight)
		if b.session.mode == ModeBoxSelect {
			box := b.session.boxPreview
			boxRect = &box
		} else {
			preview = b.session.preview
		}
	}

	bounds := func(id string, base Rect) Rect {
		if r, ok := preview[id]; ok {
			return r
		}
		return base
	}

	objects := b.objects()
	cards := b.cards()
	frame := Frame{
		Canvas:       Vec2{X: b.cfg.CanvasWidth, Y: b.cfg.CanvasHeight},
		Ops:          make([]DrawOp, 0, len(objects)+len(cards)),
		SelectionBox: boxRect,
	}

	appendObject := func(o BoardObject) {
		op := DrawOp{
			Rect:     bounds(o.ID, o.Bounds()),
			Selected: b.selection.Has(o.ID),
			Handle:   b.cfg.Editable,
		}
		switch o.Kind {
		case KindLane:
			op.Fill = laneFill
			op.Label = o.Title
		case KindText:
			op.Fill = textFill
			op.Label = o.Text
		case KindNote:
			op.Fill = o.Color
			op.Label = o.Text
		}
		frame.Ops = append(frame.Ops, op)
	}
	for _, o := range objects {
		if o.Kind == KindLane {
			appendObject(o)
		}
	}
	for _, o := range objects {
		if o.Kind != KindLane {
			appendObject(o)
		}
	}

	for _, c := range cards {
		label := c.Entry.Name
		if c.Entry.Grade != "" {
			label += "\n" + c.Entry.Grade
		}
		frame.Ops = append(frame.Ops, DrawOp{
			Rect:     bounds(c.ID, c.Bounds()),
			Fill:     cardFill,
			Label:    label,
			Selected: b.selection.Has(c.ID),
			Handle:   b.cfg.Editable,
		})
	}
	return frame
}

// Renderer draws frames onto an ebiten image through a camera. This is the
// only part of the engine tied to the rendering backend.
type Renderer struct {
	// Background, if set, is stretched over the canvas rectangle.
	Background *ebiten.Image
}

// Draw paints a frame: backdrop, canvas, background image, then the ops in
// order, selection outlines, and the live box-select rectangle on top.
func (r *Renderer) Draw(screen *ebiten.Image, frame Frame, cam *Camera) {
	screen.Fill(backdropFill.toRGBA())

	canvasRect := Rect{Width: frame.Canvas.X, Height: frame.Canvas.Y}
	fillRect(screen, cam, canvasRect, canvasFill)

	if r.Background != nil {
		drawImageInRect(screen, cam, r.Background, canvasRect)
	}

	for _, op := range frame.Ops {
		fillRect(screen, cam, op.Rect, op.Fill)
		if op.Label != "" {
			sx, sy := cam.WorldToScreen(op.Rect.X, op.Rect.Y)
			ebitenutil.DebugPrintAt(screen, op.Label, int(sx)+6, int(sy)+4)
		}
		if op.Selected {
			strokeRect(screen, cam, op.Rect, selectColor, 2)
			if op.Handle {
				fillRect(screen, cam, handleRect(op.Rect), selectColor)
			}
		}
	}

	if frame.SelectionBox != nil {
		fillRect(screen, cam, *frame.SelectionBox, boxFill)
		strokeRect(screen, cam, *frame.SelectionBox, selectColor, 1)
	}
}

// fillRect paints a solid world-space rectangle by scaling WhitePixel.
func fillRect(screen *ebiten.Image, cam *Camera, r Rect, c Color) {
	if r.Width <= 0 || r.Height <= 0 || c.A <= 0 {
		return
	}
	sx, sy := cam.WorldToScreen(r.X, r.Y)
	var opts ebiten.DrawImageOptions
	opts.GeoM.Scale(r.Width*cam.Zoom, r.Height*cam.Zoom)
	opts.GeoM.Translate(sx, sy)
	opts.ColorScale.Scale(
		float32(c.R*c.A), float32(c.G*c.A), float32(c.B*c.A), float32(c.A))
	screen.DrawImage(WhitePixel, &opts)
}

// strokeRect outlines a world-space rectangle with a screen-space thickness.
func strokeRect(screen *ebiten.Image, cam *Camera, r Rect, c Color, thickness float64) {
	sx, sy := cam.WorldToScreen(r.X, r.Y)
	w := r.Width * cam.Zoom
	h := r.Height * cam.Zoom

	edges := [4][4]float64{
		{sx, sy, w, thickness},
		{sx, sy + h - thickness, w, thickness},
		{sx, sy, thickness, h},
		{sx + w - thickness, sy, thickness, h},
	}
	for _, e := range edges {
		var opts ebiten.DrawImageOptions
		opts.GeoM.Scale(e[2], e[3])
		opts.GeoM.Translate(e[0], e[1])
		opts.ColorScale.Scale(
			float32(c.R*c.A), float32(c.G*c.A), float32(c.B*c.A), float32(c.A))
		screen.DrawImage(WhitePixel, &opts)
	}
}

// drawImageInRect stretches img over a world-space rectangle.
func drawImageInRect(screen *ebiten.Image, cam *Camera, img *ebiten.Image, r Rect) {
	bounds := img.Bounds()
	iw, ih := float64(bounds.Dx()), float64(bounds.Dy())
	if iw == 0 || ih == 0 {
		return
	}
	sx, sy := cam.WorldToScreen(r.X, r.Y)
	var opts ebiten.DrawImageOptions
	opts.GeoM.Scale(r.Width*cam.Zoom/iw, r.Height*cam.Zoom/ih)
	opts.GeoM.Translate(sx, sy)
	screen.DrawImage(img, &opts)
}
