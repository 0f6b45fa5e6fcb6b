package fieldboard

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func TestCameraDefaults(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	if cam.Zoom != 1.0 {
		t.Errorf("Zoom = %f, want 1.0", cam.Zoom)
	}
	if cam.Viewport.Width != 800 || cam.Viewport.Height != 600 {
		t.Errorf("Viewport = %v, want 800x600", cam.Viewport)
	}
}

func TestCameraCenterMapsToViewportCenter(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	cam.X = 1500
	cam.Y = 1000
	cam.MarkDirty()
	sx, sy := cam.WorldToScreen(1500, 1000)
	if !approxEqual(sx, 400, epsilon) || !approxEqual(sy, 300, epsilon) {
		t.Errorf("center = (%f,%f), want (400,300)", sx, sy)
	}
}

func TestCameraRoundTrip(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	cam.X = 321
	cam.Y = 654
	cam.Zoom = 1.7
	cam.MarkDirty()

	wx, wy := cam.ScreenToWorld(123, 456)
	sx, sy := cam.WorldToScreen(wx, wy)
	if !approxEqual(sx, 123, 1e-6) || !approxEqual(sy, 456, 1e-6) {
		t.Errorf("round trip = (%f,%f), want (123,456)", sx, sy)
	}
}

func TestCameraZoomScalesDistances(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	cam.Zoom = 2.0
	cam.MarkDirty()

	sx1, _ := cam.WorldToScreen(1, 0)
	sx0, _ := cam.WorldToScreen(0, 0)
	if !approxEqual(sx1-sx0, 2.0, epsilon) {
		t.Errorf("screen distance = %f, want 2.0", sx1-sx0)
	}
}

// The world point under the zoom anchor must not move: zooming never makes
// the content jump under the pointer.
func TestCameraZoomAtAnchorStable(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	cam.X = 1500
	cam.Y = 1000
	cam.MarkDirty()

	const anchorX, anchorY = 600.0, 150.0
	wantWX, wantWY := cam.ScreenToWorld(anchorX, anchorY)

	cam.ZoomAt(anchorX, anchorY, 2.0)
	gotWX, gotWY := cam.ScreenToWorld(anchorX, anchorY)
	if !approxEqual(gotWX, wantWX, 1e-6) || !approxEqual(gotWY, wantWY, 1e-6) {
		t.Errorf("anchor world point moved: (%f,%f) -> (%f,%f)", wantWX, wantWY, gotWX, gotWY)
	}

	cam.ZoomAt(anchorX, anchorY, 0.5)
	gotWX, gotWY = cam.ScreenToWorld(anchorX, anchorY)
	if !approxEqual(gotWX, wantWX, 1e-6) || !approxEqual(gotWY, wantWY, 1e-6) {
		t.Errorf("anchor world point moved on zoom out: (%f,%f)", gotWX, gotWY)
	}
}

func TestCameraZoomAtClampsFactor(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	cam.ZoomAt(400, 300, 100)
	if cam.Zoom != maxZoom {
		t.Errorf("Zoom = %f, want clamped to %f", cam.Zoom, maxZoom)
	}
	cam.ZoomAt(400, 300, 0.001)
	if cam.Zoom != minZoom {
		t.Errorf("Zoom = %f, want clamped to %f", cam.Zoom, minZoom)
	}
}

func TestCameraPan(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	cam.X = 1500
	cam.Y = 1000
	cam.MarkDirty()

	// Dragging content 100px right moves the camera center 100 world units
	// left at zoom 1.
	cam.Pan(100, -40)
	assertNear(t, "X", cam.X, 1400)
	assertNear(t, "Y", cam.Y, 1040)

	cam.Zoom = 2
	cam.Pan(100, 0)
	assertNear(t, "X at zoom 2", cam.X, 1350)
}

func TestCameraBoundsClamping(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	cam.SetBounds(Rect{Width: 3000, Height: 2000})
	cam.X = -500
	cam.Y = -500
	cam.clampToBounds()
	// Half the viewport must stay inside the bounds.
	assertNear(t, "X", cam.X, 400)
	assertNear(t, "Y", cam.Y, 300)

	cam.X = 10000
	cam.Y = 10000
	cam.clampToBounds()
	assertNear(t, "X max", cam.X, 2600)
	assertNear(t, "Y max", cam.Y, 1700)
}

func TestCameraBoundsSmallerThanView(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	cam.SetBounds(Rect{Width: 400, Height: 200})
	cam.X = 9999
	cam.clampToBounds()
	// Centered when the canvas is smaller than the visible area.
	assertNear(t, "X", cam.X, 200)
	assertNear(t, "Y", cam.Y, 100)
}

func TestCameraScrollTo(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	cam.X = 0
	cam.Y = 0
	cam.ScrollTo(100, 50, 1.0, ease.Linear)

	for i := 0; i < 60; i++ {
		cam.update(1.0 / 60.0)
	}
	// One extra tick to let the tween report done.
	cam.update(1.0 / 60.0)

	if !approxEqual(cam.X, 100, 0.5) || !approxEqual(cam.Y, 50, 0.5) {
		t.Errorf("after scroll: (%f,%f), want (100,50)", cam.X, cam.Y)
	}
	if cam.scrollTween != nil {
		t.Error("scroll tween should be released when done")
	}
}

func TestCameraVisibleBounds(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	cam.X = 400
	cam.Y = 300
	cam.Zoom = 2
	cam.MarkDirty()

	vb := cam.VisibleBounds()
	assertNear(t, "X", vb.X, 200)
	assertNear(t, "Y", vb.Y, 150)
	assertNear(t, "Width", vb.Width, 400)
	assertNear(t, "Height", vb.Height, 300)
}
