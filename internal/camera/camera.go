// Package camera provides the mouse-drag orbit camera used to inspect
// generated meshes.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/procmesh/pkg/math"
)

// DefaultDragThreshold is the smallest per-axis cursor offset, in pixels,
// that rotates the camera.
const DefaultDragThreshold = 0.1

// DragState tracks one mouse drag. Offsets are measured from where the
// button went down, not from the previous frame.
type DragState struct {
	Start    math.Vec2
	Current  math.Vec2
	Dragging bool
}

// Begin starts a drag at pos.
func (d *DragState) Begin(pos math.Vec2) {
	d.Start = pos
	d.Current = pos
	d.Dragging = true
}

// Move records the cursor and returns the offset Start - pos.
func (d *DragState) Move(pos math.Vec2) math.Vec2 {
	d.Current = pos
	return d.Start.Sub(pos)
}

// End finishes the drag.
func (d *DragState) End() {
	d.Dragging = false
}

// OrbitCamera rotates its eye around a fixed target.
type OrbitCamera struct {
	Position  math.Vec3
	Target    math.Vec3
	Threshold float32
}

// NewOrbitCamera creates a camera at eye looking at target.
func NewOrbitCamera(eye, target math.Vec3) *OrbitCamera {
	return &OrbitCamera{
		Position:  eye,
		Target:    target,
		Threshold: DefaultDragThreshold,
	}
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position, c.Target, math.Vec3{Y: 1})
}

// Distance returns the distance from the eye to the target.
func (c *OrbitCamera) Distance() float32 {
	return c.Position.Distance(c.Target)
}

// HandleDrag orbits the eye for one frame of a drag. The offset only sets
// the direction of rotation; dt (seconds) sets the angle. Returns false if
// the offset is within Threshold on both axes.
func (c *OrbitCamera) HandleDrag(offset math.Vec2, dt float32) bool {
	if math32.Abs(offset.X) <= c.Threshold && math32.Abs(offset.Y) <= c.Threshold {
		return false
	}

	rot := offset.Normalize().Scale(dt)
	q := math.QuatFromEulerYXZ(rot.X, rot.Y, 0)

	rel := c.Position.Sub(c.Target)
	c.Position = c.Target.Add(q.Rotate(rel))
	return true
}

// FitToBounds moves the target to the center of the box and pulls the eye
// back along its current direction until the whole box fits.
func (c *OrbitCamera) FitToBounds(lo, hi math.Vec3) {
	dir := c.Position.Sub(c.Target).Normalize()
	if dir == (math.Vec3{}) {
		dir = math.Vec3{Z: 1}
	}

	c.Target = lo.Add(hi).Scale(0.5)
	radius := hi.Sub(lo).Length() / 2
	dist := math32.Max(radius*2, 0.1)
	c.Position = c.Target.Add(dir.Scale(dist))
}
