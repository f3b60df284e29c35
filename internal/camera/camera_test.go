package camera

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/procmesh/pkg/math"
)

func TestDragState(t *testing.T) {
	var d DragState
	d.Begin(math.Vec2{X: 100, Y: 50})
	assert.True(t, d.Dragging)

	// Offsets stay relative to the press position.
	assert.Equal(t, math.Vec2{X: 10, Y: -5}, d.Move(math.Vec2{X: 90, Y: 55}))
	assert.Equal(t, math.Vec2{X: 20, Y: -10}, d.Move(math.Vec2{X: 80, Y: 60}))
	assert.Equal(t, math.Vec2{X: 80, Y: 60}, d.Current)

	d.End()
	assert.False(t, d.Dragging)
}

func TestOrbitCamera_HandleDragBelowThreshold(t *testing.T) {
	c := NewOrbitCamera(math.Vec3{Y: 2, Z: 2}, math.Vec3{})
	before := c.Position

	assert.False(t, c.HandleDrag(math.Vec2{X: 0.05, Y: -0.1}, 0.016))
	assert.Equal(t, before, c.Position)
}

func TestOrbitCamera_HandleDragKeepsDistance(t *testing.T) {
	c := NewOrbitCamera(math.Vec3{Y: 2, Z: 2}, math.Vec3{X: 1})
	want := c.Distance()

	for i := 0; i < 120; i++ {
		assert.True(t, c.HandleDrag(math.Vec2{X: 30, Y: 12}, 1.0/60))
	}
	assert.InDelta(t, want, c.Distance(), 1e-4)
}

func TestOrbitCamera_HandleDragYaw(t *testing.T) {
	c := NewOrbitCamera(math.Vec3{Z: 2}, math.Vec3{})

	// Pure horizontal drag yaws around +Y by dt radians.
	assert.True(t, c.HandleDrag(math.Vec2{X: 50}, 0.5))

	q := math.QuatFromAxisAngle(math.Vec3{Y: 1}, 0.5)
	want := q.Rotate(math.Vec3{Z: 2})
	assert.InDelta(t, want.X, c.Position.X, 1e-5)
	assert.InDelta(t, 0, c.Position.Y, 1e-5)
	assert.InDelta(t, want.Z, c.Position.Z, 1e-5)
}

func TestOrbitCamera_FitToBounds(t *testing.T) {
	c := NewOrbitCamera(math.Vec3{Y: 2, Z: 2}, math.Vec3{})
	c.FitToBounds(math.Vec3{X: 1, Y: 1, Z: 1}, math.Vec3{X: 3, Y: 3, Z: 3})

	assert.Equal(t, math.Vec3{X: 2, Y: 2, Z: 2}, c.Target)
	assert.InDelta(t, 2*1.7320508, c.Distance(), 1e-4)

	// Direction from target to eye is preserved.
	dir := c.Position.Sub(c.Target).Normalize()
	assert.InDelta(t, 0, dir.X, 1e-5)
	assert.InDelta(t, dir.Y, dir.Z, 1e-5)
}

func TestOrbitCamera_ViewMatrix(t *testing.T) {
	c := NewOrbitCamera(math.Vec3{Y: 2, Z: 2}, math.Vec3{})
	m := c.ViewMatrix()
	assert.InDelta(t, 0, m.TransformPoint(c.Position).Length(), 1e-5)
}
