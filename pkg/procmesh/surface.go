package procmesh

import (
	"fmt"
	gomath "math"
	"strings"

	"github.com/chewxy/math32"

	"github.com/Faultbox/procmesh/pkg/math"
)

// SurfaceKind selects the surface a grid is projected onto.
type SurfaceKind int

const (
	// Planar is a flat unit square grid.
	Planar SurfaceKind = iota
	// UVSphere is a unit sphere with rings running pole to pole.
	UVSphere
	// Triangulated is a flat grid with alternate rows offset by half a cell.
	Triangulated
)

// String returns the config name of the surface kind.
func (k SurfaceKind) String() string {
	switch k {
	case Planar:
		return "planar"
	case UVSphere:
		return "uvsphere"
	case Triangulated:
		return "triangulated"
	default:
		return fmt.Sprintf("SurfaceKind(%d)", int(k))
	}
}

// ParseSurfaceKind converts a config name into a SurfaceKind.
func ParseSurfaceKind(s string) (SurfaceKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "planar", "plane", "quad":
		return Planar, nil
	case "uvsphere", "uv_sphere", "sphere":
		return UVSphere, nil
	case "triangulated", "tris", "brick":
		return Triangulated, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownSurface, s)
	}
}

// UpAxis orients the planar grid. It has no effect on other surfaces.
type UpAxis int

const (
	// UpAxisZ lays the grid in the XY plane facing +Z.
	UpAxisZ UpAxis = iota
	// UpAxisY lays the grid in the XZ plane facing +Y.
	UpAxisY
)

// String returns the config name of the axis.
func (a UpAxis) String() string {
	switch a {
	case UpAxisZ:
		return "z"
	case UpAxisY:
		return "y"
	default:
		return fmt.Sprintf("UpAxis(%d)", int(a))
	}
}

// ParseUpAxis converts a config name into an UpAxis.
func ParseUpAxis(s string) (UpAxis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "z", "":
		return UpAxisZ, nil
	case "y":
		return UpAxisY, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownUpAxis, s)
	}
}

// Winding holds the six vertex index offsets of the two triangles that close
// one lattice cell. Offsets are relative to the index of the current ring's
// vertex at column x, so the cell corners are:
//
//	a = -r-2  previous ring, column x-1
//	b = -r-1  previous ring, column x
//	c = -1    current ring, column x-1
//	d =  0    current ring, column x
type Winding [6]int

// cellWinding builds a Winding from corner names for resolution r.
func cellWinding(r int, corners string) Winding {
	var w Winding
	for k, ch := range corners {
		switch ch {
		case 'a':
			w[k] = -r - 2
		case 'b':
			w[k] = -r - 1
		case 'c':
			w[k] = -1
		case 'd':
			w[k] = 0
		}
	}
	return w
}

// Surface maps lattice coordinates onto a 3D surface.
//
// Row fills dst (exactly r+1 vertices) with ring i. Winding returns the
// triangle pattern connecting ring i-1 to ring i, for i >= 1. Neither may
// depend on anything but i and r.
type Surface interface {
	Row(i, r int, dst []Vertex)
	Winding(i, r int) Winding
}

// NewSurface returns the surface strategy for kind. up only affects Planar.
func NewSurface(kind SurfaceKind, up UpAxis) (Surface, error) {
	if up != UpAxisZ && up != UpAxisY {
		return nil, fmt.Errorf("%w: %v", ErrUnknownUpAxis, up)
	}
	switch kind {
	case Planar:
		return planarSurface{up: up}, nil
	case UVSphere:
		return uvSphereSurface{}, nil
	case Triangulated:
		return triangulatedSurface{}, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownSurface, kind)
	}
}

type planarSurface struct {
	up UpAxis
}

func (s planarSurface) Row(i, r int, dst []Vertex) {
	fr := float32(r)
	v := Vertex{
		Tangent:   math.Vec4{X: -1, W: -1},
		TexCoord0: math.Vec2{Y: float32(i) / fr},
	}
	ring := float32(i)/fr - 0.5
	if s.up == UpAxisY {
		// z runs against the ring index so the shared winding stays
		// counter-clockwise seen from +Y.
		v.Position.Z = -ring
		v.Normal.Y = 1
	} else {
		v.Position.Y = ring
		v.Normal.Z = 1
	}

	for x := range dst {
		u := float32(x) / fr
		v.Position.X = u - 0.5
		v.TexCoord0.X = u
		dst[x] = v
	}
}

func (planarSurface) Winding(_, r int) Winding {
	return cellWinding(r, "abcbdc")
}

// uvSphereSurface places rings along the polar angle, starting at the -Y
// pole, and columns along the azimuth. Pole rings collapse to one point but
// keep distinct UVs and tangents so textures wrap without a seam.
type uvSphereSurface struct{}

func (uvSphereSurface) Row(i, r int, dst []Vertex) {
	fr := float32(r)
	sinTheta, cosTheta := math32.Sincos(gomath.Pi * float32(i) / fr)

	v := Vertex{
		Tangent:   math.Vec4{W: -1},
		TexCoord0: math.Vec2{Y: float32(i) / fr},
	}
	for x := range dst {
		sinPhi, cosPhi := math32.Sincos(2 * gomath.Pi * float32(x) / fr)
		v.Position = math.Vec3{
			X: sinPhi * sinTheta,
			Y: -cosTheta,
			Z: -cosPhi * sinTheta,
		}
		v.Normal = v.Position
		v.Tangent.X = cosPhi
		v.Tangent.Z = sinPhi
		v.TexCoord0.X = float32(x) / fr
		dst[x] = v
	}
}

// With the polar angle on rings, the planar pattern would face inward.
func (uvSphereSurface) Winding(_, r int) Winding {
	return cellWinding(r, "acbbcd")
}

// triangulatedSurface shifts alternate rings by half a cell and alternates
// the cell diagonal per ring, giving a running-bond triangulation.
type triangulatedSurface struct{}

func (triangulatedSurface) Row(i, r int, dst []Vertex) {
	fr := float32(r)
	xOffset := float32(-0.25)
	var uOffset float32
	if i&1 == 1 {
		xOffset = 0.25
		uOffset = 0.5 / (fr + 0.5)
	}
	xOffset /= fr - 0.5

	v := Vertex{
		Normal:  math.Vec3{Z: 1},
		Tangent: math.Vec4{X: -1, W: -1},
	}
	v.Position.Y = (float32(i)/fr - 0.5) * math32.Sqrt(3) / 2
	v.TexCoord0.Y = v.Position.Y/(1+0.5/fr) + 0.5

	for x := range dst {
		v.Position.X = float32(x)/fr - 0.5 + xOffset
		v.TexCoord0.X = float32(x)/(fr+0.5) + uOffset
		dst[x] = v
	}
}

func (triangulatedSurface) Winding(i, r int) Winding {
	if i&1 == 1 {
		return cellWinding(r, "abcbdc")
	}
	return cellWinding(r, "adcabd")
}
