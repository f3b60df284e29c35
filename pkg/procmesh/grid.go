package procmesh

import (
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Option validation errors.
var (
	ErrInvalidResolution = errors.New("resolution must be at least 1")
	ErrUnknownSurface    = errors.New("unknown surface kind")
	ErrUnknownUpAxis     = errors.New("unknown up axis")
	ErrInvalidWorkers    = errors.New("workers must not be negative")
)

// Options configures Generate.
type Options struct {
	Resolution int
	Surface    SurfaceKind
	UpAxis     UpAxis // Planar only

	// Workers > 1 splits the rings into that many contiguous ranges and
	// generates them concurrently. The output is identical either way.
	Workers int
}

// Validate reports the first invalid field.
func (o Options) Validate() error {
	if o.Resolution < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidResolution, o.Resolution)
	}
	if o.Workers < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidWorkers, o.Workers)
	}
	_, err := NewSurface(o.Surface, o.UpAxis)
	return err
}

// VertexCount returns (r+1)^2 for resolution r.
func VertexCount(resolution int) int {
	return (resolution + 1) * (resolution + 1)
}

// IndexCount returns 6r^2 for resolution r. UV spheres use the same count;
// their pole cells produce zero-area triangles.
func IndexCount(resolution int) int {
	return 6 * resolution * resolution
}

// Generate validates opts and builds the mesh.
func Generate(opts Options) (*MeshData, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid mesh options: %w", err)
	}
	s, _ := NewSurface(opts.Surface, opts.UpAxis)
	return assemble(s, opts.Resolution, opts.Workers), nil
}

// GenerateGrid builds a Z-up grid of the given kind.
//
// It is meant for trusted callers: a resolution below 1 or an unknown kind
// panics instead of returning an error. Use Generate to validate input.
func GenerateGrid(resolution int, kind SurfaceKind) *MeshData {
	if resolution < 1 {
		panic(fmt.Sprintf("procmesh: GenerateGrid resolution %d, must be at least 1", resolution))
	}
	s, err := NewSurface(kind, UpAxisZ)
	if err != nil {
		panic("procmesh: " + err.Error())
	}
	return assemble(s, resolution, 1)
}

// assemble allocates both buffers, fills every ring and packages the result.
func assemble(s Surface, r, workers int) *MeshData {
	vertices := make([]Vertex, VertexCount(r))
	indices := make([]uint32, IndexCount(r))

	rings := r + 1
	if workers > rings {
		workers = rings
	}

	if workers <= 1 {
		for i := range rings {
			GenerateRow(s, i, r, vertices, indices)
		}
		return newMeshData(vertices, indices)
	}

	// Each ring writes a disjoint slice of both buffers, so contiguous ring
	// ranges need no locking.
	var g errgroup.Group
	chunk := (rings + workers - 1) / workers
	for start := 0; start < rings; start += chunk {
		end := min(start+chunk, rings)
		g.Go(func() error {
			for i := start; i < end; i++ {
				GenerateRow(s, i, r, vertices, indices)
			}
			return nil
		})
	}
	_ = g.Wait()

	return newMeshData(vertices, indices)
}
