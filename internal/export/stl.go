// Package export writes the sculpted model and rendered frames to disk.
package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/Faultbox/clay/pkg/math"
)

// ErrNoTriangles is returned when a mesh has nothing printable.
var ErrNoTriangles = errors.New("export: mesh has no triangles")

// DefaultUnitScale converts model units to millimetres in STL output.
const DefaultUnitScale = 10.0

// degenerateTolerance drops collapsed triangles at the poles.
const degenerateTolerance = 1e-9

// STLStats describes a finished export.
type STLStats struct {
	Path      string
	Triangles int
	Skipped   int // degenerate triangles left out
	Min, Max  v3.Vec
}

// Triangles converts an indexed vertex buffer into sdfx triangles scaled by
// scale, skipping degenerate ones. It returns the number skipped.
func Triangles(positions []math.Vec3, indices []uint32, scale float64) ([]*sdf.Triangle3, int) {
	tris := make([]*sdf.Triangle3, 0, len(indices)/3)
	skipped := 0
	for i := 0; i+2 < len(indices); i += 3 {
		t := &sdf.Triangle3{
			toVec(positions[indices[i]], scale),
			toVec(positions[indices[i+1]], scale),
			toVec(positions[indices[i+2]], scale),
		}
		if t.Degenerate(degenerateTolerance) {
			skipped++
			continue
		}
		tris = append(tris, t)
	}
	return tris, skipped
}

func toVec(p math.Vec3, scale float64) v3.Vec {
	return v3.Vec{X: float64(p.X) * scale, Y: float64(p.Y) * scale, Z: float64(p.Z) * scale}
}

// bounds returns the axis-aligned extent of tris.
func bounds(tris []*sdf.Triangle3) (lo, hi v3.Vec) {
	lo, hi = tris[0][0], tris[0][0]
	for _, t := range tris {
		for _, v := range t {
			lo = lo.Min(v)
			hi = hi.Max(v)
		}
	}
	return lo, hi
}

// WriteSTL saves the mesh as a binary STL file at path, creating parent
// directories as needed.
func WriteSTL(path string, positions []math.Vec3, indices []uint32, scale float64) (STLStats, error) {
	if scale <= 0 {
		scale = DefaultUnitScale
	}
	tris, skipped := Triangles(positions, indices, scale)
	if len(tris) == 0 {
		return STLStats{}, ErrNoTriangles
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return STLStats{}, fmt.Errorf("creating output dir: %w", err)
	}
	if err := render.SaveSTL(path, tris); err != nil {
		return STLStats{}, fmt.Errorf("writing %s: %w", path, err)
	}

	lo, hi := bounds(tris)
	return STLStats{Path: path, Triangles: len(tris), Skipped: skipped, Min: lo, Max: hi}, nil
}
