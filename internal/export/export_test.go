package export

import (
	"encoding/binary"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/clay/internal/sculpt/geometry"
	"github.com/Faultbox/clay/pkg/math"
)

func TestTrianglesSkipsDegenerate(t *testing.T) {
	positions := []math.Vec3{{}, {X: 1}, {Y: 1}, {X: 2}}
	// The second triangle is a line.
	indices := []uint32{0, 1, 2, 0, 1, 3}

	tris, skipped := Triangles(positions, indices, 1)
	assert.Len(t, tris, 1)
	assert.Equal(t, 1, skipped)
}

func TestTrianglesScale(t *testing.T) {
	positions := []math.Vec3{{}, {X: 1}, {Y: 1}}
	tris, _ := Triangles(positions, []uint32{0, 1, 2}, 10)
	require.Len(t, tris, 1)
	assert.InDelta(t, 10, tris[0][1].X, 1e-9)
}

func TestWriteSTL(t *testing.T) {
	m, err := geometry.Build(geometry.Sphere)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out", "sphere.stl")
	stats, err := WriteSTL(path, m.Positions, m.Indices, 0)
	require.NoError(t, err)

	assert.Equal(t, path, stats.Path)
	assert.Equal(t, m.TriangleCount(), stats.Triangles+stats.Skipped)
	assert.Positive(t, stats.Skipped, "pole fans should collapse")
	assert.InDelta(t, 1.5*DefaultUnitScale, stats.Max.Y, 1e-3)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(data), 84)

	// Binary STL: 80-byte header, triangle count, 50 bytes per triangle.
	count := binary.LittleEndian.Uint32(data[80:84])
	assert.Equal(t, uint32(stats.Triangles), count)
	assert.Equal(t, 84+50*stats.Triangles, len(data))
}

func TestWriteSTLEmpty(t *testing.T) {
	_, err := WriteSTL(filepath.Join(t.TempDir(), "x.stl"), nil, nil, 1)
	assert.ErrorIs(t, err, ErrNoTriangles)
}

func TestFilename(t *testing.T) {
	now := time.Date(2024, 3, 5, 14, 7, 9, 0, time.UTC)
	assert.Equal(t, "clay_2024-03-05_14-07-09.stl", Filename("", "clay", "stl", now))

	got := Filename("/tmp/shots", "frame", "png", now)
	assert.True(t, strings.HasPrefix(got, filepath.Join("/tmp/shots", "frame_")))
}

func TestSavePNGFlipsRows(t *testing.T) {
	// Two rows, bottom red and top blue, as OpenGL returns them.
	pixels := []byte{
		255, 0, 0, 255,
		0, 0, 255, 255,
	}
	path := filepath.Join(t.TempDir(), "shot.png")
	require.NoError(t, SavePNG(path, pixels, 1, 2))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)

	top := color.RGBAModel.Convert(img.At(0, 0)).(color.RGBA)
	bottom := color.RGBAModel.Convert(img.At(0, 1)).(color.RGBA)
	assert.Equal(t, uint8(255), top.B)
	assert.Equal(t, uint8(255), bottom.R)
}

func TestSavePNGSizeMismatch(t *testing.T) {
	err := SavePNG(filepath.Join(t.TempDir(), "bad.png"), []byte{1, 2, 3}, 1, 1)
	assert.Error(t, err)
}
