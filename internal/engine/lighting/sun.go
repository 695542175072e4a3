// Package lighting provides lighting utilities for 3D rendering.
package lighting

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/clay/pkg/math"
)

// Light is a directional key light with an ambient term.
type Light struct {
	Direction math.Vec3 // normalized, pointing towards the light
	Color     [3]float32
	Ambient   [3]float32
}

// Direction converts azimuth/elevation angles in degrees to a light direction.
// Azimuth is rotation around the Y axis from +Z, elevation is measured from
// the horizon. The result points towards the light.
func Direction(azimuth, elevation float32) math.Vec3 {
	az := azimuth * math32.Pi / 180
	el := elevation * math32.Pi / 180

	sinAz, cosAz := math32.Sincos(az)
	sinEl, cosEl := math32.Sincos(el)
	return math.Vec3{X: cosEl * sinAz, Y: sinEl, Z: cosEl * cosAz}
}

// Studio returns the default light for inspecting a model: a warm key from
// upper front-left and a cool ambient fill.
func Studio() Light {
	return Light{
		Direction: Direction(-35, 40),
		Color:     [3]float32{1.0, 0.97, 0.92},
		Ambient:   [3]float32{0.22, 0.24, 0.28},
	}
}
