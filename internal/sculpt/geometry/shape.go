// Package geometry builds the vertex buffers the sculpting core works on.
//
// Every shape is a surface of revolution around the Y axis: a profile of
// (radius, height) rows swept around the axis. That parameterization is what
// lets the deformation engine edit vertices by radius alone.
package geometry

import (
	"fmt"
	"strings"
)

// Shape identifies a shape template.
type Shape int

const (
	Cylinder Shape = iota
	Sphere
	Cone
	Box
	Torus
)

var shapeNames = [...]string{
	Cylinder: "cylinder",
	Sphere:   "sphere",
	Cone:     "cone",
	Box:      "box",
	Torus:    "torus",
}

// Shapes lists every template in selection order.
func Shapes() []Shape {
	return []Shape{Cylinder, Sphere, Cone, Box, Torus}
}

func (s Shape) String() string {
	if s < 0 || int(s) >= len(shapeNames) {
		return fmt.Sprintf("shape(%d)", int(s))
	}
	return shapeNames[s]
}

// Next returns the following template, wrapping around.
func (s Shape) Next() Shape {
	return Shape((int(s) + 1) % len(shapeNames))
}

// ParseShape converts a shape name (case-insensitive) to a Shape.
func ParseShape(name string) (Shape, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range shapeNames {
		if n == name {
			return Shape(i), nil
		}
	}
	return 0, fmt.Errorf("unknown shape %q", name)
}

// MarshalText implements encoding.TextMarshaler so shapes read naturally in YAML.
func (s Shape) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Shape) UnmarshalText(text []byte) error {
	parsed, err := ParseShape(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
