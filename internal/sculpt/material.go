package sculpt

import (
	"fmt"
	"strings"
)

// Material selects the surface look and whether the mesh is elastic.
type Material int

// Available materials, in keyboard cycling order.
const (
	Clay Material = iota
	Plastic
	Metal
	Jelly
	materialCount
)

var materialNames = [...]string{
	Clay:    "clay",
	Plastic: "plastic",
	Metal:   "metal",
	Jelly:   "jelly",
}

// Surface holds the lighting properties the renderer needs for a material.
type Surface struct {
	Color     [3]float32
	Specular  float32
	Shininess float32
	Alpha     float32
}

var surfaces = [...]Surface{
	Clay:    {Color: [3]float32{0.80, 0.47, 0.33}, Specular: 0.08, Shininess: 8, Alpha: 1},
	Plastic: {Color: [3]float32{0.20, 0.45, 0.85}, Specular: 0.45, Shininess: 48, Alpha: 1},
	Metal:   {Color: [3]float32{0.75, 0.76, 0.78}, Specular: 0.90, Shininess: 96, Alpha: 1},
	Jelly:   {Color: [3]float32{0.35, 0.85, 0.45}, Specular: 0.60, Shininess: 32, Alpha: 0.8},
}

// Materials returns all materials in cycling order.
func Materials() []Material {
	return []Material{Clay, Plastic, Metal, Jelly}
}

func (m Material) valid() bool {
	return m >= 0 && m < materialCount
}

func (m Material) String() string {
	if !m.valid() {
		return fmt.Sprintf("Material(%d)", int(m))
	}
	return materialNames[m]
}

// Elastic reports whether the material uses the spring simulation.
func (m Material) Elastic() bool {
	return m == Jelly
}

// Surface returns the material's lighting properties.
func (m Material) Surface() Surface {
	if !m.valid() {
		return surfaces[Clay]
	}
	return surfaces[m]
}

// Next returns the following material, wrapping around.
func (m Material) Next() Material {
	return (m + 1) % materialCount
}

// ParseMaterial resolves a material by name, case-insensitively.
func ParseMaterial(name string) (Material, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range materialNames {
		if n == name {
			return Material(i), nil
		}
	}
	return Clay, fmt.Errorf("unknown material %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (m Material) MarshalText() ([]byte, error) {
	if !m.valid() {
		return nil, fmt.Errorf("invalid material %d", int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Material) UnmarshalText(text []byte) error {
	v, err := ParseMaterial(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}
