package geometry

import "github.com/Faultbox/clay/pkg/math"

// weldEpsilon quantizes positions when merging normals across seams and poles.
const weldEpsilon float32 = 0.0001

// ComputeNormals writes smooth per-vertex normals for positions into normals,
// which must have the same length. Face normals are area weighted, then
// averaged across vertices sharing a position so the duplicated seam column
// and the pole fans shade without a visible crease.
func ComputeNormals(positions []math.Vec3, indices []uint32, normals []math.Vec3) {
	for i := range normals {
		normals[i] = math.Vec3{}
	}

	for t := 0; t+2 < len(indices); t += 3 {
		ia, ib, ic := indices[t], indices[t+1], indices[t+2]
		a, b, c := positions[ia], positions[ib], positions[ic]
		// Unnormalized cross product: length is twice the triangle area.
		n := b.Sub(a).Cross(c.Sub(a))
		normals[ia] = normals[ia].Add(n)
		normals[ib] = normals[ib].Add(n)
		normals[ic] = normals[ic].Add(n)
	}

	weld(positions, normals)

	for i := range normals {
		n := normals[i].Normalize()
		if n == (math.Vec3{}) {
			n = math.Vec3{Y: 1}
		}
		normals[i] = n
	}
}

// weld sums the normals of coincident vertices.
func weld(positions []math.Vec3, normals []math.Vec3) {
	groups := make(map[[3]int32][]int, len(positions))
	for i, p := range positions {
		key := [3]int32{
			int32(p.X / weldEpsilon),
			int32(p.Y / weldEpsilon),
			int32(p.Z / weldEpsilon),
		}
		groups[key] = append(groups[key], i)
	}

	for _, idx := range groups {
		if len(idx) < 2 {
			continue
		}
		var sum math.Vec3
		for _, i := range idx {
			sum = sum.Add(normals[i])
		}
		for _, i := range idx {
			normals[i] = sum
		}
	}
}
