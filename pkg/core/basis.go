package core

import "math"

// Basis is an orthonormal frame built around a normal vector.
// Normal, TangentU and TangentV form a right-handed coordinate system.
type Basis struct {
	Normal   Vec3
	TangentU Vec3
	TangentV Vec3
}

// NewBasis builds an orthonormal basis around a unit normal
func NewBasis(normal Vec3) Basis {
	// Pick a helper axis that is not nearly parallel to the normal
	var helper Vec3
	if math.Abs(normal.X) > 0.1 {
		helper = NewVec3(0, 1, 0)
	} else {
		helper = NewVec3(1, 0, 0)
	}

	tangentU := helper.Cross(normal).Normalize()
	tangentV := normal.Cross(tangentU)

	return Basis{Normal: normal, TangentU: tangentU, TangentV: tangentV}
}

// ToWorld transforms local coordinates (u along TangentU, v along TangentV,
// n along Normal) into world space
func (b Basis) ToWorld(u, v, n float64) Vec3 {
	return b.TangentU.Multiply(u).
		Add(b.TangentV.Multiply(v)).
		Add(b.Normal.Multiply(n))
}

// ToLocal projects a world-space vector onto the basis axes
func (b Basis) ToLocal(w Vec3) Vec3 {
	return NewVec3(w.Dot(b.TangentU), w.Dot(b.TangentV), w.Dot(b.Normal))
}
