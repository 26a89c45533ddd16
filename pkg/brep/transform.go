package brep

import "math"

// Transform is an affine map: a 3x3 linear part applied to a vector, plus a
// translation. Transforms are assumed invertible; the kernel never builds
// a singular one. Applied by value to manifolds and topology, never in
// place.
type Transform struct {
	M [3][3]float64
	T Point
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{M: [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}}
}

// Translation returns a pure translation by v.
func Translation(v Point) Transform {
	t := Identity()
	t.T = v
	return t
}

// RotationX returns a rotation by theta radians about the X axis.
func RotationX(theta float64) Transform {
	c, s := math.Cos(theta), math.Sin(theta)
	t := Identity()
	t.M = [3][3]float64{{1, 0, 0}, {0, c, -s}, {0, s, c}}
	return t
}

// RotationY returns a rotation by theta radians about the Y axis.
func RotationY(theta float64) Transform {
	c, s := math.Cos(theta), math.Sin(theta)
	t := Identity()
	t.M = [3][3]float64{{c, 0, s}, {0, 1, 0}, {-s, 0, c}}
	return t
}

// RotationZ returns a rotation by theta radians about the Z axis.
func RotationZ(theta float64) Transform {
	c, s := math.Cos(theta), math.Sin(theta)
	t := Identity()
	t.M = [3][3]float64{{c, -s, 0}, {s, c, 0}, {0, 0, 1}}
	return t
}

// linear applies only the 3x3 part, ignoring translation. Use for
// directions (tangents, normals) that must not shift with position.
func (t Transform) linear(p Point) Point {
	m := t.M
	return Point{
		m[0][0]*p.X + m[0][1]*p.Y + m[0][2]*p.Z,
		m[1][0]*p.X + m[1][1]*p.Y + m[1][2]*p.Z,
		m[2][0]*p.X + m[2][1]*p.Y + m[2][2]*p.Z,
	}
}

// Apply applies the full affine transform to a point.
func (t Transform) Apply(p Point) Point {
	return t.linear(p).Add(t.T)
}

// ApplyDirection applies only the linear part; used for tangents and
// normals, which transform without translating.
func (t Transform) ApplyDirection(v Point) Point {
	return t.linear(v)
}

// Compose returns the transform that applies t first, then other
// (other.Apply(t.Apply(p)) == t.Compose(other).Apply(p)).
func (t Transform) Compose(other Transform) Transform {
	var out Transform
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var sum float64
			for k := 0; k < 3; k++ {
				sum += other.M[i][k] * t.M[k][j]
			}
			out.M[i][j] = sum
		}
	}
	out.T = other.Apply(t.T)
	return out
}
