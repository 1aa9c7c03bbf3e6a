package translate

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// decomposeTRS splits a 4x4 matrix into translation, Euler rotation (in
// degrees) and per-axis scale. It normalizes each basis column by its own
// length before extracting rotation, so it handles non-uniform scale -- a
// generalization of the teacher's joint-matrix decomposition in
// pack/wad/obj/export_fbx.go, which only ever read scale off the matrix
// diagonal because its input joints were never sheared or non-uniformly
// scaled off-axis.
func decomposeTRS(m mgl64.Mat4) (translation, rotationDeg, scale mgl64.Vec3) {
	translation = mgl64.Vec3{m[12], m[13], m[14]}

	c0 := mgl64.Vec3{m[0], m[1], m[2]}
	c1 := mgl64.Vec3{m[4], m[5], m[6]}
	c2 := mgl64.Vec3{m[8], m[9], m[10]}

	sx, sy, sz := c0.Len(), c1.Len(), c2.Len()
	scale = mgl64.Vec3{sx, sy, sz}

	if sx != 0 {
		c0 = c0.Mul(1 / sx)
	}
	if sy != 0 {
		c1 = c1.Mul(1 / sy)
	}
	if sz != 0 {
		c2 = c2.Mul(1 / sz)
	}

	rot := mgl64.Mat4{
		c0[0], c0[1], c0[2], 0,
		c1[0], c1[1], c1[2], 0,
		c2[0], c2[1], c2[2], 0,
		0, 0, 0, 1,
	}
	q := mgl64.Mat4ToQuat(rot)
	rotationDeg = quatToEuler(q).Mul(180.0 / math.Pi)
	return
}

// quatToEuler is the float64 generalization of utils.QuatToEuler
// (utils/math.go in the teacher repo), returned in radians.
func quatToEuler(q mgl64.Quat) mgl64.Vec3 {
	var e mgl64.Vec3

	sinrCosp := 2 * (q.W*q.X() + q.Y()*q.Z())
	cosrCosp := 1 - 2*(q.X()*q.X()+q.Y()*q.Y())
	e[0] = math.Atan2(sinrCosp, cosrCosp)

	sinp := 2 * (q.W*q.Y() - q.Z()*q.X())
	if math.Abs(sinp) >= 1 {
		e[1] = math.Copysign(math.Pi/2, sinp)
	} else {
		e[1] = math.Asin(sinp)
	}

	sinyCosp := 2 * (q.W*q.Z() + q.X()*q.Y())
	cosyCosp := 1 - 2*(q.Y()*q.Y()+q.Z()*q.Z())
	e[2] = math.Atan2(sinyCosp, cosyCosp)

	return e
}

func isNonZero(v mgl64.Vec3) bool {
	const eps = 1e-9
	return math.Abs(v[0]) > eps || math.Abs(v[1]) > eps || math.Abs(v[2]) > eps
}

func isNonUnit(v mgl64.Vec3) bool {
	const eps = 1e-9
	return math.Abs(v[0]-1) > eps || math.Abs(v[1]-1) > eps || math.Abs(v[2]-1) > eps
}
