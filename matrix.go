package trs

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

// Causes reported by FromMatrixSafe, testable with errors.Is.
var (
	// ErrNonUniformScale marks a matrix whose axis lengths differ, so a
	// single-scale decomposition would lose information.
	ErrNonUniformScale = errors.New("invalid transform: non-uniform scale")
	// ErrNotOrthogonal marks a matrix whose linear block keeps shear or
	// skew after the scale is removed.
	ErrNotOrthogonal = errors.New("invalid transform: rotation block not orthogonal")
)

// decomposeTolerance bounds the squared-length mismatch between axes and the
// orthogonality residual accepted by FromMatrixSafe.
const decomposeTolerance = 1e-3

// ToMatrix returns the homogeneous matrix equivalent of t for column points:
// translation * rotation * scale, matching TransformPoint's TRS order.
func (t Transform) ToMatrix() mgl64.Mat4 {
	translate := mgl64.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z())
	rotate := t.Rotation.Mat4()
	scale := mgl64.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z())
	return translate.Mul4(rotate).Mul4(scale)
}

// ToInverseMatrix returns Inverse().ToMatrix(). Divides by Scale.
func (t Transform) ToInverseMatrix() mgl64.Mat4 {
	return t.Inverse().ToMatrix()
}

// FromMatrix decomposes a homogeneous transform matrix without validation.
// The translation is taken from the last column, the scale is uniform and
// taken as the longest of the three axis columns, and the rotation is the
// orthonormalized linear block. Non-uniform scale and shear are therefore
// lost; callers that need the decomposition to be exact must use
// FromMatrixSafe.
func FromMatrix(m mgl64.Mat4) Transform {
	x := m.Col(0).Vec3()
	y := m.Col(1).Vec3()
	z := m.Col(2).Vec3()

	scale := math.Max(x.Len(), math.Max(y.Len(), z.Len()))

	return Transform{
		Position: m.Col(3).Vec3(),
		Rotation: basisRotation(x, y),
		Scale:    mgl64.Vec3{scale, scale, scale},
	}
}

// FromMatrixSafe decomposes like FromMatrix but first validates that the
// matrix really is a uniform-scale rigid transform: the three axis columns
// must have equal squared lengths and, once normalized, must be mutually
// orthogonal, both within decomposeTolerance. On failure the returned error
// wraps ErrNonUniformScale or ErrNotOrthogonal to say which check tripped.
func FromMatrixSafe(m mgl64.Mat4) (Transform, error) {
	x := m.Col(0).Vec3()
	y := m.Col(1).Vec3()
	z := m.Col(2).Vec3()

	xx, yy, zz := x.LenSqr(), y.LenSqr(), z.LenSqr()
	if math.Abs(xx-yy) > decomposeTolerance ||
		math.Abs(yy-zz) > decomposeTolerance ||
		math.Abs(zz-xx) > decomposeTolerance {
		return Transform{}, errors.Wrapf(ErrNonUniformScale,
			"squared axis lengths %g, %g, %g", xx, yy, zz)
	}

	// The axes are normalized before the check so any uniform scale passes.
	// A zero-length axis normalizes to NaN and fails the comparison.
	nx := x.Normalize()
	ny := y.Normalize()
	nz := z.Normalize()
	orthogonal := math.Abs(nx.Dot(ny)) <= decomposeTolerance &&
		math.Abs(ny.Dot(nz)) <= decomposeTolerance &&
		math.Abs(nz.Dot(nx)) <= decomposeTolerance
	if !orthogonal {
		return Transform{}, errors.Wrapf(ErrNotOrthogonal,
			"axis dot products %g, %g, %g", nx.Dot(ny), ny.Dot(nz), nz.Dot(nx))
	}

	return FromMatrix(m), nil
}

// basisRotation rebuilds an orthonormal right-handed basis from the first
// two axis columns, removing scale and shear, and converts it to a unit
// quaternion.
func basisRotation(x, y mgl64.Vec3) mgl64.Quat {
	x = x.Normalize()
	z := x.Cross(y).Normalize()
	y = z.Cross(x)

	rot := mgl64.Mat4{
		x[0], x[1], x[2], 0,
		y[0], y[1], y[2], 0,
		z[0], z[1], z[2], 0,
		0, 0, 0, 1,
	}
	return mgl64.Mat4ToQuat(rot).Normalize()
}
