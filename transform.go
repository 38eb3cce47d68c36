// Package trs implements an affine transform value combining a position, a
// unit-quaternion rotation and an independent per-axis scale. It is used to
// place and orient objects in 3D space and to compose or invert the spatial
// relationship between a child frame and its parent frame.
//
// A transform applies to points in TRS order: scale first, then rotation,
// then translation. Every operation takes a value receiver and returns a new
// value, so transforms are freely copyable and safe to share between
// goroutines for reading.
package trs

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Transform places an object in its parent space.
//
// Rotation must stay a unit quaternion; composing operations renormalize the
// result to absorb numerical drift. Scale components may carry any value, but
// the inverse family (InverseTransformPoint, InverseTransformScale,
// InverseTransformTransform, Inverse, ToInverseMatrix) divides by Scale: a
// zero component is not checked and propagates ±Inf or NaN into the result.
type Transform struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
	Scale    mgl64.Vec3
}

// Identity returns the neutral transform: zero position, identity rotation,
// scale one on every axis.
func Identity() Transform {
	return Transform{
		Position: mgl64.Vec3{0, 0, 0},
		Rotation: mgl64.QuatIdent(),
		Scale:    mgl64.Vec3{1, 1, 1},
	}
}

// FromPositionRotationScale builds a transform from all three components.
func FromPositionRotationScale(position mgl64.Vec3, rotation mgl64.Quat, scale mgl64.Vec3) Transform {
	return Transform{Position: position, Rotation: rotation, Scale: scale}
}

// FromPositionRotation builds a transform with scale one on every axis.
func FromPositionRotation(position mgl64.Vec3, rotation mgl64.Quat) Transform {
	t := Identity()
	t.Position = position
	t.Rotation = rotation
	return t
}

// FromPosition builds a pure translation.
func FromPosition(position mgl64.Vec3) Transform {
	t := Identity()
	t.Position = position
	return t
}

// FromPositionXYZ builds a pure translation from three coordinates.
func FromPositionXYZ(x, y, z float64) Transform {
	return FromPosition(mgl64.Vec3{x, y, z})
}

// FromRotation builds a pure rotation.
func FromRotation(rotation mgl64.Quat) Transform {
	t := Identity()
	t.Rotation = rotation
	return t
}

// FromScale builds a pure scale.
func FromScale(scale mgl64.Vec3) Transform {
	t := Identity()
	t.Scale = scale
	return t
}

// TransformPoint maps a point from this transform's frame to the parent
// frame: scale first, then rotate, then translate.
func (t Transform) TransformPoint(p mgl64.Vec3) mgl64.Vec3 {
	scaled := mgl64.Vec3{p[0] * t.Scale[0], p[1] * t.Scale[1], p[2] * t.Scale[2]}
	return t.Rotation.Rotate(scaled).Add(t.Position)
}

// InverseTransformPoint maps a point from the parent frame back to this
// transform's frame. Divides by Scale.
func (t Transform) InverseTransformPoint(p mgl64.Vec3) mgl64.Vec3 {
	local := t.Rotation.Conjugate().Rotate(p.Sub(t.Position))
	return mgl64.Vec3{local[0] / t.Scale[0], local[1] / t.Scale[1], local[2] / t.Scale[2]}
}

// TransformDirection rotates a direction into the parent frame. Directions
// ignore both Position and Scale: under non-uniform scale this is not the
// inverse-transpose map a normal would need, only the rotation part.
func (t Transform) TransformDirection(d mgl64.Vec3) mgl64.Vec3 {
	return t.Rotation.Rotate(d)
}

// InverseTransformDirection rotates a direction back into this transform's
// frame. Rotation only, like TransformDirection.
func (t Transform) InverseTransformDirection(d mgl64.Vec3) mgl64.Vec3 {
	return t.Rotation.Conjugate().Rotate(d)
}

// TransformRotation expresses a child rotation in the parent frame.
func (t Transform) TransformRotation(r mgl64.Quat) mgl64.Quat {
	return t.Rotation.Mul(r).Normalize()
}

// InverseTransformRotation expresses a parent-frame rotation in this
// transform's frame.
func (t Transform) InverseTransformRotation(r mgl64.Quat) mgl64.Quat {
	return t.Rotation.Conjugate().Mul(r).Normalize()
}

// TransformScale multiplies a child scale by this transform's scale,
// component-wise.
func (t Transform) TransformScale(s mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{s[0] * t.Scale[0], s[1] * t.Scale[1], s[2] * t.Scale[2]}
}

// InverseTransformScale divides a parent-frame scale by this transform's
// scale, component-wise. Divides by Scale.
func (t Transform) InverseTransformScale(s mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{s[0] / t.Scale[0], s[1] / t.Scale[1], s[2] / t.Scale[2]}
}

// TransformTransform expresses child, given in this transform's frame, in the
// parent frame. This is the parent-child composition used to walk a local
// transform up a hierarchy.
func (t Transform) TransformTransform(child Transform) Transform {
	return Transform{
		Position: t.TransformPoint(child.Position),
		Rotation: t.TransformRotation(child.Rotation),
		Scale:    t.TransformScale(child.Scale),
	}
}

// InverseTransformTransform expresses other, given in the parent frame, in
// this transform's frame. Divides by Scale.
func (t Transform) InverseTransformTransform(other Transform) Transform {
	return Transform{
		Position: t.InverseTransformPoint(other.Position),
		Rotation: t.InverseTransformRotation(other.Rotation),
		Scale:    t.InverseTransformScale(other.Scale),
	}
}

// Inverse returns the transform that undoes t, so that
// t.TransformTransform(t.Inverse()) is the identity. Divides by Scale.
func (t Transform) Inverse() Transform {
	invRotation := t.Rotation.Conjugate()
	invScale := mgl64.Vec3{1 / t.Scale[0], 1 / t.Scale[1], 1 / t.Scale[2]}
	back := invRotation.Rotate(t.Position)
	return Transform{
		Position: mgl64.Vec3{-back[0] * invScale[0], -back[1] * invScale[1], -back[2] * invScale[2]},
		Rotation: invRotation,
		Scale:    invScale,
	}
}

// WithPosition returns a copy of t with only Position replaced.
func (t Transform) WithPosition(position mgl64.Vec3) Transform {
	t.Position = position
	return t
}

// WithRotation returns a copy of t with only Rotation replaced.
func (t Transform) WithRotation(rotation mgl64.Quat) Transform {
	t.Rotation = rotation
	return t
}

// WithScale returns a copy of t with only Scale replaced.
func (t Transform) WithScale(scale mgl64.Vec3) Transform {
	t.Scale = scale
	return t
}

// Translate returns a copy of t moved by offset in the parent frame.
func (t Transform) Translate(offset mgl64.Vec3) Transform {
	t.Position = t.Position.Add(offset)
	return t
}

// ApplyScale returns a copy of t with every scale axis multiplied by factor.
func (t Transform) ApplyScale(factor float64) Transform {
	t.Scale = t.Scale.Mul(factor)
	return t
}

// Rotate returns a copy of t rotated by r in t's local frame. Post-multiplies
// the rotation, matching TransformRotation's composition order.
func (t Transform) Rotate(r mgl64.Quat) Transform {
	t.Rotation = t.Rotation.Mul(r).Normalize()
	return t
}

// RotateX returns a copy of t rotated by angle radians around its local X axis.
func (t Transform) RotateX(angle float64) Transform {
	return t.Rotate(mgl64.QuatRotate(angle, mgl64.Vec3{1, 0, 0}))
}

// RotateY returns a copy of t rotated by angle radians around its local Y axis.
func (t Transform) RotateY(angle float64) Transform {
	return t.Rotate(mgl64.QuatRotate(angle, mgl64.Vec3{0, 1, 0}))
}

// RotateZ returns a copy of t rotated by angle radians around its local Z axis.
func (t Transform) RotateZ(angle float64) Transform {
	return t.Rotate(mgl64.QuatRotate(angle, mgl64.Vec3{0, 0, 1}))
}

// String renders the transform for logs and debugging. It is not a stable
// serialization format.
func (t Transform) String() string {
	return fmt.Sprintf("Position=%v Rotation=%v Scale=%v", t.Position, t.Rotation, t.Scale)
}
