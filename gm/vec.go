package gm

import (
	"fmt"
	"image"
	"math"
)

type Scalar interface {
	~int32 | ~float32 | ~float64
}

type Vec32 = VecType[float32]
type Vec64 = VecType[float64]

type Vec = Vec64

var VecZero = Vec{}
var VecOne = Vec{X: 1, Y: 1}

type IVec = VecType[int32]

func VecOf[S Scalar](x, y S) VecType[S] {
	return VecType[S]{X: x, Y: y}
}

func VecSplat[S Scalar](value S) VecType[S] {
	return VecType[S]{X: value, Y: value}
}

// VecType is a 2d vector. All operations return a new value,
// the receiver is never modified.
type VecType[S Scalar] struct {
	X, Y S
}

func (v VecType[S]) XY() (S, S) {
	return v.X, v.Y
}

func (v VecType[S]) Add(other VecType[S]) VecType[S] {
	v.X += other.X
	v.Y += other.Y
	return v
}

func (v VecType[S]) Sub(other VecType[S]) VecType[S] {
	v.X -= other.X
	v.Y -= other.Y
	return v
}

func (v VecType[S]) Mul(scalar S) VecType[S] {
	v.X *= scalar
	v.Y *= scalar
	return v
}

func (v VecType[S]) MulEach(other VecType[S]) VecType[S] {
	v.X *= other.X
	v.Y *= other.Y
	return v
}

func (v VecType[S]) DivEach(other VecType[S]) VecType[S] {
	v.X /= other.X
	v.Y /= other.Y
	return v
}

func (v VecType[S]) Dot(other VecType[S]) S {
	return v.X*other.X + v.Y*other.Y
}

func (v VecType[S]) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

func (v VecType[S]) String() string {
	return fmt.Sprintf("vec(x=%v, y=%v)", v.X, v.Y)
}

func (v VecType[S]) LengthSqr() S {
	return v.X*v.X + v.Y*v.Y
}

func (v VecType[S]) Length() S {
	return S(math.Sqrt(float64(v.LengthSqr())))
}

// Normalized returns a vector of length one pointing into the same direction.
// The zero vector has no direction, normalizing it returns the zero vector.
func (v VecType[S]) Normalized() VecType[S] {
	length := v.Length()
	if length == 0 {
		return VecType[S]{}
	}

	v.X /= length
	v.Y /= length
	return v
}

// WithLength returns a vector pointing into the same direction with the given length.
// Same as Normalized, the zero vector stays zero.
func (v VecType[S]) WithLength(length S) VecType[S] {
	return v.Normalized().Mul(length)
}

// ClampLength limits the length of the vector to at most maxLength.
func (v VecType[S]) ClampLength(maxLength S) VecType[S] {
	lengthSqr := v.LengthSqr()
	if lengthSqr <= maxLength*maxLength {
		return v
	}

	return v.Mul(maxLength / S(math.Sqrt(float64(lengthSqr))))
}

func (v VecType[S]) DistanceTo(other VecType[S]) S {
	return other.Sub(v).Length()
}

func (v VecType[S]) DistanceSqrTo(other VecType[S]) S {
	return other.Sub(v).LengthSqr()
}

// IsFinite returns true if neither component is NaN or infinite.
func (v VecType[S]) IsFinite() bool {
	x, y := float64(v.X), float64(v.Y)
	return !math.IsNaN(x) && !math.IsNaN(y) && !math.IsInf(x, 0) && !math.IsInf(y, 0)
}

func (v VecType[S]) ToImagePoint() image.Point {
	return image.Point{X: int(v.X), Y: int(v.Y)}
}
