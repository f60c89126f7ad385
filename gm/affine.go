package gm

// Affine represents an affine transformation. It consists of a Matrix that describes
// rotation, scale and shear, as well as a Translation vector.
//
// Use IdentityAffine to build a new identity transformation and chain
// Rotate, Scale and Translate calls onto it. Each call applies in the local
// space of the transformation built so far.
type Affine struct {
	Matrix      Mat
	Translation Vec
}

// IdentityAffine returns the identity transformation.
func IdentityAffine() Affine {
	return Affine{
		Matrix: IdentityMat(),
	}
}

func AffineFromMat(mat Mat) Affine {
	return Affine{Matrix: mat}
}

func (a Affine) Rotate(angle Rad) Affine {
	return a.Mul(AffineFromMat(RotationMat(angle)))
}

func (a Affine) Scale(scale Vec) Affine {
	return a.Mul(AffineFromMat(ScaleMat(scale)))
}

func (a Affine) Translate(translate Vec) Affine {
	return a.Mul(Affine{Matrix: IdentityMat(), Translation: translate})
}

// Transform applies the affine transform to the given point and returns
// the transformed point.
func (a Affine) Transform(point Vec) Vec {
	return a.Matrix.Transform(point).Add(a.Translation)
}

// TransformVec applies the transform to a direction. The translation
// component is ignored.
func (a Affine) TransformVec(vec Vec) Vec {
	return a.Matrix.Transform(vec)
}

// Mul multiplies the affine transformation with another transformation.
// The effect of the resulting transformation is the same as transforming a
// point first by other and then by a.
func (a Affine) Mul(other Affine) Affine {
	return Affine{
		Matrix:      a.Matrix.Mul(other.Matrix),
		Translation: a.Matrix.Transform(other.Translation).Add(a.Translation),
	}
}

// TryInverse returns the inverse of the Affine transformation if possible.
func (a Affine) TryInverse() (inverse Affine, ok bool) {
	mat, ok := a.Matrix.TryInverse()
	if !ok {
		return Affine{}, false
	}

	inverse = Affine{
		Matrix:      mat,
		Translation: mat.Transform(a.Translation).Mul(-1),
	}

	return inverse, true
}
