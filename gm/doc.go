// Package gm (stands for geometry math) provides some geometry primitives.
//
// It includes a simple 2d vector type called Vec, an axis aligned Rect, a 2d
// matrix type Mat and an affine transform named Affine.
//
// There is also a type named Rad to represent angle values in radian and
// a seedable Random source so simulations can be replayed deterministically.
package gm
