//The package provides simple operations on 2d vectors
//in the vertical plane of fire and on the target page
package vector

import (
	"fmt"
)

//2D vector structure
type Vector struct {
	X float64 //X-coordinate
	Y float64 //Y-coordinate
}

//Converts a vector into a string
func (v Vector) String() string {
	return fmt.Sprintf("[X=%f,Y=%f]", v.X, v.Y)
}

//Creates a vector from its coordinates
func Create(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

//Multiplies the vector by the constant
func (v Vector) MultiplyByConst(a float64) Vector {
	return Create(a*v.X, a*v.Y)
}

//Adds two vectors
func (v Vector) Add(b Vector) Vector {
	return Create(v.X+b.X, v.Y+b.Y)
}

//Subtracts one vector from another
func (v Vector) Subtract(b Vector) Vector {
	return Create(v.X-b.X, v.Y-b.Y)
}
