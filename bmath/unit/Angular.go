package unit

import (
	"fmt"
	"math"
)

const AngularMOA byte = 2
const AngularInchesPer100Yd byte = 6

//InchesPerMOAAt100Yd is the linear size, in inches, which one minute of angle
//subtends at 100 yards as used by shooters.
const InchesPerMOAAt100Yd float64 = 1.047

type Angular struct {
	value        float64
	defaultUnits byte
}

func toRadians(value float64, units byte) (float64, error) {
	switch units {
	case AngularMOA:
		return value / 180 * math.Pi / 60, nil
	case AngularInchesPer100Yd:
		return math.Atan(value / 3600), nil
	default:
		return 0, fmt.Errorf("Angular: unit %d is not supported", units)
	}
}

func fromRadians(value float64, units byte) (float64, error) {
	switch units {
	case AngularMOA:
		return value * 180 / math.Pi * 60, nil
	case AngularInchesPer100Yd:
		return math.Tan(value) * 3600, nil
	default:
		return 0, fmt.Errorf("Angular: unit %d is not supported", units)
	}
}

func CreateAngular(value float64, units byte) (Angular, error) {
	v, err := toRadians(value, units)
	if err != nil {
		return Angular{}, err
	}
	return Angular{value: v, defaultUnits: units}, nil
}

//MustCreateAngular creates the angular value but panics instead of returned a error
func MustCreateAngular(value float64, units byte) Angular {
	v, err := CreateAngular(value, units)
	if err != nil {
		panic(err)
	}
	return v
}

func (v Angular) Value(units byte) (float64, error) {
	return fromRadians(v.value, units)
}

//In converts the value in the specified units.
//Returns 0 if unit conversion is not possible.
func (v Angular) In(units byte) float64 {
	x, e := fromRadians(v.value, units)
	if e != nil {
		return 0
	}
	return x
}

//Convert returns the same angle which is shown in the specified units
func (v Angular) Convert(units byte) Angular {
	return Angular{value: v.value, defaultUnits: units}
}

func (v Angular) String() string {
	x, e := fromRadians(v.value, v.defaultUnits)
	if e != nil {
		return "!error: default units aren't correct"
	}
	switch v.defaultUnits {
	case AngularMOA:
		return fmt.Sprintf("%.2fmoa", x)
	case AngularInchesPer100Yd:
		return fmt.Sprintf("%.2finch/100yd", x)
	default:
		return fmt.Sprintf("%.6f?", x)
	}
}

//Units return the units in which the value is measured
func (v Angular) Units() byte {
	return v.defaultUnits
}

//InchesPerMOA returns how many inches one minute of angle covers at the distance specified.
func InchesPerMOA(distance Distance) float64 {
	return InchesPerMOAAt100Yd * (distance.In(DistanceYard) / 100)
}

//MOAFromOffset converts a linear offset measured at the distance specified into
//minutes of angle.
//
//Returns 0 when the distance is zero.
func MOAFromOffset(offset Distance, distance Distance) float64 {
	perMOA := InchesPerMOA(distance)
	if perMOA == 0 {
		return 0
	}
	return offset.In(DistanceInch) / perMOA
}
