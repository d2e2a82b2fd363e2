package unit

import "fmt"

//DistanceInch is the value indicating that the distance value is set in inches
const DistanceInch byte = 10

//DistanceFoot is the value indicating that the distance value is set in feet
const DistanceFoot byte = 11

//DistanceYard is the value indicating that the distance value is set in yards
const DistanceYard byte = 12

//Distance structure keeps the distance value in the units it was created with
type Distance struct {
	value        float64
	defaultUnits byte
}

func distanceToInches(value float64, units byte) (float64, error) {
	switch units {
	case DistanceInch:
		return value, nil
	case DistanceFoot:
		return value * 12, nil
	case DistanceYard:
		return value * 36, nil
	default:
		return 0, fmt.Errorf("Distance: unit %d is not supported", units)
	}
}

func distanceFromInches(value float64, units byte) (float64, error) {
	switch units {
	case DistanceInch:
		return value, nil
	case DistanceFoot:
		return value / 12, nil
	case DistanceYard:
		return value / 36, nil
	default:
		return 0, fmt.Errorf("Distance: unit %d is not supported", units)
	}
}

//CreateDistance creates a distance value.
//
//units are measurement unit and may be any value from
//unit.Distance* constants.
func CreateDistance(value float64, units byte) (Distance, error) {
	if _, err := distanceToInches(value, units); err != nil {
		return Distance{}, err
	}
	return Distance{value: value, defaultUnits: units}, nil
}

//MustCreateDistance creates the distance value but panics instead of returned a error
func MustCreateDistance(value float64, units byte) Distance {
	v, err := CreateDistance(value, units)
	if err != nil {
		panic(err)
	}
	return v
}

//Value returns the value of the distance in the specified units.
//
//Reading the value back in the units it was created with returns
//it unchanged. The method returns a error in case the unit is
//not supported.
func (v Distance) Value(units byte) (float64, error) {
	if units == v.defaultUnits {
		return v.value, nil
	}
	inches, err := distanceToInches(v.value, v.defaultUnits)
	if err != nil {
		return 0, err
	}
	return distanceFromInches(inches, units)
}

//Convert converts the value into the specified units.
func (v Distance) Convert(units byte) Distance {
	x, err := v.Value(units)
	if err != nil {
		return v
	}
	return Distance{value: x, defaultUnits: units}
}

//In converts the value in the specified units.
//Returns 0 if unit conversion is not possible.
func (v Distance) In(units byte) float64 {
	x, e := v.Value(units)
	if e != nil {
		return 0
	}
	return x
}

func (v Distance) String() string {
	var unitName, format string
	var accuracy int
	switch v.defaultUnits {
	case DistanceInch:
		unitName = "\""
		accuracy = 2
	case DistanceFoot:
		unitName = "'"
		accuracy = 2
	case DistanceYard:
		unitName = "yd"
		accuracy = 1
	default:
		unitName = "?"
		accuracy = 6
	}
	format = fmt.Sprintf("%%.%df%%s", accuracy)
	return fmt.Sprintf(format, v.value, unitName)
}

//Units return the units in which the value is measured
func (v Distance) Units() byte {
	return v.defaultUnits
}
