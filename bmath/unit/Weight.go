package unit

import "fmt"

//WeightGrain is the value indicating that the weight value is set in grains
const WeightGrain byte = 70

func weightToDefault(value float64, units byte) (float64, error) {
	switch units {
	case WeightGrain:
		return value, nil
	default:
		return 0, fmt.Errorf("Weight: unit %d is not supported", units)
	}
}

func weightFromDefault(value float64, units byte) (float64, error) {
	switch units {
	case WeightGrain:
		return value, nil
	default:
		return 0, fmt.Errorf("Weight: unit %d is not supported", units)
	}
}

//Weight keeps the weight of a bullet
type Weight struct {
	value        float64
	defaultUnits byte
}

//CreateWeight creates a weight value.
//
//units are measurement unit and may be any value from
//unit.Weight* constants.
func CreateWeight(value float64, units byte) (Weight, error) {
	v, err := weightToDefault(value, units)
	if err != nil {
		return Weight{}, err
	}
	return Weight{value: v, defaultUnits: units}, nil
}

func MustCreateWeight(value float64, units byte) Weight {
	v, err := CreateWeight(value, units)
	if err != nil {
		panic(err)
	}
	return v
}

//Value returns the value of the weight in the specified units.
func (v Weight) Value(units byte) (float64, error) {
	return weightFromDefault(v.value, units)
}

//In converts the value in the specified units.
//Returns 0 if unit conversion is not possible.
func (v Weight) In(units byte) float64 {
	x, e := weightFromDefault(v.value, units)
	if e != nil {
		return 0
	}
	return x
}

func (v Weight) String() string {
	x, e := weightFromDefault(v.value, v.defaultUnits)
	if e != nil {
		return "!error: default units aren't correct"
	}
	return fmt.Sprintf("%.0fgr", x)
}

func (v Weight) Units() byte {
	return v.defaultUnits
}
