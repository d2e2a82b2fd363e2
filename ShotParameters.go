package go_zerotarget

import "github.com/gehtsoft-usa/go_zerotarget/bmath/unit"

//ShotParameters struct keeps parameters of the shot to be calculated
type ShotParameters struct {
	distance unit.Distance
}

//CreateShotParameters creates parameters of the shot
//
//distance - is the actual distance to the target
func CreateShotParameters(distance unit.Distance) ShotParameters {
	return ShotParameters{distance: distance}
}

//Distance returns the actual distance to the target
func (v ShotParameters) Distance() unit.Distance {
	return v.distance
}
