package go_zerotarget

import "github.com/gehtsoft-usa/go_zerotarget/bmath/unit"

//Timespan keeps the amount of time spent
type Timespan struct {
	time float64
}

//TotalSeconds returns the total number of seconds
func (v Timespan) TotalSeconds() float64 {
	return v.time
}

//TrajectoryData structure keeps the expected point of impact of one shot
//relative to the point of aim.
type TrajectoryData struct {
	distance         unit.Distance
	zeroDistance     unit.Distance
	velocity         unit.Velocity
	time             Timespan
	zeroTime         Timespan
	drop             unit.Distance
	zeroDrop         unit.Distance
	offset           unit.Distance
	offsetAdjustment unit.Angular
}

//Distance returns the actual distance to the target
func (v TrajectoryData) Distance() unit.Distance {
	return v.distance
}

//ZeroDistance returns the distance at which the weapon is zeroed
func (v TrajectoryData) ZeroDistance() unit.Distance {
	return v.zeroDistance
}

//Velocity returns the velocity assumed for the whole flight
func (v TrajectoryData) Velocity() unit.Velocity {
	return v.velocity
}

//Time returns the time of flight to the target
func (v TrajectoryData) Time() Timespan {
	return v.time
}

//ZeroTime returns the time of flight to the zero distance
func (v TrajectoryData) ZeroTime() Timespan {
	return v.zeroTime
}

//Drop returns the fall of the projectile at the target, unrounded
func (v TrajectoryData) Drop() unit.Distance {
	return v.drop
}

//ZeroDrop returns the fall of the projectile at the zero distance, unrounded
func (v TrajectoryData) ZeroDrop() unit.Distance {
	return v.zeroDrop
}

//Offset returns how far below the point of aim the projectile hits.
//
//The value is rounded to the calculator precision. A negative
//value means the point of impact is above the point of aim.
func (v TrajectoryData) Offset() unit.Distance {
	return v.offset
}

//OffsetAdjustment returns the offset as an angle seen from the muzzle, using
//1.047" per minute of angle at 100 yards
func (v TrajectoryData) OffsetAdjustment() unit.Angular {
	return v.offsetAdjustment
}
