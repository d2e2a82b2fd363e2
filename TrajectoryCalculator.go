package go_zerotarget

import (
	"math"

	"github.com/gehtsoft-usa/go_zerotarget/bmath/unit"
	"github.com/gehtsoft-usa/go_zerotarget/bmath/vector"
)

const cGravityConstant float64 = 32.174
const cFeetPerYard float64 = 3
const cInchesPerFoot float64 = 12
const cDefaultOffsetDecimals int = 2

//TrajectoryCalculator estimates where the bullet hits relative to the point of aim.
//
//The projectile is assumed to keep its muzzle velocity for the whole flight
//and to fall freely; drag is not modeled.
type TrajectoryCalculator struct {
	offsetDecimals int
}

//CreateTrajectoryCalculator creates and instance of the trajectory calculator
func CreateTrajectoryCalculator() TrajectoryCalculator {
	return TrajectoryCalculator{offsetDecimals: cDefaultOffsetDecimals}
}

//OffsetDecimals returns the number of decimal places the offset is rounded to
func (v TrajectoryCalculator) OffsetDecimals() int {
	return v.offsetDecimals
}

//SetOffsetDecimals sets the number of decimal places the offset is rounded to
func (v *TrajectoryCalculator) SetOffsetDecimals(decimals int) {
	if decimals < 0 {
		decimals = 0
	}
	v.offsetDecimals = decimals
}

//ComputeOffset returns the vertical point of impact offset, in inches rounded
//to 2 decimal places, of a shot at trueDistance from a weapon zeroed at zeroDistance.
func ComputeOffset(zeroDistance, trueDistance unit.Distance, velocity unit.Velocity) unit.Distance {
	calc := CreateTrajectoryCalculator()
	return calc.Offset(zeroDistance, trueDistance, velocity)
}

//Offset returns the vertical point of impact offset of a shot at trueDistance from
//a weapon zeroed at zeroDistance. Positive values are low.
func (v TrajectoryCalculator) Offset(zeroDistance, trueDistance unit.Distance, velocity unit.Velocity) unit.Distance {
	fps := velocity.In(unit.VelocityFPS)
	_, drop := dropAt(trueDistance, fps)
	_, zeroDrop := dropAt(zeroDistance, fps)
	return unit.MustCreateDistance(v.round(drop-zeroDrop), unit.DistanceInch)
}

//PointOfImpact calculates the expected point of impact of the ammunition fired from
//the weapon with the parameters specified
func (v TrajectoryCalculator) PointOfImpact(ammunition Ammunition, weapon Weapon, shotInfo ShotParameters) TrajectoryData {
	fps := ammunition.MuzzleVelocity().In(unit.VelocityFPS)
	zeroDistance := weapon.Zero().ZeroDistance()
	distance := shotInfo.Distance()

	time, drop := dropAt(distance, fps)
	zeroTime, zeroDrop := dropAt(zeroDistance, fps)
	offset := unit.MustCreateDistance(v.round(drop-zeroDrop), unit.DistanceInch)

	return TrajectoryData{
		distance:         distance,
		zeroDistance:     zeroDistance,
		velocity:         ammunition.MuzzleVelocity(),
		time:             Timespan{time: time},
		zeroTime:         Timespan{time: zeroTime},
		drop:             unit.MustCreateDistance(drop, unit.DistanceInch),
		zeroDrop:         unit.MustCreateDistance(zeroDrop, unit.DistanceInch),
		offset:           offset,
		offsetAdjustment: unit.MustCreateAngular(unit.MOAFromOffset(offset, distance), unit.AngularMOA),
	}
}

//dropAt returns the time of flight, in seconds, and the fall of the projectile,
//in inches, at the distance specified
func dropAt(distance unit.Distance, velocity float64) (float64, float64) {
	rangeFeet := distance.In(unit.DistanceYard) * cFeetPerYard
	time := rangeFeet / velocity

	//x - distance towards target,
	//y - height above the line of departure
	gravityVector := vector.Create(0, -cGravityConstant)
	rangeVector := vector.Create(rangeFeet, 0).Add(gravityVector.MultiplyByConst(time * time).MultiplyByConst(0.5))
	return time, -rangeVector.Y * cInchesPerFoot
}

func (v TrajectoryCalculator) round(x float64) float64 {
	p := math.Pow(10, float64(v.offsetDecimals))
	r := math.Round(x*p) / p
	if r == 0 {
		//no negative zero
		return 0
	}
	return r
}
