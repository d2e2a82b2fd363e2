package go_zerotarget

import "github.com/gehtsoft-usa/go_zerotarget/bmath/unit"

//The information about zeroing of the weapon
type ZeroInfo struct {
	zeroDistance unit.Distance
}

//Returns the distance at which the weapon was zeroed
func (v ZeroInfo) ZeroDistance() unit.Distance {
	return v.zeroDistance
}

//Creates zero information using distance only
//
//The sight is assumed to put the point of impact exactly
//on the point of aim at this distance.
func CreateZeroInfo(distance unit.Distance) ZeroInfo {
	return ZeroInfo{zeroDistance: distance}
}

//The weapon description
type Weapon struct {
	barrelLength unit.Distance
	zeroInfo     ZeroInfo
}

func (v Weapon) BarrelLength() unit.Distance {
	return v.barrelLength
}

func (v Weapon) Zero() ZeroInfo {
	return v.zeroInfo
}

//Create weapon with the barrel length and zero specified
func CreateWeapon(barrelLength unit.Distance, zeroInfo ZeroInfo) Weapon {
	return Weapon{barrelLength: barrelLength, zeroInfo: zeroInfo}
}
