package go_zerotarget

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/gehtsoft-usa/go_zerotarget/bmath/unit"
)

//AmmunitionLookupError is returned when the velocity table has no entry
//for the caliber, bullet weight and barrel length requested
type AmmunitionLookupError struct {
	Caliber      Caliber
	Grain        int
	BarrelLength float64 //inches
}

func (e *AmmunitionLookupError) Error() string {
	return fmt.Sprintf("no velocity data for %s %dgr with %s\" barrel",
		e.Caliber, e.Grain, strconv.FormatFloat(e.BarrelLength, 'f', -1, 64))
}

//muzzle velocities, fps, by caliber, bullet weight (gr) and barrel length (in)
//
//the table is never modified after initialization
var velocityTable = map[Caliber]map[int]map[float64]float64{
	Caliber556: {
		55: {10.5: 2700, 11.5: 2850, 12.5: 2950, 14.5: 3050, 16: 3165, 18: 3200, 20: 3250},
	},
	Caliber9mm: {
		124: {4: 1150, 5: 1200, 8: 1250, 10: 1300, 16: 1350},
	},
	Caliber10mm: {
		180: {4: 1150, 6: 1250, 10: 1350, 16: 1400},
	},
	Caliber45ACP: {
		230: {4: 850, 5: 875, 10: 950, 16: 1000},
	},
	Caliber308: {
		147: {16: 2550, 18: 2650, 20: 2700},
	},
	Caliber300BLK: {
		110: {9: 2200, 16: 2350},
		220: {9: 1000, 16: 1050},
	},
}

//representative bullet weight per caliber
var defaultGrains = map[Caliber]int{
	Caliber556:    55,
	Caliber9mm:    124,
	Caliber10mm:   180,
	Caliber45ACP:  230,
	Caliber308:    147,
	Caliber300BLK: 220,
}

//ResolveVelocity looks the muzzle velocity up in the velocity table.
//
//All three keys must match exactly, no interpolation between
//barrel lengths is done. *AmmunitionLookupError is returned otherwise.
func ResolveVelocity(caliber Caliber, grain int, barrelLength unit.Distance) (unit.Velocity, error) {
	barrel := barrelLength.In(unit.DistanceInch)
	fps, ok := velocityTable[caliber][grain][barrel]
	if !ok {
		return unit.Velocity{}, &AmmunitionLookupError{Caliber: caliber, Grain: grain, BarrelLength: barrel}
	}
	return unit.MustCreateVelocity(fps, unit.VelocityFPS), nil
}

//ResolveAmmunition creates the ammunition for the projectile fired from the weapon specified
func ResolveAmmunition(projectile Projectile, weapon Weapon) (Ammunition, error) {
	velocity, err := ResolveVelocity(projectile.Caliber(), projectile.Grain(), weapon.BarrelLength())
	if err != nil {
		return Ammunition{}, err
	}
	return CreateAmmunition(projectile, velocity), nil
}

//DefaultGrain returns the representative bullet weight of the caliber
func DefaultGrain(caliber Caliber) (int, bool) {
	grain, ok := defaultGrains[caliber]
	return grain, ok
}

//Grains returns bullet weights known for the caliber, lightest first
func Grains(caliber Caliber) []int {
	grains := make([]int, 0, len(velocityTable[caliber]))
	for g := range velocityTable[caliber] {
		grains = append(grains, g)
	}
	sort.Ints(grains)
	return grains
}

//BarrelLengths returns barrel lengths, in inches, known for the caliber and
//bullet weight, shortest first
func BarrelLengths(caliber Caliber, grain int) []float64 {
	barrels := make([]float64, 0, len(velocityTable[caliber][grain]))
	for b := range velocityTable[caliber][grain] {
		barrels = append(barrels, b)
	}
	sort.Float64s(barrels)
	return barrels
}
