package go_zerotarget

import (
	"fmt"
	"strings"

	"github.com/gehtsoft-usa/go_zerotarget/bmath/unit"
)

//Caliber identifies a cartridge family supported by the velocity table
type Caliber string

const (
	Caliber556    Caliber = "5.56"
	Caliber9mm    Caliber = "9mm"
	Caliber10mm   Caliber = "10mm"
	Caliber45ACP  Caliber = "45acp"
	Caliber308    Caliber = "308"
	Caliber300BLK Caliber = "300blk"
)

var calibers = []Caliber{
	Caliber556,
	Caliber9mm,
	Caliber10mm,
	Caliber45ACP,
	Caliber308,
	Caliber300BLK,
}

//Calibers returns all supported calibers in a stable order
func Calibers() []Caliber {
	return append([]Caliber(nil), calibers...)
}

//ParseCaliber returns the caliber named by s.
//
//Only exact names are accepted, e.g. "5.56" or "300blk".
func ParseCaliber(s string) (Caliber, error) {
	for _, c := range calibers {
		if string(c) == s {
			return c, nil
		}
	}
	names := make([]string, len(calibers))
	for i, c := range calibers {
		names[i] = string(c)
	}
	return "", fmt.Errorf("unsupported caliber %q (choose from %s)", s, strings.Join(names, ", "))
}

func (c Caliber) String() string {
	return string(c)
}

//Projectile keeps description of a projectile: its caliber and bullet weight
type Projectile struct {
	caliber Caliber
	grain   int
}

//CreateProjectile creates the description of a projectile
func CreateProjectile(caliber Caliber, grain int) Projectile {
	return Projectile{caliber: caliber, grain: grain}
}

//CreateDefaultProjectile creates the projectile using the representative bullet
//weight of the caliber
func CreateDefaultProjectile(caliber Caliber) (Projectile, error) {
	grain, ok := DefaultGrain(caliber)
	if !ok {
		return Projectile{}, fmt.Errorf("no default bullet weight for caliber %q", caliber)
	}
	return CreateProjectile(caliber, grain), nil
}

//Caliber returns the caliber of the projectile
func (v Projectile) Caliber() Caliber {
	return v.caliber
}

//Grain returns the bullet weight in grains as used for the velocity lookup
func (v Projectile) Grain() int {
	return v.grain
}

//BulletWeight returns weight of the projectile
func (v Projectile) BulletWeight() unit.Weight {
	return unit.MustCreateWeight(float64(v.grain), unit.WeightGrain)
}

//Ammunition struct keeps the description of ammunition fired from a particular barrel
type Ammunition struct {
	projectile     Projectile
	muzzleVelocity unit.Velocity
}

//CreateAmmunition creates the description of the ammunition
func CreateAmmunition(bullet Projectile, muzzleVelocity unit.Velocity) Ammunition {
	return Ammunition{
		projectile:     bullet,
		muzzleVelocity: muzzleVelocity,
	}
}

//Bullet returns the description of the projectile
func (v Ammunition) Bullet() Projectile {
	return v.projectile
}

//MuzzleVelocity returns the velocity of the projectile at the muzzle
func (v Ammunition) MuzzleVelocity() unit.Velocity {
	return v.muzzleVelocity
}
