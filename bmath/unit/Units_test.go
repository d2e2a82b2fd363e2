package unit_test

import (
	"math"
	"testing"

	"github.com/gehtsoft-usa/go_zerotarget/bmath/unit"
)

func angularBackAndForth(t *testing.T, value float64, units byte) {
	u, e1 := unit.CreateAngular(value, units)
	if e1 != nil {
		t.Errorf("Creation failed for %d", units)
		return
	}
	v, e2 := u.Value(units)
	if !(e2 == nil && math.Abs(v-value) < 1e-7 && math.Abs(v-u.In(units)) < 1e-7) {
		t.Errorf("Read back failed for %d", units)
	}
}

func distanceBackAndForth(t *testing.T, value float64, units byte) {
	u, e1 := unit.CreateDistance(value, units)
	if e1 != nil {
		t.Errorf("Creation failed for %d", units)
		return
	}
	v, e2 := u.Value(units)
	if !(e2 == nil && v == value && v == u.In(units)) {
		t.Errorf("Read back failed for %d", units)
	}
}

func TestAngular(t *testing.T) {
	angularBackAndForth(t, 3, unit.AngularMOA)
	angularBackAndForth(t, 3, unit.AngularInchesPer100Yd)
	angularBackAndForth(t, -0.45, unit.AngularMOA)

	u := unit.MustCreateAngular(1, unit.AngularInchesPer100Yd)
	if math.Abs(0.954930-u.In(unit.AngularMOA)) > 1e-5 {
		t.Errorf("Conversion failed")
	}
	if u.String() != "1.00inch/100yd" {
		t.Errorf("To string failed: %s", u.String())
	}
	if u.Convert(unit.AngularMOA).String() != "0.95moa" {
		t.Errorf("Convert failed: %s", u.Convert(unit.AngularMOA).String())
	}
	if unit.MustCreateAngular(2, unit.AngularMOA).Convert(unit.AngularInchesPer100Yd).String() != "2.09inch/100yd" {
		t.Errorf("Convert failed")
	}

	if _, err := unit.CreateAngular(1, 99); err == nil {
		t.Errorf("Unsupported unit accepted")
	}
}

func TestDistance(t *testing.T) {
	distanceBackAndForth(t, 3, unit.DistanceFoot)
	distanceBackAndForth(t, 3, unit.DistanceInch)
	distanceBackAndForth(t, 3, unit.DistanceYard)
	distanceBackAndForth(t, 10.5, unit.DistanceInch)
	distanceBackAndForth(t, 11.5, unit.DistanceInch)

	d := unit.MustCreateDistance(25, unit.DistanceYard)
	if d.In(unit.DistanceFoot) != 75 {
		t.Errorf("Yards to feet failed: %f", d.In(unit.DistanceFoot))
	}
	if d.In(unit.DistanceInch) != 900 {
		t.Errorf("Yards to inches failed: %f", d.In(unit.DistanceInch))
	}
	if d.Convert(unit.DistanceFoot).String() != "75.00'" {
		t.Errorf("To string failed: %s", d.Convert(unit.DistanceFoot).String())
	}
	if d.String() != "25.0yd" {
		t.Errorf("To string failed: %s", d.String())
	}

	if _, err := unit.CreateDistance(1, unit.VelocityFPS); err == nil {
		t.Errorf("Unsupported unit accepted")
	}
}

func TestVelocity(t *testing.T) {
	v := unit.MustCreateVelocity(3165, unit.VelocityFPS)
	if v.In(unit.VelocityFPS) != 3165 {
		t.Errorf("Read back failed")
	}
	if v.String() != "3165ft/s" {
		t.Errorf("To string failed: %s", v.String())
	}
	if _, err := unit.CreateVelocity(1, unit.DistanceYard); err == nil {
		t.Errorf("Unsupported unit accepted")
	}
}

func TestWeight(t *testing.T) {
	w := unit.MustCreateWeight(55, unit.WeightGrain)
	if w.In(unit.WeightGrain) != 55 {
		t.Errorf("Read back failed")
	}
	if w.String() != "55gr" {
		t.Errorf("To string failed: %s", w.String())
	}
}

func TestInchesPerMOA(t *testing.T) {
	if math.Abs(unit.InchesPerMOA(unit.MustCreateDistance(100, unit.DistanceYard))-1.047) > 1e-9 {
		t.Errorf("InchesPerMOA at 100yd failed")
	}
	if math.Abs(unit.InchesPerMOA(unit.MustCreateDistance(25, unit.DistanceYard))-0.26175) > 1e-9 {
		t.Errorf("InchesPerMOA at 25yd failed")
	}
	if math.Abs(unit.InchesPerMOA(unit.MustCreateDistance(300, unit.DistanceFoot))-1.047) > 1e-9 {
		t.Errorf("InchesPerMOA at 300ft failed")
	}

	moa := unit.MOAFromOffset(unit.MustCreateDistance(2.094, unit.DistanceInch), unit.MustCreateDistance(100, unit.DistanceYard))
	if math.Abs(moa-2) > 1e-9 {
		t.Errorf("MOAFromOffset failed: %f", moa)
	}
	if unit.MOAFromOffset(unit.MustCreateDistance(1, unit.DistanceInch), unit.Distance{}) != 0 {
		t.Errorf("MOAFromOffset at zero distance failed")
	}
}
