//Command zerotarget generates a printable zeroing target marked with the
//expected point of impact at the actual shooting distance.
//
//	zerotarget --zero 36 --actual 25 --barrel 16 --caliber 5.56 --output carbine.png
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strings"

	"github.com/gogpu/gg"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/gehtsoft-usa/go_zerotarget"
	"github.com/gehtsoft-usa/go_zerotarget/bmath/unit"
	"github.com/gehtsoft-usa/go_zerotarget/internal/config"
	"github.com/gehtsoft-usa/go_zerotarget/internal/logging"
	"github.com/gehtsoft-usa/go_zerotarget/target"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

var requiredFlags = []string{"zero", "actual", "barrel", "caliber"}

type options struct {
	zero    float64
	actual  float64
	barrel  float64
	caliber go_zerotarget.Caliber
	title   string
	output  string
	sheet   target.Sheet
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func newFlagSet(stderr io.Writer) *pflag.FlagSet {
	names := make([]string, 0, len(go_zerotarget.Calibers()))
	for _, c := range go_zerotarget.Calibers() {
		names = append(names, c.String())
	}

	flags := pflag.NewFlagSet("zerotarget", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Float64("zero", 0, "Zero distance in yards (e.g. 36)")
	flags.Float64("actual", 0, "Actual shooting distance in yards (e.g. 25)")
	flags.Float64("barrel", 0, "Barrel length in inches (e.g. 11.5)")
	flags.String("caliber", "", "Caliber, one of: "+strings.Join(names, ", "))
	flags.String("title", "Custom Zeroing Target", "Title for the target")
	flags.String("output", "zero_target.pdf", "Output filename (.pdf, .png, .jpg)")
	flags.String("config", "", "Optional configuration file (json, yaml, toml)")
	flags.String("log-level", "info", "Log level (debug, info, warn, error)")
	return flags
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := newFlagSet(stderr)
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	configFile, _ := flags.GetString("config")
	if err := config.Load(configFile); err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	_ = viper.BindPFlag("title", flags.Lookup("title"))
	_ = viper.BindPFlag("output", flags.Lookup("output"))
	_ = viper.BindPFlag("logLevel", flags.Lookup("log-level"))

	logger := logging.New(stderr, config.GetString("logLevel"))
	gg.SetLogger(slog.New(logging.NewSlogHandler(logger)))

	opts, err := parseOptions(flags)
	if err != nil {
		fmt.Fprintf(stderr, "zerotarget: %v\nUsage of zerotarget:\n", err)
		flags.PrintDefaults()
		return exitUsage
	}

	data, err := generate(opts, logger)
	if err != nil {
		logger.Error().Err(err).Msg("target not generated")
		var lookupErr *go_zerotarget.AmmunitionLookupError
		if errors.As(err, &lookupErr) {
			logger.Info().
				Str("caliber", lookupErr.Caliber.String()).
				Int("grain", lookupErr.Grain).
				Floats64("barrels", go_zerotarget.BarrelLengths(lookupErr.Caliber, lookupErr.Grain)).
				Msg("available barrel lengths")
		}
		return exitError
	}

	logger.Info().
		Str("offset", data.Offset().String()).
		Str("adjustment", data.OffsetAdjustment().String()).
		Str("adjustmentLinear", data.OffsetAdjustment().Convert(unit.AngularInchesPer100Yd).String()).
		Msg("point of impact computed")
	fmt.Fprintf(stdout, "Target saved to: %s\n", opts.output)
	return exitOK
}

func parseOptions(flags *pflag.FlagSet) (options, error) {
	for _, name := range requiredFlags {
		if !flags.Changed(name) {
			return options{}, fmt.Errorf("flag --%s is required", name)
		}
	}

	var opts options
	opts.zero, _ = flags.GetFloat64("zero")
	opts.actual, _ = flags.GetFloat64("actual")
	opts.barrel, _ = flags.GetFloat64("barrel")
	positive := []struct {
		name  string
		value float64
	}{{"zero", opts.zero}, {"actual", opts.actual}, {"barrel", opts.barrel}}
	for _, p := range positive {
		if math.IsNaN(p.value) || math.IsInf(p.value, 0) || p.value <= 0 {
			return options{}, fmt.Errorf("flag --%s must be a positive number, got %v", p.name, p.value)
		}
	}

	name, _ := flags.GetString("caliber")
	caliber, err := go_zerotarget.ParseCaliber(name)
	if err != nil {
		return options{}, err
	}
	opts.caliber = caliber

	opts.title = config.GetString("title")
	opts.output = config.GetString("output")
	if _, err := target.FormatFor(opts.output); err != nil {
		return options{}, err
	}

	sc := config.GetSheetConfig()
	opts.sheet = target.Sheet{
		Width:     sc.Width,
		Height:    sc.Height,
		DPI:       sc.DPI,
		Grid:      sc.Grid,
		MOALabels: sc.MOALabels,
	}
	if err := opts.sheet.Validate(); err != nil {
		return options{}, err
	}
	return opts, nil
}

//generate computes the point of impact and saves the target. Nothing is
//written when the ammunition cannot be resolved.
func generate(opts options, logger zerolog.Logger) (go_zerotarget.TrajectoryData, error) {
	projectile, err := go_zerotarget.CreateDefaultProjectile(opts.caliber)
	if err != nil {
		return go_zerotarget.TrajectoryData{}, err
	}
	weapon := go_zerotarget.CreateWeapon(
		unit.MustCreateDistance(opts.barrel, unit.DistanceInch),
		go_zerotarget.CreateZeroInfo(unit.MustCreateDistance(opts.zero, unit.DistanceYard)),
	)

	ammo, err := go_zerotarget.ResolveAmmunition(projectile, weapon)
	if err != nil {
		return go_zerotarget.TrajectoryData{}, err
	}
	logger.Debug().
		Str("caliber", opts.caliber.String()).
		Str("bullet", projectile.BulletWeight().String()).
		Str("barrel", weapon.BarrelLength().String()).
		Str("velocity", ammo.MuzzleVelocity().String()).
		Msg("muzzle velocity resolved")

	calc := go_zerotarget.CreateTrajectoryCalculator()
	data := calc.PointOfImpact(ammo, weapon,
		go_zerotarget.CreateShotParameters(unit.MustCreateDistance(opts.actual, unit.DistanceYard)))

	plan := target.Layout(opts.sheet, target.NewAnnotation(opts.title, ammo, weapon, data))
	if err := target.Save(plan, opts.output); err != nil {
		return go_zerotarget.TrajectoryData{}, fmt.Errorf("saving target: %w", err)
	}
	return data, nil
}
