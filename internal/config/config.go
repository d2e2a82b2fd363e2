package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

//EnvPrefix is the prefix of environment variables overriding configuration keys,
//e.g. ZEROTARGET_SHEET_DPI.
const EnvPrefix = "ZEROTARGET"

//SheetConfig holds the page settings of the rendered target
type SheetConfig struct {
	Width     float64 `json:"width" mapstructure:"width"`
	Height    float64 `json:"height" mapstructure:"height"`
	DPI       int     `json:"dpi" mapstructure:"dpi"`
	Grid      bool    `json:"grid" mapstructure:"grid"`
	MOALabels bool    `json:"moaLabels" mapstructure:"moaLabels"`
}

//SetDefaults registers default values for every known key.
func SetDefaults() {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("title", "Custom Zeroing Target")
	viper.SetDefault("output", "zero_target.pdf")

	viper.SetDefault("sheet.width", 8.5)
	viper.SetDefault("sheet.height", 11.0)
	viper.SetDefault("sheet.dpi", 100)
	viper.SetDefault("sheet.grid", true)
	viper.SetDefault("sheet.moaLabels", true)
}

//Load sets default values, environment overrides and, when configFile is not
//empty, reads the file. The format follows the file extension (json, yaml, toml).
func Load(configFile string) error {
	SetDefaults()

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if configFile == "" {
		return nil
	}

	viper.SetConfigFile(configFile)
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}
	return nil
}

//GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}

//GetFloat64 returns a float config value.
func GetFloat64(key string) float64 {
	return viper.GetFloat64(key)
}

//GetInt returns an int config value.
func GetInt(key string) int {
	return viper.GetInt(key)
}

//GetBool returns a bool config value.
func GetBool(key string) bool {
	return viper.GetBool(key)
}

//GetSheetConfig returns the page settings.
func GetSheetConfig() SheetConfig {
	return SheetConfig{
		Width:     GetFloat64("sheet.width"),
		Height:    GetFloat64("sheet.height"),
		DPI:       GetInt("sheet.dpi"),
		Grid:      GetBool("sheet.grid"),
		MOALabels: GetBool("sheet.moaLabels"),
	}
}
