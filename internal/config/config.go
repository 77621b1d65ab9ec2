// Package config defines the runtime settings of stockmax and loads them
// from an optional YAML file, the environment and command line flags.
package config

import (
	"fmt"
	"strings"

	"github.com/iwvelando/stockmax/internal/loader"
	"github.com/iwvelando/stockmax/internal/stockparser"
	"github.com/iwvelando/stockmax/pkg/constants"
	"github.com/iwvelando/stockmax/pkg/price"
	"github.com/iwvelando/stockmax/pkg/validation"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for stockmax.
type Configuration struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Output  OutputConfig  `mapstructure:"output"`
	Parser  ParserConfig  `mapstructure:"parser"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `mapstructure:"level"`      // debug, info, warn, error
	Format     string `mapstructure:"format"`     // json, console
	OutputFile string `mapstructure:"outputFile"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `mapstructure:"format"` // pretty, csv
}

// ParserConfig controls how price tables are read and compared.
type ParserConfig struct {
	Comparison string `mapstructure:"comparison"` // numeric, lexical
	Encoding   string `mapstructure:"encoding"`   // utf-8, latin-1
	Sheet      string `mapstructure:"sheet"`      // workbook sheet, first if empty
}

// flagKeys maps configuration keys to the command line flags overriding them.
var flagKeys = map[string]string{
	"logging.level":     "log-level",
	"output.format":     "output-format",
	"parser.comparison": "compare",
	"parser.encoding":   "encoding",
	"parser.sheet":      "sheet",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", constants.DefaultLogLevel)
	v.SetDefault("logging.format", constants.DefaultLogFormat)
	v.SetDefault("logging.outputFile", "")
	v.SetDefault("output.format", constants.OutputFormatPretty)
	v.SetDefault("parser.comparison", constants.CompareNumeric)
	v.SetDefault("parser.encoding", constants.EncodingUTF8)
	v.SetDefault("parser.sheet", "")
}

// LoadConfiguration builds the configuration from defaults, the YAML file at
// configPath (skipped when empty), STOCKMAX_* environment variables and any
// flags in flags that were set explicitly, in increasing precedence.
func LoadConfiguration(configPath string, flags *pflag.FlagSet) (*Configuration, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file, %s", err)
		}
	}

	if flags != nil {
		for key, name := range flagKeys {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("unable to bind flag %s, %s", name, err)
			}
		}
	}

	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// Validate rejects unsupported values with an InvalidOption error.
func (c *Configuration) Validate() error {
	checks := []error{
		validation.ValidateLogLevel(c.Logging.Level),
		validation.ValidateLogFormat(c.Logging.Format),
		validation.ValidateOutputFormat(c.Output.Format),
		loader.ValidateEncoding(c.Parser.Encoding),
	}
	if _, err := price.ParseMode(c.Parser.Comparison); err != nil {
		checks = append(checks, err)
	}
	for _, err := range checks {
		if err != nil {
			return stockparser.Wrap(stockparser.InvalidOption, err, "invalid configuration")
		}
	}
	return nil
}

// ComparisonMode returns the configured price ordering, numeric when unset.
func (c *Configuration) ComparisonMode() price.Mode {
	mode, err := price.ParseMode(c.Parser.Comparison)
	if err != nil {
		return price.Numeric
	}
	return mode
}
