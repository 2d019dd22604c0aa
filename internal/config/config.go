// Package config loads the run options shared by the sonar and dive commands.
package config

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/juju/errors"
	"github.com/spf13/viper"

	"github.com/tanadeau/advent-of-code-2021/internal/input"
)

// EnvPrefix prefixes environment variables, e.g. SUBNAV_MODE=buffered.
const EnvPrefix = "subnav"

// Config holds options for one run.
type Config struct {
	Mode       input.Mode   `mapstructure:"mode" validate:"oneof=rewind buffered"`
	Policy     input.Policy `mapstructure:"policy" validate:"oneof=strict skip"`
	Window     int          `mapstructure:"window" validate:"min=1"`
	Debug      bool         `mapstructure:"debug"`
	CPUProfile string       `mapstructure:"cpuprofile"`
	MemProfile string       `mapstructure:"memprofile"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Mode:   input.ModeRewind,
		Policy: input.PolicyStrict,
		Window: 3,
	}
}

// SetDefaults registers Default values on v.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("mode", string(d.Mode))
	v.SetDefault("policy", string(d.Policy))
	v.SetDefault("window", d.Window)
	v.SetDefault("debug", d.Debug)
	v.SetDefault("cpuprofile", d.CPUProfile)
	v.SetDefault("memprofile", d.MemProfile)
}

// Load reads the config file named by the "config" key (if any), overlays
// environment variables and returns the validated result. Fields named in
// except (e.g. "Window") are not validated.
func Load(v *viper.Viper, except ...string) (*Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Annotatef(err, "could not read config %s", path)
		}
	}

	var conf Config
	if err := v.Unmarshal(&conf); err != nil {
		return nil, errors.Trace(err)
	}
	if err := conf.Validate(except...); err != nil {
		return nil, err
	}
	return &conf, nil
}

// Validate checks option values, skipping the fields named in except.
func (c *Config) Validate(except ...string) error {
	var err error
	if validate := validator.New(); len(except) > 0 {
		err = validate.StructExcept(c, except...)
	} else {
		err = validate.Struct(c)
	}
	if err != nil {
		var errs validator.ValidationErrors
		if errors.As(err, &errs) && len(errs) > 0 {
			fe := errs[0]
			return errors.NotValidf("%s %v", strings.ToLower(fe.Field()), fe.Value())
		}
		return errors.Trace(err)
	}
	return nil
}
