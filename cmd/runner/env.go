package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/vovakirdan/color-runner/internal/config"
)

const envPrefix = "RUNNER"

var defaultDBPath = "~/" + config.AppDir + "/runner.db"

// bindEnv fills every flag not given on the command line from its
// RUNNER_<NAME> environment variable. Dashes in flag names become
// underscores, so --log-level reads RUNNER_LOG_LEVEL.
func bindEnv(fs *pflag.FlagSet) error {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	var errs []error
	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if f.Changed || !v.IsSet(f.Name) {
			return
		}
		if err := fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name))); err != nil {
			errs = append(errs, fmt.Errorf("invalid value for %s: %w", envName(f.Name), err))
		}
	})

	return errors.Join(errs...)
}

// envName returns the environment variable read for a flag.
func envName(flag string) string {
	return envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(flag, "-", "_"))
}
