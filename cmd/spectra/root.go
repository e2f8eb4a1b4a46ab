package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const envPrefix = "SPECTRA"

type app struct {
	v          *viper.Viper
	configFile string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "spectra",
		Short: "Synthesize a test signal and print its power spectrum",
		Long: `spectra builds a signal from integer frequencies, optionally windows and
normalizes it, transforms it with the direct DFT or a radix-2 FFT, and prints
the power spectrum scaled to 0..100 with summary statistics.

Without a subcommand it behaves like "spectra run".`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.initConfig(cmd)
		},
		RunE: a.runSpectrum,
	}

	root.PersistentFlags().StringVar(&a.configFile, "config", "",
		"config file (default is ./spectra.yaml or $HOME/.config/spectra/spectra.yaml)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "info",
		"log level (debug, info, warn, error)")
	addRunFlags(root.Flags())

	root.AddCommand(newRunCmd(a), newWindowsCmd())

	return root
}

// initConfig layers the config file and environment under the flags of the
// command being executed.
func (a *app) initConfig(cmd *cobra.Command) error {
	v := a.v

	if a.configFile != "" {
		v.SetConfigFile(a.configFile)
	} else {
		v.SetConfigName("spectra")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "spectra"))
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.configFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	return v.BindPFlags(cmd.Flags())
}

// newLogger builds a console logger writing to w at the configured level.
func (a *app) newLogger(w io.Writer) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(a.v.GetString("log-level"))
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), level)

	return zap.New(core), nil
}
