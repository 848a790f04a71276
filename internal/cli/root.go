// Package cli implements the arcanist command tree.
package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mraflifirmansyah/arcanist/pkg/cow"
)

var (
	debugFlag bool
	logger    zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:           "arcanist",
	Short:         "Render messages as cowsay-style ASCII figures",
	Long:          "Arcanist wraps a message in a speech or thought balloon and renders it above an ASCII-art figure loaded from a cowfile.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable debug logging")
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func initConfig() error {
	level := zerolog.WarnLevel
	if debugFlag {
		level = zerolog.DebugLevel
	}
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		viper.AddConfigPath(filepath.Join(home, ".config", "arcanist"))
	}
	viper.SetEnvPrefix("arcanist")
	viper.AutomaticEnv()
	viper.SetDefault("cowfile", "default")
	viper.SetDefault("eyes", cow.DefaultEyes)
	viper.SetDefault("tongue", cow.DefaultTongue)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
		logger.Debug().Msg("no config file found, using defaults")
		return nil
	}

	logger.Debug().Str("file", viper.ConfigFileUsed()).Msg("loaded config")
	return nil
}
