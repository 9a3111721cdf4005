// Emcodec is an offline inspection tool for EM charging station datagrams.
//
// It encodes settings into wire frames, decodes captured frames into their
// fields, and converts device timestamps and obfuscated passwords. It never
// talks to a station; frames are exchanged as hex strings.
//
// Usage:
//
//	emcodec [command] [flags]
//
// See 'emcodec --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/emcodec/internal/config"
	"github.com/muurk/emcodec/internal/logging"
	"github.com/muurk/emcodec/internal/protocol"
	"github.com/muurk/emcodec/internal/version"
)

// Global flags
var (
	configPath string
	logLevel   string
	localTZ    string
	deviceTZ   string
	plain      bool
)

// Loaded in PersistentPreRunE
var (
	cfg   *config.Config
	codec *protocol.Codec
)

func main() {
	defer logging.Sync()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "emcodec",
	Short: "EM charging station datagram codec",
	Long: `Encode and decode datagrams of EM smart charging stations.

Frames are read and written as hex. Device timestamps are converted between
your timezone and the station's timezone, taken from the configuration file
or the --local-tz and --device-tz flags.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: OS config dir)/emcodec/config.yaml")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides "+logging.LogLevelEnvVar)
	rootCmd.PersistentFlags().StringVar(&localTZ, "local-tz", "", "Your IANA timezone (default: config, then system)")
	rootCmd.PersistentFlags().StringVar(&deviceTZ, "device-tz", "", "Station IANA timezone (default: config, then Asia/Shanghai)")
	rootCmd.PersistentFlags().BoolVar(&plain, "plain", false, "Plain output without boxes")

	rootCmd.AddCommand(versionCmd)
}

// setup loads the configuration, applies flag overrides and builds the codec.
func setup() error {
	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return err
	}

	// --log-level, then EMCODEC_LOG_LEVEL, then the config file
	switch {
	case logLevel != "":
		err = logging.Initialize(logLevel)
	case os.Getenv(logging.LogLevelEnvVar) != "" || cfg.LogLevel == "":
		err = logging.InitializeFromEnv()
	default:
		err = logging.Initialize(cfg.LogLevel)
	}
	if err != nil {
		return err
	}

	if localTZ != "" {
		cfg.LocalTimezone = localTZ
	}
	if deviceTZ != "" {
		cfg.DeviceTimezone = deviceTZ
	}
	conv, err := cfg.Converter()
	if err != nil {
		return err
	}
	codec = protocol.NewCodec(conv)
	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("emcodec %s\n", version.Full())
	},
}
