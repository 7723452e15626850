// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ik5/soundbank/dataset"
	"github.com/ik5/soundbank/fetch"
	"github.com/ik5/soundbank/internal/config"
	"github.com/ik5/soundbank/internal/output"
)

var (
	// Global flags
	cfgFile      string
	rootDir      string
	outputFormat string
	workers      int
	verbose      bool

	globalConfig *config.Config
	stdout       io.Writer = os.Stdout
)

var rootCmd = &cobra.Command{
	Use:   "soundbank",
	Short: "Download and prepare the MiSo sound bank",
	Long: `soundbank downloads the MiSo sound-event recordings, cuts each one to its
annotated segment, resamples, normalizes and fades it, and writes 16-bit mono
WAV files next to the release metadata and label tables.

Examples:
  # Build the whole dataset into ./miso_sound_download
  soundbank audio

  # Two recordings only, normalized to -23 dBFS with the gain method
  soundbank audio --ids 1,2 --norm-level -23 --norm-method gain

  # Label table as JSON
  soundbank labels --output json --no-save
`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		initLogger()
		return initConfig(cmd)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.soundbank/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&rootDir, "root", "", "output root directory")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "yaml", "output format: yaml or json")
	rootCmd.PersistentFlags().IntVar(&workers, "workers", 0, "items processed at once")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(pathsCmd)
	rootCmd.AddCommand(audioCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(labelsCmd)
	rootCmd.AddCommand(processCmd)
}

func initLogger() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}

func initConfig(cmd *cobra.Command) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("initializing config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("root") {
		cfg.Root = rootDir
	}
	if flags.Changed("workers") {
		cfg.Workers = workers
	}

	if cfg.Path() != "" {
		slog.Debug("loaded config", slog.String("path", cfg.Path()))
	}

	globalConfig = cfg
	return nil
}

func newClient() (*fetch.Client, error) {
	timeout, err := globalConfig.HTTPTimeout()
	if err != nil {
		return nil, err
	}
	return fetch.New(fetch.WithTimeout(timeout)), nil
}

func newLoader() (*dataset.Loader, error) {
	client, err := newClient()
	if err != nil {
		return nil, err
	}
	return dataset.New(globalConfig.Dataset(), dataset.WithClient(client), dataset.WithLogger(slog.Default())), nil
}

func printResult(v any) error {
	format, err := output.ParseFormat(outputFormat)
	if err != nil {
		return err
	}
	return output.Write(stdout, format, v)
}
