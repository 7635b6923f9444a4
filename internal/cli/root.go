// Package cli builds the rainwater command line.
package cli

import (
	"fmt"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/rainwater/internal/app"
	"github.com/bft-labs/rainwater/internal/cliconfig"
	"github.com/bft-labs/rainwater/pkg/log"
)

// ResultFormat is the line written to standard output on success.
const ResultFormat = "The volume of water for the test is %d\n"

const longHelp = `Compute the volume of rain water trapped by a fixed elevation map.

The map is split at its highest bar. Each side is then solved in one pass
against the running maximum from the outer edge. Logs go to stderr and the
result line to stdout.

Configuration is read from $HOME/.rainwater/config.toml, then RAINWATER_*
environment variables, then flags.`

// DemoLandscape returns a fresh copy of the demonstration elevation map.
func DemoLandscape() []int {
	return []int{5, 2, 3, 4, 5, 4, 0, 3, 1}
}

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

// NewRootCommand returns the rainwater command. Output goes to the
// command's configured out and err writers.
func NewRootCommand() *cobra.Command {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	root := &cobra.Command{
		Use:           "rainwater",
		Short:         "Compute the volume of water trapped by an elevation map",
		Long:          longHelp,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if err := loadConfig(&cfg, cfgPath, changed); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger, err := log.NewZerologAdapterFor(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
			if err != nil {
				return fmt.Errorf("create logger: %w", err)
			}
			logger.Debug("configuration", log.Any("config", cfg))

			calc := app.NewCalculator(
				app.WithLogger(logger),
				app.WithVerify(cfg.Verify),
				app.WithBasins(cfg.Basins),
			)
			res, err := calc.Calculate(DemoLandscape())
			if err != nil {
				return fmt.Errorf("calculate: %w", err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), ResultFormat, res.Volume)
			return err
		},
	}

	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.rainwater/config.toml)")
	root.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn or error")
	root.Flags().StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format: console or json")
	root.Flags().BoolVar(&cfg.Verify, "verify", cfg.Verify, "cross-check the result against the per-position reference algorithm")
	root.Flags().BoolVar(&cfg.Basins, "basins", cfg.Basins, "log every individual basin at debug level")

	return root
}

// loadConfig layers the config file and RAINWATER_* variables under any
// explicitly set flags. A missing default config file is not an error; a
// missing file named with --config is.
func loadConfig(cfg *cliconfig.Config, path string, changed map[string]bool) error {
	if path == "" {
		path = cliconfig.DefaultConfigPath()
	} else if !cliconfig.FileExists(path) {
		return fmt.Errorf("load config: %s: %w", path, os.ErrNotExist)
	}

	if path != "" && cliconfig.FileExists(path) {
		fc, err := cliconfig.LoadFileConfig(path)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cliconfig.ApplyFileConfig(cfg, fc, changed)
	}

	cliconfig.ApplyEnvConfig(cfg, changed)
	return nil
}
