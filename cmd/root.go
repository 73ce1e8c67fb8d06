package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/versync-dev/versync/internal/config"
	"github.com/versync-dev/versync/internal/observability"
	"github.com/versync-dev/versync/internal/semver"
	"github.com/versync-dev/versync/internal/syncer"
)

// newRootCmd builds the root command along with the config instance it
// populates. Tests construct fresh instances for isolation.
func newRootCmd() (*cobra.Command, *config.Config) {
	cfg := config.NewDefaultConfig()

	var (
		cfgFile string
		dryRun  bool
	)

	rootCmd := &cobra.Command{
		Use:     "versync [patch|minor|major]",
		Short:   "versync bumps a project's semantic version and syncs it into its manifests.",
		Args:    cobra.MaximumNArgs(1),
		Version: Version,
		// Errors are reported once, by Execute, as a single stderr line.
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initializeConfig(cmd, cfgFile); err != nil {
				return err
			}
			if err := viper.Unmarshal(cfg); err != nil {
				// Fall back to a default logger so the failure is still visible.
				observability.InitializeLogger(config.LoggerConfig{
					Level: "info", Format: "console", ServiceName: "versync",
				})
				return fmt.Errorf("failed to unmarshal config: %w", err)
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			observability.InitializeLogger(cfg.Logger)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := observability.GetLogger()

			arg := ""
			if len(args) == 1 {
				arg = args[0]
			}
			kind, err := semver.ParseBumpKind(arg)
			if err != nil {
				return err
			}

			logger.Info("starting version sync",
				zap.String("run_id", uuid.New().String()),
				zap.String("bump", kind.String()),
				zap.String("root", cfg.Sync.Root),
				zap.Bool("dry_run", dryRun),
			)

			s := syncer.New(cfg.Sync, logger.Named("syncer"))

			var res *syncer.Result
			if dryRun {
				res, err = s.DryRun(kind)
			} else {
				res, err = s.Run(kind)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "[VERSION] %s -> %s (%s)\n", res.Old, res.New, res.Kind)
			if dryRun {
				fmt.Fprintf(out, "[DRY RUN] No files were modified; %d dependent file(s) would be updated\n",
					len(res.Updated))
			} else {
				fmt.Fprintf(out, "[OK] Version updated to %s in all files\n", res.New)
			}
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&cfgFile, "config", "c", "", "config file (default is <root>/versync.yaml)")
	flags.StringP("root", "C", ".", "project root that all configured paths are relative to")
	flags.BoolVarP(&dryRun, "dry-run", "n", false, "report what would change without writing any files")
	rootCmd.SetVersionTemplate(`versync version {{printf "%s\n" .Version}}`)

	return rootCmd, cfg
}

// initializeConfig reads the config file and environment into the global
// viper instance and binds the flags that override config keys.
func initializeConfig(cmd *cobra.Command, cfgFile string) error {
	if err := viper.BindPFlag("sync.root", cmd.Flags().Lookup("root")); err != nil {
		return err
	}

	root := viper.GetString("sync.root")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(root)
		viper.SetConfigName("versync")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("VERSYNC")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
		// No config file; defaults, env vars and flags apply.
	}
	return nil
}

// Execute runs the root command, mapping any failure to exit code 1 with a
// single diagnostic line on stderr.
func Execute() {
	rootCmd, _ := newRootCmd()
	err := rootCmd.Execute()
	observability.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}
