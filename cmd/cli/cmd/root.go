// Package cmd provides the CLI commands for wrapquote.
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"wrapquote/internal/config"
	"wrapquote/internal/errors"
	"wrapquote/internal/logging"
)

// Version is the build version, overridden with -ldflags
var Version = "0.1.0"

// rootOptions is shared by every subcommand
type rootOptions struct {
	cfgFile string
	verbose bool
	cfg     *config.Config
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "wrapquote",
		Short: "Price vehicle vinyl wrap jobs",
		Long: `wrapquote estimates material, labor and retail price for vinyl wrap jobs.

It sizes the vinyl for a vehicle and wrap type, estimates installer hours,
and prices the job at a target margin or markup.

Examples:
  wrapquote estimate --vehicle cargo_van --wrap full_wrap
  wrapquote estimate --format json fleet.hcl
  wrapquote tables --xlsx rates.xlsx
  wrapquote serve`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.init()
		},
	}

	root.PersistentFlags().StringVar(&opts.cfgFile, "config", config.DefaultPath(), "config file")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")

	root.AddCommand(
		newEstimateCmd(opts),
		newTablesCmd(opts),
		newBrandsCmd(opts),
		newServeCmd(opts),
		newVersionCmd(),
		newConfigCmd(opts),
	)
	return root
}

// Execute runs the CLI
func Execute() error {
	return NewRootCmd().Execute()
}

func (o *rootOptions) init() error {
	cfg, err := config.Load(o.cfgFile)
	if err != nil {
		return err
	}
	if o.verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		return errors.Config("failed to initialize logging", err)
	}
	config.Set(cfg)
	o.cfg = cfg
	return nil
}

// newVersionCmd prints version information
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "wrapquote version %s\n", Version)
		},
	}
}

// newConfigCmd manages configuration
func newConfigCmd(opts *rootOptions) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := json.MarshalIndent(opts.cfg, "", "  ")
			if err != nil {
				return errors.Internal("failed to encode config", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	})

	var force bool
	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a default config file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.cfgFile
			if len(args) > 0 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil && !force {
				return errors.Newf(errors.TypeInput, "%s already exists (use --force to overwrite)", path)
			}
			if err := config.Default().Save(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	configCmd.AddCommand(initCmd)

	return configCmd
}
