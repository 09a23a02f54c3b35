// Package cmd implements the miidump command line.
package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arloliu/mii/config"
	"github.com/arloliu/mii/database"
	"github.com/arloliu/mii/format"
)

// app is the state shared by all subcommands of one invocation.
type app struct {
	configPath string
	variant    string
	file       string
	logLevel   string

	cfg    *config.Config
	logger *slog.Logger
}

// NewRootCmd builds the miidump command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "miidump",
		Short: "Inspect and extract Miis from Wii, Wii U and 3DS databases",
		Long: `miidump reads the Mii databases kept by the Wii Mii Channel (RFL_DB.dat),
Wii U Mii Maker (FFL_ODB.dat) and 3DS Mii Maker (CFL_DB.dat), validates every
record checksum, and lists or exports the Miis it finds.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "configuration file (default "+config.DefaultPath()+" if present)")
	flags.StringVarP(&a.variant, "type", "t", "wii_plaza", "database type: wii_plaza, wii_parade, wiiu, 3ds")
	flags.StringVarP(&a.file, "file", "f", "", "database file (default from config or the console's file name)")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(
		newListCmd(a),
		newShowCmd(a),
		newExportCmd(a),
		newPackCmd(a),
		newStatsCmd(a),
	)

	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg := config.DefaultConfig()

	path := a.configPath
	if path == "" && config.Exists(config.DefaultPath()) {
		path = config.DefaultPath()
	}
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}
	a.cfg = cfg

	level, err := cfg.LogLevel()
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(cfg.Logging.Format, "json") {
		a.logger = slog.New(slog.NewJSONHandler(cmd.ErrOrStderr(), opts))
	} else {
		a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), opts))
	}

	return nil
}

// selected resolves the --type flag.
func (a *app) selected() (format.Variant, error) {
	return format.ParseVariant(a.variant)
}

// open loads the database chosen by --type and --file.
func (a *app) open() (*database.Database, error) {
	v, err := a.selected()
	if err != nil {
		return nil, err
	}

	path := a.file
	if path == "" {
		path = a.cfg.PathFor(v)
	}

	return database.Load(path, v, database.WithLogger(a.logger))
}
