package cmd

import (
	"io"
	"log/slog"
	"os"

	"github.com/kerbaras/perusahaan/pkg/app"
	"github.com/kerbaras/perusahaan/pkg/config"
	"github.com/kerbaras/perusahaan/pkg/data"
	"github.com/kerbaras/perusahaan/pkg/services"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// environment is what every command runs against. It is filled in by the
// root command's PersistentPreRunE once flags are parsed.
type environment struct {
	v       *viper.Viper
	cfgFile string

	cfg         *config.Config
	logger      *slog.Logger
	repos       data.Repositories
	controllers *services.Controllers
	logFile     *os.File
}

// newRootCmd builds the command tree with its own configuration. The
// environment it returns must be closed once Execute returns, whether or not
// the command failed.
func newRootCmd() (*cobra.Command, *environment) {
	env := &environment{v: config.New()}

	rootCmd := &cobra.Command{
		Use:   "perusahaan",
		Short: "Manage managers, property types, owners and properties",
		Long:  "Manage managers, property types, owners and properties from a TUI or the command line",
		Args:  cobra.NoArgs,
		// a failing command is not a usage error
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return env.setup(cmd, !cmd.HasParent())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Launch TUI by default
			return app.NewApp(env.controllers, env.cfg.Remote.Timeout, env.logger).Run()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&env.cfgFile, "config", "", "config file (default $HOME/.perusahaan/perusahaan.yaml)")
	flags.String("driver", "", "store driver: duckdb, sqlite, memory or remote")
	flags.String("db", "", "database file for the duckdb and sqlite drivers")
	flags.String("remote", "", "base URL of the REST API for the remote driver")
	flags.String("log-level", "", "debug, info, warn or error")
	bindFlags(env.v, flags, map[string]string{
		"store.driver": "driver",
		"store.path":   "db",
		"remote.url":   "remote",
		"log.level":    "log-level",
	})

	rootCmd.AddCommand(
		newListCmd(env),
		newGetCmd(env),
		newAddCmd(env),
		newUpdateCmd(env),
		newDeleteCmd(env),
		newSearchCmd(env),
		newServeCmd(env),
	)
	return rootCmd, env
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		cobra.CheckErr(v.BindPFlag(key, flags.Lookup(name)))
	}
}

// setup loads the configuration and opens the store. The TUI logs to
// log.file; every other command logs to stderr.
func (e *environment) setup(cmd *cobra.Command, tui bool) error {
	cfg, err := config.Load(e.v, e.cfgFile)
	if err != nil {
		return err
	}
	e.cfg = cfg

	var w io.Writer = cmd.ErrOrStderr()
	if tui {
		f, err := cfg.OpenLogFile()
		if err != nil {
			return err
		}
		e.logFile = f
		w = f
	}
	logger, err := cfg.NewLogger(w)
	if err != nil {
		return err
	}
	e.logger = logger.With(slog.String("driver", cfg.Store.Driver))

	repos, err := app.OpenRepositories(cfg)
	if err != nil {
		return err
	}
	e.repos = repos
	e.controllers = services.NewControllers(repos, e.logger)
	return nil
}

// close releases whatever setup managed to open. It is safe to call when
// setup never ran or failed halfway.
func (e *environment) close() error {
	err := e.repos.Close()
	e.repos = data.Repositories{}
	if e.logFile != nil {
		e.logFile.Close()
		e.logFile = nil
	}
	return err
}

// execute runs the command tree and closes the environment afterwards.
func execute(root *cobra.Command, env *environment) error {
	err := root.Execute()
	if cerr := env.close(); err == nil {
		err = cerr
	}
	return err
}

func Execute() {
	if err := execute(newRootCmd()); err != nil {
		os.Exit(1)
	}
}
