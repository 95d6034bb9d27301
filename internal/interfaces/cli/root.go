// Package cli is the command-line front end of the editor: one-shot cobra
// commands plus an interactive shell that keeps a session alive.
package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/riskibarqy/team-editor/internal/app"
	"github.com/riskibarqy/team-editor/internal/config"
	"github.com/riskibarqy/team-editor/internal/platform/logging"
	"github.com/riskibarqy/team-editor/internal/usecase"
	"github.com/spf13/cobra"
)

// Version is stamped at build time with -ldflags.
var Version = "dev"

type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

func StdStreams() Streams {
	return Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

type runtime struct {
	streams     Streams
	in          *bufio.Reader
	interactive bool

	configFile string
	dbPath     string
	jsonOutput bool
	assumeYes  bool

	cfg       config.Config
	logger    *logging.Logger
	logCloser io.Closer
	session   *usecase.Session
	out       *printer
}

// Execute runs the command line in args and returns the process exit code.
func Execute(ctx context.Context, args []string, streams Streams) int {
	root, rt := newRootCommand(streams)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	rt.teardown()
	if err != nil {
		newPrinter(streams.Err, false).errorLine(err)
		return mapError(err).ExitCode
	}
	return ExitOK
}

func newRootCommand(streams Streams) (*cobra.Command, *runtime) {
	rt := &runtime{
		streams:     streams,
		in:          bufio.NewReader(streams.In),
		interactive: isTerminal(streams.In),
	}

	root := &cobra.Command{
		Use:   "teameditor",
		Short: "Edit teams, staff and logos in a football-manager game database",
		Long: `teameditor opens a game database (a SQLite file with Teams, Staff and
League tables) and edits team attributes, staff and team logos.

Use the one-shot commands for scripting, or 'teameditor shell' to keep
unsaved edits around between commands.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: rt.setup,
	}
	root.SetIn(streams.In)
	root.SetOut(streams.Out)
	root.SetErr(streams.Err)

	flags := root.PersistentFlags()
	flags.StringVar(&rt.configFile, "config", "", "config file (yaml, toml or json)")
	flags.StringVar(&rt.dbPath, "db", "", "game database file (overrides TEAM_EDITOR_DB_PATH)")
	flags.BoolVar(&rt.jsonOutput, "json", false, "print results as JSON")
	flags.BoolVarP(&rt.assumeYes, "yes", "y", false, "save without asking for confirmation")

	root.AddCommand(
		rt.teamsCommand(),
		rt.teamCommand(),
		rt.staffCommand(),
		rt.logoCommand(),
		rt.demoCommand(),
		rt.shellCommand(),
		versionCommand(),
	)

	return root, rt
}

func (rt *runtime) setup(cmd *cobra.Command, _ []string) error {
	config.LoadEnvFiles()

	cfg, err := config.Load(rt.configFile)
	if err != nil {
		return err
	}
	if rt.dbPath != "" {
		cfg.DBPath = rt.dbPath
	}
	rt.cfg = cfg

	rt.logger, rt.logCloser = app.NewLogger(cfg, rt.streams.Err)
	logging.SetDefault(rt.logger)

	rt.session = app.NewSession(cfg, rt.logger, rt.confirmer())
	rt.out = newPrinter(cmd.OutOrStdout(), rt.jsonOutput)

	rt.logger.Debug("configuration loaded", "app_env", cfg.AppEnv, "db_path", cfg.DBPath, "command", cmd.Name())
	return nil
}

func (rt *runtime) confirmer() usecase.Confirmer {
	switch {
	case rt.assumeYes:
		return usecase.AlwaysConfirm
	case rt.interactive:
		return huhConfirmer()
	default:
		return lineConfirmer(rt.in, rt.streams.Out)
	}
}

func (rt *runtime) teardown() {
	if rt.session != nil {
		if err := rt.session.Close(); err != nil {
			rt.logger.Warn("close session failed", "error", err)
		}
	}
	if rt.logger != nil {
		_ = rt.logger.Sync()
	}
	if rt.logCloser != nil {
		_ = rt.logCloser.Close()
	}
}

// requireDatabase opens the configured database unless one is open already.
func (rt *runtime) requireDatabase(ctx context.Context) error {
	if rt.session.IsOpen() {
		return nil
	}
	if rt.cfg.DBPath == "" {
		return usecase.ErrNoDatabase
	}
	return rt.session.OpenDatabase(ctx, rt.cfg.DBPath)
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := io.WriteString(cmd.OutOrStdout(), "teameditor "+Version+"\n")
			return err
		},
	}
}
