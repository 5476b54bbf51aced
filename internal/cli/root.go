package cli

import (
	"github.com/spf13/cobra"
	"github.com/tasktree/tasktree/internal/config"
	"github.com/tasktree/tasktree/internal/logger"
	"github.com/tasktree/tasktree/internal/version"
	"go.uber.org/zap"
)

var (
	configFile string
	dataFile   string
	verbose    bool

	cfg *config.Config
	log = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "tasktree",
	Short: "Task index backed by a binary search tree",
	Long: `tasktree keeps tasks in a binary search tree keyed by id and reports
active tasks by time limit and completed tasks by id.

Run without a subcommand to open the interactive menu.`,
	Version:           version.String(),
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = log.Sync()
	},
	RunE: runMenu,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "Config file (default: ./tasktree.yaml)")
	flags.StringVar(&dataFile, "data", "", "Task data file (default: .tasktree/tasks.json)")
	flags.BoolVar(&verbose, "verbose", false, "Log debug diagnostics to stderr")

	rootCmd.AddCommand(
		addCmd,
		findCmd,
		deleteCmd,
		completeCmd,
		activeCmd,
		completedCmd,
		listCmd,
		clearCmd,
		statsCmd,
		exportCmd,
		versionCmd,
	)
}

// setup loads configuration and builds the logger before any command runs.
func setup(cmd *cobra.Command, args []string) error {
	v := config.New()
	if err := v.BindPFlag("data_file", cmd.Root().PersistentFlags().Lookup("data")); err != nil {
		return err
	}

	loaded, err := config.Load(v, configFile)
	if err != nil {
		return err
	}
	if verbose {
		loaded.Logger.Level = "debug"
	}

	l, err := logger.New(loaded.Logger)
	if err != nil {
		return err
	}

	cfg, log = loaded, l
	log.Debug("configuration loaded",
		zap.String("data_file", cfg.DataFile),
		zap.Bool("allow_duplicates", cfg.AllowDuplicates),
		zap.Bool("journal", cfg.Journal),
	)
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
