package commands

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/moneyovertime/mot/internal/buildinfo"
	"github.com/moneyovertime/mot/internal/config"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	verbose    bool
}

// loadConfig reads the config file. The default path may be absent; an
// explicit --config must exist.
func (g *globalFlags) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	return config.LoadOptional(g.configPath, cmd.Flags().Changed("config"))
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	g := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:     "mot",
		Short:   "A tool to manage and analyze financial records",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(g.verbose)
		},
	}

	rootCmd.PersistentFlags().StringVar(&g.configPath, "config", config.DefaultPath, "path of the mot.yaml configuration file")
	rootCmd.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "print a more detailed error if something goes wrong while reading the files")

	rootCmd.AddCommand(newPlotCommand(g))
	rootCmd.AddCommand(newDiffCommand(g))
	rootCmd.AddCommand(newConfigCommand())

	return rootCmd
}

func setupLogging(verbose bool) {
	log.SetOutput(os.Stderr)
	log.SetReportTimestamp(false)
	log.SetPrefix("mot")
	if verbose {
		log.SetLevel(log.DebugLevel)
		return
	}
	log.SetLevel(log.WarnLevel)
}
