// Package commands implements the CLI commands for dedup.
package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/dedup/internal/app"
	"go.trai.ch/dedup/internal/build"
	"go.trai.ch/dedup/internal/core/domain"
	"go.trai.ch/zerr"
)

// Application represents the application logic interface.
type Application interface {
	LoadConfig(cwd, path string) (*domain.Config, error)
	Scan(ctx context.Context, cfg *domain.Config) (domain.DuplicateSets, error)
	Plan(ctx context.Context, cfg *domain.Config) (*app.Plan, error)
	Resolve(ctx context.Context, cfg *domain.Config, requests []domain.ResolveData) (*app.ResolveReport, error)
	Watch(ctx context.Context, cfg *domain.Config, onScan func(domain.DuplicateSets)) error
}

// LogSettings adjusts the logger from command line flags.
type LogSettings interface {
	SetLevel(level domain.LogLevel)
	SetJSON(enable bool)
}

// CLI represents the command line interface for dedup.
type CLI struct {
	app     Application
	log     LogSettings
	rootCmd *cobra.Command

	configPath string
	verbose    bool
	json       bool
}

// New creates a new CLI instance with the given app. log may be nil.
func New(a Application, log LogSettings) *CLI {
	rootCmd := &cobra.Command{
		Use:           "dedup",
		Short:         "Collapse duplicate node_modules installs onto one canonical copy",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		log:     log,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "Path to the dedup.yaml configuration")
	rootCmd.PersistentFlags().BoolVar(&c.verbose, "verbose", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&c.json, "json", false, "Emit logs and results as JSON")
	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		c.applyLogSettings()
	}

	rootCmd.AddCommand(c.newScanCmd())
	rootCmd.AddCommand(c.newPlanCmd())
	rootCmd.AddCommand(c.newResolveCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func (c *CLI) applyLogSettings() {
	if c.log == nil {
		return
	}
	if c.verbose {
		c.log.SetLevel(domain.LogLevelDebug)
	}
	c.log.SetJSON(c.json)
}

func (c *CLI) loadConfig() (*domain.Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrFailedToGetRoot.Error())
	}
	return c.app.LoadConfig(cwd, c.configPath)
}
