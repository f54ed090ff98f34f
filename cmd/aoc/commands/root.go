// Package commands implements the CLI commands for aoc.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/aoc/internal/app"
	"go.trai.ch/aoc/internal/build"
	"go.trai.ch/aoc/internal/core/domain"
)

// CLI represents the command line interface for aoc.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, opts app.RunOptions) error
	Fetch(ctx context.Context, opts app.FetchOptions) (string, error)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:   "aoc [day]",
		Short: "Fetch a day's puzzle input and run its solution",
		Long: "Runs the solution in solutions/day_<N> with the day's puzzle input as its only argument.\n" +
			"Without a day the highest day_<N> directory is used. Inputs are cached in solutions/input.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := dayArg(args)
			if err != nil {
				return err
			}
			release, err := cmd.Flags().GetBool("release")
			if err != nil {
				return err
			}
			return c.app.Run(cmd.Context(), app.RunOptions{Day: day, Release: release})
		},
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

	rootCmd.Flags().BoolP("release", "r", false, "Build the solution with optimizations")

	c.rootCmd = rootCmd
	rootCmd.AddCommand(c.newFetchCmd())
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

// dayArg returns the day given on the command line, or nil when there is none.
func dayArg(args []string) (*domain.Day, error) {
	if len(args) == 0 {
		return nil, nil
	}
	day, err := domain.ParseDay(args[0])
	if err != nil {
		return nil, err
	}
	return &day, nil
}
