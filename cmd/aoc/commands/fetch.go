package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/aoc/internal/app"
)

func (c *CLI) newFetchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fetch [day]",
		Short: "Print a day's puzzle input, downloading it if it is not cached",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := dayArg(args)
			if err != nil {
				return err
			}
			input, err := c.app.Fetch(cmd.Context(), app.FetchOptions{Day: day})
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), input)
			return err
		},
	}
}
