package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDemoCmd() *cobra.Command {
	var hour int

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Show all twelve 5-minute phrasings",
		Long:  `Walk through the twelve 5-minute intervals of one hour on the terminal.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if hour < 0 || hour > 23 {
				return fmt.Errorf("invalid hour %d, expected 0-23", hour)
			}
			for interval := 0; interval < 12; interval++ {
				if err := printFace(cmd, hour, interval*5); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&hour, "hour", 10, "hour to demonstrate (0-23)")
	return cmd
}
