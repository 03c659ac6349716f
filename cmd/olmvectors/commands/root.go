package commands

import (
	"github.com/spf13/cobra"
)

// Execute builds and runs the olmvectors root command.
func Execute() error {
	root := &cobra.Command{
		Use:   "olmvectors",
		Short: "Exercise the Olm/Megolm primitive layer",
	}

	root.AddCommand(selfCheckCmd(), genKeyCmd(), base64Cmd())
	return root.Execute()
}
