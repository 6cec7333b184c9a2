package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of govreg",
		Long:  `All software has versions. This is govreg's.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("govreg version %s\n", rootCmd.Version)
		},
	}
}
