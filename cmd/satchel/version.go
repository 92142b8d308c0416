// Version command prints the satchel version.
// Implements: prd009-satchel-cli R2.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/satchel/pkg/satchel"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the satchel version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("satchel " + satchel.Version)
	},
}
