// cmd/mbebench/show.go
package mbebench

import (
	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Inspect application state",
}

var showConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Pretty-print the merged configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := pp.Println(getConfig())
		return err
	},
}

func init() {
	showCmd.AddCommand(showConfigCmd)
	rootCmd.AddCommand(showCmd)
}
