package cmd

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Dump the whole backing dictionary as indented JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		project, err := openProject()
		if err != nil {
			return err
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(project.Dict())
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
