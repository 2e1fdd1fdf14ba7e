package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <name>",
	Short: "Print one property as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		project, err := openProject()
		if err != nil {
			return err
		}
		value := project.Property(args[0])
		if value == nil {
			return fmt.Errorf("property %q not set", args[0])
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetEscapeHTML(false)
		return enc.Encode(value)
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}
