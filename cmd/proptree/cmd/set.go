package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var setCmd = &cobra.Command{
	Use:   "set <name> <value>",
	Short: "Write one property and save the document",
	Long: `Write one property and save the document.

The value is parsed as JSON when possible (numbers, booleans, objects,
arrays); anything that does not parse is stored as a plain string.

Examples:
  proptree set title "My Project"
  proptree set size '{"width": "800", "height": "600"}'`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		project, err := openProject()
		if err != nil {
			return err
		}

		var value any
		if err := json.Unmarshal([]byte(args[1]), &value); err != nil {
			value = args[1]
		}
		project.SetProperty(args[0], value)
		if err := project.Save(); err != nil {
			return err
		}
		fmt.Printf("set %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(setCmd)
}
