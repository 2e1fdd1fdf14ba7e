package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	proptree "github.com/goliatone/go-proptree"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a settings document seeded with the sentinel pair",
	RunE: func(cmd *cobra.Command, args []string) error {
		project := proptree.NewProject(filename)
		if project.Exists() && !initForce {
			return fmt.Errorf("%s already exists, use --force to overwrite", filename)
		}
		project.SetProperty(sentinelKey, sentinelValue)
		if err := project.Save(); err != nil {
			return err
		}
		fmt.Printf("created %s (%s=%s)\n", filename, sentinelKey, sentinelValue)
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing document")
	rootCmd.AddCommand(initCmd)
}
