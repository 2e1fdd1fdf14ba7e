package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	proptree "github.com/goliatone/go-proptree"
)

var (
	filename      string
	sentinelKey   string
	sentinelValue string
)

var rootCmd = &cobra.Command{
	Use:   "proptree",
	Short: "Inspect and edit property-tree settings files",
	Long: `proptree is a command-line interface for JSON settings documents
managed as property trees.

It provides commands to create a document, read and write single
properties, and dump the whole backing dictionary. Every document is
validated against a sentinel key/value pair on load.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&filename, "file", "f", "settings.json", "path to the settings document")
	rootCmd.PersistentFlags().StringVar(&sentinelKey, "sentinel-key", "kind", "sentinel key checked on load")
	rootCmd.PersistentFlags().StringVar(&sentinelValue, "sentinel-value", "project", "sentinel value checked on load")
}

func openProject() (*proptree.Project, error) {
	project := proptree.NewProject(filename)
	if err := project.Load(sentinelKey, sentinelValue); err != nil {
		return nil, err
	}
	return project, nil
}
