package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "refnav",
	Short: "API reference sidebar navigation and site builder",
	Long: `refnav renders the sidebar navigation of an API reference site from a
shared section tree, filtered per library version by the functions that
version's spec defines. It builds a static site or serves pages on demand.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".refnav.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
